package slice4d

import "testing"

func TestTraceStats(t *testing.T) {
	old := Debug
	Debug = true
	defer func() { Debug = old }()
	stats.reset()

	s := NewScene()
	_, _ = s.AddHypersphere(Vector4{10, 0, 0, 0}, 1, DefaultLight, DefaultDark)
	s.TraceRay(Ray{Dir: Vector4{1, 0, 0, 0}})
	s.TraceRay(Ray{Dir: Vector4{-1, 0, 0, 0}})
	s.TraceRay(Ray{Dir: Vector4{0, 1, 0, 0}})

	counts := stats.reset()
	if counts[Hit] != 1 || counts[Miss] != 2 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
	if len(stats.reset()) != 0 {
		t.Fatalf("reset did not clear")
	}
	if Hit.String() != "hit" || Miss.String() != "miss" || Category(9).String() != "category(9)" {
		t.Fatalf("category names")
	}
}
