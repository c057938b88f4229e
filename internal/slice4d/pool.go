package slice4d

import (
	"fmt"
	"runtime"
	"sync"
)

// rowTask renders rows [minY, maxY) and reports to its pass.
type rowTask struct {
	minY, maxY int
	row        func(y int)
	pass       *pass
}

// pass is one Run call: its barrier and the first task failure.
type pass struct {
	wg      sync.WaitGroup
	mu      sync.Mutex
	failure *TaskPanic
}

func (p *pass) fail(tp *TaskPanic) {
	p.mu.Lock()
	if p.failure == nil {
		p.failure = tp
	}
	p.mu.Unlock()
}

// TaskPanic is re-raised on the Run caller when a row task panicked.
type TaskPanic struct {
	MinY, MaxY int
	Value      interface{}
	Stack      []byte
}

func (tp *TaskPanic) Error() string {
	return fmt.Sprintf("row task [%d,%d) panicked: %v", tp.MinY, tp.MaxY, tp.Value)
}

// RowPool is a fixed set of worker goroutines that render row ranges.
// It keeps no state between Run calls other than the workers.
type RowPool struct {
	tasks   chan rowTask
	workers int
	wg      sync.WaitGroup
	once    sync.Once
}

// NewRowPool starts n workers; n <= 0 means one per CPU.
func NewRowPool(n int) *RowPool {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	rp := &RowPool{
		tasks:   make(chan rowTask, n*TasksPerWorker),
		workers: n,
	}
	rp.wg.Add(n)
	for w := 0; w < n; w++ {
		go rp.work()
	}
	DebugLog("Started row pool with %d workers", n)
	return rp
}

// Workers returns the pool size.
func (rp *RowPool) Workers() int { return rp.workers }

// Close stops the workers once queued tasks are done. Run must not be
// called afterwards.
func (rp *RowPool) Close() {
	rp.once.Do(func() {
		close(rp.tasks)
		rp.wg.Wait()
	})
}

func (rp *RowPool) work() {
	defer rp.wg.Done()
	for t := range rp.tasks {
		t.run()
	}
}

func (t rowTask) run() {
	defer t.pass.wg.Done()
	defer func() {
		if v := recover(); v != nil {
			buf := make([]byte, 64<<10)
			buf = buf[:runtime.Stack(buf, false)]
			t.pass.fail(&TaskPanic{MinY: t.minY, MaxY: t.maxY, Value: v, Stack: buf})
		}
	}()
	for y := t.minY; y < t.maxY; y++ {
		t.row(y)
	}
}

// rowRanges splits [0,height) into n contiguous ranges of height/n rows;
// the last range also takes the remainder.
func rowRanges(height, n int) [][2]int {
	per := height / n
	out := make([][2]int, n)
	for i := 0; i < n-1; i++ {
		out[i] = [2]int{per * i, per * (i + 1)}
	}
	out[n-1] = [2]int{per * (n - 1), height}
	return out
}

// Run calls row(y) for every y in [0,height) on the workers and returns when
// all rows are done. If any task panicked the whole pass is lost: Run panics
// with the first *TaskPanic after every task has finished.
func (rp *RowPool) Run(height int, row func(y int)) {
	if height <= 0 {
		return
	}
	p := &pass{}
	ranges := rowRanges(height, TasksPerWorker*rp.workers)
	p.wg.Add(len(ranges))
	for _, r := range ranges {
		rp.tasks <- rowTask{minY: r[0], maxY: r[1], row: row, pass: p}
	}
	p.wg.Wait()
	if p.failure != nil {
		panic(p.failure)
	}
}
