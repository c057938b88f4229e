package slice4d

import (
	"fmt"
	"time"
)

// Run renders one snapshot of the configured 4D slice to a PNG.
func Run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	scene, _, err := cfg.BuildScene()
	if err != nil {
		return err
	}
	cam := cfg.Camera.Build(cfg.FovYDeg)

	r := &Renderer{Scene: scene, Camera: cam}
	if !cfg.Sequential && !Sequential {
		r.Pool = NewRowPool(cfg.Workers)
		defer r.Pool.Close()
	}

	frame := NewFrame(cfg.Width, cfg.Height)
	start := time.Now()
	r.Render(frame)
	DebugLog("Rendered %dx%d, %d primitives, time: %s", cfg.Width, cfg.Height, scene.Len(), time.Since(start))
	DebugLog("%s", cam.Status())

	if err := SavePNG(frame, cfg.Out); err != nil {
		return err
	}
	fmt.Printf("[PNG] %s\n", cfg.Out)
	return nil
}
