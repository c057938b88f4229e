package slice4d

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

type CameraCfg struct {
	Pos      Vector4 `json:"pos"`
	YawDeg   *Real   `json:"yawDeg,omitempty"` // nil keeps the default heading
	PitchDeg Real    `json:"pitchDeg"`
	WYDeg    Real    `json:"wyDeg"`
}

type HyperboxCfg struct {
	Min   Vector4 `json:"min"`
	Max   Vector4 `json:"max"`
	Light *RGBA   `json:"light,omitempty"`
	Dark  *RGBA   `json:"dark,omitempty"`
}

type HypersphereCfg struct {
	Center Vector4 `json:"center"`
	Radius Real    `json:"radius"`
	Light  *RGBA   `json:"light,omitempty"`
	Dark   *RGBA   `json:"dark,omitempty"`
}

type Config struct {
	Width        int              `json:"width"`
	Height       int              `json:"height"`
	Workers      int              `json:"workers,omitempty"` // 0: one per CPU
	Sequential   bool             `json:"sequential,omitempty"`
	FovYDeg      Real             `json:"fovYDeg,omitempty"`
	Out          string           `json:"out"`
	Camera       CameraCfg        `json:"camera"`
	DemoWorld    bool             `json:"demoWorld,omitempty"`
	Hyperboxes   []HyperboxCfg    `json:"hyperboxes,omitempty"`
	Hyperspheres []HypersphereCfg `json:"hyperspheres,omitempty"`
}

func colorsOr(light, dark *RGBA) (RGBA, RGBA) {
	l, d := DefaultLight, DefaultDark
	if light != nil {
		l = *light
	}
	if dark != nil {
		d = *dark
	}
	return l, d
}

// Build validates and constructs the runtime object.
func (hc HyperboxCfg) Build() (*AlignedHyperbox, error) {
	light, dark := colorsOr(hc.Light, hc.Dark)
	return NewAlignedHyperbox(hc.Min, hc.Max, light, dark)
}

func (hs HypersphereCfg) Build() (*Hypersphere, error) {
	light, dark := colorsOr(hs.Light, hs.Dark)
	return NewHypersphere(hs.Center, hs.Radius, light, dark)
}

// Build places a camera per the config; angles are in degrees.
func (cc CameraCfg) Build(fovYDeg Real) *Camera {
	const k = math.Pi / 180
	c := NewCamera()
	c.Pos = cc.Pos
	if cc.YawDeg != nil {
		c.Yaw = math.Remainder(*cc.YawDeg*k, 2*math.Pi)
	}
	c.Pitch = clamp(cc.PitchDeg*k, -PitchLimit, PitchLimit)
	c.WYRotation = math.Mod(cc.WYDeg*k, 2*math.Pi)
	if c.WYRotation < 0 {
		c.WYRotation += 2 * math.Pi
	}
	c.TargetWYRotation = c.WYRotation
	c.FovY = fovYDeg * k
	return c
}

// BuildScene returns the configured scene, plus the demo white sphere when
// the demo world is included.
func (cfg *Config) BuildScene() (*Scene, *Hypersphere, error) {
	scene := NewScene()
	var whiteSphere *Hypersphere
	if cfg.DemoWorld {
		var err error
		if scene, whiteSphere, err = NewDemoWorld(); err != nil {
			return nil, nil, err
		}
	}
	for i, hc := range cfg.Hyperboxes {
		h, err := hc.Build()
		if err != nil {
			return nil, nil, fmt.Errorf("hyperboxes[%d]: %w", i, err)
		}
		scene.Add(h)
	}
	for i, sc := range cfg.Hyperspheres {
		h, err := sc.Build()
		if err != nil {
			return nil, nil, fmt.Errorf("hyperspheres[%d]: %w", i, err)
		}
		scene.Add(h)
	}
	return scene, whiteSphere, nil
}

// defaultConfig renders the demo world from its usual starting point.
func defaultConfig() *Config {
	return &Config{
		Width:     Width,
		Height:    Height,
		FovYDeg:   FovYDeg,
		Out:       OutPNG,
		DemoWorld: true,
	}
}

func loadConfig(path string) (*Config, error) {
	if path == "" {
		cfg := defaultConfig()
		DebugLog("No config given, using demo world %dx%d", cfg.Width, cfg.Height)
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	// Defaults / validation
	if cfg.Width <= 0 {
		cfg.Width = Width
	}
	if cfg.Height <= 0 {
		cfg.Height = Height
	}
	if cfg.FovYDeg <= 0 {
		cfg.FovYDeg = FovYDeg
	}
	if cfg.FovYDeg >= 180 {
		return nil, fmt.Errorf("fovYDeg must be below 180, got %g", cfg.FovYDeg)
	}
	if cfg.Out == "" {
		cfg.Out = OutPNG
	}
	if !cfg.DemoWorld && len(cfg.Hyperboxes) == 0 && len(cfg.Hyperspheres) == 0 {
		DebugLog("Config %s has no primitives, every ray will show the background", path)
	}
	DebugLog("Loaded config from %s: size=(%d, %d), workers=%d, fovY=%g", path, cfg.Width, cfg.Height, cfg.Workers, cfg.FovYDeg)
	return &cfg, nil
}
