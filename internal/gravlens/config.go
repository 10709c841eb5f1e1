package gravlens

import (
	"encoding/json"
	"fmt"
	"os"
)

type CameraCfg struct {
	Preset       string `json:"preset,omitempty"` // equatorial, polar, close-up
	Radius       Real   `json:"radius,omitempty"`
	AzimuthDeg   Real   `json:"azimuthDeg,omitempty"`
	ElevationDeg Real   `json:"elevationDeg,omitempty"`
	FovDeg       Real   `json:"fovDeg,omitempty"`
	Moving       bool   `json:"moving,omitempty"`
}

type BlackHoleCfg struct {
	Mass Real `json:"mass,omitempty"` // kg; rs derived when Rs is zero
	Rs   Real `json:"rs,omitempty"`   // m; overrides Mass when set
}

// Disk geometry in units of rs, so one config scales with the hole.
type DiskCfg struct {
	InnerRs     Real `json:"innerRs,omitempty"`
	OuterRs     Real `json:"outerRs,omitempty"`
	ThicknessRs Real `json:"thicknessRs,omitempty"`
	Temperature Real `json:"temperature,omitempty"`
}

type ParamsCfg struct {
	DLambda        Real `json:"dLambda,omitempty"`
	EscapeR        Real `json:"escapeR,omitempty"`
	MaxSteps       int  `json:"maxSteps,omitempty"`
	MaxStepsMoving int  `json:"maxStepsMoving,omitempty"`
}

type Config struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Gamma  Real   `json:"gamma,omitempty"`
	Time   Real   `json:"time,omitempty"`
	PNGOut string `json:"pngOut,omitempty"`

	Camera    CameraCfg    `json:"camera,omitempty"`
	BlackHole BlackHoleCfg `json:"blackHole,omitempty"`
	Disk      DiskCfg      `json:"disk,omitempty"`
	Params    ParamsCfg    `json:"params,omitempty"`
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Width == 0 {
		c.Width = 1200
	}
	if c.Height == 0 {
		c.Height = 900
	}
	if c.Gamma == 0 {
		c.Gamma = 1.0
	}
	if c.PNGOut == "" {
		c.PNGOut = "blackhole.png"
	}
	if c.Camera.FovDeg == 0 {
		c.Camera.FovDeg = 60
	}
	if c.BlackHole.Rs == 0 && c.BlackHole.Mass == 0 {
		c.BlackHole.Mass = SagittariusAMass
		c.BlackHole.Rs = SagittariusARs
	}
	if c.Disk.InnerRs == 0 {
		c.Disk.InnerRs = 3
	}
	if c.Disk.OuterRs == 0 {
		c.Disk.OuterRs = 20
	}
	if c.Disk.ThicknessRs == 0 {
		c.Disk.ThicknessRs = 0.1
	}
	if c.Disk.Temperature == 0 {
		c.Disk.Temperature = 50000
	}
	p := DefaultParams()
	if c.Params.DLambda == 0 {
		c.Params.DLambda = p.DLambda
	}
	if c.Params.EscapeR == 0 {
		c.Params.EscapeR = p.EscapeR
	}
	if c.Params.MaxSteps == 0 {
		c.Params.MaxSteps = p.MaxSteps
	}
	if c.Params.MaxStepsMoving == 0 {
		c.Params.MaxStepsMoving = p.MaxStepsMoving
	}
}

func (c *Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("resolution must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Gamma <= 0 {
		return fmt.Errorf("gamma must be positive, got %g", c.Gamma)
	}
	if c.Camera.FovDeg <= 0 || c.Camera.FovDeg >= 180 {
		return fmt.Errorf("fov must be in (0, 180), got %g", c.Camera.FovDeg)
	}
	if c.BlackHole.Rs < 0 || c.BlackHole.Mass < 0 {
		return fmt.Errorf("black hole mass/rs must be non-negative")
	}
	if c.Params.DLambda <= 0 {
		return fmt.Errorf("dLambda must be positive, got %g", c.Params.DLambda)
	}
	if c.Params.MaxSteps <= 0 || c.Params.MaxStepsMoving <= 0 {
		return fmt.Errorf("step budgets must be positive")
	}
	return nil
}

// Scene materializes a renderable frame from the config.
func (c *Config) Scene() (*Scene, error) {
	hole := BlackHole{Mass: c.BlackHole.Mass, Rs: c.BlackHole.Rs}
	if hole.Rs == 0 {
		hole.Rs = SchwarzschildRadius(hole.Mass)
	}
	if hole.Rs <= 0 {
		return nil, fmt.Errorf("black hole has no size: mass=%g rs=%g", hole.Mass, hole.Rs)
	}

	disk, err := NewDisk(
		c.Disk.InnerRs*hole.Rs,
		c.Disk.OuterRs*hole.Rs,
		c.Disk.ThicknessRs*hole.Rs,
		c.Disk.Temperature,
		hole.Rs,
	)
	if err != nil {
		return nil, err
	}

	orbit := DefaultOrbit()
	switch c.Camera.Preset {
	case "", "equatorial":
		orbit.Preset(PresetEquatorial)
	case "polar":
		orbit.Preset(PresetPolar)
	case "close-up", "closeup":
		orbit.Preset(PresetCloseUp)
	default:
		return nil, fmt.Errorf("unknown camera preset %q", c.Camera.Preset)
	}
	if c.Camera.Radius != 0 {
		orbit.Radius = c.Camera.Radius
	}
	if c.Camera.AzimuthDeg != 0 {
		orbit.Azimuth = c.Camera.AzimuthDeg * degToRad
	}
	if c.Camera.ElevationDeg != 0 {
		orbit.Elevation = c.Camera.ElevationDeg * degToRad
	}
	cam := orbit.Camera(c.Camera.FovDeg, c.Width, c.Height, c.Camera.Moving)

	params := Params{
		DLambda:        c.Params.DLambda,
		EscapeR:        c.Params.EscapeR,
		MaxSteps:       c.Params.MaxSteps,
		MaxStepsMoving: c.Params.MaxStepsMoving,
	}
	return NewScene(cam, hole, disk, params, c.Time), nil
}
