package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagWidth  = flag.Int("width", 0, "Window width")
	flagHeight = flag.Int("height", 0, "Window height")
	flagCamera = flag.String("camera", "", "Initial camera: firstperson or turntable")
	flagShape  = flag.String("shape", "", "Initial shape: triangle, moebius or torus")
	flagSpeed  = flag.Float64("speed", 0, "Camera speed in units per second")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.GUI.ShowFPS = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagCamera != "" {
		cfg.Camera.Type = *flagCamera
	}
	if *flagShape != "" {
		cfg.GUI.Shape = *flagShape
	}
	if *flagSpeed > 0 {
		cfg.Camera.Speed = float32(*flagSpeed)
	}
}
