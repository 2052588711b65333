package config

var Presets = map[string]map[string]*Config{
	"wide": {
		"quick": {
			Size: 256, Iterations: 100, Kernel: "wide", Region: "full",
		},
		"standard": {
			Size: 512, Iterations: 256, Kernel: "wide", Region: "full",
		},
		"deep": {
			Size: 1024, Iterations: 1000, Kernel: "wide", Region: "full",
		},
	},
	"mandelbrot": {
		"seahorse": {
			Size: 512, Iterations: 500, Kernel: "mandelbrot", Region: "seahorse",
		},
		"elephant": {
			Size: 512, Iterations: 500, Kernel: "mandelbrot", Region: "elephant",
		},
		"minibrot": {
			Size: 512, Iterations: 1500, Kernel: "mandelbrot", Region: "minibrot",
		},
		"dragon": {
			Size: 768, Iterations: 2000, Kernel: "mandelbrot", Region: "dragon",
		},
	},
	"julia": {
		"dendrite": {
			Size: 512, Iterations: 300, Kernel: "julia",
			Viewport: &ViewportConfig{XMin: -1.6, XMax: 1.6, YMin: -1.2, YMax: 1.2},
		},
		"closeup": {
			Size: 512, Iterations: 600, Kernel: "julia",
			Viewport: &ViewportConfig{XMin: -0.4, XMax: 0.4, YMin: -0.3, YMax: 0.3},
		},
	},
}

// GetPreset returns the named preset for a kernel, or nil when either
// the kernel or the preset is unknown.
func GetPreset(kernel, name string) *Config {
	presets, ok := Presets[kernel]
	if !ok {
		return nil
	}
	return presets[name]
}

// ListPresets returns preset names for a kernel, or nil for an unknown
// kernel.
func ListPresets(kernel string) []string {
	presets, ok := Presets[kernel]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}
