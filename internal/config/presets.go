package config

import "sort"

// Presets groups named configurations by the system they were tuned for.
var Presets = map[string]map[string]*Config{
	"phobos": {
		"mars": {
			NumBodies: 1, MaxPoints: 5000, GravConst: 1, ResolvedMass: 1,
			AngleScale: DefaultAngleScale, PrecessionFrame: FrameXY,
			Plot:     PlotConfig{ResJ: 2, ResDJ: 1, Width: 72, Height: 10, Theme: "minimal"},
			Spectral: SpectralConfig{MedianBox: 101},
		},
		"mars_deimos": {
			NumBodies: 2, MaxPoints: 5000, GravConst: 1, ResolvedMass: 1,
			AngleScale: DefaultAngleScale, PrecessionFrame: FrameTotal,
			Plot:     PlotConfig{ResJ: 3, ResDJ: 1, Width: 72, Height: 10, Theme: "minimal"},
			Spectral: SpectralConfig{MedianBox: 101},
		},
	},
	"binary": {
		"tidal": {
			NumBodies: 2, MaxPoints: 10000, GravConst: 1, ResolvedMass: 1,
			AngleScale: DefaultAngleScale, PrecessionFrame: FrameXY, TrackAxes: true,
			Plot:     PlotConfig{ResJ: 2, ResDJ: 1, Width: 96, Height: 12, Theme: "ocean"},
			Spectral: SpectralConfig{MedianBox: 51},
		},
		"radians": {
			NumBodies: 2, MaxPoints: 5000, GravConst: 1, ResolvedMass: 1,
			AngleScale: 1, PrecessionFrame: FrameXY,
			Plot:     PlotConfig{ResJ: 2, ResDJ: 1, Width: 72, Height: 10, Theme: "minimal"},
			Spectral: SpectralConfig{MedianBox: 101},
		},
	},
}

// GetPreset returns a copy of the named preset with the default palette, or
// nil when it does not exist.
func GetPreset(system, preset string) *Config {
	systemPresets, ok := Presets[system]
	if !ok {
		return nil
	}
	cfg, ok := systemPresets[preset]
	if !ok {
		return nil
	}
	c := *cfg
	if len(c.Plot.Palette) == 0 {
		c.Plot.Palette = DefaultPalette()
	}
	return &c
}

func ListPresets(system string) []string {
	systemPresets, ok := Presets[system]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(systemPresets))
	for name := range systemPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ListSystems() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
