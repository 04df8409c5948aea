package config

// Presets holds named RunConfigs for the standard benchmark flows, keyed
// by [scenario][variant].
var Presets = map[string]map[string]*RunConfig{
	"lid_driven_cavity": {
		"low_re": {
			Descriptor: "D3Q19", Dynamics: "bgk", Omega: 1.8,
			Nx: 32, Ny: 32, Nz: 32, Steps: 2000, CheckpointEvery: 200,
			Boundary: BoundaryConfig{Kind: "cavity", Velocity: []float64{0.05, 0, 0}},
		},
		"high_re": {
			Descriptor: "D3Q19", Dynamics: "regularized", Omega: 1.98,
			Nx: 64, Ny: 64, Nz: 64, Steps: 5000, CheckpointEvery: 500,
			Boundary: BoundaryConfig{Kind: "cavity", Velocity: []float64{0.1, 0, 0}},
		},
	},
	"channel_flow": {
		"poiseuille": {
			Descriptor: "D3Q19", Dynamics: "externalmoment", Omega: 1.5,
			Nx: 64, Ny: 16, Nz: 16, Steps: 3000, CheckpointEvery: 300,
			Boundary: BoundaryConfig{Kind: "bodyforce", Force: []float64{1e-5, 0, 0}},
		},
	},
	"shear_wave": {
		"decaying": {
			Descriptor: "D2Q9", Dynamics: "rlb", Omega: 1.7,
			Nx: 64, Ny: 64, Nz: 1, Steps: 1000, CheckpointEvery: 100,
		},
	},
	"entropic_shock": {
		"underresolved": {
			Descriptor: "D2Q9", Dynamics: "entropic", Omega: 1.95,
			Nx: 64, Ny: 64, Nz: 1, Steps: 2000, CheckpointEvery: 200,
		},
	},
}

func GetPreset(scenario, variant string) *RunConfig {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	cfg, ok := scenarioPresets[variant]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(scenario string) []string {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenarioPresets))
	for name := range scenarioPresets {
		names = append(names, name)
	}
	return names
}
