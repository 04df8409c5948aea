package dynamics

import (
	"fmt"

	"github.com/san-kum/lbmcore/internal/descriptor"
)

// Registry resolves a dynamics variant by name, the way
// internal/experiment.Registry resolves models, integrators and
// controllers by name.
type Registry struct {
	byName map[string]func(desc descriptor.Descriptor, params map[string]float64) Dynamics
}

func NewRegistry() *Registry {
	r := &Registry{
		byName: make(map[string]func(desc descriptor.Descriptor, params map[string]float64) Dynamics),
	}

	r.byName["bgk"] = func(desc descriptor.Descriptor, p map[string]float64) Dynamics {
		return NewBGK(desc, p["omega"])
	}
	r.byName["externalmoment"] = func(desc descriptor.Descriptor, p map[string]float64) Dynamics {
		return NewExternalMomentBGK(desc, p["omega"])
	}
	r.byName["incbgk"] = func(desc descriptor.Descriptor, p map[string]float64) Dynamics {
		return NewIncBGK(desc, p["omega"])
	}
	r.byName["constrho"] = func(desc descriptor.Descriptor, p map[string]float64) Dynamics {
		return NewConstRhoBGK(desc, p["omega"])
	}
	r.byName["chopard"] = func(desc descriptor.Descriptor, p map[string]float64) Dynamics {
		return NewChopard(desc, p["vs2"], p["omega"])
	}
	r.byName["regularized"] = func(desc descriptor.Descriptor, p map[string]float64) Dynamics {
		return NewRegularizedBGK(desc, p["omega"])
	}
	r.byName["rlb"] = func(desc descriptor.Descriptor, p map[string]float64) Dynamics {
		return NewRLB(NewBGK(desc, p["omega"]))
	}
	r.byName["entropic"] = func(desc descriptor.Descriptor, p map[string]float64) Dynamics {
		return NewEntropic(desc, p["omega"])
	}
	r.byName["forcedentropic"] = func(desc descriptor.Descriptor, p map[string]float64) Dynamics {
		return NewForcedEntropic(desc, p["omega"])
	}

	return r
}

// Get constructs a fresh dynamics instance of the named variant for desc,
// configured from params (recognized keys: "omega", "vs2").
func (r *Registry) Get(name string, desc descriptor.Descriptor, params map[string]float64) (Dynamics, error) {
	fn, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown dynamics: %s", name)
	}
	return fn(desc, params), nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	return names
}
