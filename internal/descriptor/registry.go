package descriptor

// Registry resolves a descriptor by its lattice name, the way
// internal/dynamics.Registry resolves pluggable dynamics variants by
// string.
type Registry struct {
	byName map[string]Descriptor
}

// NewRegistry returns a registry pre-populated with every concrete
// descriptor this core ships.
func NewRegistry() *Registry {
	return &Registry{
		byName: map[string]Descriptor{
			"D2Q9":  D2Q9,
			"D3Q19": D3Q19,
		},
	}
}

// Get resolves name to a descriptor. D3Q27 and D3Q13 are recognized names
// but return ErrDescriptorNotImplemented, since their tables are an
// external input this core does not carry.
func (r *Registry) Get(name string) (Descriptor, error) {
	if d, ok := r.byName[name]; ok {
		return d, nil
	}
	switch name {
	case "D3Q27", "D3Q13":
		return nil, ErrDescriptorNotImplemented
	}
	return nil, ErrDescriptorNotImplemented
}

// Names lists every descriptor name this registry can resolve.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	return names
}
