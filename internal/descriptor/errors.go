package descriptor

import "errors"

// ErrDescriptorNotImplemented is returned by the registry for named
// descriptors whose numerical tables are not shipped by this core (D3Q27,
// D3Q13): a caller can name them, but only D2Q9 and D3Q19 have concrete
// weight/velocity tables here.
var ErrDescriptorNotImplemented = errors.New("descriptor: not implemented in this core")
