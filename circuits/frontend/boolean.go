package frontend

// Boolean is a wire carrying a single bit.
type Boolean struct {
	mode  Mode
	value bool
}

// NewBoolean injects a bit into the circuit with the given visibility mode,
// allocating one wire.
func NewBoolean(b *Builder, mode Mode, value bool) Boolean {
	b.alloc(mode, 1)
	return Boolean{mode: mode, value: value}
}

// Mode returns the visibility mode of the wire.
func (v Boolean) Mode() Mode { return v.mode }

// Value ejects the concrete bit carried by the wire.
func (v Boolean) Value() bool { return v.value }
