package cpu

// Flag is a bit mask selecting one of the flags held in the upper
// nibble of the F register.
type Flag uint8

const (
	FlagZero      Flag = 0x80
	FlagSubtract  Flag = 0x40
	FlagHalfCarry Flag = 0x20
	FlagCarry     Flag = 0x10
)

func (f Flag) String() string {
	switch f {
	case FlagZero:
		return "Z"
	case FlagSubtract:
		return "N"
	case FlagHalfCarry:
		return "H"
	case FlagCarry:
		return "C"
	}
	return "?"
}

// FlagEffect describes what an operation does to a single flag.
type FlagEffect uint8

const (
	// Unchanged leaves the flag as it was.
	Unchanged FlagEffect = iota
	// Set sets the flag.
	Set
	// Clear clears the flag.
	Clear
	// Toggle inverts the flag.
	Toggle
)

// flagIf returns Set if cond holds, otherwise Clear.
func flagIf(cond bool) FlagEffect {
	if cond {
		return Set
	}
	return Clear
}

func (e FlagEffect) apply(f uint8, flag Flag) uint8 {
	switch e {
	case Set:
		return f | uint8(flag)
	case Clear:
		return f &^ uint8(flag)
	case Toggle:
		return f ^ uint8(flag)
	}
	return f
}

// Flag returns true if the given flag is set.
func (r *Registers) Flag(flag Flag) bool {
	return r.r[F.index]&uint8(flag) != 0
}

// SetFlag sets or clears a single flag.
func (r *Registers) SetFlag(flag Flag, value bool) {
	r.r[F.index] = flagIf(value).apply(r.r[F.index], flag) & 0xF0
}

// ApplyFlags updates Z, N, H and C in a single write of F, each
// according to its own effect.
func (r *Registers) ApplyFlags(z, n, h, c FlagEffect) {
	f := r.r[F.index]
	f = z.apply(f, FlagZero)
	f = n.apply(f, FlagSubtract)
	f = h.apply(f, FlagHalfCarry)
	f = c.apply(f, FlagCarry)
	r.r[F.index] = f & 0xF0
}
