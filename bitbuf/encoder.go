package bitbuf

// Encoder is a pure function from a buffer to a buffer: it frames a
// field's raw rendered value into its on-wire form. Encoders are
// referenced by handle and never copied into a field.
type Encoder interface {
	// Encode returns the on-wire form of buf.
	Encode(buf Buffer) Buffer
	// Name identifies the encoder for diagnostics and structural hashing.
	Name() string
}

type passthroughEncoder struct{}

func (passthroughEncoder) Encode(buf Buffer) Buffer { return buf }
func (passthroughEncoder) Name() string             { return "default" }

// Default is the passthrough encoder: it returns its input unchanged.
var Default Encoder = passthroughEncoder{}

type byteAlignedEncoder struct{}

func (byteAlignedEncoder) Encode(buf Buffer) Buffer {
	rem := buf.Len() % 8
	if rem == 0 {
		return buf
	}
	pad := uint(8 - rem)
	return buf.Append(Buffer{bits: zeroBits(pad), length: pad})
}

func (byteAlignedEncoder) Name() string { return "byte_aligned" }

// ByteAligned zero-pads its input at the end to a multiple of 8 bits.
var ByteAligned Encoder = byteAlignedEncoder{}
