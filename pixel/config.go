package pixel

import (
	"fmt"

	"github.com/gengdy1545/pixels/endian"
	"github.com/gengdy1545/pixels/errs"
	"github.com/gengdy1545/pixels/format"
	"github.com/gengdy1545/pixels/internal/options"
)

// DefaultPixelStride is the pixel stride used when WithStride is omitted.
const DefaultPixelStride = 10000

// DefaultIsNullAlignment is the byte alignment of the null bitmap
// section's start offset when WithNullAlignment is omitted.
const DefaultIsNullAlignment = 8

// Config is the immutable configuration a column writer is constructed
// from, per spec.md §3's PixelConfig entity. Built once via NewConfig and
// never mutated afterward.
type Config struct {
	pixelStride     int
	encodingLevel   format.EncodingLevel
	byteOrder       endian.EndianEngine
	nullsPadding    bool
	isNullAlignment int
}

// PixelStride returns the configured pixel stride.
func (c Config) PixelStride() int { return c.pixelStride }

// EncodingLevel returns the configured cascade level.
func (c Config) EncodingLevel() format.EncodingLevel { return c.encodingLevel }

// ByteOrder returns the configured endianness engine.
func (c Config) ByteOrder() endian.EndianEngine { return c.byteOrder }

// NullsPadding returns whether nulls are padded with a type-specific zero.
func (c Config) NullsPadding() bool { return c.nullsPadding }

// IsNullAlignment returns the byte alignment of the null bitmap section's start offset.
func (c Config) IsNullAlignment() int { return c.isNullAlignment }

// LittleEndian reports whether the configured byte order is little-endian.
// Recorded verbatim into ChunkIndex.LittleEndian at flush time.
func (c Config) LittleEndian() bool {
	return c.byteOrder == endian.GetLittleEndianEngine()
}

// WithStride sets the pixel stride. Must be positive.
func WithStride(n int) options.Option[*Config] {
	return options.New(func(c *Config) error {
		if n <= 0 {
			return fmt.Errorf("%w: pixel stride must be positive, got %d", errs.ErrInvalidConfig, n)
		}
		c.pixelStride = n

		return nil
	})
}

// WithEncodingLevel sets the cascade level (EL0/EL1/EL2).
func WithEncodingLevel(level format.EncodingLevel) options.Option[*Config] {
	return options.NoError(func(c *Config) { c.encodingLevel = level })
}

// WithByteOrder sets the endianness engine values are written with.
func WithByteOrder(engine endian.EndianEngine) options.Option[*Config] {
	return options.New(func(c *Config) error {
		if engine == nil {
			return fmt.Errorf("%w: byte order engine must not be nil", errs.ErrInvalidConfig)
		}
		c.byteOrder = engine

		return nil
	})
}

// WithNullsPadding sets whether nulls are padded with a type-specific zero
// in the encoded byte stream, per spec.md §3's nullsPadding invariant.
func WithNullsPadding(padding bool) options.Option[*Config] {
	return options.NoError(func(c *Config) { c.nullsPadding = padding })
}

// WithNullAlignment sets the byte alignment of the null bitmap section's
// start offset: flush zero-pads the output stream to a multiple of n
// before appending the bitmap. Must be positive.
func WithNullAlignment(n int) options.Option[*Config] {
	return options.New(func(c *Config) error {
		if n <= 0 {
			return fmt.Errorf("%w: null alignment must be positive, got %d", errs.ErrInvalidConfig, n)
		}
		c.isNullAlignment = n

		return nil
	})
}

// NewConfig builds a Config from defaults plus the given options.
func NewConfig(opts ...options.Option[*Config]) (Config, error) {
	c := &Config{
		pixelStride:     DefaultPixelStride,
		encodingLevel:   format.EL0,
		byteOrder:       endian.GetLittleEndianEngine(),
		nullsPadding:    true,
		isNullAlignment: DefaultIsNullAlignment,
	}

	if err := options.Apply(c, opts...); err != nil {
		return Config{}, err
	}

	return *c, nil
}
