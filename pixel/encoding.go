package pixel

import "github.com/gengdy1545/pixels/format"

// Encoding describes the encoding actually applied to a finished chunk,
// per spec.md §3's ColumnEncoding entity. It is cascade-capable: a
// RUNLENGTH encoding over dictionary codes is recorded as a RUNLENGTH
// Encoding whose Cascade field holds the DICTIONARY Encoding it was
// applied on top of.
type Encoding struct {
	Kind format.EncodingKind

	// DictionarySize is only meaningful when Kind == format.DICTIONARY.
	DictionarySize int

	// Cascade is the encoding this one was layered on top of, or nil.
	Cascade *Encoding
}

// None is the encoding recorded for categories that never cascade.
func None() Encoding {
	return Encoding{Kind: format.NONE}
}

// RunLength is the encoding recorded for a bare run-length pass.
func RunLength() Encoding {
	return Encoding{Kind: format.RUNLENGTH}
}

// Dictionary is the encoding recorded for dictionary mode with the given
// dictionary size.
func Dictionary(size int) Encoding {
	return Encoding{Kind: format.DICTIONARY, DictionarySize: size}
}

// RunLengthOverDictionary is the encoding recorded when dictionary codes
// are themselves run-length encoded (spec.md §4.7's EL2 string mode).
func RunLengthOverDictionary(dictSize int) Encoding {
	dict := Dictionary(dictSize)

	return Encoding{Kind: format.RUNLENGTH, Cascade: &dict}
}
