// Package errs defines the sentinel error values shared across the encode
// pipeline and the visibility engine.
//
// Callers use errors.Is against these sentinels; wrapped context is added
// with fmt.Errorf("%w: ...", errs.ErrX, ...) at the call site rather than
// by defining a new error type per call site.
package errs

import "errors"

var (
	// ErrInvalidType indicates an unknown TypeDescriptor.Category was
	// passed to the column writer factory.
	ErrInvalidType = errors.New("invalid column type")

	// ErrInvalidVectorKind indicates a ColumnValueBatch does not match
	// the category of the writer it was handed to.
	ErrInvalidVectorKind = errors.New("value batch kind does not match writer category")

	// ErrInvalidArgument is a generic out-of-range/malformed-argument
	// error; Int128.FromBigEndian returns it for an unsupported input
	// length.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAlreadyDeleted indicates a row id was already marked in a
	// tile's intend-delete bitmap.
	ErrAlreadyDeleted = errors.New("row already deleted")

	// ErrCorruptPatch indicates an epoch's patch byte range is shorter
	// than the 32-byte checkpoint header it must carry.
	ErrCorruptPatch = errors.New("corrupt patch: range shorter than checkpoint header")

	// ErrCorruptDictionary indicates Dictionary.Visit could not find the
	// key recorded for a given code, violating the code-density invariant.
	ErrCorruptDictionary = errors.New("corrupt dictionary: missing key for code")

	// ErrExhausted indicates a pop-style operation was attempted on an
	// empty structure.
	ErrExhausted = errors.New("exhausted: structure is empty")

	// ErrWriterClosed indicates a write-path operation was attempted on
	// a TypedColumnWriter after Close.
	ErrWriterClosed = errors.New("column writer is closed")

	// ErrPixelOverflow indicates a Write call's value count is negative
	// or exceeds the length of the batch it was given.
	ErrPixelOverflow = errors.New("pixel overflow: value count outside the batch")

	// ErrInvalidConfig indicates a PixelConfig option produced an
	// inconsistent configuration (e.g. non-positive pixel stride).
	ErrInvalidConfig = errors.New("invalid pixel config")

	// ErrNoSurvivingBlock indicates a visibility cleanup would drop
	// every EpochBlock in a tile's EpochLog, which is disallowed.
	ErrNoSurvivingBlock = errors.New("cleanup would drop every epoch block")

	// ErrEpochNotFound indicates a timestamp binary search in the
	// EpochLog found no matching epoch.
	ErrEpochNotFound = errors.New("epoch not found for timestamp")

	// ErrRowIDOutOfRange indicates a row id lies outside the addressable
	// range of a tile or row group.
	ErrRowIDOutOfRange = errors.New("row id out of range")
)
