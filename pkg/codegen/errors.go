package codegen

import "errors"

var (
	// ErrInvalidManifest indicates a manifest that cannot be decoded or is missing required fields.
	ErrInvalidManifest = errors.New("invalid manifest")

	// ErrUnsupportedFormat indicates a manifest file extension other than .yaml, .yml or .toml.
	ErrUnsupportedFormat = errors.New("unsupported manifest format")

	// ErrUnknownWidth indicates a literal width that maps to no element type.
	ErrUnknownWidth = errors.New("unknown literal width")

	// ErrUnknownForm indicates an unrecognised Unicode normalization form.
	ErrUnknownForm = errors.New("unknown normalization form")

	// ErrSlotsTooSmall indicates a slot count that cannot hold the text and its terminator.
	ErrSlotsTooSmall = errors.New("slot count too small for text")

	// ErrSlotsTooLarge indicates a slot count above the generator's maximum.
	ErrSlotsTooLarge = errors.New("slot count exceeds maximum")

	// ErrEmbeddedTerminator indicates literal text containing a zero element.
	ErrEmbeddedTerminator = errors.New("text contains a zero element")

	// ErrDuplicateName indicates two literals declaring the same identifier.
	ErrDuplicateName = errors.New("duplicate literal name")

	// ErrInvalidIdentifier indicates a package or literal name that is not a Go identifier.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrInvalidMaxSlots indicates a storage bound outside 1..100, the most terms one union may hold.
	ErrInvalidMaxSlots = errors.New("invalid maximum slot count")
)
