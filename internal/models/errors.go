package models

import "errors"

// Failure kinds of the analysis pipeline. Callers branch with errors.Is;
// everything else wrapped around them is context only.
var (
	// ErrUnsupportedFormat is returned before any extraction work when the
	// document extension is not pdf or docx.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrExtractionFailed is returned when a document yields no usable text
	// (corrupt file, scanned image without a text layer, zero-length input).
	ErrExtractionFailed = errors.New("could not extract text from file")

	// ErrUnknownJobTitle is returned when the requested title is not in the
	// job catalog at match time.
	ErrUnknownJobTitle = errors.New("job title not found in catalog")

	// ErrEngineUnavailable is returned when the embedding backend fails, so a
	// broken model never silently produces a zero score.
	ErrEngineUnavailable = errors.New("matching engine unavailable")
)
