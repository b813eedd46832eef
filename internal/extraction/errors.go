package extraction

import "fmt"

// UnsupportedFormatError indicates a MIME type the extractor cannot handle.
// It is fatal and not retryable.
type UnsupportedFormatError struct {
	MIME string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.MIME)
}

// ExtractionError indicates the document bytes could not be decoded. The
// original decoder failure is preserved as the cause.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// TimeoutError indicates a stage exceeded the caller-supplied deadline.
type TimeoutError struct {
	Stage string
	Cause error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out: %v", e.Stage, e.Cause)
}

func (e *TimeoutError) Unwrap() error {
	return e.Cause
}
