package parser

import "fmt"

// ParseError wraps an unexpected fault inside one of the field extractors,
// naming the extractor that failed.
type ParseError struct {
	Extractor string
	Cause     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s extractor failed: %v", e.Extractor, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
