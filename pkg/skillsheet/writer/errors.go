package writer

import "fmt"

// GenerationError represents a failure while building the workbook.
type GenerationError struct {
	Section string // "setup", "basic_info", "tasks", "career", "print", "output", ...
	Err     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation error in section %q: %v", e.Section, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
