package interfaces

import "fmt"

// InvalidFieldError carries the offending field name so handlers can build
// a 400 response with it.
type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
