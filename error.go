package buildlua

import "strings"

// ParseError is returned if source code could not be parsed. It holds all
// errors that the parser collected.
type ParseError struct {
	Name   string
	Errors []error
}

func (e *ParseError) Error() string {
	var buf strings.Builder
	buf.WriteString("errors occurred while parsing ")
	buf.WriteString(e.Name)
	for _, err := range e.Errors {
		buf.WriteString("\n\t")
		buf.WriteString(err.Error())
	}
	return buf.String()
}

// Unwrap returns the collected errors, so that errors.Is and errors.As can
// inspect them.
func (e *ParseError) Unwrap() []error {
	return e.Errors
}
