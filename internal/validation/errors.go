package validation

import "fmt"

// FieldError describes the first rule a struct field failed.
type FieldError struct {
	Field string
	Rule  string
	Param string
}

func (e *FieldError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("validation error: %s - %s=%s", e.Field, e.Rule, e.Param)
	}
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Rule)
}
