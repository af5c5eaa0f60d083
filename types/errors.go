package types

// MissingFieldError reports a required request field that was absent
// from a wire payload. Request types return it from Check; the codec
// layer attributes it to the offending field in the format's own
// error representation.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing required field: " + e.Field
}

// missing is a shorthand used by the Check methods in this package.
func missing(field string) error {
	return &MissingFieldError{Field: field}
}
