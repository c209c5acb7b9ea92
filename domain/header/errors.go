package header

// RuleError identifies a malformed header record.
type RuleError struct {
	message string
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	return e.message
}

// ErrShortHeader indicates a header record is not exactly HeaderSize bytes.
var ErrShortHeader = RuleError{message: "ErrShortHeader"}
