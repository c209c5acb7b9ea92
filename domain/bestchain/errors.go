package bestchain

// These constants are used to identify a specific RuleError.
var (
	// ErrUnknownBlock indicates a hash was resolved that is not in the
	// block index.
	ErrUnknownBlock = newRuleError("ErrUnknownBlock")

	// ErrAncestryCycle indicates that following predecessor hashes from a
	// block leads back to a block already on the same walk, so the block
	// is its own ancestor.
	ErrAncestryCycle = newRuleError("ErrAncestryCycle")

	// ErrNoTips indicates there was nothing to select a best chain from,
	// which happens when the input holds no complete header.
	ErrNoTips = newRuleError("ErrNoTips")

	// ErrWorkOverflow indicates the accumulated work of a chain does not
	// fit in 256 bits.
	ErrWorkOverflow = newRuleError("ErrWorkOverflow")
)

// RuleError identifies a condition that prevents resolving the best chain.
// Callers wrap the sentinels above with context and test for them with
// errors.Is.
type RuleError struct {
	message string
	inner   error
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	if e.inner != nil {
		return e.message + ": " + e.inner.Error()
	}
	return e.message
}

// Unwrap satisfies the errors.Unwrap interface
func (e RuleError) Unwrap() error {
	return e.inner
}

// Cause satisfies the github.com/pkg/errors.Cause interface
func (e RuleError) Cause() error {
	return e.inner
}

func newRuleError(message string) RuleError {
	return RuleError{message: message, inner: nil}
}
