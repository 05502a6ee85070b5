package tokenize

import (
	"errors"
	"fmt"
)

// ErrNotInitialized is reported when Tokenize is called on a tokenizer that was never built.
var ErrNotInitialized = errors.New("tokenizer not initialized")

// TokenizationError reports that the external tokenizer could not process Text.
type TokenizationError struct {
	Text string
	Err  error
}

func (e *TokenizationError) Error() string {
	return fmt.Sprintf("tokenize %q: %v", e.Text, e.Err)
}

func (e *TokenizationError) Unwrap() error {
	return e.Err
}

// IsTokenizationError reports whether err carries a *TokenizationError.
func IsTokenizationError(err error) bool {
	var te *TokenizationError
	return errors.As(err, &te)
}
