package mapping

import (
	"fmt"
	"net/url"
)

const maxURLLength = 2048

// ValidateURL checks that raw is a syntactically valid absolute http(s) URL.
// The input is validated, not rewritten: the stored long URL is exactly
// what the caller supplied.
func ValidateURL(raw string) error {
	if raw == "" || len(raw) > maxURLLength {
		return fmt.Errorf("%w: url must be non-empty and at most %d characters", ErrInvalidInput, maxURLLength)
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w: url scheme must be http or https", ErrInvalidInput)
	}

	if parsed.Host == "" {
		return fmt.Errorf("%w: url must have a host", ErrInvalidInput)
	}

	return nil
}
