package mapping

import "github.com/jaevor/go-nanoid"

// Alphabet is the 62-symbol alphabet short codes are drawn from.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// DefaultCodeLength is the default length of generated short codes.
const DefaultCodeLength = 5

// CodeGenerator produces random candidate codes. Candidates are not
// guaranteed unique; uniqueness is the caller's responsibility.
type CodeGenerator func() string

// NewCodeGenerator creates a generator of fixed-length codes drawn
// uniformly from Alphabet.
func NewCodeGenerator(length int) (CodeGenerator, error) {
	gen, err := nanoid.CustomASCII(Alphabet, length)
	if err != nil {
		return nil, err
	}

	return CodeGenerator(gen), nil
}
