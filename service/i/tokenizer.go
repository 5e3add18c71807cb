package i

import (
	"time"
)

// Tokenizer defines methods for generating and decoding tokens.
type Tokenizer interface {
	// Generate creates a signed token carrying claims that expires after expTime.
	Generate(claims map[string]interface{}, expTime time.Duration) (string, error)

	// Decode validates a token and returns its claims.
	Decode(token string) (map[string]interface{}, error)
}
