package maze

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// pcgIncrement decorrelates the two PCG state words derived from one hash.
const pcgIncrement = 0x9e3779b97f4a7c15

// Stream is a reproducible pseudo-random stream derived from a seed string.
// Every generation call creates its own Stream; it is the only source of
// randomness used by the engine.
type Stream struct {
	src *rand.Rand
}

// NewStream returns the stream for seed. Equal seeds yield equal sequences.
func NewStream(seed string) *Stream {
	h := xxhash.Sum64String(seed)
	return &Stream{src: rand.New(rand.NewPCG(h, h^pcgIncrement))}
}

// Float64 returns the next value in [0,1).
func (s *Stream) Float64() float64 {
	return s.src.Float64()
}

// Intn returns floor(Float64()*n), a value in [0,n). It returns 0 when n <= 0.
func (s *Stream) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(s.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// shuffle is an in-place Fisher–Yates shuffle driven by s.
func shuffle[T any](s *Stream, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := s.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Seed is a maze seed. It decodes from either a JSON string or a JSON number;
// numbers are stringified before use so 42 and "42" give the same maze.
type Seed string

// UnmarshalJSON implements json.Unmarshaler.
func (s *Seed) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*s = ""
		return nil
	}

	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*s = Seed(str)
		return nil
	}

	var num float64
	if err := json.Unmarshal(b, &num); err != nil {
		return fmt.Errorf("maze: seed must be a string or a number: %w", err)
	}
	*s = Seed(SeedString(num))
	return nil
}

// SeedString coerces a seed value to its string form.
func SeedString(v any) string {
	switch seed := v.(type) {
	case string:
		return seed
	case Seed:
		return string(seed)
	case int:
		return strconv.Itoa(seed)
	case int64:
		return strconv.FormatInt(seed, 10)
	case uint64:
		return strconv.FormatUint(seed, 10)
	case float64:
		return strconv.FormatFloat(seed, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(seed), 'f', -1, 32)
	case fmt.Stringer:
		return seed.String()
	default:
		return fmt.Sprint(v)
	}
}
