package maze

import (
	"errors"
	"fmt"
)

// Placement is a symbolic start/end policy.
type Placement string

// Square placements.
const (
	TopLeft     Placement = "top-left"
	TopRight    Placement = "top-right"
	BottomLeft  Placement = "bottom-left"
	BottomRight Placement = "bottom-right"
	Top         Placement = "top"
	Bottom      Placement = "bottom"
	Left        Placement = "left"
	Right       Placement = "right"
	Random      Placement = "random"
	Custom      Placement = "custom"
)

// Polar placements. Random is shared with square mazes.
const (
	Center       Placement = "center"
	Outer        Placement = "outer"
	RandomRing   Placement = "randomRing"
	CustomSector Placement = "customSector"
)

const (
	MinComplexity = 1
	MaxComplexity = 100
)

var (
	ErrInvalidDimension = errors.New("maze: width and height must be at least 1")
	ErrUnsupportedKind  = errors.New("maze: unsupported maze kind")
	ErrUnreachable      = errors.New("maze: end is not reachable from start")
)

// Options configures one generation call.
type Options struct {
	Width         int       `json:"width" bson:"width"`
	Height        int       `json:"height" bson:"height"`
	Complexity    int       `json:"complexity" bson:"complexity"`       // 1 = loopiest, 100 = perfect maze
	WallThickness int       `json:"wallThickness" bson:"wallThickness"` // rendering only
	Seed          Seed      `json:"seed" bson:"seed"`
	StartPosition Placement `json:"startPosition" bson:"startPosition"`
	EndPosition   Placement `json:"endPosition" bson:"endPosition"`
}

// clampComplexity bounds c to [MinComplexity, MaxComplexity]. The second
// return value is false when c had to be changed.
func clampComplexity(c int) (int, bool) {
	switch {
	case c < MinComplexity:
		return MinComplexity, false
	case c > MaxComplexity:
		return MaxComplexity, false
	default:
		return c, true
	}
}

// complexityWarning describes a clamped complexity value.
func complexityWarning(given, used int) string {
	return fmt.Sprintf("complexity %d out of range [%d,%d], clamped to %d", given, MinComplexity, MaxComplexity, used)
}

// placementWarning describes an unrecognized placement that fell back to a default.
func placementWarning(given Placement, role string, fallback Placement) string {
	return fmt.Sprintf("unsupported %s placement %q, using %q", role, given, fallback)
}
