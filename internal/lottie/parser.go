package lottie

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrInvalidTiming is returned when the frame rate or in/out points cannot be played.
var ErrInvalidTiming = errors.New("invalid animation timing")

// Parse decodes a Lottie JSON document and validates its timing fields.
//
// Parameters:
//   - data: Raw JSON bytes
//
// Returns:
//   - *Animation: The parsed animation
//   - error: Syntax error, or ErrInvalidTiming when fr <= 0 or op <= ip
func Parse(data []byte) (*Animation, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a Lottie JSON document from r.
func Decode(r io.Reader) (*Animation, error) {
	var anim Animation
	dec := json.NewDecoder(r)
	if err := dec.Decode(&anim); err != nil {
		return nil, fmt.Errorf("failed to parse lottie JSON: %w", err)
	}

	if anim.FrameRate <= 0 {
		return nil, fmt.Errorf("%w: frame rate %.2f", ErrInvalidTiming, anim.FrameRate)
	}
	if anim.OutPoint <= anim.InPoint {
		return nil, fmt.Errorf("%w: out point %.2f <= in point %.2f", ErrInvalidTiming, anim.OutPoint, anim.InPoint)
	}

	return &anim, nil
}

// ParseFile reads and parses a Lottie file from disk.
//
// Example:
//
//	anim, err := ParseFile("assets/manual_ani.json")
//	if err != nil {
//	    log.Fatalf("Failed to parse animation: %v", err)
//	}
//	fmt.Printf("Duration: %v\n", anim.Duration())
func ParseFile(path string) (*Animation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lottie file '%s': %w", path, err)
	}
	anim, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", path, err)
	}
	return anim, nil
}
