// Package mesh builds flat-shaded unit-cube face geometry and flattens it
// into interleaved vertex and index streams.
package mesh

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Direction identifies one cube face by a single bit.
type Direction uint8

// Face bits. The bit position is the face index passed to BuildFace and
// determines the order faces appear in the output buffers.
const (
	NegativeZ Direction = 1 << iota // Left
	NegativeY                       // Bottom
	PositiveX                       // Front
	PositiveZ                       // Right
	PositiveY                       // Top
	NegativeX                       // Back
)

// NumDirections is the number of valid direction bits.
const NumDirections = 6

// DirectionSet is a union of Direction bits.
type DirectionSet uint8

// Common sets.
const (
	None DirectionSet = 0
	All  DirectionSet = 1<<NumDirections - 1
)

// ErrInvalidDirection is returned for bits or indices outside 0..5.
var ErrInvalidDirection = errors.New("invalid mesh direction")

var directionNames = [NumDirections]string{
	"NegativeZ",
	"NegativeY",
	"PositiveX",
	"PositiveZ",
	"PositiveY",
	"NegativeX",
}

// Index returns the bit position of d, or -1 if d is not exactly one valid bit.
func (d Direction) Index() int {
	if d == 0 || d&(d-1) != 0 || DirectionSet(d)&^All != 0 {
		return -1
	}
	return bits.TrailingZeros8(uint8(d))
}

// String returns the face name, e.g. "PositiveX".
func (d Direction) String() string {
	if i := d.Index(); i >= 0 {
		return directionNames[i]
	}
	return fmt.Sprintf("Direction(%#x)", uint8(d))
}

// DirectionAt returns the direction for face index i.
func DirectionAt(i int) (Direction, error) {
	if i < 0 || i >= NumDirections {
		return 0, fmt.Errorf("%w: index %d", ErrInvalidDirection, i)
	}
	return Direction(1 << i), nil
}

// Set returns a set holding only d.
func (d Direction) Set() DirectionSet {
	return DirectionSet(d)
}

// Has reports whether d is in s.
func (s DirectionSet) Has(d Direction) bool {
	return d != 0 && DirectionSet(d)&s == DirectionSet(d)
}

// With returns s plus d.
func (s DirectionSet) With(d Direction) DirectionSet {
	return s | DirectionSet(d)
}

// Count returns the number of faces in s.
func (s DirectionSet) Count() int {
	return bits.OnesCount8(uint8(s & All))
}

// Validate rejects bits above NegativeX.
func (s DirectionSet) Validate() error {
	if s&^All != 0 {
		return fmt.Errorf("%w: set %#x has bits outside 0..5", ErrInvalidDirection, uint8(s))
	}
	return nil
}

// Directions lists the members of s from bit 0 to bit 5.
func (s DirectionSet) Directions() []Direction {
	dirs := make([]Direction, 0, s.Count())
	for i := 0; i < NumDirections; i++ {
		d := Direction(1 << i)
		if s.Has(d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// String joins member names with "|", or returns "None".
func (s DirectionSet) String() string {
	if s == None {
		return "None"
	}
	var names []string
	for _, d := range s.Directions() {
		names = append(names, d.String())
	}
	if extra := s &^ All; extra != 0 {
		names = append(names, fmt.Sprintf("%#x", uint8(extra)))
	}
	return strings.Join(names, "|")
}

var directionAliases = map[string]Direction{
	"negativez": NegativeZ, "nz": NegativeZ, "-z": NegativeZ, "left": NegativeZ,
	"negativey": NegativeY, "ny": NegativeY, "-y": NegativeY, "bottom": NegativeY,
	"positivex": PositiveX, "px": PositiveX, "+x": PositiveX, "front": PositiveX,
	"positivez": PositiveZ, "pz": PositiveZ, "+z": PositiveZ, "right": PositiveZ,
	"positivey": PositiveY, "py": PositiveY, "+y": PositiveY, "top": PositiveY,
	"negativex": NegativeX, "nx": NegativeX, "-x": NegativeX, "back": NegativeX,
}

// ParseDirectionSet parses a list of face names separated by commas, pipes
// or spaces. Accepted tokens are the full names (case-insensitive), the
// short forms px/nx/py/ny/pz/nz, signed axes (+x, -z), the side
// names (left, bottom, front, right, top, back), "all", "none", and a
// decimal mask 0..63.
func ParseDirectionSet(s string) (DirectionSet, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '|' || r == ' ' || r == '\t'
	})

	var set DirectionSet
	for _, f := range fields {
		tok := strings.ToLower(f)
		switch tok {
		case "all":
			set |= All
			continue
		case "none":
			continue
		}
		if d, ok := directionAliases[tok]; ok {
			set |= DirectionSet(d)
			continue
		}
		n, err := strconv.ParseUint(tok, 10, 8)
		if err != nil {
			return None, fmt.Errorf("%w: unknown face %q", ErrInvalidDirection, f)
		}
		mask := DirectionSet(n)
		if err := mask.Validate(); err != nil {
			return None, err
		}
		set |= mask
	}
	return set, nil
}
