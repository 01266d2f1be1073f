// Package semver implements the three-component semantic version model used
// by commit messages: parsing, formatting, ordering, and bump transitions.
// All operations are pure; a bump returns a new value.
package semver

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// ErrMalformed indicates the input does not look like v<major>.<minor>.<patch>.
var ErrMalformed = errors.New("semver: malformed version")

// versionPattern accepts an optional "v" prefix; the commit-message grammar
// enforces the mandatory prefix separately at the message level.
var versionPattern = regexp.MustCompile(`^v?(\d+)\.(\d+)\.(\d+)$`)

// Version is an immutable (major, minor, patch) triple.
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64
}

// BumpKind selects which component a bump increments.
type BumpKind string

const (
	BumpMajor BumpKind = "major"
	BumpMinor BumpKind = "minor"
	BumpPatch BumpKind = "patch"
)

// ValidBumpKinds returns all valid bump kind values.
func ValidBumpKinds() []BumpKind {
	return []BumpKind{BumpMajor, BumpMinor, BumpPatch}
}

// IsValid checks if the bump kind is a valid value.
func (k BumpKind) IsValid() bool {
	switch k {
	case BumpMajor, BumpMinor, BumpPatch:
		return true
	}
	return false
}

// Parse converts text into a Version. The "v" prefix is optional here.
// Returns ErrMalformed (wrapped with the input) if text does not match
// v<major>.<minor>.<patch> with base-10 integer components.
func Parse(text string) (Version, error) {
	m := versionPattern.FindStringSubmatch(text)
	if m == nil {
		return Version{}, fmt.Errorf("%w: %q", ErrMalformed, text)
	}

	var parts [3]uint64
	for i, s := range m[1:] {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q: %v", ErrMalformed, text, err)
		}
		parts[i] = n
	}

	return Version{Major: parts[0], Minor: parts[1], Patch: parts[2]}, nil
}

// MustParse is like Parse but panics on malformed input.
// Intended for compiled-in defaults and tests.
func MustParse(text string) Version {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

// String renders the version in message form, always with the "v" prefix.
func (v Version) String() string {
	return fmt.Sprintf("v%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare orders a against b lexicographically over (major, minor, patch).
// It returns -1 if a < b, 0 if a == b, and 1 if a > b.
func Compare(a, b Version) int {
	if c := compareComponent(a.Major, b.Major); c != 0 {
		return c
	}
	if c := compareComponent(a.Minor, b.Minor); c != 0 {
		return c
	}
	return compareComponent(a.Patch, b.Patch)
}

func compareComponent(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Bump returns the version resulting from the given transition:
// major → (major+1, 0, 0), minor → (major, minor+1, 0),
// patch → (major, minor, patch+1). An unknown kind returns the
// receiver unchanged; kinds are validated at configuration load.
// Components saturate at the uint64 maximum rather than wrapping,
// so a bump never decreases the version.
func (v Version) Bump(kind BumpKind) Version {
	switch kind {
	case BumpMajor:
		return Version{Major: saturatingInc(v.Major)}
	case BumpMinor:
		return Version{Major: v.Major, Minor: saturatingInc(v.Minor)}
	case BumpPatch:
		return Version{Major: v.Major, Minor: v.Minor, Patch: saturatingInc(v.Patch)}
	}
	return v
}

func saturatingInc(n uint64) uint64 {
	if n == math.MaxUint64 {
		return n
	}
	return n + 1
}
