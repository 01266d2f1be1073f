// Package convention implements the commit-message convention engine:
// parsing raw messages into structured records, validating them against a
// RuleSet, generating canonical messages from structured input, and deciding
// amend eligibility. Every operation is a pure function of its inputs; the
// package holds no state and is safe for concurrent use.
package convention

import (
	"errors"
	"regexp"
	"slices"
	"time"

	"github.com/shu-go/orderedmap"

	"github.com/vercom-dev/vercom/internal/semver"
)

// ErrUnknownType indicates a commit type that is not present in the RuleSet.
// Reaching it from the generator is a caller-integration bug, not user input.
var ErrUnknownType = errors.New("convention: unknown commit type")

// CommitType describes one named change category. Types form a data-driven
// dispatch table supplied by the RuleSet; redefining the table requires no
// code change.
type CommitType struct {
	// Description is the human explanation shown in prompts and guides.
	Description string

	// Emoji is a display glyph in :code: form (e.g. ":bug:").
	Emoji string

	// Bump is the semantic-version transition this category implies.
	Bump semver.BumpKind

	// Format is the subject template. It must contain the {project} and
	// {version} placeholders; {version} renders as v<major>.<minor>.<patch>.
	Format string
}

// AmendRules configures the amend policy section of a RuleSet.
type AmendRules struct {
	Enabled        bool
	MaxAmends      int
	RequireSameDay bool

	// AutoIncrementPatch and KeepVersion are informational flags: they guide
	// which version the caller passes to Generate, the policy never enforces
	// them.
	AutoIncrementPatch bool
	KeepVersion        bool

	// AllowedForTypes lists the commit type names eligible for amending.
	AllowedForTypes []string
}

// Allows reports whether the given commit type name may be amended.
func (a AmendRules) Allows(typeName string) bool {
	return slices.Contains(a.AllowedForTypes, typeName)
}

// RuleSet is the validation configuration consulted by parsing, validation,
// generation, and the amend policy. It is treated as immutable for the
// duration of a call and is supplied fresh by the caller each time.
type RuleSet struct {
	SubjectMinLength     int
	SubjectMaxLength     int
	BodyLineLength       int
	RequireVersion       bool
	RequireProjectName   bool
	VersionPattern       *regexp.Regexp
	ProjectNameMaxLength int

	// Types maps type name to its record. Insertion order is meaningful:
	// version suggestions are produced in this order.
	Types *orderedmap.OrderedMap[string, CommitType]

	Amend AmendRules
}

// Type looks up a commit type by its case-sensitive name.
func (r *RuleSet) Type(name string) (CommitType, bool) {
	return r.Types.Get(name)
}

// TypeNames returns the configured type names in insertion order.
func (r *RuleSet) TypeNames() []string {
	return r.Types.Keys()
}

// ParsedMessage is the structured decomposition of a raw commit message.
// Absent fields are nil pointers so callers can distinguish "missing" from
// "empty". TypeToken carries the raw type text even when it resolves to no
// configured type, letting the validator report an unknown-type error
// instead of a generic parse failure.
type ParsedMessage struct {
	TypeToken *string
	Type      *CommitType
	Project   *string
	Version   *semver.Version
	Body      *string
	Raw       string
}

// ValidationResult is the terminal output of Validate. Expected malformed
// input is reported here, never as an error value.
type ValidationResult struct {
	Valid  bool
	Error  string
	Parsed *ParsedMessage
}

// AmendContext carries the per-call facts the amend policy decides on.
// Now supplies the caller's clock and local day boundary.
type AmendContext struct {
	PreviousType      string
	PreviousTimestamp time.Time
	AmendCountToday   int
	ProposedType      string
	Now               time.Time
}

// AmendDecision is the structured outcome of CanAmend; denials carry a
// reason and are never reported as errors.
type AmendDecision struct {
	Allowed bool
	Reason  string
}

// Suggestion pairs a commit type with the version its bump kind produces.
type Suggestion struct {
	Type    string
	Kind    semver.BumpKind
	Version semver.Version
}
