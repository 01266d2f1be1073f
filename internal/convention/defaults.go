package convention

import (
	"regexp"

	"github.com/shu-go/orderedmap"

	"github.com/vercom-dev/vercom/internal/semver"
)

// Default value constants to avoid magic numbers and strings.
const (
	DefaultSubjectMinLength     = 10
	DefaultSubjectMaxLength     = 72
	DefaultBodyLineLength       = 100
	DefaultProjectNameMaxLength = 50

	// DefaultVersionPattern requires the literal "v" prefix in messages.
	DefaultVersionPattern = `^v\d+\.\d+\.\d+$`

	DefaultMaxAmends = 10
)

// DefaultRuleSet returns a fresh RuleSet with compiled defaults. It is a
// pure factory: every call builds a new value, so callers can never observe
// shared mutable state.
func DefaultRuleSet() *RuleSet {
	return &RuleSet{
		SubjectMinLength:     DefaultSubjectMinLength,
		SubjectMaxLength:     DefaultSubjectMaxLength,
		BodyLineLength:       DefaultBodyLineLength,
		RequireVersion:       true,
		RequireProjectName:   true,
		VersionPattern:       regexp.MustCompile(DefaultVersionPattern),
		ProjectNameMaxLength: DefaultProjectNameMaxLength,
		Types:                DefaultCommitTypes(),
		Amend: AmendRules{
			Enabled:            true,
			MaxAmends:          DefaultMaxAmends,
			RequireSameDay:     true,
			AutoIncrementPatch: true,
			KeepVersion:        false,
			AllowedForTypes:    []string{"UPDATE", "PATCH"},
		},
	}
}

// DefaultCommitTypes returns the built-in RELEASE/UPDATE/PATCH table in its
// canonical order.
func DefaultCommitTypes() *orderedmap.OrderedMap[string, CommitType] {
	types := orderedmap.New[string, CommitType]()
	types.Set("RELEASE", CommitType{
		Description: "Breaking change or milestone release",
		Emoji:       ":rocket:",
		Bump:        semver.BumpMajor,
		Format:      "RELEASE: {project} - {version}",
	})
	types.Set("UPDATE", CommitType{
		Description: "Backward-compatible feature or improvement",
		Emoji:       ":sparkles:",
		Bump:        semver.BumpMinor,
		Format:      "UPDATE: {project} - {version}",
	})
	types.Set("PATCH", CommitType{
		Description: "Bug fix or small correction",
		Emoji:       ":bug:",
		Bump:        semver.BumpPatch,
		Format:      "PATCH: {project} - {version}",
	})
	return types
}
