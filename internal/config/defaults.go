package config

import (
	"github.com/shu-go/orderedmap"

	"github.com/vercom-dev/vercom/internal/convention"
)

const (
	// RuleFileName is the base name of the rule document; findcfg appends
	// the .yaml/.yml/.json extensions during discovery.
	RuleFileName = ".vercom"

	// UserConfigFolder is the per-user configuration directory name.
	UserConfigFolder = "vercom"
)

// NewDefaultDocument returns a fresh Document mirroring the engine's
// compiled defaults, suitable both as the merge base for loading and as the
// content written by "vercom init".
func NewDefaultDocument() *Document {
	return &Document{
		Rules: RulesSection{
			SubjectMinLength:     convention.DefaultSubjectMinLength,
			SubjectMaxLength:     convention.DefaultSubjectMaxLength,
			BodyLineLength:       convention.DefaultBodyLineLength,
			RequireVersion:       true,
			RequireProjectName:   true,
			VersionPattern:       convention.DefaultVersionPattern,
			ProjectNameMaxLength: convention.DefaultProjectNameMaxLength,
		},
		Types: defaultTypeSections(),
		Amend: AmendSection{
			Enabled:            true,
			MaxAmends:          convention.DefaultMaxAmends,
			RequireSameDay:     true,
			AutoIncrementPatch: true,
			KeepVersion:        false,
			AllowedForTypes:    []string{"UPDATE", "PATCH"},
		},
	}
}

// defaultTypeSections converts the engine's built-in type table into its
// document form, preserving order.
func defaultTypeSections() *orderedmap.OrderedMap[string, TypeSection] {
	builtin := convention.DefaultCommitTypes()
	sections := orderedmap.New[string, TypeSection]()
	for _, name := range builtin.Keys() {
		ct, ok := builtin.Get(name)
		if !ok {
			continue
		}
		sections.Set(name, TypeSection{
			Description: ct.Description,
			Emoji:       ct.Emoji,
			Bump:        string(ct.Bump),
			Format:      ct.Format,
		})
	}
	return sections
}
