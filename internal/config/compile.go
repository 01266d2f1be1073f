package config

import (
	"fmt"
	"regexp"

	"github.com/shu-go/orderedmap"

	"github.com/vercom-dev/vercom/internal/convention"
	"github.com/vercom-dev/vercom/internal/semver"
)

// Compile turns a validated document into the engine's RuleSet, compiling
// the version pattern and preserving the type table's order.
func Compile(doc *Document) (*convention.RuleSet, error) {
	pattern, err := regexp.Compile(doc.Rules.VersionPattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrBadPattern, doc.Rules.VersionPattern, err)
	}

	types := orderedmap.New[string, convention.CommitType]()
	for _, name := range doc.Types.Keys() {
		section, ok := doc.Types.Get(name)
		if !ok {
			continue
		}
		types.Set(name, convention.CommitType{
			Description: section.Description,
			Emoji:       section.Emoji,
			Bump:        semver.BumpKind(section.Bump),
			Format:      section.Format,
		})
	}

	return &convention.RuleSet{
		SubjectMinLength:     doc.Rules.SubjectMinLength,
		SubjectMaxLength:     doc.Rules.SubjectMaxLength,
		BodyLineLength:       doc.Rules.BodyLineLength,
		RequireVersion:       doc.Rules.RequireVersion,
		RequireProjectName:   doc.Rules.RequireProjectName,
		VersionPattern:       pattern,
		ProjectNameMaxLength: doc.Rules.ProjectNameMaxLength,
		Types:                types,
		Amend: convention.AmendRules{
			Enabled:            doc.Amend.Enabled,
			MaxAmends:          doc.Amend.MaxAmends,
			RequireSameDay:     doc.Amend.RequireSameDay,
			AutoIncrementPatch: doc.Amend.AutoIncrementPatch,
			KeepVersion:        doc.Amend.KeepVersion,
			AllowedForTypes:    doc.Amend.AllowedForTypes,
		},
	}, nil
}
