package config

import (
	"github.com/shu-go/orderedmap"
)

// Document is the on-disk representation of a rule set. YAML is the primary
// encoding; JSON is accepted as an alternative with the same field names in
// camel case.
type Document struct {
	Rules RulesSection                                 `yaml:"rules" json:"rules"`
	Types *orderedmap.OrderedMap[string, TypeSection]  `yaml:"types" json:"types"`
	Amend AmendSection                                 `yaml:"amend" json:"amend"`
}

// RulesSection holds the validation thresholds.
type RulesSection struct {
	SubjectMinLength     int    `yaml:"subject_min_length" json:"subjectMinLength"`
	SubjectMaxLength     int    `yaml:"subject_max_length" json:"subjectMaxLength"`
	BodyLineLength       int    `yaml:"body_line_length" json:"bodyLineLength"`
	RequireVersion       bool   `yaml:"require_version" json:"requireVersion"`
	RequireProjectName   bool   `yaml:"require_project_name" json:"requireProjectName"`
	VersionPattern       string `yaml:"version_pattern" json:"versionPattern"`
	ProjectNameMaxLength int    `yaml:"project_name_max_length" json:"projectNameMaxLength"`
}

// TypeSection declares one commit type. Order in the document is the order
// suggestions are produced in.
type TypeSection struct {
	Description string `yaml:"description" json:"description"`
	Emoji       string `yaml:"emoji,omitempty" json:"emoji,omitempty"`
	Bump        string `yaml:"bump" json:"bump"`
	Format      string `yaml:"format" json:"format"`
}

// AmendSection holds the amend policy.
type AmendSection struct {
	Enabled            bool     `yaml:"enabled" json:"enabled"`
	MaxAmends          int      `yaml:"max_amends" json:"maxAmends"`
	RequireSameDay     bool     `yaml:"require_same_day" json:"requireSameDay"`
	AutoIncrementPatch bool     `yaml:"auto_increment_patch" json:"autoIncrementPatch"`
	KeepVersion        bool     `yaml:"keep_version" json:"keepVersion"`
	AllowedForTypes    []string `yaml:"allowed_for_types" json:"allowedForTypes"`
}
