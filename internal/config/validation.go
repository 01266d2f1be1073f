package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/vercom-dev/vercom/internal/semver"
)

// Validate checks a rule document for correctness before compilation.
// All problems are collected so a broken file is reported in one pass.
func Validate(doc *Document) error {
	var errs []ValidationError

	errs = append(errs, validateRules(&doc.Rules)...)
	errs = append(errs, validateTypes(doc)...)
	errs = append(errs, validateAmend(doc)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// validateRules checks the threshold section.
func validateRules(r *RulesSection) []ValidationError {
	var errs []ValidationError

	if r.SubjectMinLength < 1 {
		errs = append(errs, ValidationError{
			Field:   "rules.subject_min_length",
			Message: "must be at least 1",
			Value:   r.SubjectMinLength,
			Wrapped: ErrInvalidConfig,
		})
	}
	if r.SubjectMaxLength < r.SubjectMinLength {
		errs = append(errs, ValidationError{
			Field:   "rules.subject_max_length",
			Message: fmt.Sprintf("must not be below subject_min_length (%d)", r.SubjectMinLength),
			Value:   r.SubjectMaxLength,
			Wrapped: ErrInvalidConfig,
		})
	}
	if r.BodyLineLength < 1 {
		errs = append(errs, ValidationError{
			Field:   "rules.body_line_length",
			Message: "must be at least 1",
			Value:   r.BodyLineLength,
			Wrapped: ErrInvalidConfig,
		})
	}
	if r.ProjectNameMaxLength < 1 {
		errs = append(errs, ValidationError{
			Field:   "rules.project_name_max_length",
			Message: "must be at least 1",
			Value:   r.ProjectNameMaxLength,
			Wrapped: ErrInvalidConfig,
		})
	}

	if r.VersionPattern == "" {
		errs = append(errs, ValidationError{
			Field:   "rules.version_pattern",
			Message: "required pattern is empty",
			Wrapped: ErrBadPattern,
		})
	} else if _, err := regexp.Compile(r.VersionPattern); err != nil {
		errs = append(errs, ValidationError{
			Field:   "rules.version_pattern",
			Message: err.Error(),
			Value:   r.VersionPattern,
			Wrapped: ErrBadPattern,
		})
	}

	return errs
}

// validateTypes checks the commit type table.
func validateTypes(doc *Document) []ValidationError {
	var errs []ValidationError

	names := doc.Types.Keys()
	if len(names) == 0 {
		return []ValidationError{{
			Field:   "types",
			Message: "at least one commit type is required",
			Wrapped: ErrInvalidConfig,
		}}
	}

	for _, name := range names {
		section, ok := doc.Types.Get(name)
		if !ok {
			continue
		}

		if !semver.BumpKind(section.Bump).IsValid() {
			errs = append(errs, ValidationError{
				Field:   "types." + name + ".bump",
				Message: "unknown bump kind",
				Value:   section.Bump,
				Wrapped: ErrUnknownBumpKind,
			})
		}

		for _, placeholder := range []string{"{project}", "{version}"} {
			if !strings.Contains(section.Format, placeholder) {
				errs = append(errs, ValidationError{
					Field:   "types." + name + ".format",
					Message: fmt.Sprintf("template is missing the %s placeholder", placeholder),
					Value:   section.Format,
					Wrapped: ErrInvalidConfig,
				})
			}
		}
	}

	return errs
}

// validateAmend checks the amend policy section against the type table.
func validateAmend(doc *Document) []ValidationError {
	var errs []ValidationError

	if doc.Amend.MaxAmends < 0 {
		errs = append(errs, ValidationError{
			Field:   "amend.max_amends",
			Message: "must not be negative",
			Value:   doc.Amend.MaxAmends,
			Wrapped: ErrInvalidConfig,
		})
	}

	names := doc.Types.Keys()
	for _, allowed := range doc.Amend.AllowedForTypes {
		if !slices.Contains(names, allowed) {
			errs = append(errs, ValidationError{
				Field:   "amend.allowed_for_types",
				Message: "references a commit type that is not defined",
				Value:   allowed,
				Wrapped: ErrInvalidConfig,
			})
		}
	}

	return errs
}
