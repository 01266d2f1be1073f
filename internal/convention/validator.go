package convention

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// msgRequired is the exact verdict for empty or whitespace-only input.
const msgRequired = "Message is required"

// Validate applies the RuleSet to a raw commit message and returns a
// structured verdict. Checks run in a fixed order and short-circuit at the
// first failure so the reported error is always the most specific one:
//
//  1. empty message
//  2. missing type token
//  3. unknown type (case-sensitive)
//  4. project presence and length (when required)
//  5. version presence and pattern (when required)
//  6. subject length bounds
//  7. body line length
//
// Malformed input is expected and never produces an error value; a nil
// RuleSet is a caller bug and panics.
func Validate(raw string, rules *RuleSet) ValidationResult {
	if rules == nil {
		panic("convention: Validate called with nil RuleSet")
	}

	// Normalize to NFC so length checks are stable for text that arrives in
	// decomposed form (e.g. from editors on macOS).
	text := norm.NFC.String(raw)

	if strings.TrimSpace(text) == "" {
		return ValidationResult{Error: msgRequired}
	}

	parsed := Parse(text, rules)
	subject, _, _ := strings.Cut(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	if parsed.TypeToken == nil {
		return invalid(parsed, fmt.Sprintf(
			"Commit type is missing; expected \"<TYPE>%s<project>%s<version>\"",
			typeSeparator, " - "))
	}

	if parsed.Type == nil {
		return invalid(parsed, fmt.Sprintf("Unknown commit type %q; allowed types: %s",
			*parsed.TypeToken, strings.Join(rules.TypeNames(), ", ")))
	}

	if rules.RequireProjectName {
		if parsed.Project == nil {
			return invalid(parsed, "Project name is missing")
		}
		if n := utf8.RuneCountInString(*parsed.Project); n > rules.ProjectNameMaxLength {
			return invalid(parsed, fmt.Sprintf("Project name is %d characters, maximum is %d",
				n, rules.ProjectNameMaxLength))
		}
	}

	if rules.RequireVersion && parsed.Version == nil {
		return invalid(parsed,
			"Version is missing or malformed; expected the form v<major>.<minor>.<patch>")
	}

	if n := utf8.RuneCountInString(subject); n < rules.SubjectMinLength {
		return invalid(parsed, fmt.Sprintf("Subject is %d characters, minimum is %d",
			n, rules.SubjectMinLength))
	} else if n > rules.SubjectMaxLength {
		return invalid(parsed, fmt.Sprintf("Subject is %d characters, maximum is %d",
			n, rules.SubjectMaxLength))
	}

	if parsed.Body != nil {
		for i, line := range strings.Split(*parsed.Body, "\n") {
			if n := utf8.RuneCountInString(line); n > rules.BodyLineLength {
				return invalid(parsed, fmt.Sprintf("Body line %d is %d characters, maximum is %d",
					i+1, n, rules.BodyLineLength))
			}
		}
	}

	return ValidationResult{Valid: true, Parsed: parsed}
}

// invalid builds a failed verdict that still exposes the parse result, so
// callers can inspect whatever structure was recoverable.
func invalid(parsed *ParsedMessage, reason string) ValidationResult {
	return ValidationResult{Error: reason, Parsed: parsed}
}
