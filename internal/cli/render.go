package cli

import (
	"fmt"
	"strings"

	"github.com/kyokomi/emoji/v2"

	"github.com/vercom-dev/vercom/internal/convention"
	"github.com/vercom-dev/vercom/internal/ui"
)

// typeGlyph turns a commit type's emoji code (":rocket:") into the glyph
// shown next to the type name. Types without an emoji render as-is.
func typeGlyph(name string, ct convention.CommitType) string {
	if ct.Emoji == "" {
		return name
	}
	return strings.TrimSpace(emoji.Sprint(ct.Emoji)) + " " + name
}

// renderParsed builds the card body lines for a parsed message.
func renderParsed(parsed *convention.ParsedMessage) []string {
	if parsed == nil {
		return nil
	}
	var lines []string
	if parsed.TypeToken != nil {
		lines = append(lines, ui.KeyValue("type", *parsed.TypeToken))
	}
	if parsed.Project != nil {
		lines = append(lines, ui.KeyValue("project", *parsed.Project))
	}
	if parsed.Version != nil {
		lines = append(lines, ui.KeyValue("version", parsed.Version.String()))
	}
	if parsed.Body != nil {
		lines = append(lines, ui.KeyValue("body", fmt.Sprintf("%d line(s)", len(strings.Split(*parsed.Body, "\n")))))
	}
	return lines
}

// renderValidation renders a validation result as a card.
func renderValidation(result convention.ValidationResult) string {
	if result.Valid {
		return ui.SuccessCard("Message follows the convention", renderParsed(result.Parsed)...)
	}
	details := []string{result.Error}
	if len(renderParsed(result.Parsed)) > 0 {
		details = append(details, "")
		details = append(details, renderParsed(result.Parsed)...)
	}
	return ui.FailureCard("Message violates the convention", details...)
}

// renderSuggestions renders one line per commit type suggestion.
func renderSuggestions(rules *convention.RuleSet, suggestions []convention.Suggestion) string {
	var body strings.Builder
	for i, s := range suggestions {
		if i > 0 {
			body.WriteString("\n")
		}
		ct, _ := rules.Type(s.Type)
		body.WriteString(fmt.Sprintf("%-14s %s  (%s)",
			typeGlyph(s.Type, ct), ui.Primary.Render(s.Version.String()), s.Kind))
	}
	return body.String()
}
