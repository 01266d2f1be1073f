package convention

import (
	"strings"

	"github.com/vercom-dev/vercom/internal/semver"
)

// typeSeparator terminates the type token in a subject line.
const typeSeparator = ": "

// versionSeparator precedes the version token. The split happens at its
// last occurrence so project names may contain hyphens; a project name
// containing a literal " - v" substring is a known grammar limitation.
const versionSeparator = " - v"

// Parse decomposes a raw commit message into its structured parts using the
// grammar "<TYPE>: <project> - <version>" for the subject line, with the
// body being the raw remainder after the first blank line.
//
// Parsing is purely syntactic and never fails: empty input yields a record
// with all structured fields nil, and a subject whose type token is not in
// the RuleSet yields TypeToken without a resolved Type so the validator can
// name the unknown type. A nil RuleSet is a caller bug and panics.
func Parse(raw string, rules *RuleSet) *ParsedMessage {
	if rules == nil {
		panic("convention: Parse called with nil RuleSet")
	}

	msg := &ParsedMessage{Raw: raw}

	text := strings.ReplaceAll(raw, "\r\n", "\n")
	if strings.TrimSpace(text) == "" {
		return msg
	}

	if i := strings.Index(text, "\n\n"); i >= 0 {
		body := text[i+2:]
		if strings.TrimSpace(body) != "" {
			msg.Body = &body
		}
	}

	subject, _, _ := strings.Cut(text, "\n")
	parseSubject(subject, rules, msg)
	return msg
}

// parseSubject fills the type, project, and version fields from the first
// line of the message.
func parseSubject(subject string, rules *RuleSet, msg *ParsedMessage) {
	token, remainder, found := strings.Cut(subject, typeSeparator)
	if !found || token == "" {
		return
	}

	msg.TypeToken = &token
	if ct, ok := rules.Type(token); ok {
		msg.Type = &ct
	}

	// Split project from version at the last " - v" occurrence. The token
	// must match the configured pattern anchored at end of line; otherwise
	// the whole remainder is treated as the project and the validator
	// reports the version as missing or malformed.
	if i := strings.LastIndex(remainder, versionSeparator); i >= 0 {
		versionToken := remainder[i+3:]
		if rules.VersionPattern.MatchString(versionToken) {
			if v, err := semver.Parse(versionToken); err == nil {
				msg.Version = &v
				remainder = remainder[:i]
			}
		}
	}

	if project := strings.TrimSpace(remainder); project != "" {
		msg.Project = &project
	}
}
