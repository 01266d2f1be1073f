package convention

import (
	"testing"

	"github.com/vercom-dev/vercom/internal/semver"
)

func TestParseFullMessage(t *testing.T) {
	t.Parallel()

	rules := DefaultRuleSet()
	msg := Parse("PATCH: My Project - v1.0.1\n\n- Fixed bug", rules)

	if msg.TypeToken == nil || *msg.TypeToken != "PATCH" {
		t.Fatalf("TypeToken = %v, want PATCH", msg.TypeToken)
	}
	if msg.Type == nil {
		t.Fatal("Type not resolved for configured type PATCH")
	}
	if msg.Type.Bump != semver.BumpPatch {
		t.Errorf("Type.Bump = %q, want %q", msg.Type.Bump, semver.BumpPatch)
	}
	if msg.Project == nil || *msg.Project != "My Project" {
		t.Errorf("Project = %v, want My Project", msg.Project)
	}
	if msg.Version == nil || *msg.Version != (semver.Version{Major: 1, Minor: 0, Patch: 1}) {
		t.Errorf("Version = %v, want v1.0.1", msg.Version)
	}
	if msg.Body == nil || *msg.Body != "- Fixed bug" {
		t.Errorf("Body = %v, want %q", msg.Body, "- Fixed bug")
	}
}

func TestParseEmptyInput(t *testing.T) {
	t.Parallel()

	rules := DefaultRuleSet()

	for _, raw := range []string{"", "   ", "\n\n", "\t \n"} {
		msg := Parse(raw, rules)
		if msg.TypeToken != nil || msg.Type != nil || msg.Project != nil ||
			msg.Version != nil || msg.Body != nil {
			t.Errorf("Parse(%q) expected all structured fields nil, got %+v", raw, msg)
		}
		if msg.Raw != raw {
			t.Errorf("Parse(%q) Raw = %q, want original input", raw, msg.Raw)
		}
	}
}

func TestParseUnknownTypeKeepsToken(t *testing.T) {
	t.Parallel()

	rules := DefaultRuleSet()
	msg := Parse("HOTFIX: My Project - v1.0.1", rules)

	if msg.TypeToken == nil || *msg.TypeToken != "HOTFIX" {
		t.Fatalf("TypeToken = %v, want HOTFIX", msg.TypeToken)
	}
	if msg.Type != nil {
		t.Error("Type resolved for unconfigured type, want nil")
	}
	// The rest of the subject still parses so the validator can be specific.
	if msg.Project == nil || *msg.Project != "My Project" {
		t.Errorf("Project = %v, want My Project", msg.Project)
	}
	if msg.Version == nil {
		t.Error("Version = nil, want v1.0.1")
	}
}

func TestParseTypeIsCaseSensitive(t *testing.T) {
	t.Parallel()

	rules := DefaultRuleSet()
	msg := Parse("patch: X - v1.0.0", rules)

	if msg.TypeToken == nil || *msg.TypeToken != "patch" {
		t.Fatalf("TypeToken = %v, want raw token patch", msg.TypeToken)
	}
	if msg.Type != nil {
		t.Error("lowercase type resolved, want nil (no case folding)")
	}
}

func TestParseProjectWithHyphens(t *testing.T) {
	t.Parallel()

	rules := DefaultRuleSet()
	msg := Parse("UPDATE: my-cool-project - v2.3.0", rules)

	if msg.Project == nil || *msg.Project != "my-cool-project" {
		t.Errorf("Project = %v, want my-cool-project", msg.Project)
	}
	if msg.Version == nil || *msg.Version != (semver.Version{Major: 2, Minor: 3}) {
		t.Errorf("Version = %v, want v2.3.0", msg.Version)
	}
}

func TestParseSplitsAtLastVersionSeparator(t *testing.T) {
	t.Parallel()

	rules := DefaultRuleSet()
	msg := Parse("RELEASE: tool - v2 utils - v3.0.0", rules)

	if msg.Project == nil || *msg.Project != "tool - v2 utils" {
		t.Errorf("Project = %v, want %q", msg.Project, "tool - v2 utils")
	}
	if msg.Version == nil || *msg.Version != (semver.Version{Major: 3}) {
		t.Errorf("Version = %v, want v3.0.0", msg.Version)
	}
}

func TestParseMissingVersionPrefix(t *testing.T) {
	t.Parallel()

	rules := DefaultRuleSet()
	msg := Parse("RELEASE: My Project - 2.0.0", rules)

	if msg.Version != nil {
		t.Errorf("Version = %v, want nil for missing v prefix", msg.Version)
	}
	// Without a valid version token the remainder stays in the project.
	if msg.Project == nil || *msg.Project != "My Project - 2.0.0" {
		t.Errorf("Project = %v, want %q", msg.Project, "My Project - 2.0.0")
	}
}

func TestParseMalformedVersionToken(t *testing.T) {
	t.Parallel()

	rules := DefaultRuleSet()
	msg := Parse("PATCH: proj - v1.2", rules)

	if msg.Version != nil {
		t.Errorf("Version = %v, want nil for two-component token", msg.Version)
	}
}

func TestParseMissingTypeSeparator(t *testing.T) {
	t.Parallel()

	rules := DefaultRuleSet()

	for _, raw := range []string{"just some words", "PATCH:no space", ": leading separator - v1.0.0"} {
		msg := Parse(raw, rules)
		if msg.TypeToken != nil {
			t.Errorf("Parse(%q) TypeToken = %q, want nil", raw, *msg.TypeToken)
		}
	}
}

func TestParseBodyIsRawRemainder(t *testing.T) {
	t.Parallel()

	rules := DefaultRuleSet()
	raw := "PATCH: proj - v1.0.1\n\nline one\n\nline three"
	msg := Parse(raw, rules)

	if msg.Body == nil || *msg.Body != "line one\n\nline three" {
		t.Errorf("Body = %v, want raw remainder after first blank line", msg.Body)
	}
}

func TestParseNoBodyWithoutBlankSeparator(t *testing.T) {
	t.Parallel()

	rules := DefaultRuleSet()
	msg := Parse("PATCH: proj - v1.0.1", rules)

	if msg.Body != nil {
		t.Errorf("Body = %q, want nil", *msg.Body)
	}
}

func TestParseCRLFInput(t *testing.T) {
	t.Parallel()

	rules := DefaultRuleSet()
	msg := Parse("PATCH: proj - v1.0.1\r\n\r\nfixed", rules)

	if msg.Version == nil {
		t.Fatal("Version = nil, want v1.0.1 for CRLF input")
	}
	if msg.Body == nil || *msg.Body != "fixed" {
		t.Errorf("Body = %v, want fixed", msg.Body)
	}
}

func TestParseNilRuleSetPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("Parse(nil RuleSet) expected panic")
		}
	}()
	Parse("PATCH: x - v1.0.0", nil)
}
