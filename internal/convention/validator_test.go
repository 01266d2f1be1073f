package convention

import (
	"strings"
	"testing"

	"github.com/vercom-dev/vercom/internal/semver"
)

func TestValidateEmptyMessage(t *testing.T) {
	t.Parallel()

	rules := DefaultRuleSet()

	for _, raw := range []string{"", "   ", "\n\t\n"} {
		result := Validate(raw, rules)
		if result.Valid {
			t.Errorf("Validate(%q) = valid, want invalid", raw)
		}
		if result.Error != "Message is required" {
			t.Errorf("Validate(%q) error = %q, want %q", raw, result.Error, "Message is required")
		}
	}
}

func TestValidateScenarioPatchWithBody(t *testing.T) {
	t.Parallel()

	rules := DefaultRuleSet()
	result := Validate("PATCH: My Project - v1.0.1\n\n- Fixed bug", rules)

	if !result.Valid {
		t.Fatalf("expected valid, got error: %q", result.Error)
	}
	parsed := result.Parsed
	if parsed == nil {
		t.Fatal("Parsed = nil on success")
	}
	if parsed.TypeToken == nil || *parsed.TypeToken != "PATCH" {
		t.Errorf("TypeToken = %v, want PATCH", parsed.TypeToken)
	}
	if parsed.Project == nil || *parsed.Project != "My Project" {
		t.Errorf("Project = %v, want My Project", parsed.Project)
	}
	want := semver.Version{Major: 1, Minor: 0, Patch: 1}
	if parsed.Version == nil || *parsed.Version != want {
		t.Errorf("Version = %v, want %v", parsed.Version, want)
	}
	if parsed.Body == nil || *parsed.Body != "- Fixed bug" {
		t.Errorf("Body = %v, want - Fixed bug", parsed.Body)
	}
}

func TestValidateCaseSensitivity(t *testing.T) {
	t.Parallel()

	rules := DefaultRuleSet()

	if result := Validate("PATCH: My Project - v1.0.0", rules); !result.Valid {
		t.Errorf("uppercase type rejected: %q", result.Error)
	}
	result := Validate("patch: My Project - v1.0.0", rules)
	if result.Valid {
		t.Error("lowercase type accepted, want rejection")
	}
	if !strings.Contains(result.Error, "patch") {
		t.Errorf("error %q does not name the offending type", result.Error)
	}
}

func TestValidateMissingType(t *testing.T) {
	t.Parallel()

	rules := DefaultRuleSet()
	result := Validate("fixed the thing", rules)

	if result.Valid {
		t.Fatal("message without type accepted")
	}
	if !strings.Contains(result.Error, "type is missing") {
		t.Errorf("error = %q, want a type-missing error", result.Error)
	}
}

func TestValidateUnknownTypeListsAllowed(t *testing.T) {
	t.Parallel()

	rules := DefaultRuleSet()
	result := Validate("HOTFIX: My Project - v1.0.1", rules)

	if result.Valid {
		t.Fatal("unknown type accepted")
	}
	for _, name := range []string{"HOTFIX", "RELEASE", "UPDATE", "PATCH"} {
		if !strings.Contains(result.Error, name) {
			t.Errorf("error %q does not mention %s", result.Error, name)
		}
	}
}

func TestValidateProjectRules(t *testing.T) {
	t.Parallel()

	t.Run("missing project", func(t *testing.T) {
		t.Parallel()

		rules := DefaultRuleSet()
		rules.SubjectMinLength = 1
		result := Validate("PATCH:  - v1.0.1", rules)
		if result.Valid {
			t.Fatal("missing project accepted")
		}
		if !strings.Contains(result.Error, "Project name is missing") {
			t.Errorf("error = %q, want project-missing", result.Error)
		}
	})

	t.Run("project too long", func(t *testing.T) {
		t.Parallel()

		rules := DefaultRuleSet()
		rules.ProjectNameMaxLength = 5
		result := Validate("PATCH: toolong - v1.0.1", rules)
		if result.Valid {
			t.Fatal("over-length project accepted")
		}
		if !strings.Contains(result.Error, "Project name") {
			t.Errorf("error = %q, want project-length", result.Error)
		}
	})

	t.Run("not required", func(t *testing.T) {
		t.Parallel()

		rules := DefaultRuleSet()
		rules.RequireProjectName = false
		rules.SubjectMinLength = 1
		result := Validate("PATCH:  - v1.0.1", rules)
		if !result.Valid {
			t.Errorf("project not required but rejected: %q", result.Error)
		}
	})
}

func TestValidateVersionRules(t *testing.T) {
	t.Parallel()

	t.Run("missing v prefix", func(t *testing.T) {
		t.Parallel()

		rules := DefaultRuleSet()
		result := Validate("RELEASE: My Project - 2.0.0", rules)
		if result.Valid {
			t.Fatal("bare numeric version accepted")
		}
		if !strings.Contains(result.Error, "Version is missing or malformed") {
			t.Errorf("error = %q, want version-malformed", result.Error)
		}
	})

	t.Run("missing version", func(t *testing.T) {
		t.Parallel()

		rules := DefaultRuleSet()
		result := Validate("UPDATE: My Project", rules)
		if result.Valid {
			t.Fatal("versionless message accepted")
		}
		if !strings.Contains(result.Error, "Version is missing or malformed") {
			t.Errorf("error = %q, want version-malformed", result.Error)
		}
	})

	t.Run("not required", func(t *testing.T) {
		t.Parallel()

		rules := DefaultRuleSet()
		rules.RequireVersion = false
		result := Validate("UPDATE: My Project", rules)
		if !result.Valid {
			t.Errorf("version not required but rejected: %q", result.Error)
		}
	})
}

func TestValidateSubjectLengthBoundaries(t *testing.T) {
	t.Parallel()

	subject := "PATCH: My Project - v1.0.1"
	length := len([]rune(subject)) // 26

	tests := []struct {
		name      string
		min, max  int
		wantValid bool
	}{
		{"exactly min", length, 100, true},
		{"one under min", length + 1, 100, false},
		{"exactly max", 1, length, true},
		{"one over max", 1, length - 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rules := DefaultRuleSet()
			rules.SubjectMinLength = tt.min
			rules.SubjectMaxLength = tt.max

			result := Validate(subject, rules)
			if result.Valid != tt.wantValid {
				t.Errorf("valid = %v (error %q), want %v", result.Valid, result.Error, tt.wantValid)
			}
		})
	}
}

func TestValidateBodyLineLength(t *testing.T) {
	t.Parallel()

	rules := DefaultRuleSet()
	rules.BodyLineLength = 10

	raw := "PATCH: My Project - v1.0.1\n\nshort\nthis line is much too long\nshort"
	result := Validate(raw, rules)
	if result.Valid {
		t.Fatal("over-length body line accepted")
	}
	if !strings.Contains(result.Error, "Body line 2") {
		t.Errorf("error = %q, want a complaint about body line 2", result.Error)
	}
}

func TestValidateSubjectLengthCountsRunes(t *testing.T) {
	t.Parallel()

	// 한글 project name: byte length differs from rune count.
	subject := "PATCH: 한글이름 - v1.0.1"
	rules := DefaultRuleSet()
	rules.SubjectMinLength = len([]rune(subject))

	if result := Validate(subject, rules); !result.Valid {
		t.Errorf("rune-length subject rejected: %q", result.Error)
	}

	rules.SubjectMinLength = len([]rune(subject)) + 1
	if result := Validate(subject, rules); result.Valid {
		t.Error("subject shorter than minimum accepted; length likely counted in bytes")
	}
}

func TestValidateCheckOrderShortCircuits(t *testing.T) {
	t.Parallel()

	// Unknown type and missing version at once: the type error wins.
	rules := DefaultRuleSet()
	result := Validate("hotfix: My Project", rules)
	if result.Valid {
		t.Fatal("expected invalid")
	}
	if !strings.Contains(result.Error, "Unknown commit type") {
		t.Errorf("error = %q, want the earlier unknown-type error", result.Error)
	}
}

func TestValidateNilRuleSetPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("Validate(nil RuleSet) expected panic")
		}
	}()
	Validate("PATCH: x - v1.0.0", nil)
}
