package convention

import (
	"fmt"
	"strings"

	"github.com/vercom-dev/vercom/internal/semver"
)

// Generate composes a canonical commit message from structured input by
// substituting {project} and {version} into the type's format template and
// appending the body after a blank line when present.
//
// Generate is the inverse of Parse: for any valid input whose project and
// body are free of the literal separator tokens, parsing the generated
// message reconstructs the same type, project, and version.
//
// An unknown type name returns ErrUnknownType; that is a caller-integration
// bug, not user input.
func Generate(typeName, project string, version semver.Version, body string, rules *RuleSet) (string, error) {
	if rules == nil {
		panic("convention: Generate called with nil RuleSet")
	}

	ct, ok := rules.Type(typeName)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownType, typeName)
	}

	subject := strings.NewReplacer(
		"{project}", project,
		"{version}", version.String(),
	).Replace(ct.Format)

	if strings.TrimSpace(body) == "" {
		return subject, nil
	}
	return subject + "\n\n" + body, nil
}
