package convention

import "github.com/vercom-dev/vercom/internal/semver"

// VersionSuggestions produces one bump suggestion per configured commit
// type, applied to the current version. The sequence follows the RuleSet's
// type insertion order, not numeric magnitude, so the output is
// deterministic for a given configuration.
func VersionSuggestions(current semver.Version, rules *RuleSet) []Suggestion {
	if rules == nil {
		panic("convention: VersionSuggestions called with nil RuleSet")
	}

	names := rules.TypeNames()
	suggestions := make([]Suggestion, 0, len(names))
	for _, name := range names {
		ct, ok := rules.Type(name)
		if !ok {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Type:    name,
			Kind:    ct.Bump,
			Version: current.Bump(ct.Bump),
		})
	}
	return suggestions
}
