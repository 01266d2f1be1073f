package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/shu-go/findcfg"
	"github.com/shu-go/orderedmap"
	"gopkg.in/yaml.v3"

	"github.com/vercom-dev/vercom/internal/convention"
)

// Load discovers and loads the rule document, returning the compiled
// RuleSet and the path it came from. Discovery order: an explicit path (if
// non-empty), the repository root, the user config directory, then the
// executable directory. When no file is found the compiled defaults are
// returned with the finder's fallback path.
func Load(rootDir, exactPath string) (*convention.RuleSet, string, error) {
	finder := newFinder(rootDir, exactPath)

	found := finder.Find()
	if found == nil {
		slog.Debug("no rule file found, using defaults", "fallback", finder.FallbackPath())
		return convention.DefaultRuleSet(), finder.FallbackPath(), nil
	}

	doc, err := loadDocument(found.Path)
	if err != nil {
		return nil, found.Path, err
	}

	if err := Validate(doc); err != nil {
		return nil, found.Path, err
	}

	rules, err := Compile(doc)
	if err != nil {
		return nil, found.Path, err
	}

	slog.Debug("rule file loaded", "path", found.Path)
	return rules, found.Path, nil
}

// newFinder builds the rule-file finder for the given repository root.
func newFinder(rootDir, exactPath string) *findcfg.Finder {
	return findcfg.New(
		findcfg.Name(RuleFileName),
		findcfg.ExactPath(exactPath),
		findcfg.YAML(),
		findcfg.JSON(),
		findcfg.Dir(rootDir),
		findcfg.UserConfigDir(UserConfigFolder),
		findcfg.ExecutableDir(),
	)
}

// loadDocument reads a rule file and merges it over the defaults. A file
// that defines no types at all keeps the built-in type table; a file that
// defines any type replaces the table wholesale, so users can redefine the
// enumeration completely.
func loadDocument(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule file %s: %w", path, err)
	}

	doc := NewDefaultDocument()
	doc.Types = orderedmap.New[string, TypeSection]()

	if err := unmarshalDocument(path, content, doc); err != nil {
		return nil, err
	}

	if len(doc.Types.Keys()) == 0 {
		doc.Types = defaultTypeSections()
	}
	return doc, nil
}

// unmarshalDocument decodes by extension, falling back to trying YAML then
// JSON for unknown extensions.
func unmarshalDocument(path string, content []byte, doc *Document) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, doc); err != nil {
			return fmt.Errorf("parse rule file %s: %w", path, err)
		}
		return nil
	case ".json":
		if err := json.Unmarshal(content, doc); err != nil {
			return fmt.Errorf("parse rule file %s: %w", path, err)
		}
		return nil
	}

	if yaml.Unmarshal(content, doc) == nil {
		return nil
	}
	if json.Unmarshal(content, doc) == nil {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownEncoding, path)
}

// WriteDefault writes the default rule document as YAML to path. Used by
// "vercom init". Fails if the file exists unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config: %s already exists (use --force to overwrite)", path)
		}
	}

	content, err := yaml.Marshal(NewDefaultDocument())
	if err != nil {
		return fmt.Errorf("marshal default rules: %w", err)
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write rule file %s: %w", path, err)
	}
	return nil
}
