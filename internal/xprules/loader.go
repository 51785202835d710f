package xprules

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/SkillQuest_Go/internal/domain"
	"github.com/osse101/SkillQuest_Go/internal/validation"
)

// Loader reads XP rules from a YAML file and validates them against a JSON schema
type Loader struct {
	schemaPath string
	validator  validation.SchemaValidator
}

// NewLoader creates a loader that validates against schemaPath
func NewLoader(schemaPath string, validator validation.SchemaValidator) *Loader {
	return &Loader{
		schemaPath: schemaPath,
		validator:  validator,
	}
}

// Load parses and validates the rules file at path
func (l *Loader) Load(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read XP rules file: %w", err)
	}
	return l.Parse(data)
}

// LoadOrDefault loads the rules file, falling back to DefaultRules when it does not exist
func (l *Loader) LoadOrDefault(path string) (*Rules, error) {
	rules, err := l.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Default().Warn("XP rules file not found, using built-in rules", "path", path)
		return DefaultRules(), nil
	}
	return rules, err
}

// Parse validates and decodes YAML rule data
func (l *Loader) Parse(data []byte) (*Rules, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to parse YAML: %v", domain.ErrInvalidXPRules, err)
	}

	if err := l.validator.ValidateDocument(doc, l.schemaPath); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidXPRules, err)
	}

	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("%w: failed to decode rules: %v", domain.ErrInvalidXPRules, err)
	}
	if err := rules.validate(); err != nil {
		return nil, err
	}
	if rules.DailyCap == 0 {
		rules.DailyCap = DefaultDailyCap
	}
	rules.index()

	return &rules, nil
}
