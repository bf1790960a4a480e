// Package store provides loading and saving of category rule configuration.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zxfpro/expenditure-analyse/internal/logging"
	"github.com/zxfpro/expenditure-analyse/internal/models"

	"gopkg.in/yaml.v3"
)

// RuleStore manages loading and saving of the ordered category rule set.
// Rules are stored as a YAML list so that rule precedence survives the
// round trip; a mapping form would lose ordering.
type RuleStore struct {
	RulesFile string
	logger    logging.Logger
}

// NewRuleStore creates a store for category rules. An empty rulesFile means
// the default search locations are consulted for "rules.yaml".
func NewRuleStore(rulesFile string, logger logging.Logger) *RuleStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &RuleStore{
		RulesFile: rulesFile,
		logger:    logger,
	}
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *RuleStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "expenditure-analyse", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadRules loads the category rule set from the YAML file. A missing file
// is not an error: the built-in defaults are returned so the pipeline can
// run without any configuration on disk.
func (s *RuleStore) LoadRules() (models.RuleSet, error) {
	filename := s.RulesFile
	if filename == "" {
		filename = "rules.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField(logging.FieldFile, filename).
				Debug("Rules file not found, using default category rules")
			return models.DefaultRules(), nil
		}
		return nil, fmt.Errorf("error resolving rules file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading rules file: %w", err)
	}

	var rulesConfig models.RulesConfig
	if err := yaml.Unmarshal(data, &rulesConfig); err == nil && len(rulesConfig.Categories) > 0 {
		s.logger.WithFields(
			logging.Field{Key: logging.FieldFile, Value: filePath},
			logging.Field{Key: logging.FieldCount, Value: len(rulesConfig.Categories)},
		).Debug("Loaded category rules")
		return rulesConfig.Categories, nil
	}

	// Fallback: the file may be a bare list without the top-level key.
	var rules models.RuleSet
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("error parsing rules file: %w", err)
	}
	if len(rules) == 0 {
		return models.DefaultRules(), nil
	}
	return rules, nil
}

// SaveRules writes the rule set back to the YAML file, creating parent
// directories as needed.
func (s *RuleStore) SaveRules(rules models.RuleSet) error {
	filename := s.RulesFile
	if filename == "" {
		filename = "rules.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if err != os.ErrNotExist {
			return fmt.Errorf("error resolving rules file: %w", err)
		}
		filePath = filename
	}

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(models.RulesConfig{Categories: rules})
	if err != nil {
		return fmt.Errorf("error marshaling rules: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing rules file: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(rules)},
	).Debug("Saved category rules")
	return nil
}
