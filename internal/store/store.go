// Package store manages loading, mutation, and persistence of the
// classification configuration: the category mapping, merchant validation
// rules, and the learned-mapping table.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"dmeyer/txn-classify/internal/dateutils"
	"dmeyer/txn-classify/internal/logging"
	"dmeyer/txn-classify/internal/models"

	"gopkg.in/yaml.v3"
)

var (
	// ErrConfigNotFound indicates the primary category mapping file is
	// missing. Classification cannot proceed without it.
	ErrConfigNotFound = errors.New("category mapping file not found")

	// ErrUnknownCategory indicates a mapping mutation targeted a category
	// that does not exist in the store.
	ErrUnknownCategory = errors.New("unknown category")
)

// ConfigStore owns the four logical configuration tables. Construct one
// store per run; the learned-mapping table is the only mutable state and is
// guarded by a single writer lock.
type ConfigStore struct {
	CategoriesFile    string
	MerchantRulesFile string
	LearnedFile       string

	logger logging.Logger

	mu            sync.RWMutex
	categories    []models.CategoryConfig
	merchantRules map[string]models.MerchantRule
	ruleNames     []string // sorted for deterministic matching
	learned       map[string]models.LearnedMapping
	learnedKeys   []string // sorted for deterministic matching
}

// NewConfigStore creates a store over the given table files and loads them.
// A missing or unreadable secondary table (merchant rules, learned mappings)
// degrades to an empty table with a warning; a missing category mapping is
// fatal and surfaces as ErrConfigNotFound.
func NewConfigStore(categoriesFile, rulesFile, learnedFile string, logger logging.Logger) (*ConfigStore, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	s := &ConfigStore{
		CategoriesFile:    categoriesFile,
		MerchantRulesFile: rulesFile,
		LearnedFile:       learnedFile,
		logger:            logger,
		merchantRules:     map[string]models.MerchantRule{},
		learned:           map[string]models.LearnedMapping{},
	}

	if err := s.loadCategories(); err != nil {
		return nil, err
	}
	s.loadMerchantRules()
	s.loadLearnedMappings()

	return s, nil
}

// FindConfigFile looks for a configuration file in standard locations.
func FindConfigFile(filename string) (string, error) {
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
		configPath := filepath.Join(homeDir, ".config", "txn-classify", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

func (s *ConfigStore) loadCategories() error {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	filePath, err := FindConfigFile(filename)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrConfigNotFound, filename)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("error reading categories file: %w", err)
	}

	var categoriesConfig models.CategoriesConfig
	if err := yaml.Unmarshal(data, &categoriesConfig); err != nil {
		return fmt.Errorf("error parsing categories file: %w", err)
	}
	if len(categoriesConfig.Categories) == 0 {
		// Fallback: file holds a bare array without the top-level key
		var categories []models.CategoryConfig
		if err := yaml.Unmarshal(data, &categories); err == nil {
			categoriesConfig.Categories = categories
		}
	}

	s.categories = categoriesConfig.Categories
	s.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(s.categories)},
		logging.Field{Key: logging.FieldFile, Value: filePath},
	).Debug("Loaded categories")
	return nil
}

func (s *ConfigStore) loadMerchantRules() {
	filename := s.MerchantRulesFile
	if filename == "" {
		filename = "merchant_rules.yaml"
	}

	filePath, err := FindConfigFile(filename)
	if err != nil {
		s.logger.WithField(logging.FieldFile, filename).Warn("Merchant rules file not found, validation rules disabled")
		return
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		s.logger.WithError(err).WithField(logging.FieldFile, filePath).Warn("Failed to read merchant rules, validation rules disabled")
		return
	}

	var rules models.ValidationRulesConfig
	if err := yaml.Unmarshal(data, &rules); err != nil {
		s.logger.WithError(err).WithField(logging.FieldFile, filePath).Warn("Failed to parse merchant rules, validation rules disabled")
		return
	}

	s.merchantRules = rules.MerchantRanges
	if s.merchantRules == nil {
		s.merchantRules = map[string]models.MerchantRule{}
	}
	s.ruleNames = sortedKeysRules(s.merchantRules)
	s.logger.WithField(logging.FieldCount, len(s.merchantRules)).Debug("Loaded merchant rules")
}

func (s *ConfigStore) loadLearnedMappings() {
	filename := s.LearnedFile
	if filename == "" {
		filename = "learned_mappings.yaml"
	}

	filePath, err := FindConfigFile(filename)
	if err != nil {
		s.logger.WithField(logging.FieldFile, filename).Warn("Learned mappings file not found, starting with an empty table")
		return
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		s.logger.WithError(err).WithField(logging.FieldFile, filePath).Warn("Failed to read learned mappings, starting with an empty table")
		return
	}

	var learned map[string]models.LearnedMapping
	if err := yaml.Unmarshal(data, &learned); err != nil {
		s.logger.WithError(err).WithField(logging.FieldFile, filePath).Warn("Failed to parse learned mappings, starting with an empty table")
		return
	}

	s.learned = map[string]models.LearnedMapping{}
	for key, mapping := range learned {
		s.learned[strings.ToLower(key)] = mapping
	}
	s.learnedKeys = sortedKeysLearned(s.learned)
	s.logger.WithField(logging.FieldCount, len(s.learned)).Debug("Loaded learned mappings")
}

// Categories returns the category mapping in stored (insertion) order.
func (s *ConfigStore) Categories() []models.CategoryConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categories
}

// CategoryExists reports whether a category name is present in the store.
func (s *ConfigStore) CategoryExists(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.Name == name {
			return true
		}
	}
	return false
}

// MerchantRules returns rule names in sorted order with their rules.
func (s *ConfigStore) MerchantRules() ([]string, map[string]models.MerchantRule) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ruleNames, s.merchantRules
}

// MatchMerchantRule finds the first merchant rule whose name matches the
// description by case-insensitive substring containment in either direction.
// Rule names are scanned in sorted order so results are reproducible.
func (s *ConfigStore) MatchMerchantRule(description string) (string, models.MerchantRule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	desc := strings.ToLower(description)
	for _, name := range s.ruleNames {
		merchant := strings.ToLower(name)
		if strings.Contains(desc, merchant) || strings.Contains(merchant, desc) {
			return name, s.merchantRules[name], true
		}
	}
	return "", models.MerchantRule{}, false
}

// LookupLearnedMapping finds a learned category for the description, first
// by exact key, then by substring containment in either direction over the
// sorted key list.
func (s *ConfigStore) LookupLearnedMapping(description string) (models.LearnedMapping, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	desc := strings.ToLower(description)
	if mapping, ok := s.learned[desc]; ok {
		return mapping, true
	}
	for _, key := range s.learnedKeys {
		if strings.Contains(desc, key) || strings.Contains(key, desc) {
			return s.learned[key], true
		}
	}
	return models.LearnedMapping{}, false
}

// AddMerchantMapping appends a merchant to a category's merchant list and
// persists the category mapping synchronously. Adding to a category that
// does not exist (or to the reserved Uncategorized bucket) fails with
// ErrUnknownCategory; adding a merchant that is already listed is a no-op.
func (s *ConfigStore) AddMerchantMapping(merchant, category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if category == models.CategoryUncategorized {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}

	idx := -1
	for i, c := range s.categories {
		if c.Name == category {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}

	for _, existing := range s.categories[idx].Merchants {
		if strings.EqualFold(existing, merchant) {
			s.logger.WithFields(
				logging.Field{Key: logging.FieldMerchant, Value: merchant},
				logging.Field{Key: logging.FieldCategory, Value: category},
			).Debug("Merchant already mapped, skipping")
			return nil
		}
	}

	s.categories[idx].Merchants = append(s.categories[idx].Merchants, merchant)
	if err := s.saveCategories(); err != nil {
		return fmt.Errorf("error persisting category mapping: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldMerchant, Value: merchant},
		logging.Field{Key: logging.FieldCategory, Value: category},
	).Info("Added merchant mapping")
	return nil
}

// RecordLearnedMapping upserts a learned mapping keyed by normalized
// description text and persists the table synchronously.
func (s *ConfigStore) RecordLearnedMapping(text, category, method string, confidence float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(strings.TrimSpace(text))
	if key == "" {
		return fmt.Errorf("empty mapping text")
	}

	if _, exists := s.learned[key]; !exists {
		s.learnedKeys = append(s.learnedKeys, key)
		sort.Strings(s.learnedKeys)
	}
	s.learned[key] = models.LearnedMapping{
		Category:    category,
		LearnedDate: dateutils.ToISODate(time.Now()),
		Method:      method,
		Confidence:  confidence,
	}

	if err := s.saveLearnedMappings(); err != nil {
		return fmt.Errorf("error persisting learned mappings: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldMerchant, Value: key},
		logging.Field{Key: logging.FieldCategory, Value: category},
		logging.Field{Key: logging.FieldMethod, Value: method},
	).Debug("Recorded learned mapping")
	return nil
}

func (s *ConfigStore) saveCategories() error {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}
	return writeYAMLFile(filename, models.CategoriesConfig{Categories: s.categories})
}

func (s *ConfigStore) saveLearnedMappings() error {
	filename := s.LearnedFile
	if filename == "" {
		filename = "learned_mappings.yaml"
	}
	return writeYAMLFile(filename, s.learned)
}

func writeYAMLFile(filename string, value interface{}) error {
	filePath, err := FindConfigFile(filename)
	if err != nil {
		// New file: write next to the working directory
		filePath = filename
	}

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("error marshaling %s: %w", filename, err)
	}
	if err := os.WriteFile(filePath, data, models.PermissionConfigFile); err != nil {
		return fmt.Errorf("error writing %s: %w", filename, err)
	}
	return nil
}

func sortedKeysRules(m map[string]models.MerchantRule) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedKeysLearned(m map[string]models.LearnedMapping) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
