package store

import (
	"os"
	"path/filepath"
	"testing"

	"dmeyer/txn-classify/internal/logging"
	"dmeyer/txn-classify/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const testCategoriesYAML = `categories:
  - name: "Food & Dining"
    merchants:
      - "Starbucks"
      - "Whole Foods Market"
    keywords:
      - "restaurant"
  - name: "Entertainment"
    merchants:
      - "Netflix"
    keywords:
      - "cinema"
`

const testRulesYAML = `merchant_ranges:
  starbucks:
    min_amount: 2
    max_amount: 50
    category: "Food & Dining"
    billing_cycles: ["monthly"]
    typical_range: "2-50"
  netflix:
    min_amount: 10
    max_amount: 25
    category: "Entertainment"
    billing_cycles: ["monthly", "yearly"]
`

const testLearnedYAML = `Shell Fuel Station:
  category: "Transportation"
  learned_date: "2024-01-15"
  method: "heuristic_match"
  confidence: 75
`

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func newTestStore(t *testing.T) *ConfigStore {
	t.Helper()
	dir := t.TempDir()
	categories := writeTestFile(t, dir, "categories.yaml", testCategoriesYAML)
	rules := writeTestFile(t, dir, "merchant_rules.yaml", testRulesYAML)
	learned := writeTestFile(t, dir, "learned_mappings.yaml", testLearnedYAML)

	store, err := NewConfigStore(categories, rules, learned, logging.NewMockLogger())
	require.NoError(t, err)
	return store
}

func TestNewConfigStore_LoadsAllTables(t *testing.T) {
	store := newTestStore(t)

	categories := store.Categories()
	require.Len(t, categories, 2)
	assert.Equal(t, "Food & Dining", categories[0].Name)
	assert.Equal(t, []string{"Starbucks", "Whole Foods Market"}, categories[0].Merchants)

	names, rules := store.MerchantRules()
	assert.Equal(t, []string{"netflix", "starbucks"}, names)
	assert.Equal(t, 50.0, rules["starbucks"].MaxAmount)
	assert.True(t, rules["netflix"].SupportsBillingCycle(models.BillingYearly))
}

func TestNewConfigStore_MissingCategoriesIsFatal(t *testing.T) {
	dir := t.TempDir()

	_, err := NewConfigStore(filepath.Join(dir, "absent.yaml"), "", "", logging.NewMockLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestNewConfigStore_MissingSecondaryTablesDegrade(t *testing.T) {
	dir := t.TempDir()
	categories := writeTestFile(t, dir, "categories.yaml", testCategoriesYAML)
	logger := logging.NewMockLogger()

	store, err := NewConfigStore(categories,
		filepath.Join(dir, "no_rules.yaml"),
		filepath.Join(dir, "no_learned.yaml"),
		logger)
	require.NoError(t, err)

	_, _, found := store.MatchMerchantRule("anything")
	assert.False(t, found)
	_, found = store.LookupLearnedMapping("anything")
	assert.False(t, found)
	assert.True(t, logger.HasEntry("WARN", "Merchant rules file not found, validation rules disabled"))
	assert.True(t, logger.HasEntry("WARN", "Learned mappings file not found, starting with an empty table"))
}

func TestMatchMerchantRule(t *testing.T) {
	store := newTestStore(t)

	name, rule, found := store.MatchMerchantRule("STARBUCKS STORE #4421")
	require.True(t, found)
	assert.Equal(t, "starbucks", name)
	assert.Equal(t, "Food & Dining", rule.Category)

	_, _, found = store.MatchMerchantRule("Unknown Vendor")
	assert.False(t, found)
}

func TestLookupLearnedMapping(t *testing.T) {
	store := newTestStore(t)

	mapping, found := store.LookupLearnedMapping("shell fuel station")
	require.True(t, found)
	assert.Equal(t, "Transportation", mapping.Category)

	// Containment in either direction also matches.
	mapping, found = store.LookupLearnedMapping("POS SHELL FUEL STATION 22")
	require.True(t, found)
	assert.Equal(t, "Transportation", mapping.Category)

	_, found = store.LookupLearnedMapping("corner bakery")
	assert.False(t, found)
}

func TestAddMerchantMapping(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.AddMerchantMapping("Corner Bakery", "Food & Dining"))
	assert.Contains(t, store.Categories()[0].Merchants, "Corner Bakery")

	// Persisted to disk.
	data, err := os.ReadFile(store.CategoriesFile)
	require.NoError(t, err)
	var persisted models.CategoriesConfig
	require.NoError(t, yaml.Unmarshal(data, &persisted))
	assert.Contains(t, persisted.Categories[0].Merchants, "Corner Bakery")
}

func TestAddMerchantMapping_DuplicateIsNoOp(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.AddMerchantMapping("STARBUCKS", "Food & Dining"))
	assert.Len(t, store.Categories()[0].Merchants, 2)
}

func TestAddMerchantMapping_UnknownCategory(t *testing.T) {
	store := newTestStore(t)

	err := store.AddMerchantMapping("Somewhere", "No Such Category")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	err = store.AddMerchantMapping("Somewhere", models.CategoryUncategorized)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestRecordLearnedMapping(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.RecordLearnedMapping("Corner Gym", "Healthcare", models.MethodHeuristic, 75))

	mapping, found := store.LookupLearnedMapping("corner gym")
	require.True(t, found)
	assert.Equal(t, "Healthcare", mapping.Category)
	assert.Equal(t, models.MethodHeuristic, mapping.Method)
	assert.NotEmpty(t, mapping.LearnedDate)

	// Persisted to disk, keyed lowercase.
	data, err := os.ReadFile(store.LearnedFile)
	require.NoError(t, err)
	var persisted map[string]models.LearnedMapping
	require.NoError(t, yaml.Unmarshal(data, &persisted))
	assert.Equal(t, "Healthcare", persisted["corner gym"].Category)
}

func TestRecordLearnedMapping_EmptyText(t *testing.T) {
	store := newTestStore(t)
	assert.Error(t, store.RecordLearnedMapping("   ", "Healthcare", models.MethodHeuristic, 75))
}

func TestCategoryExists(t *testing.T) {
	store := newTestStore(t)
	assert.True(t, store.CategoryExists("Entertainment"))
	assert.False(t, store.CategoryExists("entertainment"))
	assert.False(t, store.CategoryExists("Nope"))
}
