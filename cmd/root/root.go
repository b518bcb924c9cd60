// Package root contains the root command for the application
package root

import (
	"fmt"

	"dmeyer/txn-classify/internal/classifier"
	"dmeyer/txn-classify/internal/cleaner"
	"dmeyer/txn-classify/internal/config"
	"dmeyer/txn-classify/internal/csvio"
	"dmeyer/txn-classify/internal/logging"
	"dmeyer/txn-classify/internal/pipeline"
	"dmeyer/txn-classify/internal/store"
	"dmeyer/txn-classify/internal/validator"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logging.GetLogger()

	// Cfg holds the loaded configuration after PersistentPreRun
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "txn-classify",
		Short: "A CLI tool to classify and validate financial transactions.",
		Long: `txn-classify is a CLI tool that classifies CSV transaction rows into
spending categories and validates amounts and dates against configured rules.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to txn-classify!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				return fmt.Errorf("error loading configuration: %w", err)
			}
			Cfg = cfg

			Log = logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg))
			logging.SetDefaultLogger(Log)
			csvio.SetLogger(Log)
			return nil
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific classify command flags
	Description string

	// Specific learn command flags
	Merchant string
	Category string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output CSV file")
}

// OpenStore locates and loads the configuration data files. The primary
// category mapping is required; the other tables may be absent.
func OpenStore() (*store.ConfigStore, error) {
	categoriesFile, err := store.FindConfigFile(Cfg.Files.Categories)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", store.ErrConfigNotFound, Cfg.Files.Categories)
	}
	rulesFile, _ := store.FindConfigFile(Cfg.Files.MerchantRules)
	learnedFile, _ := store.FindConfigFile(Cfg.Files.LearnedMappings)
	if learnedFile == "" {
		// New mappings still need somewhere to land.
		learnedFile = Cfg.Files.LearnedMappings
	}
	return store.NewConfigStore(categoriesFile, rulesFile, learnedFile, Log)
}

// BuildPipeline assembles the processing pipeline on top of the store.
func BuildPipeline(st *store.ConfigStore) *pipeline.Pipeline {
	cls := classifier.NewEngine(st, Cfg.FuzzyThreshold(), Log)
	val := validator.NewEngine(st, Cfg, Log)
	return pipeline.New(cleaner.New(Log), cls, val, Log)
}
