// Package process handles the full classify-and-validate run over a CSV file.
package process

import (
	"fmt"
	"strings"

	"dmeyer/txn-classify/cmd/root"
	"dmeyer/txn-classify/internal/csvio"
	"dmeyer/txn-classify/internal/logging"
	"dmeyer/txn-classify/internal/models"

	"github.com/spf13/cobra"
)

var (
	errorsFile        string
	uncategorizedFile string
)

// Cmd represents the process command
var Cmd = &cobra.Command{
	Use:   "process",
	Short: "Classify and validate a transactions CSV file",
	Long: `Process reads a CSV of transactions, validates each row against the
configured rules, classifies each description into a category, and writes
the annotated rows back out. Rows that fail validation or remain
uncategorized can be exported separately.`,
	RunE: processFunc,
}

func init() {
	Cmd.Flags().StringVar(&errorsFile, "errors", "", "Write rows that failed validation to this CSV file")
	Cmd.Flags().StringVar(&uncategorizedFile, "uncategorized", "", "Write uncategorized rows to this CSV file")
}

func processFunc(cmd *cobra.Command, args []string) error {
	if root.SharedFlags.Input == "" || root.SharedFlags.Output == "" {
		return fmt.Errorf("both --input and --output are required")
	}

	root.Log.WithFields(
		logging.Field{Key: logging.FieldInputFile, Value: root.SharedFlags.Input},
		logging.Field{Key: logging.FieldOutputFile, Value: root.SharedFlags.Output},
	).Info("Processing transactions file")

	st, err := root.OpenStore()
	if err != nil {
		return err
	}

	rows, err := csvio.ReadTransactions(root.SharedFlags.Input)
	if err != nil {
		return err
	}

	result, err := root.BuildPipeline(st).Process(cmd.Context(), rows)
	if err != nil {
		return err
	}

	if err := csvio.WriteTransactions(result.Rows, root.SharedFlags.Output); err != nil {
		return err
	}

	if errorsFile != "" && len(result.Findings) > 0 {
		if err := csvio.WriteFindings(result.Findings, errorsFile); err != nil {
			return err
		}
	}

	if uncategorizedFile != "" {
		var uncategorized []models.Transaction
		for _, row := range result.Rows {
			if !row.IsCategorized() {
				uncategorized = append(uncategorized, row)
			}
		}
		if len(uncategorized) > 0 {
			if err := csvio.WriteTransactions(uncategorized, uncategorizedFile); err != nil {
				return err
			}
		}
	}

	logCategoryBreakdown(result.Classification)
	return nil
}

func logCategoryBreakdown(summary models.ClassificationSummary) {
	for category, count := range summary.CategoryBreakdown {
		root.Log.WithFields(
			logging.Field{Key: logging.FieldCategory, Value: category},
			logging.Field{Key: logging.FieldCount, Value: count},
		).Debug("Category breakdown")
	}
	methods := make([]string, 0, len(summary.MethodBreakdown))
	for method, count := range summary.MethodBreakdown {
		methods = append(methods, fmt.Sprintf("%s=%d", method, count))
	}
	root.Log.WithField(logging.FieldMethod, strings.Join(methods, " ")).Debug("Method breakdown")
}
