// Package classify handles single-description classification.
package classify

import (
	"fmt"

	"dmeyer/txn-classify/cmd/root"
	"dmeyer/txn-classify/internal/classifier"
	"dmeyer/txn-classify/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the classify command
var Cmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a single transaction description",
	Long: `Classify runs one description through the classification cascade and
prints the resulting category, method, and confidence.`,
	RunE: classifyFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Description, "description", "d", "", "Transaction description to classify")
	_ = Cmd.MarkFlagRequired("description")
}

func classifyFunc(cmd *cobra.Command, args []string) error {
	st, err := root.OpenStore()
	if err != nil {
		return err
	}

	engine := classifier.NewEngine(st, root.Cfg.FuzzyThreshold(), root.Log)
	result := engine.Classify(cmd.Context(), root.Description)

	root.Log.WithFields(
		logging.Field{Key: logging.FieldCategory, Value: result.Category},
		logging.Field{Key: logging.FieldMethod, Value: result.Method},
		logging.Field{Key: logging.FieldConfidence, Value: result.Confidence},
	).Info("Classification result")

	fmt.Printf("Category: %s (method: %s, confidence: %.0f)\n", result.Category, result.Method, result.Confidence)
	return nil
}
