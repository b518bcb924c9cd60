// Package learn handles manual merchant-to-category mapping updates.
package learn

import (
	"dmeyer/txn-classify/cmd/root"
	"dmeyer/txn-classify/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the learn command
var Cmd = &cobra.Command{
	Use:   "learn",
	Short: "Add a merchant to a category's known-merchant list",
	Long: `Learn records a merchant name under an existing category so future
runs classify it with an exact merchant match.`,
	RunE: learnFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Merchant, "merchant", "m", "", "Merchant name to record")
	Cmd.Flags().StringVarP(&root.Category, "category", "c", "", "Category to record the merchant under")
	_ = Cmd.MarkFlagRequired("merchant")
	_ = Cmd.MarkFlagRequired("category")
}

func learnFunc(cmd *cobra.Command, args []string) error {
	st, err := root.OpenStore()
	if err != nil {
		return err
	}

	if err := st.AddMerchantMapping(root.Merchant, root.Category); err != nil {
		return err
	}

	root.Log.WithFields(
		logging.Field{Key: logging.FieldMerchant, Value: root.Merchant},
		logging.Field{Key: logging.FieldCategory, Value: root.Category},
	).Info("Merchant mapping recorded")
	return nil
}
