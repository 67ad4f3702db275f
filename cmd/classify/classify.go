// Package classify handles expense description classification commands
package classify

import (
	"fmt"

	"github.com/spf13/cobra"

	"receiptcsv/receipt-csv/cmd/root"
)

// Cmd represents the classify command
var Cmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a short expense description into a category",
	Long: `Classify resolves a short expense-entry phrase (for example "ランチ" or
"コンサートのチケット代") to an expense category through the tiered
classifier: cached results first, then local keyword matching, then the
external semantic classifier.

Example:
  receipt-csv classify -d "ランチ"`,
	RunE: classifyFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Description, "description", "d", "", "Expense description to classify")
	Cmd.Flags().StringVarP(&root.UserID, "user", "u", "local", "User identifier for caching and category lookup")
	_ = Cmd.MarkFlagRequired("description")
}

func classifyFunc(cmd *cobra.Command, args []string) error {
	result := root.App.Classifier().Classify(cmd.Context(), root.UserID, root.Description)

	if result.IsZero() {
		fmt.Printf("Category:   %s (fallback)\n", root.Cfg.AI.FallbackCategory)
		return nil
	}

	fmt.Printf("Category:   %s\n", result.Category)
	fmt.Printf("Confidence: %.2f\n", result.Confidence)
	if result.Reasoning != "" {
		fmt.Printf("Reasoning:  %s\n", result.Reasoning)
	}

	root.App.Classifier().Stats().LogSummary(root.App.Logger())
	return nil
}
