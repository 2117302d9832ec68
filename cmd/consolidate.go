package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// consolidateCmd represents the consolidate command
var consolidateCmd = &cobra.Command{
	Use:   "consolidate <word-id> <primary-word-id>",
	Short: "Delete a word and fold its content into a surviving word",
	Long: `Deletes the word named by the first argument, folds its definitions,
variations (including its own headword), and stems into the surviving word,
relinks every example to the survivor, and archives the deleted record.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := wireServices()
		if err != nil {
			return err
		}

		primary, err := svcs.words.Delete(cmd.Context(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("consolidation failed: %w", err)
		}

		svcs.logger.Info("Word consolidated",
			zap.String("deleted_id", args[0]),
			zap.String("primary_id", primary.ID),
			zap.String("primary_word", primary.Word))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(consolidateCmd)
}
