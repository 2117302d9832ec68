package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var mergedByFlag string

// mergeCmd represents the merge command
var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge a suggestion into its canonical record",
}

// mergeWordCmd merges a word suggestion by id.
var mergeWordCmd = &cobra.Command{
	Use:   "word <suggestion-id>",
	Short: "Merge a word suggestion, cascading over its nested example suggestions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := wireServices()
		if err != nil {
			return err
		}

		sug, err := svcs.words.GetSuggestion(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		populated, err := svcs.words.Merge(cmd.Context(), sug, mergedByFlag)
		if err != nil {
			return fmt.Errorf("word merge failed: %w", err)
		}

		svcs.logger.Info("Word suggestion merged",
			zap.String("suggestion_id", args[0]),
			zap.String("word_id", populated.ID),
			zap.String("word", populated.Word.Word),
			zap.Int("examples", len(populated.Examples)))
		return nil
	},
}

// mergeExampleCmd merges an example suggestion by id.
var mergeExampleCmd = &cobra.Command{
	Use:   "example <suggestion-id>",
	Short: "Merge an example suggestion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := wireServices()
		if err != nil {
			return err
		}

		ex, err := svcs.examples.Merge(cmd.Context(), args[0], mergedByFlag)
		if err != nil {
			return fmt.Errorf("example merge failed: %w", err)
		}

		svcs.logger.Info("Example suggestion merged",
			zap.String("suggestion_id", args[0]),
			zap.String("example_id", ex.ID))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(mergeCmd)
	mergeCmd.AddCommand(mergeWordCmd, mergeExampleCmd)
	mergeCmd.PersistentFlags().StringVar(&mergedByFlag, "merged-by", "cli", "Editor identity recorded on the merge stamp")
}
