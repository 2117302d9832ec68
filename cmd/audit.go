package cmd

import (
	"context"
	"fmt"
	"os"

	"lexicon-manager/core/config"
	"lexicon-manager/core/database"
	"lexicon-manager/core/logger"
	"lexicon-manager/feature/audit"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// auditCmd represents the audit command
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Run consistency checks over the lexicon tables",
	Long:  `Checks cross-references, duplicate array values, merged suggestions, merge intents, and schema columns.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			cmd.Help()
			return
		}
		runAuditChecks(cmd.Context(), false, false, false, false)
	},
}

// referencesCmd represents the audit references command
var referencesCmd = &cobra.Command{
	Use:   "references",
	Short: "Check word/example cross-references",
	Run: func(cmd *cobra.Command, args []string) {
		runAuditChecks(cmd.Context(), true, false, false, false)
	},
}

// duplicatesCmd represents the audit duplicates command
var duplicatesCmd = &cobra.Command{
	Use:   "duplicates",
	Short: "Check for duplicate array values",
	Run: func(cmd *cobra.Command, args []string) {
		runAuditChecks(cmd.Context(), false, true, false, false)
	},
}

// suggestionsCmd represents the audit suggestions command
var suggestionsCmd = &cobra.Command{
	Use:   "suggestions",
	Short: "Check merged suggestions and merge intents",
	Run: func(cmd *cobra.Command, args []string) {
		runAuditChecks(cmd.Context(), false, false, true, false)
	},
}

// schemaCmd represents the audit schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the lexicon table schema",
	Run: func(cmd *cobra.Command, args []string) {
		runAuditChecks(cmd.Context(), false, false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(auditCmd)
	auditCmd.AddCommand(referencesCmd, duplicatesCmd, suggestionsCmd, schemaCmd)
}

func runAuditChecks(ctx context.Context, onlyReferences, onlyDuplicates, onlySuggestions, onlySchema bool) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logg.Fatal("Failed to connect to database", zap.Error(err))
	}

	svc := audit.NewService(db, logg)
	runReferences := onlyReferences || (!onlyDuplicates && !onlySuggestions && !onlySchema)
	runDuplicates := onlyDuplicates || (!onlyReferences && !onlySuggestions && !onlySchema)
	runSuggestions := onlySuggestions || (!onlyReferences && !onlyDuplicates && !onlySchema)
	runSchema := onlySchema || (!onlyReferences && !onlyDuplicates && !onlySuggestions)

	// Run Checks

	if runReferences {
		logg.Info("Checking cross-references...")
		exampleRefs, err := svc.CheckExampleReferences(ctx)
		if err != nil {
			logg.Fatal("Example reference check failed", zap.Error(err))
		}
		wordRefs, err := svc.CheckWordExamples(ctx)
		if err != nil {
			logg.Fatal("Word example check failed", zap.Error(err))
		}

		if len(exampleRefs) == 0 && len(wordRefs) == 0 {
			logg.Info("Cross-references are intact.")
		} else {
			for _, ref := range exampleRefs {
				logg.Warn("Example references missing word",
					zap.String("example_id", ref.RecordID), zap.String("word_id", ref.TargetID))
			}
			for _, ref := range wordRefs {
				logg.Warn("Word references missing example",
					zap.String("word_id", ref.RecordID), zap.String("example_id", ref.TargetID))
			}
		}
	}

	if runDuplicates {
		logg.Info("Checking for duplicate array values...")
		duplicates, err := svc.CheckDuplicates(ctx)
		if err != nil {
			logg.Fatal("Duplicate check failed", zap.Error(err))
		}

		if len(duplicates) == 0 {
			logg.Info("No duplicate array values found.")
		} else {
			for _, dup := range duplicates {
				logg.Warn("Duplicate values detected",
					zap.String("record_id", dup.RecordID), zap.String("field", dup.Field))
			}
		}
	}

	if runSuggestions {
		logg.Info("Checking merged suggestions and merge intents...")
		orphans, err := svc.CheckMergedSuggestions(ctx)
		if err != nil {
			logg.Fatal("Merged suggestion check failed", zap.Error(err))
		}
		stale, err := svc.CheckStaleIntents(ctx)
		if err != nil {
			logg.Fatal("Stale intent check failed", zap.Error(err))
		}

		if len(orphans) == 0 && len(stale) == 0 {
			logg.Info("Suggestions and intents are consistent.")
		} else {
			for _, o := range orphans {
				logg.Warn("Merged suggestion lost its canonical record",
					zap.String("suggestion_id", o.SuggestionID),
					zap.String("canonical_id", o.CanonicalID),
					zap.String("kind", o.Kind))
			}
			if len(stale) > 0 {
				logg.Warn("Incomplete merge cascades detected", zap.Strings("intent_ids", stale))
			}
		}
	}

	if runSchema {
		logg.Info("Checking schema...")
		report, err := svc.CheckSchema()
		if err != nil {
			logg.Fatal("Schema check failed", zap.Error(err))
		}

		if report.Healthy {
			logg.Info("Schema matches expected definition.")
		} else {
			for table, columns := range report.MissingColumns {
				logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", columns))
			}
		}
	}
}
