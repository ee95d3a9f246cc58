package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/csvmend/csvmend/internal/audit"
	"github.com/csvmend/csvmend/internal/pipeline"
	"github.com/csvmend/csvmend/internal/prompt"
)

var (
	version = "1.0.0"

	flagColumns   []string
	flagDelimiter string
	flagAuditDB   string
	flagNoInput   bool
	flagVerbose   bool
	flagQuiet     bool
)

var rootCmd = &cobra.Command{
	Use:   "csvmend <input.csv> <output.csv>",
	Short: "Repair unquoted CSV files with overflowing rows",
	Long: `csvmend repairs comma-delimited files in which free-text fields contain
unescaped delimiters, making some rows carry more fields than the header
declares. It profiles the well-formed rows, scores every possible merge for
each overflowing row, and asks for a decision only when the data is genuinely
ambiguous.`,
	Version: version,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepair(args[0], args[1])
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringSliceVarP(&flagColumns, "column", "c", []string{pipeline.DefaultColumn},
		"free-text column name(s) likely to contain unescaped delimiters")
	rootCmd.Flags().StringVarP(&flagDelimiter, "delimiter", "d", ",", "field delimiter")
	rootCmd.Flags().StringVar(&flagAuditDB, "audit-db", "", "sqlite database recording every repair (optional)")
	rootCmd.Flags().BoolVar(&flagNoInput, "no-input", false, "never prompt; fail on ambiguous rows")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose logging")
	rootCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress the summary")

	viper.SetEnvPrefix("CSVMEND")
	viper.AutomaticEnv()
	viper.BindPFlag("column", rootCmd.Flags().Lookup("column"))
	viper.BindPFlag("delimiter", rootCmd.Flags().Lookup("delimiter"))
	viper.BindPFlag("audit-db", rootCmd.Flags().Lookup("audit-db"))
	viper.BindPFlag("no-input", rootCmd.Flags().Lookup("no-input"))

	viper.SetConfigName("csvmend")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	if err := viper.ReadInConfig(); err == nil {
		// Config file values back the flags when those are left at defaults.
		flagColumns = viper.GetStringSlice("column")
		flagDelimiter = viper.GetString("delimiter")
		flagAuditDB = viper.GetString("audit-db")
		flagNoInput = viper.GetBool("no-input")
	}
}

func runRepair(inputFile, outputFile string) error {
	logger := zap.NewNop()
	if flagVerbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer dev.Sync()
		logger = dev
	}

	config := pipeline.Config{
		InputFile:  inputFile,
		OutputFile: outputFile,
		Columns:    flagColumns,
		Delimiter:  flagDelimiter,
		Chooser:    selectChooser(),
		Logger:     logger,
	}

	if flagAuditDB != "" {
		store, err := audit.Open(flagAuditDB)
		if err != nil {
			return err
		}
		defer store.Close()
		config.AuditStore = store
	}

	pipe, err := pipeline.NewPipeline(config)
	if err != nil {
		return err
	}

	if err := pipe.Run(); err != nil {
		return err
	}

	if !flagQuiet {
		printSummary(pipe, outputFile)
	}

	return nil
}

// selectChooser picks how ambiguous rows get resolved: never in --no-input
// mode, via an interactive form on a real terminal, and via a plain
// line-based prompt when stdin is piped.
func selectChooser() prompt.Chooser {
	if flagNoInput {
		return nil
	}
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return prompt.NewFormChooser()
	}
	return prompt.NewLineChooser(os.Stdin, os.Stdout)
}

func printSummary(pipe *pipeline.Pipeline, outputFile string) {
	summary := pipe.Summary()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Printf("\n%s Repaired file written to %s\n", green("✓"), outputFile)
	fmt.Printf("  Rows:      %d\n", summary.TotalRows)
	fmt.Printf("  Unchanged: %d\n", summary.PassedCount)
	if summary.RepairedCount() > 0 {
		fmt.Printf("  %s %d padded, %d merged, %d chosen interactively\n",
			yellow("Repaired:"), summary.PaddedCount, summary.MergedCount, summary.PromptedCount)
	}
	fmt.Printf("  Duration:  %s\n", summary.Duration.Round(time.Millisecond))
}
