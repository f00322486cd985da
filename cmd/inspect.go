package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/autoreport/internal/analyze"
	"github.com/KaramelBytes/autoreport/internal/loader"
	"github.com/KaramelBytes/autoreport/internal/utils"
)

var (
	insOutputPath string
	insMaxRows    int
	insSheet      string
	insDelimiter  string
	insTopN       int
	insJSON       bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Analyze a data file and print a concise summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		lopt := loader.DefaultOptions()
		if cfg.MaxRows > 0 {
			lopt.MaxRows = cfg.MaxRows
		}
		if len(cfg.Encodings) > 0 {
			lopt.Encodings = cfg.Encodings
		}
		if insMaxRows > 0 {
			lopt.MaxRows = insMaxRows
		}
		lopt.Sheet = insSheet
		var err error
		if lopt.Delimiter, err = parseDelimiterFlag(insDelimiter); err != nil {
			return err
		}
		table, meta, err := loader.Load(path, lopt)
		if err != nil {
			return fmt.Errorf("load %s: %w", filepath.Base(path), err)
		}

		aopt := analyze.DefaultOptions()
		if cfg.TopN > 0 {
			aopt.TopN = cfg.TopN
		}
		if insTopN > 0 {
			aopt.TopN = insTopN
		}
		a, err := analyze.Analyze(table, meta, aopt)
		if err != nil {
			return fmt.Errorf("analyze: %w", err)
		}

		var out []byte
		if insJSON {
			out, err = utils.PrettyJSON(a)
			if err != nil {
				return err
			}
		} else {
			out = []byte(a.Summary())
		}

		if insOutputPath != "" {
			if err := os.WriteFile(insOutputPath, out, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("✓ Wrote analysis to %s\n", insOutputPath)
			return nil
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVarP(&insOutputPath, "output", "o", "", "optional path to write the summary")
	inspectCmd.Flags().IntVar(&insMaxRows, "max-rows", 0, "maximum rows to process (0 = config default)")
	inspectCmd.Flags().StringVar(&insSheet, "sheet", "", "XLSX: sheet name to analyze (default first sheet)")
	inspectCmd.Flags().StringVar(&insDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | '|' | 'tab'")
	inspectCmd.Flags().IntVar(&insTopN, "top-n", 0, "category frequency table size")
	inspectCmd.Flags().BoolVar(&insJSON, "json", false, "emit the full analysis as JSON")
}
