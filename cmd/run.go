package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/autoreport/internal/analyze"
	"github.com/KaramelBytes/autoreport/internal/chart"
	"github.com/KaramelBytes/autoreport/internal/loader"
	"github.com/KaramelBytes/autoreport/internal/report"
	"github.com/KaramelBytes/autoreport/internal/utils"
)

var (
	runOut       string
	runMaxRows   int
	runSheet     string
	runDelimiter string
	runTopN      int
	runTitle     string
)

var runCmd = &cobra.Command{
	Use:   "run [input-file]",
	Short: "Analyze a data file and generate a PDF report",
	Long: `Run the full pipeline: load the input file, compute statistics and
insights, render charts, and write a PDF report. When the input file
argument is omitted you are prompted for a path.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveInputPath(args)
		if err != nil {
			return err
		}

		outPath := runOut
		if outPath == "" {
			base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			outPath = filepath.Join(cfg.OutputDir, fmt.Sprintf("report_%s.pdf", base))
		}
		runID := uuid.NewString()

		fmt.Printf("  File   : %s\n", path)
		fmt.Printf("  Output : %s\n", outPath)
		total := time.Now()

		// Load
		lopt := loader.DefaultOptions()
		if cfg.MaxRows > 0 {
			lopt.MaxRows = cfg.MaxRows
		}
		if len(cfg.Encodings) > 0 {
			lopt.Encodings = cfg.Encodings
		}
		if runMaxRows > 0 {
			lopt.MaxRows = runMaxRows
		}
		lopt.Sheet = runSheet
		if lopt.Delimiter, err = parseDelimiterFlag(runDelimiter); err != nil {
			return err
		}
		start := time.Now()
		table, meta, err := loader.Load(path, lopt)
		if err != nil {
			return fmt.Errorf("load %s: %w", filepath.Base(path), err)
		}
		if table.Empty() && strings.TrimSpace(meta.Text) == "" {
			return errors.New("input contains no table and no text to analyze")
		}
		if table.Empty() {
			fmt.Printf("✓ Loaded text document [%s, %s] in %s\n", meta.Format, meta.HumanSize, since(start))
		} else {
			fmt.Printf("✓ Loaded %d rows × %d columns [%s, %s] in %s\n",
				table.RowCount(), table.ColumnCount(), meta.Format, meta.HumanSize, since(start))
		}
		for _, w := range table.Warnings {
			fmt.Printf("⚠ %s\n", w)
		}

		// Analyze
		aopt := analyze.DefaultOptions()
		if cfg.TopN > 0 {
			aopt.TopN = cfg.TopN
		}
		if cfg.MaxCategorical > 0 {
			aopt.MaxCategorical = cfg.MaxCategorical
		}
		if runTopN > 0 {
			aopt.TopN = runTopN
		}
		start = time.Now()
		a, err := analyze.Analyze(table, meta, aopt)
		if err != nil {
			return fmt.Errorf("analyze: %w", err)
		}
		fmt.Printf("✓ Analyzed: %d numeric, %d categorical column(s), %d insight(s) in %s\n",
			a.Overview.NumericCols, a.Overview.CategoryCols, len(a.Insights), since(start))

		// Charts
		copt := chartOptions()
		start = time.Now()
		images, skipped := chart.Render(a, copt)
		fmt.Printf("✓ Rendered %d chart(s) in %s\n", len(images), since(start))
		for _, s := range skipped {
			slog.Debug("chart skipped", "reason", s)
		}

		// Report
		ropt := report.DefaultOptions()
		if cfg.ReportTitle != "" {
			ropt.Title = cfg.ReportTitle
		}
		if cfg.PageSize != "" {
			ropt.PageSize = cfg.PageSize
		}
		if runTitle != "" {
			ropt.Title = runTitle
		}
		ropt.RunID = runID
		start = time.Now()
		pdf, err := report.Build(report.Input{Meta: meta, Analysis: a, Charts: images, Skipped: skipped}, ropt)
		if err != nil {
			return fmt.Errorf("build report: %w", err)
		}
		if dir := filepath.Dir(outPath); dir != "." {
			if err := utils.EnsureDir(dir); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
		}
		if err := utils.SafeWriteFile(outPath, pdf); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Printf("✓ Wrote %s in %s\n", outPath, since(start))
		fmt.Printf("✓ Done in %s\n", since(total))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runOut, "out", "o", "", "output PDF path (default report_<input>.pdf)")
	runCmd.Flags().IntVar(&runMaxRows, "max-rows", 0, "maximum rows to process (0 = config default)")
	runCmd.Flags().StringVar(&runSheet, "sheet", "", "XLSX: sheet name to analyze (default first sheet)")
	runCmd.Flags().StringVar(&runDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | '|' | 'tab'")
	runCmd.Flags().IntVar(&runTopN, "top-n", 0, "category frequency table size")
	runCmd.Flags().StringVar(&runTitle, "title", "", "report title")
}

// chartOptions merges config values and flag overrides for chart rendering.
// The top-N override applies to the bar/pie category cap as well as the
// frequency tables.
func chartOptions() chart.Options {
	copt := chart.DefaultOptions()
	if cfg.ChartWidth > 0 {
		copt.Width = cfg.ChartWidth
	}
	if cfg.ChartHeight > 0 {
		copt.Height = cfg.ChartHeight
	}
	if cfg.HistogramBins > 0 {
		copt.Bins = cfg.HistogramBins
	}
	if cfg.MaxHistograms > 0 {
		copt.MaxHistograms = cfg.MaxHistograms
	}
	if cfg.TopN > 0 {
		copt.TopN = cfg.TopN
	}
	if runTopN > 0 {
		copt.TopN = runTopN
	}
	return copt
}

// resolveInputPath takes the positional argument or prompts for a path,
// stripping accidental shell quotes.
func resolveInputPath(args []string) (string, error) {
	var path string
	if len(args) > 0 {
		path = args[0]
	} else {
		fmt.Print("Enter path to your data file > ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return "", errors.New("no input file provided")
		}
		path = line
	}
	path = strings.Trim(strings.TrimSpace(path), `'"`)
	if path == "" {
		return "", errors.New("no input file provided")
	}
	return path, nil
}

func parseDelimiterFlag(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case ",":
		return ',', nil
	case ";":
		return ';', nil
	case "|":
		return '|', nil
	case "\t", "tab":
		return '\t', nil
	default:
		return 0, fmt.Errorf("unsupported --delimiter: %s", s)
	}
}

func since(t time.Time) string {
	return time.Since(t).Round(time.Millisecond).String()
}
