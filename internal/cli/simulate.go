package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/agegold/driveralert/internal/loop"
	"github.com/agegold/driveralert/internal/storage"
	"github.com/agegold/driveralert/pkg/models"
)

var (
	simulateJSON bool
	simulateLog  string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <scenario>",
	Short: "Batch-run a scenario and print the run summary",
	Long: `Run a drive scenario through the arbitration engine as fast as possible,
one arbitration pass per cycle, and report what fired.

Cycles that raised events or fired alerts can be recorded to a JSONL cycle
log with --log for later inspection.`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if Registry == nil || Scenarios == nil {
		return fmt.Errorf("services not initialized")
	}

	scenario, err := Scenarios.Load(args[0])
	if err != nil {
		return err
	}

	runner, err := loop.NewRunner(scenario, Registry)
	if err != nil {
		return fmt.Errorf("building runner: %w", err)
	}

	var cycleLog storage.CycleLog
	if simulateLog != "" {
		cycleLog, err = storage.NewCycleLog(simulateLog)
		if err != nil {
			return err
		}
		defer cycleLog.Close()
		header := storage.NewRunHeader(scenario.Name, runner.Period())
		if err := cycleLog.WriteHeader(header); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	var bar *progressbar.ProgressBar
	if !simulateJSON {
		bar = newCycleBar(out, int64(runner.TotalCycles()), "simulating "+scenario.Name)
	}

	summary := loop.NewSummary(scenario.Name)
	err = runner.Run(cmd.Context(), func(f loop.Frame) error {
		summary.Observe(f)
		if bar != nil {
			_ = bar.Add(1)
		}
		if cycleLog != nil && (len(f.Active) > 0 || len(f.Alerts) > 0) {
			if err := cycleLog.Write(frameToRecord(f)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("running scenario: %w", err)
	}
	if bar != nil {
		_ = bar.Finish()
	}

	if simulateJSON {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling summary: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	printSummary(out, summary, runner.Period())
	if simulateLog != "" {
		fmt.Fprintf(out, "\nCycle log written to %s\n", simulateLog)
	}
	return nil
}

func newCycleBar(out io.Writer, total int64, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
		}),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

func frameToRecord(f loop.Frame) storage.CycleRecord {
	rec := storage.CycleRecord{
		Cycle:  f.Cycle,
		Events: f.Active,
	}
	for _, a := range f.Alerts {
		rec.Alerts = append(rec.Alerts, storage.AlertRecord{
			Tag:      a.Tag,
			Severity: a.Severity,
			Text1:    a.Text1,
			Text2:    a.Text2,
		})
	}
	return rec
}

func printSummary(out io.Writer, s *loop.Summary, period time.Duration) {
	fmt.Fprintf(out, "\nScenario %s: %d cycles at %s, %d alert(s) fired\n",
		s.Scenario, s.Cycles, period, s.AlertsFired)

	if s.First != nil {
		fmt.Fprintf(out, "  first:         cycle %-6d %s\n", s.First.Cycle, s.First.Tag)
	}
	if s.MostCritical != nil {
		fmt.Fprintf(out, "  most critical: cycle %-6d %s [%s]\n",
			s.MostCritical.Cycle, s.MostCritical.Tag, s.MostCritical.Severity)
	}

	if len(s.BySeverity) > 0 {
		fmt.Fprintf(out, "\n  %-18s %s\n", "SEVERITY", "COUNT")
		for i := int(models.SeverityHighest); i >= int(models.SeverityLowest); i-- {
			name := models.Severity(i).String()
			if count, ok := s.BySeverity[name]; ok {
				fmt.Fprintf(out, "  %-18s %d\n", name, count)
			}
		}
	}

	if len(s.ByTag) > 0 {
		type tagCount struct {
			tag   string
			count int
		}
		tags := make([]tagCount, 0, len(s.ByTag))
		for tag, count := range s.ByTag {
			tags = append(tags, tagCount{tag, count})
		}
		slices.SortFunc(tags, func(a, b tagCount) int {
			if a.count != b.count {
				return b.count - a.count
			}
			return strings.Compare(a.tag, b.tag)
		})
		if len(tags) > 5 {
			tags = tags[:5]
		}
		fmt.Fprintf(out, "\n  %-38s %s\n", "TOP ALERTS", "COUNT")
		for _, tc := range tags {
			fmt.Fprintf(out, "  %-38s %d\n", tc.tag, tc.count)
		}
	}
}

func init() {
	simulateCmd.Flags().BoolVar(&simulateJSON, "json", false, "Print the summary as JSON")
	simulateCmd.Flags().StringVar(&simulateLog, "log", "", "Record eventful cycles to this JSONL file")
	rootCmd.AddCommand(simulateCmd)
}
