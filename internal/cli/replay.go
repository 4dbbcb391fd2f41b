package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/agegold/driveralert/internal/storage"
	"github.com/agegold/driveralert/pkg/models"
)

var (
	replayMinSeverity string
	replayEvent       string
	replayJSON        bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <file.jsonl>",
	Short: "Inspect a recorded cycle log",
	Long: `Read back a cycle log written by simulate --log and print the cycles it
recorded: the run header, the events raised per cycle, and the alerts that
fired with their severities.

Narrow the output with --event (cycles that raised the event) and
--min-severity (cycles where an alert at or above the level fired).`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	filter := storage.CycleFilter{Event: replayEvent}
	if replayMinSeverity != "" {
		sev, err := models.ParseSeverity(replayMinSeverity)
		if err != nil {
			return err
		}
		filter.MinSeverity = sev
	}

	header, records, err := storage.ReadCycleLog(args[0], filter)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if replayJSON {
		payload := struct {
			Header storage.RunHeader     `json:"header"`
			Cycles []storage.CycleRecord `json:"cycles"`
		}{header, records}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling cycle log: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if header.RunID != "" {
		fmt.Fprintf(out, "Run %s: scenario %s, period %s, started %s\n",
			header.RunID, header.Scenario, header.Period,
			header.Start.Format(time.RFC3339))
	}
	fmt.Fprintf(out, "%d matching cycle(s)\n", len(records))

	for _, rec := range records {
		fmt.Fprintf(out, "\ncycle %-7d %s\n", rec.Cycle, strings.Join(rec.Events, ", "))
		for _, a := range rec.Alerts {
			fmt.Fprintf(out, "  %-38s [%s] %s\n", a.Tag, a.Severity, a.Text1)
		}
	}
	return nil
}

func init() {
	replayCmd.Flags().StringVar(&replayMinSeverity, "min-severity", "", "Only cycles where an alert at or above this level fired")
	replayCmd.Flags().StringVar(&replayEvent, "event", "", "Only cycles that raised this event")
	replayCmd.Flags().BoolVar(&replayJSON, "json", false, "Print the header and cycles as JSON")
	rootCmd.AddCommand(replayCmd)
}
