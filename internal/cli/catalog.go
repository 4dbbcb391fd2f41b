package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/agegold/driveralert/internal/events"
	"github.com/agegold/driveralert/pkg/models"
)

var (
	catalogType   string
	catalogFormat string
)

type catalogRow struct {
	Name  string   `json:"name" yaml:"name"`
	Types []string `json:"types" yaml:"types"`
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the event catalog",
	Long: `List the events the arbitration engine knows about and the alert types
each one carries. Filter with --type and pick an output format with
--format.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Registry == nil {
			return fmt.Errorf("registry not initialized")
		}

		var filter models.EventType
		if catalogType != "" {
			parsed, err := models.ParseEventType(catalogType)
			if err != nil {
				return err
			}
			filter = parsed
		}

		rows := catalogRows(Registry, filter)
		out := cmd.OutOrStdout()

		switch catalogFormat {
		case "table":
			fmt.Fprintf(out, "%-28s %s\n", "EVENT", "TYPES")
			for _, r := range rows {
				fmt.Fprintf(out, "%-28s %s\n", r.Name, strings.Join(r.Types, ", "))
			}
			fmt.Fprintf(out, "\n%d event(s)\n", len(rows))
		case "json":
			data, err := json.MarshalIndent(rows, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling catalog: %w", err)
			}
			fmt.Fprintln(out, string(data))
		case "yaml":
			data, err := yaml.Marshal(rows)
			if err != nil {
				return fmt.Errorf("marshaling catalog: %w", err)
			}
			fmt.Fprint(out, string(data))
		default:
			return fmt.Errorf("unknown format %q: must be table, json or yaml", catalogFormat)
		}

		return nil
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <event>",
	Short: "Show every alert one event carries",
	Long: `Print the full per-type alert details of one catalog event: texts, cues,
display timings and creation delays. Dynamic alerts are resolved against
the configured car and snapshot defaults.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Registry == nil {
			return fmt.Errorf("registry not initialized")
		}

		id, err := models.ParseEventID(args[0])
		if err != nil {
			return err
		}
		specs, ok := Registry[id]
		if !ok {
			return fmt.Errorf("event %q has no catalog entry", args[0])
		}

		out := cmd.OutOrStdout()
		ctx := engineContext()

		fmt.Fprintf(out, "%s\n\n", id)
		for _, typ := range models.AllEventTypes {
			spec, ok := specs[typ]
			if !ok {
				continue
			}
			printAlertDetail(out, typ, spec, ctx)
		}

		return nil
	},
}

func printAlertDetail(out io.Writer, typ models.EventType, spec events.Spec, ctx events.Context) {
	a := spec.Resolve(ctx)

	fmt.Fprintf(out, "%s:\n", typ)
	text := a.Text1
	if a.Text2 != "" {
		if text != "" {
			text += " / "
		}
		text += a.Text2
	}
	if text == "" {
		text = "(silent)"
	}
	fmt.Fprintf(out, "  text:     %s\n", text)
	fmt.Fprintf(out, "  severity: %s\n", a.Severity)
	fmt.Fprintf(out, "  status:   %-12s size:    %s\n", a.Status, a.Size)
	fmt.Fprintf(out, "  visual:   %-12s audible: %s\n", a.Visual, a.Audible)
	if a.CreationDelay > 0 {
		fmt.Fprintf(out, "  delay:    fires after %s of continuous presence\n", a.CreationDelay)
	}
	if a.Rate > 0 {
		fmt.Fprintf(out, "  blink:    %.2f\n", a.Rate)
	}
	if spec.IsDynamic() {
		fmt.Fprintf(out, "  dynamic:  resolved against live vehicle state\n")
	}
	fmt.Fprintln(out)
}

// catalogRows flattens the registry into name-sorted rows, keeping each
// event's types in canonical order.
func catalogRows(registry events.Registry, filter models.EventType) []catalogRow {
	rows := make([]catalogRow, 0, len(registry))
	for _, id := range models.EventIDs() {
		specs, ok := registry[id]
		if !ok {
			continue
		}
		if filter != "" {
			if _, ok := specs[filter]; !ok {
				continue
			}
		}
		types := make([]string, 0, len(specs))
		for _, typ := range models.AllEventTypes {
			if _, ok := specs[typ]; ok {
				types = append(types, string(typ))
			}
		}
		rows = append(rows, catalogRow{Name: id.String(), Types: types})
	}
	slices.SortFunc(rows, func(a, b catalogRow) int {
		return strings.Compare(a.Name, b.Name)
	})
	return rows
}

func init() {
	catalogCmd.Flags().StringVar(&catalogType, "type", "", "Only list events carrying this alert type")
	catalogCmd.Flags().StringVar(&catalogFormat, "format", "table", "Output format: table, json or yaml")
	catalogCmd.AddCommand(catalogShowCmd)
	rootCmd.AddCommand(catalogCmd)
}
