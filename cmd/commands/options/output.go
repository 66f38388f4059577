package options

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var titleStyle = lipgloss.NewStyle().Bold(true)

// resolveFormat picks the output format: an explicit -o wins, otherwise
// table when stdout is a terminal and json when it is not (so piping into
// other tools gets machine-readable output without asking).
func resolveFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("output")
	switch format {
	case "table", "json":
		return format, nil
	case "":
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return "table", nil
		}
		return "json", nil
	default:
		return "", fmt.Errorf("invalid output format %q (expected table or json)", format)
	}
}

// printJSON encodes the payload as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, payload any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

// printTable prints a vertical key-value table of every field present on
// the payload, fields flattened to dotted paths in sorted order.
func printTable(cmd *cobra.Command, provider, hostname string, payload any) error {
	fields, err := flattenPayload(payload)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render(fmt.Sprintf("%s request for %s", provider, hostname)))

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, key := range keys {
		fmt.Fprintf(w, "  %s:\t%s\n", key, fields[key])
	}
	return w.Flush()
}

// flattenPayload round-trips the payload through JSON and flattens nested
// objects and arrays into dotted key paths. Absent (omitempty) fields
// never appear.
func flattenPayload(payload any) (map[string]string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}

	fields := map[string]string{}
	flattenInto(fields, "", tree)
	return fields, nil
}

func flattenInto(out map[string]string, prefix string, v any) {
	switch node := v.(type) {
	case map[string]any:
		for key, child := range node {
			path := key
			if prefix != "" {
				path = prefix + "." + key
			}
			flattenInto(out, path, child)
		}
	case []any:
		for i, child := range node {
			flattenInto(out, fmt.Sprintf("%s[%d]", prefix, i), child)
		}
	case float64:
		out[prefix] = formatNumber(node)
	default:
		out[prefix] = fmt.Sprintf("%v", node)
	}
}

func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}
