package options

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
)

func TestResolveFormat_Explicit(t *testing.T) {
	for _, format := range []string{"table", "json"} {
		cmd := &cobra.Command{Use: "test"}
		cmd.Flags().String("output", "", "")
		cmd.Flags().Set("output", format)

		got, err := resolveFormat(cmd)
		if err != nil {
			t.Fatalf("resolveFormat(%q) error: %v", format, err)
		}
		if got != format {
			t.Errorf("resolveFormat(%q) = %q", format, got)
		}
	}
}

func TestResolveFormat_Invalid(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("output", "", "")
	cmd.Flags().Set("output", "yaml")

	if _, err := resolveFormat(cmd); err == nil {
		t.Error("resolveFormat() = nil error on unknown format, want error")
	}
}

func TestFlattenPayload(t *testing.T) {
	payload := map[string]any{
		"hostname": "web-1",
		"flags": map[string]any{
			"hourly": true,
		},
		"blockDevices": []any{
			map[string]any{"device": "0", "capacity": 25},
			map[string]any{"device": "2", "capacity": 100},
		},
		"speed": 1000,
		"ratio": 1.5,
	}

	got, err := flattenPayload(payload)
	if err != nil {
		t.Fatalf("flattenPayload() error: %v", err)
	}

	want := map[string]string{
		"hostname":                 "web-1",
		"flags.hourly":             "true",
		"blockDevices[0].device":   "0",
		"blockDevices[0].capacity": "25",
		"blockDevices[1].device":   "2",
		"blockDevices[1].capacity": "100",
		"speed":                    "1000",
		"ratio":                    "1.5",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("flattenPayload() mismatch (-want +got):\n%s", diff)
	}
}

func TestFlattenPayload_OmitemptyFieldsAbsent(t *testing.T) {
	type payload struct {
		Hostname string `json:"hostname"`
		Notes    string `json:"notes,omitempty"`
	}

	got, err := flattenPayload(payload{Hostname: "web-1"})
	if err != nil {
		t.Fatalf("flattenPayload() error: %v", err)
	}
	if _, ok := got["notes"]; ok {
		t.Error("notes present in flattened output, want absent")
	}
	if got["hostname"] != "web-1" {
		t.Errorf("hostname = %q", got["hostname"])
	}
}
