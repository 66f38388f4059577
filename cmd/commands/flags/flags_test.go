package flags

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
)

func parse(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	AddProvisioning(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v) error: %v", args, err)
	}
	return cmd
}

func TestProfile_OnlyChangedFlagsArePresent(t *testing.T) {
	cmd := parse(t,
		"--domain-name", "example.com",
		"--block-device", "25",
		"--block-device", "100",
		"--hourly",
	)

	p, err := Profile(cmd)
	if err != nil {
		t.Fatalf("Profile() error: %v", err)
	}

	if p.DomainName == nil || *p.DomainName != "example.com" {
		t.Errorf("DomainName = %v", p.DomainName)
	}
	if diff := cmp.Diff([]int{25, 100}, p.BlockDevices); diff != "" {
		t.Errorf("BlockDevices mismatch (-want +got):\n%s", diff)
	}
	if p.HourlyBilling == nil || !*p.HourlyBilling {
		t.Errorf("HourlyBilling = %v", p.HourlyBilling)
	}

	// Untouched flags stay absent, including bools with non-zero defaults.
	if p.DiskType != nil {
		t.Errorf("DiskType = %v, want absent", p.DiskType)
	}
	if p.StartAfterCreate != nil {
		t.Errorf("StartAfterCreate = %v, want absent", p.StartAfterCreate)
	}
	if p.InboundPorts != nil {
		t.Errorf("InboundPorts = %v, want absent", p.InboundPorts)
	}
}

func TestProfile_ExplicitFalseIsPresent(t *testing.T) {
	cmd := parse(t, "--start=false", "--hourly=false")

	p, err := Profile(cmd)
	if err != nil {
		t.Fatalf("Profile() error: %v", err)
	}
	if p.StartAfterCreate == nil || *p.StartAfterCreate {
		t.Errorf("StartAfterCreate = %v, want present false", p.StartAfterCreate)
	}
	if p.HourlyBilling == nil || *p.HourlyBilling {
		t.Errorf("HourlyBilling = %v, want present false", p.HourlyBilling)
	}
}

func TestProfile_Metadata(t *testing.T) {
	cmd := parse(t, "--metadata", "env=prod", "--metadata", "team=infra")

	p, err := Profile(cmd)
	if err != nil {
		t.Fatalf("Profile() error: %v", err)
	}
	want := map[string]string{"env": "prod", "team": "infra"}
	if diff := cmp.Diff(want, p.UserMetadata); diff != "" {
		t.Errorf("UserMetadata mismatch (-want +got):\n%s", diff)
	}
}

func TestProfile_BadMetadata(t *testing.T) {
	cmd := parse(t, "--metadata", "noequals")

	if _, err := Profile(cmd); err == nil {
		t.Error("Profile() = nil error on malformed metadata, want error")
	}
}

func TestParseKeyValues(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []string
		want    map[string]string
		wantErr bool
	}{
		{"simple", []string{"a=1", "b=2"}, map[string]string{"a": "1", "b": "2"}, false},
		{"value with equals", []string{"a=b=c"}, map[string]string{"a": "b=c"}, false},
		{"empty value", []string{"a="}, map[string]string{"a": ""}, false},
		{"missing equals", []string{"a"}, nil, true},
		{"empty key", []string{"=v"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKeyValues(tt.pairs)
			if tt.wantErr {
				if err == nil {
					t.Fatal("ParseKeyValues() = nil error, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKeyValues() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseKeyValues() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
