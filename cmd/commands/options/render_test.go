package options

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"cloudmason/provm/internal/profiles"
	"cloudmason/provm/internal/providers"
)

func setupRender(t *testing.T) {
	t.Helper()
	providers.Reset()
	providers.RegisterDefaults()
	t.Cleanup(providers.Reset)

	profiles.SetPath(filepath.Join(t.TempDir(), "profiles.json"))
	t.Cleanup(profiles.ResetPath)
}

func execRender(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := RenderCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRender_DefaultsToSoftLayer(t *testing.T) {
	setupRender(t)

	out, err := execRender(t, "web-1", "--output", "json")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if payload["hostname"] != "web-1" {
		t.Errorf("hostname = %v", payload["hostname"])
	}
	if payload["domain"] != "jclouds.org" {
		t.Errorf("domain = %v, want default", payload["domain"])
	}
}

func TestRender_FlagsShapeTheOrder(t *testing.T) {
	setupRender(t)

	out, err := execRender(t, "web-1",
		"--domain-name", "example.com",
		"--block-device", "25",
		"--block-device", "100",
		"--disk-type", "LOCAL",
		"--hourly",
		"--output", "json",
	)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if payload["domain"] != "example.com" {
		t.Errorf("domain = %v", payload["domain"])
	}
	if payload["hourlyBillingFlag"] != true {
		t.Errorf("hourlyBillingFlag = %v", payload["hourlyBillingFlag"])
	}
	if payload["localDiskFlag"] != true {
		t.Errorf("localDiskFlag = %v", payload["localDiskFlag"])
	}
	devices, ok := payload["blockDevices"].([]any)
	if !ok || len(devices) != 2 {
		t.Fatalf("blockDevices = %v", payload["blockDevices"])
	}
}

func TestRender_ProfileSeedsAndFlagsOverride(t *testing.T) {
	setupRender(t)

	hourly := true
	diskType := "SAN"
	store := &profiles.Store{}
	store.Set("staging", profiles.Profile{
		Provider:      "softlayer",
		DiskType:      &diskType,
		HourlyBilling: &hourly,
	})
	if err := store.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	out, err := execRender(t, "web-1",
		"--profile", "staging",
		"--hourly=false",
		"--output", "json",
	)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}

	// Flag overrides the profile; the profile's untouched field survives.
	if payload["hourlyBillingFlag"] != false {
		t.Errorf("hourlyBillingFlag = %v, want flag's false", payload["hourlyBillingFlag"])
	}
	if payload["localDiskFlag"] != false {
		t.Errorf("localDiskFlag = %v, want profile's SAN mapping", payload["localDiskFlag"])
	}
}

func TestRender_UnknownProfile(t *testing.T) {
	setupRender(t)

	if _, err := execRender(t, "web-1", "--profile", "nope", "--output", "json"); err == nil {
		t.Error("Execute() = nil error for unknown profile, want error")
	}
}

func TestRender_InvalidDomainFlag(t *testing.T) {
	setupRender(t)

	_, err := execRender(t, "web-1", "--domain-name", "localhost", "--output", "json")
	if err == nil {
		t.Fatal("Execute() = nil error for invalid domain, want error")
	}
	if !strings.Contains(err.Error(), "domain") {
		t.Errorf("error = %v", err)
	}
}

func TestRender_HetznerProvider(t *testing.T) {
	setupRender(t)

	out, err := execRender(t, "web-1",
		"--provider", "hetzner",
		"--server-type", "cpx11",
		"--image", "ubuntu-24.04",
		"--output", "json",
	)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(out, "web-1") || !strings.Contains(out, "cpx11") {
		t.Errorf("output missing server fields:\n%s", out)
	}
}

func TestRender_ProfileProviderIsDefault(t *testing.T) {
	setupRender(t)

	serverType := "cpx11"
	image := "ubuntu-24.04"
	store := &profiles.Store{}
	store.Set("hz", profiles.Profile{
		Provider:   "hetzner",
		ServerType: &serverType,
		Image:      &image,
	})
	if err := store.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	out, err := execRender(t, "web-1", "--profile", "hz", "--output", "json")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if strings.Contains(out, "jclouds.org") {
		t.Errorf("got a SoftLayer order for a hetzner profile:\n%s", out)
	}
	if !strings.Contains(out, "cpx11") {
		t.Errorf("output missing hetzner fields:\n%s", out)
	}
}

func TestRender_TableOutput(t *testing.T) {
	setupRender(t)

	out, err := execRender(t, "web-1", "--output", "table")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(out, "softlayer request for web-1") {
		t.Errorf("missing table title:\n%s", out)
	}
	if !strings.Contains(out, "domain:") || !strings.Contains(out, "jclouds.org") {
		t.Errorf("missing domain row:\n%s", out)
	}
}
