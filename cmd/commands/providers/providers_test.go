package providers

import (
	"bytes"
	"testing"

	reg "cloudmason/provm/internal/providers"
)

func TestList(t *testing.T) {
	reg.Reset()
	reg.RegisterDefaults()
	t.Cleanup(reg.Reset)

	cmd := NewCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"list"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if got := out.String(); got != "hetzner\nsoftlayer\n" {
		t.Errorf("output = %q", got)
	}
}
