package softlayer

import (
	"errors"
	"strings"
	"testing"

	"cloudmason/provm/internal/domain"

	"github.com/google/go-cmp/cmp"
)

func TestNewBuilder_Defaults(t *testing.T) {
	opts, err := NewBuilder().Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if got := opts.DomainName(); got != DefaultDomainName {
		t.Errorf("DomainName() = %q, want %q", got, DefaultDomainName)
	}

	if _, ok := opts.BlockDevices(); ok {
		t.Error("BlockDevices() present on default options")
	}
	if _, ok := opts.DiskType(); ok {
		t.Error("DiskType() present on default options")
	}
	if _, ok := opts.PortSpeed(); ok {
		t.Error("PortSpeed() present on default options")
	}
	if _, ok := opts.UserData(); ok {
		t.Error("UserData() present on default options")
	}
	if _, ok := opts.PrimaryNetworkVLANID(); ok {
		t.Error("PrimaryNetworkVLANID() present on default options")
	}
	if _, ok := opts.PrimaryBackendNetworkVLANID(); ok {
		t.Error("PrimaryBackendNetworkVLANID() present on default options")
	}
	if _, ok := opts.HourlyBilling(); ok {
		t.Error("HourlyBilling() present on default options")
	}
	if _, ok := opts.DedicatedAccountHostOnly(); ok {
		t.Error("DedicatedAccountHostOnly() present on default options")
	}
	if _, ok := opts.PrivateNetworkOnly(); ok {
		t.Error("PrivateNetworkOnly() present on default options")
	}
	if _, ok := opts.PostInstallScriptURI(); ok {
		t.Error("PostInstallScriptURI() present on default options")
	}
	if _, ok := opts.SSHKeyIDs(); ok {
		t.Error("SSHKeyIDs() present on default options")
	}
	if _, ok := opts.Notes(); ok {
		t.Error("Notes() present on default options")
	}
}

func TestBuilder_SetGetRoundTrip(t *testing.T) {
	opts, err := NewBuilder().
		DomainName("example.com").
		BlockDevices(25, 100).
		DiskType("LOCAL").
		PortSpeed(1000).
		UserData("#cloud-config").
		PrimaryNetworkVLANID(11).
		PrimaryBackendNetworkVLANID(12).
		HourlyBilling(true).
		DedicatedAccountHostOnly(false).
		PrivateNetworkOnly(true).
		PostInstallScriptURI("https://example.com/install.sh").
		SSHKeyIDs(301, 302).
		Notes("ticket #42").
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if got := opts.DomainName(); got != "example.com" {
		t.Errorf("DomainName() = %q", got)
	}
	if got, ok := opts.BlockDevices(); !ok || !cmp.Equal([]int{25, 100}, got) {
		t.Errorf("BlockDevices() = %v, %v", got, ok)
	}
	if got, ok := opts.DiskType(); !ok || got != "LOCAL" {
		t.Errorf("DiskType() = %q, %v", got, ok)
	}
	if got, ok := opts.PortSpeed(); !ok || got != 1000 {
		t.Errorf("PortSpeed() = %d, %v", got, ok)
	}
	if got, ok := opts.UserData(); !ok || got != "#cloud-config" {
		t.Errorf("UserData() = %q, %v", got, ok)
	}
	if got, ok := opts.PrimaryNetworkVLANID(); !ok || got != 11 {
		t.Errorf("PrimaryNetworkVLANID() = %d, %v", got, ok)
	}
	if got, ok := opts.PrimaryBackendNetworkVLANID(); !ok || got != 12 {
		t.Errorf("PrimaryBackendNetworkVLANID() = %d, %v", got, ok)
	}
	if got, ok := opts.HourlyBilling(); !ok || got != true {
		t.Errorf("HourlyBilling() = %v, %v", got, ok)
	}
	if got, ok := opts.DedicatedAccountHostOnly(); !ok || got != false {
		t.Errorf("DedicatedAccountHostOnly() = %v, %v", got, ok)
	}
	if got, ok := opts.PrivateNetworkOnly(); !ok || got != true {
		t.Errorf("PrivateNetworkOnly() = %v, %v", got, ok)
	}
	if got, ok := opts.PostInstallScriptURI(); !ok || got != "https://example.com/install.sh" {
		t.Errorf("PostInstallScriptURI() = %q, %v", got, ok)
	}
	if got, ok := opts.SSHKeyIDs(); !ok || !cmp.Equal([]int{301, 302}, got) {
		t.Errorf("SSHKeyIDs() = %v, %v", got, ok)
	}
	if got, ok := opts.Notes(); !ok || got != "ticket #42" {
		t.Errorf("Notes() = %q, %v", got, ok)
	}
}

func TestBuilder_DomainNameValidation(t *testing.T) {
	tests := []struct {
		name   string
		domain string
	}{
		{"no public suffix", "localhost"},
		{"bare suffix", "com"},
		{"empty", ""},
		{"bad syntax", "ex ample.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder().DomainName(tt.domain)
			if b.Err() == nil {
				t.Fatalf("DomainName(%q): Err() = nil, want error", tt.domain)
			}
			if !errors.Is(b.Err(), domain.ErrInvalidDomain) {
				t.Errorf("Err() = %v, want ErrInvalidDomain", b.Err())
			}
		})
	}
}

func TestBuilder_RejectedValueLeavesStateUntouched(t *testing.T) {
	b := NewBuilder().BlockDevices(10, 20, 30)
	b.BlockDevices(10, -5)

	if b.Err() == nil {
		t.Fatal("Err() = nil, want error after invalid capacity")
	}
	if _, err := b.Build(); err == nil {
		t.Error("Build() = nil error, want the recorded error")
	}

	// A fresh builder with only the valid call keeps the original list.
	opts, err := NewBuilder().BlockDevices(10, 20, 30).Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if got, _ := opts.BlockDevices(); !cmp.Equal([]int{10, 20, 30}, got) {
		t.Errorf("BlockDevices() = %v, want [10 20 30]", got)
	}
}

func TestBuilder_Validation(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Builder
	}{
		{"empty block devices", func() *Builder { return NewBuilder().BlockDevices() }},
		{"negative capacity", func() *Builder { return NewBuilder().BlockDevices(-1) }},
		{"empty disk type", func() *Builder { return NewBuilder().DiskType("") }},
		{"zero port speed", func() *Builder { return NewBuilder().PortSpeed(0) }},
		{"empty user data", func() *Builder { return NewBuilder().UserData("") }},
		{"zero vlan", func() *Builder { return NewBuilder().PrimaryNetworkVLANID(0) }},
		{"zero backend vlan", func() *Builder { return NewBuilder().PrimaryBackendNetworkVLANID(0) }},
		{"empty script uri", func() *Builder { return NewBuilder().PostInstallScriptURI("") }},
		{"empty ssh key ids", func() *Builder { return NewBuilder().SSHKeyIDs() }},
		{"zero ssh key id", func() *Builder { return NewBuilder().SSHKeyIDs(0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.build()
			if !errors.Is(b.Err(), domain.ErrInvalidArgument) {
				t.Errorf("Err() = %v, want ErrInvalidArgument", b.Err())
			}
		})
	}
}

func TestBuilder_NotesAcceptsAnything(t *testing.T) {
	opts, err := NewBuilder().Notes("").Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if got, ok := opts.Notes(); !ok || got != "" {
		t.Errorf("Notes() = %q, %v, want empty string present", got, ok)
	}
}

func TestOptions_CopyToMerges(t *testing.T) {
	src, err := New(
		DiskType("SAN"),
		PortSpeed(100),
	)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	dst := NewBuilder().
		HourlyBilling(true).
		PortSpeed(10)
	src.CopyTo(dst)

	got, err := dst.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	// Present source fields overwrite, absent ones leave the target alone.
	if v, ok := got.DiskType(); !ok || v != "SAN" {
		t.Errorf("DiskType() = %q, %v, want SAN", v, ok)
	}
	if v, ok := got.PortSpeed(); !ok || v != 100 {
		t.Errorf("PortSpeed() = %d, %v, want 100", v, ok)
	}
	if v, ok := got.HourlyBilling(); !ok || v != true {
		t.Errorf("HourlyBilling() = %v, %v, want target's value kept", v, ok)
	}
}

func TestOptions_CopyToPlainBaseBuilder(t *testing.T) {
	src, err := New(
		InboundPorts(22),
		DiskType("LOCAL"),
	)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	dst := domain.NewBuilder()
	src.CopyTo(dst)

	base, err := dst.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if diff := cmp.Diff([]int{22}, base.InboundPorts()); diff != "" {
		t.Errorf("InboundPorts mismatch (-want +got):\n%s", diff)
	}
}

func TestOptions_Clone(t *testing.T) {
	orig, err := New(
		DomainName("example.com"),
		BlockDevices(25, 100),
		Notes("original"),
	)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	clone := orig.Clone()

	if clone.DomainName() != orig.DomainName() {
		t.Errorf("clone DomainName = %q, want %q", clone.DomainName(), orig.DomainName())
	}
	cloneDevices, _ := clone.BlockDevices()
	origDevices, _ := orig.BlockDevices()
	if diff := cmp.Diff(origDevices, cloneDevices); diff != "" {
		t.Errorf("BlockDevices mismatch (-orig +clone):\n%s", diff)
	}

	// Reconfiguring a builder derived from the clone leaves the original alone.
	derived, err := clone.ToBuilder().BlockDevices(999).Notes("changed").Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if got, _ := derived.BlockDevices(); !cmp.Equal([]int{999}, got) {
		t.Errorf("derived BlockDevices = %v", got)
	}
	if got, _ := orig.BlockDevices(); !cmp.Equal([]int{25, 100}, got) {
		t.Errorf("original BlockDevices = %v after derived mutation, want [25 100]", got)
	}
	if got, _ := orig.Notes(); got != "original" {
		t.Errorf("original Notes = %q after derived mutation", got)
	}
}

func TestNone_IsImmutable(t *testing.T) {
	if got := None.DomainName(); got != DefaultDomainName {
		t.Fatalf("None.DomainName() = %q, want %q", got, DefaultDomainName)
	}
	if _, ok := None.HourlyBilling(); ok {
		t.Fatal("None carries an hourly-billing value")
	}

	derived, err := None.ToBuilder().HourlyBilling(true).Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if got, ok := derived.HourlyBilling(); !ok || !got {
		t.Errorf("derived HourlyBilling = %v, %v", got, ok)
	}
	if _, ok := None.HourlyBilling(); ok {
		t.Error("None changed after deriving a builder from it")
	}
}

func TestNew_FirstErrorWins(t *testing.T) {
	_, err := New(
		DomainName("localhost"),
		PortSpeed(-1),
	)
	if err == nil {
		t.Fatal("New() = nil error, want error")
	}
	if !errors.Is(err, domain.ErrInvalidDomain) {
		t.Errorf("New() error = %v, want the first failure (ErrInvalidDomain)", err)
	}
}

func TestBuilder_BaseChaining(t *testing.T) {
	opts, err := NewBuilder().
		InboundPorts(22, 443).
		AuthorizePublicKey("ssh-ed25519 AAAA").
		DomainName("example.com").
		UserMetadataEntry("env", "prod").
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	base := opts.Base()
	if diff := cmp.Diff([]int{22, 443}, base.InboundPorts()); diff != "" {
		t.Errorf("InboundPorts mismatch (-want +got):\n%s", diff)
	}
	if got := base.PublicKey(); got != "ssh-ed25519 AAAA" {
		t.Errorf("PublicKey = %q", got)
	}
	if got := base.UserMetadata()["env"]; got != "prod" {
		t.Errorf("UserMetadata[env] = %q", got)
	}
}

func TestBuilder_BaseErrorSurfaces(t *testing.T) {
	b := NewBuilder().InboundPorts(0)
	if b.Err() == nil {
		t.Fatal("Err() = nil, want base setter error")
	}
	if !strings.Contains(b.Err().Error(), "inbound port") {
		t.Errorf("Err() = %q", b.Err())
	}
	if _, err := b.Build(); err == nil {
		t.Error("Build() = nil error, want base error")
	}
}
