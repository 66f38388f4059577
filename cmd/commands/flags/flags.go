// Package flags defines the provisioning option flag set shared by
// "options render" and "profile set", and converts changed flags into a
// profiles.Profile. Only flags the user actually passed become present
// fields, so flag input carries the same present/absent semantics as a
// stored profile.
package flags

import (
	"fmt"
	"strings"

	"cloudmason/provm/internal/profiles"

	"github.com/spf13/cobra"
)

// AddProvisioning registers every provisioning option flag on the command.
func AddProvisioning(cmd *cobra.Command) {
	f := cmd.Flags()

	// Base group
	f.IntSlice("inbound-port", nil, "Inbound port to open (repeatable)")
	f.String("public-key", "", "Public key to authorize on the node")
	f.StringArray("metadata", nil, "User metadata in key=value form (repeatable)")
	f.StringArray("network", nil, "Network the node should join (repeatable)")

	// SoftLayer
	f.String("domain-name", "", "Ordering domain (must carry a public suffix)")
	f.IntSlice("block-device", nil, "Block device capacity in GB, in order (repeatable)")
	f.String("disk-type", "", "Disk type: LOCAL or SAN")
	f.Int("port-speed", 0, "Uplink port speed in Mbps")
	f.String("user-data", "", "User data payload")
	f.Int("vlan", 0, "Primary network VLAN id")
	f.Int("backend-vlan", 0, "Primary backend network VLAN id")
	f.Bool("hourly", false, "Bill hourly instead of monthly")
	f.Bool("dedicated", false, "Place on a dedicated account host")
	f.Bool("private-network-only", false, "Provision without a public network component")
	f.String("post-install-script", "", "URI of a script to run after install")
	f.IntSlice("ssh-key-id", nil, "SoftLayer SSH key id (repeatable)")
	f.String("notes", "", "Free-text notes")

	// Hetzner
	f.String("location", "", "Location name, e.g. fsn1")
	f.String("server-type", "", "Server type name, e.g. cpx11")
	f.String("image", "", "Image name, e.g. ubuntu-24.04")
	f.StringArray("label", nil, "Label in key=value form (repeatable)")
	f.StringArray("ssh-key", nil, "SSH key name or ID (repeatable)")
	f.Bool("start", true, "Start the server after creation")
	f.Int64("placement-group", 0, "Placement group id")
}

// Profile collects the flags the user actually changed into a profile.
// Untouched flags stay absent; validation is left to the option builders.
func Profile(cmd *cobra.Command) (profiles.Profile, error) {
	f := cmd.Flags()
	var p profiles.Profile

	if f.Changed("inbound-port") {
		p.InboundPorts, _ = f.GetIntSlice("inbound-port")
	}
	if f.Changed("public-key") {
		v, _ := f.GetString("public-key")
		p.PublicKey = &v
	}
	if f.Changed("metadata") {
		pairs, _ := f.GetStringArray("metadata")
		md, err := ParseKeyValues(pairs)
		if err != nil {
			return profiles.Profile{}, fmt.Errorf("invalid --metadata: %w", err)
		}
		p.UserMetadata = md
	}
	if f.Changed("network") {
		p.Networks, _ = f.GetStringArray("network")
	}

	if f.Changed("domain-name") {
		v, _ := f.GetString("domain-name")
		p.DomainName = &v
	}
	if f.Changed("block-device") {
		p.BlockDevices, _ = f.GetIntSlice("block-device")
	}
	if f.Changed("disk-type") {
		v, _ := f.GetString("disk-type")
		p.DiskType = &v
	}
	if f.Changed("port-speed") {
		v, _ := f.GetInt("port-speed")
		p.PortSpeed = &v
	}
	if f.Changed("user-data") {
		v, _ := f.GetString("user-data")
		p.UserData = &v
	}
	if f.Changed("vlan") {
		v, _ := f.GetInt("vlan")
		p.PrimaryNetworkVLANID = &v
	}
	if f.Changed("backend-vlan") {
		v, _ := f.GetInt("backend-vlan")
		p.PrimaryBackendNetworkVLANID = &v
	}
	if f.Changed("hourly") {
		v, _ := f.GetBool("hourly")
		p.HourlyBilling = &v
	}
	if f.Changed("dedicated") {
		v, _ := f.GetBool("dedicated")
		p.DedicatedAccountHostOnly = &v
	}
	if f.Changed("private-network-only") {
		v, _ := f.GetBool("private-network-only")
		p.PrivateNetworkOnly = &v
	}
	if f.Changed("post-install-script") {
		v, _ := f.GetString("post-install-script")
		p.PostInstallScriptURI = &v
	}
	if f.Changed("ssh-key-id") {
		p.SSHKeyIDs, _ = f.GetIntSlice("ssh-key-id")
	}
	if f.Changed("notes") {
		v, _ := f.GetString("notes")
		p.Notes = &v
	}

	if f.Changed("location") {
		v, _ := f.GetString("location")
		p.Location = &v
	}
	if f.Changed("server-type") {
		v, _ := f.GetString("server-type")
		p.ServerType = &v
	}
	if f.Changed("image") {
		v, _ := f.GetString("image")
		p.Image = &v
	}
	if f.Changed("label") {
		pairs, _ := f.GetStringArray("label")
		labels, err := ParseKeyValues(pairs)
		if err != nil {
			return profiles.Profile{}, fmt.Errorf("invalid --label: %w", err)
		}
		p.Labels = labels
	}
	if f.Changed("ssh-key") {
		p.SSHKeyNames, _ = f.GetStringArray("ssh-key")
	}
	if f.Changed("start") {
		v, _ := f.GetBool("start")
		p.StartAfterCreate = &v
	}
	if f.Changed("placement-group") {
		v, _ := f.GetInt64("placement-group")
		p.PlacementGroupID = &v
	}

	return p, nil
}

// ParseKeyValues parses key=value pairs into a map.
func ParseKeyValues(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", pair)
		}
		out[key] = value
	}
	return out, nil
}
