// Package profiles stores named provisioning profiles: reusable option
// presets a user applies before per-invocation flags.
//
// Profiles are stored as JSON at ~/.config/provm/profiles.json (or the
// platform-equivalent path returned by os.UserConfigDir). Optional fields
// are pointers with omitempty so "never set" survives a round-trip; a
// profile only carries the fields its author chose.
package profiles

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"cloudmason/provm/internal/domain"
	"cloudmason/provm/internal/util"
)

const (
	appDir   = "provm"
	fileName = "profiles.json"
)

// pathOverride, when non-empty, replaces the default profiles file path.
// Intended for testing. Use SetPath / ResetPath to manage.
var pathOverride string

// SetPath overrides the profiles file path. Intended for testing.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override, reverting to the default. Intended for testing.
func ResetPath() { pathOverride = "" }

// Profile is one named option preset. Every field is optional; Apply only
// touches the target builder's fields that are present here.
type Profile struct {
	// Provider names the provider this profile is meant for. When set,
	// the CLI uses it as the default for --provider.
	Provider string `json:"provider,omitempty"`

	// Base group.
	InboundPorts []int             `json:"inbound_ports,omitempty"`
	PublicKey    *string           `json:"public_key,omitempty"`
	UserMetadata map[string]string `json:"user_metadata,omitempty"`
	Networks     []string          `json:"networks,omitempty"`

	// SoftLayer extension.
	DomainName                  *string `json:"domain_name,omitempty"`
	BlockDevices                []int   `json:"block_devices,omitempty"`
	DiskType                    *string `json:"disk_type,omitempty"`
	PortSpeed                   *int    `json:"port_speed,omitempty"`
	UserData                    *string `json:"user_data,omitempty"`
	PrimaryNetworkVLANID        *int    `json:"primary_network_vlan_id,omitempty"`
	PrimaryBackendNetworkVLANID *int    `json:"primary_backend_network_vlan_id,omitempty"`
	HourlyBilling               *bool   `json:"hourly_billing,omitempty"`
	DedicatedAccountHostOnly    *bool   `json:"dedicated_account_host_only,omitempty"`
	PrivateNetworkOnly          *bool   `json:"private_network_only,omitempty"`
	PostInstallScriptURI        *string `json:"post_install_script_uri,omitempty"`
	SSHKeyIDs                   []int   `json:"ssh_key_ids,omitempty"`
	Notes                       *string `json:"notes,omitempty"`

	// Hetzner extension.
	Location         *string           `json:"location,omitempty"`
	ServerType       *string           `json:"server_type,omitempty"`
	Image            *string           `json:"image,omitempty"`
	Labels           map[string]string `json:"labels,omitempty"`
	SSHKeyNames      []string          `json:"ssh_key_names,omitempty"`
	StartAfterCreate *bool             `json:"start_after_create,omitempty"`
	PlacementGroupID *int64            `json:"placement_group_id,omitempty"`
}

// Store holds every saved profile, keyed by normalized name.
type Store struct {
	Profiles map[string]Profile `json:"profiles"`
}

// Get returns the named profile.
func (s *Store) Get(name string) (Profile, error) {
	p, ok := s.Profiles[util.NormalizeKey(name)]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", domain.ErrUnknownProfile, name)
	}
	return p, nil
}

// Set stores the profile under the given name, replacing any existing one.
func (s *Store) Set(name string, p Profile) {
	if s.Profiles == nil {
		s.Profiles = map[string]Profile{}
	}
	s.Profiles[util.NormalizeKey(name)] = p
}

// Delete removes the named profile.
func (s *Store) Delete(name string) error {
	key := util.NormalizeKey(name)
	if _, ok := s.Profiles[key]; !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownProfile, name)
	}
	delete(s.Profiles, key)
	return nil
}

// Names returns the stored profile names, sorted.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.Profiles))
	for name := range s.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Path returns the absolute path to the profiles file.
// If SetPath has been called, that value is returned instead.
func Path() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("profiles: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, fileName), nil
}

// Load reads the profiles file from disk. If the file does not exist, an
// empty Store is returned (not an error).
func Load() (*Store, error) {
	return loadFrom("")
}

func loadFrom(path string) (*Store, error) {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Store{}, nil
		}
		return nil, fmt.Errorf("profiles: failed to read %s: %w", path, err)
	}

	var store Store
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("profiles: failed to parse %s: %w", path, err)
	}

	return &store, nil
}

// Save writes the profiles to disk, creating the parent directory if needed.
func (s *Store) Save() error {
	return s.saveTo("")
}

func (s *Store) saveTo(path string) error {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("profiles: failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("profiles: failed to marshal profiles: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("profiles: failed to write %s: %w", path, err)
	}

	return nil
}

// LoadFrom reads the profiles from the given path. Intended for testing.
func LoadFrom(path string) (*Store, error) {
	return loadFrom(path)
}

// SaveTo writes the profiles to the given path. Intended for testing.
func (s *Store) SaveTo(path string) error {
	return s.saveTo(path)
}
