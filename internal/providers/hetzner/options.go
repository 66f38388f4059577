// Package hetzner extends the base provisioning options with the fields a
// Hetzner Cloud server create request accepts, and maps a finalized option
// set onto hcloud.ServerCreateOpts for the API client to submit.
//
// Extension fields follow the same present/absent contract as the other
// providers: nil means the field was never set and CopyTo leaves the
// target's value alone.
package hetzner

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"cloudmason/provm/internal/domain"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

// Options is an immutable Hetzner option set.
type Options struct {
	base *domain.Options

	location         *string
	serverType       *string
	image            *string
	labels           map[string]string
	userData         *string
	sshKeyNames      []string
	startAfterCreate *bool
	placementGroupID *int64
	publicIPv4       *bool
	publicIPv6       *bool
}

// None is the canonical all-default option set.
var None = mustBuild(NewBuilder())

func mustBuild(b *Builder) *Options {
	o, err := b.Build()
	if err != nil {
		panic(err)
	}
	return o
}

// Base returns the base option group.
func (o *Options) Base() *domain.Options { return o.base }

// Location returns the location name, and whether it was set.
func (o *Options) Location() (string, bool) { return deref(o.location) }

// ServerType returns the server type name, and whether it was set.
func (o *Options) ServerType() (string, bool) { return deref(o.serverType) }

// Image returns the image name, and whether it was set.
func (o *Options) Image() (string, bool) { return deref(o.image) }

// Labels returns the label map, and whether it was set.
func (o *Options) Labels() (map[string]string, bool) {
	if o.labels == nil {
		return nil, false
	}
	return maps.Clone(o.labels), true
}

// UserData returns the cloud-init user data, and whether it was set.
func (o *Options) UserData() (string, bool) { return deref(o.userData) }

// SSHKeyNames returns the SSH key names in order, and whether they were set.
func (o *Options) SSHKeyNames() ([]string, bool) {
	if o.sshKeyNames == nil {
		return nil, false
	}
	return slices.Clone(o.sshKeyNames), true
}

// StartAfterCreate reports the start-after-create flag, and whether it was set.
func (o *Options) StartAfterCreate() (bool, bool) { return deref(o.startAfterCreate) }

// PlacementGroupID returns the placement group id, and whether it was set.
func (o *Options) PlacementGroupID() (int64, bool) { return deref(o.placementGroupID) }

// PublicIPv4 reports the public IPv4 toggle, and whether it was set.
func (o *Options) PublicIPv4() (bool, bool) { return deref(o.publicIPv4) }

// PublicIPv6 reports the public IPv6 toggle, and whether it was set.
func (o *Options) PublicIPv6() (bool, bool) { return deref(o.publicIPv6) }

// CopyTo transfers this option set to the target builder: the base group
// unconditionally, extension fields only when present and only when the
// target is a Hetzner builder.
func (o *Options) CopyTo(t domain.Target) {
	t.ApplyBase(o.base)

	b, ok := t.(*Builder)
	if !ok {
		return
	}

	if o.location != nil {
		b.Location(*o.location)
	}
	if o.serverType != nil {
		b.ServerType(*o.serverType)
	}
	if o.image != nil {
		b.Image(*o.image)
	}
	if o.labels != nil {
		b.Labels(o.labels)
	}
	if o.userData != nil {
		b.UserData(*o.userData)
	}
	if o.sshKeyNames != nil {
		b.SSHKeyNames(o.sshKeyNames...)
	}
	if o.startAfterCreate != nil {
		b.StartAfterCreate(*o.startAfterCreate)
	}
	if o.placementGroupID != nil {
		b.PlacementGroupID(*o.placementGroupID)
	}
	if o.publicIPv4 != nil {
		b.PublicIPv4(*o.publicIPv4)
	}
	if o.publicIPv6 != nil {
		b.PublicIPv6(*o.publicIPv6)
	}
}

// Clone returns an independent value-equal copy.
func (o *Options) Clone() *Options {
	b := NewBuilder()
	o.CopyTo(b)
	return mustBuild(b)
}

// ToBuilder re-opens the option set for further configuration.
func (o *Options) ToBuilder() *Builder {
	b := NewBuilder()
	o.CopyTo(b)
	return b
}

// Builder accumulates Hetzner options through fluent calls, with the same
// validate-on-set, first-error-wins contract as the SoftLayer builder.
type Builder struct {
	base *domain.Builder
	ext  Options
	err  error
}

// NewBuilder returns a builder holding the all-default option set.
func NewBuilder() *Builder {
	return &Builder{base: domain.NewBuilder()}
}

// Location sets the datacenter location name, e.g. "fsn1".
func (b *Builder) Location(name string) *Builder {
	if name == "" {
		return b.fail(fmt.Errorf("%w: location must not be empty", domain.ErrInvalidArgument))
	}
	b.ext.location = ptr(name)
	return b
}

// ServerType sets the server type name or ID, e.g. "cpx11".
func (b *Builder) ServerType(name string) *Builder {
	if name == "" {
		return b.fail(fmt.Errorf("%w: server type must not be empty", domain.ErrInvalidArgument))
	}
	b.ext.serverType = ptr(name)
	return b
}

// Image sets the image name or ID, e.g. "ubuntu-24.04".
func (b *Builder) Image(name string) *Builder {
	if name == "" {
		return b.fail(fmt.Errorf("%w: image must not be empty", domain.ErrInvalidArgument))
	}
	b.ext.image = ptr(name)
	return b
}

// Labels replaces the label map.
func (b *Builder) Labels(labels map[string]string) *Builder {
	for k := range labels {
		if k == "" {
			return b.fail(fmt.Errorf("%w: label key must not be empty", domain.ErrInvalidArgument))
		}
	}
	b.ext.labels = maps.Clone(labels)
	return b
}

// UserData sets the cloud-init user data.
func (b *Builder) UserData(data string) *Builder {
	if data == "" {
		return b.fail(fmt.Errorf("%w: user data must not be empty", domain.ErrInvalidArgument))
	}
	b.ext.userData = ptr(data)
	return b
}

// SSHKeyNames sets the SSH key names or IDs to install, in order.
func (b *Builder) SSHKeyNames(names ...string) *Builder {
	if len(names) == 0 {
		return b.fail(fmt.Errorf("%w: SSH key names must not be empty", domain.ErrInvalidArgument))
	}
	for _, n := range names {
		if n == "" {
			return b.fail(fmt.Errorf("%w: SSH key name must not be empty", domain.ErrInvalidArgument))
		}
	}
	b.ext.sshKeyNames = slices.Clone(names)
	return b
}

// StartAfterCreate sets whether the server starts once created.
func (b *Builder) StartAfterCreate(start bool) *Builder {
	b.ext.startAfterCreate = ptr(start)
	return b
}

// PlacementGroupID places the server in an existing placement group.
func (b *Builder) PlacementGroupID(id int64) *Builder {
	if id <= 0 {
		return b.fail(fmt.Errorf("%w: placement group id must be positive, got %d", domain.ErrInvalidArgument, id))
	}
	b.ext.placementGroupID = ptr(id)
	return b
}

// PublicIPv4 toggles public IPv4 assignment.
func (b *Builder) PublicIPv4(enable bool) *Builder {
	b.ext.publicIPv4 = ptr(enable)
	return b
}

// PublicIPv6 toggles public IPv6 assignment.
func (b *Builder) PublicIPv6(enable bool) *Builder {
	b.ext.publicIPv6 = ptr(enable)
	return b
}

// Networks sets the networks the node should join.
func (b *Builder) Networks(ids ...string) *Builder {
	b.base.Networks(ids...)
	return b
}

// Base exposes the shared base-group builder. It implements domain.Extension.
func (b *Builder) Base() *domain.Builder { return b.base }

// ApplyBase overwrites the builder's base group. It implements domain.Target.
func (b *Builder) ApplyBase(o *domain.Options) { b.base.ApplyBase(o) }

// Err returns the first validation failure recorded by any setter.
func (b *Builder) Err() error {
	if b.err != nil {
		return b.err
	}
	return b.base.Err()
}

// Build finalizes the accumulated options.
func (b *Builder) Build() (*Options, error) {
	if b.err != nil {
		return nil, b.err
	}
	base, err := b.base.Build()
	if err != nil {
		return nil, err
	}

	o := Options{
		base:             base,
		location:         clonePtr(b.ext.location),
		serverType:       clonePtr(b.ext.serverType),
		image:            clonePtr(b.ext.image),
		labels:           maps.Clone(b.ext.labels),
		userData:         clonePtr(b.ext.userData),
		sshKeyNames:      slices.Clone(b.ext.sshKeyNames),
		startAfterCreate: clonePtr(b.ext.startAfterCreate),
		placementGroupID: clonePtr(b.ext.placementGroupID),
		publicIPv4:       clonePtr(b.ext.publicIPv4),
		publicIPv6:       clonePtr(b.ext.publicIPv6),
	}
	return &o, nil
}

// Request finalizes the options and builds the hcloud create request for
// the given hostname. It implements domain.Extension.
func (b *Builder) Request(hostname string) (any, error) {
	o, err := b.Build()
	if err != nil {
		return nil, err
	}
	return o.ServerCreateOpts(hostname)
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// ServerCreateOpts maps the option set onto the hcloud SDK's create
// request. Server type and image are required by the API; names are left
// unresolved, matching how the SDK accepts name-only references. Resolving
// and submitting belong to the API client.
func (o *Options) ServerCreateOpts(hostname string) (hcloud.ServerCreateOpts, error) {
	if o.serverType == nil {
		return hcloud.ServerCreateOpts{}, fmt.Errorf("%w: server type is required", domain.ErrInvalidArgument)
	}
	if o.image == nil {
		return hcloud.ServerCreateOpts{}, fmt.Errorf("%w: image is required", domain.ErrInvalidArgument)
	}

	opts := hcloud.ServerCreateOpts{
		Name:             hostname,
		ServerType:       &hcloud.ServerType{Name: *o.serverType},
		Image:            &hcloud.Image{Name: *o.image},
		Labels:           maps.Clone(o.labels),
		StartAfterCreate: clonePtr(o.startAfterCreate),
	}

	if o.location != nil {
		opts.Location = &hcloud.Location{Name: *o.location}
	}
	if o.userData != nil {
		opts.UserData = *o.userData
	}
	for _, name := range o.sshKeyNames {
		opts.SSHKeys = append(opts.SSHKeys, &hcloud.SSHKey{Name: name})
	}
	if o.placementGroupID != nil {
		opts.PlacementGroup = &hcloud.PlacementGroup{ID: *o.placementGroupID}
	}
	if o.publicIPv4 != nil || o.publicIPv6 != nil {
		opts.PublicNet = &hcloud.ServerCreatePublicNet{
			EnableIPv4: o.publicIPv4 == nil || *o.publicIPv4,
			EnableIPv6: o.publicIPv6 == nil || *o.publicIPv6,
		}
	}

	// Base-group network memberships are numeric network ids on Hetzner.
	for _, id := range o.base.Networks() {
		numeric, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return hcloud.ServerCreateOpts{}, fmt.Errorf("%w: network id %q is not numeric", domain.ErrInvalidArgument, id)
		}
		opts.Networks = append(opts.Networks, &hcloud.Network{ID: numeric})
	}

	return opts, nil
}

func ptr[T any](v T) *T { return &v }

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}
