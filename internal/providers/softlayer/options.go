// Package softlayer extends the base provisioning options with the fields
// accepted by SoftLayer virtual guest orders: ordering domain, block
// devices, disk type, port speed, VLAN placement, billing flags, post
// install script, SSH key ids, and free-text notes.
//
// Every extension field is independently optional. Absent is distinct from
// any real value, including the zero value: CopyTo only transfers fields
// that were explicitly set, so merging an option set into a pre-populated
// builder never clears what the target already had. The one exception is
// the ordering domain, which always carries a value (DefaultDomainName
// until changed) and therefore always transfers.
package softlayer

import (
	"fmt"
	"slices"

	"cloudmason/provm/internal/domain"
	"cloudmason/provm/internal/util"
)

// DefaultDomainName is the ordering domain applied until a caller sets one.
const DefaultDomainName = "jclouds.org"

// Options is an immutable SoftLayer option set. Produce one with New or a
// Builder; re-open one with ToBuilder.
type Options struct {
	base *domain.Options

	domainName                  string
	blockDevices                []int
	diskType                    *string
	portSpeed                   *int
	userData                    *string
	primaryNetworkVLANID        *int
	primaryBackendNetworkVLANID *int
	hourlyBilling               *bool
	dedicatedAccountHostOnly    *bool
	privateNetworkOnly          *bool
	postInstallScriptURI        *string
	sshKeyIDs                   []int
	notes                       *string
}

// None is the canonical all-default option set. Options values are
// immutable, so None is safe to share; call ToBuilder to derive from it.
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

// DomainName returns the ordering domain. Unlike every other extension
// field it is never absent.
func (o *Options) DomainName() string { return o.domainName }

// BlockDevices returns the block device capacities in order, and whether
// they were set.
func (o *Options) BlockDevices() ([]int, bool) {
	if o.blockDevices == nil {
		return nil, false
	}
	return slices.Clone(o.blockDevices), true
}

// DiskType returns the disk type ("LOCAL" or "SAN"), and whether it was set.
func (o *Options) DiskType() (string, bool) { return deref(o.diskType) }

// PortSpeed returns the uplink port speed in Mbps, and whether it was set.
func (o *Options) PortSpeed() (int, bool) { return deref(o.portSpeed) }

// UserData returns the user data payload, and whether it was set.
func (o *Options) UserData() (string, bool) { return deref(o.userData) }

// PrimaryNetworkVLANID returns the VLAN id for the primary (frontend)
// network component, and whether it was set.
func (o *Options) PrimaryNetworkVLANID() (int, bool) { return deref(o.primaryNetworkVLANID) }

// PrimaryBackendNetworkVLANID returns the VLAN id for the primary backend
// network component, and whether it was set.
func (o *Options) PrimaryBackendNetworkVLANID() (int, bool) {
	return deref(o.primaryBackendNetworkVLANID)
}

// HourlyBilling reports the hourly-billing flag, and whether it was set.
func (o *Options) HourlyBilling() (bool, bool) { return deref(o.hourlyBilling) }

// DedicatedAccountHostOnly reports the dedicated-host flag, and whether it
// was set.
func (o *Options) DedicatedAccountHostOnly() (bool, bool) { return deref(o.dedicatedAccountHostOnly) }

// PrivateNetworkOnly reports the private-network-only flag, and whether it
// was set.
func (o *Options) PrivateNetworkOnly() (bool, bool) { return deref(o.privateNetworkOnly) }

// PostInstallScriptURI returns the post-install script URI, and whether it
// was set.
func (o *Options) PostInstallScriptURI() (string, bool) { return deref(o.postInstallScriptURI) }

// SSHKeyIDs returns the SSH key ids in order, and whether they were set.
func (o *Options) SSHKeyIDs() ([]int, bool) {
	if o.sshKeyIDs == nil {
		return nil, false
	}
	return slices.Clone(o.sshKeyIDs), true
}

// Notes returns the free-text notes, and whether they were set.
func (o *Options) Notes() (string, bool) { return deref(o.notes) }

// CopyTo transfers this option set to the target builder. The base group is
// applied unconditionally; extension fields are merged field by field, each
// only when present in the source, and only when the target is a SoftLayer
// builder. Absent source fields leave the target's fields untouched; this
// is a merge, not an overwrite.
func (o *Options) CopyTo(t domain.Target) {
	t.ApplyBase(o.base)

	b, ok := t.(*Builder)
	if !ok {
		return
	}

	b.DomainName(o.domainName)
	if o.blockDevices != nil {
		b.BlockDevices(o.blockDevices...)
	}
	if o.diskType != nil {
		b.DiskType(*o.diskType)
	}
	if o.portSpeed != nil {
		b.PortSpeed(*o.portSpeed)
	}
	if o.userData != nil {
		b.UserData(*o.userData)
	}
	if o.primaryNetworkVLANID != nil {
		b.PrimaryNetworkVLANID(*o.primaryNetworkVLANID)
	}
	if o.primaryBackendNetworkVLANID != nil {
		b.PrimaryBackendNetworkVLANID(*o.primaryBackendNetworkVLANID)
	}
	if o.hourlyBilling != nil {
		b.HourlyBilling(*o.hourlyBilling)
	}
	if o.dedicatedAccountHostOnly != nil {
		b.DedicatedAccountHostOnly(*o.dedicatedAccountHostOnly)
	}
	if o.privateNetworkOnly != nil {
		b.PrivateNetworkOnly(*o.privateNetworkOnly)
	}
	if o.postInstallScriptURI != nil {
		b.PostInstallScriptURI(*o.postInstallScriptURI)
	}
	if o.sshKeyIDs != nil {
		b.SSHKeyIDs(o.sshKeyIDs...)
	}
	if o.notes != nil {
		b.Notes(*o.notes)
	}
}

// Clone returns an independent value-equal copy. List fields are deeply
// copied; mutating a builder derived from the clone never affects the
// original.
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

// Builder accumulates SoftLayer options through fluent calls. Setters
// validate immediately: a rejected value records the first error and leaves
// the builder's state untouched. Build surfaces that error and otherwise
// finalizes to an immutable Options.
type Builder struct {
	base *domain.Builder
	ext  Options
	err  error
}

// NewBuilder returns a builder holding the all-default option set.
func NewBuilder() *Builder {
	return &Builder{
		base: domain.NewBuilder(),
		ext:  Options{domainName: DefaultDomainName},
	}
}

// DomainName sets the domain used when ordering virtual guests. The value
// must be a valid hostname carrying a recognized public suffix.
func (b *Builder) DomainName(name string) *Builder {
	if err := util.ValidateDomainName(name); err != nil {
		return b.fail(fmt.Errorf("%w: %v", domain.ErrInvalidDomain, err))
	}
	b.ext.domainName = name
	return b
}

// BlockDevices sets the block device capacities in GB, in order. The list
// must be non-empty and every capacity positive.
func (b *Builder) BlockDevices(capacities ...int) *Builder {
	if len(capacities) == 0 {
		return b.fail(fmt.Errorf("%w: block devices must not be empty", domain.ErrInvalidArgument))
	}
	for _, c := range capacities {
		if c <= 0 {
			return b.fail(fmt.Errorf("%w: block device capacity must be positive, got %d", domain.ErrInvalidArgument, c))
		}
	}
	b.ext.blockDevices = slices.Clone(capacities)
	return b
}

// DiskType sets the disk type, "LOCAL" or "SAN".
func (b *Builder) DiskType(diskType string) *Builder {
	if diskType == "" {
		return b.fail(fmt.Errorf("%w: disk type must not be empty", domain.ErrInvalidArgument))
	}
	b.ext.diskType = ptr(diskType)
	return b
}

// PortSpeed sets the uplink port speed in Mbps.
func (b *Builder) PortSpeed(mbps int) *Builder {
	if mbps <= 0 {
		return b.fail(fmt.Errorf("%w: port speed must be positive, got %d", domain.ErrInvalidArgument, mbps))
	}
	b.ext.portSpeed = ptr(mbps)
	return b
}

// UserData sets the user data payload attached to the guest.
func (b *Builder) UserData(data string) *Builder {
	if data == "" {
		return b.fail(fmt.Errorf("%w: user data must not be empty", domain.ErrInvalidArgument))
	}
	b.ext.userData = ptr(data)
	return b
}

// PrimaryNetworkVLANID pins the primary (frontend) network component to a VLAN.
func (b *Builder) PrimaryNetworkVLANID(id int) *Builder {
	if id <= 0 {
		return b.fail(fmt.Errorf("%w: primary network VLAN id must be positive, got %d", domain.ErrInvalidArgument, id))
	}
	b.ext.primaryNetworkVLANID = ptr(id)
	return b
}

// PrimaryBackendNetworkVLANID pins the primary backend network component to a VLAN.
func (b *Builder) PrimaryBackendNetworkVLANID(id int) *Builder {
	if id <= 0 {
		return b.fail(fmt.Errorf("%w: primary backend network VLAN id must be positive, got %d", domain.ErrInvalidArgument, id))
	}
	b.ext.primaryBackendNetworkVLANID = ptr(id)
	return b
}

// HourlyBilling sets the hourly-billing flag.
func (b *Builder) HourlyBilling(hourly bool) *Builder {
	b.ext.hourlyBilling = ptr(hourly)
	return b
}

// DedicatedAccountHostOnly sets the dedicated-host flag.
func (b *Builder) DedicatedAccountHostOnly(dedicated bool) *Builder {
	b.ext.dedicatedAccountHostOnly = ptr(dedicated)
	return b
}

// PrivateNetworkOnly sets the private-network-only flag.
func (b *Builder) PrivateNetworkOnly(private bool) *Builder {
	b.ext.privateNetworkOnly = ptr(private)
	return b
}

// PostInstallScriptURI sets the URI of a script to run after install.
func (b *Builder) PostInstallScriptURI(uri string) *Builder {
	if uri == "" {
		return b.fail(fmt.Errorf("%w: post-install script URI must not be empty", domain.ErrInvalidArgument))
	}
	b.ext.postInstallScriptURI = ptr(uri)
	return b
}

// SSHKeyIDs sets the SoftLayer SSH key ids to install, in order. The list
// must be non-empty and every id positive.
func (b *Builder) SSHKeyIDs(ids ...int) *Builder {
	if len(ids) == 0 {
		return b.fail(fmt.Errorf("%w: SSH key ids must not be empty", domain.ErrInvalidArgument))
	}
	for _, id := range ids {
		if id <= 0 {
			return b.fail(fmt.Errorf("%w: SSH key id must be positive, got %d", domain.ErrInvalidArgument, id))
		}
	}
	b.ext.sshKeyIDs = slices.Clone(ids)
	return b
}

// Notes sets free-text notes on the guest. Any value is accepted.
func (b *Builder) Notes(notes string) *Builder {
	b.ext.notes = ptr(notes)
	return b
}

// Base group re-exposures. These delegate to the embedded base builder and
// return *Builder so provider-specific chaining stays available.

// InboundPorts sets the ports to open on the node.
func (b *Builder) InboundPorts(ports ...int) *Builder {
	b.base.InboundPorts(ports...)
	return b
}

// BlockOnPort appends a spec to wait up to seconds for port to be reachable.
func (b *Builder) BlockOnPort(port, seconds int) *Builder {
	b.base.BlockOnPort(port, seconds)
	return b
}

// AuthorizePublicKey sets the public key to authorize on the node.
func (b *Builder) AuthorizePublicKey(key string) *Builder {
	b.base.AuthorizePublicKey(key)
	return b
}

// InstallPrivateKey sets the private key to install on the node.
func (b *Builder) InstallPrivateKey(key string) *Builder {
	b.base.InstallPrivateKey(key)
	return b
}

// UserMetadata replaces the user metadata map.
func (b *Builder) UserMetadata(md map[string]string) *Builder {
	b.base.UserMetadata(md)
	return b
}

// UserMetadataEntry adds a single metadata entry.
func (b *Builder) UserMetadataEntry(key, value string) *Builder {
	b.base.UserMetadataEntry(key, value)
	return b
}

// NodeNames sets the names to assign to provisioned nodes.
func (b *Builder) NodeNames(names ...string) *Builder {
	b.base.NodeNames(names...)
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

// Err returns the first validation failure recorded by any setter,
// extension or base, if one occurred.
func (b *Builder) Err() error {
	if b.err != nil {
		return b.err
	}
	return b.base.Err()
}

// Build finalizes the accumulated options. The returned Options owns all of
// its state; further builder calls cannot affect it.
func (b *Builder) Build() (*Options, error) {
	if b.err != nil {
		return nil, b.err
	}
	base, err := b.base.Build()
	if err != nil {
		return nil, err
	}

	o := Options{
		base:                        base,
		domainName:                  b.ext.domainName,
		blockDevices:                slices.Clone(b.ext.blockDevices),
		diskType:                    clonePtr(b.ext.diskType),
		portSpeed:                   clonePtr(b.ext.portSpeed),
		userData:                    clonePtr(b.ext.userData),
		primaryNetworkVLANID:        clonePtr(b.ext.primaryNetworkVLANID),
		primaryBackendNetworkVLANID: clonePtr(b.ext.primaryBackendNetworkVLANID),
		hourlyBilling:               clonePtr(b.ext.hourlyBilling),
		dedicatedAccountHostOnly:    clonePtr(b.ext.dedicatedAccountHostOnly),
		privateNetworkOnly:          clonePtr(b.ext.privateNetworkOnly),
		postInstallScriptURI:        clonePtr(b.ext.postInstallScriptURI),
		sshKeyIDs:                   slices.Clone(b.ext.sshKeyIDs),
		notes:                       clonePtr(b.ext.notes),
	}
	return &o, nil
}

// Request finalizes the options and builds the virtual guest order payload
// for the given hostname. It implements domain.Extension.
func (b *Builder) Request(hostname string) (any, error) {
	o, err := b.Build()
	if err != nil {
		return nil, err
	}
	return o.GuestOrder(hostname)
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
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
