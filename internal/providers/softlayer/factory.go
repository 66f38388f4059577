package softlayer

// Option applies one field to a Builder. The package-level constructors
// below give each field a one-call entry point, so a caller can build a
// full option set in a single New call without touching a Builder:
//
//	opts, err := softlayer.New(
//		softlayer.DomainName("example.com"),
//		softlayer.BlockDevices(25, 100),
//		softlayer.HourlyBilling(true),
//	)
type Option func(*Builder)

// New builds an option set from the given fields. Each field validates as
// it is applied; the first failure is returned and nothing is built.
func New(opts ...Option) (*Options, error) {
	b := NewBuilder()
	for _, opt := range opts {
		opt(b)
	}
	return b.Build()
}

// DomainName sets the ordering domain.
func DomainName(name string) Option {
	return func(b *Builder) { b.DomainName(name) }
}

// BlockDevices sets the block device capacities in GB.
func BlockDevices(capacities ...int) Option {
	return func(b *Builder) { b.BlockDevices(capacities...) }
}

// DiskType sets the disk type, "LOCAL" or "SAN".
func DiskType(diskType string) Option {
	return func(b *Builder) { b.DiskType(diskType) }
}

// PortSpeed sets the uplink port speed in Mbps.
func PortSpeed(mbps int) Option {
	return func(b *Builder) { b.PortSpeed(mbps) }
}

// UserData sets the user data payload.
func UserData(data string) Option {
	return func(b *Builder) { b.UserData(data) }
}

// PrimaryNetworkVLANID pins the primary network component to a VLAN.
func PrimaryNetworkVLANID(id int) Option {
	return func(b *Builder) { b.PrimaryNetworkVLANID(id) }
}

// PrimaryBackendNetworkVLANID pins the primary backend network component to a VLAN.
func PrimaryBackendNetworkVLANID(id int) Option {
	return func(b *Builder) { b.PrimaryBackendNetworkVLANID(id) }
}

// HourlyBilling sets the hourly-billing flag.
func HourlyBilling(hourly bool) Option {
	return func(b *Builder) { b.HourlyBilling(hourly) }
}

// DedicatedAccountHostOnly sets the dedicated-host flag.
func DedicatedAccountHostOnly(dedicated bool) Option {
	return func(b *Builder) { b.DedicatedAccountHostOnly(dedicated) }
}

// PrivateNetworkOnly sets the private-network-only flag.
func PrivateNetworkOnly(private bool) Option {
	return func(b *Builder) { b.PrivateNetworkOnly(private) }
}

// PostInstallScriptURI sets the URI of a script to run after install.
func PostInstallScriptURI(uri string) Option {
	return func(b *Builder) { b.PostInstallScriptURI(uri) }
}

// SSHKeyIDs sets the SoftLayer SSH key ids to install.
func SSHKeyIDs(ids ...int) Option {
	return func(b *Builder) { b.SSHKeyIDs(ids...) }
}

// Notes sets free-text notes on the guest.
func Notes(notes string) Option {
	return func(b *Builder) { b.Notes(notes) }
}

// Base-group constructors, so generic options chain through New as well.

// InboundPorts sets the ports to open on the node.
func InboundPorts(ports ...int) Option {
	return func(b *Builder) { b.InboundPorts(ports...) }
}

// BlockOnPort waits up to seconds for port to be reachable.
func BlockOnPort(port, seconds int) Option {
	return func(b *Builder) { b.BlockOnPort(port, seconds) }
}

// AuthorizePublicKey sets the public key to authorize.
func AuthorizePublicKey(key string) Option {
	return func(b *Builder) { b.AuthorizePublicKey(key) }
}

// InstallPrivateKey sets the private key to install.
func InstallPrivateKey(key string) Option {
	return func(b *Builder) { b.InstallPrivateKey(key) }
}

// UserMetadata replaces the user metadata map.
func UserMetadata(md map[string]string) Option {
	return func(b *Builder) { b.UserMetadata(md) }
}

// NodeNames sets the names to assign to provisioned nodes.
func NodeNames(names ...string) Option {
	return func(b *Builder) { b.NodeNames(names...) }
}

// Networks sets the networks the node should join.
func Networks(ids ...string) Option {
	return func(b *Builder) { b.Networks(ids...) }
}
