// Package domain holds the provider-agnostic provisioning model shared by
// every provider extension: the base option set that parameterizes a VM
// create request regardless of which cloud fulfils it.
//
// Options is an immutable value; it is only produced by a Builder. Provider
// packages embed a Builder to extend the base set with their own optional
// fields, and implement Target so option sets can be copied across builders
// without the copier knowing the concrete provider type.
package domain

import (
	"fmt"
	"maps"
	"slices"

	"cloudmason/provm/internal/util"
)

// PortWait pairs a port with the number of seconds a caller is willing to
// wait for it to become reachable after provisioning.
type PortWait struct {
	Port    int
	Seconds int
}

// Options is the base group of provisioning options common to all
// providers: inbound firewall ports, port-wait specs, key material to
// authorize or install, user metadata, node names, and network memberships.
// All accessors return defensive copies; the value never changes after
// Build.
type Options struct {
	inboundPorts []int
	portWaits    []PortWait
	publicKey    string
	privateKey   string
	userMetadata map[string]string
	nodeNames    []string
	networks     []string
}

// Target is implemented by any options builder that can receive a copy of a
// base option set. CopyTo dispatches on the concrete type behind Target, so
// provider extensions get their extension fields merged only when source and
// target speak the same provider.
type Target interface {
	// ApplyBase overwrites the target's entire base group with a copy of o.
	ApplyBase(o *Options)
}

// Extension is the contract a provider-specific options builder satisfies so
// the registry, profiles, and the CLI can drive any provider uniformly.
type Extension interface {
	Target

	// Base exposes the shared base-group builder for generic options.
	Base() *Builder

	// Request finalizes the options and produces the provider's request
	// payload for the given hostname. It never performs I/O.
	Request(hostname string) (any, error)
}

// InboundPorts returns the ports to open on the provisioned node.
func (o *Options) InboundPorts() []int { return slices.Clone(o.inboundPorts) }

// PortWaits returns the configured port-wait specs in insertion order.
func (o *Options) PortWaits() []PortWait { return slices.Clone(o.portWaits) }

// PublicKey returns the public key to authorize, or "" if none.
func (o *Options) PublicKey() string { return o.publicKey }

// PrivateKey returns the private key to install, or "" if none.
func (o *Options) PrivateKey() string { return o.privateKey }

// UserMetadata returns the user metadata map. Never nil.
func (o *Options) UserMetadata() map[string]string {
	if o.userMetadata == nil {
		return map[string]string{}
	}
	return maps.Clone(o.userMetadata)
}

// NodeNames returns the configured node names in order.
func (o *Options) NodeNames() []string { return slices.Clone(o.nodeNames) }

// Networks returns the network memberships in order.
func (o *Options) Networks() []string { return slices.Clone(o.networks) }

// CopyTo transfers the base group to the target unconditionally. Base
// fields have no present/absent distinction: the target's base group is
// replaced wholesale.
func (o *Options) CopyTo(t Target) { t.ApplyBase(o) }

// Builder accumulates base options through fluent calls and finalizes them
// with Build. Every setter validates immediately; a rejected call records
// the first error and leaves the accumulated state untouched, so a builder
// never holds a partially applied value.
type Builder struct {
	opts Options
	err  error
}

// NewBuilder returns an empty base-options builder.
func NewBuilder() *Builder { return &Builder{} }

// InboundPorts sets the ports to open on the node.
func (b *Builder) InboundPorts(ports ...int) *Builder {
	for _, p := range ports {
		if p < 1 || p > 65535 {
			return b.fail(fmt.Errorf("%w: inbound port %d out of range", ErrInvalidArgument, p))
		}
	}
	b.opts.inboundPorts = slices.Clone(ports)
	return b
}

// BlockOnPort appends a spec to wait up to seconds for port to be reachable.
func (b *Builder) BlockOnPort(port, seconds int) *Builder {
	if port < 1 || port > 65535 {
		return b.fail(fmt.Errorf("%w: block-on port %d out of range", ErrInvalidArgument, port))
	}
	if seconds <= 0 {
		return b.fail(fmt.Errorf("%w: block-on seconds must be positive, got %d", ErrInvalidArgument, seconds))
	}
	b.opts.portWaits = append(b.opts.portWaits, PortWait{Port: port, Seconds: seconds})
	return b
}

// AuthorizePublicKey sets the public key to authorize on the node.
func (b *Builder) AuthorizePublicKey(key string) *Builder {
	if key == "" {
		return b.fail(fmt.Errorf("%w: public key must not be empty", ErrInvalidArgument))
	}
	b.opts.publicKey = key
	return b
}

// InstallPrivateKey sets the private key to install on the node.
func (b *Builder) InstallPrivateKey(key string) *Builder {
	if key == "" {
		return b.fail(fmt.Errorf("%w: private key must not be empty", ErrInvalidArgument))
	}
	b.opts.privateKey = key
	return b
}

// UserMetadata replaces the user metadata map.
func (b *Builder) UserMetadata(md map[string]string) *Builder {
	for k := range md {
		if k == "" {
			return b.fail(fmt.Errorf("%w: user metadata key must not be empty", ErrInvalidArgument))
		}
	}
	b.opts.userMetadata = maps.Clone(md)
	return b
}

// UserMetadataEntry adds a single metadata entry, preserving existing ones.
func (b *Builder) UserMetadataEntry(key, value string) *Builder {
	if key == "" {
		return b.fail(fmt.Errorf("%w: user metadata key must not be empty", ErrInvalidArgument))
	}
	if b.opts.userMetadata == nil {
		b.opts.userMetadata = map[string]string{}
	}
	b.opts.userMetadata[key] = value
	return b
}

// NodeNames sets the names to assign to provisioned nodes, in order.
func (b *Builder) NodeNames(names ...string) *Builder {
	for _, n := range names {
		if err := util.ValidateNodeName(n); err != nil {
			return b.fail(fmt.Errorf("%w: %v", ErrInvalidArgument, err))
		}
	}
	b.opts.nodeNames = slices.Clone(names)
	return b
}

// Networks sets the networks the node should join, in order.
func (b *Builder) Networks(ids ...string) *Builder {
	for _, id := range ids {
		if id == "" {
			return b.fail(fmt.Errorf("%w: network id must not be empty", ErrInvalidArgument))
		}
	}
	b.opts.networks = slices.Clone(ids)
	return b
}

// ApplyBase overwrites the builder's base group with a copy of o.
// It implements Target.
func (b *Builder) ApplyBase(o *Options) {
	b.opts = Options{
		inboundPorts: slices.Clone(o.inboundPorts),
		portWaits:    slices.Clone(o.portWaits),
		publicKey:    o.publicKey,
		privateKey:   o.privateKey,
		userMetadata: maps.Clone(o.userMetadata),
		nodeNames:    slices.Clone(o.nodeNames),
		networks:     slices.Clone(o.networks),
	}
}

// Err returns the first validation failure recorded by a setter, if any.
func (b *Builder) Err() error { return b.err }

// Build finalizes the accumulated options. It returns the first setter
// error if one occurred; the returned Options owns all of its state.
func (b *Builder) Build() (*Options, error) {
	if b.err != nil {
		return nil, b.err
	}
	o := Options{
		inboundPorts: slices.Clone(b.opts.inboundPorts),
		portWaits:    slices.Clone(b.opts.portWaits),
		publicKey:    b.opts.publicKey,
		privateKey:   b.opts.privateKey,
		userMetadata: maps.Clone(b.opts.userMetadata),
		nodeNames:    slices.Clone(b.opts.nodeNames),
		networks:     slices.Clone(b.opts.networks),
	}
	return &o, nil
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}
