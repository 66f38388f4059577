package profiles

import (
	"cloudmason/provm/internal/domain"
	"cloudmason/provm/internal/providers/hetzner"
	"cloudmason/provm/internal/providers/softlayer"
)

// Apply seeds the extension builder from the profile. Base-group fields go
// through the shared base builder; extension fields are applied only when
// the builder belongs to the matching provider, so a profile carrying
// SoftLayer fields is harmless against a Hetzner builder. Only fields
// present in the profile are touched, and the usual setter validation
// applies; the first failure is returned.
func (p Profile) Apply(ext domain.Extension) error {
	base := ext.Base()
	if p.InboundPorts != nil {
		base.InboundPorts(p.InboundPorts...)
	}
	if p.PublicKey != nil {
		base.AuthorizePublicKey(*p.PublicKey)
	}
	if p.UserMetadata != nil {
		base.UserMetadata(p.UserMetadata)
	}
	if p.Networks != nil {
		base.Networks(p.Networks...)
	}

	switch b := ext.(type) {
	case *softlayer.Builder:
		p.applySoftLayer(b)
		return b.Err()
	case *hetzner.Builder:
		p.applyHetzner(b)
		return b.Err()
	default:
		return base.Err()
	}
}

func (p Profile) applySoftLayer(b *softlayer.Builder) {
	if p.DomainName != nil {
		b.DomainName(*p.DomainName)
	}
	if p.BlockDevices != nil {
		b.BlockDevices(p.BlockDevices...)
	}
	if p.DiskType != nil {
		b.DiskType(*p.DiskType)
	}
	if p.PortSpeed != nil {
		b.PortSpeed(*p.PortSpeed)
	}
	if p.UserData != nil {
		b.UserData(*p.UserData)
	}
	if p.PrimaryNetworkVLANID != nil {
		b.PrimaryNetworkVLANID(*p.PrimaryNetworkVLANID)
	}
	if p.PrimaryBackendNetworkVLANID != nil {
		b.PrimaryBackendNetworkVLANID(*p.PrimaryBackendNetworkVLANID)
	}
	if p.HourlyBilling != nil {
		b.HourlyBilling(*p.HourlyBilling)
	}
	if p.DedicatedAccountHostOnly != nil {
		b.DedicatedAccountHostOnly(*p.DedicatedAccountHostOnly)
	}
	if p.PrivateNetworkOnly != nil {
		b.PrivateNetworkOnly(*p.PrivateNetworkOnly)
	}
	if p.PostInstallScriptURI != nil {
		b.PostInstallScriptURI(*p.PostInstallScriptURI)
	}
	if p.SSHKeyIDs != nil {
		b.SSHKeyIDs(p.SSHKeyIDs...)
	}
	if p.Notes != nil {
		b.Notes(*p.Notes)
	}
}

func (p Profile) applyHetzner(b *hetzner.Builder) {
	if p.Location != nil {
		b.Location(*p.Location)
	}
	if p.ServerType != nil {
		b.ServerType(*p.ServerType)
	}
	if p.Image != nil {
		b.Image(*p.Image)
	}
	if p.Labels != nil {
		b.Labels(p.Labels)
	}
	if p.UserData != nil {
		b.UserData(*p.UserData)
	}
	if p.SSHKeyNames != nil {
		b.SSHKeyNames(p.SSHKeyNames...)
	}
	if p.StartAfterCreate != nil {
		b.StartAfterCreate(*p.StartAfterCreate)
	}
	if p.PlacementGroupID != nil {
		b.PlacementGroupID(*p.PlacementGroupID)
	}
}
