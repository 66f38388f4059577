package profiles

// Merge returns p with every present field of overlay applied on top.
// Fields absent in the overlay keep p's values, the same field-granular
// merge the option builders use, applied between two profiles. Neither
// input is modified.
func (p Profile) Merge(overlay Profile) Profile {
	out := p

	if overlay.Provider != "" {
		out.Provider = overlay.Provider
	}

	if overlay.InboundPorts != nil {
		out.InboundPorts = overlay.InboundPorts
	}
	if overlay.PublicKey != nil {
		out.PublicKey = overlay.PublicKey
	}
	if overlay.UserMetadata != nil {
		out.UserMetadata = overlay.UserMetadata
	}
	if overlay.Networks != nil {
		out.Networks = overlay.Networks
	}

	if overlay.DomainName != nil {
		out.DomainName = overlay.DomainName
	}
	if overlay.BlockDevices != nil {
		out.BlockDevices = overlay.BlockDevices
	}
	if overlay.DiskType != nil {
		out.DiskType = overlay.DiskType
	}
	if overlay.PortSpeed != nil {
		out.PortSpeed = overlay.PortSpeed
	}
	if overlay.UserData != nil {
		out.UserData = overlay.UserData
	}
	if overlay.PrimaryNetworkVLANID != nil {
		out.PrimaryNetworkVLANID = overlay.PrimaryNetworkVLANID
	}
	if overlay.PrimaryBackendNetworkVLANID != nil {
		out.PrimaryBackendNetworkVLANID = overlay.PrimaryBackendNetworkVLANID
	}
	if overlay.HourlyBilling != nil {
		out.HourlyBilling = overlay.HourlyBilling
	}
	if overlay.DedicatedAccountHostOnly != nil {
		out.DedicatedAccountHostOnly = overlay.DedicatedAccountHostOnly
	}
	if overlay.PrivateNetworkOnly != nil {
		out.PrivateNetworkOnly = overlay.PrivateNetworkOnly
	}
	if overlay.PostInstallScriptURI != nil {
		out.PostInstallScriptURI = overlay.PostInstallScriptURI
	}
	if overlay.SSHKeyIDs != nil {
		out.SSHKeyIDs = overlay.SSHKeyIDs
	}
	if overlay.Notes != nil {
		out.Notes = overlay.Notes
	}

	if overlay.Location != nil {
		out.Location = overlay.Location
	}
	if overlay.ServerType != nil {
		out.ServerType = overlay.ServerType
	}
	if overlay.Image != nil {
		out.Image = overlay.Image
	}
	if overlay.Labels != nil {
		out.Labels = overlay.Labels
	}
	if overlay.SSHKeyNames != nil {
		out.SSHKeyNames = overlay.SSHKeyNames
	}
	if overlay.StartAfterCreate != nil {
		out.StartAfterCreate = overlay.StartAfterCreate
	}
	if overlay.PlacementGroupID != nil {
		out.PlacementGroupID = overlay.PlacementGroupID
	}

	return out
}
