package softlayer

import (
	"fmt"
	"strings"

	"cloudmason/provm/internal/domain"
	"cloudmason/provm/internal/util"
)

// GuestOrder is the request payload for ordering a virtual guest, shaped
// after the SoftLayer_Virtual_Guest data type. Building it is a pure
// mapping from an Options value; submitting it belongs to the API client,
// not this package.
type GuestOrder struct {
	Hostname string `json:"hostname"`
	Domain   string `json:"domain"`

	HourlyBillingFlag            *bool  `json:"hourlyBillingFlag,omitempty"`
	DedicatedAccountHostOnlyFlag *bool  `json:"dedicatedAccountHostOnlyFlag,omitempty"`
	PrivateNetworkOnlyFlag       *bool  `json:"privateNetworkOnlyFlag,omitempty"`
	LocalDiskFlag                *bool  `json:"localDiskFlag,omitempty"`
	PostInstallScriptURI         string `json:"postInstallScriptUri,omitempty"`
	Notes                        string `json:"notes,omitempty"`

	UserData                       []GuestAttribute        `json:"userData,omitempty"`
	SSHKeys                        []GuestSSHKey           `json:"sshKeys,omitempty"`
	BlockDevices                   []GuestBlockDevice      `json:"blockDevices,omitempty"`
	NetworkComponents              []GuestNetworkComponent `json:"networkComponents,omitempty"`
	PrimaryNetworkComponent        *GuestNetworkVLAN       `json:"primaryNetworkComponent,omitempty"`
	PrimaryBackendNetworkComponent *GuestNetworkVLAN       `json:"primaryBackendNetworkComponent,omitempty"`
}

// GuestAttribute carries a user data string.
type GuestAttribute struct {
	Value string `json:"value"`
}

// GuestSSHKey references a stored SSH key by id.
type GuestSSHKey struct {
	ID int `json:"id"`
}

// GuestBlockDevice attaches a disk image of the given capacity at a device
// position.
type GuestBlockDevice struct {
	Device    string         `json:"device"`
	DiskImage GuestDiskImage `json:"diskImage"`
}

// GuestDiskImage is the capacity of a block device in GB.
type GuestDiskImage struct {
	Capacity int `json:"capacity"`
}

// GuestNetworkComponent sets the uplink port speed.
type GuestNetworkComponent struct {
	MaxSpeed int `json:"maxSpeed"`
}

// GuestNetworkVLAN pins a network component to a VLAN.
type GuestNetworkVLAN struct {
	NetworkVLAN GuestVLANID `json:"networkVlan"`
}

// GuestVLANID identifies a VLAN by id.
type GuestVLANID struct {
	ID int `json:"id"`
}

// GuestOrder maps the option set onto an order payload for the given
// hostname. The hostname must satisfy node-name rules; everything else is
// already validated, so absent fields simply stay off the payload.
func (o *Options) GuestOrder(hostname string) (*GuestOrder, error) {
	if err := util.ValidateNodeName(hostname); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	}

	order := GuestOrder{
		Hostname: hostname,
		Domain:   o.domainName,
	}

	order.HourlyBillingFlag = clonePtr(o.hourlyBilling)
	order.DedicatedAccountHostOnlyFlag = clonePtr(o.dedicatedAccountHostOnly)
	order.PrivateNetworkOnlyFlag = clonePtr(o.privateNetworkOnly)

	if o.diskType != nil {
		order.LocalDiskFlag = ptr(strings.EqualFold(*o.diskType, "LOCAL"))
	}
	if o.postInstallScriptURI != nil {
		order.PostInstallScriptURI = *o.postInstallScriptURI
	}
	if o.notes != nil {
		order.Notes = *o.notes
	}
	if o.userData != nil {
		order.UserData = []GuestAttribute{{Value: *o.userData}}
	}
	for _, id := range o.sshKeyIDs {
		order.SSHKeys = append(order.SSHKeys, GuestSSHKey{ID: id})
	}

	// Device number 1 is reserved for swap, so capacities map onto
	// devices 0, 2, 3, ...
	device := 0
	for _, capacity := range o.blockDevices {
		order.BlockDevices = append(order.BlockDevices, GuestBlockDevice{
			Device:    fmt.Sprintf("%d", device),
			DiskImage: GuestDiskImage{Capacity: capacity},
		})
		if device == 0 {
			device = 2
		} else {
			device++
		}
	}

	if o.portSpeed != nil {
		order.NetworkComponents = []GuestNetworkComponent{{MaxSpeed: *o.portSpeed}}
	}
	if o.primaryNetworkVLANID != nil {
		order.PrimaryNetworkComponent = &GuestNetworkVLAN{
			NetworkVLAN: GuestVLANID{ID: *o.primaryNetworkVLANID},
		}
	}
	if o.primaryBackendNetworkVLANID != nil {
		order.PrimaryBackendNetworkComponent = &GuestNetworkVLAN{
			NetworkVLAN: GuestVLANID{ID: *o.primaryBackendNetworkVLANID},
		}
	}

	return &order, nil
}
