package options

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"cloudmason/provm/internal/providers"
	"cloudmason/provm/internal/providers/hetzner"
	"cloudmason/provm/internal/providers/softlayer"
	"cloudmason/provm/internal/util"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// WizardCommand returns the "options wizard" command.
func WizardCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "wizard",
		Short:        "Interactively build an option set and render its request",
		RunE:         runWizard,
		SilenceUsage: true,
	}
}

func runWizard(cmd *cobra.Command, args []string) error {
	accessible := os.Getenv("ACCESSIBLE") != ""

	var hostname, providerName string

	providerOpts := make([]huh.Option[string], 0, len(providers.List()))
	for _, name := range providers.List() {
		providerOpts = append(providerOpts, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Hostname").
				Value(&hostname).
				Validate(func(value string) error {
					return util.ValidateNodeName(strings.TrimSpace(value))
				}),
			huh.NewSelect[string]().
				Title("Provider").
				Options(providerOpts...).
				Value(&providerName),
		),
	).WithAccessible(accessible)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
			return nil
		}
		return err
	}
	hostname = strings.TrimSpace(hostname)

	ext, err := providers.New(providerName)
	if err != nil {
		return err
	}

	switch b := ext.(type) {
	case *softlayer.Builder:
		err = softLayerForm(accessible, b)
	case *hetzner.Builder:
		err = hetznerForm(accessible, b)
	}
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
			return nil
		}
		return err
	}

	payload, err := ext.Request(hostname)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render(fmt.Sprintf("%s request for %s", providerName, hostname)))
	return printJSON(cmd, payload)
}

// softLayerForm collects the SoftLayer extension fields. Every prompt can
// be left alone, keeping the corresponding field absent.
func softLayerForm(accessible bool, b *softlayer.Builder) error {
	var (
		domainName   string
		diskType     string
		blockDevices string
		portSpeed    string
		billing      string
		notes        string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Ordering domain").
				Placeholder(softlayer.DefaultDomainName).
				Value(&domainName).
				Validate(func(value string) error {
					if strings.TrimSpace(value) == "" {
						return nil
					}
					return util.ValidateDomainName(strings.TrimSpace(value))
				}),
			huh.NewSelect[string]().
				Title("Disk type").
				Options(
					huh.NewOption("provider default", ""),
					huh.NewOption("LOCAL", "LOCAL"),
					huh.NewOption("SAN", "SAN"),
				).
				Value(&diskType),
			huh.NewInput().
				Title("Block devices (GB, comma-separated)").
				Placeholder("25,100").
				Value(&blockDevices).
				Validate(validateOptionalIntList),
			huh.NewInput().
				Title("Port speed (Mbps)").
				Value(&portSpeed).
				Validate(validateOptionalInt),
			huh.NewSelect[string]().
				Title("Billing").
				Options(
					huh.NewOption("provider default", ""),
					huh.NewOption("hourly", "hourly"),
					huh.NewOption("monthly", "monthly"),
				).
				Value(&billing),
			huh.NewInput().
				Title("Notes").
				Value(&notes),
		),
	).WithAccessible(accessible)

	if err := form.Run(); err != nil {
		return err
	}

	if v := strings.TrimSpace(domainName); v != "" {
		b.DomainName(v)
	}
	if diskType != "" {
		b.DiskType(diskType)
	}
	if v := strings.TrimSpace(blockDevices); v != "" {
		capacities, err := parseIntList(v)
		if err != nil {
			return err
		}
		b.BlockDevices(capacities...)
	}
	if v := strings.TrimSpace(portSpeed); v != "" {
		mbps, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		b.PortSpeed(mbps)
	}
	if billing != "" {
		b.HourlyBilling(billing == "hourly")
	}
	if notes != "" {
		b.Notes(notes)
	}

	return nil
}

// hetznerForm collects the Hetzner extension fields. Server type and image
// are required by the create request, so their prompts do not accept empty
// input.
func hetznerForm(accessible bool, b *hetzner.Builder) error {
	var serverType, image, location string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Server type").
				Placeholder("cpx11").
				Value(&serverType).
				Validate(huh.ValidateNotEmpty()),
			huh.NewInput().
				Title("Image").
				Placeholder("ubuntu-24.04").
				Value(&image).
				Validate(huh.ValidateNotEmpty()),
			huh.NewInput().
				Title("Location (optional)").
				Placeholder("fsn1").
				Value(&location),
		),
	).WithAccessible(accessible)

	if err := form.Run(); err != nil {
		return err
	}

	b.ServerType(strings.TrimSpace(serverType))
	b.Image(strings.TrimSpace(image))
	if v := strings.TrimSpace(location); v != "" {
		b.Location(v)
	}

	return nil
}

func validateOptionalInt(value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	if _, err := strconv.Atoi(strings.TrimSpace(value)); err != nil {
		return errors.New("must be a number")
	}
	return nil
}

func validateOptionalIntList(value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	if _, err := parseIntList(strings.TrimSpace(value)); err != nil {
		return errors.New("must be comma-separated numbers")
	}
	return nil
}

func parseIntList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", part)
		}
		out = append(out, n)
	}
	return out, nil
}
