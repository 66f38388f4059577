package util

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// validNameChars matches only alphanumeric characters, hyphens, and periods.
var validNameChars = regexp.MustCompile(`^[a-zA-Z0-9.\-]+$`)

// ValidateNodeName checks that a node name conforms to RFC 1123 hostname
// rules as required by the provisioning APIs:
//   - At least 2 characters
//   - Only alphanumeric characters (a-z, A-Z, 0-9), hyphens (-), and periods (.)
//   - First character must be alphanumeric
//   - Last character must not be a hyphen or period
func ValidateNodeName(name string) error {
	if len(name) < 2 {
		return fmt.Errorf("node name must be at least 2 characters, got %d", len(name))
	}

	if !validNameChars.MatchString(name) {
		return fmt.Errorf("node name %q contains invalid characters (only a-z, A-Z, 0-9, hyphens, and periods are allowed)", name)
	}

	first := name[0]
	if !isAlphanumeric(first) {
		return fmt.Errorf("node name must start with an alphanumeric character, got %q", string(first))
	}

	last := name[len(name)-1]
	if last == '-' || last == '.' {
		return fmt.Errorf("node name must not end with a hyphen or period, got %q", string(last))
	}

	return nil
}

// ValidateDomainName checks that a domain name is a plausible registrable
// domain: hostname syntax per ValidateNodeName, plus a recognized ICANN
// public suffix with at least one label in front of it. "example.com"
// passes; "localhost" and bare suffixes like "com" do not.
func ValidateDomainName(domain string) error {
	if domain == "" {
		return fmt.Errorf("domain name must not be empty")
	}

	if err := ValidateNodeName(domain); err != nil {
		return err
	}

	lowered := strings.ToLower(domain)
	suffix, icann := publicsuffix.PublicSuffix(lowered)
	if !icann {
		return fmt.Errorf("domain name %q has no public suffix", domain)
	}
	if lowered == suffix {
		return fmt.Errorf("domain name %q is a bare public suffix", domain)
	}

	return nil
}

func isAlphanumeric(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
