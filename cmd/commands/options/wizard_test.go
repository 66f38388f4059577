package options

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseIntList(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"25", []int{25}, false},
		{"25,100", []int{25, 100}, false},
		{"25, 100 , 250", []int{25, 100, 250}, false},
		{"25,x", nil, true},
		{"25,,100", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseIntList(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseIntList(%q) = nil error, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseIntList(%q) error: %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("parseIntList(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestValidateOptionalInt(t *testing.T) {
	if err := validateOptionalInt(""); err != nil {
		t.Errorf("empty input rejected: %v", err)
	}
	if err := validateOptionalInt(" 1000 "); err != nil {
		t.Errorf("numeric input rejected: %v", err)
	}
	if err := validateOptionalInt("fast"); err == nil {
		t.Error("non-numeric input accepted")
	}
}

func TestValidateOptionalIntList(t *testing.T) {
	if err := validateOptionalIntList(""); err != nil {
		t.Errorf("empty input rejected: %v", err)
	}
	if err := validateOptionalIntList("25,100"); err != nil {
		t.Errorf("numeric list rejected: %v", err)
	}
	if err := validateOptionalIntList("25,x"); err == nil {
		t.Error("non-numeric list accepted")
	}
}
