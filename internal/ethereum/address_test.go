package ethereum

import "testing"

func TestIsValidAddress(t *testing.T) {
	cases := []struct {
		name    string
		address string
		want    bool
	}{
		{"valid lowercase", "0x71c7656ec7ab88b098defb751b7401b5f6d8976f", true},
		{"valid mixed case", "0x71C7656EC7ab88b098defB751B7401B5f6d8976F", true},
		{"zero address rejected", "0x0000000000000000000000000000000000000000", false},
		{"missing prefix", "71c7656ec7ab88b098defb751b7401b5f6d8976f", false},
		{"too short", "0x71c7656ec7ab88b098defb751b7401b5f6d8976", false},
		{"too long", "0x71c7656ec7ab88b098defb751b7401b5f6d8976f0", false},
		{"non hex chars", "0x71c7656ec7ab88b098defb751b7401b5f6d8976g", false},
		{"not an address", "not-an-address", false},
		{"empty", "", false},
		{"whitespace padded", "  0x71c7656ec7ab88b098defb751b7401b5f6d8976f  ", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidAddress(tc.address); got != tc.want {
				t.Errorf("IsValidAddress(%q) = %v, want %v", tc.address, got, tc.want)
			}
		})
	}
}
