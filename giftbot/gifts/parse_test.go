package gifts

import "testing"

func TestParseClaimPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantID  string
		wantOK  bool
	}{
		{
			name:    "valid payload",
			payload: "claim_nft_abc123",
			wantID:  "abc123",
			wantOK:  true,
		},
		{
			name:    "missing id",
			payload: "claim_nft_",
			wantOK:  false,
		},
		{
			name:    "unrelated payload",
			payload: "ref_12345",
			wantOK:  false,
		},
		{
			name:    "empty payload",
			payload: "",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ParseClaimPayload(tt.payload)
			if ok != tt.wantOK {
				t.Errorf("ParseClaimPayload() ok = %v, want %v", ok, tt.wantOK)
			}
			if id != tt.wantID {
				t.Errorf("ParseClaimPayload() id = %q, want %q", id, tt.wantID)
			}
		})
	}
}

func TestDisplayTitle(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "name with number",
			raw:  "Phoenix-007",
			want: "Phoenix #007",
		},
		{
			name: "no number",
			raw:  "Phoenix",
			want: "Phoenix",
		},
		{
			name: "multiple hyphens split on last",
			raw:  "Jelly-Bunny-12",
			want: "Jelly-Bunny #12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayTitle(tt.raw); got != tt.want {
				t.Errorf("DisplayTitle(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
