package store_test

import (
	"errors"
	"testing"

	"github.com/mathildetho/taskade/internal/store"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{
			name: "valid hex id",
			id:   "64b0c3f0a6e1d2b3c4d5e6f7",
		},
		{
			name:    "empty string",
			id:      "",
			wantErr: true,
		},
		{
			name:    "too short",
			id:      "64b0c3f0",
			wantErr: true,
		},
		{
			name:    "non-hex characters",
			id:      "zzzzzzzzzzzzzzzzzzzzzzzz",
			wantErr: true,
		},
		{
			name:    "right length wrong alphabet",
			id:      "not-a-valid-object-id!!!",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oid, err := store.ParseID(tt.id)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseID(%q) expected error", tt.id)
				}
				if !errors.Is(err, store.ErrMalformedID) {
					t.Errorf("ParseID(%q) error = %v, want ErrMalformedID", tt.id, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseID(%q) error = %v", tt.id, err)
			}
			if oid.Hex() != tt.id {
				t.Errorf("ParseID(%q).Hex() = %q", tt.id, oid.Hex())
			}
		})
	}
}
