package buildinfo

import "testing"

func TestShort(t *testing.T) {
	oldV, oldC := Version, Commit
	defer func() { Version, Commit = oldV, oldC }()

	tests := []struct {
		version, commit, want string
	}{
		{"dev", "unknown", "dev"},
		{"", "", "dev"},
		{"v0.2.0", "unknown", "v0.2.0"},
		{"dev", "abc123", "abc123"},
		{"v0.2.0", "abc123", "v0.2.0+abc123"},
	}
	for _, tt := range tests {
		Version, Commit = tt.version, tt.commit
		if got := Short(); got != tt.want {
			t.Fatalf("Short() with %q/%q = %q, want %q", tt.version, tt.commit, got, tt.want)
		}
	}
}
