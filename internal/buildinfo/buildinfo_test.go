package buildinfo

import "testing"

func TestShort(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	tests := []struct {
		version, commit, want string
	}{
		{"dev", "unknown", "dev"},
		{"v1.2.3", "abcdef0123", "v1.2.3"},
		{"dev", "abcdef0123", "abcdef0"},
		{"", "abc", "abc"},
	}
	for _, tt := range tests {
		Version, Commit = tt.version, tt.commit
		if got := Short(); got != tt.want {
			t.Errorf("Short(%q, %q) = %q, want %q", tt.version, tt.commit, got, tt.want)
		}
	}
}
