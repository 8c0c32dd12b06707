package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"dev stays bare", "dev", "dev"},
		{"empty stays empty", "", ""},
		{"adds v prefix", "1.2.3", "v1.2.3"},
		{"keeps existing v", "v1.2.3", "v1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatVersion(tt.input))
		})
	}
}

func TestSetVersionInfo(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	defer SetVersionInfo(origVersion, origCommit, origDate)

	SetVersionInfo("1.0.0", "abc123", "2024-01-01")

	assert.Equal(t, "1.0.0", version)
	assert.Equal(t, "abc123", commit)
	assert.Equal(t, "2024-01-01", date)
}

func TestVersionCommandFlags(t *testing.T) {
	assert.NotNil(t, versionCmd.Flags().Lookup("short"))
}
