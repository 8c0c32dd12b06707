package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCoordinate(t *testing.T) {
	lat := validateCoordinate(-90, 90)

	assert.NoError(t, lat("40.7128"))
	assert.NoError(t, lat("-90"))
	assert.NoError(t, lat(" 12.5 "))
	assert.Error(t, lat("91"))
	assert.Error(t, lat("north"))
	assert.Error(t, lat(""))

	lon := validateCoordinate(-180, 180)
	assert.NoError(t, lon("-122.4194"))
	assert.Error(t, lon("-181"))
}

func TestValidateRefresh(t *testing.T) {
	assert.NoError(t, validateRefresh("1s"))
	assert.NoError(t, validateRefresh("30s"))
	assert.NoError(t, validateRefresh(" 2m "))
	assert.Error(t, validateRefresh("500ms"))
	assert.Error(t, validateRefresh("fast"))
	assert.Error(t, validateRefresh(""))
}

func TestInitCommandFlags(t *testing.T) {
	assert.NotNil(t, initCmd.Flags().Lookup("force"))
}
