package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileIsFine(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(t.TempDir()))
	assert.False(t, DarkMode())
}

func TestSaveAndReload(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, Load(dir))
	require.NoError(t, SaveDarkMode(true, dir))

	viper.Reset()
	require.NoError(t, Load(dir))
	assert.True(t, DarkMode())
}
