package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_FileReceivesWarnings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "error.log")

	closer, err := Setup(false, path)
	require.NoError(t, err)

	log.Info().Msg("listing page served")
	log.Error().Msg("venue could not be listed")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "venue could not be listed")
	assert.NotContains(t, string(data), "listing page served")
}

func TestSetup_DebugNeedsNoFile(t *testing.T) {
	closer, err := Setup(true, "")
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
}

func TestSetup_BadPath(t *testing.T) {
	_, err := Setup(false, filepath.Join(t.TempDir(), "missing", "error.log"))
	assert.Error(t, err)
}
