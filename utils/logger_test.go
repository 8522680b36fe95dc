package utils

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestConfigureLogger(t *testing.T) {
	t.Cleanup(func() { _ = ConfigureLogger("info", "json") })

	require.NoError(t, ConfigureLogger("debug", "text"))
	require.Equal(t, log.DebugLevel, log.GetLevel())
	_, isText := log.StandardLogger().Formatter.(*log.TextFormatter)
	require.True(t, isText)

	require.NoError(t, ConfigureLogger("WARN", "json"))
	require.Equal(t, log.WarnLevel, log.GetLevel())

	require.Error(t, ConfigureLogger("loud", "json"))
	require.Error(t, ConfigureLogger("info", "xml"))
}
