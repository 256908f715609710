package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLevel(t *testing.T) {
	require.NoError(t, Init("debug", "", false))
	assert.Equal(t, logrus.DebugLevel, Get().GetLevel())

	require.NoError(t, Init("nonsense", "", false))
	assert.Equal(t, logrus.WarnLevel, Get().GetLevel())
}

func TestInitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "born.log")
	require.NoError(t, Init("info", path, false))

	Infof("probe %s", "done")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "probe done")
}

func TestLevelFilters(t *testing.T) {
	require.NoError(t, Init("warn", "", false))
	var buf bytes.Buffer
	SetOutput(&buf)

	Debugf("hidden")
	Warnf("shown %d", 1)
	WithField("handle", 7).Error("bad handle")
	Errorf("init failed: %s", "no config")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown 1")
	assert.Contains(t, buf.String(), "handle=7")
	assert.Contains(t, buf.String(), "init failed: no config")
}
