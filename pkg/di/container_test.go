package di

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/fpconv/pkg/config"
)

func TestContainer(t *testing.T) {
	c := NewContainer()
	require.NotNil(t, c.Config())
	assert.Equal(t, "warn", c.Config().Logging.Level)

	var stdout, stderr bytes.Buffer
	c.SetOutput(&stdout, &stderr)

	cfg := config.DefaultConfig()
	cfg.Logging.Level = "info"
	c.SetConfig(cfg)
	c.SetConfig(nil)
	assert.Same(t, cfg, c.Config())

	c.Logger().Info("hello")
	assert.Contains(t, stderr.String(), "hello")

	c.NewReportWriter().Completed()
	assert.Contains(t, stdout.String(), "Conversion completed successfully!")

	assert.NotNil(t, c.NewConverter())
}

func TestContainer_LoggerLevel(t *testing.T) {
	c := NewContainer()
	var stderr bytes.Buffer
	c.SetOutput(&bytes.Buffer{}, &stderr)

	c.Logger().Info("hidden")
	c.Logger().Warn("shown")
	assert.NotContains(t, stderr.String(), "hidden")
	assert.Contains(t, stderr.String(), "shown")
}
