// Package di provides dependency injection container
package di

import (
	"io"
	"log/slog"
	"os"

	"github.com/ssargent/fpconv/pkg/config"
	"github.com/ssargent/fpconv/pkg/converter"
	"github.com/ssargent/fpconv/pkg/report"
)

// Container holds all the dependencies for the application
type Container struct {
	config *config.Config
	stdout io.Writer
	stderr io.Writer
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return &Container{
		config: config.DefaultConfig(),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// Config returns the active configuration
func (c *Container) Config() *config.Config {
	return c.config
}

// SetConfig replaces the active configuration
func (c *Container) SetConfig(cfg *config.Config) {
	if cfg != nil {
		c.config = cfg
	}
}

// SetOutput allows overriding the report and log writers (for testing)
func (c *Container) SetOutput(stdout, stderr io.Writer) {
	c.stdout = stdout
	c.stderr = stderr
}

// Stdout returns the writer for human-readable reports
func (c *Container) Stdout() io.Writer {
	return c.stdout
}

// Logger returns a logger writing to stderr at the configured level
func (c *Container) Logger() *slog.Logger {
	level, err := config.ParseLevel(c.config.Logging.Level)
	if err != nil {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: level}))
}

// NewConverter returns a converter wired to the container's logger
func (c *Container) NewConverter() *converter.Converter {
	return converter.New(converter.WithLogger(c.Logger()))
}

// NewReportWriter returns a report writer for stdout using the report config
func (c *Container) NewReportWriter() *report.Writer {
	return report.NewWriter(c.stdout, report.Options{
		HumanSizes: c.config.Report.HumanSizes,
		Color:      c.config.Report.Color,
	})
}
