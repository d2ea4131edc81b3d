// Package converter runs a template database conversion: load a source
// database, inspect it, and save it in a target layout.
package converter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ssargent/fpconv/pkg/codec"
	"github.com/ssargent/fpconv/pkg/database"
	"github.com/ssargent/fpconv/pkg/format"
)

// ErrNotLoaded is returned when saving before a source database was loaded
var ErrNotLoaded = errors.New("no database loaded")

// Converter holds the templates of one loaded database
type Converter struct {
	logger    *slog.Logger
	source    format.Descriptor
	templates []codec.Template
	loaded    bool
	size      int
}

// Option configures a Converter
type Option func(*Converter)

// WithLogger sets the logger used for progress messages
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a converter with nothing loaded
func New(opts ...Option) *Converter {
	c := &Converter{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load reads the database at path and decodes it using the named format.
// The format is resolved before the file is touched.
func (c *Converter) Load(path, formatName string) error {
	f, err := format.Lookup(formatName)
	if err != nil {
		return err
	}

	data, err := database.ReadFile(path)
	if err != nil {
		return err
	}

	c.source = f
	c.size = len(data)
	c.templates = codec.Decode(data, f)
	c.loaded = true

	c.logger.Info("loaded database",
		slog.String("path", path),
		slog.String("format", f.DisplayName),
		slog.Int("bytes", len(data)),
		slog.Int("templates", len(c.templates)),
	)
	if rem := len(data) % f.SlotSize; rem != 0 {
		c.logger.Warn("ignoring trailing partial slot",
			slog.String("path", path),
			slog.Int("bytes", rem),
		)
	}

	return nil
}

// Loaded reports whether a database has been loaded
func (c *Converter) Loaded() bool {
	return c.loaded
}

// Source returns the format of the loaded database
func (c *Converter) Source() format.Descriptor {
	return c.source
}

// SourceSize returns the byte length of the loaded database file
func (c *Converter) SourceSize() int {
	return c.size
}

// Templates returns a copy of the loaded template slice. Template data is shared.
func (c *Converter) Templates() []codec.Template {
	out := make([]codec.Template, len(c.templates))
	copy(out, c.templates)
	return out
}

// Statistics summarizes the loaded templates
func (c *Converter) Statistics() codec.Stats {
	return codec.Statistics(c.templates)
}

// Validate reports degenerate templates in the loaded database
func (c *Converter) Validate() []codec.Issue {
	return codec.Validate(c.templates)
}

// Result describes a saved database
type Result struct {
	Path      string
	Target    format.Descriptor
	Templates int
	Bytes     int
	Encode    codec.EncodeResult
}

// Save encodes the loaded templates in the named format and writes them to
// path. Writing more templates than the target holds is not an error; check
// Result.Encode.Overflowed.
func (c *Converter) Save(path, formatName string) (Result, error) {
	f, err := format.Lookup(formatName)
	if err != nil {
		return Result{}, err
	}
	if !c.loaded {
		return Result{}, ErrNotLoaded
	}

	out, enc := codec.Encode(c.templates, f)
	if enc.Overflowed() {
		c.logger.Warn("templates exceed target capacity",
			slog.String("format", f.DisplayName),
			slog.Int("templates", enc.Slots),
			slog.Int("capacity", enc.Capacity),
			slog.Int("overflow", enc.Overflow),
		)
	}

	if err := database.WriteFile(path, out); err != nil {
		return Result{}, err
	}

	c.logger.Info("saved database",
		slog.String("path", path),
		slog.String("format", f.DisplayName),
		slog.Int("bytes", len(out)),
		slog.Int("templates", len(c.templates)),
	)

	return Result{
		Path:      path,
		Target:    f,
		Templates: len(c.templates),
		Bytes:     len(out),
		Encode:    enc,
	}, nil
}

// Request describes a full conversion run
type Request struct {
	Input  string
	Output string
	From   string
	To     string
}

// Convert loads req.Input and saves it to req.Output in one call.
// Cancellation is checked between stages.
func (c *Converter) Convert(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := c.Load(req.Input, req.From); err != nil {
		return Result{}, fmt.Errorf("failed to load database: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	res, err := c.Save(req.Output, req.To)
	if err != nil {
		return Result{}, fmt.Errorf("failed to save database: %w", err)
	}
	return res, nil
}
