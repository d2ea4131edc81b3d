// Package report renders conversion diagnostics as human-readable text.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/ssargent/fpconv/pkg/codec"
	"github.com/ssargent/fpconv/pkg/converter"
	"github.com/ssargent/fpconv/pkg/format"
)

// Options controls report rendering
type Options struct {
	HumanSizes bool // Append humanized sizes, e.g. "204800 bytes (205 kB)"
	Color      bool // Highlight warnings when the output supports it
}

// Writer renders reports to an io.Writer
type Writer struct {
	w    io.Writer
	opts Options
	warn *color.Color
	ok   *color.Color
}

// NewWriter creates a report writer
func NewWriter(w io.Writer, opts Options) *Writer {
	warn := color.New(color.FgYellow, color.Bold)
	ok := color.New(color.FgGreen)
	if !opts.Color {
		warn.DisableColor()
		ok.DisableColor()
	}
	return &Writer{w: w, opts: opts, warn: warn, ok: ok}
}

func (r *Writer) bytes(n int) string {
	s := fmt.Sprintf("%d bytes", n)
	if r.opts.HumanSizes && n >= 1000 {
		s += fmt.Sprintf(" (%s)", humanize.Bytes(uint64(n)))
	}
	return s
}

// Loaded reports a freshly loaded source database
func (r *Writer) Loaded(path string, f format.Descriptor, size, templates int) {
	fmt.Fprintf(r.w, "Loading %s database from %s\n", f.DisplayName, path)
	fmt.Fprintf(r.w, "File size: %s\n", r.bytes(size))
	fmt.Fprintf(r.w, "Found %s templates\n", humanize.Comma(int64(templates)))
}

// Statistics writes the database statistics block
func (r *Writer) Statistics(s codec.Stats) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, "=== Database Statistics ===")
	fmt.Fprintf(r.w, "Total templates: %d\n", s.Count)
	if s.Count > 0 {
		fmt.Fprintf(r.w, "Average template size: %s\n", r.bytes(s.AvgSize))
		fmt.Fprintf(r.w, "Min template size: %s\n", r.bytes(s.MinSize))
		fmt.Fprintf(r.w, "Max template size: %s\n", r.bytes(s.MaxSize))
		fmt.Fprintf(r.w, "Template IDs: %s\n", formatIDs(s.IDs))
	}
	fmt.Fprintf(r.w, "Total data size: %s\n", r.bytes(s.TotalSize))
}

// Validation writes validation findings, or states that there are none
func (r *Writer) Validation(issues []codec.Issue) {
	fmt.Fprintln(r.w)
	if len(issues) == 0 {
		fmt.Fprintln(r.w, "No validation issues found")
		return
	}
	fmt.Fprintln(r.w, "=== Validation Issues ===")
	for _, issue := range issues {
		fmt.Fprintf(r.w, "Template %d: %s\n", issue.ID, issue)
	}
}

// Saved reports a written target database and any capacity overflow
func (r *Writer) Saved(res converter.Result) {
	fmt.Fprintf(r.w, "Saving %s templates as %s database\n",
		humanize.Comma(int64(res.Templates)), res.Target.DisplayName)
	if res.Encode.Overflowed() {
		r.warn.Fprintf(r.w, "Warning: %d templates exceed %s capacity of %d slots (%d over)\n",
			res.Encode.Slots, res.Target.DisplayName, res.Encode.Capacity, res.Encode.Overflow)
	}
	fmt.Fprintf(r.w, "Database saved to %s\n", res.Path)
	fmt.Fprintf(r.w, "Output size: %s\n", r.bytes(res.Bytes))
}

// Completed writes the final success line
func (r *Writer) Completed() {
	fmt.Fprintln(r.w)
	r.ok.Fprintln(r.w, "Conversion completed successfully!")
}

// Formats writes a table of known database formats
func (r *Writer) Formats(formats []format.Descriptor) error {
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tMODEL\tVENDOR\tSLOT SIZE\tCAPACITY\tDATABASE SIZE")
	for _, f := range formats {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
			f.Name,
			f.DisplayName,
			f.Vendor,
			f.SlotSize,
			humanize.Comma(int64(f.Capacity)),
			humanize.Bytes(uint64(f.TotalSize())),
		)
	}
	return tw.Flush()
}

// formatIDs renders IDs as a bracketed list, e.g. [1, 3, 4]
func formatIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
