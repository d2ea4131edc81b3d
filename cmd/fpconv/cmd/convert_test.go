package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/fpconv/pkg/database"
	"github.com/ssargent/fpconv/pkg/di"
	"github.com/ssargent/fpconv/pkg/format"
)

func newTestContainer(t *testing.T) (*di.Container, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	c := di.NewContainer()
	c.SetOutput(&stdout, &stderr)
	c.Config().Report.Color = false
	return c, &stdout, &stderr
}

func writeSlots(t *testing.T, path string, slots ...[]byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, bytes.Join(slots, nil), 0600))
}

func TestRunConvert(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "as608.bin")
	writeSlots(t, input,
		bytes.Repeat([]byte{0x01}, 512),
		bytes.Repeat([]byte{0x02}, 512),
		bytes.Repeat([]byte{0x03}, 512),
	)

	t.Run("as608 to gt511c3", func(t *testing.T) {
		c, stdout, _ := newTestContainer(t)
		output := filepath.Join(tmpDir, "gt.bin")

		err := runConvert(c, convertOptions{Input: input, Output: output, From: "as608", To: "gt511c3"})
		require.NoError(t, err)

		data, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Len(t, data, 200*1024)
		assert.Equal(t, bytes.Repeat([]byte{0x02}, 512), data[1024:1536])

		out := stdout.String()
		assert.Contains(t, out, "Found 3 templates")
		assert.Contains(t, out, "Output size: 204800 bytes")
		assert.Contains(t, out, "Conversion completed successfully!")
		assert.NotContains(t, out, "Database Statistics")
		assert.NotContains(t, out, "validation issues")
	})

	t.Run("stats and validate", func(t *testing.T) {
		c, stdout, _ := newTestContainer(t)
		output := filepath.Join(tmpDir, "r307.bin")

		err := runConvert(c, convertOptions{
			Input: input, Output: output, From: "as608", To: "r307", Stats: true, Validate: true,
		})
		require.NoError(t, err)

		out := stdout.String()
		assert.Contains(t, out, "=== Database Statistics ===")
		assert.Contains(t, out, "Template IDs: [1, 2, 3]")
		assert.Contains(t, out, "No validation issues found")

		// statistics and validation are reported before the save
		assert.Less(t, bytes.Index(stdout.Bytes(), []byte("No validation issues")),
			bytes.Index(stdout.Bytes(), []byte("Saving 3 templates")))
	})

	t.Run("missing input", func(t *testing.T) {
		c, _, _ := newTestContainer(t)
		output := filepath.Join(tmpDir, "never.bin")

		err := runConvert(c, convertOptions{
			Input: filepath.Join(tmpDir, "missing.bin"), Output: output, From: "as608", To: "r307",
		})
		assert.ErrorIs(t, err, database.ErrNotFound)
		assert.NoFileExists(t, output)
	})

	t.Run("unknown format", func(t *testing.T) {
		c, _, _ := newTestContainer(t)

		err := runConvert(c, convertOptions{Input: input, Output: filepath.Join(tmpDir, "x.bin"), From: "fprint9000", To: "r307"})
		assert.ErrorIs(t, err, format.ErrUnknownFormat)
	})

	t.Run("unwritable output", func(t *testing.T) {
		c, _, _ := newTestContainer(t)
		output := filepath.Join(input, "nested.bin")

		err := runConvert(c, convertOptions{Input: input, Output: output, From: "as608", To: "r307"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), output)
	})

	t.Run("over capacity warns", func(t *testing.T) {
		big := filepath.Join(tmpDir, "r307-big.bin")
		slots := make([][]byte, 163)
		for i := range slots {
			slots[i] = bytes.Repeat([]byte{0x5A}, 512)
		}
		writeSlots(t, big, slots...)

		c, stdout, stderr := newTestContainer(t)
		err := runConvert(c, convertOptions{Input: big, Output: filepath.Join(tmpDir, "as608-big.bin"), From: "r307", To: "as608"})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Warning: 163 templates exceed AS608 capacity of 162 slots (1 over)")
		assert.Contains(t, stderr.String(), "templates exceed target capacity")
	})
}

func TestRunConvert_ValidationIssues(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "erased.bin")
	writeSlots(t, input, bytes.Repeat([]byte{0xFF}, 512), make([]byte, 512), bytes.Repeat([]byte{0x10}, 512))

	c, stdout, _ := newTestContainer(t)
	err := runConvert(c, convertOptions{
		Input: input, Output: filepath.Join(tmpDir, "out.bin"), From: "as608", To: "as608", Validate: true,
	})
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "=== Validation Issues ===")
	assert.Contains(t, out, "Template 1: Erased template (all 0xFF)")
	assert.NotContains(t, out, "Template 3:")
}

func TestResolveFormat(t *testing.T) {
	testCases := []struct {
		name     string
		value    string
		fallback string
		want     string
		wantErr  string
	}{
		{name: "flag value", value: "r307", want: "r307"},
		{name: "upper case", value: "GT511C3", want: "gt511c3"},
		{name: "fallback", fallback: "as608", want: "as608"},
		{name: "flag wins over fallback", value: "r307", fallback: "as608", want: "r307"},
		{name: "missing", wantErr: `required flag(s) "from" not set`},
		{name: "unknown", value: "fprint9000", wantErr: "must be one of as608, gt511c3, r307"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolveFormat("from", tc.value, tc.fallback)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
