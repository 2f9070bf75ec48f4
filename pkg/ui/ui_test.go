package ui_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/arthur-debert/scrub/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatAuto, &buf)
	require.NoError(t, err)
	assert.False(t, r.Styled())

	r.Header([]string{"/tmp/a.txt", "/tmp/b.txt"})
	r.Deleted("/tmp/a.txt")
	r.Skipped("/tmp/b.txt")
	r.Failed("/tmp/c.txt", errors.New("remove /tmp/c.txt: permission denied"))
	r.WouldDelete("/tmp/d.txt")
	r.Aborted()

	expected := "Files marked for deletion:\n" +
		"/tmp/a.txt\n" +
		"/tmp/b.txt\n" +
		"Deleted: /tmp/a.txt\n" +
		"Skipped (not found): /tmp/b.txt\n" +
		"Failed to delete /tmp/c.txt: remove /tmp/c.txt: permission denied\n" +
		"Would delete: /tmp/d.txt\n" +
		"Aborted by user.\n"
	assert.Equal(t, expected, buf.String())
}

func TestTextRendererEmptyHeader(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	r.Header(nil)
	assert.Equal(t, "Files marked for deletion:\n", buf.String())
}

func TestTerminalRendererAddsStyling(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatTerminal, &buf)
	require.NoError(t, err)
	assert.True(t, r.Styled())

	r.Failed("/tmp/c.txt", errors.New("permission denied"))

	output := buf.String()
	assert.Contains(t, output, "Failed to delete /tmp/c.txt: permission denied")
	assert.Contains(t, output, "\x1b[")
}

func TestTerminalRendererKeepsBasicPaletteWhenUndetected(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatTerminal, &buf)
	require.NoError(t, err)

	r.Deleted("/tmp/a.txt")

	output := buf.String()
	assert.Contains(t, output, "\x1b[")
	assert.NotContains(t, output, "38;5;")
	assert.NotContains(t, output, "38;2;")
}

func TestUnknownFormat(t *testing.T) {
	_, err := ui.NewRenderer(ui.Format(42), &bytes.Buffer{})
	assert.Error(t, err)
}
