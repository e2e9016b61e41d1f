// pkg/ui/format_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Output format names parse and auto-detection falls back to text

package ui_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/futils/pkg/errors"
	"github.com/arthur-debert/futils/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		format   ui.Format
		expected string
	}{
		{ui.FormatAuto, "auto"},
		{ui.FormatTerminal, "term"},
		{ui.FormatText, "text"},
		{ui.FormatJSON, "json"},
		{ui.FormatYAML, "yaml"},
		{ui.Format(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected ui.Format
	}{
		{"", ui.FormatAuto},
		{"auto", ui.FormatAuto},
		{"term", ui.FormatTerminal},
		{"Terminal", ui.FormatTerminal},
		{"text", ui.FormatText},
		{"plain", ui.FormatText},
		{"JSON", ui.FormatJSON},
		{"yml", ui.FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := ui.ParseFormat("xml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestIsStructured(t *testing.T) {
	assert.True(t, ui.FormatJSON.IsStructured())
	assert.True(t, ui.FormatYAML.IsStructured())
	assert.False(t, ui.FormatText.IsStructured())
	assert.False(t, ui.FormatTerminal.IsStructured())
}

func TestResolve(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, ui.FormatText, ui.Resolve(ui.FormatAuto, &buf), "a buffer is not a terminal")
	assert.Equal(t, ui.FormatJSON, ui.Resolve(ui.FormatJSON, &buf))

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, ui.FormatText, ui.DetectFormat(&buf))
}
