// pkg/ui/confirmations/console_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Console answers map to approvals, defaults apply on empty input

package confirmations_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arthur-debert/futils/pkg/ui/confirmations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleDialog_Confirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		def      bool
		expected bool
	}{
		{"yes", "y\n", false, true},
		{"yes_long", "YES\n", false, true},
		{"no", "n\n", true, false},
		{"empty_uses_default_no", "\n", false, false},
		{"empty_uses_default_yes", "\n", true, true},
		{"no_trailing_newline", "y", false, true},
		{"anything_else", "maybe\n", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			dialog := confirmations.NewConsoleDialog(strings.NewReader(tt.input), &out)

			approved, err := dialog.Confirm(confirmations.Request{Title: "Delete files", Default: tt.def})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, approved)
		})
	}
}

func TestConsoleDialog_Output(t *testing.T) {
	var out bytes.Buffer
	dialog := confirmations.NewConsoleDialog(strings.NewReader("y\n"), &out)

	_, err := dialog.Confirm(confirmations.Request{
		Title:       "Move files",
		Description: "Identical files are removed from the backup",
		Items:       []string{"a", "b", "c", "d", "e"},
	})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Move files")
	assert.Contains(t, text, "a, b, c and 2 more")
	assert.Contains(t, text, "Identical files are removed from the backup")
	assert.Contains(t, text, "[y/N]")
}

func TestConsoleDialog_ClosedInput(t *testing.T) {
	dialog := confirmations.NewConsoleDialog(strings.NewReader(""), &bytes.Buffer{})
	_, err := dialog.Confirm(confirmations.Request{Title: "x"})
	assert.Error(t, err)
}

func TestAutoConfirm(t *testing.T) {
	approved, err := confirmations.AutoConfirm{}.Confirm(confirmations.Request{})
	require.NoError(t, err)
	assert.True(t, approved)
}
