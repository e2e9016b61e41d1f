// pkg/ui/styles/styles_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Embedded styles load and lookups never fail

package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var semanticStyles = []string{"Header", "Success", "Error", "Warning", "Info", "Muted", "FilePath", "Digest", "Indent"}

func TestStyleRegistry(t *testing.T) {
	for _, name := range semanticStyles {
		_, exists := StyleRegistry[name]
		assert.True(t, exists, "Style %s should exist in registry", name)
	}
}

func TestGetStyle_Unknown(t *testing.T) {
	assert.Equal(t, "plain", GetStyle("DoesNotExist").Render("plain"))
}

func TestRender_KeepsText(t *testing.T) {
	assert.Contains(t, Render("Error", "boom"), "boom")
}

func TestLoadStylesFromData(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, LoadStylesFromData(embeddedStyles))
	})

	assert.Error(t, LoadStylesFromData([]byte("colors: [not, a, map]")))

	require.NoError(t, LoadStylesFromData([]byte(`
colors:
  red: {light: "#ff0000", dark: "#ff0000"}
styles:
  Alert: {bold: true, foreground: red}
`)))
	_, exists := StyleRegistry["Alert"]
	assert.True(t, exists)
}

func TestInitDefaultStyles(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, LoadStylesFromData(embeddedStyles))
	})

	initDefaultStyles()
	for _, name := range semanticStyles {
		assert.Contains(t, StyleRegistry, name)
	}
}
