// pkg/style/styles_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test that styles pass content through and row indicators
// stay distinct

package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStylesPreserveContent(t *testing.T) {
	renders := map[string]func(...string) string{
		"subtitle": SubtitleStyle.Render,
		"normal":   NormalStyle.Render,
		"muted":    MutedStyle.Render,
		"error":    ErrorStyle.Render,
		"path":     PathStyle.Render,
		"conflict": ConflictStyle.Render,
	}

	for name, render := range renders {
		t.Run(name, func(t *testing.T) {
			assert.Contains(t, render("node_modules/@acme/core"), "node_modules/@acme/core")
		})
	}
}

func TestIndicatorsAreDistinct(t *testing.T) {
	indicators := []string{
		SuccessIndicator,
		ErrorIndicator,
		WarningIndicator,
		ConflictIndicator,
		InfoIndicator,
		PendingIndicator,
		LinkIndicator,
	}

	seen := make(map[string]bool)
	for _, indicator := range indicators {
		assert.NotEmpty(t, indicator)
		assert.False(t, seen[indicator], "indicator %q repeats", indicator)
		seen[indicator] = true
	}
}
