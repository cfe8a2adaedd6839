package ui

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

func TestRenderSummary(t *testing.T) {
	t.Run("fields render collapsed with value", func(t *testing.T) {
		fields := []Field{{Label: "Sort", Value: "Newest"}}
		output := stripANSI(RenderSummary("Listing", fields))

		assert.Contains(t, output, "│ ◇ Sort · Newest")
	})

	t.Run("title renders after top border", func(t *testing.T) {
		output := stripANSI(RenderSummary("Listing products", nil))

		assert.Contains(t, output, "┌ Listing products")
		assert.Contains(t, output, "└")
	})

	t.Run("empty field produces no output line", func(t *testing.T) {
		fields := []Field{
			{Label: "Sort", Value: "Newest"},
			{Label: "Source"},
		}
		output := stripANSI(RenderSummary("Title", fields))

		assert.NotContains(t, output, "Source")
	})
}

func TestRenderDone(t *testing.T) {
	t.Run("shows title location and checks", func(t *testing.T) {
		output := stripANSI(RenderDone("Exported 20 products", "/tmp/out.yaml", []string{"sorted by Newest"}))

		assert.Contains(t, output, "┌ ◆ Exported 20 products")
		assert.Contains(t, output, "│ /tmp/out.yaml")
		assert.Contains(t, output, "│ ✓ sorted by Newest")
	})

	t.Run("location is optional", func(t *testing.T) {
		output := stripANSI(RenderDone("Done", "", nil))

		assert.Equal(t, "┌ ◆ Done\n└\n", output)
	})
}
