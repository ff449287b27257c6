package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Paintersrp/cheats/internal/sheet"
)

func TestToasts(t *testing.T) {
	var buf bytes.Buffer
	n := New(&buf)

	n.Success("Copied to Clipboard", `"git" content has been copied`)
	n.Fallback("python", sheet.ReasonSampleData)
	n.Fallback("git", sheet.ReasonNone)

	out := buf.String()
	assert.Contains(t, out, "Copied to Clipboard")
	assert.Contains(t, out, `"git" content has been copied`)
	assert.Contains(t, out, "Using sample data")
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n")))
}
