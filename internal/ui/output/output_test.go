package output_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/onto/internal/ui/output"
)

func TestColorProfile(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile())
	assert.Equal(t, termenv.Ascii, output.ColorProfileANSI())

	t.Setenv("NO_COLOR", "")
	assert.Equal(t, termenv.ANSI, output.ColorProfileANSI())
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	out := output.New(&buf)
	require.NotNil(t, out)

	_, _ = out.WriteString("test")
	assert.Equal(t, "test", buf.String())
	assert.NotNil(t, output.New(nil))
}

func TestIsInteractive(t *testing.T) {
	assert.False(t, output.IsInteractive(strings.NewReader("1\n")))

	f, err := os.Create(filepath.Join(t.TempDir(), "stdin"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, output.IsInteractive(f))
}
