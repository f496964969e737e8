package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/basicfont"
)

func TestUnloadedFontFallsBack(t *testing.T) {
	assert.Equal(t, basicfont.Face7x13, FontName("missing").Get())
}

func TestLoadFontFileErrors(t *testing.T) {
	dir := t.TempDir()

	err := LoadFontFile(HUD, filepath.Join(dir, "nope.ttf"), 12)
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.ttf")
	assert.NoError(t, os.WriteFile(bad, []byte("not a font"), 0o644))
	assert.Error(t, LoadFontFile(HUD, bad, 12))

	assert.Equal(t, basicfont.Face7x13, HUD.Get())
}
