package fonts

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

type FontName string

const (
	HUD      FontName = "hud"
	HUDSmall FontName = "hud-small"
)

var fonts = map[FontName]font.Face{}

// Get returns the loaded face, or nil when the font was never loaded.
// Callers fall back to the engine's debug text in that case.
func (f FontName) Get() font.Face {
	return fonts[f]
}

// LoadFromFile parses a TTF from disk and registers the standard HUD
// sizes. A missing file is not an error; the game runs with fallback
// text.
func LoadFromFile(path string) error {
	ttf, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read font %s: %w", path, err)
	}
	if err := Load(HUD, ttf, 16); err != nil {
		return err
	}
	return Load(HUDSmall, ttf, 10)
}

// Load parses a TTF and registers it under the given name and size.
func Load(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}
