package pkg

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/hansbonini/agbtools/pkg/common"
	"gopkg.in/yaml.v3"
)

// PaletteManifest is a human-editable palette description. Colors are hex
// strings in palette index order; use_alpha selects the NTR transparency
// bit when the manifest is packed to binary.
type PaletteManifest struct {
	Name     string   `yaml:"name"`
	UseAlpha bool     `yaml:"use_alpha"`
	Colors   []string `yaml:"colors"`
}

// LoadPaletteManifest parses a YAML palette manifest
func LoadPaletteManifest(reader io.Reader) (*PaletteManifest, error) {
	var m PaletteManifest
	if err := yaml.NewDecoder(reader).Decode(&m); err != nil {
		return nil, common.FormatError(common.ErrFailedToParseManifest, err)
	}
	return &m, nil
}

// Write serializes the manifest as YAML
func (m *PaletteManifest) Write(writer io.Writer) error {
	enc := yaml.NewEncoder(writer)
	if err := enc.Encode(m); err != nil {
		return err
	}
	return enc.Close()
}

// Palette converts the manifest's hex colors into an ordered palette
func (m *PaletteManifest) Palette() (color.Palette, error) {
	pal := make(color.Palette, 0, len(m.Colors))
	for i, s := range m.Colors {
		c, err := ParseHexColor(s)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i, err)
		}
		pal = append(pal, c)
	}
	return pal, nil
}

// ParseHexColor parses a "#RRGGBB" or "#RRGGBBAA" color string
func ParseHexColor(s string) (color.NRGBA, error) {
	c := color.NRGBA{A: 255}
	hex := strings.TrimPrefix(s, "#")

	var err error
	switch len(hex) {
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &c.R, &c.G, &c.B)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		return c, common.FormatErrorString(common.ErrInvalidColorValue, "%q must be #RRGGBB or #RRGGBBAA", s)
	}
	if err != nil {
		return c, common.FormatErrorString(common.ErrInvalidColorValue, "%q: %v", s, err)
	}
	return c, nil
}

// FormatHexColor renders a color as a manifest hex string, including the
// alpha byte only when it is not fully opaque
func FormatHexColor(c color.RGBA) string {
	if c.A != 255 {
		return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
