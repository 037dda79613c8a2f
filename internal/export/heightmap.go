package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/tiff"

	"github.com/Faultbox/terragen/internal/engine/terrain"
)

// ErrUnknownFormat is returned for heightmap paths with an unsupported extension.
var ErrUnknownFormat = errors.New("export: unknown heightmap format")

// HeightmapImage renders one grayscale pixel per vertex, row z at image row z.
// Heights are normalized to the mesh bounds; a flat mesh renders black.
func HeightmapImage(m *terrain.Mesh) (*image.Gray16, error) {
	if m == nil || len(m.Positions) == 0 {
		return nil, ErrEmptyMesh
	}

	res := m.Resolution
	img := image.NewGray16(image.Rect(0, 0, res, res))

	lo, hi := m.Bounds.Min[1], m.Bounds.Max[1]
	span := hi - lo

	for z := range res {
		for x := range res {
			var v uint16
			if span > 0 {
				h := (m.Positions[m.Index(x, z)][1] - lo) / span
				v = uint16(h*0xffff + 0.5)
			}
			img.SetGray16(x, z, color.Gray16{Y: v})
		}
	}
	return img, nil
}

// SaveHeightmap writes the heightmap of m to path, choosing PNG or TIFF by extension.
// Both keep the full 16 bits per pixel.
func SaveHeightmap(path string, m *terrain.Mesh) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return SaveHeightmapPNG(path, m)
	case ".tif", ".tiff":
		return SaveHeightmapTIFF(path, m)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// SaveHeightmapPNG writes the heightmap of m to path as PNG.
func SaveHeightmapPNG(path string, m *terrain.Mesh) error {
	return saveImage(path, m, png.Encode)
}

// SaveHeightmapTIFF writes the heightmap of m to path as deflate-compressed TIFF.
func SaveHeightmapTIFF(path string, m *terrain.Mesh) error {
	return saveImage(path, m, func(w io.Writer, img image.Image) error {
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	})
}

func saveImage(path string, m *terrain.Mesh, encode func(io.Writer, image.Image) error) error {
	img, err := HeightmapImage(m)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}
