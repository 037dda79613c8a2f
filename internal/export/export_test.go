package export

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/tiff"

	"github.com/Faultbox/terragen/internal/engine/terrain"
)

func quadMesh(t *testing.T, amplitude float64) *terrain.Mesh {
	t.Helper()
	cfg, err := terrain.NewGenerationConfig(2, 2, 1, 1, 1, amplitude)
	if err != nil {
		t.Fatalf("NewGenerationConfig failed: %v", err)
	}
	m, err := terrain.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return m
}

func TestWriteOBJ(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOBJ(&buf, quadMesh(t, 0)); err != nil {
		t.Fatalf("WriteOBJ failed: %v", err)
	}

	counts := make(map[string]int)
	var faces []string
	for _, line := range strings.Split(buf.String(), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		counts[fields[0]]++
		switch fields[0] {
		case "f":
			faces = append(faces, line)
		case "vn":
			if fields[2] != "1" {
				t.Errorf("expected upward normal, got %q", line)
			}
		}
	}

	if counts["v"] != 4 || counts["vt"] != 4 || counts["vn"] != 4 {
		t.Errorf("expected 4 v/vt/vn lines, got %d/%d/%d", counts["v"], counts["vt"], counts["vn"])
	}
	if counts["f"] != 2 {
		t.Fatalf("expected 2 faces, got %d", counts["f"])
	}
	if faces[0] != "f 1/1/1 3/3/3 4/4/4" {
		t.Errorf("unexpected first face %q", faces[0])
	}
}

func TestWriteOBJEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOBJ(&buf, &terrain.Mesh{}); !errors.Is(err, ErrEmptyMesh) {
		t.Errorf("expected ErrEmptyMesh, got %v", err)
	}
}

func TestSaveOBJ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "terrain.obj")
	if err := SaveOBJ(path, quadMesh(t, 0)); err != nil {
		t.Fatalf("SaveOBJ failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read OBJ: %v", err)
	}
	if !strings.HasPrefix(string(data), "# terragen terrain 2x2") {
		t.Errorf("unexpected OBJ header: %q", strings.SplitN(string(data), "\n", 2)[0])
	}
}

func TestHeightmapImage(t *testing.T) {
	m := &terrain.Mesh{
		Positions:  [][3]float32{{0, -2, 0}, {1, 0, 0}, {0, 1, 1}, {1, 2, 1}},
		Resolution: 2,
		Size:       2,
		Bounds:     terrain.Bounds{Min: [3]float32{0, -2, 0}, Max: [3]float32{1, 2, 1}},
	}

	img, err := HeightmapImage(m)
	if err != nil {
		t.Fatalf("HeightmapImage failed: %v", err)
	}

	tests := []struct {
		x, z int
		want uint16
	}{
		{0, 0, 0},
		{1, 0, 0x8000},
		{1, 1, 0xffff},
	}
	for _, tt := range tests {
		if got := img.Gray16At(tt.x, tt.z).Y; got != tt.want {
			t.Errorf("pixel (%d,%d) = %#x, want %#x", tt.x, tt.z, got, tt.want)
		}
	}
}

func TestHeightmapImageFlat(t *testing.T) {
	img, err := HeightmapImage(quadMesh(t, 0))
	if err != nil {
		t.Fatalf("HeightmapImage failed: %v", err)
	}
	for z := range 2 {
		for x := range 2 {
			if v := img.Gray16At(x, z).Y; v != 0 {
				t.Errorf("flat mesh pixel (%d,%d) = %d, want 0", x, z, v)
			}
		}
	}
}

func TestSaveHeightmapPNG(t *testing.T) {
	cfg := terrain.DefaultConfig()
	cfg.Resolution = 32
	m, err := terrain.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "heightmap.png")
	if err := SaveHeightmapPNG(path, m); err != nil {
		t.Fatalf("SaveHeightmapPNG failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open PNG: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Errorf("expected 32x32 image, got %v", b)
	}
}

func TestSaveHeightmap(t *testing.T) {
	m := quadMesh(t, 4)
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		wantErr error
	}{
		{"png", "h.png", nil},
		{"tiff", "h.tiff", nil},
		{"tif upper case", "h.TIF", nil},
		{"unknown", "h.jpg", ErrUnknownFormat},
		{"no extension", "heightmap", ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SaveHeightmap(filepath.Join(dir, tt.file), m)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("SaveHeightmap(%q) error = %v, want %v", tt.file, err, tt.wantErr)
			}
		})
	}
}

func TestSaveHeightmapTIFF(t *testing.T) {
	m := &terrain.Mesh{
		Positions:  [][3]float32{{0, 0, 0}, {1, 1, 0}, {0, 1, 1}, {1, 0, 1}},
		Resolution: 2,
		Size:       2,
		Bounds:     terrain.Bounds{Max: [3]float32{1, 1, 1}},
	}

	path := filepath.Join(t.TempDir(), "heightmap.tiff")
	if err := SaveHeightmapTIFF(path, m); err != nil {
		t.Fatalf("SaveHeightmapTIFF failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open TIFF: %v", err)
	}
	defer f.Close()

	img, err := tiff.Decode(f)
	if err != nil {
		t.Fatalf("failed to decode TIFF: %v", err)
	}

	gray, ok := img.(*image.Gray16)
	if !ok {
		t.Fatalf("expected *image.Gray16, got %T", img)
	}
	if gray.Gray16At(1, 0).Y != 0xffff || gray.Gray16At(1, 1).Y != 0 {
		t.Errorf("unexpected pixels %v %v", gray.Gray16At(1, 0), gray.Gray16At(1, 1))
	}
}
