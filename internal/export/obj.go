// Package export writes generated terrain to files for inspection in other tools.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Faultbox/terragen/internal/engine/terrain"
)

// ErrEmptyMesh is returned when there is nothing to export.
var ErrEmptyMesh = errors.New("export: mesh has no vertices")

// WriteOBJ writes m as a Wavefront OBJ with positions, UVs and normals.
// Faces reference all three attributes with the same 1-based index.
func WriteOBJ(w io.Writer, m *terrain.Mesh) error {
	if m == nil || len(m.Positions) == 0 {
		return ErrEmptyMesh
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# terragen terrain %dx%d, size %g\n", m.Resolution, m.Resolution, m.Size)
	fmt.Fprintf(bw, "# %d vertices, %d triangles\n", m.VertexCount(), m.TriangleCount())
	fmt.Fprintln(bw, "o terrain")

	for _, p := range m.Positions {
		fmt.Fprintf(bw, "v %g %g %g\n", p[0], p[1], p[2])
	}
	for _, uv := range m.UVs {
		fmt.Fprintf(bw, "vt %g %g\n", uv[0], uv[1])
	}
	for _, n := range m.Normals {
		fmt.Fprintf(bw, "vn %g %g %g\n", n[0], n[1], n[2])
	}
	for t := 0; t+2 < len(m.Indices); t += 3 {
		a, b, c := m.Indices[t]+1, m.Indices[t+1]+1, m.Indices[t+2]+1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}

	return bw.Flush()
}

// SaveOBJ writes m to path, creating parent directories.
func SaveOBJ(path string, m *terrain.Mesh) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteOBJ(f, m); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
