// Copyright 2022 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"cogentcore.org/orbital/base/iox/tomlx"
	"cogentcore.org/orbital/base/iox/yamlx"
)

// WriteOBJ writes the mesh in the Wavefront OBJ format as one
// object with the given name. Each face references its vertex,
// texture coordinate and normal by the same 1-based index.
func WriteOBJ(w io.Writer, name string, ms *Mesh) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "o %s\n", name)
	nv := ms.NumVertex()
	for i := 0; i < nv; i++ {
		fmt.Fprintf(bw, "v %g %g %g\n", ms.Vertex[i*3], ms.Vertex[i*3+1], ms.Vertex[i*3+2])
	}
	for i := 0; i < nv; i++ {
		fmt.Fprintf(bw, "vt %g %g\n", ms.TexCoord[i*2], ms.TexCoord[i*2+1])
	}
	for i := 0; i < nv; i++ {
		fmt.Fprintf(bw, "vn %g %g %g\n", ms.Normal[i*3], ms.Normal[i*3+1], ms.Normal[i*3+2])
	}
	nt := ms.NumTriangles()
	for t := 0; t < nt; t++ {
		a, b, c := ms.Triangle(t)
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a+1, a+1, a+1, b+1, b+1, b+1, c+1, c+1, c+1)
	}
	return bw.Flush()
}

// Formats are the mesh export formats.
var Formats = []string{"obj", "yaml", "toml"}

// Write writes the mesh in the given format: obj, yaml or toml.
func Write(w io.Writer, format, name string, ms *Mesh) error {
	switch strings.ToLower(format) {
	case "obj":
		return WriteOBJ(w, name, ms)
	case "yaml", "yml":
		return yamlx.Write(ms, w)
	case "toml":
		return tomlx.Write(ms, w)
	}
	return fmt.Errorf("shape.Write: format %q not valid, must be one of %v", format, Formats)
}

// FormatFromFilename returns the export format from the
// extension of the given filename.
func FormatFromFilename(filename string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
}
