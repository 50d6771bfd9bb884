package uvmap

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Options configures Load.
type Options struct {
	Plane    Plane // STL projection plane
	TexCoord int   // glTF TEXCOORD_<n>
	FlipV    bool  // glTF only
}

// Load reads a layout from an OBJ, STL, GLTF or GLB file chosen by extension.
func Load(path string, opts Options) (*Layout, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		return NewOBJLoader().LoadFile(path)
	case ".stl":
		return LoadSTL(path, opts.Plane)
	case ".glb", ".gltf":
		loader := NewGLTFLoader()
		loader.TexCoord = opts.TexCoord
		loader.FlipV = opts.FlipV
		return loader.LoadFile(path)
	default:
		return nil, fmt.Errorf("unsupported format: %s (use .obj, .stl, .glb or .gltf)", ext)
	}
}
