package uvmap

import (
	"bytes"
	"encoding/binary"
	"testing"
)

const twoFacetSTL = `solid cube
  facet normal 0 0 -1
    outer loop
      vertex 0 0 0
      vertex 1 0 2
      vertex 1 1 4
    endloop
  endfacet
  facet normal 0 0 -1
    outer loop
      vertex 0 0 0
      vertex 1 1 4
      vertex 0 1 6
    endloop
  endfacet
endsolid cube`

func TestSTLLoaderASCII(t *testing.T) {
	loader := NewSTLLoader()
	layout, err := loader.Load(bytes.NewReader([]byte(twoFacetSTL)), "test.stl")
	if err != nil {
		t.Fatalf("Failed to load ASCII STL: %v", err)
	}

	if layout.Name != "cube" {
		t.Errorf("Name = %q, want %q", layout.Name, "cube")
	}
	if layout.TriangleCount() != 2 {
		t.Errorf("TriangleCount = %d, want 2", layout.TriangleCount())
	}
	// Should have 4 unique vertices (square)
	if layout.Len() != 4 {
		t.Errorf("Len = %d, want 4 (deduplicated)", layout.Len())
	}
	if layout.Area() != 1 {
		t.Errorf("Area = %v, want 1 on the xy plane", layout.Area())
	}
}

func TestSTLPlanes(t *testing.T) {
	tests := []struct {
		plane Plane
		want  [2]float64 // projection of vertex (1, 1, 4)
	}{
		{PlaneXY, [2]float64{1, 1}},
		{PlaneXZ, [2]float64{1, 4}},
		{PlaneYZ, [2]float64{1, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.plane.String(), func(t *testing.T) {
			loader := NewSTLLoader()
			loader.Plane = tt.plane
			layout, err := loader.LoadBytes([]byte(twoFacetSTL), "test.stl")
			if err != nil {
				t.Fatalf("Failed to load: %v", err)
			}
			if got := layout.Coords[2]; got != tt.want {
				t.Errorf("Coords[2] = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParsePlane(t *testing.T) {
	tests := []struct {
		in   string
		want Plane
	}{
		{"xy", PlaneXY},
		{"XZ", PlaneXZ},
		{"yz", PlaneYZ},
	}

	for _, tt := range tests {
		got, err := ParsePlane(tt.in)
		if err != nil {
			t.Errorf("ParsePlane(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParsePlane(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParsePlane("zz"); err == nil {
		t.Error("ParsePlane(zz) should fail")
	}
}

func binarySTL(tris [][3][3]float32) []byte {
	var buf bytes.Buffer

	// 80-byte header
	header := make([]byte, 80)
	copy(header, []byte("Binary STL test"))
	buf.Write(header)

	binary.Write(&buf, binary.LittleEndian, uint32(len(tris)))
	for _, tri := range tris {
		// Normal: 0, 0, 1
		binary.Write(&buf, binary.LittleEndian, [3]float32{0, 0, 1})
		for _, v := range tri {
			binary.Write(&buf, binary.LittleEndian, v)
		}
		// Attribute byte count
		binary.Write(&buf, binary.LittleEndian, uint16(0))
	}
	return buf.Bytes()
}

func TestSTLLoaderBinary(t *testing.T) {
	data := binarySTL([][3][3]float32{
		{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		{{1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
	})

	layout, err := NewSTLLoader().LoadBytes(data, "test.stl")
	if err != nil {
		t.Fatalf("Failed to load binary STL: %v", err)
	}

	if layout.TriangleCount() != 2 {
		t.Errorf("TriangleCount = %d, want 2", layout.TriangleCount())
	}
	// 2 triangles = 6 vertices, but 2 are shared, so 4 unique
	if layout.Len() != 4 {
		t.Errorf("Len = %d, want 4", layout.Len())
	}
	if layout.FlippedFaces() != 0 {
		t.Errorf("FlippedFaces = %d, want 0", layout.FlippedFaces())
	}
}

func TestSTLBinaryTruncated(t *testing.T) {
	data := binarySTL([][3][3]float32{{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}})
	// claim two triangles but only carry one
	binary.LittleEndian.PutUint32(data[80:84], 2)
	if _, err := NewSTLLoader().loadBinary(data, "short.stl"); err == nil {
		t.Error("expected truncation error")
	}
}

func TestSTLDetection(t *testing.T) {
	// ASCII should not be detected as binary
	ascii := []byte("solid test\nfacet normal 0 0 1\n")
	if isBinarySTL(ascii) {
		t.Error("ASCII STL detected as binary")
	}

	// Binary with matching size should be detected
	if !isBinarySTL(binarySTL(nil)) {
		t.Error("Binary STL not detected")
	}

	// Binary whose header starts with "solid"
	data := binarySTL([][3][3]float32{{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}})
	copy(data, []byte("solid but binary"))
	if !isBinarySTL(data) {
		t.Error("Binary STL with solid header not detected")
	}
}

func TestSTLVertexOutsideLoop(t *testing.T) {
	data := "solid bad\nvertex 0 0 0\nendsolid bad\n"
	if _, err := NewSTLLoader().LoadBytes([]byte(data), "bad.stl"); err == nil {
		t.Error("expected an error for a vertex outside facet/loop")
	}
}
