package uvmap

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Plane selects the two axes an STL mesh is projected onto.
type Plane int

const (
	PlaneXY Plane = iota // top view, drops z
	PlaneXZ              // front view, drops y
	PlaneYZ              // side view, drops x
)

// ParsePlane parses "xy", "xz" or "yz".
func ParsePlane(s string) (Plane, error) {
	switch strings.ToLower(s) {
	case "xy":
		return PlaneXY, nil
	case "xz":
		return PlaneXZ, nil
	case "yz":
		return PlaneYZ, nil
	}
	return PlaneXY, fmt.Errorf("unknown plane %q (want xy, xz or yz)", s)
}

func (p Plane) String() string {
	switch p {
	case PlaneXZ:
		return "xz"
	case PlaneYZ:
		return "yz"
	default:
		return "xy"
	}
}

func (p Plane) project(pos [3]float64) (float64, float64) {
	switch p {
	case PlaneXZ:
		return pos[0], pos[2]
	case PlaneYZ:
		return pos[1], pos[2]
	default:
		return pos[0], pos[1]
	}
}

// STLLoader loads STL (stereolithography) files in both ASCII and binary
// formats as a planar projection.
type STLLoader struct {
	Plane Plane
}

// NewSTLLoader creates a new STL loader projecting onto the XY plane.
func NewSTLLoader() *STLLoader {
	return &STLLoader{
		Plane: PlaneXY,
	}
}

// LoadFile loads an STL file from disk.
func (l *STLLoader) LoadFile(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read STL file: %w", err)
	}

	return l.LoadBytes(data, path)
}

// LoadBytes parses STL from a byte slice.
func (l *STLLoader) LoadBytes(data []byte, name string) (*Layout, error) {
	if isBinarySTL(data) {
		return l.loadBinary(data, name)
	}
	return l.loadASCII(data, name)
}

// Load parses STL from a reader.
// Note: This reads the entire content into memory to detect format.
func (l *STLLoader) Load(r io.Reader, name string) (*Layout, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read STL data: %w", err)
	}
	return l.LoadBytes(data, name)
}

// isBinarySTL detects if the data is binary STL format.
// Binary STL starts with 80-byte header, then 4-byte triangle count.
// ASCII STL starts with "solid".
func isBinarySTL(data []byte) bool {
	if len(data) < 84 {
		return false
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if bytes.HasPrefix(trimmed, []byte("solid")) {
		// "solid" may also open a binary header; trust the size
		triCount := binary.LittleEndian.Uint32(data[80:84])
		return uint64(len(data)) == 84+uint64(triCount)*50
	}

	return true
}

// vertexIndex maps 3D positions to layout indices so shared corners are
// stored once.
type vertexIndex struct {
	layout *Layout
	plane  Plane
	seen   map[[3]float64]int
}

func (vi *vertexIndex) add(pos [3]float64) int {
	if idx, ok := vi.seen[pos]; ok {
		return idx
	}
	idx := vi.layout.Append(vi.plane.project(pos))
	vi.seen[pos] = idx
	return idx
}

// loadBinary parses binary STL format.
func (l *STLLoader) loadBinary(data []byte, name string) (*Layout, error) {
	if len(data) < 84 {
		return nil, fmt.Errorf("binary STL too short: %d bytes", len(data))
	}

	triCount := binary.LittleEndian.Uint32(data[80:84])

	expectedSize := 84 + uint64(triCount)*50
	if uint64(len(data)) < expectedSize {
		return nil, fmt.Errorf("binary STL truncated: expected %d bytes, got %d", expectedSize, len(data))
	}

	layout := NewLayout(name)
	vi := &vertexIndex{layout: layout, plane: l.Plane, seen: make(map[[3]float64]int)}

	offset := 84
	for i := uint32(0); i < triCount; i++ {
		// Skip the facet normal
		offset += 12

		var face [3]int
		for v := 0; v < 3; v++ {
			pos := [3]float64{
				float64(readFloat32LE(data[offset:])),
				float64(readFloat32LE(data[offset+4:])),
				float64(readFloat32LE(data[offset+8:])),
			}
			offset += 12
			face[v] = vi.add(pos)
		}

		// Skip 2-byte attribute byte count
		offset += 2

		layout.Faces = append(layout.Faces, face)
	}

	return layout, nil
}

// readFloat32LE reads a little-endian float32 from a byte slice.
func readFloat32LE(data []byte) float32 {
	bits := binary.LittleEndian.Uint32(data)
	return math.Float32frombits(bits)
}

// loadASCII parses ASCII STL format.
func (l *STLLoader) loadASCII(data []byte, name string) (*Layout, error) {
	layout := NewLayout(name)
	vi := &vertexIndex{layout: layout, plane: l.Plane, seen: make(map[[3]float64]int)}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNum := 0

	var faceVerts []int
	inFacet := false
	inLoop := false

	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "solid":
			if len(fields) > 1 {
				layout.Name = fields[1]
			}

		case "facet":
			inFacet = true
			faceVerts = nil

		case "outer":
			if len(fields) >= 2 && strings.ToLower(fields[1]) == "loop" {
				inLoop = true
			}

		case "vertex":
			if !inFacet || !inLoop {
				return nil, fmt.Errorf("line %d: vertex outside facet/loop", lineNum)
			}
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs x y z", lineNum)
			}

			var pos [3]float64
			for axis := range 3 {
				f, err := strconv.ParseFloat(fields[axis+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid vertex %c: %w", lineNum, "xyz"[axis], err)
				}
				pos[axis] = f
			}
			faceVerts = append(faceVerts, vi.add(pos))

		case "endloop":
			inLoop = false

		case "endfacet":
			if len(faceVerts) >= 3 {
				layout.Faces = append(layout.Faces, [3]int{faceVerts[0], faceVerts[1], faceVerts[2]})
			}
			inFacet = false
			faceVerts = nil

		default:
			// endsolid and unknown keywords
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return layout, nil
}

// LoadSTL is a convenience function to load an STL file projected onto the
// given plane.
func LoadSTL(path string, plane Plane) (*Layout, error) {
	loader := NewSTLLoader()
	loader.Plane = plane
	return loader.LoadFile(path)
}
