package uvmap

import (
	"encoding/binary"
	"fmt"
	"math"
	"path/filepath"

	"fortio.org/log"
	"github.com/qmuntal/gltf"
)

// GLTFLoader loads texture coordinates from GLTF/GLB files.
type GLTFLoader struct {
	// TexCoord selects the TEXCOORD_<n> attribute.
	TexCoord int
	// FlipV maps v to 1-v (glTF puts v=0 at the top of the image).
	FlipV bool
}

// NewGLTFLoader creates a new GLTF loader reading TEXCOORD_0 unflipped.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{}
}

// LoadGLTF loads a GLTF or GLB file with default options.
func LoadGLTF(path string) (*Layout, error) {
	return NewGLTFLoader().LoadFile(path)
}

// LoadFile opens a GLTF or GLB file and returns its texture layout.
func (l *GLTFLoader) LoadFile(path string) (*Layout, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return l.LoadDocument(doc, filepath.Base(path))
}

// LoadDocument collects the texture coordinates of every triangle primitive in
// doc. Primitives without the selected attribute are skipped.
func (l *GLTFLoader) LoadDocument(doc *gltf.Document, name string) (*Layout, error) {
	layout := NewLayout(name)
	attr := fmt.Sprintf("TEXCOORD_%d", l.TexCoord)

	for mi, m := range doc.Meshes {
		for pi, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				log.Debugf("%s mesh %d primitive %d: mode %v skipped", name, mi, pi, prim.Mode)
				continue
			}

			uvIdx, ok := prim.Attributes[attr]
			if !ok {
				log.Debugf("%s mesh %d primitive %d: no %s", name, mi, pi, attr)
				continue
			}

			uvs, err := readVec2Accessor(doc, uvIdx)
			if err != nil {
				return nil, fmt.Errorf("mesh %d primitive %d: read %s: %w", mi, pi, attr, err)
			}

			base := layout.Len()
			for _, uv := range uvs {
				layout.Append(uv[0], uv[1])
			}

			if prim.Indices != nil {
				indices, err := readIndices(doc, *prim.Indices)
				if err != nil {
					return nil, fmt.Errorf("mesh %d primitive %d: read indices: %w", mi, pi, err)
				}
				for i := 0; i+2 < len(indices); i += 3 {
					face := [3]int{base + indices[i], base + indices[i+1], base + indices[i+2]}
					for _, idx := range face {
						if idx >= layout.Len() {
							return nil, fmt.Errorf("mesh %d primitive %d: index %d out of range", mi, pi, idx-base)
						}
					}
					layout.Faces = append(layout.Faces, face)
				}
			} else {
				for i := 0; i+2 < len(uvs); i += 3 {
					layout.Faces = append(layout.Faces, [3]int{base + i, base + i + 1, base + i + 2})
				}
			}
		}
	}

	if l.FlipV {
		flip := FlipV()
		layout.Transform(&flip)
	}

	return layout, nil
}

// readVec2Accessor reads VEC2 data from a GLTF accessor. Normalized unsigned
// byte and short components are mapped to [0, 1].
func readVec2Accessor(doc *gltf.Document, accessorIdx int) ([][2]float64, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec2 {
		return nil, fmt.Errorf("expected VEC2, got %v", accessor.Type)
	}

	var size int
	var read func(b []byte) float64
	switch accessor.ComponentType {
	case gltf.ComponentFloat:
		size = 4
		read = func(b []byte) float64 {
			return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
		}
	case gltf.ComponentUbyte:
		size = 1
		read = func(b []byte) float64 { return float64(b[0]) / math.MaxUint8 }
	case gltf.ComponentUshort:
		size = 2
		read = func(b []byte) float64 {
			return float64(binary.LittleEndian.Uint16(b)) / math.MaxUint16
		}
	default:
		return nil, fmt.Errorf("unsupported VEC2 component type %v", accessor.ComponentType)
	}

	data, stride, err := accessorBytes(doc, accessor, 2*size)
	if err != nil {
		return nil, err
	}

	result := make([][2]float64, accessor.Count)
	for i := range accessor.Count {
		offset := i * stride
		result[i] = [2]float64{read(data[offset:]), read(data[offset+size:])}
	}
	return result, nil
}

// readIndices reads index data from a GLTF accessor.
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expected SCALAR indices, got %v", accessor.Type)
	}

	var size int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		size = 1
	case gltf.ComponentUshort:
		size = 2
	case gltf.ComponentUint:
		size = 4
	default:
		return nil, fmt.Errorf("unexpected index type: %v", accessor.ComponentType)
	}

	data, stride, err := accessorBytes(doc, accessor, size)
	if err != nil {
		return nil, err
	}

	result := make([]int, accessor.Count)
	for i := range accessor.Count {
		b := data[i*stride:]
		switch size {
		case 1:
			result[i] = int(b[0])
		case 2:
			result[i] = int(binary.LittleEndian.Uint16(b))
		case 4:
			result[i] = int(binary.LittleEndian.Uint32(b))
		}
	}
	return result, nil
}

// accessorBytes returns the buffer bytes an accessor starts at and its element
// stride, checking that count elements fit.
func accessorBytes(doc *gltf.Document, accessor *gltf.Accessor, elemSize int) ([]byte, int, error) {
	if accessor.BufferView == nil {
		return nil, 0, fmt.Errorf("accessor has no buffer view")
	}
	if *accessor.BufferView >= len(doc.BufferViews) {
		return nil, 0, fmt.Errorf("buffer view %d out of range", *accessor.BufferView)
	}
	bufferView := doc.BufferViews[*accessor.BufferView]
	if bufferView.Buffer >= len(doc.Buffers) {
		return nil, 0, fmt.Errorf("buffer %d out of range", bufferView.Buffer)
	}
	buffer := doc.Buffers[bufferView.Buffer]

	// gltf.Open resolves both GLB chunks and external URIs into Data
	if buffer.Data == nil {
		return nil, 0, fmt.Errorf("buffer has no data")
	}

	stride := bufferView.ByteStride
	if stride == 0 {
		stride = elemSize
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	if accessor.Count == 0 {
		return nil, stride, nil
	}
	end := start + (accessor.Count-1)*stride + elemSize
	if start < 0 || end > len(buffer.Data) {
		return nil, 0, fmt.Errorf("accessor reads bytes %d..%d of a %d byte buffer", start, end, len(buffer.Data))
	}
	return buffer.Data[start:end], stride, nil
}
