package uvmap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"fortio.org/log"
)

// OBJLoader loads the texture coordinates of Wavefront OBJ files.
type OBJLoader struct {
	// Skipped counts faces from the last Load that had no texture indices.
	Skipped int
}

// NewOBJLoader creates a new OBJ loader.
func NewOBJLoader() *OBJLoader {
	return &OBJLoader{}
}

// LoadFile loads an OBJ file from disk.
func (l *OBJLoader) LoadFile(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer f.Close()

	return l.Load(f, path)
}

// Load parses an OBJ from a reader. Every vt record becomes a coordinate and
// every f record is fan-triangulated over its texture indices.
func (l *OBJLoader) Load(r io.Reader, name string) (*Layout, error) {
	layout := NewLayout(name)
	l.Skipped = 0

	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if len(line) == 0 || line[0] == '#' {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "vt": // Texture coordinate, optional w is ignored
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: invalid texture coord (need u v)", lineNum)
			}
			u, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid u coordinate: %w", lineNum, err)
			}
			v, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid v coordinate: %w", lineNum, err)
			}
			layout.Append(u, v)

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNum)
			}

			var faceVerts []int
			missing := false
			for i := 1; i < len(fields); i++ {
				raw, err := parseFaceTexture(fields[i])
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				if raw == 0 {
					missing = true
					break
				}
				uvIdx := resolveIndex(raw, layout.Len())
				if uvIdx < 0 || uvIdx >= layout.Len() {
					return nil, fmt.Errorf("line %d: texture index %d out of range", lineNum, raw)
				}
				faceVerts = append(faceVerts, uvIdx)
			}

			if missing {
				log.Debugf("%s line %d: face without texture coordinates skipped", name, lineNum)
				l.Skipped++
				continue
			}

			for i := 1; i < len(faceVerts)-1; i++ {
				layout.Faces = append(layout.Faces, [3]int{faceVerts[0], faceVerts[i], faceVerts[i+1]})
			}

		case "o", "g":
			if len(fields) > 1 {
				layout.Name = fields[1]
			}

		default:
			// positions, normals and materials do not affect the layout
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading OBJ: %w", err)
	}

	return layout, nil
}

// parseFaceTexture returns the texture index of a face vertex in format
// v, v/vt, v/vt/vn or v//vn. Returns 0 when no texture index is given.
func parseFaceTexture(s string) (int, error) {
	parts := strings.Split(s, "/")

	if _, err := strconv.Atoi(parts[0]); err != nil {
		return 0, fmt.Errorf("invalid vertex index: %s", parts[0])
	}

	if len(parts) < 2 || parts[1] == "" {
		return 0, nil
	}
	uv, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid texture index: %s", parts[1])
	}
	return uv, nil
}

// resolveIndex converts OBJ 1-indexed (or negative) index to 0-indexed.
// Returns -1 if index was 0 (not specified).
func resolveIndex(idx, count int) int {
	if idx == 0 {
		return -1
	}
	if idx < 0 {
		return count + idx
	}
	return idx - 1
}

// LoadOBJ is a convenience function to load an OBJ file with default settings.
func LoadOBJ(path string) (*Layout, error) {
	return NewOBJLoader().LoadFile(path)
}
