package uvmap

// faceKey sorts a face's indices so the same three coordinates give the
// same key in any order or winding.
func faceKey(f [3]int) [3]int {
	a, b, c := f[0], f[1], f[2]
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return [3]int{a, b, c}
}

// RemoveDegenerateFaces removes faces that repeat an index or have zero area.
// Returns the number of faces removed.
func (l *Layout) RemoveDegenerateFaces() int {
	if len(l.Faces) == 0 {
		return 0
	}

	kept := make([][3]int, 0, len(l.Faces))
	for i, f := range l.Faces {
		if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
			continue
		}
		if l.SignedArea(i) == 0 {
			continue
		}
		kept = append(kept, f)
	}

	removed := len(l.Faces) - len(kept)
	l.Faces = kept
	return removed
}

// DeduplicateFaces removes faces that use the same three coordinates as an
// earlier face, regardless of order. The first occurrence is kept.
// Returns the number of faces removed.
func (l *Layout) DeduplicateFaces() int {
	if len(l.Faces) == 0 {
		return 0
	}

	seen := make(map[[3]int]bool, len(l.Faces))
	kept := make([][3]int, 0, len(l.Faces))
	for _, f := range l.Faces {
		key := faceKey(f)
		if !seen[key] {
			seen[key] = true
			kept = append(kept, f)
		}
	}

	removed := len(l.Faces) - len(kept)
	l.Faces = kept
	return removed
}

// RemoveUnusedCoords drops coordinates no face references and renumbers the
// faces. Returns the number of coordinates removed. It panics if a face
// index is out of range.
func (l *Layout) RemoveUnusedCoords() int {
	if len(l.Coords) == 0 {
		return 0
	}

	used := make([]bool, len(l.Coords))
	for _, f := range l.Faces {
		used[f[0]] = true
		used[f[1]] = true
		used[f[2]] = true
	}

	newIndex := make([]int, len(l.Coords))
	coords := make([][2]float64, 0, len(l.Coords))
	for i, c := range l.Coords {
		if used[i] {
			newIndex[i] = len(coords)
			coords = append(coords, c)
		}
	}
	for i := range l.Faces {
		f := &l.Faces[i]
		f[0], f[1], f[2] = newIndex[f[0]], newIndex[f[1]], newIndex[f[2]]
	}

	removed := len(l.Coords) - len(coords)
	l.Coords = coords
	return removed
}

// Clean removes degenerate and duplicate faces, then the coordinates left
// unused. Returns the number of faces and coordinates removed.
func (l *Layout) Clean() (faces, coords int) {
	faces = l.RemoveDegenerateFaces() + l.DeduplicateFaces()
	coords = l.RemoveUnusedCoords()
	return faces, coords
}
