package uvmap

import "testing"

func TestFaceKey(t *testing.T) {
	tests := []struct {
		name string
		face [3]int
		want [3]int
	}{
		{"already sorted", [3]int{0, 1, 2}, [3]int{0, 1, 2}},
		{"reverse order", [3]int{2, 1, 0}, [3]int{0, 1, 2}},
		{"middle first", [3]int{1, 0, 2}, [3]int{0, 1, 2}},
		{"rotated", [3]int{1, 2, 0}, [3]int{0, 1, 2}},
		{"with gaps", [3]int{5, 10, 3}, [3]int{3, 5, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := faceKey(tt.face); got != tt.want {
				t.Errorf("faceKey(%v) = %v, want %v", tt.face, got, tt.want)
			}
		})
	}
}

func TestLayoutRemoveDegenerateFaces(t *testing.T) {
	l := unitQuad()
	l.Append(2, 0) // collinear with 0 and 1
	l.Faces = append(l.Faces, [3]int{0, 0, 1}, [3]int{0, 1, 4})

	if removed := l.RemoveDegenerateFaces(); removed != 2 {
		t.Errorf("RemoveDegenerateFaces() = %d, want 2", removed)
	}
	if l.TriangleCount() != 2 {
		t.Errorf("TriangleCount() = %d, want 2", l.TriangleCount())
	}
}

func TestLayoutDeduplicateFaces(t *testing.T) {
	l := unitQuad()
	l.Faces = append(l.Faces,
		[3]int{0, 1, 2}, // exact duplicate
		[3]int{2, 1, 0}, // same coordinates, opposite winding
		[3]int{1, 2, 3}, // unique
	)

	if removed := l.DeduplicateFaces(); removed != 2 {
		t.Errorf("DeduplicateFaces() = %d, want 2", removed)
	}
	if l.TriangleCount() != 3 {
		t.Errorf("TriangleCount() = %d, want 3", l.TriangleCount())
	}
	// first occurrence wins, so the kept face is still counter-clockwise
	if l.FlippedFaces() != 0 {
		t.Errorf("FlippedFaces() = %d, want 0", l.FlippedFaces())
	}
}

func TestLayoutRemoveUnusedCoords(t *testing.T) {
	l := NewLayout("sparse")
	l.Append(9, 9) // unused
	l.Append(0, 0)
	l.Append(1, 0)
	l.Append(9, 9) // unused
	l.Append(0, 1)
	l.Faces = append(l.Faces, [3]int{1, 2, 4})

	if removed := l.RemoveUnusedCoords(); removed != 2 {
		t.Errorf("RemoveUnusedCoords() = %d, want 2", removed)
	}
	if got := l.Faces[0]; got != [3]int{0, 1, 2} {
		t.Errorf("Faces[0] = %v, want [0 1 2]", got)
	}
	if l.Area() != 0.5 {
		t.Errorf("Area() = %v, want 0.5", l.Area())
	}
}

func TestLayoutClean(t *testing.T) {
	l := unitQuad()
	l.Append(5, 5)
	l.Faces = append(l.Faces, [3]int{0, 2, 3}, [3]int{4, 4, 0})

	faces, coords := l.Clean()
	if faces != 2 || coords != 1 {
		t.Errorf("Clean() = %d, %d, want 2, 1", faces, coords)
	}
	if l.Len() != 4 || l.Area() != 1 {
		t.Errorf("Len, Area = %d, %v, want 4, 1", l.Len(), l.Area())
	}

	if faces, coords := NewLayout("empty").Clean(); faces != 0 || coords != 0 {
		t.Errorf("empty Clean() = %d, %d", faces, coords)
	}
}

func TestLayoutInvalidFaceIndexPanics(t *testing.T) {
	tests := []struct {
		name string
		call func(l *Layout)
	}{
		{"SignedArea", func(l *Layout) { l.SignedArea(2) }},
		{"Sample", func(l *Layout) { l.Sample(2, 0.5, 0.5) }},
		{"RemoveUnusedCoords", func(l *Layout) { l.RemoveUnusedCoords() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := unitQuad()
			l.Faces = append(l.Faces, [3]int{0, 1, 7})
			defer func() {
				if recover() == nil {
					t.Errorf("%s did not panic on face index 7 of 4 coordinates", tt.name)
				}
			}()
			tt.call(l)
		})
	}
}
