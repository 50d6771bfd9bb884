package main

import (
	"testing"
)

func TestParseVector(t *testing.T) {
	tests := []struct {
		in   string
		want [2]float64
	}{
		{"1,2", [2]float64{1, 2}},
		{" 3 , -4 ", [2]float64{3, -4}},
		{"(-1,2)", [2]float64{-1, 2}},
		{"1e3,0.5", [2]float64{1000, 0.5}},
		// wrong component count falls back to the zero vector
		{"1,2,3", [2]float64{0, 0}},
		{"7", [2]float64{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := parseVector(tt.in)
			if err != nil {
				t.Fatalf("parseVector(%q): %v", tt.in, err)
			}
			if got := v.Components(); got != tt.want {
				t.Errorf("parseVector(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseVectorErrors(t *testing.T) {
	for _, in := range []string{"", "a,b", "1,,2", "1;2"} {
		if _, err := parseVector(in); err == nil {
			t.Errorf("parseVector(%q) should fail", in)
		}
	}
}

func TestParseMatrix(t *testing.T) {
	m2, err := parseMatrix2("1,2,3,4")
	if err != nil {
		t.Fatalf("parseMatrix2: %v", err)
	}
	if m2[2] != 3 {
		t.Errorf("m2[2] = %v, want 3", m2[2])
	}
	if _, err := parseMatrix2("1,2,3"); err == nil {
		t.Error("parseMatrix2 with 3 values should fail")
	}

	m3, err := parseMatrix3("1,0,0,0,1,0,5,6,1")
	if err != nil {
		t.Fatalf("parseMatrix3: %v", err)
	}
	if m3[6] != 5 || m3[7] != 6 {
		t.Errorf("translation column = %v,%v, want 5,6", m3[6], m3[7])
	}
	if _, err := parseMatrix3("1,2,3,4"); err == nil {
		t.Error("parseMatrix3 with 4 values should fail")
	}
}

func TestParseScalar(t *testing.T) {
	if v, err := parseScalar("(-1.5)"); err != nil || v != -1.5 {
		t.Errorf("parseScalar((-1.5)) = %v, %v", v, err)
	}
	if _, err := parseScalar("x"); err == nil {
		t.Error("parseScalar(x) should fail")
	}
}
