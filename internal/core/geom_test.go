package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectClip(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		expected Rect
		empty    bool
	}{
		{"inside", NewRect(2, 2, 3, 3), NewRect(2, 2, 3, 3), false},
		{"negative origin", NewRect(-4, -2, 10, 5), NewRect(0, 0, 6, 3), false},
		{"overhang right bottom", NewRect(8, 8, 10, 10), NewRect(8, 8, 2, 2), false},
		{"fully outside", NewRect(20, 0, 5, 5), Rect{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.r.Clip(10, 10)
			if got.Empty() != tc.empty {
				t.Fatalf("Clip() empty = %v, expected %v (%+v)", got.Empty(), tc.empty, got)
			}
			if !tc.empty && got != tc.expected {
				t.Errorf("Clip() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}
