package iou

import (
	"math"
	"testing"
)

const (
	eps = 0.00001
)

func TestPointArithmetic(t *testing.T) {
	p := NewPoint(3, 4)
	q := NewPoint(1, -2)

	if got := p.Add(q); got != (Point{X: 4, Y: 2}) {
		t.Errorf("Expected (4,2), got %v", got)
	}
	if got := p.Sub(q); got != (Point{X: 2, Y: 6}) {
		t.Errorf("Expected (2,6), got %v", got)
	}
	if got := p.Scale(2); got != (Point{X: 6, Y: 8}) {
		t.Errorf("Expected (6,8), got %v", got)
	}
	if got := p.Div(2); got != (Point{X: 1.5, Y: 2}) {
		t.Errorf("Expected (1.5,2), got %v", got)
	}
	if got := p.Dot(q); got != -5 {
		t.Errorf("Expected dot -5, got %f", got)
	}
	if got := p.Cross(q); got != -10 {
		t.Errorf("Expected cross -10, got %f", got)
	}
	if got := p.Norm(); math.Abs(got-5) > eps {
		t.Errorf("Expected norm 5, got %f", got)
	}
	if got := p.NormSquared(); got != 25 {
		t.Errorf("Expected squared norm 25, got %f", got)
	}
}

func TestPointDistance(t *testing.T) {
	p1 := Point{X: 341, Y: 264}
	p2 := Point{X: 421, Y: 427}
	correctAnswer := 181.57367
	answer := p1.Distance(p2)
	if math.Abs(answer-correctAnswer) > eps {
		t.Errorf("Wrong answer: %v, correct answer: %v", answer, correctAnswer)
	}
}

func TestPointEqual(t *testing.T) {
	p := NewPoint(1, 1)
	if !p.Equal(NewPoint(1+1e-7, 1-1e-7)) {
		t.Error("Points within Epsilon should be equal")
	}
	if p.Equal(NewPoint(1+1e-3, 1)) {
		t.Error("Points beyond Epsilon should not be equal")
	}
	if !NewPoint(1e-7, -1e-7).IsZero() {
		t.Error("Near-zero point should be zero")
	}
	if NewPoint(0.1, 0).IsZero() {
		t.Error("Non-zero point should not be zero")
	}
}

func TestPointTheta(t *testing.T) {
	cases := []struct {
		p        Point
		expected float64
	}{
		{Point{X: 1, Y: 0}, 0},
		{Point{X: 1, Y: 1}, math.Pi / 4},
		{Point{X: 0, Y: 1}, math.Pi / 2},
		{Point{X: -1, Y: 0}, math.Pi},
		{Point{X: 0, Y: -1}, 3 * math.Pi / 2},
		{Point{X: 1, Y: -1}, 7 * math.Pi / 4},
	}
	for _, c := range cases {
		if got := c.p.Theta(); math.Abs(got-c.expected) > eps {
			t.Errorf("Theta of %v: expected %f, got %f", c.p, c.expected, got)
		}
	}
}

func TestPointAngle(t *testing.T) {
	a := NewPoint(1, 0)
	b := NewPoint(0, 2)
	if got := a.Angle(b); math.Abs(got-math.Pi/2) > eps {
		t.Errorf("Expected pi/2, got %f", got)
	}
	// Zero vector falls back to 0 instead of dividing by zero
	if got := a.Angle(Point{}); got != 0 {
		t.Errorf("Expected 0 for zero vector, got %f", got)
	}
	if got := (Point{}).Theta(); got != 0 {
		t.Errorf("Expected theta 0 for zero vector, got %f", got)
	}
}

func TestPointNormalized(t *testing.T) {
	p := NewPoint(3, 4).Normalized()
	if math.Abs(p.Norm()-1) > eps {
		t.Errorf("Expected unit length, got %f", p.Norm())
	}
	if got := (Point{}).Normalized(); !got.IsZero() {
		t.Errorf("Expected zero point for zero input, got %v", got)
	}
}
