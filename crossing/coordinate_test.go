package crossing

import (
	"image"
	"testing"
)

func TestNewCoordinateFrom(t *testing.T) {
	point := image.Point{X: 341, Y: 264}
	correctAnswer := Coordinate{X: 341, Y: 264}
	answer := NewCoordinateFrom(point)
	if answer != correctAnswer {
		t.Errorf("Wrong answer: %v, correct answer: %v", answer, correctAnswer)
	}
	if answer.Point() != point {
		t.Errorf("Wrong point: %v, correct point: %v", answer.Point(), point)
	}
}

func TestCoordinateBelowOrOn(t *testing.T) {
	if !NewCoordinate(3, 4).belowOrOn(4) {
		t.Error("Coordinate on threshold row should be treated as below")
	}
	if NewCoordinate(3, 3).belowOrOn(4) {
		t.Error("Coordinate above threshold row should not be treated as below")
	}
}

func TestObservation(t *testing.T) {
	obs := Seen(NewCoordinate(0, 0))
	if !obs.Visible() {
		t.Error("Seen observation should be visible even at (0,0)")
	}
	if obs.String() != "(0,0)" {
		t.Errorf("Expected (0,0), got %s", obs.String())
	}

	unseen := Unseen()
	if unseen.Visible() {
		t.Error("Unseen observation should not be visible")
	}
	if _, ok := unseen.Coordinate(); ok {
		t.Error("Unseen observation should not carry coordinate")
	}
	if unseen != (Observation{}) {
		t.Error("Zero observation should be unseen")
	}
	if unseen.String() != "unseen" {
		t.Errorf("Expected unseen, got %s", unseen.String())
	}
}
