package crossing

import (
	"fmt"
	"image"
)

// Coordinate is a pixel position in a video frame
type Coordinate struct {
	X int
	Y int
}

func NewCoordinate(x, y int) Coordinate {
	return Coordinate{
		X: x,
		Y: y,
	}
}

// NewCoordinateFrom converts detector output (e.g. center of image.Rectangle) into Coordinate
func NewCoordinateFrom(point image.Point) Coordinate {
	return Coordinate{
		X: point.X,
		Y: point.Y,
	}
}

// Point returns coordinate as image.Point
func (c Coordinate) Point() image.Point {
	return image.Point{X: c.X, Y: c.Y}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// belowOrOn reports whether coordinate lies on the threshold row or further down the frame
func (c Coordinate) belowOrOn(yThreshold int) bool {
	return c.Y >= yThreshold
}
