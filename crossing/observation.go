package crossing

// Observation is what the external tracker reports for a person on a single frame:
// either a visible coordinate or the fact that the person is not visible anymore.
// Zero value is the "unseen" observation.
type Observation struct {
	coordinate Coordinate
	visible    bool
}

// Seen creates observation for a person visible at the given coordinate
func Seen(c Coordinate) Observation {
	return Observation{
		coordinate: c,
		visible:    true,
	}
}

// Unseen creates observation for a person which is not visible in the frame
func Unseen() Observation {
	return Observation{}
}

// Visible returns true if person has been seen on the frame
func (obs Observation) Visible() bool {
	return obs.visible
}

// Coordinate returns observed coordinate. Second value is false for unseen observation
func (obs Observation) Coordinate() (Coordinate, bool) {
	return obs.coordinate, obs.visible
}

func (obs Observation) String() string {
	if !obs.visible {
		return "unseen"
	}
	return obs.coordinate.String()
}
