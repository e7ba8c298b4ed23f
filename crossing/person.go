package crossing

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	// DefaultYThreshold is the default threshold row (in pixels) near the top of the frame
	DefaultYThreshold = 4
)

// Person is a single tracked object moving through the frame.
// It is created when the external tracker first sees a person, gets an update on every
// subsequent frame and is finalized (entered or exited) once the person disappears.
//
// Person is not safe for concurrent use: it is expected to be driven by a single per-frame loop.
type Person struct {
	id         uuid.UUID
	yThreshold int
	state      State
	history    []Observation
	value      int
}

// NewPersonDefault creates person with DefaultYThreshold
func NewPersonDefault(coordinate Coordinate) *Person {
	return NewPerson(coordinate, DefaultYThreshold)
}

// NewPerson creates person first seen at the given coordinate.
// Initial state is StateExiting when coordinate is on the threshold row or below it and
// StateEntering otherwise.
func NewPerson(coordinate Coordinate, yThreshold int) *Person {
	person := Person{
		id:         uuid.New(),
		yThreshold: yThreshold,
		state:      StateEntering,
		history:    make([]Observation, 0, 16),
		value:      0,
	}
	if coordinate.belowOrOn(yThreshold) {
		person.state = StateExiting
	}
	person.history = append(person.history, Seen(coordinate))
	return &person
}

// NewPersonFromObservation creates person from the first observation provided by tracker.
// Returns ErrUnseenConstruction if observation is not visible.
func NewPersonFromObservation(obs Observation, yThreshold int) (*Person, error) {
	coordinate, ok := obs.Coordinate()
	if !ok {
		return nil, ErrUnseenConstruction
	}
	return NewPerson(coordinate, yThreshold), nil
}

// GetID returns person's identifier
func (person *Person) GetID() uuid.UUID {
	return person.id
}

// SetID sets person's identifier
func (person *Person) SetID(newID uuid.UUID) {
	person.id = newID
}

// YThreshold returns threshold row which has been used for person's classification
func (person *Person) YThreshold() int {
	return person.yThreshold
}

// State returns current state
func (person *Person) State() State {
	return person.state
}

// Value returns contribution to the entry/exit counter: +1, -1 or 0.
// It is meaningful only after person has been finalized.
func (person *Person) Value() int {
	return person.value
}

// Finalized returns true if person has entered or exited already
func (person *Person) Finalized() bool {
	return person.state.IsTerminal()
}

// Update registers observation for the current frame.
//
// Visible observation is appended to history. Unseen observation finalizes person
// based on the previous last seen coordinate and then the unseen marker is appended to history.
// Once person is finalized any further update is ignored and ErrAlreadyFinalized is returned.
func (person *Person) Update(obs Observation) error {
	if person.Finalized() {
		return errors.Wrapf(ErrAlreadyFinalized, "Can't update person with id %s (state: %s)", person.id, person.state)
	}
	if !obs.Visible() {
		err := person.finalize()
		if err != nil {
			return errors.Wrapf(err, "Can't finalize person with id %s", person.id)
		}
	}
	person.history = append(person.history, obs)
	return nil
}

// Move is shorthand for Update(Seen(coordinate))
func (person *Person) Move(coordinate Coordinate) error {
	return person.Update(Seen(coordinate))
}

// Disappear is shorthand for Update(Unseen())
func (person *Person) Disappear() error {
	return person.Update(Unseen())
}

// finalize moves person into terminal state based on where it has been seen last time:
//
//	entering + last seen on/below threshold -> entered, +1
//	entering + last seen above threshold    -> exited,   0
//	exiting  + last seen on/below threshold -> entered,  0
//	exiting  + last seen above threshold    -> exited,  -1
func (person *Person) finalize() error {
	seen := person.LastCoordinate()
	progressed := seen.belowOrOn(person.yThreshold)
	switch person.state {
	case StateEntering:
		if progressed {
			person.state, person.value = StateEntered, 1
		} else {
			person.state, person.value = StateExited, 0
		}
	case StateExiting:
		if progressed {
			person.state, person.value = StateEntered, 0
		} else {
			person.state, person.value = StateExited, -1
		}
	default:
		return errors.Wrapf(ErrUnknownState, "state %d", person.state)
	}
	return nil
}

// LastSeen returns the most recent observation. It is Unseen() once person is finalized
func (person *Person) LastSeen() Observation {
	return person.history[len(person.history)-1]
}

// LastCoordinate returns the most recent visible coordinate
func (person *Person) LastCoordinate() Coordinate {
	for i := len(person.history) - 1; i >= 0; i-- {
		if coordinate, ok := person.history[i].Coordinate(); ok {
			return coordinate
		}
	}
	// History always starts with visible observation
	return Coordinate{}
}

// History returns copy of all observations in order they have been registered
func (person *Person) History() []Observation {
	history := make([]Observation, len(person.history))
	copy(history, person.history)
	return history
}

// GetTrack returns visible coordinates only
func (person *Person) GetTrack() []Coordinate {
	track := make([]Coordinate, 0, len(person.history))
	for _, obs := range person.history {
		if coordinate, ok := obs.Coordinate(); ok {
			track = append(track, coordinate)
		}
	}
	return track
}
