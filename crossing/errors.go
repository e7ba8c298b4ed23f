package crossing

import "github.com/pkg/errors"

var (
	// ErrUnseenConstruction is returned when a person is about to be created from "unseen" observation
	ErrUnseenConstruction = errors.New("can't create person from unseen observation")
	// ErrAlreadyFinalized is returned when a person which is already entered or exited gets an update.
	// The update is ignored: state, value and history stay as they were
	ErrAlreadyFinalized = errors.New("person is already finalized")
	// ErrUnknownState is returned when state of a person is outside of the known set
	ErrUnknownState = errors.New("unknown person state")
)
