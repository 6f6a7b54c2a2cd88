package timetable

import (
	"errors"
	"fmt"
	"strings"

	"github.com/limaJavier/sessiontable/pkg/model"
	"go.uber.org/zap"
)

var (
	ErrInvalidIndex     = errors.New("invalid index")
	ErrModuleNotFound   = errors.New("module not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrLecturerNotFound = errors.New("lecturer not found")
	ErrInvalidDuration  = errors.New("end hour must be after start hour")
	ErrRoomTooSmall     = errors.New("room too small for group")
)

// ConflictError is returned when the store rejects a session; Conflicts holds the store's descriptions
type ConflictError struct {
	Conflicts []string
}

func (err *ConflictError) Error() string {
	return fmt.Sprintf("session clashes with the timetable: %v", strings.Join(err.Conflicts, "; "))
}

// SessionRequest describes a session by record keys, as entered by an administrator
type SessionRequest struct {
	ModuleCode string
	Day        string
	StartHour  int
	EndHour    int
	RoomId     string
	LecturerId string
	GroupId    string
}

// Admin applies single-session edits to a store, resolving keys against input
type Admin struct {
	store  *Store
	input  model.Input
	logger *zap.Logger
}

func NewAdmin(store *Store, input model.Input, logger *zap.Logger) *Admin {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Admin{
		store:  store,
		input:  input,
		logger: logger,
	}
}

// Add resolves and validates the request, then hands the session to the store for conflict checking
func (admin *Admin) Add(request SessionRequest) error {
	session, err := admin.buildSession(request)
	if err != nil {
		admin.logger.Info("Session rejected", zap.String("module", request.ModuleCode), zap.Error(err))
		return err
	}

	if conflicts := admin.store.Add(session); len(conflicts) > 0 {
		admin.logger.Info("Session rejected", zap.String("module", request.ModuleCode), zap.Strings("conflicts", conflicts))
		return &ConflictError{Conflicts: conflicts}
	}

	admin.logger.Info("Session added", zap.Stringer("session", session))
	return nil
}

func (admin *Admin) RemoveByIndex(index int) error {
	if index < 0 || index >= admin.store.Len() {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	removed := admin.store.removeAt(index)
	admin.logger.Info("Session removed", zap.Int("index", index), zap.Stringer("session", removed))
	return nil
}

// UpdateByIndex replaces the session at index. If the replacement is rejected the original is put back
// at the same position and the rejection is returned.
func (admin *Admin) UpdateByIndex(index int, request SessionRequest) error {
	if index < 0 || index >= admin.store.Len() {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}

	old := admin.store.removeAt(index)
	if err := admin.Add(request); err != nil {
		admin.store.insertAt(index, old)
		return err
	}

	// Add appends, move the replacement into the old position
	replacement := admin.store.removeAt(admin.store.Len() - 1)
	admin.store.insertAt(index, replacement)
	return nil
}

func (admin *Admin) buildSession(request SessionRequest) (model.Session, error) {
	//** Resolve keys
	module, ok := admin.input.FindModule(request.ModuleCode)
	if !ok {
		return model.Session{}, fmt.Errorf("%w: %q", ErrModuleNotFound, request.ModuleCode)
	}
	room, ok := admin.input.FindRoom(request.RoomId)
	if !ok {
		return model.Session{}, fmt.Errorf("%w: %q", ErrRoomNotFound, request.RoomId)
	}
	lecturer, ok := admin.input.FindLecturer(request.LecturerId)
	if !ok {
		return model.Session{}, fmt.Errorf("%w: %q", ErrLecturerNotFound, request.LecturerId)
	}

	//** Validate
	duration := request.EndHour - request.StartHour
	if duration <= 0 {
		return model.Session{}, fmt.Errorf("%w: %d-%d", ErrInvalidDuration, request.StartHour, request.EndHour)
	}
	cohort := model.ParseCohort(request.GroupId)
	if room.Capacity < cohort.RequiredCapacity() {
		return model.Session{}, fmt.Errorf("%w: room %v holds %d, group %v needs %d", ErrRoomTooSmall, room.Id, room.Capacity, cohort, cohort.RequiredCapacity())
	}
	day, err := model.ParseDay(request.Day)
	if err != nil {
		return model.Session{}, err
	}
	slot, err := model.NewTimeslot(day, request.StartHour, duration)
	if err != nil {
		return model.Session{}, err
	}

	return model.Session{
		Module:   module,
		Lecturer: lecturer,
		Room:     room,
		Timeslot: slot,
		Cohort:   cohort,
	}, nil
}
