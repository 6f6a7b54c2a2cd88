package timetable

import (
	"testing"

	"github.com/limaJavier/sessiontable/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminWithSessions(t *testing.T) (*Admin, *Store, []model.Session) {
	t.Helper()
	sessions := []model.Session{
		newSession(t, programming, smith, hall, model.Monday, 9, model.Everyone()),
		newSession(t, mathematics, jones, theatre, model.Monday, 10, model.Everyone()),
		newSession(t, databases, jones, computingLab, model.Tuesday, 11, model.Group("G1")),
	}
	store := NewStore()
	store.Load(sessions)
	return NewAdmin(store, testInput(), nil), store, sessions
}

func TestAdminAdd(t *testing.T) {
	t.Run("Valid session is appended", func(t *testing.T) {
		admin, store, _ := adminWithSessions(t)

		err := admin.Add(SessionRequest{ModuleCode: "CS201", Day: "wed", StartHour: 9, EndHour: 11, RoomId: "R1", LecturerId: "L2", GroupId: "ALL"})

		require.NoError(t, err)
		require.Equal(t, 4, store.Len())
		added, _ := store.At(3)
		assert.Equal(t, "WED 9:00 to 11:00", added.Timeslot.String())
		assert.Equal(t, hall, added.Room)
		assert.True(t, added.Cohort.IsEveryone())
	})

	t.Run("Unresolved keys leave the store untouched", func(t *testing.T) {
		admin, store, sessions := adminWithSessions(t)

		err := admin.Add(SessionRequest{ModuleCode: "XX000", Day: "MON", StartHour: 14, EndHour: 15, RoomId: "R1", LecturerId: "L1"})
		assert.ErrorIs(t, err, ErrModuleNotFound)

		err = admin.Add(SessionRequest{ModuleCode: "CS101", Day: "MON", StartHour: 14, EndHour: 15, RoomId: "R9", LecturerId: "L1"})
		assert.ErrorIs(t, err, ErrRoomNotFound)

		err = admin.Add(SessionRequest{ModuleCode: "CS101", Day: "MON", StartHour: 14, EndHour: 15, RoomId: "R1", LecturerId: "L9"})
		assert.ErrorIs(t, err, ErrLecturerNotFound)

		assert.Equal(t, sessions, store.Sessions())
	})

	t.Run("Validation failures", func(t *testing.T) {
		admin, store, _ := adminWithSessions(t)

		err := admin.Add(SessionRequest{ModuleCode: "CS101", Day: "MON", StartHour: 14, EndHour: 14, RoomId: "R1", LecturerId: "L1"})
		assert.ErrorIs(t, err, ErrInvalidDuration)

		err = admin.Add(SessionRequest{ModuleCode: "CS101", Day: "MON", StartHour: 14, EndHour: 15, RoomId: "R3", LecturerId: "L1", GroupId: "ALL"})
		assert.ErrorIs(t, err, ErrRoomTooSmall)

		err = admin.Add(SessionRequest{ModuleCode: "CS101", Day: "SUN", StartHour: 14, EndHour: 15, RoomId: "R1", LecturerId: "L1"})
		assert.Error(t, err)

		assert.Equal(t, 3, store.Len())
	})

	t.Run("Group session fits a small room", func(t *testing.T) {
		admin, store, _ := adminWithSessions(t)

		err := admin.Add(SessionRequest{ModuleCode: "CS101", Day: "THU", StartHour: 14, EndHour: 15, RoomId: "R3", LecturerId: "L1", GroupId: "G2"})

		assert.NoError(t, err)
		assert.Equal(t, 4, store.Len())
	})

	t.Run("Clash is reported with its descriptions", func(t *testing.T) {
		admin, store, _ := adminWithSessions(t)

		err := admin.Add(SessionRequest{ModuleCode: "CS201", Day: "MON", StartHour: 9, EndHour: 10, RoomId: "R1", LecturerId: "L2"})

		var conflictErr *ConflictError
		require.ErrorAs(t, err, &conflictErr)
		require.Len(t, conflictErr.Conflicts, 1)
		assert.Contains(t, conflictErr.Conflicts[0], "ROOM conflict with CS101")
		assert.Equal(t, 3, store.Len())
	})
}

func TestAdminRemoveByIndex(t *testing.T) {
	admin, store, sessions := adminWithSessions(t)

	assert.ErrorIs(t, admin.RemoveByIndex(-1), ErrInvalidIndex)
	assert.ErrorIs(t, admin.RemoveByIndex(3), ErrInvalidIndex)
	assert.Equal(t, 3, store.Len())

	require.NoError(t, admin.RemoveByIndex(1))
	assert.Equal(t, []model.Session{sessions[0], sessions[2]}, store.Sessions())
}

func TestAdminUpdateByIndex(t *testing.T) {
	t.Run("Rejected replacement rolls back", func(t *testing.T) {
		//** Arrange
		admin, store, sessions := adminWithSessions(t)
		// Clashes with the session at index 0 on room R1
		request := SessionRequest{ModuleCode: "MA101", Day: "MON", StartHour: 9, EndHour: 10, RoomId: "R1", LecturerId: "L2"}

		//** Act
		err := admin.UpdateByIndex(1, request)

		//** Assert
		var conflictErr *ConflictError
		assert.ErrorAs(t, err, &conflictErr)
		assert.Equal(t, 3, store.Len())
		assert.Equal(t, sessions, store.Sessions())
	})

	t.Run("Invalid replacement rolls back", func(t *testing.T) {
		admin, store, sessions := adminWithSessions(t)

		err := admin.UpdateByIndex(0, SessionRequest{ModuleCode: "XX000", Day: "MON", StartHour: 9, EndHour: 10, RoomId: "R1", LecturerId: "L1"})

		assert.ErrorIs(t, err, ErrModuleNotFound)
		assert.Equal(t, sessions, store.Sessions())
	})

	t.Run("Accepted replacement takes the original position", func(t *testing.T) {
		admin, store, sessions := adminWithSessions(t)

		// The replacement may reuse the slot of the session it replaces
		err := admin.UpdateByIndex(1, SessionRequest{ModuleCode: "MA101", Day: "MON", StartHour: 10, EndHour: 12, RoomId: "R2", LecturerId: "L2"})

		require.NoError(t, err)
		require.Equal(t, 3, store.Len())
		updated, _ := store.At(1)
		assert.Equal(t, "MON 10:00 to 12:00", updated.Timeslot.String())
		first, _ := store.At(0)
		last, _ := store.At(2)
		assert.Equal(t, sessions[0], first)
		assert.Equal(t, sessions[2], last)
	})

	t.Run("Invalid index", func(t *testing.T) {
		admin, store, sessions := adminWithSessions(t)

		assert.ErrorIs(t, admin.UpdateByIndex(5, SessionRequest{}), ErrInvalidIndex)
		assert.Equal(t, sessions, store.Sessions())
	})
}
