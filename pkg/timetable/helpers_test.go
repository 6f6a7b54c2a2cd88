package timetable

import (
	"testing"

	"github.com/limaJavier/sessiontable/pkg/model"
	"github.com/stretchr/testify/require"
)

var (
	programming  = model.Module{Code: "CS101", Name: "Programming", Year: 1, Semester: 1, ProgrammeId: "LM100", LecHours: 2}
	mathematics  = model.Module{Code: "MA101", Name: "Mathematics", Year: 1, Semester: 1, ProgrammeId: "LM100", LecHours: 2}
	databases    = model.Module{Code: "CS201", Name: "Databases", Year: 2, Semester: 1, ProgrammeId: "LM100", LecHours: 2, LabHours: 1}
	smith        = model.Lecturer{Id: "L1", Name: "Smith"}
	jones        = model.Lecturer{Id: "L2", Name: "Jones"}
	hall         = model.Room{Id: "R1", Type: "Lecture", Capacity: 100}
	theatre      = model.Room{Id: "R2", Type: "Lecture", Capacity: 80}
	seminar      = model.Room{Id: "R3", Type: "Seminar", Capacity: 30}
	computingLab = model.Room{Id: "LAB1", Type: "CSLab", Capacity: 30}
)

func timeslot(t *testing.T, day model.Day, start, duration int) model.Timeslot {
	t.Helper()
	slot, err := model.NewTimeslot(day, start, duration)
	require.NoError(t, err)
	return slot
}

func newSession(t *testing.T, module model.Module, lecturer model.Lecturer, room model.Room, day model.Day, start int, cohort model.Cohort) model.Session {
	t.Helper()
	return model.Session{
		Module:   module,
		Lecturer: lecturer,
		Room:     room,
		Timeslot: timeslot(t, day, start, 1),
		Cohort:   cohort,
	}
}

func testInput() model.Input {
	return model.Input{
		Modules:   []model.Module{programming, mathematics, databases},
		Lecturers: []model.Lecturer{smith, jones},
		Rooms:     []model.Room{hall, theatre, seminar, computingLab},
	}
}
