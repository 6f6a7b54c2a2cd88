package timetable

import (
	"fmt"
	"slices"
	"strings"

	"github.com/limaJavier/sessiontable/pkg/model"
	"github.com/samber/lo"
)

// ForStudent returns the sessions a student attends in the given semester, ordered by day and start hour.
// A student without a programme matches sessions of every programme.
func (store *Store) ForStudent(student model.Student, semester int) []model.Session {
	matches := store.filter(func(session model.Session) bool {
		sameProgramme := student.ProgrammeId == "" || strings.EqualFold(session.Module.ProgrammeId, student.ProgrammeId)
		return sameProgramme &&
			session.Module.Year == student.Year &&
			session.Module.Semester == semester &&
			session.Cohort.Includes(student.GroupId)
	})
	sortByTime(matches)
	return matches
}

// ForCourseYear returns the sessions of a programme (or of every programme when programmeId is the wildcard) for a year and semester
func (store *Store) ForCourseYear(programmeId string, year, semester int) []model.Session {
	return store.filter(func(session model.Session) bool {
		sameProgramme := strings.EqualFold(programmeId, model.Wildcard) || strings.EqualFold(session.Module.ProgrammeId, programmeId)
		return sameProgramme && session.Module.Year == year && session.Module.Semester == semester
	})
}

// ForProgramme returns the sessions of a programme; a zero semester matches both semesters
func (store *Store) ForProgramme(programmeId string, semester int) []model.Session {
	return store.filter(func(session model.Session) bool {
		return strings.EqualFold(session.Module.ProgrammeId, programmeId) &&
			(semester == 0 || session.Module.Semester == semester)
	})
}

// Indexed lists every session prefixed with its position, the index admin edits refer to
func (store *Store) Indexed() []string {
	return lo.Map(store.sessions, func(session model.Session, index int) string {
		return fmt.Sprintf("%d: %v", index, session)
	})
}

func sortByTime(sessions []model.Session) {
	slices.SortStableFunc(sessions, func(a, b model.Session) int {
		return a.Timeslot.Compare(b.Timeslot)
	})
}
