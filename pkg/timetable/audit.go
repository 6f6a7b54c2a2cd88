package timetable

import (
	"fmt"

	"github.com/limaJavier/sessiontable/pkg/model"
)

// FindRoomConflicts compares every pair of sessions and describes each pair booked into the same room at overlapping times.
// Lecturers and groups are not compared.
func FindRoomConflicts(sessions []model.Session) []string {
	conflicts := make([]string, 0)
	for i := range len(sessions) - 1 {
		for j := i + 1; j < len(sessions); j++ {
			a, b := sessions[i], sessions[j]
			if a.Room.Id == "" || b.Room.Id == "" {
				continue
			}

			if a.SameRoom(b) && a.Overlaps(b) {
				conflicts = append(conflicts, fmt.Sprintf("ROOM CONFLICT: %v <--> %v", a, b))
			}
		}
	}
	return conflicts
}

// Verify checks that no two sessions clash under the cohort-aware policy and that every room is large enough for its cohort
func Verify(sessions []model.Session) bool {
	policy := model.NewCohortPolicy()
	for i, session := range sessions {
		if session.Room.Capacity < session.Cohort.RequiredCapacity() {
			return false
		}
		for j := i + 1; j < len(sessions); j++ {
			if policy.Clashes(session, sessions[j]) {
				return false
			}
		}
	}
	return true
}
