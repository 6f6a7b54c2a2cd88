package timetable

import (
	"fmt"
	"maps"
	"slices"

	"github.com/limaJavier/sessiontable/pkg/model"
	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

type unassignableError struct {
	timeslot model.Timeslot
	sessions int
	rooms    int
}

func (err unassignableError) Error() string {
	return fmt.Sprintf("cannot assign rooms to the %d sessions at %v: only %d suitable rooms are free", err.sessions, err.timeslot, err.rooms)
}

// ReassignRooms resolves room double-bookings. Sessions sharing an identical timeslot form a bucket; every bucket holding
// a room clash gets its rooms re-assigned by maximum bipartite matching against the rooms that keep each session's
// lab classification, fit its cohort and are not used by any other overlapping session. Sessions keep their position.
func ReassignRooms(sessions []model.Session, rooms []model.Room) ([]model.Session, error) {
	repaired := slices.Clone(sessions)

	buckets := lo.GroupBy(lo.Range(len(repaired)), func(index int) model.Timeslot {
		return repaired[index].Timeslot
	})
	timeslots := slices.SortedFunc(maps.Keys(buckets), func(a, b model.Timeslot) int { return a.Compare(b) })

	for _, timeslot := range timeslots {
		bucket := buckets[timeslot]
		if !lo.SomeBy(bucket, func(index int) bool { return hasRoomClash(repaired, index) }) {
			continue
		}

		//** Rooms held by overlapping sessions outside the bucket are unavailable
		busy := make(map[string]bool)
		for _, session := range repaired {
			if session.Timeslot != timeslot && session.Timeslot.Overlaps(timeslot) {
				busy[session.Room.Id] = true
			}
		}
		free := lo.Filter(rooms, func(room model.Room, _ int) bool { return !busy[room.Id] })

		assignments, err := assignRooms(repaired, bucket, free)
		if err != nil {
			return nil, err
		}
		for index, room := range assignments {
			repaired[index].Room = room
		}
	}

	return repaired, nil
}

func hasRoomClash(sessions []model.Session, index int) bool {
	for other, session := range sessions {
		if other != index && session.SameRoom(sessions[index]) && session.Overlaps(sessions[index]) {
			return true
		}
	}
	return false
}

func assignRooms(sessions []model.Session, bucket []int, rooms []model.Room) (map[int]model.Room, error) {
	// Build neighbors predicate: a room suits a session if it keeps its lab classification and fits its cohort
	neighbors := func(sessionAny any, roomAny any) (bool, error) {
		session := sessions[sessionAny.(int)]
		room := roomAny.(model.Room)

		return room.IsLab() == session.Room.IsLab() && room.Capacity >= session.Cohort.RequiredCapacity(), nil
	}

	// Transform sessions and rooms to slices of any
	sessionsAny, roomsAny := lo.Map(bucket, func(index int, _ int) any { return index }), lo.Map(rooms, func(room model.Room, _ int) any { return room })

	graph, err := bipartitegraph.NewBipartiteGraph(sessionsAny, roomsAny, neighbors)
	if err != nil {
		return nil, err
	}

	matching := graph.LargestMatching()

	// Check the matching is a maximum one
	if len(matching) < len(bucket) {
		return nil, unassignableError{
			timeslot: sessions[bucket[0]].Timeslot,
			sessions: len(bucket),
			rooms:    len(rooms),
		}
	}

	assignments := make(map[int]model.Room, len(bucket))
	for _, edge := range matching {
		sessionIndex, roomIndex := edge.Node1, edge.Node2-len(bucket)
		assignments[bucket[sessionIndex]] = rooms[roomIndex]
	}
	return assignments, nil
}
