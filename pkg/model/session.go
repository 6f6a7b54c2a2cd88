package model

import (
	"fmt"
	"strings"
)

// Session is one placed block of teaching. Resources are held by value and compared by natural key
type Session struct {
	Module   Module
	Lecturer Lecturer
	Room     Room
	Timeslot Timeslot
	Cohort   Cohort
}

// SessionRecord is the flat row form of a session: sessionId, moduleCode, day, start, end, roomId, lecturerId, groupId
type SessionRecord struct {
	SessionId  int    `csv:"sessionId"`
	ModuleCode string `csv:"moduleCode"`
	Day        string `csv:"day"`
	Start      int    `csv:"start"`
	End        int    `csv:"end"`
	RoomId     string `csv:"roomId"`
	LecturerId string `csv:"lecturerId"`
	GroupId    string `csv:"groupId"`
}

func (session Session) Record(id int) SessionRecord {
	return SessionRecord{
		SessionId:  id,
		ModuleCode: session.Module.Code,
		Day:        session.Timeslot.Day().String(),
		Start:      session.Timeslot.StartHour(),
		End:        session.Timeslot.EndHour(),
		RoomId:     session.Room.Id,
		LecturerId: session.Lecturer.Id,
		GroupId:    session.Cohort.String(),
	}
}

func (session Session) SameRoom(other Session) bool {
	return session.Room.Id != "" && strings.EqualFold(session.Room.Id, other.Room.Id)
}

func (session Session) SameLecturer(other Session) bool {
	return session.Lecturer.Id != "" && strings.EqualFold(session.Lecturer.Id, other.Lecturer.Id)
}

func (session Session) SameGroup(other Session) bool {
	return session.Cohort.SharesGroup(other.Cohort)
}

func (session Session) Overlaps(other Session) bool {
	return session.Timeslot.Overlaps(other.Timeslot)
}

func (session Session) String() string {
	return fmt.Sprintf("%v   %v   %v   %v   Group: %v",
		session.Module.Code,
		session.Lecturer.Name,
		session.Room.Id,
		session.Timeslot,
		session.Cohort,
	)
}
