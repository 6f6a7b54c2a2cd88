package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inputJson = `{
	"modules": [
		{"code": "CS101", "name": "Programming", "year": 1, "semester": 1, "programmeId": "CS", "lecHours": 2, "labHours": 1, "tutHours": 0}
	],
	"lecturers": [{"id": "L1", "name": "Smith", "email": "smith@uni.test", "department": "Computing"}],
	"rooms": [
		{"id": "R1", "type": "Lecture", "capacity": 100, "building": "Main"},
		{"id": "LAB1", "type": "CSLab", "capacity": 30, "building": "Main"}
	],
	"programmes": [{"id": "CS", "name": "Computer Science"}],
	"students": [{"id": "S1", "name": "Ada", "programmeId": "CS", "year": 1, "groupId": "G1"}]
}`

func TestInputFromJson(t *testing.T) {
	//** Arrange
	file := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(file, []byte(inputJson), 0666))

	//** Act
	input, err := InputFromJson(file)

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, []Module{{Code: "CS101", Name: "Programming", Year: 1, Semester: 1, ProgrammeId: "CS", LecHours: 2, LabHours: 1}}, input.Modules)
	assert.Len(t, input.Rooms, 2)
	assert.Equal(t, "Smith", input.Lecturers[0].Name)
	assert.Equal(t, "Computer Science", input.Programmes[0].Name)
	assert.Equal(t, "G1", input.Students[0].GroupId)

	room, ok := input.FindRoom("LAB1")
	assert.True(t, ok)
	assert.True(t, room.IsLab())

	_, ok = input.FindModule("CS999")
	assert.False(t, ok)
}

func TestInputFromJsonMissingFile(t *testing.T) {
	_, err := InputFromJson(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestIsLab(t *testing.T) {
	assert.True(t, Room{Type: "CSLab"}.IsLab())
	assert.True(t, Room{Type: "Laboratory"}.IsLab())
	assert.False(t, Room{Type: "Lecture"}.IsLab())
	assert.False(t, Room{}.IsLab())
}

func TestSessionFormatting(t *testing.T) {
	s := session(t, cs101, smith, hallA, slot(t, Tuesday, 14, 1), Group("G2"))

	assert.Equal(t, "CS101   Smith   R1   TUE 14:00 to 15:00   Group: G2", s.String())
	assert.Equal(t, SessionRecord{
		SessionId:  3,
		ModuleCode: "CS101",
		Day:        "TUE",
		Start:      14,
		End:        15,
		RoomId:     "R1",
		LecturerId: "L1",
		GroupId:    "G2",
	}, s.Record(3))
}
