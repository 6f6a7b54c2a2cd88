package model

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

type Module struct {
	Code        string `csv:"moduleCode" validate:"required"`
	Name        string `csv:"name"`
	Year        int    `csv:"year" validate:"min=1"`
	Semester    int    `csv:"semester" validate:"oneof=1 2"`
	ProgrammeId string `csv:"programmeId" mapstructure:"programmeId" validate:"required"`
	LecHours    int    `csv:"lecHours" mapstructure:"lecHours" validate:"min=0"`
	LabHours    int    `csv:"labHours" mapstructure:"labHours" validate:"min=0"`
	TutHours    int    `csv:"tutHours" mapstructure:"tutHours" validate:"min=0"`
}

// SameCohortYear reports whether both modules are taught to the same programme, year and semester
func (module Module) SameCohortYear(other Module) bool {
	return strings.EqualFold(module.ProgrammeId, other.ProgrammeId) &&
		module.Year == other.Year &&
		module.Semester == other.Semester
}

type Room struct {
	Id       string `csv:"roomId" validate:"required"`
	Type     string `csv:"type"`
	Capacity int    `csv:"capacity" validate:"min=0"`
	Building string `csv:"building"`
}

// IsLab treats any room whose type mentions "lab" as a laboratory (e.g. "CSLab", "Laboratory")
func (room Room) IsLab() bool {
	return strings.Contains(strings.ToLower(room.Type), "lab")
}

func (room Room) String() string {
	return fmt.Sprintf("%v type: %v, Capacity: %d, Building: %v", room.Id, room.Type, room.Capacity, room.Building)
}

type Lecturer struct {
	Id         string `csv:"lecturerId" validate:"required"`
	Name       string `csv:"name" validate:"required"`
	Email      string `csv:"email"`
	Department string `csv:"department"`
}

type Programme struct {
	Id   string `csv:"programmeId" validate:"required"`
	Name string `csv:"name"`
}

type Student struct {
	Id          string `csv:"studentId" validate:"required"`
	Name        string `csv:"name"`
	Email       string `csv:"email"`
	ProgrammeId string `csv:"programme" mapstructure:"programmeId"`
	Year        int    `csv:"year" validate:"min=1"`
	GroupId     string `csv:"groupId" mapstructure:"groupId"`
}

// Input gathers every record the scheduler and the admin helpers resolve keys against
type Input struct {
	Modules    []Module
	Lecturers  []Lecturer
	Rooms      []Room
	Programmes []Programme
	Students   []Student
}

func (input Input) FindModule(code string) (Module, bool) {
	return lo.Find(input.Modules, func(module Module) bool { return module.Code == code })
}

func (input Input) FindRoom(id string) (Room, bool) {
	return lo.Find(input.Rooms, func(room Room) bool { return room.Id == id })
}

func (input Input) FindLecturer(id string) (Lecturer, bool) {
	return lo.Find(input.Lecturers, func(lecturer Lecturer) bool { return lecturer.Id == id })
}

func (input Input) FindStudent(id string) (Student, bool) {
	return lo.Find(input.Students, func(student Student) bool { return student.Id == id })
}

// InputFromJson decodes a whole input document of the form
// {"modules": [...], "lecturers": [...], "rooms": [...], "programmes": [...], "students": [...]}
func InputFromJson(file string) (Input, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Input{}, fmt.Errorf("cannot read input file: %w", err)
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Input{}, err
	}

	var input Input
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return Input{}, fmt.Errorf("cannot decode input: %w", err)
	}
	return input, nil
}
