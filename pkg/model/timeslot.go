package model

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
)

// Campus window: sessions may start from FirstHour up to and including LastStartHour
const (
	FirstHour     = 9
	LastStartHour = 17
)

var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday}

var dayNames = map[Day]string{
	Monday:    "MON",
	Tuesday:   "TUE",
	Wednesday: "WED",
	Thursday:  "THU",
	Friday:    "FRI",
}

var fullDayNames = map[Day]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
}

var upper = cases.Upper(language.Und)

func (day Day) String() string {
	if name, ok := dayNames[day]; ok {
		return name
	}
	return fmt.Sprintf("Day(%d)", int(day))
}

// ParseDay accepts either the three-letter code ("mon", "TUE") or the full English name ("Wednesday"), in any case
func ParseDay(value string) (Day, error) {
	folded := upper.String(strings.TrimSpace(value))
	for day, name := range dayNames {
		if folded == name || folded == upper.String(fullDayNames[day]) {
			return day, nil
		}
	}
	return 0, fmt.Errorf("invalid day %q: expected one of MON, TUE, WED, THU, FRI", value)
}

// Timeslot is a half-open interval [start, start+duration) of whole hours on a given day.
// Fields are unexported so a constructed timeslot cannot be altered.
type Timeslot struct {
	day       Day
	startHour int
	duration  int
}

func NewTimeslot(day Day, startHour, duration int) (Timeslot, error) {
	if _, ok := dayNames[day]; !ok {
		return Timeslot{}, fmt.Errorf("invalid day: %v", day)
	} else if startHour < FirstHour || startHour > LastStartHour {
		return Timeslot{}, fmt.Errorf("start hour %d is outside campus hours (%d-%d)", startHour, FirstHour, LastStartHour)
	} else if duration <= 0 {
		return Timeslot{}, fmt.Errorf("duration must be positive: %d", duration)
	}
	return Timeslot{day: day, startHour: startHour, duration: duration}, nil
}

func (slot Timeslot) Day() Day       { return slot.day }
func (slot Timeslot) StartHour() int { return slot.startHour }
func (slot Timeslot) Duration() int  { return slot.duration }
func (slot Timeslot) EndHour() int   { return slot.startHour + slot.duration }

// Overlaps reports whether both timeslots fall on the same day and their hour ranges intersect
func (slot Timeslot) Overlaps(other Timeslot) bool {
	if slot.day != other.day {
		return false
	}
	return slot.startHour < other.EndHour() && other.startHour < slot.EndHour()
}

func (slot Timeslot) String() string {
	return fmt.Sprintf("%v %d:00 to %d:00", slot.day, slot.startHour, slot.EndHour())
}

// Compare orders timeslots by day, then start hour, then duration
func (slot Timeslot) Compare(other Timeslot) int {
	if slot.day != other.day {
		return int(slot.day) - int(other.day)
	} else if slot.startHour != other.startHour {
		return slot.startHour - other.startHour
	}
	return slot.duration - other.duration
}
