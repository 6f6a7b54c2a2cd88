package model

import "strings"

// Wildcard is the textual form of the whole-cohort target in records
const Wildcard = "ALL"

// Minimum room capacities by cohort target
const (
	EveryoneCapacity = 60
	GroupCapacity    = 30
)

// Cohort identifies who attends a session: either every student of the module (Everyone)
// or a single named sub-group (Group). The zero value is Everyone.
type Cohort struct {
	group string
}

func Everyone() Cohort {
	return Cohort{}
}

// Group returns the cohort for the named sub-group. The wildcard name (or an empty one) yields Everyone
func Group(name string) Cohort {
	return ParseCohort(name)
}

// ParseCohort converts a record's group field into a Cohort
func ParseCohort(value string) Cohort {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, Wildcard) {
		return Everyone()
	}
	return Cohort{group: value}
}

func (cohort Cohort) IsEveryone() bool {
	return cohort.group == ""
}

// Name returns the sub-group name, or "" for Everyone
func (cohort Cohort) Name() string {
	return cohort.group
}

func (cohort Cohort) String() string {
	if cohort.IsEveryone() {
		return Wildcard
	}
	return cohort.group
}

// SharesGroup reports whether both cohorts are the same named sub-group (case-insensitive).
// Everyone never shares a group, not even with itself.
func (cohort Cohort) SharesGroup(other Cohort) bool {
	return !cohort.IsEveryone() && !other.IsEveryone() && strings.EqualFold(cohort.group, other.group)
}

// Compatible reports whether two cohorts address the same students: both Everyone, or the same sub-group
func (cohort Cohort) Compatible(other Cohort) bool {
	return (cohort.IsEveryone() && other.IsEveryone()) || cohort.SharesGroup(other)
}

// Includes reports whether a student of the given group attends sessions targeted at this cohort
func (cohort Cohort) Includes(group string) bool {
	return cohort.IsEveryone() || strings.EqualFold(cohort.group, strings.TrimSpace(group))
}

// RequiredCapacity returns the minimum room capacity for sessions targeted at the cohort
func (cohort Cohort) RequiredCapacity() int {
	if cohort.IsEveryone() {
		return EveryoneCapacity
	}
	return GroupCapacity
}
