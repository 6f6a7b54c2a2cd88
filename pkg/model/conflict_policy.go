package model

// ConflictPolicy decides whether two sessions can coexist in the same timetable
type ConflictPolicy interface {
	// Checks whether candidate cannot be placed alongside existing
	Clashes(existing, candidate Session) bool
}

// NewResourcePolicy returns the policy used when accepting sessions into a store:
// overlapping sessions clash when they share a room, a lecturer or a named group
func NewResourcePolicy() ConflictPolicy {
	return &resourcePolicy{}
}

// NewCohortPolicy extends the resource policy with a cohort rule: overlapping sessions of modules
// taught to the same programme, year and semester clash when their cohorts are compatible (both Everyone, or the same group)
func NewCohortPolicy() ConflictPolicy {
	return &cohortPolicy{}
}

type resourcePolicy struct{}

func (policy *resourcePolicy) Clashes(existing, candidate Session) bool {
	return (existing.SameRoom(candidate) || existing.SameLecturer(candidate) || existing.SameGroup(candidate)) &&
		existing.Overlaps(candidate)
}

type cohortPolicy struct {
	resourcePolicy
}

func (policy *cohortPolicy) Clashes(existing, candidate Session) bool {
	if policy.resourcePolicy.Clashes(existing, candidate) {
		return true
	}

	return existing.Module.SameCohortYear(candidate.Module) &&
		existing.Overlaps(candidate) &&
		existing.Cohort.Compatible(candidate.Cohort)
}
