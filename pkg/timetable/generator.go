package timetable

import (
	"hash/fnv"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"
	"github.com/limaJavier/sessiontable/pkg/model"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type Component int

const (
	Lecture Component = iota
	Lab
	Tutorial
)

func (component Component) String() string {
	switch component {
	case Lecture:
		return "lecture"
	case Lab:
		return "lab"
	case Tutorial:
		return "tutorial"
	}
	return "unknown"
}

// Shortfall records the hours of a block that could not be placed
type Shortfall struct {
	ModuleCode string
	Component  Component
	Cohort     model.Cohort
	Missing    int
}

type Result struct {
	RunID      string
	Records    []model.SessionRecord
	Sessions   []model.Session
	Shortfalls []Shortfall
}

// Unplaced returns the total number of required hours left out of the timetable
func (result Result) Unplaced() int {
	return lo.SumBy(result.Shortfalls, func(shortfall Shortfall) int { return shortfall.Missing })
}

// Generator places every module's weekly hours greedily, one unit-length session at a time,
// in a randomized day x hour x room order. Placements are never revisited.
type Generator struct {
	random *rand.Rand
	policy model.ConflictPolicy
	logger *zap.Logger
}

// NewGenerator builds a generator drawing its search order from random; a nil source is seeded from system entropy
func NewGenerator(random *rand.Rand, logger *zap.Logger) *Generator {
	if random == nil {
		random = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		random: random,
		policy: model.NewCohortPolicy(),
		logger: logger,
	}
}

// generationRun holds the state of a single Generate call
type generationRun struct {
	input      model.Input
	generated  []model.Session
	records    []model.SessionRecord
	shortfalls []Shortfall
}

// Generate builds a timetable for every module of input and loads it into store, replacing its contents
func (generator *Generator) Generate(input model.Input, store *Store) Result {
	run := &generationRun{
		input:      input,
		generated:  make([]model.Session, 0),
		records:    make([]model.SessionRecord, 0),
		shortfalls: make([]Shortfall, 0),
	}
	runId := uuid.NewString()
	logger := generator.logger.With(zap.String("run_id", runId))

	for _, module := range input.Modules {
		lecturer, ok := pickLecturer(module, input.Lecturers)
		if !ok {
			logger.Warn("No lecturer for module", zap.String("module", module.Code))
			continue
		}

		//** Lectures are attended by the whole cohort
		generator.scheduleBlock(run, logger, module, lecturer, module.LecHours, Lecture, model.Everyone())

		//** Labs and tutorials are taught to each half of the cohort separately
		if module.LabHours > 0 {
			generator.scheduleBlock(run, logger, module, lecturer, module.LabHours, Lab, model.Group("G1"))
			generator.scheduleBlock(run, logger, module, lecturer, module.LabHours, Lab, model.Group("G2"))
		}
		if module.TutHours > 0 {
			generator.scheduleBlock(run, logger, module, lecturer, module.TutHours, Tutorial, model.Group("G1"))
			generator.scheduleBlock(run, logger, module, lecturer, module.TutHours, Tutorial, model.Group("G2"))
		}
	}

	store.Load(run.generated)

	result := Result{
		RunID:      runId,
		Records:    run.records,
		Sessions:   slices.Clone(run.generated),
		Shortfalls: run.shortfalls,
	}
	logger.Info("Timetable generated",
		zap.Int("modules", len(input.Modules)),
		zap.Int("sessions", len(result.Sessions)),
		zap.Int("unplaced_hours", result.Unplaced()),
	)
	return result
}

// pickLecturer assigns a lecturer by hashing the module code, so the choice is stable across runs
func pickLecturer(module model.Module, lecturers []model.Lecturer) (model.Lecturer, bool) {
	if len(lecturers) == 0 {
		return model.Lecturer{}, false
	}
	hash := fnv.New32a()
	hash.Write([]byte(module.Code))
	return lecturers[hash.Sum32()%uint32(len(lecturers))], true
}

func (generator *Generator) scheduleBlock(
	run *generationRun,
	logger *zap.Logger,
	module model.Module,
	lecturer model.Lecturer,
	hours int,
	component Component,
	cohort model.Cohort,
) {
	for remaining := hours; remaining > 0; {
		session, ok := generator.findFreeSession(run, module, lecturer, component, cohort)
		if !ok {
			logger.Warn("Could not place block",
				zap.String("module", module.Code),
				zap.Stringer("component", component),
				zap.Stringer("group", cohort),
				zap.Int("missing_hours", remaining),
			)
			run.shortfalls = append(run.shortfalls, Shortfall{
				ModuleCode: module.Code,
				Component:  component,
				Cohort:     cohort,
				Missing:    remaining,
			})
			return
		}

		run.generated = append(run.generated, session)
		run.records = append(run.records, session.Record(len(run.records)+1))
		remaining -= session.Timeslot.Duration()
	}
}

// findFreeSession returns the first unit-length session, in a freshly shuffled day x hour x room order,
// that clashes with nothing generated so far in the run
func (generator *Generator) findFreeSession(
	run *generationRun,
	module model.Module,
	lecturer model.Lecturer,
	component Component,
	cohort model.Cohort,
) (model.Session, bool) {
	days := slices.Clone(model.Days)
	generator.shuffle(len(days), func(i, j int) { days[i], days[j] = days[j], days[i] })

	hours := lo.RangeFrom(model.FirstHour, model.LastStartHour-model.FirstHour+1)
	generator.shuffle(len(hours), func(i, j int) { hours[i], hours[j] = hours[j], hours[i] })

	lab := component == Lab
	capacity := cohort.RequiredCapacity()
	rooms := lo.Filter(run.input.Rooms, func(room model.Room, _ int) bool {
		return room.IsLab() == lab && room.Capacity >= capacity
	})
	generator.shuffle(len(rooms), func(i, j int) { rooms[i], rooms[j] = rooms[j], rooms[i] })

	for _, day := range days {
		for _, hour := range hours {
			slot, err := model.NewTimeslot(day, hour, 1)
			if err != nil {
				continue
			}

			for _, room := range rooms {
				candidate := model.Session{
					Module:   module,
					Lecturer: lecturer,
					Room:     room,
					Timeslot: slot,
					Cohort:   cohort,
				}
				if !run.clashes(generator.policy, candidate) {
					return candidate, true
				}
			}
		}
	}
	return model.Session{}, false
}

func (generator *Generator) shuffle(n int, swap func(i, j int)) {
	generator.random.Shuffle(n, swap)
}

func (run *generationRun) clashes(policy model.ConflictPolicy, candidate model.Session) bool {
	return lo.SomeBy(run.generated, func(existing model.Session) bool {
		return policy.Clashes(existing, candidate)
	})
}
