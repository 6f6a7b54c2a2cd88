package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"slices"
	"strings"

	"github.com/limaJavier/sessiontable/internal/config"
	"github.com/limaJavier/sessiontable/internal/csvio"
	"github.com/limaJavier/sessiontable/internal/logging"
	"github.com/limaJavier/sessiontable/pkg/model"
	"github.com/limaJavier/sessiontable/pkg/timetable"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Exit codes read by the benchmark
const (
	exitComplete   = 10
	exitInvalid    = 15
	exitIncomplete = 20
)

var validModes = []string{"generate", "audit", "repair", "list", "query", "add", "remove", "update"}

type options struct {
	mode      string
	jsonInput string
	index     int
	request   timetable.SessionRequest
	student   string
	programme string
	year      int
	semester  int
	lecturer  string
	room      string
	module    string
}

func main() {
	// Define arguments
	configPtr := flag.String("config", "config.json", "Path to the JSON configuration file; a missing file leaves the defaults in place")
	modePtr := flag.String("mode", "generate", `Operation to perform. Allowed values are:
- "generate" (build a new timetable and write it to the output file),
- "audit" (report room double-bookings in the sessions file),
- "repair" (re-assign rooms of double-booked sessions and write the result to the output file),
- "list" (print every session with its index),
- "query" (print the sessions matching the query flags),
- "add", "remove" and "update" (edit the sessions file in place), where "generate" is the default`)
	dataPtr := flag.String("data", "", "Directory holding the record files; overrides the configuration")
	inputPtr := flag.String("input", "", "Path to a JSON document holding the whole input; replaces the record files")
	sessionsPtr := flag.String("sessions", "", "Sessions file read by every mode but generate, relative to the data directory unless absolute; overrides the configuration")
	outPtr := flag.String("out", "", "Path to the file where generated or repaired sessions are written; overrides the configuration")
	seedPtr := flag.Uint64("seed", 0, "Seed of the generator's search order; 0 keeps the configured seed")
	logPtr := flag.String("log", "", "Log level: debug, info, warn or error; overrides the configuration")

	indexPtr := flag.Int("index", -1, "Index of the session to remove or update")
	codePtr := flag.String("code", "", "Module code of the session to add or update")
	dayPtr := flag.String("day", "", "Day of the session to add or update (MON..FRI)")
	startPtr := flag.Int("start", 0, "Start hour of the session to add or update")
	endPtr := flag.Int("end", 0, "End hour of the session to add or update")
	roomPtr := flag.String("room", "", "Room id of the session to add or update, or room to query")
	lecturerPtr := flag.String("lecturer", "", "Lecturer id of the session to add or update, or lecturer name to query")
	groupPtr := flag.String("group", model.Wildcard, "Group of the session to add or update")

	studentPtr := flag.String("student", "", "Student id to query")
	programmePtr := flag.String("programme", "", "Programme id to query; \"ALL\" with -year selects every programme")
	yearPtr := flag.Int("year", 0, "Year to query")
	semesterPtr := flag.Int("semester", 0, "Semester to query (1 or 2); 0 matches both where allowed")
	modulePtr := flag.String("module", "", "Module code to query")
	flag.Parse()

	cfg, err := config.Load(*configPtr)
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}
	if *dataPtr != "" {
		cfg.DataDir = *dataPtr
	}
	if *sessionsPtr != "" {
		cfg.SessionsFile = *sessionsPtr
	}
	if *outPtr != "" {
		cfg.OutputFile = *outPtr
	}
	if *seedPtr != 0 {
		cfg.Seed = *seedPtr
	}
	if *logPtr != "" {
		cfg.LogLevel = *logPtr
	}

	opts := options{
		mode:      strings.ToLower(*modePtr),
		jsonInput: *inputPtr,
		index:     *indexPtr,
		request: timetable.SessionRequest{
			ModuleCode: *codePtr,
			Day:        *dayPtr,
			StartHour:  *startPtr,
			EndHour:    *endPtr,
			RoomId:     *roomPtr,
			LecturerId: *lecturerPtr,
			GroupId:    *groupPtr,
		},
		student:   *studentPtr,
		programme: *programmePtr,
		year:      *yearPtr,
		semester:  *semesterPtr,
		lecturer:  *lecturerPtr,
		room:      *roomPtr,
		module:    *modulePtr,
	}

	// Validate arguments
	if !slices.Contains(validModes, opts.mode) {
		log.Fatalf("%v is not a valid mode", opts.mode)
	} else if (opts.mode == "remove" || opts.mode == "update") && opts.index < 0 {
		log.Fatal("an index must be specified")
	} else if opts.semester != 0 && opts.semester != 1 && opts.semester != 2 {
		log.Fatalf("semester must be 1 or 2: %v", opts.semester)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("cannot initialize logger: %v", err)
	}

	code := run(cfg, opts, logger)
	logger.Sync()
	os.Exit(code)
}

func run(cfg config.Config, opts options, logger *zap.Logger) int {
	// Extract input
	input, err := loadInput(cfg, opts, logger)
	if err != nil {
		logger.Fatal("Cannot load input", zap.Error(err))
	}

	if opts.mode == "generate" {
		return generate(cfg, input, logger)
	}

	sessions, err := csvio.LoadSessions(cfg.SessionsPath(), input, logger)
	if err != nil {
		logger.Fatal("Cannot load sessions", zap.Error(err))
	}
	store := timetable.NewStore()
	store.Load(sessions)

	switch opts.mode {
	case "audit":
		conflicts := timetable.FindRoomConflicts(store.Sessions())
		for _, conflict := range conflicts {
			fmt.Println(conflict)
		}
		fmt.Printf("Conflicts: %v\n", len(conflicts))
		if len(conflicts) > 0 {
			return exitInvalid
		}
		return exitComplete
	case "repair":
		repaired, err := timetable.ReassignRooms(store.Sessions(), input.Rooms)
		if err != nil {
			logger.Error("Cannot repair timetable", zap.Error(err))
			return exitIncomplete
		}
		save(cfg.OutputFile, repaired, logger)
		fmt.Printf("Conflicts: %v\n", len(timetable.FindRoomConflicts(repaired)))
		return exitComplete
	case "list":
		for _, line := range store.Indexed() {
			fmt.Println(line)
		}
		return 0
	case "query":
		result, err := query(store, input, opts)
		if err != nil {
			logger.Fatal("Invalid query", zap.Error(err))
		}
		for _, session := range result {
			fmt.Println(session)
		}
		return 0
	}

	// Edits rewrite the sessions file
	admin := timetable.NewAdmin(store, input, logger)
	switch opts.mode {
	case "add":
		err = admin.Add(opts.request)
	case "remove":
		err = admin.RemoveByIndex(opts.index)
	case "update":
		err = admin.UpdateByIndex(opts.index, opts.request)
	}

	var conflictErr *timetable.ConflictError
	if errors.As(err, &conflictErr) {
		for _, conflict := range conflictErr.Conflicts {
			fmt.Println(conflict)
		}
		return exitInvalid
	} else if err != nil {
		fmt.Println(err)
		return exitInvalid
	}

	save(cfg.SessionsPath(), store.Sessions(), logger)
	return 0
}

func loadInput(cfg config.Config, opts options, logger *zap.Logger) (model.Input, error) {
	if opts.jsonInput != "" {
		return model.InputFromJson(opts.jsonInput)
	}
	paths := cfg.InputPaths()
	// Students are only needed to answer student queries
	if opts.mode != "query" || opts.student == "" {
		paths.Students = ""
	}
	return csvio.LoadInput(paths, logger)
}

func generate(cfg config.Config, input model.Input, logger *zap.Logger) int {
	var random *rand.Rand
	if cfg.Seed != 0 {
		random = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}

	store := timetable.NewStore()
	result := timetable.NewGenerator(random, logger).Generate(input, store)

	if err := csvio.WriteRecords(cfg.OutputFile, result.Records); err != nil {
		logger.Fatal("Cannot write output file", zap.Error(err))
	}

	placed := lo.SumBy(result.Sessions, func(session model.Session) int { return session.Timeslot.Duration() })
	fmt.Printf("Placed: %v\n", placed)
	fmt.Printf("Unplaced: %v\n", result.Unplaced())

	// Verify timetable correctness
	if !timetable.Verify(store.Sessions()) {
		return exitInvalid
	} else if result.Unplaced() > 0 {
		return exitIncomplete
	}
	return exitComplete
}

func query(store *timetable.Store, input model.Input, opts options) ([]model.Session, error) {
	switch {
	case opts.student != "":
		student, ok := input.FindStudent(opts.student)
		if !ok {
			return nil, fmt.Errorf("student not found: %q", opts.student)
		} else if opts.semester == 0 {
			return nil, errors.New("a semester must be specified")
		}
		return store.ForStudent(student, opts.semester), nil
	case opts.programme != "" && opts.year != 0:
		if opts.semester == 0 {
			return nil, errors.New("a semester must be specified")
		}
		return store.ForCourseYear(opts.programme, opts.year, opts.semester), nil
	case opts.programme != "":
		return store.ForProgramme(opts.programme, opts.semester), nil
	case opts.lecturer != "":
		return store.ForLecturer(opts.lecturer), nil
	case opts.room != "":
		return store.ForRoom(opts.room), nil
	case opts.module != "":
		return store.ForModule(opts.module), nil
	}
	return nil, errors.New("a query needs one of -student, -programme, -lecturer, -room or -module")
}

func save(path string, sessions []model.Session, logger *zap.Logger) {
	if err := csvio.SaveSessions(path, sessions); err != nil {
		logger.Fatal("Cannot write sessions file", zap.Error(err))
	}
}
