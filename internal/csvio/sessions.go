package csvio

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/limaJavier/sessiontable/pkg/model"
	"go.uber.org/zap"
)

// LoadSessions reads session rows and resolves their module, room and lecturer against input.
// Rows with unresolved keys or an invalid timeslot are skipped.
func LoadSessions(path string, input model.Input, logger *zap.Logger) ([]model.Session, error) {
	logger = orNop(logger)
	records, err := readRecords[model.SessionRecord](path, logger)
	if err != nil {
		return nil, err
	}

	sessions := make([]model.Session, 0, len(records))
	for _, record := range records {
		session, err := resolveSession(record, input)
		if err != nil {
			logger.Warn("Skipping session row", zap.String("file", path), zap.Int("session_id", record.SessionId), zap.Error(err))
			continue
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

func resolveSession(record model.SessionRecord, input model.Input) (model.Session, error) {
	module, ok := input.FindModule(record.ModuleCode)
	if !ok {
		return model.Session{}, fmt.Errorf("unknown module %q", record.ModuleCode)
	}
	room, ok := input.FindRoom(record.RoomId)
	if !ok {
		return model.Session{}, fmt.Errorf("unknown room %q", record.RoomId)
	}
	lecturer, ok := input.FindLecturer(record.LecturerId)
	if !ok {
		return model.Session{}, fmt.Errorf("unknown lecturer %q", record.LecturerId)
	}

	day, err := model.ParseDay(record.Day)
	if err != nil {
		return model.Session{}, err
	}
	slot, err := model.NewTimeslot(day, record.Start, record.End-record.Start)
	if err != nil {
		return model.Session{}, err
	}

	return model.Session{
		Module:   module,
		Lecturer: lecturer,
		Room:     room,
		Timeslot: slot,
		Cohort:   model.ParseCohort(record.GroupId),
	}, nil
}

// SaveSessions writes sessions as rows numbered from 1 in their current order
func SaveSessions(path string, sessions []model.Session) error {
	records := make([]model.SessionRecord, 0, len(sessions))
	for i, session := range sessions {
		records = append(records, session.Record(i+1))
	}
	return WriteRecords(path, records)
}

// WriteRecords writes session rows, header included, replacing any existing file
func WriteRecords(path string, records []model.SessionRecord) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %v: %w", path, err)
	}
	defer out.Close()

	if err := gocsv.MarshalFile(&records, out); err != nil {
		return fmt.Errorf("cannot write %v: %w", path, err)
	}
	return nil
}
