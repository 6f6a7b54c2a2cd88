package csvio

import (
	"github.com/limaJavier/sessiontable/pkg/model"
	"go.uber.org/zap"
)

// InputPaths locates the record files of an input; empty paths are skipped
type InputPaths struct {
	Modules    string
	Rooms      string
	Lecturers  string
	Programmes string
	Students   string
}

func LoadModules(path string, logger *zap.Logger) ([]model.Module, error) {
	return readRecords[model.Module](path, orNop(logger))
}

func LoadRooms(path string, logger *zap.Logger) ([]model.Room, error) {
	return readRecords[model.Room](path, orNop(logger))
}

func LoadLecturers(path string, logger *zap.Logger) ([]model.Lecturer, error) {
	return readRecords[model.Lecturer](path, orNop(logger))
}

func LoadProgrammes(path string, logger *zap.Logger) ([]model.Programme, error) {
	return readRecords[model.Programme](path, orNop(logger))
}

func LoadStudents(path string, logger *zap.Logger) ([]model.Student, error) {
	return readRecords[model.Student](path, orNop(logger))
}

func LoadInput(paths InputPaths, logger *zap.Logger) (model.Input, error) {
	var input model.Input
	var err error

	if paths.Modules != "" {
		if input.Modules, err = LoadModules(paths.Modules, logger); err != nil {
			return model.Input{}, err
		}
	}
	if paths.Rooms != "" {
		if input.Rooms, err = LoadRooms(paths.Rooms, logger); err != nil {
			return model.Input{}, err
		}
	}
	if paths.Lecturers != "" {
		if input.Lecturers, err = LoadLecturers(paths.Lecturers, logger); err != nil {
			return model.Input{}, err
		}
	}
	if paths.Programmes != "" {
		if input.Programmes, err = LoadProgrammes(paths.Programmes, logger); err != nil {
			return model.Input{}, err
		}
	}
	if paths.Students != "" {
		if input.Students, err = LoadStudents(paths.Students, logger); err != nil {
			return model.Input{}, err
		}
	}

	orNop(logger).Info("Input loaded",
		zap.Int("modules", len(input.Modules)),
		zap.Int("rooms", len(input.Rooms)),
		zap.Int("lecturers", len(input.Lecturers)),
		zap.Int("programmes", len(input.Programmes)),
		zap.Int("students", len(input.Students)),
	)
	return input, nil
}

func orNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
