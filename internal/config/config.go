package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"

	"github.com/limaJavier/sessiontable/internal/csvio"
)

// Environment variables overriding the file configuration
const (
	EnvDataDir  = "TIMETABLE_DATA_DIR"
	EnvOutput   = "TIMETABLE_OUTPUT"
	EnvSeed     = "TIMETABLE_SEED"
	EnvLogLevel = "TIMETABLE_LOG_LEVEL"
)

type Config struct {
	DataDir        string `mapstructure:"dataDir"`
	ModulesFile    string `mapstructure:"modulesFile"`
	RoomsFile      string `mapstructure:"roomsFile"`
	LecturersFile  string `mapstructure:"lecturersFile"`
	ProgrammesFile string `mapstructure:"programmesFile"`
	StudentsFile   string `mapstructure:"studentsFile"`
	SessionsFile   string `mapstructure:"sessionsFile"`
	OutputFile     string `mapstructure:"outputFile"`
	// Zero seeds the generator from system entropy
	Seed     uint64 `mapstructure:"seed"`
	LogLevel string `mapstructure:"logLevel"`
}

func Default() Config {
	return Config{
		DataDir:        "data",
		ModulesFile:    "modules.csv",
		RoomsFile:      "rooms.csv",
		LecturersFile:  "lecturers.csv",
		ProgrammesFile: "programmes.csv",
		StudentsFile:   "students.csv",
		SessionsFile:   "sessions.csv",
		OutputFile:     "sessions.csv",
		LogLevel:       "info",
	}
}

// Load starts from the defaults, applies the JSON file at path (skipped when path is empty or missing),
// then applies the environment after loading an optional .env file
func Load(path string) (Config, error) {
	config := Default()

	if path != "" {
		bytes, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("cannot read config file: %w", err)
		} else if err == nil {
			var configJson map[string]any
			if err := json.Unmarshal(bytes, &configJson); err != nil {
				return Config{}, fmt.Errorf("cannot parse config file: %w", err)
			}
			if err := decode(configJson, &config); err != nil {
				return Config{}, err
			}
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("cannot load .env file: %w", err)
	}

	overrides := lo.PickBy(map[string]any{
		"dataDir":    os.Getenv(EnvDataDir),
		"outputFile": os.Getenv(EnvOutput),
		"seed":       os.Getenv(EnvSeed),
		"logLevel":   os.Getenv(EnvLogLevel),
	}, func(_ string, value any) bool { return value != "" })
	if err := decode(overrides, &config); err != nil {
		return Config{}, fmt.Errorf("invalid environment: %w", err)
	}

	return config, nil
}

func decode(values map[string]any, config *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           config,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(values); err != nil {
		return fmt.Errorf("cannot decode config: %w", err)
	}
	return nil
}

// InputPaths joins the record file names onto the data directory; empty names stay empty
func (config Config) InputPaths() csvio.InputPaths {
	return csvio.InputPaths{
		Modules:    config.resolve(config.ModulesFile),
		Rooms:      config.resolve(config.RoomsFile),
		Lecturers:  config.resolve(config.LecturersFile),
		Programmes: config.resolve(config.ProgrammesFile),
		Students:   config.resolve(config.StudentsFile),
	}
}

func (config Config) SessionsPath() string {
	return config.resolve(config.SessionsFile)
}

func (config Config) resolve(file string) string {
	if file == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(config.DataDir, file)
}
