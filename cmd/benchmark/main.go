package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/limaJavier/sessiontable/internal/config"
	"github.com/limaJavier/sessiontable/internal/csvio"
	"github.com/samber/lo"
)

const (
	executablePath    = "../../bin/timetable"
	dataSetsDirectory = "../../test/data/"
	resultsFile       = "benchmark_results.csv"
)

var seeds = []uint64{1, 2, 3, 4, 5}

type ResultType int

const (
	complete ResultType = iota
	incomplete
	invalid
)

var resultTypes = map[ResultType]string{
	complete:   "complete",
	incomplete: "incomplete",
	invalid:    "invalid",
}

type DataSetMetadata struct {
	Name      string
	Modules   int
	Rooms     int
	Lecturers int
}

type BenchmarkResult struct {
	DataSet       string  `csv:"DataSet"`
	Modules       int     `csv:"Modules"`
	Rooms         int     `csv:"Rooms"`
	Lecturers     int     `csv:"Lecturers"`
	Seed          uint64  `csv:"Seed"`
	Duration      int64   `csv:"Duration(ms)"`
	Memory        float32 `csv:"Memory(MB)"`
	CpuPercentage int64   `csv:"CPU(%)"`
	Placed        int     `csv:"Placed"`
	Unplaced      int     `csv:"Unplaced"`
	Result        string  `csv:"Result"`
}

func main() {
	dataSets := getDataSets()
	results := make([]BenchmarkResult, 0, len(dataSets)*len(seeds))

	for _, dataSet := range dataSets {
		for _, seed := range seeds {
			fmt.Printf("Benchmarking data set \"%v\" with seed \"%v\"\n", dataSet.Name, seed)

			m := measure(dataSet.Name, seed)

			results = append(results, BenchmarkResult{
				DataSet:       dataSet.Name,
				Modules:       dataSet.Modules,
				Rooms:         dataSet.Rooms,
				Lecturers:     dataSet.Lecturers,
				Seed:          seed,
				Duration:      m.duration,
				Memory:        m.maxMemory,
				CpuPercentage: m.cpuPercentage,
				Placed:        m.placed,
				Unplaced:      m.unplaced,
				Result:        resultTypes[m.result],
			})
		}
	}

	toCsv(results)
}

func getDataSets() []DataSetMetadata {
	entries, err := os.ReadDir(dataSetsDirectory)
	if err != nil {
		log.Fatalf("cannot read directory: %v", err)
	}

	dataSets := make([]DataSetMetadata, 0)
	for _, entry := range lo.Filter(entries, func(entry os.DirEntry, _ int) bool { return entry.IsDir() }) {
		directory := filepath.Join(dataSetsDirectory, entry.Name())

		cfg := config.Default()
		cfg.DataDir = directory
		paths := cfg.InputPaths()
		paths.Students = ""

		input, err := csvio.LoadInput(paths, nil)
		if err != nil {
			log.Fatalf("cannot load data set %v: %v", directory, err)
		}

		dataSets = append(dataSets, DataSetMetadata{
			Name:      directory,
			Modules:   len(input.Modules),
			Rooms:     len(input.Rooms),
			Lecturers: len(input.Lecturers),
		})
	}
	return dataSets
}

type measurement struct {
	duration      int64
	maxMemory     float32
	cpuPercentage int64
	placed        int
	unplaced      int
	result        ResultType
}

func measure(dataSet string, seed uint64) measurement {
	out := filepath.Join(os.TempDir(), fmt.Sprintf("benchmark-%d.csv", seed))
	defer os.Remove(out)

	cmd := exec.Command("/usr/bin/time", "-v", executablePath, "-mode", "generate", "-data", dataSet, "-seed", fmt.Sprint(seed), "-out", out, "-log", "error")

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	cmd.Run()

	var m measurement
	switch cmd.ProcessState.ExitCode() {
	case 10:
		m.result = complete
	case 20:
		m.result = incomplete
	case 15:
		m.result = invalid
	default:
		log.Fatalf("an error occurred during the execution \"timetable\" at data set \"%v\" using seed \"%v\": %v\n", dataSet, seed, stdErr.String())
	}

	errLines := strings.Split(stdErr.String(), "\n")
	outLines := strings.Split(stdOut.String(), "\n")
	getLine := func(lines []string, substr string) string {
		line, ok := lo.Find(lines, func(line string) bool {
			return strings.Contains(strings.ToLower(line), substr)
		})
		if !ok {
			log.Fatalf("Substring \"%v\" could not be found", substr)
		}
		return line
	}

	m.duration = parseDurationLine(getLine(errLines, "wall clock"))
	m.maxMemory = parseMemoryLine(getLine(errLines, "maximum resident set size"))
	m.cpuPercentage = parseCpuPercentageLine(getLine(errLines, "percent of cpu"))
	m.placed = parseCountLine(getLine(outLines, "placed:"))
	m.unplaced = parseCountLine(getLine(outLines, "unplaced:"))
	return m
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create(resultsFile)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&results, file); err != nil {
		log.Panicf("cannot write CSV records: %v", err)
	}
}

func parseDurationLine(line string) int64 {
	durationStr := strings.Split(line, "(h:mm:ss or m:ss):")[1][1:]
	return parseDuration(durationStr)
}

func parseDuration(durationStr string) int64 {
	parts := strings.Split(durationStr, ":")
	secondsStr := parts[len(parts)-1]
	secondsParts := strings.Split(secondsStr, ".")

	var duration int64
	if len(parts) == 3 { // h:mm:ss
		hours := lo.Must(strconv.Atoi(parts[0]))
		minutes := lo.Must(strconv.Atoi(parts[1]))
		seconds := lo.Must(strconv.Atoi(secondsParts[0]))
		hundredthOfSeconds := lo.Must(strconv.Atoi(secondsParts[1]))
		duration = int64(hours*3600+minutes*60+seconds)*1000 + int64(hundredthOfSeconds*10)
	} else if len(parts) == 2 { // m:ss
		minutes := lo.Must(strconv.Atoi(parts[0]))
		seconds := lo.Must(strconv.Atoi(secondsParts[0]))
		hundredthOfSeconds := lo.Must(strconv.Atoi(secondsParts[1]))
		duration = int64(minutes*60+seconds)*1000 + int64(hundredthOfSeconds*10)
	} else {
		log.Fatalf("unexpected duration format: %v", durationStr)
	}
	return duration
}

func parseMemoryLine(line string) float32 {
	memoryStr := strings.Split(line, ":")[1][1:]
	return float32(lo.Must(strconv.ParseFloat(memoryStr, 32))) / 1024
}

func parseCpuPercentageLine(line string) int64 {
	percentageStr := strings.Split(line, ":")[1][1:]
	percentageStr = percentageStr[:len(percentageStr)-1]
	return int64(lo.Must(strconv.Atoi(percentageStr)))
}

// parseCountLine reads the number of a "Placed: N" style line
func parseCountLine(line string) int {
	return lo.Must(strconv.Atoi(strings.TrimSpace(strings.Split(line, ":")[1])))
}
