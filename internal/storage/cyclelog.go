package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/agegold/driveralert/pkg/models"
)

// RunHeader is the first line of a cycle log: one record identifying the run.
type RunHeader struct {
	RunID    string    `json:"run_id"`
	Scenario string    `json:"scenario"`
	Period   string    `json:"period"`
	Start    time.Time `json:"start"`
}

// NewRunHeader stamps a fresh run identifier and start time.
func NewRunHeader(scenario string, period time.Duration) RunHeader {
	return RunHeader{
		RunID:    uuid.NewString(),
		Scenario: scenario,
		Period:   period.String(),
		Start:    time.Now().UTC(),
	}
}

// CycleRecord is one recorded cycle: raised event names and the alerts that
// fired. Cycles in which nothing fired are not recorded.
type CycleRecord struct {
	Cycle  int           `json:"cycle"`
	Events []string      `json:"events"`
	Alerts []AlertRecord `json:"alerts"`
}

// AlertRecord is the recorded shape of one fired alert.
type AlertRecord struct {
	Tag      string          `json:"tag"`
	Severity models.Severity `json:"severity"`
	Text1    string          `json:"text1,omitempty"`
	Text2    string          `json:"text2,omitempty"`
}

// CycleFilter specifies criteria for reading back recorded cycles. All
// specified fields use AND logic.
type CycleFilter struct {
	MinSeverity models.Severity
	Event       string
}

// CycleLog records one run as append-only JSON lines: the header first, then
// one line per recorded cycle.
type CycleLog interface {
	WriteHeader(h RunHeader) error
	Write(rec CycleRecord) error
	Close() error
}

type jsonlCycleLog struct {
	path string
	file *os.File
	mu   sync.Mutex
}

// NewCycleLog creates a CycleLog backed by a JSONL file at the given path.
func NewCycleLog(path string) (CycleLog, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening cycle log: %w", err)
	}
	return &jsonlCycleLog{path: path, file: f}, nil
}

func (l *jsonlCycleLog) WriteHeader(h RunHeader) error {
	return l.writeLine(h)
}

func (l *jsonlCycleLog) Write(rec CycleRecord) error {
	return l.writeLine(rec)
}

func (l *jsonlCycleLog) writeLine(v any) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshalling cycle record: %w", err)
	}
	data = append(data, '\n')

	if _, err := l.file.Write(data); err != nil {
		return fmt.Errorf("writing cycle record: %w", err)
	}
	return nil
}

func (l *jsonlCycleLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.file.Close(); err != nil {
		return fmt.Errorf("closing cycle log: %w", err)
	}
	return nil
}

// ReadCycleLog scans a recording, returning its header and the records that
// match the filter. Malformed lines are skipped; a missing header yields a
// zero RunHeader with the records still read.
func ReadCycleLog(path string, filter CycleFilter) (RunHeader, []CycleRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return RunHeader{}, nil, fmt.Errorf("opening cycle log for reading: %w", err)
	}
	defer func() { _ = f.Close() }()

	var header RunHeader
	var records []CycleRecord
	first := true

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		if first {
			first = false
			var h RunHeader
			if err := json.Unmarshal(line, &h); err == nil && h.RunID != "" {
				header = h
				continue
			}
		}

		var rec CycleRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			continue // skip malformed lines
		}
		if matchesCycleFilter(rec, filter) {
			records = append(records, rec)
		}
	}

	if err := scanner.Err(); err != nil {
		return header, nil, fmt.Errorf("scanning cycle log: %w", err)
	}
	return header, records, nil
}

// matchesCycleFilter checks whether a record satisfies all filter criteria.
func matchesCycleFilter(rec CycleRecord, filter CycleFilter) bool {
	if filter.Event != "" {
		found := false
		for _, name := range rec.Events {
			if name == filter.Event {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if filter.MinSeverity > models.SeverityLowest {
		for _, a := range rec.Alerts {
			if a.Severity >= filter.MinSeverity {
				return true
			}
		}
		return false
	}
	return true
}
