package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// LogEntry is a single decoded event.
type LogEntry struct {
	TimestampMicros int64
	SessionID       string
	Event           string
	Fields          map[string]interface{}
}

// GetString returns a string field or "" if it's missing.
func (le *LogEntry) GetString(name string) string {
	if v, ok := le.Fields[name].(string); ok {
		return v
	}
	return ""
}

// ReadJSONLinesLog parses a newline delimited JSON log.
func ReadJSONLinesLog(r io.Reader, handler func(le *LogEntry)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var rawEntry json.RawMessage
		if err := decoder.Decode(&rawEntry); err != nil {
			return err
		}

		var entry structpb.Struct
		if err := protojson.Unmarshal(rawEntry, &entry); err != nil {
			return err
		}

		fields := entry.AsMap()
		le := &LogEntry{Fields: make(map[string]interface{})}
		for k, v := range fields {
			switch k {
			case fieldTimestamp:
				if ts, ok := v.(float64); ok {
					le.TimestampMicros = int64(ts)
				}
			case fieldSessionID:
				le.SessionID, _ = v.(string)
			case fieldEvent:
				le.Event, _ = v.(string)
			default:
				le.Fields[k] = v
			}
		}

		handler(le)
	}
	return nil
}

// Report holds statistics about the logged events.
type Report struct {
	LogEntries     int        `json:"log_entries"`
	InvalidEntries StrCounter `json:"unknown_log_entries,omitempty"`

	Sessions          StrCounter              `json:"sessions"`
	Totals            Totals                  `json:"totals"`
	RunCommand        RunCommandReport        `json:"run_command_report"`
	UnknownCommand    UnknownCommandReport    `json:"unknown_command_report"`
	InvalidInvocation InvalidInvocationReport `json:"invalid_invocation_report"`
	Assignment        AssignmentReport        `json:"assignment_report"`
	Script            ScriptReport            `json:"script_report"`
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{
		InvalidInvocation: InvalidInvocationReport{
			Errors: NewPathCounter("command", "error"),
		},
	}
}

// Update adds an entry to the report.
func (r *Report) Update(le *LogEntry) {
	r.LogEntries++
	if le.SessionID != "" {
		r.Sessions.Increment(le.SessionID)
	}

	switch le.Event {
	case EventRunCommand:
		r.Totals.Commands++
		r.RunCommand.update(le)
	case EventUnknownCommand:
		r.Totals.UnknownCommands++
		r.UnknownCommand.update(le)
	case EventInvalidInvocation:
		r.Totals.Commands++
		r.Totals.Failures++
		if r.InvalidInvocation.Errors == nil {
			r.InvalidInvocation.Errors = NewPathCounter("command", "error")
		}
		r.InvalidInvocation.update(le)
	case EventAssignment:
		r.Totals.Assignments++
		r.Assignment.update(le)
	case EventScript:
		r.Totals.Scripts++
		r.Script.update(le)
	default:
		r.InvalidEntries.Increment(fmt.Sprintf("%q", le.Event))
	}
}

// Totals counts events by kind. Commands includes failed invocations.
type Totals struct {
	Commands        int `json:"commands"`
	Failures        int `json:"failures"`
	UnknownCommands int `json:"unknown_commands"`
	Assignments     int `json:"assignments"`
	Scripts         int `json:"scripts"`
}

// FailureRate is the fraction of command invocations that failed.
func (t Totals) FailureRate() float64 {
	if t.Commands == 0 {
		return 0
	}
	return float64(t.Failures) / float64(t.Commands)
}

// ForSession passes only the entries of one session on to handler. An empty
// id passes everything.
func ForSession(id string, handler func(le *LogEntry)) func(le *LogEntry) {
	if id == "" {
		return handler
	}
	return func(le *LogEntry) {
		if le.SessionID == id {
			handler(le)
		}
	}
}

type RunCommandReport struct {
	// Name of the command
	CommandNames StrCounter `json:"command_names"`
	// Commands whose result was stored in a variable.
	StoredResults int `json:"stored_results"`
}

func (r *RunCommandReport) update(le *LogEntry) {
	r.CommandNames.Increment(le.GetString("command"))
	if le.GetString("target") != "" {
		r.StoredResults++
	}
}

type UnknownCommandReport struct {
	CommandNames StrCounter `json:"command_names"`
}

func (r *UnknownCommandReport) update(le *LogEntry) {
	r.CommandNames.Increment(le.GetString("command"))
}

type InvalidInvocationReport struct {
	Errors *PathCounter `json:"errors"`
}

func (r *InvalidInvocationReport) update(le *LogEntry) {
	r.Errors.Increment(le.GetString("command"), le.GetString("error"))
}

type AssignmentReport struct {
	Variables StrCounter `json:"variables"`
}

func (r *AssignmentReport) update(le *LogEntry) {
	r.Variables.Increment(le.GetString("target"))
}

type ScriptReport struct {
	Files StrCounter `json:"files"`
}

func (r *ScriptReport) update(le *LogEntry) {
	r.Files.Increment(le.GetString("file"))
}

// StrCounter counts the number of strings seen.
type StrCounter struct {
	internal map[string]int
}

// Increment adds one to the given key.
func (s *StrCounter) Increment(toAdd string) {
	if s.internal == nil {
		s.internal = make(map[string]int)
	}

	s.internal[toAdd]++
}

// Get returns the count for the key.
func (s *StrCounter) Get(key string) int {
	return s.internal[key]
}

// Len returns the number of distinct keys.
func (s *StrCounter) Len() int {
	return len(s.internal)
}

// MarshalJSON implemnts custom JSON marshaler.
func (s StrCounter) MarshalJSON() ([]byte, error) {
	if s.internal == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s.internal)
}

func NewPathCounter(cols ...string) *PathCounter {
	return &PathCounter{
		cols:     cols,
		internal: make(map[string]int),
	}
}

// PathCounter counts the number of string tuples seen.
type PathCounter struct {
	cols     []string
	internal map[string]int
}

// Increment adds one to the given key.
func (ctr *PathCounter) Increment(toAdd ...string) {
	if len(toAdd) != len(ctr.cols) {
		panic("wrong number of columns to add")
	}

	ctr.internal[toKey(toAdd...)]++
}

// Get returns the count for the tuple.
func (ctr *PathCounter) Get(vals ...string) int {
	return ctr.internal[toKey(vals...)]
}

// MarshalJSON implemnts custom JSON marshaler.
func (ctr *PathCounter) MarshalJSON() ([]byte, error) {
	type Count struct {
		Count  int               `json:"count"`
		Fields map[string]string `json:"event"`
		Path   string            `json:"-"`
	}

	out := []Count{}
	for k, v := range ctr.internal {
		count := Count{
			Count:  v,
			Path:   k,
			Fields: make(map[string]string),
		}

		splitPath := fromKey(k)
		for colNum, colVal := range ctr.cols {
			count.Fields[colVal] = splitPath[colNum]
		}

		out = append(out, count)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Path < out[j].Path
		}
		return out[i].Count > out[j].Count
	})

	return json.Marshal(out)
}

func toKey(vals ...string) string {
	key, _ := json.Marshal(vals)
	return string(key)
}

func fromKey(key string) (out []string) {
	json.Unmarshal([]byte(key), &out)
	return
}
