package logger

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Event types written by the interpreter.
const (
	EventRunCommand        = "run_command"
	EventUnknownCommand    = "unknown_command"
	EventInvalidInvocation = "invalid_invocation"
	EventAssignment        = "assignment"
	EventScript            = "script"
)

const (
	fieldTimestamp = "timestamp_micros"
	fieldSessionID = "session_id"
	fieldEvent     = "event"
)

// LogRecorder is a callback that stores events in an external datastore.
type LogRecorder func(le *structpb.Struct) error

// Logger captures interpreter events so sessions can be audited later.
type Logger struct {
	Record LogRecorder
	// Now is the time source, time.Now if nil.
	Now func() time.Time
}

// NewJsonLinesLogRecorder creates a Logger that exports logs in newline
// delimited JSON object format.
func NewJsonLinesLogRecorder(w io.Writer) *Logger {
	return &Logger{
		Record: func(le *structpb.Struct) error {
			entry, err := protojson.Marshal(le)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(entry))
			return err
		},
	}
}

func (l *Logger) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

func (l *Logger) recordEvent(sessionID, event string, fields map[string]interface{}) error {
	values := map[string]interface{}{
		fieldTimestamp: l.now().UnixMicro(),
		fieldSessionID: sessionID,
		fieldEvent:     event,
	}
	for k, v := range fields {
		values[k] = v
	}

	le, err := structpb.NewStruct(values)
	if err != nil {
		return err
	}

	return l.Record(le)
}

// NewSession creates a logger with attached session ID.
func (l *Logger) NewSession() *SessionLogger {
	return &SessionLogger{Logger: l, sessionID: uuid.NewString()}
}

// Sessionless creates a logger without a session ID.
func (l *Logger) Sessionless() *SessionLogger {
	return &SessionLogger{Logger: l, sessionID: ""}
}

// SessionLogger logs messages with a shared session ID.
type SessionLogger struct {
	*Logger
	sessionID string
}

// SessionID returns the ID attached to every event.
func (l *SessionLogger) SessionID() string {
	return l.sessionID
}

// Record stores an event with its fields. Field values must be JSON
// compatible: strings, numbers, booleans, lists or maps.
func (l *SessionLogger) Record(event string, fields map[string]interface{}) error {
	return l.recordEvent(l.sessionID, event, fields)
}

// NopRecorder discards every event.
type NopRecorder struct{}

// Record implements the recorder interface.
func (NopRecorder) Record(string, map[string]interface{}) error {
	return nil
}
