// ABOUTME: Recording Notifier implementation for tests
// ABOUTME: Captures notifications in order so tests can assert exact counts

package notify

import "sync"

// Level classifies a recorded notification.
type Level string

// Notification levels.
const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Record is one captured notification.
type Record struct {
	Level   Level
	Message string
}

// Recorder captures notifications for assertions in tests.
type Recorder struct {
	mu      sync.Mutex
	records []Record
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Success(msg string) { r.append(LevelSuccess, msg) }
func (r *Recorder) Error(msg string)   { r.append(LevelError, msg) }
func (r *Recorder) Info(msg string)    { r.append(LevelInfo, msg) }

func (r *Recorder) append(level Level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, Record{Level: level, Message: msg})
}

// Records returns a copy of everything captured so far.
func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// ByLevel returns the messages captured at the given level.
func (r *Recorder) ByLevel(level Level) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, rec := range r.records {
		if rec.Level == level {
			out = append(out, rec.Message)
		}
	}
	return out
}

// Reset discards all captured notifications.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = nil
}
