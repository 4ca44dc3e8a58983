package board

import "time"

// Importance classifies a notice or log entry and selects banner/log styling.
// Unknown values render without extra styling.
type Importance string

const (
	ImportanceInfo    Importance = "info"
	ImportanceWarning Importance = "warning"
	ImportanceUpdate  Importance = "update"
	ImportanceAlert   Importance = "alert"
)

func (i Importance) Valid() bool {
	switch i {
	case ImportanceInfo, ImportanceWarning, ImportanceUpdate, ImportanceAlert:
		return true
	}
	return false
}

// Notice is a static, pre-authored announcement. Notices are loaded once at
// startup and never created or deleted at runtime; list order is
// authoritative (index 0 is the most recent).
type Notice struct {
	ID         int
	Message    string
	Importance Importance
	Timestamp  time.Time
}

// LogEntry records a runtime event for operator visibility.
type LogEntry struct {
	At      time.Time
	Message string
	Type    Importance
}

const (
	defaultDisplayDuration = 15 * time.Second
	defaultMaxLogEntries   = 50
)

// Config controls banner and log behavior.
//
// Zero values fall back to defaults:
//   - display_duration: 15s
//   - max_log_entries: 50
type Config struct {
	DisplayDuration time.Duration
	MaxLogEntries   int
}

func (c Config) withDefaults() Config {
	if c.DisplayDuration <= 0 {
		c.DisplayDuration = defaultDisplayDuration
	}
	if c.MaxLogEntries <= 0 {
		c.MaxLogEntries = defaultMaxLogEntries
	}
	return c
}
