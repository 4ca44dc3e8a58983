package config

import (
	"fmt"
	"time"

	"noticeboard/internal/board"
	"noticeboard/pkg/logx"
)

type Config struct {
	Board   BoardConfig    `json:"board"`
	Logging LoggingConfig  `json:"logging"`
	Notices []NoticeConfig `json:"notices"`
}

// BoardConfig controls banner and activity-log behavior.
//
// DisplayDuration is a Go duration string (e.g. "15s", "1m"). Defaults
// (when fields are omitted/zero):
//   - display_duration: "15s"
//   - max_log_entries: 50
type BoardConfig struct {
	DisplayDuration string `json:"display_duration,omitempty"`
	MaxLogEntries   int    `json:"max_log_entries,omitempty"`
}

type LoggingConfig struct {
	Level   string          `json:"level,omitempty"`
	Console *bool           `json:"console,omitempty"`
	File    FileLogConfig   `json:"file,omitempty"`
	Board   BoardSinkConfig `json:"board,omitempty"`
}

type FileLogConfig struct {
	Enabled bool   `json:"enabled,omitempty"`
	Path    string `json:"path,omitempty"`
}

// BoardSinkConfig mirrors warn-and-above log records into the activity log.
type BoardSinkConfig struct {
	Enabled    bool   `json:"enabled,omitempty"`
	MinLevel   string `json:"min_level,omitempty"`
	RatePerSec int    `json:"rate_per_sec,omitempty"`
}

// NoticeConfig is one hand-authored notice. IDs are assigned manually and
// must be unique; list order is authoritative (first entry = most recent).
type NoticeConfig struct {
	ID         int    `json:"id"`
	Message    string `json:"message"`
	Importance string `json:"importance"`
	Timestamp  string `json:"timestamp"` // RFC 3339
}

// Validate checks the whole config. It is run on load and before a watched
// reload is committed.
func (c *Config) Validate() error {
	if _, err := c.BoardSettings(); err != nil {
		return err
	}
	if _, err := c.BoardNotices(); err != nil {
		return err
	}
	return nil
}

// BoardSettings converts the board section into board.Config.
func (c *Config) BoardSettings() (board.Config, error) {
	d, err := ParseDurationField("board.display_duration", c.Board.DisplayDuration)
	if err != nil {
		return board.Config{}, err
	}
	if c.Board.MaxLogEntries < 0 {
		return board.Config{}, fmt.Errorf("board.max_log_entries: must be >= 0")
	}
	return board.Config{
		DisplayDuration: d,
		MaxLogEntries:   c.Board.MaxLogEntries,
	}, nil
}

// BoardNotices converts and validates the notice list, preserving order.
func (c *Config) BoardNotices() ([]board.Notice, error) {
	seen := make(map[int]bool, len(c.Notices))
	out := make([]board.Notice, 0, len(c.Notices))
	for i, n := range c.Notices {
		path := fmt.Sprintf("notices[%d]", i)
		if n.Message == "" {
			return nil, fmt.Errorf("%s: message is required", path)
		}
		if seen[n.ID] {
			return nil, fmt.Errorf("%s: duplicate id %d", path, n.ID)
		}
		seen[n.ID] = true

		imp := board.Importance(n.Importance)
		if n.Importance != "" && !imp.Valid() {
			return nil, fmt.Errorf("%s: unknown importance %q", path, n.Importance)
		}

		ts, err := time.Parse(time.RFC3339, n.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid timestamp %q: %w", path, n.Timestamp, err)
		}

		out = append(out, board.Notice{
			ID:         n.ID,
			Message:    n.Message,
			Importance: imp,
			Timestamp:  ts,
		})
	}
	return out, nil
}

// LogSettings converts the logging section into logx.Config.
func (c *Config) LogSettings() logx.Config {
	console := true
	if c.Logging.Console != nil {
		console = *c.Logging.Console
	}
	return logx.Config{
		Level:   c.Logging.Level,
		Console: console,
		File: logx.FileConfig{
			Enabled: c.Logging.File.Enabled,
			Path:    c.Logging.File.Path,
		},
		Board: logx.BoardConfig{
			Enabled:    c.Logging.Board.Enabled,
			MinLevel:   c.Logging.Board.MinLevel,
			RatePerSec: c.Logging.Board.RatePerSec,
		},
	}
}

func ParseDurationField(path, raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", path, raw, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: duration must be >= 0", path)
	}
	return d, nil
}
