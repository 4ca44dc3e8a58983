package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"noticeboard/internal/board"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const validYAML = `
board:
  display_duration: "10s"
  max_log_entries: 20
logging:
  level: debug
  console: true
notices:
  - id: 2
    message: "B"
    importance: warning
    timestamp: "2026-08-20T09:00:00Z"
  - id: 1
    message: "A"
    importance: info
    timestamp: "2026-08-10T08:00:00Z"
`

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "nb.yaml", validYAML)

	m := NewManager(path)
	cfg, err := m.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	bc, err := cfg.BoardSettings()
	if err != nil {
		t.Fatalf("BoardSettings: %v", err)
	}
	if bc.DisplayDuration != 10*time.Second || bc.MaxLogEntries != 20 {
		t.Fatalf("unexpected board settings: %+v", bc)
	}

	notices, err := cfg.BoardNotices()
	if err != nil {
		t.Fatalf("BoardNotices: %v", err)
	}
	want := []board.Notice{
		{ID: 2, Message: "B", Importance: board.ImportanceWarning, Timestamp: time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)},
		{ID: 1, Message: "A", Importance: board.ImportanceInfo, Timestamp: time.Date(2026, 8, 10, 8, 0, 0, 0, time.UTC)},
	}
	if diff := cmp.Diff(want, notices); diff != "" {
		t.Fatalf("notices mismatch (-want +got):\n%s", diff)
	}

	if got := m.Get(); got != cfg {
		t.Fatalf("Get() did not return committed config")
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, "nb.json", `{"board":{"display_duration":"5s"},"notices":[]}`)

	cfg, err := NewManager(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	bc, _ := cfg.BoardSettings()
	if bc.DisplayDuration != 5*time.Second {
		t.Fatalf("display duration = %v, want 5s", bc.DisplayDuration)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, "nb.yaml", "board:\n  bogus_key: 1\n")

	if _, err := NewManager(path).Load(); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestValidateFailures(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "duplicate id",
			yaml: `notices:
  - {id: 1, message: "a", importance: info, timestamp: "2026-08-10T08:00:00Z"}
  - {id: 1, message: "b", importance: info, timestamp: "2026-08-11T08:00:00Z"}`,
			want: "duplicate id",
		},
		{
			name: "unknown importance",
			yaml: `notices:
  - {id: 1, message: "a", importance: critical, timestamp: "2026-08-10T08:00:00Z"}`,
			want: "unknown importance",
		},
		{
			name: "bad timestamp",
			yaml: `notices:
  - {id: 1, message: "a", importance: info, timestamp: "yesterday"}`,
			want: "invalid timestamp",
		},
		{
			name: "empty message",
			yaml: `notices:
  - {id: 1, message: "", importance: info, timestamp: "2026-08-10T08:00:00Z"}`,
			want: "message is required",
		},
		{
			name: "bad duration",
			yaml: `board: {display_duration: "soon"}`,
			want: "invalid duration",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, "nb.yaml", tc.yaml)
			_, err := NewManager(path).Load()
			if err == nil {
				t.Fatalf("expected error containing %q", tc.want)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not contain %q", err, tc.want)
			}
		})
	}
}

func TestEmptyImportanceAllowed(t *testing.T) {
	path := writeConfig(t, "nb.yaml", `notices:
  - {id: 1, message: "plain", timestamp: "2026-08-10T08:00:00Z"}`)

	cfg, err := NewManager(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	notices, err := cfg.BoardNotices()
	if err != nil {
		t.Fatalf("BoardNotices: %v", err)
	}
	if notices[0].Importance.Valid() {
		t.Fatalf("expected no importance, got %q", notices[0].Importance)
	}
}

func TestSubscribePublishDropsOldest(t *testing.T) {
	m := NewManager("unused")
	ch := m.Subscribe(1)
	defer m.Unsubscribe(ch)

	a, b := &Config{}, &Config{Board: BoardConfig{MaxLogEntries: 1}}
	m.publish(a)
	m.publish(b)

	got := <-ch
	if got != b {
		t.Fatalf("expected newest config to win, got oldest")
	}
}

func TestLogSettingsDefaultsConsoleOn(t *testing.T) {
	cfg := &Config{}
	if !cfg.LogSettings().Console {
		t.Fatalf("console should default to enabled")
	}

	off := false
	cfg.Logging.Console = &off
	if cfg.LogSettings().Console {
		t.Fatalf("explicit console=false ignored")
	}
}
