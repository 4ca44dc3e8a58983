package logx

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newBoardService(t *testing.T, cfg Config) (*Service, Logger, chan string) {
	t.Helper()
	svc, log := New(cfg)
	t.Cleanup(func() { _ = svc.Close() })

	got := make(chan string, 16)
	svc.SetBoardSink(func(level, msg string) {
		got <- level + ": " + msg
	})
	return svc, log, got
}

func waitMsg(t *testing.T, ch chan string) string {
	t.Helper()
	select {
	case s := <-ch:
		return s
	case <-time.After(2 * time.Second):
		t.Fatalf("no board sink message")
		return ""
	}
}

func TestBoardSinkForwardsWarnings(t *testing.T) {
	_, log, got := newBoardService(t, Config{
		Level: "debug",
		Board: BoardConfig{Enabled: true, MinLevel: "warn", RatePerSec: 100},
	})

	log.Warn("render skipped", String("region", "log"))

	msg := waitMsg(t, got)
	if !strings.HasPrefix(msg, "warn: render skipped") {
		t.Fatalf("unexpected sink message %q", msg)
	}
	if !strings.Contains(msg, "region=log") {
		t.Fatalf("field missing from sink message %q", msg)
	}
}

func TestBoardSinkSkipsBelowMinLevel(t *testing.T) {
	_, log, got := newBoardService(t, Config{
		Level: "debug",
		Board: BoardConfig{Enabled: true, MinLevel: "warn", RatePerSec: 100},
	})

	log.Info("routine")
	log.Error("broken")

	msg := waitMsg(t, got)
	if !strings.HasPrefix(msg, "error: broken") {
		t.Fatalf("expected only the error record, got %q", msg)
	}
}

func TestBoardSinkRateLimited(t *testing.T) {
	_, log, got := newBoardService(t, Config{
		Level: "debug",
		Board: BoardConfig{Enabled: true, MinLevel: "warn", RatePerSec: 2},
	})

	for i := 0; i < 5; i++ {
		log.Warn("spam")
	}

	// Burst is 2: the first two pass, the rest are dropped.
	waitMsg(t, got)
	waitMsg(t, got)
	select {
	case msg := <-got:
		t.Fatalf("rate limiter let extra record through: %q", msg)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestFormatBoardJSONFallback(t *testing.T) {
	if got := formatBoardJSON([]byte("not json\n")); got != "not json" {
		t.Fatalf("raw fallback = %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	if parseLevel(" WARN ", zerolog.InfoLevel) != zerolog.WarnLevel {
		t.Fatalf("WARN not parsed")
	}
	if parseLevel("bogus", zerolog.InfoLevel) != zerolog.InfoLevel {
		t.Fatalf("default not used for unknown level")
	}
}

func TestNopLoggerIsSafe(t *testing.T) {
	log := Nop()
	log.Info("ignored", Int("n", 1))
	log = log.With(String("component", "test"))
	log.Error("still ignored", Err(nil))
	if log.IsZero() {
		t.Fatalf("derived logger should not be zero")
	}
}
