// Package board implements the notice/log manager: a static, ordered list of
// notices shown one at a time in a dismissible banner, plus a capped rolling
// activity log re-rendered into the log region on every change.
package board

import (
	"fmt"
	"sync"
	"time"

	"noticeboard/internal/eventbus"
	"noticeboard/pkg/logx"
)

const (
	noticeTimeFormat = "2006-01-02 15:04"
	entryTimeFormat  = "15:04:05"
)

// Manager owns the banner and the activity log. All state lives on the
// struct; there are no package globals.
//
// It is safe for concurrent use: mutation arrives from the UI event path,
// the hide timer and the config-watch goroutine.
type Manager struct {
	mu sync.Mutex

	log     logx.Logger
	surface Surface
	sched   Scheduler
	bus     *eventbus.Bus

	cfg Config
	now func() time.Time

	notices []Notice
	entries []LogEntry

	current    *Notice
	cancelHide func()
}

// New builds a manager over the given surface. notices must be ordered
// newest-first; the slice is copied. sched may be nil, in which case a
// time.AfterFunc scheduler is used.
func New(cfg Config, notices []Notice, surface Surface, sched Scheduler, log logx.Logger, bus *eventbus.Bus) *Manager {
	if sched == nil {
		sched = NewScheduler()
	}
	return &Manager{
		log:     log,
		surface: surface,
		sched:   sched,
		bus:     bus,
		cfg:     cfg.withDefaults(),
		now:     time.Now,
		notices: append([]Notice(nil), notices...),
	}
}

// Apply swaps runtime settings. The notice list is fixed for the life of the
// process; only duration and log cap change. Shrinking the cap evicts the
// oldest entries immediately.
func (m *Manager) Apply(cfg Config) {
	m.mu.Lock()
	m.cfg = cfg.withDefaults()
	if len(m.entries) > m.cfg.MaxLogEntries {
		m.entries = m.entries[:m.cfg.MaxLogEntries]
	}
	m.mu.Unlock()
}

// Init brings the board up: startup log entry, newest notice (when there is
// one), a full log render and the dismiss binding. Missing surface regions
// degrade to diagnostics; Init never fails.
func (m *Manager) Init() {
	m.AppendLog("Notice board started", ImportanceInfo)

	if ns := m.Notices(); len(ns) > 0 {
		m.Display(ns[0])
	} else {
		m.log.Info("no notices available")
		m.AppendLog("No notices available", ImportanceInfo)
	}

	m.RenderLog()

	if err := m.surface.BindDismiss(m.Hide); err != nil {
		m.log.Warn("dismiss control missing", logx.Err(err))
	}

	m.log.Info("notice board ready", logx.Int("notices", len(m.Notices())))
}

// Display shows n in the banner, restarts the auto-hide timer and records a
// log entry. A pending timer from an earlier Display is cancelled first, so
// at most one timer is ever live.
func (m *Manager) Display(n Notice) {
	m.mu.Lock()
	if m.cancelHide != nil {
		m.cancelHide()
	}
	cur := n
	m.current = &cur
	m.cancelHide = m.sched.AfterFunc(m.cfg.DisplayDuration, m.Hide)
	m.mu.Unlock()

	if err := m.surface.SetText(RegionBannerText, n.Message); err != nil {
		m.log.Warn("banner text region missing; skipping banner", logx.Err(err), logx.Int("notice_id", n.ID))
	} else {
		style := ""
		if n.Importance.Valid() {
			style = string(n.Importance)
		}
		if err := m.surface.SetStyle(RegionBanner, style); err != nil {
			m.log.Warn("banner region missing for style", logx.Err(err))
		}
		if err := m.surface.SetVisible(RegionBanner, true); err != nil {
			m.log.Warn("banner region missing for show", logx.Err(err))
		}
	}

	m.publish("notice.shown", n)
	m.AppendLog("Displaying notice: "+n.Message, n.Importance)
}

// Hide dismisses the banner and cancels any pending hide timer. Both the
// timer and the user dismiss control converge here; hiding an already-hidden
// banner is a no-op.
func (m *Manager) Hide() {
	m.mu.Lock()
	if m.cancelHide != nil {
		m.cancelHide()
		m.cancelHide = nil
	}
	cur := m.current
	m.current = nil
	m.mu.Unlock()

	if cur == nil {
		return
	}

	if err := m.surface.SetVisible(RegionBanner, false); err != nil {
		m.log.Warn("banner region missing for hide", logx.Err(err))
	}

	m.publish("notice.hidden", *cur)
	m.AppendLog("Notice dismissed: "+cur.Message, ImportanceInfo)
}

// AppendLog records a runtime event at the front of the log, evicts past the
// cap and re-renders the log region. An unknown type defaults to info.
func (m *Manager) AppendLog(message string, typ Importance) {
	if !typ.Valid() {
		typ = ImportanceInfo
	}
	e := LogEntry{At: m.now(), Message: message, Type: typ}

	m.mu.Lock()
	m.entries = append([]LogEntry{e}, m.entries...)
	if len(m.entries) > m.cfg.MaxLogEntries {
		m.entries = m.entries[:m.cfg.MaxLogEntries]
	}
	m.mu.Unlock()

	m.publish("log.appended", e)
	m.RenderLog()
}

// RenderLog clears and rebuilds the log region: all static notices in list
// order under one header, then the runtime entries newest-first under
// another. A missing log region is a diagnostic, not an error.
func (m *Manager) RenderLog() {
	m.mu.Lock()
	notices := append([]Notice(nil), m.notices...)
	entries := append([]LogEntry(nil), m.entries...)
	m.mu.Unlock()

	if err := m.surface.Clear(RegionLog); err != nil {
		m.log.Warn("log region missing; skipping render", logx.Err(err))
		return
	}

	line := func(s string) {
		_ = m.surface.AppendLine(RegionLog, s)
	}

	line("Notices")
	if len(notices) == 0 {
		line("  (none)")
	}
	for _, n := range notices {
		line("  " + formatNotice(n))
	}
	line("Activity")
	for _, e := range entries {
		line("  " + e.At.Format(entryTimeFormat) + " " + e.Message)
	}
}

func formatNotice(n Notice) string {
	if n.Importance.Valid() {
		return fmt.Sprintf("%s [%s] %s", n.Timestamp.Format(noticeTimeFormat), n.Importance, n.Message)
	}
	return fmt.Sprintf("%s %s", n.Timestamp.Format(noticeTimeFormat), n.Message)
}

// Notices returns a copy of the static notice list, newest first.
func (m *Manager) Notices() []Notice {
	m.mu.Lock()
	out := append([]Notice(nil), m.notices...)
	m.mu.Unlock()
	return out
}

// Entries returns a copy of the runtime log, newest first.
func (m *Manager) Entries() []LogEntry {
	m.mu.Lock()
	out := append([]LogEntry(nil), m.entries...)
	m.mu.Unlock()
	return out
}

// Current returns the notice shown in the banner, or false when hidden.
func (m *Manager) Current() (Notice, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return Notice{}, false
	}
	return *m.current, true
}

func (m *Manager) publish(typ string, data any) {
	if m.bus == nil {
		return
	}
	m.bus.Publish(eventbus.Event{Type: typ, Data: data})
}
