// Package ui renders the notice board in a terminal. It implements
// board.Surface over bubbletea: the manager mutates region state and the
// program is woken with a refresh message to redraw.
package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"noticeboard/internal/board"
)

var knownRegions = map[board.Region]bool{
	board.RegionBanner:     true,
	board.RegionBannerText: true,
	board.RegionDismiss:    true,
	board.RegionLog:        true,
}

// Surface holds the renderable state of the terminal "page". Safe for
// concurrent use; the board manager writes from its own goroutines while the
// program reads snapshots on redraw.
type Surface struct {
	mu      sync.Mutex
	text    map[board.Region]string
	styles  map[board.Region]string
	visible map[board.Region]bool
	lines   map[board.Region][]string
	dismiss func()

	notify func()
}

func NewSurface() *Surface {
	return &Surface{
		text:    map[board.Region]string{},
		styles:  map[board.Region]string{},
		visible: map[board.Region]bool{},
		lines:   map[board.Region][]string{},
	}
}

// attach wires the surface to a running program so mutations trigger redraws.
func (s *Surface) attach(p *tea.Program) {
	s.mu.Lock()
	s.notify = func() { p.Send(refreshMsg{}) }
	s.mu.Unlock()
}

func (s *Surface) refresh() {
	s.mu.Lock()
	notify := s.notify
	s.mu.Unlock()
	if notify != nil {
		notify()
	}
}

func (s *Surface) SetText(r board.Region, text string) error {
	if !knownRegions[r] {
		return board.ErrNoRegion
	}
	s.mu.Lock()
	s.text[r] = text
	s.mu.Unlock()
	s.refresh()
	return nil
}

func (s *Surface) SetStyle(r board.Region, style string) error {
	if !knownRegions[r] {
		return board.ErrNoRegion
	}
	s.mu.Lock()
	s.styles[r] = style
	s.mu.Unlock()
	s.refresh()
	return nil
}

func (s *Surface) SetVisible(r board.Region, visible bool) error {
	if !knownRegions[r] {
		return board.ErrNoRegion
	}
	s.mu.Lock()
	s.visible[r] = visible
	s.mu.Unlock()
	s.refresh()
	return nil
}

func (s *Surface) AppendLine(r board.Region, line string) error {
	if !knownRegions[r] {
		return board.ErrNoRegion
	}
	s.mu.Lock()
	s.lines[r] = append(s.lines[r], line)
	s.mu.Unlock()
	s.refresh()
	return nil
}

func (s *Surface) Clear(r board.Region) error {
	if !knownRegions[r] {
		return board.ErrNoRegion
	}
	s.mu.Lock()
	s.lines[r] = nil
	s.mu.Unlock()
	s.refresh()
	return nil
}

func (s *Surface) BindDismiss(fn func()) error {
	s.mu.Lock()
	s.dismiss = fn
	s.mu.Unlock()
	return nil
}

func (s *Surface) fireDismiss() {
	s.mu.Lock()
	fn := s.dismiss
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

type snapshot struct {
	bannerVisible bool
	bannerStyle   string
	bannerText    string
	logLines      []string
}

func (s *Surface) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot{
		bannerVisible: s.visible[board.RegionBanner],
		bannerStyle:   s.styles[board.RegionBanner],
		bannerText:    s.text[board.RegionBannerText],
		logLines:      append([]string(nil), s.lines[board.RegionLog]...),
	}
}
