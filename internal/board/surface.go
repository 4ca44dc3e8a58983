package board

import "errors"

// Region addresses a renderable element of the surface.
type Region string

const (
	RegionBanner     Region = "banner"
	RegionBannerText Region = "banner_text"
	RegionDismiss    Region = "dismiss"
	RegionLog        Region = "log"
)

// ErrNoRegion is returned by Surface methods when the addressed region is
// not present. The manager logs it and skips the dependent rendering step;
// it never aborts an operation.
var ErrNoRegion = errors.New("surface region not present")

// Surface is the minimal rendering capability set the manager needs.
// Implementations own the actual presentation (a terminal view in this repo,
// a fake in tests) and must be safe to call from the manager's goroutines.
type Surface interface {
	// SetText replaces the text content of a region.
	SetText(r Region, text string) error
	// SetStyle replaces the style class of a region. An empty style clears it.
	SetStyle(r Region, style string) error
	// SetVisible shows or hides a region.
	SetVisible(r Region, visible bool) error
	// AppendLine appends one line to a list-like region.
	AppendLine(r Region, line string) error
	// Clear removes all lines from a list-like region.
	Clear(r Region) error
	// BindDismiss registers fn to run when the dismiss control is activated.
	BindDismiss(fn func()) error
}
