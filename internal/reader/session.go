// Package reader models the client-side state of a content detail view: the
// fetch lifecycle, reading progress, and the currently active heading. The
// computations are synchronous per scroll tick; no shared state crosses
// goroutines.
package reader

import (
	"time"

	"github.com/goliatone/go-sitecontent/content"
	"github.com/goliatone/go-sitecontent/internal/markdown"
)

// FetchState is the lifecycle of the record request backing a session.
type FetchState int

const (
	// StateLoading means the request is in flight; nothing to render yet.
	StateLoading FetchState = iota
	// StateError means the fetch failed or the record was not found; the
	// view offers an explicit reload, there is no automatic retry.
	StateError
	// StateLoaded means the record is available and scroll tracking is live.
	StateLoaded
)

func (s FetchState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateLoaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// activeThreshold is the viewport offset (in pixels) a heading must cross
// before it counts as the section currently being read.
const activeThreshold = 120.0

// defaultThrottle caps how often scroll ticks recompute state.
const defaultThrottle = 100 * time.Millisecond

// HeadingPosition reports where a heading's anchored element currently sits
// relative to the top of the viewport.
type HeadingPosition struct {
	ID  string
	Top float64
}

// ScrollMetrics is the per-tick snapshot of the scroll container.
type ScrollMetrics struct {
	// Top is the scroll offset relative to the content start.
	Top float64
	// ViewportHeight is the visible height of the scroll container.
	ViewportHeight float64
	// ContentHeight is the full height of the rendered content.
	ContentHeight float64
	// Headings are the current viewport offsets of every heading anchor.
	Headings []HeadingPosition
}

// Session tracks one content detail view from fetch to scroll state. It is
// not safe for concurrent use; the UI runtime delivers events serially.
type Session struct {
	slug     string
	state    FetchState
	record   *content.Record
	headings []content.Heading
	err      error

	tracking      bool
	activeHeading string
	progress      float64

	throttle time.Duration
	lastTick time.Time
}

// NewSession starts a session for slug in the loading state with zero
// progress.
func NewSession(slug string) *Session {
	return &Session{
		slug:     slug,
		state:    StateLoading,
		throttle: defaultThrottle,
	}
}

// Slug reports the record identifier this session was opened for.
func (s *Session) Slug() string { return s.slug }

// State reports the current fetch state.
func (s *Session) State() FetchState { return s.state }

// Record returns the loaded record, nil unless the state is loaded.
func (s *Session) Record() *content.Record { return s.record }

// Headings returns the table of contents extracted from the loaded record.
func (s *Session) Headings() []content.Heading { return s.headings }

// Err returns the failure behind an error state.
func (s *Session) Err() error { return s.err }

// ActiveHeading is the id of the section currently being read; empty before
// the first heading crosses the threshold.
func (s *Session) ActiveHeading() string { return s.activeHeading }

// Progress is the reading progress percentage in [0, 100].
func (s *Session) Progress() float64 { return s.progress }

// Complete delivers the fetch result. A completion for a different slug is
// stale (the user already navigated on) and is ignored, so an in-flight
// request that is superseded can never clobber the newer session.
func (s *Session) Complete(slug string, record *content.Record, err error) {
	if slug != s.slug || s.state != StateLoading {
		return
	}

	if err != nil || record == nil {
		if err == nil {
			err = &content.NotFoundError{Resource: "content", Key: slug}
		}
		s.state = StateError
		s.err = err
		s.tracking = false
		return
	}

	s.state = StateLoaded
	s.record = record
	s.headings = markdown.ExtractHeadings([]byte(record.Content))
	s.err = nil
	s.tracking = true
	s.progress = 0
	s.activeHeading = ""
}

// Reload puts an errored session back into the loading state so the caller
// can reissue the fetch.
func (s *Session) Reload() {
	if s.state != StateError {
		return
	}
	s.state = StateLoading
	s.err = nil
	s.record = nil
	s.headings = nil
	s.tracking = false
	s.progress = 0
	s.activeHeading = ""
}

// ScrollTick folds one scroll event into the session. Ticks arriving faster
// than the throttle interval, or before the record is loaded, are dropped.
// It reports whether the tick changed progress or the active heading.
func (s *Session) ScrollTick(now time.Time, m ScrollMetrics) bool {
	if !s.tracking || s.state != StateLoaded {
		return false
	}
	if !s.lastTick.IsZero() && now.Sub(s.lastTick) < s.throttle {
		return false
	}
	s.lastTick = now

	progress := readingProgress(m)
	active := activeHeadingID(m.Headings)

	changed := progress != s.progress || active != s.activeHeading
	s.progress = progress
	s.activeHeading = active
	return changed
}

// readingProgress maps the scroll offset onto a [0, 100] percentage. The
// denominator is clamped so documents shorter than the viewport report 0 at
// the top and 100 once scrolled, instead of dividing by zero.
func readingProgress(m ScrollMetrics) float64 {
	denom := m.ContentHeight - m.ViewportHeight
	if denom <= 0 {
		if m.Top > 0 {
			return 100
		}
		return 0
	}
	progress := m.Top / denom * 100
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

// activeHeadingID returns the last heading whose anchor crossed the viewport
// threshold, in the order the positions are supplied (document order).
func activeHeadingID(positions []HeadingPosition) string {
	active := ""
	for _, pos := range positions {
		if pos.Top <= activeThreshold {
			active = pos.ID
		}
	}
	return active
}
