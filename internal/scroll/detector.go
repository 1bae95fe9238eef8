// Package scroll turns viewport measurements into a "reached the bottom"
// signal for lists that load more content on demand.
package scroll

import (
	"math"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultPadding is how many rows from the bottom count as "at the end".
	DefaultPadding = 2
	// DefaultThrottle is the minimum spacing between two evaluations.
	DefaultThrottle = 200 * time.Millisecond
)

// Metrics describes a scrollable list in rows.
type Metrics struct {
	Offset   int // first visible row
	Viewport int // visible rows
	Content  int // total rows
}

// AtEnd reports whether the bottom of the content is within padding rows of
// the bottom of the viewport.
func AtEnd(m Metrics, padding int) bool {
	return m.Content-m.Offset-padding <= m.Viewport
}

// Detector reports the transition into the at-end zone. Checks closer together
// than the throttle window do not touch the edge state; the last of them is
// kept pending so the owner can run it again once the window has passed.
type Detector struct {
	padding int
	limiter *rate.Limiter
	now     func() time.Time
	atEnd   bool
	pending bool
	retryAt time.Time
}

// Option configures a Detector.
type Option func(*Detector)

// WithPadding overrides DefaultPadding.
func WithPadding(rows int) Option {
	return func(d *Detector) { d.padding = rows }
}

// WithThrottle overrides DefaultThrottle. Zero disables throttling.
func WithThrottle(every time.Duration) Option {
	return func(d *Detector) {
		if every <= 0 {
			d.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		d.limiter = rate.NewLimiter(rate.Every(every), 1)
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(d *Detector) { d.now = now }
}

// NewDetector returns a detector with the default padding and throttle.
func NewDetector(opts ...Option) *Detector {
	d := &Detector{
		padding: DefaultPadding,
		limiter: rate.NewLimiter(rate.Every(DefaultThrottle), 1),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Check evaluates m and returns true only when the list has just moved into
// the at-end zone.
func (d *Detector) Check(m Metrics) bool {
	if !d.limiter.AllowN(d.now(), 1) {
		d.pending = true
		return false
	}
	d.pending = false
	was := d.atEnd
	d.atEnd = AtEnd(m, d.padding)
	return d.atEnd && !was
}

// Retry reports how long to wait before checking again after a throttled
// Check. It returns false when nothing is pending or an earlier retry is
// still due.
func (d *Detector) Retry() (time.Duration, bool) {
	now := d.now()
	if !d.pending || now.Before(d.retryAt) {
		return 0, false
	}
	wait := d.wait(now)
	d.retryAt = now.Add(wait)
	return wait, true
}

// wait returns the time until the limiter has a token again.
func (d *Detector) wait(now time.Time) time.Duration {
	limit := d.limiter.Limit()
	if limit == rate.Inf || limit <= 0 {
		return 0
	}
	missing := 1 - d.limiter.TokensAt(now)
	if missing <= 0 {
		return 0
	}
	return time.Duration(math.Ceil(missing/float64(limit)*1000)) * time.Millisecond
}

// Reset forgets the edge state, so the next at-end check fires again. Call it
// after the content grows or the query changes.
func (d *Detector) Reset() {
	d.atEnd = false
}

// AtEnd reports the last evaluated state.
func (d *Detector) AtEnd() bool {
	return d.atEnd
}
