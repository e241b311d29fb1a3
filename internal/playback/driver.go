package playback

import (
	"context"
	"time"

	"github.com/san-kum/atomviz/internal/atom"
	"github.com/san-kum/atomviz/internal/scene"
	"github.com/sirupsen/logrus"
)

// DefaultInterval is the time each frame stays on screen.
const DefaultInterval = 3000 * time.Millisecond

// Driver loops through a fixed sequence of models, redrawing the surface each
// time the frame index advances. It is not safe for concurrent use; the host
// loop that owns the surface is its only caller.
type Driver struct {
	models   []atom.Model
	surface  scene.Surface
	interval time.Duration
	timer    *Timer
	index    int
	log      logrus.FieldLogger
}

// New builds a driver on frame 0 and renders that frame.
func New(models []atom.Model, surface scene.Surface, interval time.Duration, log logrus.FieldLogger) (*Driver, error) {
	if len(models) == 0 {
		return nil, ErrNoModels
	}
	if surface == nil {
		return nil, ErrNoSurface
	}
	timer, err := NewTimer(interval)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	d := &Driver{
		models:   models,
		surface:  surface,
		interval: interval,
		timer:    timer,
		log:      log,
	}
	d.Render()
	return d, nil
}

func (d *Driver) Index() int               { return d.index }
func (d *Driver) Len() int                 { return len(d.models) }
func (d *Driver) Current() atom.Model      { return d.models[d.index] }
func (d *Driver) Interval() time.Duration  { return d.interval }
func (d *Driver) Progress() float64        { return d.timer.Progress() }
func (d *Driver) Remaining() time.Duration { return d.timer.Remaining() }

// Render redraws the current frame onto a cleared surface.
func (d *Driver) Render() {
	m := d.Current()
	atom.Render(d.surface, m)
	d.log.WithFields(logrus.Fields{
		"frame": d.index,
		"model": m.Name(),
	}).Debug("frame rendered")
}

// Advance moves to the next frame, wrapping after the last, and renders it.
func (d *Driver) Advance() {
	d.skip(1)
}

// Elapse feeds wall-clock time from a render loop. It reports whether the
// frame changed. Several intervals passing at once skip straight to the
// frame they land on and render it once.
func (d *Driver) Elapse(dt time.Duration) bool {
	n := d.timer.Elapse(dt)
	if n == 0 {
		return false
	}
	d.skip(n)
	return true
}

// Run advances once per value received on ticks until ctx is done or limit
// advances have happened. A limit of zero or less runs until ctx is done.
// It returns the number of advances made.
func (d *Driver) Run(ctx context.Context, ticks <-chan time.Time, limit int) (int, error) {
	advances := 0
	for limit <= 0 || advances < limit {
		select {
		case <-ctx.Done():
			return advances, ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				return advances, nil
			}
			d.Advance()
			advances++
		}
	}
	return advances, nil
}

func (d *Driver) skip(n int) {
	prev := d.index
	d.index = (d.index + n) % len(d.models)
	d.log.WithFields(logrus.Fields{
		"from": prev,
		"to":   d.index,
	}).Debug("frame advanced")
	d.Render()
}
