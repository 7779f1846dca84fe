// internal/visualizer/pipeline.go
package visualizer

import (
	"fmt"

	"go-hex-tactics/internal/core"
	"go-hex-tactics/internal/event"
	"go-hex-tactics/internal/scene"
	"go-hex-tactics/pkg/hexmap"
	"go-hex-tactics/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Pipeline plays events strictly one at a time, in the order they were pushed.
// Event N+1 is not touched before event N has finished and been committed, so
// animations never interleave and the game state sees commits in decision order.
type Pipeline struct {
	geom       *hexmap.Geom
	scene      *scene.Index
	state      *core.State
	dispatcher *event.Dispatcher
	queue      []*Event
	committed  int
	log        *logrus.Entry
}

// NewPipeline creates an empty pipeline. dispatcher may be nil.
func NewPipeline(geom *hexmap.Geom, ix *scene.Index, st *core.State, dispatcher *event.Dispatcher) *Pipeline {
	return &Pipeline{
		geom:       geom,
		scene:      ix,
		state:      st,
		dispatcher: dispatcher,
		log:        logger.For("visualizer"),
	}
}

// Push appends an event to the queue.
func (p *Pipeline) Push(e *Event) {
	p.queue = append(p.queue, e)
	p.log.WithFields(logrus.Fields{
		"kind":    e.Kind.String(),
		"unit":    e.Unit,
		"pending": len(p.queue),
	}).Debug("event queued")
}

// Len is the number of events not committed yet, the active one included.
func (p *Pipeline) Len() int { return len(p.queue) }

// Idle reports whether there is nothing to play.
func (p *Pipeline) Idle() bool { return len(p.queue) == 0 }

// Committed is the number of events retired so far.
func (p *Pipeline) Committed() int { return p.committed }

// Active returns the event at the head of the queue, if it has started.
func (p *Pipeline) Active() (*Event, bool) {
	if len(p.queue) == 0 || p.queue[0].status == Pending {
		return nil, false
	}
	return p.queue[0], true
}

// Tick runs one frame: the head event becomes active, is advanced once if its
// animation is not over, and is committed and dropped as soon as it is finished.
// No other event is touched in the same frame. A returned error means the scene
// and the game state disagree; the head event is left in the queue.
func (p *Pipeline) Tick() error {
	if len(p.queue) == 0 {
		return nil
	}
	head := p.queue[0]
	head.activate()
	if !head.IsFinished() {
		if err := head.Advance(p.geom, p.scene); err != nil {
			return err
		}
	}
	if !head.IsFinished() {
		return nil
	}
	if err := head.Commit(p.geom, p.scene, p.state); err != nil {
		return fmt.Errorf("commit %v event: %w", head.Kind, err)
	}
	p.queue[0] = nil
	p.queue = p.queue[1:]
	p.committed++
	p.log.WithFields(logrus.Fields{
		"kind":   head.Kind.String(),
		"unit":   head.Unit,
		"frames": head.TotalFrames(),
	}).Debug("event committed")
	p.notify(head)
	return nil
}

// Flush ticks until the queue is empty or maxFrames frames were played.
// It returns the number of frames played.
func (p *Pipeline) Flush(maxFrames int) (int, error) {
	frames := 0
	for !p.Idle() && frames < maxFrames {
		if err := p.Tick(); err != nil {
			return frames, err
		}
		frames++
	}
	return frames, nil
}

func (p *Pipeline) notify(e *Event) {
	if p.dispatcher == nil {
		return
	}
	var t event.EventType
	switch e.Kind {
	case KindMove:
		t = event.UnitMoved
	case KindCreateUnit:
		t = event.UnitCreated
	case KindEndTurn:
		t = event.TurnEnded
	}
	p.dispatcher.Dispatch(event.Event{Type: t, Data: e.ToCore()})
}
