package replay

import (
	"context"
	"fmt"

	"github.com/guiguan/caster"
	"github.com/npillmayer/deque"
	"github.com/npillmayer/deque/blocks"
)

// StepEvent reports the outcome of one operation.
type StepEvent struct {
	Op     Op
	Result string         // value read by pops, at, front and back
	Err    error          // error returned by the deque, if any
	Len    int            // length of the deque after the operation
	Sizes  []int          // block sizes after the operation
	Events []blocks.Event // structural changes caused by the operation
}

func (s StepEvent) String() string {
	if s.Err != nil {
		return fmt.Sprintf("%3d: %-16s error: %v", s.Op.Line, s.Op, s.Err)
	}
	if s.Result != "" {
		return fmt.Sprintf("%3d: %-16s = %s  n=%d %v", s.Op.Line, s.Op, s.Result, s.Len, s.Sizes)
	}
	return fmt.Sprintf("%3d: %-16s n=%d %v", s.Op.Line, s.Op, s.Len, s.Sizes)
}

// Player applies operations to a Deque[string].
//
// Subscribers receive messages of type StepEvent and blocks.Event. Structural
// events of an operation are published before its StepEvent.
type Player struct {
	d       *deque.Deque[string]
	cast    *caster.Caster // broadcaster for steps and structural events
	pending []blocks.Event // events of the current step
}

// NewPlayer creates a player for an empty deque with thresholds cfg. An
// observer set in cfg is called in addition to publishing.
func NewPlayer(ctx context.Context, cfg blocks.Config) (*Player, error) {
	p := &Player{cast: caster.New(ctx)}
	observer := cfg.Observer
	cfg.Observer = func(e blocks.Event) {
		p.pending = append(p.pending, e)
		p.cast.Pub(e)
		if observer != nil {
			observer(e)
		}
	}
	d, err := deque.NewWithConfig[string](cfg)
	if err != nil {
		p.cast.Close()
		return nil, err
	}
	p.d = d
	return p, nil
}

// Deque returns the deque the player operates on.
func (p *Player) Deque() *deque.Deque[string] {
	return p.d
}

// Subscribe returns a channel receiving all messages published from now on.
// capacity is the channel's buffer size; the player blocks on full buffers.
func (p *Player) Subscribe(ctx context.Context, capacity uint) (chan interface{}, bool) {
	return p.cast.Sub(ctx, capacity)
}

// Unsubscribe cancels a subscription.
func (p *Player) Unsubscribe(ch chan interface{}) bool {
	return p.cast.Unsub(ch)
}

// Close ends broadcasting; subscriber channels are closed.
func (p *Player) Close() {
	p.cast.Close()
}

// Run applies ops in order. Errors of single operations are recorded in
// their step and do not stop the run.
func (p *Player) Run(ops []Op) []StepEvent {
	steps := make([]StepEvent, 0, len(ops))
	for _, op := range ops {
		steps = append(steps, p.Step(op))
	}
	return steps
}

// Step applies a single operation and publishes its outcome.
func (p *Player) Step(op Op) StepEvent {
	p.pending = nil
	step := StepEvent{Op: op}
	step.Result, step.Err = p.apply(op)
	step.Len = p.d.Len()
	step.Sizes = p.d.BlockSizes()
	step.Events = p.pending
	p.pending = nil
	if step.Err != nil {
		tracer().Infof("line %d: %s failed: %v", op.Line, op, step.Err)
	} else {
		tracer().Debugf("line %d: %s", op.Line, op)
	}
	p.cast.Pub(step)
	return step
}

func (p *Player) apply(op Op) (string, error) {
	d := p.d
	switch op.Kind {
	case PushBack:
		d.PushBack(op.Value)
	case PushFront:
		d.PushFront(op.Value)
	case PopBack:
		return d.PopBack()
	case PopFront:
		return d.PopFront()
	case Front:
		return d.Front()
	case Back:
		return d.Back()
	case At:
		return d.At(op.Index)
	case Clear:
		d.Clear()
	case Insert:
		if op.Index < 0 || op.Index > d.Len() {
			return "", fmt.Errorf("%w: insert at %d, length %d", deque.ErrOutOfBounds, op.Index, d.Len())
		}
		_, err := d.Insert(d.Begin().Add(op.Index), op.Value)
		return "", err
	case Erase:
		pos := d.Begin()
		if !d.IsEmpty() {
			if op.Index < 0 || op.Index >= d.Len() {
				return "", fmt.Errorf("%w: erase at %d, length %d", deque.ErrOutOfBounds, op.Index, d.Len())
			}
			pos = pos.Add(op.Index)
		}
		_, err := d.Erase(pos)
		return "", err
	default:
		return "", fmt.Errorf("unknown operation %v", op.Kind)
	}
	return "", nil
}
