package recording

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/anchormark"
)

// ErrLimitExceeded is returned by a Recorder configured WithLimit once the
// limit of recorded primitives is reached.
var ErrLimitExceeded = errors.New("recording: primitive limit exceeded")

// Recorder captures annotation primitives as commands.
// It implements anchormark.Surface. Use FinishRecording to obtain
// an immutable Recording that can be replayed to different backends.
//
// Example:
//
//	rec := recording.NewRecorder(recording.WithLimit(100000))
//	r := anchormark.NewRenderer(rec, params)
//	tally, err := r.Annotate(items)
//	recording := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands  []Command
	bounds    anchormark.Box
	hasBounds bool
	limit     int
}

var _ anchormark.Surface = (*Recorder)(nil)

// RecorderOption configures a Recorder during creation.
type RecorderOption func(*Recorder)

// WithLimit caps the number of primitives the Recorder accepts.
// Zero or a negative limit means no cap.
func WithLimit(n int) RecorderOption {
	return func(r *Recorder) {
		r.limit = n
	}
}

// NewRecorder creates an empty Recorder.
func NewRecorder(opts ...RecorderOption) *Recorder {
	r := &Recorder{
		commands: make([]Command, 0, 256),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Len returns the number of primitives recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// DrawHollowRect implements anchormark.Surface.
func (r *Recorder) DrawHollowRect(box anchormark.Box, strokeWidth float64, c anchormark.Color) error {
	return r.record(HollowRectCommand{Box: box, StrokeWidth: strokeWidth, Color: c})
}

// DrawHollowEllipse implements anchormark.Surface.
func (r *Recorder) DrawHollowEllipse(box anchormark.Box, strokeWidth float64, c anchormark.Color) error {
	return r.record(HollowEllipseCommand{Box: box, StrokeWidth: strokeWidth, Color: c})
}

// DrawFilledEllipse implements anchormark.Surface.
func (r *Recorder) DrawFilledEllipse(box anchormark.Box, c anchormark.Color) error {
	return r.record(FilledEllipseCommand{Box: box, Color: c})
}

// DrawLine implements anchormark.Surface.
func (r *Recorder) DrawLine(from, to anchormark.Point, strokeWidth float64, c anchormark.Color) error {
	return r.record(LineCommand{From: from, To: to, StrokeWidth: strokeWidth, Color: c})
}

func (r *Recorder) record(cmd Command) error {
	if r.limit > 0 && len(r.commands) >= r.limit {
		return fmt.Errorf("%w (%d)", ErrLimitExceeded, r.limit)
	}
	r.commands = append(r.commands, cmd)

	b := cmd.Bounds()
	if r.hasBounds {
		r.bounds = r.bounds.Union(b)
	} else {
		r.bounds = b
		r.hasBounds = true
	}
	return nil
}

// FinishRecording returns an immutable Recording containing all recorded commands.
// After calling FinishRecording, the Recorder should not be used again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		commands: r.commands,
		bounds:   r.bounds,
	}
}

// Recording is an immutable container for recorded annotation commands.
// It can be replayed to any Backend implementation.
type Recording struct {
	commands []Command
	bounds   anchormark.Box
}

// Commands returns the recorded commands in drawing order.
// The returned slice must not be modified.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Len returns the number of recorded commands.
func (r *Recording) Len() int {
	return len(r.commands)
}

// Count returns the number of recorded commands of the given type.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Bounds returns the document-space box covering every command.
// It is the zero Box for an empty recording.
func (r *Recording) Bounds() anchormark.Box {
	return r.bounds
}

// Viewport returns a viewport framing the whole recording.
func (r *Recording) Viewport(margin, scale float64) Viewport {
	return NewViewport(r.bounds, margin, scale)
}

// Replay issues every command to s in order, stopping at the first error.
func (r *Recording) Replay(s anchormark.Surface) error {
	for i, cmd := range r.commands {
		if err := cmd.Replay(s); err != nil {
			return fmt.Errorf("recording: command %d (%s): %w", i, cmd.Type(), err)
		}
	}
	return nil
}

// Playback replays the recording to the given backend.
// The backend is initialized with vp, receives every command in order and
// is finalized with End. The first failing command aborts the playback.
func (r *Recording) Playback(backend Backend, vp Viewport) error {
	if err := backend.Begin(vp); err != nil {
		return fmt.Errorf("recording: begin: %w", err)
	}
	if err := r.Replay(backend); err != nil {
		return err
	}
	if err := backend.End(); err != nil {
		return fmt.Errorf("recording: end: %w", err)
	}
	return nil
}

// String returns one line per command, numbered from zero.
func (r *Recording) String() string {
	var sb strings.Builder
	for i, cmd := range r.commands {
		fmt.Fprintf(&sb, "%d: %s\n", i, cmd)
	}
	return sb.String()
}
