package graphics

// CommandKind identifies a recorded drawing operation.
type CommandKind int

const (
	// CommandFillRect fills Bounds with Brush.
	CommandFillRect CommandKind = iota
	// CommandStrokeRect outlines Bounds with Thickness insets.
	CommandStrokeRect
	// CommandLine draws a segment from Bounds.Position() to From+Size.
	CommandLine
	// CommandText draws Text with its top-left corner at Bounds.Position().
	CommandText
)

func (k CommandKind) String() string {
	switch k {
	case CommandFillRect:
		return "fill_rect"
	case CommandStrokeRect:
		return "stroke_rect"
	case CommandLine:
		return "line"
	case CommandText:
		return "text"
	default:
		return "unknown"
	}
}

// Command is a single drawing operation with the clip and opacity that were
// active when it was recorded. Owner identifies the widget that produced it.
type Command struct {
	Kind      CommandKind `json:"kind"`
	Owner     uint64      `json:"owner"`
	Bounds    Rect        `json:"bounds"`
	Clip      Rect        `json:"clip"`
	Brush     Brush       `json:"brush"`
	Opacity   float32     `json:"opacity"`
	Thickness Thickness   `json:"thickness,omitempty"`
	Text      string      `json:"text,omitempty"`
}

// DrawingContext records drawing commands in paint order. The renderer
// replays Commands() after each frame; the context never rasterizes.
type DrawingContext struct {
	commands []Command
	clip     Rect
	opacity  float32
	owner    uint64
}

// NewDrawingContext returns an empty context.
func NewDrawingContext() *DrawingContext {
	return &DrawingContext{opacity: 1}
}

// Reset clears recorded commands while keeping the backing storage.
func (d *DrawingContext) Reset() {
	d.commands = d.commands[:0]
	d.clip = Rect{}
	d.opacity = 1
	d.owner = 0
}

// SetState sets the clip, opacity and owner applied to subsequent commands.
func (d *DrawingContext) SetState(clip Rect, opacity float32, owner uint64) {
	d.clip = clip
	d.opacity = opacity
	d.owner = owner
}

// Clip returns the clip rect applied to new commands.
func (d *DrawingContext) Clip() Rect {
	return d.clip
}

func (d *DrawingContext) push(cmd Command) {
	if !cmd.Brush.IsVisible() || d.opacity <= 0 {
		return
	}
	cmd.Clip = d.clip
	cmd.Opacity = d.opacity
	cmd.Owner = d.owner
	d.commands = append(d.commands, cmd)
}

// FillRect records a filled rectangle.
func (d *DrawingContext) FillRect(r Rect, brush Brush) {
	d.push(Command{Kind: CommandFillRect, Bounds: r, Brush: brush})
}

// StrokeRect records a rectangle outline with per-edge thickness.
func (d *DrawingContext) StrokeRect(r Rect, t Thickness, brush Brush) {
	if t == (Thickness{}) {
		return
	}
	d.push(Command{Kind: CommandStrokeRect, Bounds: r, Thickness: t, Brush: brush})
}

// Line records a segment from a to b.
func (d *DrawingContext) Line(a, b Vec2, width float32, brush Brush) {
	d.push(Command{
		Kind:      CommandLine,
		Bounds:    RectFromPosSize(a, b.Sub(a)),
		Thickness: Uniform(width),
		Brush:     brush,
	})
}

// Text records a run of text laid out inside r.
func (d *DrawingContext) Text(r Rect, text string, brush Brush) {
	if text == "" {
		return
	}
	d.push(Command{Kind: CommandText, Bounds: r, Text: text, Brush: brush})
}

// Commands returns the recorded commands. The slice is reused by Reset.
func (d *DrawingContext) Commands() []Command {
	return d.commands
}

// Len returns the number of recorded commands.
func (d *DrawingContext) Len() int {
	return len(d.commands)
}
