package main

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// ButtonVisualState is what a roundedButton currently looks like.
type ButtonVisualState int

const (
	ButtonNormal ButtonVisualState = iota
	ButtonHover
	ButtonPressed
	ButtonDisabled
)

func (s ButtonVisualState) String() string {
	switch s {
	case ButtonNormal:
		return "normal"
	case ButtonHover:
		return "hover"
	case ButtonPressed:
		return "pressed"
	case ButtonDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

type buttonEvent int

const (
	eventPointerIn buttonEvent = iota
	eventPointerOut
	eventPress
	eventRelease
	eventEnable
	eventDisable
)

// buttonStatus is the input and output of the transition function. Hovered
// is tracked even while disabled so Enable lands on the right state.
type buttonStatus struct {
	Visual  ButtonVisualState
	Hovered bool
}

func transition(s buttonStatus, ev buttonEvent) buttonStatus {
	switch ev {
	case eventPointerIn:
		s.Hovered = true
		if s.Visual == ButtonNormal {
			s.Visual = ButtonHover
		}
	case eventPointerOut:
		s.Hovered = false
		if s.Visual == ButtonHover || s.Visual == ButtonPressed {
			s.Visual = ButtonNormal
		}
	case eventPress:
		if s.Visual == ButtonNormal || s.Visual == ButtonHover {
			s.Visual = ButtonPressed
		}
	case eventRelease:
		if s.Visual == ButtonPressed {
			s.Visual = restingState(s.Hovered)
		}
	case eventEnable:
		if s.Visual == ButtonDisabled {
			s.Visual = restingState(s.Hovered)
		}
	case eventDisable:
		s.Visual = ButtonDisabled
	}
	return s
}

func restingState(hovered bool) ButtonVisualState {
	if hovered {
		return ButtonHover
	}
	return ButtonNormal
}

// paint maps a visual state to fill and label colours.
func paint(s ButtonVisualState, p ButtonPalette) (fill, text color.Color) {
	switch s {
	case ButtonHover:
		return p.Hover, p.Foreground
	case ButtonPressed:
		return p.Pressed, p.Foreground
	case ButtonDisabled:
		return p.Disabled, p.Foreground
	default:
		return p.Normal, p.Foreground
	}
}

type buttonStyle struct {
	CornerRadius float32
	Padding      float32
	TextSize     float32
	Bold         bool
}

var (
	primaryButtonStyle = buttonStyle{CornerRadius: 10, Padding: 10, TextSize: 15, Bold: true}
	smallButtonStyle   = buttonStyle{CornerRadius: 5, Padding: 5, TextSize: 14}
)

const repaintRetryDelay = 10 * time.Millisecond

// roundedButton is a self-drawn button whose colours come from a
// ButtonPalette instead of the Fyne theme.
type roundedButton struct {
	widget.BaseWidget

	label    string
	style    buttonStyle
	palette  ButtonPalette
	status   buttonStatus
	onTapped func()

	bg   *canvas.Rectangle
	text *canvas.Text

	repaintPending bool
}

var (
	_ fyne.Tappable      = (*roundedButton)(nil)
	_ desktop.Hoverable  = (*roundedButton)(nil)
	_ desktop.Mouseable  = (*roundedButton)(nil)
	_ desktop.Cursorable = (*roundedButton)(nil)
)

func newRoundedButton(label string, style buttonStyle, palette ButtonPalette, onTapped func()) *roundedButton {
	b := &roundedButton{
		label:    label,
		style:    style,
		palette:  palette,
		onTapped: onTapped,
	}
	b.bg = canvas.NewRectangle(palette.Normal)
	b.bg.CornerRadius = style.CornerRadius
	b.text = canvas.NewText(label, palette.Foreground)
	b.text.TextSize = style.TextSize
	b.text.TextStyle = fyne.TextStyle{Bold: style.Bold}
	b.text.Alignment = fyne.TextAlignCenter
	b.ExtendBaseWidget(b)
	return b
}

// VisualState reports the current visual state.
func (b *roundedButton) VisualState() ButtonVisualState { return b.status.Visual }

// Disabled reports whether the button ignores input.
func (b *roundedButton) Disabled() bool { return b.status.Visual == ButtonDisabled }

func (b *roundedButton) Enable()  { b.apply(eventEnable) }
func (b *roundedButton) Disable() { b.apply(eventDisable) }

// SetPalette swaps the colour set and repaints in the current state.
func (b *roundedButton) SetPalette(p ButtonPalette) {
	b.palette = p
	b.repaint()
}

func (b *roundedButton) apply(ev buttonEvent) {
	next := transition(b.status, ev)
	if next == b.status {
		return
	}
	b.status = next
	b.repaint()
}

// repaint pushes paint() into the canvas objects. Before the first layout the
// button has no size yet; the repaint is then retried shortly after.
func (b *roundedButton) repaint() {
	size := b.Size()
	if size.Width <= 1 || size.Height <= 1 {
		if !b.repaintPending {
			b.repaintPending = true
			time.AfterFunc(repaintRetryDelay, func() {
				safeDo("ui.rounded_button.repaint", func() {
					b.repaintPending = false
					b.repaint()
				})
			})
		}
		return
	}
	fill, text := paint(b.status.Visual, b.palette)
	b.bg.FillColor = fill
	b.text.Color = text
	b.bg.Refresh()
	b.text.Refresh()
}

func (b *roundedButton) Tapped(_ *fyne.PointEvent) {
	if b.Disabled() || b.onTapped == nil {
		return
	}
	b.onTapped()
}

func (b *roundedButton) MouseIn(_ *desktop.MouseEvent)   { b.apply(eventPointerIn) }
func (b *roundedButton) MouseMoved(_ *desktop.MouseEvent) {}
func (b *roundedButton) MouseOut()                        { b.apply(eventPointerOut) }

func (b *roundedButton) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.apply(eventPress)
	}
}

func (b *roundedButton) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.apply(eventRelease)
	}
}

func (b *roundedButton) Cursor() desktop.Cursor {
	if b.Disabled() {
		return desktop.DefaultCursor
	}
	return desktop.PointerCursor
}

func (b *roundedButton) CreateRenderer() fyne.WidgetRenderer {
	return &roundedButtonRenderer{b: b}
}

type roundedButtonRenderer struct {
	b *roundedButton
}

func (r *roundedButtonRenderer) Layout(s fyne.Size) {
	r.b.bg.Resize(s)
	r.b.text.Resize(s)
}

func (r *roundedButtonRenderer) MinSize() fyne.Size {
	pad := r.b.style.Padding * 2
	return r.b.text.MinSize().AddWidthHeight(pad*2, pad)
}

func (r *roundedButtonRenderer) Refresh() {
	fill, text := paint(r.b.status.Visual, r.b.palette)
	r.b.bg.FillColor = fill
	r.b.text.Color = text
	r.b.bg.Refresh()
	r.b.text.Refresh()
}

func (r *roundedButtonRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.b.bg, r.b.text}
}

func (r *roundedButtonRenderer) Destroy() {}
