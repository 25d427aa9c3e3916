package main

import (
	"image/color"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
)

func TestTransition(t *testing.T) {
	cases := []struct {
		name string
		from buttonStatus
		ev   buttonEvent
		want buttonStatus
	}{
		{"hover in", buttonStatus{ButtonNormal, false}, eventPointerIn, buttonStatus{ButtonHover, true}},
		{"hover out", buttonStatus{ButtonHover, true}, eventPointerOut, buttonStatus{ButtonNormal, false}},
		{"press", buttonStatus{ButtonHover, true}, eventPress, buttonStatus{ButtonPressed, true}},
		{"release inside", buttonStatus{ButtonPressed, true}, eventRelease, buttonStatus{ButtonHover, true}},
		{"release outside", buttonStatus{ButtonPressed, false}, eventRelease, buttonStatus{ButtonNormal, false}},
		{"leave while pressed", buttonStatus{ButtonPressed, true}, eventPointerOut, buttonStatus{ButtonNormal, false}},
		{"disable", buttonStatus{ButtonHover, true}, eventDisable, buttonStatus{ButtonDisabled, true}},
		{"disabled ignores press", buttonStatus{ButtonDisabled, true}, eventPress, buttonStatus{ButtonDisabled, true}},
		{"disabled ignores hover", buttonStatus{ButtonDisabled, false}, eventPointerIn, buttonStatus{ButtonDisabled, true}},
		{"disabled ignores release", buttonStatus{ButtonDisabled, true}, eventRelease, buttonStatus{ButtonDisabled, true}},
		{"enable while hovered", buttonStatus{ButtonDisabled, true}, eventEnable, buttonStatus{ButtonHover, true}},
		{"enable elsewhere", buttonStatus{ButtonDisabled, false}, eventEnable, buttonStatus{ButtonNormal, false}},
		{"enable is idempotent", buttonStatus{ButtonHover, true}, eventEnable, buttonStatus{ButtonHover, true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := transition(tc.from, tc.ev); got != tc.want {
				t.Fatalf("transition(%+v, %d) = %+v, want %+v", tc.from, tc.ev, got, tc.want)
			}
		})
	}
}

func TestPaint(t *testing.T) {
	p := lightPalette().Button
	cases := map[ButtonVisualState]color.Color{
		ButtonNormal:   p.Normal,
		ButtonHover:    p.Hover,
		ButtonPressed:  p.Pressed,
		ButtonDisabled: p.Disabled,
	}
	for state, want := range cases {
		fill, text := paint(state, p)
		if fill != want {
			t.Errorf("paint(%s) fill = %v, want %v", state, fill, want)
		}
		if text != p.Foreground {
			t.Errorf("paint(%s) text = %v, want %v", state, text, p.Foreground)
		}
	}
}

func TestRoundedButton_TapOnlyWhenEnabled(t *testing.T) {
	test.NewTempApp(t)
	taps := 0
	b := newRoundedButton("Go", primaryButtonStyle, lightPalette().Button, func() { taps++ })

	test.Tap(b)
	if taps != 1 {
		t.Fatalf("taps = %d, want 1", taps)
	}
	b.Disable()
	test.Tap(b)
	if taps != 1 {
		t.Fatalf("disabled button fired: taps = %d", taps)
	}
	b.Enable()
	test.Tap(b)
	if taps != 2 {
		t.Fatalf("re-enabled button did not fire: taps = %d", taps)
	}
}

func TestRoundedButton_PointerSequence(t *testing.T) {
	test.NewTempApp(t)
	b := newRoundedButton("Go", primaryButtonStyle, lightPalette().Button, nil)
	b.Resize(fyne.NewSize(120, 40))
	primary := &desktop.MouseEvent{Button: desktop.MouseButtonPrimary}

	steps := []struct {
		do   func()
		want ButtonVisualState
	}{
		{func() { b.MouseIn(primary) }, ButtonHover},
		{func() { b.MouseDown(primary) }, ButtonPressed},
		{func() { b.MouseUp(primary) }, ButtonHover},
		{func() { b.Disable() }, ButtonDisabled},
		{func() { b.MouseDown(primary) }, ButtonDisabled},
		{func() { b.Enable() }, ButtonHover},
		{func() { b.MouseOut() }, ButtonNormal},
	}
	for i, s := range steps {
		s.do()
		if got := b.VisualState(); got != s.want {
			t.Fatalf("step %d: state = %s, want %s", i, got, s.want)
		}
	}
	fill, _ := paint(ButtonNormal, lightPalette().Button)
	if b.bg.FillColor != fill {
		t.Fatalf("fill = %v, want %v", b.bg.FillColor, fill)
	}
}

func TestRoundedButton_SecondaryButtonDoesNotPress(t *testing.T) {
	test.NewTempApp(t)
	b := newRoundedButton("Go", primaryButtonStyle, lightPalette().Button, nil)
	b.MouseDown(&desktop.MouseEvent{Button: desktop.MouseButtonSecondary})
	if b.VisualState() != ButtonNormal {
		t.Fatalf("state = %s, want normal", b.VisualState())
	}
}

func TestRoundedButton_RepaintBeforeLayoutIsDeferred(t *testing.T) {
	test.NewTempApp(t)
	b := newRoundedButton("Go", primaryButtonStyle, lightPalette().Button, nil)
	dark := darkPalette().Button

	b.SetPalette(dark)
	if !b.repaintPending {
		t.Fatalf("repaint should be deferred while the button has no size")
	}
	if b.bg.FillColor == dark.Normal {
		t.Fatalf("zero-size button should not be painted yet")
	}
	b.Resize(fyne.NewSize(120, 40))

	deadline := time.Now().Add(2 * time.Second)
	for b.bg.FillColor != dark.Normal {
		if time.Now().After(deadline) {
			t.Fatalf("deferred repaint never happened")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestRoundedButton_MinSizeIncludesPadding(t *testing.T) {
	test.NewTempApp(t)
	b := newRoundedButton("Go", primaryButtonStyle, lightPalette().Button, nil)
	text := b.text.MinSize()
	got := b.MinSize()
	if got.Width <= text.Width || got.Height <= text.Height {
		t.Fatalf("MinSize() = %v, text = %v", got, text)
	}
}
