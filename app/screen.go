package app

import "airmouse/gui"

const (
	titleText = "AirMouse Experimental"

	rightIdleText    = "Press Right for right click"
	rightPressedText = "Right click is pressed!"
	pressedText      = "Pressed"
	leftIdleText     = "Press LEFT button for left click"
	leftPressedText  = "Left click is pressed!"
)

const (
	titleY = 2
	rightY = 28
	extraY = 40
	leftY  = 52
)

type textLine struct {
	font gui.Font
	y    int
	text string
}

// screenLines returns what the status screen shows for the given buttons.
func screenLines(right, left bool) []textLine {
	lines := make([]textLine, 0, 4)
	lines = append(lines, textLine{font: gui.FontPrimary, y: titleY, text: titleText})

	if right {
		lines = append(lines,
			textLine{font: gui.FontSecondary, y: rightY, text: rightPressedText},
			textLine{font: gui.FontSecondary, y: extraY, text: pressedText},
		)
	} else {
		lines = append(lines, textLine{font: gui.FontSecondary, y: rightY, text: rightIdleText})
	}

	if left {
		lines = append(lines, textLine{font: gui.FontSecondary, y: leftY, text: leftPressedText})
	} else {
		lines = append(lines, textLine{font: gui.FontSecondary, y: leftY, text: leftIdleText})
	}
	return lines
}

// painter is the subset of gui.Canvas the status screen needs.
type painter interface {
	Width() int
	SetFont(f gui.Font)
	DrawStrAligned(x, y int, h, v gui.Align, s string)
}

func drawScreen(p painter, st *State) {
	right, left := st.Snapshot()
	x := p.Width() / 2
	for _, l := range screenLines(right, left) {
		p.SetFont(l.font)
		p.DrawStrAligned(x, l.y, gui.AlignCenter, gui.AlignTop, l.text)
	}
}
