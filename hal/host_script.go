//go:build !tinygo

package hal

import (
	"fmt"
	"strings"
)

// inject queues a key event without blocking; it reports false when the
// event was dropped because the queue is full.
func (k *hostKeyboard) inject(ev KeyEvent) bool {
	select {
	case k.ch <- ev:
		return true
	default:
		return false
	}
}

var scriptKeys = map[string]KeyCode{
	"U":     KeyUp,
	"UP":    KeyUp,
	"D":     KeyDown,
	"DOWN":  KeyDown,
	"L":     KeyLeft,
	"LEFT":  KeyLeft,
	"R":     KeyRight,
	"RIGHT": KeyRight,
	"O":     KeyOK,
	"OK":    KeyOK,
	"B":     KeyBack,
	"BACK":  KeyBack,
}

// ParseKeyScript parses a headless key script.
//
// Tokens are separated by commas or spaces. "R+" presses Right, "R-" releases
// it and a bare "R" expands to a press followed by a release. "." is an idle
// step and yields a KeyUnknown event that the runner does not deliver.
func ParseKeyScript(s string) ([]KeyEvent, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	var out []KeyEvent
	for _, tok := range fields {
		if tok == "." {
			out = append(out, KeyEvent{Code: KeyUnknown})
			continue
		}

		name := strings.ToUpper(tok)
		suffix := byte(0)
		if n := len(name); n > 1 && (name[n-1] == '+' || name[n-1] == '-') {
			suffix = name[n-1]
			name = name[:n-1]
		}
		code, ok := scriptKeys[name]
		if !ok {
			return nil, fmt.Errorf("key script: unknown key %q", tok)
		}

		switch suffix {
		case '+':
			out = append(out, KeyEvent{Code: code, Press: true})
		case '-':
			out = append(out, KeyEvent{Code: code, Press: false})
		default:
			out = append(out,
				KeyEvent{Code: code, Press: true},
				KeyEvent{Code: code, Press: false},
			)
		}
	}
	return out, nil
}
