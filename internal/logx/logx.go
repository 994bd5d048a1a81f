// Package logx formats tagged, leveled lines for a hal.Logger.
package logx

import (
	"fmt"

	"airmouse/hal"
)

// Level is the severity of a log line.
type Level uint8

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

func (l Level) letter() byte {
	switch l {
	case LevelError:
		return 'E'
	case LevelWarn:
		return 'W'
	case LevelInfo:
		return 'I'
	default:
		return 'D'
	}
}

// Line formats a single log line: "<level> [<tag>] <message>".
func Line(level Level, tag, format string, args ...any) string {
	return string(level.letter()) + " [" + tag + "] " + fmt.Sprintf(format, args...)
}

// Log writes a formatted line. A nil logger drops it.
func Log(l hal.Logger, level Level, tag, format string, args ...any) {
	if l == nil {
		return
	}
	l.WriteLineString(Line(level, tag, format, args...))
}

func E(l hal.Logger, tag, format string, args ...any) { Log(l, LevelError, tag, format, args...) }
func W(l hal.Logger, tag, format string, args ...any) { Log(l, LevelWarn, tag, format, args...) }
func I(l hal.Logger, tag, format string, args ...any) { Log(l, LevelInfo, tag, format, args...) }
func D(l hal.Logger, tag, format string, args ...any) { Log(l, LevelDebug, tag, format, args...) }
