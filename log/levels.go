package log

import "gopkg.in/Sirupsen/logrus.v0"

// Level mirrors logrus's severity ordering so Module.Enabled can compare
// against it without importing logrus into every call site.
type Level uint32

const (
	PanicLevel Level = iota
	FatalLevel
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
)

func (lvl Level) logrus() logrus.Level {
	return logrus.Level(lvl)
}
