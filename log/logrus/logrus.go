// Package logrus adapts a *logrus.Entry to base2.Logger.
package logrus

import (
	"github.com/nocursor/base2"
	"github.com/sirupsen/logrus"
)

var _ base2.Logger = Logger{}

type Logger struct{ E *logrus.Entry }

func New(l *logrus.Logger) Logger {
	return Logger{E: logrus.NewEntry(l).WithField("component", "base2")}
}

func (l Logger) Debug(msg string, f base2.Fields) { l.with(f).Debug(msg) }
func (l Logger) Info(msg string, f base2.Fields)  { l.with(f).Info(msg) }
func (l Logger) Warn(msg string, f base2.Fields)  { l.with(f).Warn(msg) }
func (l Logger) Error(msg string, f base2.Fields) { l.with(f).Error(msg) }

func (l Logger) with(f base2.Fields) *logrus.Entry {
	if len(f) == 0 {
		return l.E
	}
	return l.E.WithFields(logrus.Fields(f))
}
