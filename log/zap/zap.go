// Package zap adapts a *zap.Logger to base2.Logger.
package zap

import (
	"sort"

	"github.com/nocursor/base2"
	"go.uber.org/zap"
)

var _ base2.Logger = Logger{}

type Logger struct{ L *zap.Logger }

// New wraps l, tagging every entry with component=base2.
func New(l *zap.Logger) Logger { return Logger{L: l.With(zap.String("component", "base2"))} }

func (z Logger) Debug(msg string, f base2.Fields) { z.L.Debug(msg, fields(f)...) }
func (z Logger) Info(msg string, f base2.Fields)  { z.L.Info(msg, fields(f)...) }
func (z Logger) Warn(msg string, f base2.Fields)  { z.L.Warn(msg, fields(f)...) }
func (z Logger) Error(msg string, f base2.Fields) { z.L.Error(msg, fields(f)...) }

// fields emits keys in sorted order so output is stable across runs.
func fields(f base2.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]zap.Field, 0, len(f))
	for _, k := range keys {
		out = append(out, zap.Any(k, f[k]))
	}
	return out
}
