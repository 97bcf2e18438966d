package logging

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap/zapcore"
)

const timestampLayout = "2006-01-02 15:04:05"

// textCore is a zapcore.Core rendering entries as `LEVEL name: message`
// lines, optionally prefixed with a timestamp. Stock zap encoders cannot
// produce this shape, so the formatting lives here; level gating and output
// syncing still follow the zapcore contract.
type textCore struct {
	out          zapcore.WriteSyncer
	enab         zapcore.LevelEnabler
	addTimestamp bool
}

func newTextCore(out zapcore.WriteSyncer, enab zapcore.LevelEnabler, addTimestamp bool) zapcore.Core {
	return &textCore{out: out, enab: enab, addTimestamp: addTimestamp}
}

func (c *textCore) Enabled(lvl zapcore.Level) bool {
	return c.enab.Enabled(lvl)
}

// With is a no-op: the line format carries no structured fields.
func (c *textCore) With([]zapcore.Field) zapcore.Core {
	return c
}

func (c *textCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}

	return ce
}

func (c *textCore) Write(ent zapcore.Entry, _ []zapcore.Field) error {
	var line string
	if c.addTimestamp {
		line = fmt.Sprintf("%s %s %s: %s\n",
			ent.Time.Format(timestampLayout), levelName(ent.Level), ent.LoggerName, ent.Message)
	} else {
		line = fmt.Sprintf("%s %s: %s\n", levelName(ent.Level), ent.LoggerName, ent.Message)
	}

	_, err := c.out.Write([]byte(line))

	return err
}

func (c *textCore) Sync() error {
	return c.out.Sync()
}

// swapCore is a zapcore.Core delegating to an atomically replaceable inner
// core. Every zap.Logger handed out for a name wraps the same swapCore, so
// reconfiguring the name swaps the handler set under all of them at once.
type swapCore struct {
	inner atomic.Value // coreBox
}

// coreBox keeps the value stored in the atomic.Value concretely typed.
type coreBox struct {
	core zapcore.Core
}

func newSwapCore() *swapCore {
	sc := &swapCore{}
	sc.swap(zapcore.NewNopCore())

	return sc
}

func (s *swapCore) get() zapcore.Core {
	return s.inner.Load().(coreBox).core
}

func (s *swapCore) swap(c zapcore.Core) {
	s.inner.Store(coreBox{core: c})
}

func (s *swapCore) Enabled(lvl zapcore.Level) bool {
	return s.get().Enabled(lvl)
}

func (s *swapCore) With(fields []zapcore.Field) zapcore.Core {
	return s.get().With(fields)
}

func (s *swapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if s.get().Enabled(ent.Level) {
		return ce.AddCore(ent, s)
	}

	return ce
}

func (s *swapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	return s.get().Write(ent, fields)
}

func (s *swapCore) Sync() error {
	return s.get().Sync()
}
