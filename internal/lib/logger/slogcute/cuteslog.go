// Package slogcute provides a colored, human oriented slog.Handler for
// local development.
package slogcute

import (
	"context"
	"encoding/json"
	"io"
	stdLog "log"
	"log/slog"

	"github.com/fatih/color"
)

type CuteHandlerOptions struct {
	SlogOptions *slog.HandlerOptions
}

type CuteHandler struct {
	logger *stdLog.Logger
	level  slog.Leveler
	attrs  []slog.Attr
	group  string
}

// NewCuteHandler creates a CuteHandler writing to out.
func (opts CuteHandlerOptions) NewCuteHandler(out io.Writer) *CuteHandler {
	var level slog.Leveler = slog.LevelInfo
	if opts.SlogOptions != nil && opts.SlogOptions.Level != nil {
		level = opts.SlogOptions.Level
	}

	return &CuteHandler{
		logger: stdLog.New(out, "", 0),
		level:  level,
	}
}

func (h *CuteHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle prints the time, a colored level, the message and the attributes
// as indented JSON.
func (h *CuteHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"

	switch r.Level {
	case slog.LevelDebug:
		level = color.MagentaString(level)
	case slog.LevelInfo:
		level = color.BlueString(level)
	case slog.LevelWarn:
		level = color.YellowString(level)
	case slog.LevelError:
		level = color.RedString(level)
	}

	fields := make(map[string]any, r.NumAttrs()+len(h.attrs))

	for _, a := range h.attrs {
		fields[a.Key] = a.Value.Any()
	}

	r.Attrs(func(a slog.Attr) bool {
		fields[h.key(a.Key)] = a.Value.Any()

		return true
	})

	var b []byte
	var err error

	if len(fields) > 0 {
		b, err = json.MarshalIndent(fields, "", "  ")
		if err != nil {
			return err
		}
	}

	timeStr := r.Time.Format("[15:04:05.000]")
	msg := color.CyanString(r.Message)

	h.logger.Println(
		timeStr,
		level,
		msg,
		color.WhiteString(string(b)),
	)

	return nil
}

func (h *CuteHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	for _, a := range attrs {
		merged = append(merged, slog.Attr{Key: h.key(a.Key), Value: a.Value})
	}

	return &CuteHandler{
		logger: h.logger,
		level:  h.level,
		attrs:  merged,
		group:  h.group,
	}
}

func (h *CuteHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	return &CuteHandler{
		logger: h.logger,
		level:  h.level,
		attrs:  h.attrs,
		group:  h.key(name),
	}
}

func (h *CuteHandler) key(k string) string {
	if h.group == "" {
		return k
	}
	return h.group + "." + k
}
