package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/logrusorgru/aurora"
)

// EnvDebug turns on debug output when set to a true value.
const EnvDebug = "QUICKHULL_DEBUG"

var (
	level      = new(slog.LevelVar)
	rootLogger *slog.Logger
)

func init() {
	debugEnabled, _ := strconv.ParseBool(os.Getenv(EnvDebug))
	SetDebug(debugEnabled)
	rootLogger = slog.New(NewHandler(os.Stderr, level, true))
}

// GetLogger returns a logger with the given prefix for easier filtering
func GetLogger(prefix string) *slog.Logger {
	return rootLogger.With("module", prefix)
}

// SetDebug switches every logger between debug and info level.
func SetDebug(enabled bool) {
	if enabled {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}
}

type handler struct {
	mu         *sync.Mutex
	w          io.Writer
	level      slog.Leveler
	attrs      []slog.Attr
	group      string
	withColors bool
}

// NewHandler writes one line per record in the form
// [module] LEVEL: message (key=value, ...) [15:04:05]
func NewHandler(w io.Writer, level slog.Leveler, withColors bool) slog.Handler {
	return &handler{
		mu:         &sync.Mutex{},
		w:          w,
		level:      level,
		withColors: withColors,
	}
}

func (h *handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

func (h *handler) Handle(_ context.Context, record slog.Record) error {
	au := aurora.NewAurora(h.withColors)

	var levelStr aurora.Value
	switch {
	case record.Level >= slog.LevelError:
		levelStr = au.Red("ERROR")
	case record.Level >= slog.LevelWarn:
		levelStr = au.Yellow("WARNING")
	case record.Level >= slog.LevelInfo:
		levelStr = au.Blue("INFO")
	default:
		levelStr = au.White("DEBUG")
	}

	var modulePrefix string
	var args []string
	collect := func(a slog.Attr) bool {
		if a.Key == "module" {
			modulePrefix = a.Value.String()
			return true
		}
		key := a.Key
		if h.group != "" {
			key = h.group + "." + key
		}
		args = append(args, fmt.Sprintf("%s=%v", key, a.Value))
		return true
	}
	for _, a := range h.attrs {
		collect(a)
	}
	record.Attrs(collect)

	var line strings.Builder
	if modulePrefix != "" {
		fmt.Fprintf(&line, "%s ", au.Cyan("["+modulePrefix+"]"))
	}
	fmt.Fprintf(&line, "%s: %s", levelStr, record.Message)
	if len(args) > 0 {
		fmt.Fprintf(&line, " (%s)", strings.Join(args, ", "))
	}
	if !record.Time.IsZero() {
		fmt.Fprintf(&line, " [%s]", record.Time.Format("15:04:05"))
	}
	line.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, line.String())
	return err
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)
	return &handler{
		mu:         h.mu,
		w:          h.w,
		level:      h.level,
		attrs:      newAttrs,
		group:      h.group,
		withColors: h.withColors,
	}
}

func (h *handler) WithGroup(name string) slog.Handler {
	return &handler{
		mu:         h.mu,
		w:          h.w,
		level:      h.level,
		attrs:      h.attrs,
		group:      name,
		withColors: h.withColors,
	}
}
