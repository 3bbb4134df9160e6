package logger

import (
	"bytes"
	"html"
	"io"
	"regexp"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger writes colored console lines into an in-memory buffer so the
// page can show the log of a single diagram build next to the chart.
type ZapLogger struct {
	log *zap.Logger
	buf *syncBuffer
}

type options struct {
	level  zapcore.Level
	mirror io.Writer
}

// Option configures New.
type Option func(*options)

// WithLevel sets the minimum level that is recorded. Default is debug.
func WithLevel(level zapcore.Level) Option {
	return func(o *options) { o.level = level }
}

// WithMirror additionally writes every entry to w (stderr for the CLI).
func WithMirror(w io.Writer) Option {
	return func(o *options) { o.mirror = w }
}

func New(opts ...Option) *ZapLogger {
	o := options{level: zap.DebugLevel}
	for _, opt := range opts {
		opt(&o)
	}

	buf := &syncBuffer{}

	config := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    colorLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	encoder := zapcore.NewConsoleEncoder(config)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(buf), o.level),
	}
	if o.mirror != nil {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(o.mirror)), o.level))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))

	return &ZapLogger{
		log: logger,
		buf: buf,
	}
}

// NewNop returns a logger that drops everything.
func NewNop() *ZapLogger {
	return &ZapLogger{log: zap.NewNop(), buf: &syncBuffer{}}
}

// ParseLevel maps "debug", "info", "warn", "error" to a zap level.
func ParseLevel(s string) (zapcore.Level, error) {
	return zapcore.ParseLevel(s)
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("[2006-01-02 | 15:04:05]"))
}

func colorLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var colorCode string
	switch level {
	case zapcore.DebugLevel:
		colorCode = "\033[36m" // Cyan
	case zapcore.InfoLevel:
		colorCode = "\033[32m" // Green
	case zapcore.WarnLevel:
		colorCode = "\033[33m" // Yellow
	case zapcore.ErrorLevel:
		colorCode = "\033[31m" // Red
	default:
		colorCode = "\033[0m" // Default
	}
	enc.AppendString(colorCode + level.String() + "\033[0m")
}

var ansiColor = regexp.MustCompile(`\033\[(\d+)m`)

// ansiToHTML turns the ANSI colors of the level encoder into spans. The
// rest of the text is escaped.
func ansiToHTML(input string) string {
	var result strings.Builder
	var lastIndex int
	open := false

	result.WriteString("<pre>")

	for _, match := range ansiColor.FindAllStringIndex(input, -1) {
		start := match[0]
		end := match[1]

		if start > lastIndex {
			result.WriteString(html.EscapeString(input[lastIndex:start]))
		}

		colorCode := input[start+2 : end-1]
		if color, ok := colorMap[colorCode]; ok {
			if open {
				result.WriteString("</span>")
			}
			result.WriteString(`<span style="color: ` + color + `;">`)
			open = true
		} else if colorCode == "0" && open {
			result.WriteString("</span>")
			open = false
		}

		lastIndex = end
	}

	if lastIndex < len(input) {
		result.WriteString(html.EscapeString(input[lastIndex:]))
	}
	if open {
		result.WriteString("</span>")
	}

	result.WriteString("</pre>")

	return result.String()
}

// Color mapping for ANSI codes
var colorMap = map[string]string{
	"31": "red",
	"32": "green",
	"33": "yellow",
	"34": "blue",
	"36": "cyan",
}

// HTML renders everything logged so far as a <pre> block.
func (z *ZapLogger) HTML() string {
	return ansiToHTML(z.buf.String())
}

// Text returns the raw buffered log, color codes included.
func (z *ZapLogger) Text() string {
	return z.buf.String()
}

func (z *ZapLogger) ClearLogs() {
	z.buf.Reset()
}

// With returns a child logger sharing the same buffer.
func (z *ZapLogger) With(fields ...zap.Field) *ZapLogger {
	return &ZapLogger{log: z.log.With(fields...), buf: z.buf}
}

// Enabled reports whether entries at level would be recorded.
func (z *ZapLogger) Enabled(level zapcore.Level) bool {
	return z.log.Core().Enabled(level)
}

func (z *ZapLogger) Sync() error {
	return z.log.Sync()
}

func (z *ZapLogger) Info(wrappedMsg string, fields ...zap.Field) {
	z.log.Info(wrappedMsg, fields...)
}

func (z *ZapLogger) Debug(wrappedMsg string, fields ...zap.Field) {
	z.log.Debug(wrappedMsg, fields...)
}

func (z *ZapLogger) Warn(wrappedMsg string, fields ...zap.Field) {
	z.log.Warn(wrappedMsg, fields...)
}

func (z *ZapLogger) Error(wrappedMsg string, fields ...zap.Field) {
	z.log.Error(wrappedMsg, fields...)
}

func (z *ZapLogger) Fatal(wrappedMsg string, fields ...zap.Field) {
	z.log.Fatal(wrappedMsg, fields...)
}

// syncBuffer is a bytes.Buffer safe for the concurrent writes zap may do
// when a logger is shared between handlers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
}
