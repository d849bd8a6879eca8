package log

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/hermeznetwork/tracerr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment selects the log output format.
type Environment string

const (
	// EnvironmentProduction selects JSON output.
	EnvironmentProduction = Environment("production")
	// EnvironmentDevelopment selects colored console output.
	EnvironmentDevelopment = Environment("development")
)

// Config for log
type Config struct {
	// Environment defining the log format ("production" or "development").
	Environment Environment `mapstructure:"Environment"`
	// Level of log. As lower value more logs are going to be generated
	Level string `mapstructure:"Level"`
	// Outputs the logs are written to, e.g. "stderr" or a file path.
	Outputs []string `mapstructure:"Outputs"`
}

// root logger
var root atomic.Pointer[zap.SugaredLogger]

// Init replaces the root logger with one built from the given config.
func Init(cfg Config) error {
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	root.Store(logger)

	return nil
}

func newLogger(cfg Config) (*zap.SugaredLogger, error) {
	var level zap.AtomicLevel
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("error on setting log level: %s", err)
	}

	var zapCfg zap.Config
	switch cfg.Environment {
	case EnvironmentProduction:
		zapCfg = zap.NewProductionConfig()
	default:
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zapCfg.Level = level
	zapCfg.OutputPaths = cfg.Outputs

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}
	defer logger.Sync() //nolint:errcheck

	// skip 2 callers: one for our wrapper methods and one for the package functions
	return logger.WithOptions(zap.AddCallerSkip(2)).Sugar(), nil //nolint:gomnd
}

// getLogger returns the root logger, lazily creating a development-level one
// when Init was never called.
func getLogger() *zap.SugaredLogger {
	if l := root.Load(); l != nil {
		return l
	}

	logger, err := newLogger(Config{
		Environment: EnvironmentDevelopment,
		Level:       "debug",
		Outputs:     []string{"stderr"},
	})
	if err != nil {
		panic(err)
	}

	root.Store(logger)

	return root.Load()
}

// WithFields returns a new logger derived from the root one with the
// additional fields attached. The root logger is not affected.
func WithFields(keyValuePairs ...interface{}) *zap.SugaredLogger {
	// remove one caller from the skip stack because the returned logger's
	// methods are called directly, not through the package functions
	return getLogger().With(keyValuePairs...).WithOptions(zap.AddCallerSkip(-1))
}

// Debug calls log.Debug on the root logger.
func Debug(args ...interface{}) {
	getLogger().Debug(args...)
}

// Info calls log.Info on the root logger.
func Info(args ...interface{}) {
	getLogger().Info(args...)
}

// Warn calls log.Warn on the root logger.
func Warn(args ...interface{}) {
	getLogger().Warn(args...)
}

// Error calls log.Error on the root logger.
func Error(args ...interface{}) {
	getLogger().Error(appendStackTraceMaybeArgs(args)...)
}

// Fatal calls log.Fatal on the root logger.
func Fatal(args ...interface{}) {
	getLogger().Fatal(appendStackTraceMaybeArgs(args)...)
}

// Debugf calls log.Debugf on the root logger.
func Debugf(template string, args ...interface{}) {
	getLogger().Debugf(template, args...)
}

// Infof calls log.Infof on the root logger.
func Infof(template string, args ...interface{}) {
	getLogger().Infof(template, args...)
}

// Warnf calls log.Warnf on the root logger.
func Warnf(template string, args ...interface{}) {
	getLogger().Warnf(template, args...)
}

// Errorf calls log.Errorf on the root logger.
func Errorf(template string, args ...interface{}) {
	getLogger().Errorf(template, appendStackTraceMaybeArgs(args)...)
}

// Fatalf calls log.Fatalf on the root logger.
func Fatalf(template string, args ...interface{}) {
	getLogger().Fatalf(template, appendStackTraceMaybeArgs(args)...)
}

// appendStackTraceMaybeArgs appends the stack trace of the first error found
// in args.
func appendStackTraceMaybeArgs(args []interface{}) []interface{} {
	for i := range args {
		if err, ok := args[i].(error); ok {
			st := tracerr.StackTrace(tracerr.Wrap(err))

			return append(args, sprintStackTrace(st))
		}
	}

	return args
}

// sprintStackTrace formats the stack trace, skipping the deepest frame since
// it belongs to the go runtime.
func sprintStackTrace(st []tracerr.Frame) string {
	builder := strings.Builder{}
	if len(st) > 0 {
		st = st[:len(st)-1]
	}

	for _, f := range st {
		builder.WriteString(fmt.Sprintf("\n%s:%d %s()", f.Path, f.Line, f.Func))
	}
	builder.WriteString("\n")

	return builder.String()
}
