package loggers

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"

	"github.com/axiomesh/token-ledger/pkg/repo"
)

const (
	App            = "app"
	API            = "api"
	Executor       = "executor"
	Genesis        = "genesis"
	Storage        = "storage"
	SystemContract = "system_contract"
)

var moduleNames = []string{App, API, Executor, Genesis, Storage, SystemContract}

var w = &LoggerWrapper{loggers: defaultLoggers()}

type LoggerWrapper struct {
	loggers map[string]*logrus.Entry
}

func defaultLoggers() map[string]*logrus.Entry {
	m := make(map[string]*logrus.Entry, len(moduleNames))
	for _, name := range moduleNames {
		m[name] = newWithModule(name, &logrus.TextFormatter{FullTimestamp: true})
	}
	return m
}

func newWithModule(name string, formatter logrus.Formatter) *logrus.Entry {
	logger := logrus.New()
	logger.SetFormatter(formatter)
	logger.SetOutput(os.Stdout)
	return logger.WithField("module", name)
}

// Initialize rebuilds the module loggers from the repo config. When persist
// is set, entries are additionally written to rotated files under
// <repo>/logs.
func Initialize(rep *repo.Repo, persist bool) error {
	config := rep.Config

	formatter := &logrus.TextFormatter{
		ForceColors:      config.Log.EnableColor,
		DisableColors:    !config.Log.EnableColor,
		FullTimestamp:    true,
		TimestampFormat:  "2006-01-02T15:04:05.000",
		DisableTimestamp: config.Log.DisableTimestamp,
	}

	var hook logrus.Hook
	if persist {
		var err error
		hook, err = fileHook(filepath.Join(rep.RepoRoot, repo.LogsDirName), config.Log)
		if err != nil {
			return fmt.Errorf("log initialize: %w", err)
		}
	}

	m := make(map[string]*logrus.Entry, len(moduleNames))
	levels := map[string]string{
		App:            config.Log.Level,
		API:            config.Log.Module.API,
		Executor:       config.Log.Module.Executor,
		Genesis:        config.Log.Module.Genesis,
		Storage:        config.Log.Module.Storage,
		SystemContract: config.Log.Module.SystemContract,
	}
	for _, name := range moduleNames {
		entry := newWithModule(name, formatter)
		entry.Logger.SetLevel(ParseLevel(levels[name]))
		entry.Logger.SetReportCaller(config.Log.ReportCaller)
		if hook != nil {
			entry.Logger.AddHook(hook)
		}
		m[name] = entry
	}

	w = &LoggerWrapper{loggers: m}
	return nil
}

func fileHook(dir string, config repo.Log) (logrus.Hook, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	writer, err := rotatelogs.New(
		filepath.Join(dir, config.Filename+".%Y%m%d.log"),
		rotatelogs.WithLinkName(filepath.Join(dir, config.Filename+".log")),
		rotatelogs.WithMaxAge(time.Duration(config.MaxAge)*24*time.Hour),
		rotatelogs.WithRotationTime(config.RotationTime.ToDuration()),
	)
	if err != nil {
		return nil, err
	}

	fileFormatter := &logrus.TextFormatter{
		FullTimestamp:    true,
		TimestampFormat:  "2006-01-02T15:04:05.000",
		DisableColors:    true,
		DisableTimestamp: config.DisableTimestamp,
	}
	return lfshook.NewHook(lfshook.WriterMap{
		logrus.TraceLevel: writer,
		logrus.DebugLevel: writer,
		logrus.InfoLevel:  writer,
		logrus.WarnLevel:  writer,
		logrus.ErrorLevel: writer,
		logrus.FatalLevel: writer,
		logrus.PanicLevel: writer,
	}, fileFormatter), nil
}

func ParseLevel(level string) logrus.Level {
	lv, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lv
}

func Logger(name string) logrus.FieldLogger {
	return w.loggers[name]
}
