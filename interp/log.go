package interp

import (
	"os"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

// Log is the package-level logger every Run call traces its phases
// through. It defaults to logrus's standard text-to-stderr output at
// Info level; EnableFileLogging upgrades it to a rotating JSON file.
var Log = logrus.New()

func init() {
	Log.SetLevel(logrus.InfoLevel)
}

// EnableFileLogging adds a daily-rotated, 7-day-retained JSON log hook
// writing into dir/name, mirroring the retrieval pack's own rotation
// helper for wallet logs.
func EnableFileLogging(dir, name string) error {
	return enableDaysJSONRotation(dir, name, 7)
}

func enableDaysJSONRotation(dir, name string, maxAgeDays uint) error {
	const day = time.Hour * 24
	return enableRotation(dir, name, time.Duration(maxAgeDays)*day, day, &logrus.JSONFormatter{})
}

func enableRotation(dir, name string, maxAge, rotationTime time.Duration, formatter logrus.Formatter) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	base, err := filepath.Abs(filepath.Join(dir, name))
	if err != nil {
		return err
	}

	writer, err := rotatelogs.New(
		base+".%Y%m%d%H%M%S",
		rotatelogs.WithLinkName(base),
		rotatelogs.WithMaxAge(maxAge),
		rotatelogs.WithRotationTime(rotationTime),
	)
	if err != nil {
		return err
	}

	Log.AddHook(lfshook.NewHook(
		lfshook.WriterMap{
			logrus.DebugLevel: writer,
			logrus.InfoLevel:  writer,
			logrus.WarnLevel:  writer,
			logrus.ErrorLevel: writer,
			logrus.FatalLevel: writer,
			logrus.PanicLevel: writer,
		},
		formatter,
	))
	return nil
}

// SetVerbose raises Log to Debug level, where per-phase trace records
// (tokenize/read/eval) are emitted.
func SetVerbose(v bool) {
	if v {
		Log.SetLevel(logrus.DebugLevel)
		return
	}
	Log.SetLevel(logrus.InfoLevel)
}
