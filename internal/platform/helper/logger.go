package helper

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// LevelEnv names the environment variable that overrides the default log level.
const LevelEnv = "SLL_LOG_LEVEL"

var Log = logrus.New()

type StyleFormatter struct{}

func (f *StyleFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format("2006-01-02 15:04:05")
	level := strings.ToUpper(entry.Level.String())
	function := "unknown"
	if entry.Caller != nil {
		function = entry.Caller.Function
	}
	msg := entry.Message
	return []byte(fmt.Sprintf("%s %-5s %s - %s\n", timestamp, level, function, msg)), nil
}

// ApplyLevel sets the level of Log from its textual name. Log is left untouched on error.
func ApplyLevel(raw string) error {
	level, err := logrus.ParseLevel(strings.TrimSpace(raw))
	if err != nil {
		return err
	}
	Log.SetLevel(level)
	return nil
}

func init() {
	Log.SetFormatter(&StyleFormatter{})
	Log.SetOutput(os.Stdout)
	Log.SetReportCaller(true)
	Log.SetLevel(logrus.InfoLevel)
	if raw, ok := os.LookupEnv(LevelEnv); ok {
		if err := ApplyLevel(raw); err != nil {
			Log.Warnf("Ignoring %s=%q: %s", LevelEnv, raw, err.Error())
		}
	}
}
