package helper

import (
	"bytes"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestStyleFormatter_Format(t *testing.T) {
	entry := &logrus.Entry{
		Time:    time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "list emptied",
	}

	out, err := (&StyleFormatter{}).Format(entry)
	require.NoError(t, err)
	require.Equal(t, "2024-03-09 14:05:06 WARNING unknown - list emptied\n", string(out))
}

func TestApplyLevel(t *testing.T) {
	saved := Log.GetLevel()
	defer Log.SetLevel(saved)

	require.NoError(t, ApplyLevel(" debug "))
	require.Equal(t, logrus.DebugLevel, Log.GetLevel())

	require.Error(t, ApplyLevel("chatty"))
	require.Equal(t, logrus.DebugLevel, Log.GetLevel())
}

func TestLog_ReportsCaller(t *testing.T) {
	var buf bytes.Buffer
	saved := Log.Out
	Log.SetOutput(&buf)
	defer Log.SetOutput(saved)

	Log.Error("boom")
	require.Contains(t, buf.String(), "ERROR")
	require.Contains(t, buf.String(), "helper.TestLog_ReportsCaller - boom")
}
