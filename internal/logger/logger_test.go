package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestPlainFormatter(t *testing.T) {
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	cases := []struct {
		name string
		data logrus.Fields
		want string
	}{
		{
			name: "with component",
			data: logrus.Fields{"component": "sheet", "state": "visible", "index": 2},
			want: "[2025-01-02T03:04:05Z] [DEBUG] [sheet] tapped index=2 state=visible\n",
		},
		{
			name: "without fields",
			data: logrus.Fields{},
			want: "[2025-01-02T03:04:05Z] [DEBUG] tapped\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entry := &logrus.Entry{
				Logger:  logrus.New(),
				Time:    ts,
				Level:   logrus.DebugLevel,
				Message: "tapped",
				Data:    tc.data,
			}
			out, err := (PlainFormatter{}).Format(entry)
			if err != nil {
				t.Fatalf("Format() error: %v", err)
			}
			if got := string(out); got != tc.want {
				t.Fatalf("Format() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSetup_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sheet.log")

	l, closer, err := Setup(path, "debug")
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	Named(l, "sheet").Debug("presenting")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "[DEBUG] [sheet] presenting") {
		t.Fatalf("log = %q, want debug line from sheet", string(data))
	}
}

func TestSetup_RejectsBadInput(t *testing.T) {
	if _, _, err := Setup("  ", "info"); err == nil {
		t.Fatalf("Setup with empty path returned nil error")
	}
	_, _, err := Setup(filepath.Join(t.TempDir(), "x.log"), "loud")
	if err == nil || !strings.Contains(err.Error(), "parse log level") {
		t.Fatalf("Setup with bad level error = %v, want parse log level", err)
	}
}

func TestParseLevel_EmptyIsInfo(t *testing.T) {
	lvl, err := ParseLevel(" ")
	if err != nil {
		t.Fatalf("ParseLevel returned error: %v", err)
	}
	if lvl != logrus.InfoLevel {
		t.Fatalf("ParseLevel(\"\") = %v, want info", lvl)
	}
}
