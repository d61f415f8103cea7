package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/myrjola/fieldprep/internal/logging"
)

func TestWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(&buf, slog.LevelDebug)

	ctx := logging.WithAttrs(context.Background(), slog.String("template", "day-1"))
	a := logging.WithAttrs(ctx, slog.String("position", "front"))
	b := logging.WithAttrs(ctx, slog.String("position", "back"))

	logger.LogAttrs(a, slog.LevelInfo, "assembled")
	logger.LogAttrs(b, slog.LevelInfo, "assembled")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "template=day-1") || !strings.Contains(lines[0], "position=front") {
		t.Errorf("first line missing context attrs: %s", lines[0])
	}
	if !strings.Contains(lines[1], "position=back") || strings.Contains(lines[1], "position=front") {
		t.Errorf("second line leaked sibling attrs: %s", lines[1])
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := logging.ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
