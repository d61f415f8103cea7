// Command assemble personalizes workout templates for a player and prints the result as JSON.
//
// Usage:
//
//	assemble <template.yaml>... <profile.yaml>
//
// One template prints a single workout; several templates are assembled concurrently and print an array.
package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/myrjola/fieldprep/internal/envstruct"
	"github.com/myrjola/fieldprep/internal/errors"
	"github.com/myrjola/fieldprep/internal/logging"
	"github.com/myrjola/fieldprep/internal/sqlite"
	"github.com/myrjola/fieldprep/internal/workout"
)

type config struct {
	// SqliteURL is the catalog database. ":memory:" loads the built-in catalog into an ethereal database.
	SqliteURL string `env:"FIELDPREP_SQLITE_URL" envDefault:":memory:"`
	// TargetMinutes is the session length before the season's session length multiplier.
	TargetMinutes int `env:"FIELDPREP_TARGET_MINUTES" envDefault:"60"`
	// MaxMinutes caps the session estimate.
	MaxMinutes int `env:"FIELDPREP_MAX_MINUTES" envDefault:"75"`
	// LogLevel is one of debug, info, warn and error.
	LogLevel string `env:"FIELDPREP_LOG_LEVEL" envDefault:"info"`
}

var errUsage = errors.NewSentinel("usage: assemble <template.yaml>... <profile.yaml>")

func run(
	ctx context.Context,
	args []string,
	stdout io.Writer,
	stderr io.Writer,
	lookupEnv func(string) (string, bool),
) error {
	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "parse log level")
	}
	logger := logging.NewLogger(stderr, level)

	if len(args) < 2 { //nolint:mnd // at least one template and the profile.
		return errUsage
	}
	templatePaths, profilePath := args[:len(args)-1], args[len(args)-1]
	ctx = logging.WithAttrs(ctx, slog.String("profile", profilePath))

	profile, err := decodeFile(profilePath, workout.DecodeProfile)
	if err != nil {
		return err
	}
	days := make([]workout.WorkoutDay, 0, len(templatePaths))
	for _, path := range templatePaths {
		var day workout.WorkoutDay
		if day, err = decodeFile(path, workout.DecodeWorkoutDay); err != nil {
			return err
		}
		days = append(days, day)
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.LogAttrs(ctx, slog.LevelWarn, "failed to close db", errors.SlogError(closeErr))
		}
	}()

	svc := workout.NewService(db, logger, workout.TimeBudget{
		TargetMinutes:  cfg.TargetMinutes,
		HardMaxMinutes: cfg.MaxMinutes,
	})

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")

	if len(days) == 1 {
		var w workout.AssembledWorkout
		if w, err = svc.Assemble(ctx, days[0], profile); err != nil {
			return errors.Wrap(err, "assemble", slog.String("template", templatePaths[0]))
		}
		if err = enc.Encode(w); err != nil {
			return errors.Wrap(err, "encode workout")
		}
		return nil
	}

	week, err := svc.AssembleWeek(ctx, days, profile)
	if err != nil {
		return errors.Wrap(err, "assemble week")
	}
	if err = enc.Encode(week); err != nil {
		return errors.Wrap(err, "encode workouts")
	}
	return nil
}

func decodeFile[T any](path string, decode func(io.Reader) (T, error)) (_ T, err error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, errors.Wrap(err, "open document", slog.String("path", path))
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			err = errors.Join(err, errors.Wrap(closeErr, "close document"))
		}
	}()

	v, err := decode(f)
	if err != nil {
		return zero, errors.Wrap(err, "decode document", slog.String("path", path))
	}
	return v, nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv); err != nil {
		logger := logging.NewLogger(os.Stderr, slog.LevelInfo)
		logger.LogAttrs(ctx, slog.LevelError, "failure assembling workout", errors.SlogError(err))
		cancel()
		os.Exit(1) //nolint:gocritic // cancel is called explicitly above.
	}
}
