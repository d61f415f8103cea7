package workout

import (
	"context"
	"log/slog"
	"time"

	"github.com/myrjola/fieldprep/internal/errors"
	"github.com/myrjola/fieldprep/internal/sqlite"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentAssemblies bounds the goroutines used by [Service.AssembleWeek].
const maxConcurrentAssemblies = 4

// Service assembles workouts against the catalog stored in SQLite.
type Service struct {
	catalog *SQLiteCatalogRepository
	logger  *slog.Logger
	budget  TimeBudget
	now     func() time.Time
}

// NewService creates a workout service. A zero budget uses [DefaultTimeBudget].
func NewService(db *sqlite.Database, logger *slog.Logger, budget TimeBudget) *Service {
	return &Service{
		catalog: NewSQLiteCatalogRepository(db),
		logger:  logger,
		budget:  budget.sanitized(),
		now:     time.Now,
	}
}

func (s *Service) assembler(ctx context.Context) (*Assembler, error) {
	snapshot, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "snapshot catalog")
	}
	return NewAssembler(snapshot, s.budget), nil
}

// Assemble personalizes day for profile as of today.
func (s *Service) Assemble(ctx context.Context, day WorkoutDay, profile PlayerProfile) (AssembledWorkout, error) {
	a, err := s.assembler(ctx)
	if err != nil {
		return AssembledWorkout{}, err
	}
	w := a.Assemble(day, profile, s.now())
	s.logAssembled(ctx, w)
	return w, nil
}

// AssembleWeek assembles several days concurrently against one catalog snapshot. Results keep the order of
// days.
func (s *Service) AssembleWeek(ctx context.Context, days []WorkoutDay, profile PlayerProfile) ([]AssembledWorkout, error) {
	a, err := s.assembler(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	out := make([]AssembledWorkout, len(days))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentAssemblies)
	for i, day := range days {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return errors.Wrap(err, "assemble day", slog.String("day_id", day.ID))
			}
			out[i] = a.Assemble(day, profile, now)
			s.logAssembled(ctx, out[i])
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, errors.Wrap(err, "assemble week")
	}
	return out, nil
}

// Recommend returns the best exercise for category. It returns [ErrNotFound] when nothing qualifies.
func (s *Service) Recommend(
	ctx context.Context,
	category string,
	profile PlayerProfile,
	exclude []string,
) (ExerciseRecommendation, error) {
	a, err := s.assembler(ctx)
	if err != nil {
		return ExerciseRecommendation{}, err
	}
	rec := a.Selector().Select(category, profile, exclude)
	if rec == nil {
		return ExerciseRecommendation{}, errors.Wrap(ErrNotFound, "no recommendation",
			slog.String("category", category))
	}
	return *rec, nil
}

// Alternatives returns up to n substitutes for the exercise Recommend would pick.
func (s *Service) Alternatives(
	ctx context.Context,
	category string,
	profile PlayerProfile,
	exclude []string,
	n int,
) ([]ExerciseRecommendation, error) {
	a, err := s.assembler(ctx)
	if err != nil {
		return nil, err
	}
	return a.Selector().Alternatives(category, profile, exclude, n), nil
}

func (s *Service) logAssembled(ctx context.Context, w AssembledWorkout) {
	exercises := 0
	for _, section := range w.Day.Sections {
		exercises += len(section.Exercises)
	}
	s.logger.LogAttrs(ctx, slog.LevelDebug, "assembled workout",
		slog.String("day_id", w.Day.ID),
		slog.String("cycle_phase", string(w.Context.Cycle.Phase)),
		slog.String("tournament_mode", string(w.Context.TournamentMode)),
		slog.Int("exercises", exercises),
		slog.Int("estimated_minutes", w.Info.EstimatedMinutes))
	if w.Info.TimeNote != "" {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "reduced workout to fit time budget",
			slog.String("day_id", w.Day.ID),
			slog.String("note", w.Info.TimeNote))
	}
}
