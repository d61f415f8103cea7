package workout

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/myrjola/fieldprep/internal/errors"
	"github.com/myrjola/fieldprep/internal/sqlite"
)

// ErrNotFound is returned when a catalog lookup has no match.
var ErrNotFound = errors.NewSentinel("not found")

// SQLiteCatalogRepository reads the exercise catalog from SQLite.
type SQLiteCatalogRepository struct {
	db *sqlite.Database
}

// NewSQLiteCatalogRepository creates a catalog repository backed by db.
func NewSQLiteCatalogRepository(db *sqlite.Database) *SQLiteCatalogRepository {
	return &SQLiteCatalogRepository{db: db}
}

// Get retrieves a single exercise and its tag.
func (r *SQLiteCatalogRepository) Get(ctx context.Context, id string) (CatalogEntry, error) {
	var (
		entry CatalogEntry
		tag   nullableTag
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT e.id, e.name, e.category, t.pattern, t.plane, t.energy_system, t.complexity
		FROM exercises e
		LEFT JOIN exercise_tags t ON t.exercise_id = e.id
		WHERE e.id = ?`, id).Scan(
		&entry.Exercise.ID,
		&entry.Exercise.Name,
		&entry.Exercise.Category,
		&tag.pattern,
		&tag.plane,
		&tag.energySystem,
		&tag.complexity,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return CatalogEntry{}, ErrNotFound
	}
	if err != nil {
		return CatalogEntry{}, errors.Wrap(err, "query exercise", slog.String("exercise_id", id))
	}

	entries := []CatalogEntry{entry}
	if t, ok := tag.toTag(); ok {
		entries[0].Tag = &t
		if err = r.fetchRelevance(ctx, entries); err != nil {
			return CatalogEntry{}, errors.Wrap(err, "fetch relevance", slog.String("exercise_id", id))
		}
	}
	return entries[0], nil
}

// List returns every exercise in catalog order.
func (r *SQLiteCatalogRepository) List(ctx context.Context) (_ []CatalogEntry, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT e.id, e.name, e.category, t.pattern, t.plane, t.energy_system, t.complexity
		FROM exercises e
		LEFT JOIN exercise_tags t ON t.exercise_id = e.id
		ORDER BY e.sort_order, e.id`)
	if err != nil {
		return nil, errors.Wrap(err, "query exercises")
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, errors.Wrap(closeErr, "close rows"))
		}
	}()

	var entries []CatalogEntry
	for rows.Next() {
		var (
			entry CatalogEntry
			tag   nullableTag
		)
		if err = rows.Scan(
			&entry.Exercise.ID,
			&entry.Exercise.Name,
			&entry.Exercise.Category,
			&tag.pattern,
			&tag.plane,
			&tag.energySystem,
			&tag.complexity,
		); err != nil {
			return nil, errors.Wrap(err, "scan exercise")
		}
		if t, ok := tag.toTag(); ok {
			entry.Tag = &t
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate exercises")
	}

	if err = r.fetchRelevance(ctx, entries); err != nil {
		return nil, errors.Wrap(err, "fetch relevance")
	}
	return entries, nil
}

// Snapshot loads the whole catalog into an immutable [MemoryCatalog].
func (r *SQLiteCatalogRepository) Snapshot(ctx context.Context) (*MemoryCatalog, error) {
	entries, err := r.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list catalog")
	}
	return NewMemoryCatalog(entries), nil
}

// fetchRelevance fills the relevance maps of the tagged entries.
func (r *SQLiteCatalogRepository) fetchRelevance(ctx context.Context, entries []CatalogEntry) error {
	byID := make(map[string]*ExerciseTag, len(entries))
	for i := range entries {
		if entries[i].Tag != nil {
			byID[entries[i].Exercise.ID] = entries[i].Tag
		}
	}
	if len(byID) == 0 {
		return nil
	}

	if err := r.scanRelevance(ctx, `SELECT exercise_id, position, score FROM exercise_position_relevance`,
		func(id, key string, score int) {
			if t, ok := byID[id]; ok {
				if t.PositionRelevance == nil {
					t.PositionRelevance = make(map[Position]int)
				}
				t.PositionRelevance[Position(key)] = score
			}
		}); err != nil {
		return errors.Wrap(err, "position relevance")
	}
	if err := r.scanRelevance(ctx, `SELECT exercise_id, side, score FROM exercise_side_relevance`,
		func(id, key string, score int) {
			if t, ok := byID[id]; ok {
				if t.SideRelevance == nil {
					t.SideRelevance = make(map[SideBias]int)
				}
				t.SideRelevance[SideBias(key)] = score
			}
		}); err != nil {
		return errors.Wrap(err, "side relevance")
	}
	return nil
}

func (r *SQLiteCatalogRepository) scanRelevance(
	ctx context.Context,
	query string,
	apply func(id, key string, score int),
) (err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, query)
	if err != nil {
		return errors.Wrap(err, "query relevance")
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, errors.Wrap(closeErr, "close rows"))
		}
	}()

	for rows.Next() {
		var (
			id, key string
			score   int
		)
		if err = rows.Scan(&id, &key, &score); err != nil {
			return errors.Wrap(err, "scan relevance")
		}
		apply(id, key, score)
	}
	if err = rows.Err(); err != nil {
		return errors.Wrap(err, "iterate relevance")
	}
	return nil
}

// nullableTag scans the LEFT JOINed tag columns.
type nullableTag struct {
	pattern      sql.NullString
	plane        sql.NullString
	energySystem sql.NullString
	complexity   sql.NullInt64
}

func (n nullableTag) toTag() (ExerciseTag, bool) {
	if !n.pattern.Valid {
		return ExerciseTag{}, false
	}
	return ExerciseTag{
		Pattern:           MovementPattern(n.pattern.String),
		Plane:             Plane(n.plane.String),
		EnergySystem:      EnergySystem(n.energySystem.String),
		Complexity:        int(n.complexity.Int64),
		PositionRelevance: nil,
		SideRelevance:     nil,
	}, true
}
