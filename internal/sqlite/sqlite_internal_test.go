package sqlite

import (
	"testing"

	"github.com/myrjola/fieldprep/internal/testhelpers"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	db, err := NewDatabase(t.Context(), ":memory:", logger)
	if err != nil {
		t.Fatalf("NewDatabase() error = %v", err)
	}
	t.Cleanup(func() {
		if err = db.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return db
}

func TestNewDatabase_catalog(t *testing.T) {
	t.Parallel()
	db := newTestDatabase(t)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{
			name:  "every exercise is tagged",
			query: "SELECT count(*) FROM exercises WHERE id NOT IN (SELECT exercise_id FROM exercise_tags)",
			want:  0,
		},
		{
			name: "every tag scores all positions",
			query: `SELECT count(*) FROM exercise_tags t
			        WHERE (SELECT count(*) FROM exercise_position_relevance p WHERE p.exercise_id = t.exercise_id) != 3`,
			want: 0,
		},
		{
			name: "every tag scores all sides",
			query: `SELECT count(*) FROM exercise_tags t
			        WHERE (SELECT count(*) FROM exercise_side_relevance s WHERE s.exercise_id = t.exercise_id) != 3`,
			want: 0,
		},
		{
			name:  "fallback exercises are simplest complexity",
			query: "SELECT count(*) FROM exercise_tags WHERE exercise_id IN ('goblet-squat', 'push-up') AND complexity = 1",
			want:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got int
			if err := db.ReadOnly.QueryRowContext(t.Context(), tt.query).Scan(&got); err != nil {
				t.Fatalf("query error = %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewDatabase_fixturesAreIdempotent(t *testing.T) {
	t.Parallel()
	db := newTestDatabase(t)
	ctx := t.Context()

	var before, after int
	if err := db.ReadOnly.QueryRowContext(ctx, "SELECT count(*) FROM exercises").Scan(&before); err != nil {
		t.Fatalf("count error = %v", err)
	}
	if _, err := db.ReadWrite.ExecContext(ctx, schemaDefinition); err != nil {
		t.Fatalf("reapply schema error = %v", err)
	}
	if _, err := db.ReadWrite.ExecContext(ctx, fixtures); err != nil {
		t.Fatalf("reapply fixtures error = %v", err)
	}
	if err := db.ReadOnly.QueryRowContext(ctx, "SELECT count(*) FROM exercises").Scan(&after); err != nil {
		t.Fatalf("count error = %v", err)
	}
	if before == 0 || before != after {
		t.Errorf("exercise count before = %d, after = %d", before, after)
	}
}

func TestDatabase_readOnlyPoolRejectsWrites(t *testing.T) {
	t.Parallel()
	db := newTestDatabase(t)

	_, err := db.ReadOnly.ExecContext(t.Context(), "DELETE FROM exercises")
	if err == nil {
		t.Error("expected write on the read-only pool to fail")
	}
}
