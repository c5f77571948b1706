package repository

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"

	"github.com/eslsoft/examprep/internal/entity"
	"github.com/eslsoft/examprep/internal/infrastructure/database/migrate"
	"github.com/eslsoft/examprep/internal/repository"
)

type progressRepository struct {
	drv dialect.Driver
}

// NewProgressRepository returns a ProgressRepository backed by the ent SQL driver.
func NewProgressRepository(drv dialect.Driver) repository.ProgressRepository {
	return &progressRepository{drv: drv}
}

func (r *progressRepository) ListCompletedPaperIDs(ctx context.Context, userID string) ([]string, error) {
	b := sql.Dialect(r.drv.Dialect())
	t := b.Table(migrate.UserProgressTable.Name)
	sel := b.Select(t.C("paper_id")).
		From(t).
		Where(sql.And(sql.EQ(t.C("user_id"), userID), sql.EQ(t.C("completed"), true))).
		OrderBy(sql.Asc(t.C("paper_id")))

	ids, err := queryStrings(ctx, r.drv, sel)
	if err != nil {
		return nil, fmt.Errorf("list completed papers: %w", err)
	}
	return ids, nil
}

// Upsert writes one row per (user_id, paper_id); a repeat replaces the previous values.
func (r *progressRepository) Upsert(ctx context.Context, record entity.ProgressRecord) error {
	ins := sql.Dialect(r.drv.Dialect()).
		Insert(migrate.UserProgressTable.Name).
		Columns("user_id", "paper_id", "completed", "completed_at").
		Values(record.UserID, record.PaperID, record.Completed, record.CompletedAt).
		OnConflict(sql.ConflictColumns("user_id", "paper_id"), sql.ResolveWithNewValues())

	if err := exec(ctx, r.drv, ins); err != nil {
		return fmt.Errorf("upsert progress: %w", err)
	}
	return nil
}

type watchHistoryRepository struct {
	drv dialect.Driver
}

// NewWatchHistoryRepository returns a WatchHistoryRepository backed by the ent SQL driver.
func NewWatchHistoryRepository(drv dialect.Driver) repository.WatchHistoryRepository {
	return &watchHistoryRepository{drv: drv}
}

func (r *watchHistoryRepository) ListWatchedVideoIDs(ctx context.Context, userID string) ([]string, error) {
	b := sql.Dialect(r.drv.Dialect())
	t := b.Table(migrate.VideoWatchHistoryTable.Name)
	sel := b.Select(t.C("video_id")).
		From(t).
		Where(sql.EQ(t.C("user_id"), userID)).
		OrderBy(sql.Asc(t.C("video_id")))

	ids, err := queryStrings(ctx, r.drv, sel)
	if err != nil {
		return nil, fmt.Errorf("list watched videos: %w", err)
	}
	return ids, nil
}

// Upsert writes one row per (user_id, video_id); a repeat refreshes watched_at.
func (r *watchHistoryRepository) Upsert(ctx context.Context, record entity.WatchRecord) error {
	ins := sql.Dialect(r.drv.Dialect()).
		Insert(migrate.VideoWatchHistoryTable.Name).
		Columns("user_id", "video_id", "watched_at").
		Values(record.UserID, record.VideoID, record.WatchedAt).
		OnConflict(sql.ConflictColumns("user_id", "video_id"), sql.ResolveWithNewValues())

	if err := exec(ctx, r.drv, ins); err != nil {
		return fmt.Errorf("upsert watch history: %w", err)
	}
	return nil
}

func queryStrings(ctx context.Context, drv dialect.Driver, sel *sql.Selector) ([]string, error) {
	var rows sql.Rows
	q, args := sel.Query()
	if err := drv.Query(ctx, q, args, &rows); err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func exec(ctx context.Context, drv dialect.Driver, q sql.Querier) error {
	var res sql.Result
	query, args := q.Query()
	return drv.Exec(ctx, query, args, &res)
}
