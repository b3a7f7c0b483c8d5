package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"github.com/JackchrisO/Synapse/internal/domain/record"
)

type RecordRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewRecordRepository(pool *pgxpool.Pool, log *slog.Logger) *RecordRepository {
	return &RecordRepository{
		pool: pool,
		log:  log.With("component", "record_repository"),
	}
}

func (r *RecordRepository) Append(ctx context.Context, rec *record.Record) error {
	const query = `
		INSERT INTO records (id, username, category, rec_date, rec_time, fields)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		rec.ID, rec.Username, rec.Category.String(), rec.Date, rec.Time, rec.Fields)
	if err != nil {
		r.log.Error("failed to append record",
			"username", rec.Username, "category", rec.Category, "error", err)
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

func (r *RecordRepository) List(ctx context.Context, username string, category record.Category) ([]record.Record, error) {
	const query = `
		SELECT id, rec_date, rec_time, fields
		FROM records
		WHERE username = $1 AND category = $2
		ORDER BY seq`

	rows, err := r.pool.Query(ctx, query, username, category.String())
	if err != nil {
		r.log.Error("failed to list records",
			"username", username, "category", category, "error", err)
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	records := make([]record.Record, 0)
	for rows.Next() {
		rec := record.Record{Username: username, Category: category}
		if err := rows.Scan(&rec.ID, &rec.Date, &rec.Time, &rec.Fields); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
