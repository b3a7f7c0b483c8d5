package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/exp/slog"

	"github.com/JackchrisO/Synapse/internal/domain/record"
)

type RecordRepository struct {
	s   *Storage
	log *slog.Logger
}

func NewRecordRepository(s *Storage, log *slog.Logger) *RecordRepository {
	return &RecordRepository{
		s:   s,
		log: log,
	}
}

func (r *RecordRepository) Append(ctx context.Context, rec *record.Record) error {
	fields, err := json.Marshal(rec.Fields)
	if err != nil {
		return fmt.Errorf("marshal fields: %w", err)
	}

	_, err = r.s.db.ExecContext(ctx,
		`INSERT INTO records (id, username, category, rec_date, rec_time, fields)
         VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Username, rec.Category.String(), rec.Date, rec.Time, string(fields))
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

func (r *RecordRepository) List(ctx context.Context, username string, category record.Category) ([]record.Record, error) {
	// rowid preserves insertion order.
	rows, err := r.s.db.QueryContext(ctx,
		`SELECT id, rec_date, rec_time, fields
         FROM records WHERE username = ? AND category = ?
         ORDER BY rowid`,
		username, category.String())
	if err != nil {
		return nil, fmt.Errorf("select records: %w", err)
	}
	defer rows.Close()

	records := make([]record.Record, 0)
	for rows.Next() {
		rec := record.Record{Username: username, Category: category}
		var fields string
		if err := rows.Scan(&rec.ID, &rec.Date, &rec.Time, &fields); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		if err := json.Unmarshal([]byte(fields), &rec.Fields); err != nil {
			return nil, fmt.Errorf("unmarshal fields: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
