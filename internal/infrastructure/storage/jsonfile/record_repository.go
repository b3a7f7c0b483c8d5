package jsonfile

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"github.com/JackchrisO/Synapse/internal/domain/record"
)

// Keys the repository lifts out of the flat legacy document into the
// Record struct; everything else stays in Fields.
const (
	docKeyID   = "id"
	docKeyDate = "data"
	docKeyTime = "hora"
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
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := rec.Category.StorageKey()
	byCategory, ok := r.s.records[rec.Username]
	if !ok {
		byCategory = make(map[string][]recordDoc)
		r.s.records[rec.Username] = byCategory
	}

	byCategory[key] = append(byCategory[key], docFromRecord(rec))

	if err := r.s.saveRecords(); err != nil {
		byCategory[key] = byCategory[key][:len(byCategory[key])-1]
		return fmt.Errorf("persist records: %w", err)
	}

	return nil
}

func (r *RecordRepository) List(ctx context.Context, username string, category record.Category) ([]record.Record, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	docs := r.s.records[username][category.StorageKey()]
	records := make([]record.Record, 0, len(docs))
	for _, doc := range docs {
		records = append(records, recordFromDoc(username, category, doc))
	}

	return records, nil
}

func docFromRecord(rec *record.Record) recordDoc {
	doc := make(recordDoc, len(rec.Fields)+3)
	for k, v := range rec.Fields {
		doc[k] = v
	}
	doc[docKeyID] = rec.ID
	doc[docKeyDate] = rec.Date
	if rec.Time != "" {
		doc[docKeyTime] = rec.Time
	}
	return doc
}

func recordFromDoc(username string, category record.Category, doc recordDoc) record.Record {
	rec := record.Record{
		ID:       doc[docKeyID],
		Username: username,
		Category: category,
		Date:     doc[docKeyDate],
		Time:     doc[docKeyTime],
		Fields:   make(map[string]string, len(doc)),
	}
	for k, v := range doc {
		switch k {
		case docKeyID, docKeyDate, docKeyTime:
		default:
			rec.Fields[k] = v
		}
	}
	return rec
}
