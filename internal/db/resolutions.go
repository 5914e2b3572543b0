package db

import (
	"database/sql"
	"fmt"
	"time"
)

// RecordResolution inserts a resolution and its spans in one transaction.
// CreatedAt defaults to the current time when zero.
func (db *DB) RecordResolution(res *Resolution) error {
	if res.CreatedAt.IsZero() {
		res.CreatedAt = time.Now().UTC()
	}

	return db.WithTransaction(func(tx *Tx) error {
		_, err := tx.Exec(`
			INSERT INTO resolutions (id, unit, operation, direction, reference, amount, width, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`,
			res.ID,
			res.Unit,
			res.Operation,
			res.Direction,
			res.Reference.UTC(),
			res.Amount,
			res.Width,
			res.CreatedAt.UTC(),
		)
		if err != nil {
			if IsDuplicate(err) {
				return fmt.Errorf("%w: resolution %s", ErrDuplicate, res.ID)
			}
			return err
		}

		for i, s := range res.Spans {
			_, err := tx.Exec(`
				INSERT INTO resolution_spans (resolution_id, seq, span_begin, span_end)
				VALUES (?, ?, ?, ?)
			`, res.ID, i, s.Begin.UTC(), s.End.UTC())
			if err != nil {
				return fmt.Errorf("span %d: %w", i, err)
			}
			res.Spans[i].Seq = i
		}
		return nil
	})
}

// GetResolution retrieves a resolution and its spans by ID
func (db *DB) GetResolution(id string) (*Resolution, error) {
	res := &Resolution{}

	query := `
		SELECT id, unit, operation, direction, reference, amount, width, created_at
		FROM resolutions
		WHERE id = ?
	`

	err := db.QueryRow(query, id).Scan(
		&res.ID,
		&res.Unit,
		&res.Operation,
		&res.Direction,
		&res.Reference,
		&res.Amount,
		&res.Width,
		&res.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	spans, err := db.getSpans(id)
	if err != nil {
		return nil, err
	}
	res.Spans = spans

	return res, nil
}

// ListResolutions returns up to limit resolutions, newest first.
// A limit of zero or less returns all of them.
func (db *DB) ListResolutions(limit int) ([]*Resolution, error) {
	query := `
		SELECT id, unit, operation, direction, reference, amount, width, created_at
		FROM resolutions
		ORDER BY created_at DESC, rowid DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}

	var resolutions []*Resolution
	for rows.Next() {
		res := &Resolution{}
		err := rows.Scan(
			&res.ID,
			&res.Unit,
			&res.Operation,
			&res.Direction,
			&res.Reference,
			&res.Amount,
			&res.Width,
			&res.CreatedAt,
		)
		if err != nil {
			rows.Close()
			return nil, err
		}
		resolutions = append(resolutions, res)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	// Close before loading spans; an in-memory journal has a single connection.
	rows.Close()

	for _, res := range resolutions {
		spans, err := db.getSpans(res.ID)
		if err != nil {
			return nil, err
		}
		res.Spans = spans
	}

	return resolutions, nil
}

// DeleteResolution removes a resolution; its spans cascade
func (db *DB) DeleteResolution(id string) error {
	result, err := db.Exec("DELETE FROM resolutions WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *DB) getSpans(id string) ([]SpanRecord, error) {
	rows, err := db.Query(`
		SELECT seq, span_begin, span_end
		FROM resolution_spans
		WHERE resolution_id = ?
		ORDER BY seq
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var spans []SpanRecord
	for rows.Next() {
		var s SpanRecord
		if err := rows.Scan(&s.Seq, &s.Begin, &s.End); err != nil {
			return nil, err
		}
		spans = append(spans, s)
	}

	return spans, rows.Err()
}
