package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/dashview/internal/model"
)

// SaveCollection replaces the stored snapshot with records, preserving their
// order, and bumps the revision. The collection is validated first; an
// invalid collection writes nothing.
func (s *Store) SaveCollection(ctx context.Context, records []model.Record) (err error) {
	if err := model.ValidateCollection(records); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM pharmacies`); err != nil {
		return fmt.Errorf("clear pharmacies: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO pharmacies (id, seq, name, city, latitude, longitude, license_number, number_sells, number_buys)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err = stmt.ExecContext(ctx,
			int64(r.ID), i, r.Name, r.City, r.Latitude, r.Longitude, r.LicenseNumber, r.Sells, r.Buys,
		); err != nil {
			return fmt.Errorf("insert pharmacy %d: %w", r.ID, err)
		}
	}

	if _, err = tx.ExecContext(ctx, `UPDATE revision SET value = value + 1 WHERE singleton = 1`); err != nil {
		return fmt.Errorf("bump revision: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// LoadCollection returns the stored snapshot in saved order.
// Returns an empty slice (not nil) if nothing has been saved.
func (s *Store) LoadCollection(ctx context.Context) ([]model.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, city, latitude, longitude, license_number, number_sells, number_buys
		FROM pharmacies
		ORDER BY seq ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query pharmacies: %w", err)
	}
	defer rows.Close()

	records := []model.Record{}
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pharmacies: %w", err)
	}

	return records, nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pharmacies`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count pharmacies: %w", err)
	}
	return n, nil
}

// Revision returns the number of saves applied to this database.
func (s *Store) Revision(ctx context.Context) (int64, error) {
	var v int64
	if err := s.db.QueryRowContext(ctx, `SELECT value FROM revision WHERE singleton = 1`).Scan(&v); err != nil {
		return 0, fmt.Errorf("read revision: %w", err)
	}
	return v, nil
}

func scanRecord(rows *sql.Rows) (model.Record, error) {
	var r model.Record
	var id int64
	if err := rows.Scan(
		&id, &r.Name, &r.City, &r.Latitude, &r.Longitude, &r.LicenseNumber, &r.Sells, &r.Buys,
	); err != nil {
		return model.Record{}, fmt.Errorf("scan pharmacy: %w", err)
	}
	r.ID = model.ID(id)
	return r, nil
}
