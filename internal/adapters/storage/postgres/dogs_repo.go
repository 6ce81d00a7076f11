package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"pedigree-organizer/internal/domain/dogs"
)

// Tabla esperada:
//
//	CREATE TABLE dogs (
//	    id         text PRIMARY KEY,
//	    name       text NOT NULL,
//	    op_id      bigint,
//	    sex        text NOT NULL DEFAULT '',
//	    color      text NOT NULL DEFAULT '',
//	    birth_date text NOT NULL DEFAULT '',
//	    sire_id    text NOT NULL DEFAULT '',
//	    dam_id     text NOT NULL DEFAULT '',
//	    tags       jsonb NOT NULL DEFAULT '[]',
//	    source_url text NOT NULL DEFAULT '',
//	    notes      text NOT NULL DEFAULT '',
//	    created_at timestamptz NOT NULL
//	);
//
// sire_id/dam_id van sin FK a propósito: las referencias colgantes son un
// caso soportado del dominio, no una violación de integridad.
type DogsRepo struct {
	db *sql.DB
}

func NewDogsRepo(db *sql.DB) *DogsRepo {
	return &DogsRepo{db: db}
}

func (r *DogsRepo) Create(ctx context.Context, d dogs.Dog) error {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO dogs (
			id, name, op_id,
			sex, color, birth_date,
			sire_id, dam_id, tags,
			source_url, notes, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		d.ID,
		d.Name,
		toNullInt(d.OPID),
		d.Sex,
		d.Color,
		d.BirthDate,
		d.SireID,
		d.DamID,
		string(tagsJSON),
		d.SourceURL,
		d.Notes,
		d.CreatedAt,
	)
	return err
}

func (r *DogsRepo) GetByID(ctx context.Context, id string) (dogs.Dog, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return dogs.Dog{}, dogs.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, name, op_id,
			sex, color, birth_date,
			sire_id, dam_id, tags,
			source_url, notes, created_at
		FROM dogs
		WHERE id = $1
	`, id)

	d, err := scanDog(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return dogs.Dog{}, dogs.ErrNotFound
		}
		return dogs.Dog{}, err
	}
	return d, nil
}

func (r *DogsRepo) Search(ctx context.Context, namePattern string, limit int) ([]dogs.Dog, error) {
	var (
		rows *sql.Rows
		err  error
	)

	if strings.TrimSpace(namePattern) == "" {
		rows, err = r.db.QueryContext(ctx, `
			SELECT
				id, name, op_id,
				sex, color, birth_date,
				sire_id, dam_id, tags,
				source_url, notes, created_at
			FROM dogs
			LIMIT $1
		`, limit)
	} else {
		rows, err = r.db.QueryContext(ctx, `
			SELECT
				id, name, op_id,
				sex, color, birth_date,
				sire_id, dam_id, tags,
				source_url, notes, created_at
			FROM dogs
			WHERE name ILIKE '%' || $1 || '%'
			LIMIT $2
		`, namePattern, limit)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dogs.Dog, 0)
	for rows.Next() {
		d, err := scanDog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDog(row rowScanner) (dogs.Dog, error) {
	var (
		d        dogs.Dog
		opID     sql.NullInt64
		tagsJSON []byte
	)

	if err := row.Scan(
		&d.ID,
		&d.Name,
		&opID,
		&d.Sex,
		&d.Color,
		&d.BirthDate,
		&d.SireID,
		&d.DamID,
		&tagsJSON,
		&d.SourceURL,
		&d.Notes,
		&d.CreatedAt,
	); err != nil {
		return dogs.Dog{}, err
	}

	if opID.Valid {
		v := int(opID.Int64)
		d.OPID = &v
	}

	d.Tags = []string{}
	if len(tagsJSON) > 0 {
		if err := json.Unmarshal(tagsJSON, &d.Tags); err != nil {
			return dogs.Dog{}, err
		}
	}

	return d, nil
}

func toNullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
