package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"sarc-client/internal/domain/lugares"
)

// LugaresRepo guarda el record entero como JSONB: el devserver no consulta
// por campos sueltos más allá del nombre, y el shape del Lugar es largo.
type LugaresRepo struct {
	db *sql.DB
}

func NewLugaresRepo(db *sql.DB) *LugaresRepo {
	return &LugaresRepo{db: db}
}

func (r *LugaresRepo) Create(ctx context.Context, l lugares.Lugar) (lugares.Lugar, error) {
	l.Ativo = true

	var id int64
	if err := r.db.QueryRowContext(ctx,
		`INSERT INTO lugares (dados) VALUES ('{}'::jsonb) RETURNING id`,
	).Scan(&id); err != nil {
		return lugares.Lugar{}, err
	}

	l.ID = id
	b, err := json.Marshal(l)
	if err != nil {
		return lugares.Lugar{}, err
	}
	if _, err := r.db.ExecContext(ctx,
		`UPDATE lugares SET dados = $2 WHERE id = $1`, id, b,
	); err != nil {
		return lugares.Lugar{}, err
	}
	return l, nil
}

func (r *LugaresRepo) GetByID(ctx context.Context, id int64) (lugares.Lugar, error) {
	var b []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT dados FROM lugares WHERE id = $1`, id,
	).Scan(&b)
	if err == sql.ErrNoRows {
		return lugares.Lugar{}, lugares.ErrNotFound
	}
	if err != nil {
		return lugares.Lugar{}, err
	}

	var l lugares.Lugar
	if err := json.Unmarshal(b, &l); err != nil {
		return lugares.Lugar{}, err
	}
	return l, nil
}

func (r *LugaresRepo) List(ctx context.Context, busca string) ([]lugares.Lugar, error) {
	busca = strings.TrimSpace(busca)

	query := `SELECT dados FROM lugares ORDER BY id`
	args := []any{}
	if busca != "" {
		query = `SELECT dados FROM lugares WHERE dados->>'nome' ILIKE '%' || $1 || '%' ORDER BY id`
		args = append(args, busca)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]lugares.Lugar, 0)
	for rows.Next() {
		var b []byte
		if err := rows.Scan(&b); err != nil {
			return nil, err
		}
		var l lugares.Lugar
		if err := json.Unmarshal(b, &l); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
