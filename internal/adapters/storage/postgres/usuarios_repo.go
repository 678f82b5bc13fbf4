package postgres

import (
	"context"
	"database/sql"
	"strings"

	"sarc-client/internal/domain/usuarios"
)

type UsuariosRepo struct {
	db *sql.DB
}

func NewUsuariosRepo(db *sql.DB) *UsuariosRepo {
	return &UsuariosRepo{db: db}
}

const usuarioCols = `
	id, username, first_name, last_name, cellphone, email,
	birth_date, avatar, senha_hash, codigo_reset
`

func (r *UsuariosRepo) Create(ctx context.Context, c usuarios.Conta) (usuarios.Conta, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO usuarios (
			username, first_name, last_name, cellphone, email,
			birth_date, avatar, senha_hash, codigo_reset
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id
	`,
		c.Username,
		c.Nome,
		c.Sobrenome,
		c.Celular,
		c.Email,
		c.Nascimento,
		c.Avatar,
		c.SenhaHash,
		c.CodigoReset,
	).Scan(&c.ID)
	if err != nil {
		return usuarios.Conta{}, err
	}
	c.NomeCompleto = strings.TrimSpace(c.Nome + " " + c.Sobrenome)
	return c, nil
}

func (r *UsuariosRepo) GetByID(ctx context.Context, id int64) (usuarios.Conta, error) {
	return r.get(ctx, `WHERE id = $1`, id)
}

func (r *UsuariosRepo) GetByEmail(ctx context.Context, email string) (usuarios.Conta, error) {
	return r.get(ctx, `WHERE lower(email) = lower($1)`, email)
}

func (r *UsuariosRepo) GetByUsername(ctx context.Context, username string) (usuarios.Conta, error) {
	return r.get(ctx, `WHERE lower(username) = lower($1)`, username)
}

func (r *UsuariosRepo) get(ctx context.Context, where string, arg any) (usuarios.Conta, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+usuarioCols+` FROM usuarios `+where, arg)

	c, err := scanConta(row)
	if err == sql.ErrNoRows {
		return usuarios.Conta{}, usuarios.ErrNotFound
	}
	if err != nil {
		return usuarios.Conta{}, err
	}
	return c, nil
}

func (r *UsuariosRepo) Update(ctx context.Context, c usuarios.Conta) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE usuarios
		SET
			username = $2,
			first_name = $3,
			last_name = $4,
			cellphone = $5,
			email = $6,
			birth_date = $7,
			avatar = $8,
			senha_hash = $9,
			codigo_reset = $10
		WHERE id = $1
	`,
		c.ID,
		c.Username,
		c.Nome,
		c.Sobrenome,
		c.Celular,
		c.Email,
		c.Nascimento,
		c.Avatar,
		c.SenhaHash,
		c.CodigoReset,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return usuarios.ErrNotFound
	}
	return nil
}

func (r *UsuariosRepo) List(ctx context.Context) ([]usuarios.Conta, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+usuarioCols+` FROM usuarios ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]usuarios.Conta, 0)
	for rows.Next() {
		c, err := scanConta(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanConta(s scanner) (usuarios.Conta, error) {
	var c usuarios.Conta
	err := s.Scan(
		&c.ID,
		&c.Username,
		&c.Nome,
		&c.Sobrenome,
		&c.Celular,
		&c.Email,
		&c.Nascimento,
		&c.Avatar,
		&c.SenhaHash,
		&c.CodigoReset,
	)
	if err != nil {
		return usuarios.Conta{}, err
	}
	c.NomeCompleto = strings.TrimSpace(c.Nome + " " + c.Sobrenome)
	return c, nil
}
