package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"sarc-client/internal/domain/usuarios"
)

type usuariosRepo struct {
	mu   sync.RWMutex
	seq  int64
	byID map[int64]usuarios.Conta
}

func NewUsuariosRepo() usuarios.Repository {
	return &usuariosRepo{
		byID: make(map[int64]usuarios.Conta),
	}
}

func (r *usuariosRepo) Create(ctx context.Context, c usuarios.Conta) (usuarios.Conta, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.byID {
		if strings.EqualFold(e.Email, c.Email) {
			return usuarios.Conta{}, errors.New("email already registered")
		}
		if strings.EqualFold(e.Username, c.Username) {
			return usuarios.Conta{}, errors.New("username already registered")
		}
	}

	r.seq++
	c.ID = r.seq
	c.NomeCompleto = strings.TrimSpace(c.Nome + " " + c.Sobrenome)
	r.byID[c.ID] = c
	return c, nil
}

func (r *usuariosRepo) GetByID(ctx context.Context, id int64) (usuarios.Conta, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return usuarios.Conta{}, usuarios.ErrNotFound
	}
	return c, nil
}

func (r *usuariosRepo) GetByEmail(ctx context.Context, email string) (usuarios.Conta, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.byID {
		if strings.EqualFold(c.Email, email) {
			return c, nil
		}
	}
	return usuarios.Conta{}, usuarios.ErrNotFound
}

func (r *usuariosRepo) GetByUsername(ctx context.Context, username string) (usuarios.Conta, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.byID {
		if strings.EqualFold(c.Username, username) {
			return c, nil
		}
	}
	return usuarios.Conta{}, usuarios.ErrNotFound
}

func (r *usuariosRepo) Update(ctx context.Context, c usuarios.Conta) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[c.ID]; !ok {
		return usuarios.ErrNotFound
	}
	c.NomeCompleto = strings.TrimSpace(c.Nome + " " + c.Sobrenome)
	r.byID[c.ID] = c
	return nil
}

func (r *usuariosRepo) List(ctx context.Context) ([]usuarios.Conta, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]usuarios.Conta, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
