package memory

import (
	"context"
	"sort"
	"sync"

	"sarc-client/internal/domain/amizades"
)

type amizadesRepo struct {
	mu   sync.RWMutex
	seq  int64
	byID map[int64]amizades.AmizadeUsuario
}

func NewAmizadesRepo() amizades.Repository {
	return &amizadesRepo{
		byID: make(map[int64]amizades.AmizadeUsuario),
	}
}

func (r *amizadesRepo) Create(ctx context.Context, a amizades.AmizadeUsuario) (amizades.AmizadeUsuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	a.ID = r.seq
	// Nace como pedido pendiente; aceitar la activa.
	a.Ativo = false
	r.byID[a.ID] = a
	return a, nil
}

func (r *amizadesRepo) GetByID(ctx context.Context, id int64) (amizades.AmizadeUsuario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return amizades.AmizadeUsuario{}, amizades.ErrNotFound
	}
	return a, nil
}

func (r *amizadesRepo) ListByUsuario(ctx context.Context, usuarioID int64, pendientes bool) ([]amizades.AmizadeUsuario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]amizades.AmizadeUsuario, 0)
	for _, a := range r.byID {
		if a.Usuario.ID != usuarioID && a.Amigo.ID != usuarioID {
			continue
		}
		if pendientes && a.Ativo {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *amizadesRepo) Update(ctx context.Context, a amizades.AmizadeUsuario) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[a.ID]; !ok {
		return amizades.ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *amizadesRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return amizades.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
