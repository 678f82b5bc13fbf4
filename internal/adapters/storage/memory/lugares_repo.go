package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"sarc-client/internal/domain/lugares"
)

type lugaresRepo struct {
	mu   sync.RWMutex
	seq  int64
	byID map[int64]lugares.Lugar
}

func NewLugaresRepo() lugares.Repository {
	return &lugaresRepo{
		byID: make(map[int64]lugares.Lugar),
	}
}

func (r *lugaresRepo) Create(ctx context.Context, l lugares.Lugar) (lugares.Lugar, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	l.ID = r.seq
	l.Ativo = true
	r.byID[l.ID] = l
	return l, nil
}

func (r *lugaresRepo) GetByID(ctx context.Context, id int64) (lugares.Lugar, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.byID[id]
	if !ok {
		return lugares.Lugar{}, lugares.ErrNotFound
	}
	return l, nil
}

func (r *lugaresRepo) List(ctx context.Context, busca string) ([]lugares.Lugar, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	busca = strings.ToLower(strings.TrimSpace(busca))

	out := make([]lugares.Lugar, 0, len(r.byID))
	for _, l := range r.byID {
		if busca != "" && !strings.Contains(strings.ToLower(l.Nome), busca) {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
