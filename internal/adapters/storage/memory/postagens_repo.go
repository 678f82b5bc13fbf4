package memory

import (
	"context"
	"sort"
	"sync"

	"sarc-client/internal/domain/postagens"
)

type postagensRepo struct {
	mu   sync.RWMutex
	seq  int64
	byID map[int64]postagens.Postagem
}

func NewPostagensRepo() postagens.Repository {
	return &postagensRepo{
		byID: make(map[int64]postagens.Postagem),
	}
}

func (r *postagensRepo) Create(ctx context.Context, p postagens.Postagem) (postagens.Postagem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	p.ID = r.seq
	p.Ativo = true
	r.byID[p.ID] = p
	return p, nil
}

func (r *postagensRepo) GetByID(ctx context.Context, id int64) (postagens.Postagem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return postagens.Postagem{}, postagens.ErrNotFound
	}
	return p, nil
}

func (r *postagensRepo) List(ctx context.Context) ([]postagens.Postagem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]postagens.Postagem, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	// Blog: más recientes primero.
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}
