package memory

import (
	"context"
	"sort"
	"sync"

	"sarc-client/internal/domain/eventos"
)

type eventosRepo struct {
	mu sync.RWMutex

	seqEventos    int64
	seqInscricoes int64

	eventos    map[int64]eventos.Evento
	inscricoes map[int64]eventos.InscricaoEvento
}

func NewEventosRepo() eventos.Repository {
	return &eventosRepo{
		eventos:    make(map[int64]eventos.Evento),
		inscricoes: make(map[int64]eventos.InscricaoEvento),
	}
}

func (r *eventosRepo) Create(ctx context.Context, e eventos.Evento) (eventos.Evento, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seqEventos++
	e.ID = r.seqEventos
	e.Ativo = true
	r.eventos[e.ID] = e
	return e, nil
}

func (r *eventosRepo) GetByID(ctx context.Context, id int64) (eventos.Evento, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.eventos[id]
	if !ok {
		return eventos.Evento{}, eventos.ErrNotFound
	}
	return e, nil
}

func (r *eventosRepo) List(ctx context.Context) ([]eventos.Evento, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]eventos.Evento, 0, len(r.eventos))
	for _, e := range r.eventos {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *eventosRepo) CreateInscricao(ctx context.Context, i eventos.InscricaoEvento) (eventos.InscricaoEvento, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seqInscricoes++
	i.ID = r.seqInscricoes
	i.Ativo = true
	r.inscricoes[i.ID] = i
	return i, nil
}

func (r *eventosRepo) ListInscricoes(ctx context.Context, usuarioID int64) ([]eventos.InscricaoEvento, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]eventos.InscricaoEvento, 0)
	for _, i := range r.inscricoes {
		if i.Usuario.ID == usuarioID {
			out = append(out, i)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
