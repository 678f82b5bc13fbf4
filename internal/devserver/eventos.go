package devserver

import (
	"net/http"
	"strings"
	"time"

	"sarc-client/internal/domain/eventos"
)

func (s *server) listEventosHandler(w http.ResponseWriter, r *http.Request) {
	items, err := s.eventos.List(r.Context())
	if err != nil {
		writeMensagem(w, http.StatusInternalServerError, "Erro interno.")
		return
	}

	data := strings.TrimSpace(r.URL.Query().Get("data"))
	lugarID := queryID(r, "lugar")

	out := make([]eventos.Evento, 0, len(items))
	for _, e := range items {
		if data != "" && e.Data != data {
			continue
		}
		if lugarID != 0 && e.Lugar.ID != lugarID {
			continue
		}
		out = append(out, e)
	}
	writeLista(w, len(out), out)
}

func (s *server) getEventoHandler(w http.ResponseWriter, r *http.Request) {
	e, err := s.eventos.GetByID(r.Context(), urlID(r))
	if err != nil {
		writeMensagem(w, http.StatusNotFound, "Evento não encontrado.")
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// createEventoHandler crea el evento y la inscripción del creador en un
// solo paso, como hace el backend real.
func (s *server) createEventoHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r.Context())
	if !ok {
		writeMensagem(w, http.StatusUnauthorized, "Não autenticado.")
		return
	}

	var req eventos.CreateInput
	if err := decodeBody(r, &req); err != nil {
		writeMensagem(w, http.StatusBadRequest, "JSON inválido.")
		return
	}
	if strings.TrimSpace(req.Nome) == "" {
		writeCampos(w, http.StatusBadRequest, map[string]string{
			"nome": "Este campo é obrigatório.",
		})
		return
	}

	lugar, err := s.lugares.GetByID(r.Context(), req.Lugar)
	if err != nil {
		writeCampos(w, http.StatusBadRequest, map[string]string{
			"lugar": "Lugar inexistente.",
		})
		return
	}

	criador, err := s.usuarios.GetByID(r.Context(), uid)
	if err != nil {
		writeMensagem(w, http.StatusUnauthorized, "Não autenticado.")
		return
	}

	agora := time.Now().Format(time.RFC3339)
	e, err := s.eventos.Create(r.Context(), eventos.Evento{
		CriadoEm:       agora,
		Nome:           req.Nome,
		Descricao:      req.Descricao,
		Publico:        req.Publico,
		Lugar:          lugar,
		Data:           req.Data,
		LinkGoogleMaps: req.LinkGoogleMaps,
		HoraInicio:     req.HoraInicio,
		HoraFim:        req.HoraFim,
	})
	if err != nil {
		writeMensagem(w, http.StatusInternalServerError, "Erro interno.")
		return
	}

	if _, err := s.eventos.CreateInscricao(r.Context(), eventos.InscricaoEvento{
		CriadoEm:      agora,
		Evento:        e,
		Publico:       e.Publico,
		CriadorEvento: true,
		Usuario:       criador.Usuario,
	}); err != nil {
		writeMensagem(w, http.StatusInternalServerError, "Erro interno.")
		return
	}

	s.log.Info("evento criado", map[string]any{"evento_id": e.ID, "user_id": uid})
	writeJSON(w, http.StatusCreated, e)
}

func (s *server) listInscricoesHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r.Context())
	if !ok {
		writeMensagem(w, http.StatusUnauthorized, "Não autenticado.")
		return
	}

	alvo := queryID(r, "usuario")
	if alvo == 0 {
		alvo = uid
	}

	items, err := s.eventos.ListInscricoes(r.Context(), alvo)
	if err != nil {
		writeMensagem(w, http.StatusInternalServerError, "Erro interno.")
		return
	}
	writeLista(w, len(items), items)
}

type inscricaoRequest struct {
	Evento  int64 `json:"evento"`
	Usuario int64 `json:"usuario"`
}

// createInscricaoHandler inscribe al usuario autenticado.
func (s *server) createInscricaoHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r.Context())
	if !ok {
		writeMensagem(w, http.StatusUnauthorized, "Não autenticado.")
		return
	}

	var req inscricaoRequest
	if err := decodeBody(r, &req); err != nil {
		writeMensagem(w, http.StatusBadRequest, "JSON inválido.")
		return
	}

	s.criarInscricao(w, r, req.Evento, uid)
}

// convidarEventoHandler inscribe a otro usuario (acción "convidar").
func (s *server) convidarEventoHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := userID(r.Context()); !ok {
		writeMensagem(w, http.StatusUnauthorized, "Não autenticado.")
		return
	}

	var req inscricaoRequest
	if err := decodeBody(r, &req); err != nil {
		writeMensagem(w, http.StatusBadRequest, "JSON inválido.")
		return
	}

	s.criarInscricao(w, r, req.Evento, req.Usuario)
}

func (s *server) criarInscricao(w http.ResponseWriter, r *http.Request, eventoID, usuarioID int64) {
	e, err := s.eventos.GetByID(r.Context(), eventoID)
	if err != nil {
		writeCampos(w, http.StatusBadRequest, map[string]string{
			"evento": "Evento inexistente.",
		})
		return
	}

	u, err := s.usuarios.GetByID(r.Context(), usuarioID)
	if err != nil {
		writeCampos(w, http.StatusBadRequest, map[string]string{
			"usuario": "Usuário inexistente.",
		})
		return
	}

	i, err := s.eventos.CreateInscricao(r.Context(), eventos.InscricaoEvento{
		CriadoEm: time.Now().Format(time.RFC3339),
		Evento:   e,
		Publico:  e.Publico,
		Usuario:  u.Usuario,
	})
	if err != nil {
		writeMensagem(w, http.StatusInternalServerError, "Erro interno.")
		return
	}
	writeJSON(w, http.StatusCreated, i)
}
