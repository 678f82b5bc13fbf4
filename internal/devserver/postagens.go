package devserver

import (
	"net/http"
	"strings"
	"time"

	"sarc-client/internal/domain/postagens"
)

func (s *server) listPostagensHandler(w http.ResponseWriter, r *http.Request) {
	items, err := s.postagens.List(r.Context())
	if err != nil {
		writeMensagem(w, http.StatusInternalServerError, "Erro interno.")
		return
	}
	writeLista(w, len(items), items)
}

func (s *server) getPostagemHandler(w http.ResponseWriter, r *http.Request) {
	p, err := s.postagens.GetByID(r.Context(), urlID(r))
	if err != nil {
		writeMensagem(w, http.StatusNotFound, "Postagem não encontrada.")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// createPostagemHandler siembra entradas de blog en dev. Autor es el
// usuario autenticado.
func (s *server) createPostagemHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r.Context())
	if !ok {
		writeMensagem(w, http.StatusUnauthorized, "Não autenticado.")
		return
	}

	var p postagens.Postagem
	if err := decodeBody(r, &p); err != nil {
		writeMensagem(w, http.StatusBadRequest, "JSON inválido.")
		return
	}
	if strings.TrimSpace(p.Titulo) == "" {
		writeCampos(w, http.StatusBadRequest, map[string]string{
			"titulo": "Este campo é obrigatório.",
		})
		return
	}

	autor, err := s.usuarios.GetByID(r.Context(), uid)
	if err != nil {
		writeMensagem(w, http.StatusUnauthorized, "Não autenticado.")
		return
	}

	agora := time.Now().Format(time.RFC3339)
	p.CriadoEm = agora
	p.PublicadoEm = agora
	p.Autor = autor.Usuario

	created, err := s.postagens.Create(r.Context(), p)
	if err != nil {
		writeMensagem(w, http.StatusInternalServerError, "Erro interno.")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
