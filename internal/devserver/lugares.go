package devserver

import (
	"net/http"
	"strings"

	"sarc-client/internal/domain/lugares"
)

func (s *server) listLugaresHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	items, err := s.lugares.List(r.Context(), q.Get("busca"))
	if err != nil {
		writeMensagem(w, http.StatusInternalServerError, "Erro interno.")
		return
	}

	categoria := queryID(r, "categoria")
	gratuito := strings.TrimSpace(q.Get("gratuito"))

	out := make([]lugares.Lugar, 0, len(items))
	for _, l := range items {
		if categoria != 0 && l.Categoria.ID != categoria {
			continue
		}
		if gratuito != "" && (gratuito == "true") != l.Gratuito {
			continue
		}
		out = append(out, l)
	}
	writeLista(w, len(out), out)
}

func (s *server) getLugarHandler(w http.ResponseWriter, r *http.Request) {
	l, err := s.lugares.GetByID(r.Context(), urlID(r))
	if err != nil {
		writeMensagem(w, http.StatusNotFound, "Lugar não encontrado.")
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// createLugarHandler existe para sembrar datos en dev; el app móvil no
// crea lugares.
func (s *server) createLugarHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := userID(r.Context()); !ok {
		writeMensagem(w, http.StatusUnauthorized, "Não autenticado.")
		return
	}

	var l lugares.Lugar
	if err := decodeBody(r, &l); err != nil {
		writeMensagem(w, http.StatusBadRequest, "JSON inválido.")
		return
	}
	if strings.TrimSpace(l.Nome) == "" {
		writeCampos(w, http.StatusBadRequest, map[string]string{
			"nome": "Este campo é obrigatório.",
		})
		return
	}

	created, err := s.lugares.Create(r.Context(), l)
	if err != nil {
		writeMensagem(w, http.StatusInternalServerError, "Erro interno.")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *server) listCategoriasHandler(w http.ResponseWriter, _ *http.Request) {
	writeLista(w, len(s.categorias), s.categorias)
}

func (s *server) listAvaliacoesHandler(w http.ResponseWriter, r *http.Request) {
	lugarID := queryID(r, "lugar")

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]lugares.AvaliacaoLugar, 0, len(s.avaliacoes))
	for _, a := range s.avaliacoes {
		if lugarID != 0 && a.Lugar != lugarID {
			continue
		}
		out = append(out, a)
	}
	writeLista(w, len(out), out)
}

func (s *server) createAvaliacaoHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r.Context())
	if !ok {
		writeMensagem(w, http.StatusUnauthorized, "Não autenticado.")
		return
	}

	var a lugares.AvaliacaoLugar
	if err := decodeBody(r, &a); err != nil {
		writeMensagem(w, http.StatusBadRequest, "JSON inválido.")
		return
	}

	if _, err := s.lugares.GetByID(r.Context(), a.Lugar); err != nil {
		writeMensagem(w, http.StatusNotFound, "Lugar não encontrado.")
		return
	}
	if a.Nota < 1 || a.Nota > 5 {
		writeCampos(w, http.StatusBadRequest, map[string]string{
			"nota": "Nota deve estar entre 1 e 5.",
		})
		return
	}

	a.Usuario = uid

	s.mu.Lock()
	s.seqAval++
	a.ID = s.seqAval
	s.avaliacoes = append(s.avaliacoes, a)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, a)
}
