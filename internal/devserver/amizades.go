package devserver

import (
	"net/http"
	"time"

	"sarc-client/internal/domain/amizades"
)

func (s *server) listAmizadesHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r.Context())
	if !ok {
		writeMensagem(w, http.StatusUnauthorized, "Não autenticado.")
		return
	}

	alvo := queryID(r, "usuario")
	if alvo == 0 {
		alvo = uid
	}
	pendentes := r.URL.Query().Get("ativo") == "false"

	items, err := s.amizades.ListByUsuario(r.Context(), alvo, pendentes)
	if err != nil {
		writeMensagem(w, http.StatusInternalServerError, "Erro interno.")
		return
	}
	writeLista(w, len(items), items)
}

type amizadeRequest struct {
	Usuario int64 `json:"usuario"`
	Amigo   int64 `json:"amigo"`
}

func (s *server) createAmizadeHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r.Context())
	if !ok {
		writeMensagem(w, http.StatusUnauthorized, "Não autenticado.")
		return
	}

	var req amizadeRequest
	if err := decodeBody(r, &req); err != nil {
		writeMensagem(w, http.StatusBadRequest, "JSON inválido.")
		return
	}
	if req.Usuario == 0 {
		req.Usuario = uid
	}
	if req.Usuario == req.Amigo {
		writeCampos(w, http.StatusBadRequest, map[string]string{
			"amigo": "Não é possível se adicionar como amigo.",
		})
		return
	}

	usuario, err := s.usuarios.GetByID(r.Context(), req.Usuario)
	if err != nil {
		writeCampos(w, http.StatusBadRequest, map[string]string{
			"usuario": "Usuário inexistente.",
		})
		return
	}
	amigo, err := s.usuarios.GetByID(r.Context(), req.Amigo)
	if err != nil {
		writeCampos(w, http.StatusBadRequest, map[string]string{
			"amigo": "Usuário inexistente.",
		})
		return
	}

	a, err := s.amizades.Create(r.Context(), amizades.AmizadeUsuario{
		CriadoEm: time.Now().Format(time.RFC3339),
		Usuario:  usuario.Usuario,
		Amigo:    amigo.Usuario,
	})
	if err != nil {
		writeMensagem(w, http.StatusInternalServerError, "Erro interno.")
		return
	}

	s.log.Info("pedido de amizade criado", map[string]any{"amizade_id": a.ID})
	writeJSON(w, http.StatusCreated, a)
}

// aceitarAmizadeHandler activa un pedido pendiente. Solo el destinatario
// puede aceptar.
func (s *server) aceitarAmizadeHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r.Context())
	if !ok {
		writeMensagem(w, http.StatusUnauthorized, "Não autenticado.")
		return
	}

	a, err := s.amizades.GetByID(r.Context(), urlID(r))
	if err != nil {
		writeMensagem(w, http.StatusNotFound, "Pedido não encontrado.")
		return
	}
	if a.Amigo.ID != uid {
		writeMensagem(w, http.StatusForbidden, "Sem permissão.")
		return
	}

	a.Ativo = true
	a.UltimaAlteracaoEm = time.Now().Format(time.RFC3339)
	if err := s.amizades.Update(r.Context(), a); err != nil {
		writeMensagem(w, http.StatusInternalServerError, "Erro interno.")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// recusarAmizadeHandler descarta el pedido.
func (s *server) recusarAmizadeHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r.Context())
	if !ok {
		writeMensagem(w, http.StatusUnauthorized, "Não autenticado.")
		return
	}

	a, err := s.amizades.GetByID(r.Context(), urlID(r))
	if err != nil {
		writeMensagem(w, http.StatusNotFound, "Pedido não encontrado.")
		return
	}
	if a.Amigo.ID != uid {
		writeMensagem(w, http.StatusForbidden, "Sem permissão.")
		return
	}

	if err := s.amizades.Delete(r.Context(), a.ID); err != nil {
		writeMensagem(w, http.StatusInternalServerError, "Erro interno.")
		return
	}
	writeMensagem(w, http.StatusOK, "Pedido recusado.")
}
