package devserver

import (
	"net/http"
	"strings"

	"sarc-client/internal/domain/usuarios"
)

func (s *server) listUsuariosHandler(w http.ResponseWriter, r *http.Request) {
	contas, err := s.usuarios.List(r.Context())
	if err != nil {
		writeMensagem(w, http.StatusInternalServerError, "Erro interno.")
		return
	}

	email := strings.TrimSpace(r.URL.Query().Get("email"))

	out := make([]usuarios.Usuario, 0, len(contas))
	for _, c := range contas {
		if email != "" && !strings.EqualFold(c.Email, email) {
			continue
		}
		out = append(out, c.Usuario)
	}
	writeLista(w, len(out), out)
}

func (s *server) getUsuarioHandler(w http.ResponseWriter, r *http.Request) {
	c, err := s.usuarios.GetByID(r.Context(), urlID(r))
	if err != nil {
		writeMensagem(w, http.StatusNotFound, "Usuário não encontrado.")
		return
	}
	writeJSON(w, http.StatusOK, c.Usuario)
}

func (s *server) updateUsuarioHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r.Context())
	if !ok {
		writeMensagem(w, http.StatusUnauthorized, "Não autenticado.")
		return
	}

	id := urlID(r)
	if id != uid {
		writeMensagem(w, http.StatusForbidden, "Sem permissão.")
		return
	}

	c, err := s.usuarios.GetByID(r.Context(), id)
	if err != nil {
		writeMensagem(w, http.StatusNotFound, "Usuário não encontrado.")
		return
	}

	// PATCH parcial: solo pisa los campos presentes.
	var req struct {
		Username   *string `json:"username"`
		Nome       *string `json:"first_name"`
		Sobrenome  *string `json:"last_name"`
		Celular    *string `json:"cellphone"`
		Nascimento *string `json:"birth_date"`
		Avatar     *string `json:"avatar"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeMensagem(w, http.StatusBadRequest, "JSON inválido.")
		return
	}

	if req.Username != nil {
		c.Username = *req.Username
	}
	if req.Nome != nil {
		c.Nome = *req.Nome
	}
	if req.Sobrenome != nil {
		c.Sobrenome = *req.Sobrenome
	}
	if req.Celular != nil {
		c.Celular = *req.Celular
	}
	if req.Nascimento != nil {
		c.Nascimento = *req.Nascimento
	}
	if req.Avatar != nil {
		c.Avatar = *req.Avatar
	}

	if err := s.usuarios.Update(r.Context(), c); err != nil {
		writeMensagem(w, http.StatusInternalServerError, "Erro interno.")
		return
	}

	c, err = s.usuarios.GetByID(r.Context(), id)
	if err != nil {
		writeMensagem(w, http.StatusInternalServerError, "Erro interno.")
		return
	}
	writeJSON(w, http.StatusOK, c.Usuario)
}

// totalPedidosAmizadeHandler devuelve el contador de pedidos pendientes
// del usuario autenticado, como envelope de listado (el cliente lee Total).
func (s *server) totalPedidosAmizadeHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r.Context())
	if !ok {
		writeMensagem(w, http.StatusUnauthorized, "Não autenticado.")
		return
	}

	pendentes, err := s.amizades.ListByUsuario(r.Context(), uid, true)
	if err != nil {
		writeMensagem(w, http.StatusInternalServerError, "Erro interno.")
		return
	}

	// Solo cuentan los pedidos dirigidos a mí, no los que mandé.
	total := 0
	for _, a := range pendentes {
		if a.Amigo.ID == uid {
			total++
		}
	}
	writeLista(w, total, []any{})
}
