package devserver

import (
	"errors"
	"net/http"
	"strings"

	"sarc-client/internal/domain/usuarios"

	"golang.org/x/crypto/bcrypt"
)

type tokenObtainRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenObtainResponse struct {
	Access string `json:"access"`
	User   struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

func (s *server) tokenObtainHandler(w http.ResponseWriter, r *http.Request) {
	var req tokenObtainRequest
	if err := decodeBody(r, &req); err != nil {
		writeMensagem(w, http.StatusBadRequest, "JSON inválido.")
		return
	}

	c, err := s.usuarios.GetByEmail(r.Context(), req.Email)
	if err != nil {
		writeMensagem(w, http.StatusUnauthorized, "Credenciais inválidas.")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(c.SenhaHash), []byte(req.Password)) != nil {
		writeMensagem(w, http.StatusUnauthorized, "Credenciais inválidas.")
		return
	}

	access, err := s.issueToken(c)
	if err != nil {
		writeMensagem(w, http.StatusInternalServerError, "Erro interno.")
		return
	}

	var out tokenObtainResponse
	out.Access = access
	out.User.ID = c.ID
	out.User.Email = c.Email

	s.log.Debug("token emitido", map[string]any{"user_id": c.ID})
	writeJSON(w, http.StatusOK, out)
}

type cadastroRequest struct {
	Username string `json:"username"`
	Nome     string `json:"first_name"`
	Sobrenom string `json:"last_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *server) cadastroHandler(w http.ResponseWriter, r *http.Request) {
	var req cadastroRequest
	if err := decodeBody(r, &req); err != nil {
		writeMensagem(w, http.StatusBadRequest, "JSON inválido.")
		return
	}

	campos := map[string]string{}
	if strings.TrimSpace(req.Username) == "" {
		campos["username"] = "Este campo é obrigatório."
	}
	if strings.TrimSpace(req.Email) == "" {
		campos["email"] = "Este campo é obrigatório."
	}
	if strings.TrimSpace(req.Password) == "" {
		campos["password"] = "Este campo é obrigatório."
	}
	if len(campos) > 0 {
		writeCampos(w, http.StatusBadRequest, campos)
		return
	}

	if _, err := s.usuarios.GetByEmail(r.Context(), req.Email); err == nil {
		writeCampos(w, http.StatusBadRequest, map[string]string{
			"email": "Já existe um usuário com este email.",
		})
		return
	}
	if _, err := s.usuarios.GetByUsername(r.Context(), req.Username); err == nil {
		writeCampos(w, http.StatusBadRequest, map[string]string{
			"username": "Já existe um usuário com este username.",
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeMensagem(w, http.StatusInternalServerError, "Erro interno.")
		return
	}

	c, err := s.usuarios.Create(r.Context(), usuarios.Conta{
		Usuario: usuarios.Usuario{
			Username:  strings.TrimSpace(req.Username),
			Nome:      strings.TrimSpace(req.Nome),
			Sobrenome: strings.TrimSpace(req.Sobrenom),
			Email:     strings.TrimSpace(req.Email),
		},
		SenhaHash: string(hash),
	})
	if err != nil {
		writeMensagem(w, http.StatusBadRequest, err.Error())
		return
	}

	s.log.Info("usuario registrado", map[string]any{"user_id": c.ID})
	writeJSON(w, http.StatusCreated, c.Usuario)
}

func (s *server) validarEmailHandler(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	exclude := r.URL.Query().Get("id")
	s.validarHandler(w, r, func() (usuarios.Conta, error) {
		return s.usuarios.GetByEmail(r.Context(), email)
	}, exclude)
}

func (s *server) validarUsernameHandler(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	exclude := r.URL.Query().Get("id")
	s.validarHandler(w, r, func() (usuarios.Conta, error) {
		return s.usuarios.GetByUsername(r.Context(), username)
	}, exclude)
}

// validarHandler responde {cadastrado}. exclude deja afuera al propio
// usuario cuando edita su perfil.
func (s *server) validarHandler(w http.ResponseWriter, _ *http.Request, busca func() (usuarios.Conta, error), exclude string) {
	c, err := busca()
	cadastrado := err == nil
	if cadastrado && exclude != "" && exclude == formatID(c.ID) {
		cadastrado = false
	}
	writeJSON(w, http.StatusOK, map[string]bool{"cadastrado": cadastrado})
}

type resetRequest struct {
	Usuario   string `json:"usuario"`
	Codigo    string `json:"codigo"`
	NovaSenha string `json:"nova_senha"`
	SenhaAtu  string `json:"senha_atual"`
}

func (s *server) enviarEmailResetHandler(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := decodeBody(r, &req); err != nil {
		writeMensagem(w, http.StatusBadRequest, "JSON inválido.")
		return
	}

	c, err := s.usuarios.GetByEmail(r.Context(), req.Usuario)
	if err != nil {
		writeMensagem(w, http.StatusNotFound, "Usuário não encontrado.")
		return
	}

	c.CodigoReset = devResetCode
	if err := s.usuarios.Update(r.Context(), c); err != nil {
		writeMensagem(w, http.StatusInternalServerError, "Erro interno.")
		return
	}

	s.log.Info("codigo de reset emitido", map[string]any{"user_id": c.ID})
	writeMensagem(w, http.StatusOK, "Email enviado.")
}

func (s *server) confirmarCodigoHandler(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := decodeBody(r, &req); err != nil {
		writeMensagem(w, http.StatusBadRequest, "JSON inválido.")
		return
	}

	c, err := s.usuarios.GetByEmail(r.Context(), req.Usuario)
	if err != nil || c.CodigoReset == "" || c.CodigoReset != req.Codigo {
		writeMensagem(w, http.StatusBadRequest, "Código inválido.")
		return
	}

	writeMensagem(w, http.StatusOK, "Código confirmado.")
}

func (s *server) redefinirSenhaHandler(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := decodeBody(r, &req); err != nil {
		writeMensagem(w, http.StatusBadRequest, "JSON inválido.")
		return
	}

	c, err := s.usuarios.GetByEmail(r.Context(), req.Usuario)
	if err != nil || c.CodigoReset == "" {
		writeMensagem(w, http.StatusBadRequest, "Redefinição não solicitada.")
		return
	}
	if strings.TrimSpace(req.NovaSenha) == "" {
		writeMensagem(w, http.StatusBadRequest, "Senha nova obrigatória.")
		return
	}

	if err := s.setSenha(r, &c, req.NovaSenha); err != nil {
		writeMensagem(w, http.StatusInternalServerError, "Erro interno.")
		return
	}

	s.log.Info("senha redefinida", map[string]any{"user_id": c.ID})
	writeMensagem(w, http.StatusOK, "Senha redefinida.")
}

func (s *server) trocarSenhaHandler(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := decodeBody(r, &req); err != nil {
		writeMensagem(w, http.StatusBadRequest, "JSON inválido.")
		return
	}

	c, err := s.usuarios.GetByEmail(r.Context(), req.Usuario)
	if err != nil {
		writeMensagem(w, http.StatusNotFound, "Usuário não encontrado.")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(c.SenhaHash), []byte(req.SenhaAtu)) != nil {
		writeMensagem(w, http.StatusBadRequest, "Senha atual incorreta.")
		return
	}
	if strings.TrimSpace(req.NovaSenha) == "" {
		writeMensagem(w, http.StatusBadRequest, "Senha nova obrigatória.")
		return
	}

	if err := s.setSenha(r, &c, req.NovaSenha); err != nil {
		writeMensagem(w, http.StatusInternalServerError, "Erro interno.")
		return
	}

	writeMensagem(w, http.StatusOK, "Senha alterada.")
}

// setSenha rehashea y persiste la contraseña, limpiando el código de
// reset pendiente.
func (s *server) setSenha(r *http.Request, c *usuarios.Conta, senha string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	c.SenhaHash = string(hash)
	c.CodigoReset = ""
	if err := s.usuarios.Update(r.Context(), *c); err != nil {
		return errors.New("persist: " + err.Error())
	}
	return nil
}
