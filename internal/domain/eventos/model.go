package eventos

import (
	"sarc-client/internal/domain/lugares"
	"sarc-client/internal/domain/usuarios"
)

// Evento es un evento agendado sobre un lugar.
type Evento struct {
	ID                int64  `json:"id"`
	Ativo             bool   `json:"ativo"`
	CriadoEm          string `json:"criado_em"`
	UltimaAlteracaoEm string `json:"ultima_alteracao_em"`

	Nome      string        `json:"nome"`
	Descricao string        `json:"descricao"`
	Publico   bool          `json:"publico"`
	Lugar     lugares.Lugar `json:"lugar"`

	Data           string `json:"data"`
	LinkGoogleMaps string `json:"link_google_maps"`
	HoraInicio     string `json:"hora_inicio"`
	HoraFim        string `json:"hora_fim"`
}

// CreateInput es el payload de creación de evento. El lugar va por id.
type CreateInput struct {
	Nome           string `json:"nome"`
	Descricao      string `json:"descricao"`
	Publico        bool   `json:"publico"`
	Lugar          int64  `json:"lugar"`
	Data           string `json:"data"`
	LinkGoogleMaps string `json:"link_google_maps"`
	HoraInicio     string `json:"hora_inicio"`
	HoraFim        string `json:"hora_fim"`
}

// InscricaoEvento ata un usuario a un evento (creador o invitado).
type InscricaoEvento struct {
	ID                int64  `json:"id"`
	Ativo             bool   `json:"ativo"`
	CriadoEm          string `json:"criado_em"`
	UltimaAlteracaoEm string `json:"ultima_alteracao_em"`

	Evento        Evento           `json:"evento"`
	Publico       bool             `json:"publico"`
	CriadorEvento bool             `json:"criador_evento"`
	Usuario       usuarios.Usuario `json:"usuario"`
}
