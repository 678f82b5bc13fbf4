package postagens

import "sarc-client/internal/domain/usuarios"

// Postagem es una entrada del blog.
type Postagem struct {
	ID                int64  `json:"id"`
	Ativo             bool   `json:"ativo"`
	CriadoEm          string `json:"criado_em"`
	UltimaAlteracaoEm string `json:"ultima_alteracao_em"`

	Tipo      string `json:"tipo"`
	Status    string `json:"status"`
	Titulo    string `json:"titulo"`
	Subtitulo string `json:"subtitulo"`
	Slug      string `json:"slug"`
	Corpo     string `json:"corpo"`

	PublicadoEm  string           `json:"publicado_em"`
	Autor        usuarios.Usuario `json:"autor"`
	TempoLeitura int              `json:"tempo_leitura"`
	Banner       string           `json:"banner"`
}
