package amizades

import "sarc-client/internal/domain/usuarios"

// AmizadeUsuario es el vínculo de amistad entre dos usuarios. Mientras
// ativo=false el pedido está pendiente de aceptación.
type AmizadeUsuario struct {
	ID                int64  `json:"id"`
	Ativo             bool   `json:"ativo"`
	CriadoEm          string `json:"criado_em"`
	UltimaAlteracaoEm string `json:"ultima_alteracao_em"`

	Usuario usuarios.Usuario `json:"usuario"`
	Amigo   usuarios.Usuario `json:"amigo"`
}
