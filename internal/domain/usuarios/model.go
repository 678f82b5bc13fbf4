package usuarios

// Usuario es el perfil público que expone el backend.
type Usuario struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Nome         string `json:"first_name"`
	Sobrenome    string `json:"last_name"`
	NomeCompleto string `json:"full_name"`
	Celular      string `json:"cellphone"`
	Email        string `json:"email"`
	Nascimento   string `json:"birth_date"`
	Avatar       string `json:"avatar"`
}

// TotalPedidos es la respuesta del contador de pedidos de amistad.
type TotalPedidos struct {
	Total int `json:"total"`
}
