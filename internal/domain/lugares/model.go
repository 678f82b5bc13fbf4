package lugares

// CategoriaLugar clasifica lugares (bar, parque, museo...).
type CategoriaLugar struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

// Lugar es el record completo que devuelve el backend. El shape es el del
// wire: campos chatos, horarios por día de semana.
type Lugar struct {
	ID                int64  `json:"id"`
	Ativo             bool   `json:"ativo"`
	CriadoEm          string `json:"criado_em"`
	UltimaAlteracaoEm string `json:"ultima_alteracao_em"`

	Nome      string         `json:"nome"`
	Descricao string         `json:"descricao"`
	Bio       string         `json:"bio"`
	Gratuito  bool           `json:"gratuito"`
	Categoria CategoriaLugar `json:"categoria"`

	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`

	// Dirección
	CEP              string `json:"cep"`
	Estado           string `json:"estado"`
	Cidade           string `json:"cidade"`
	Bairro           string `json:"bairro"`
	Logradouro       string `json:"logradouro"`
	Numero           string `json:"numero"`
	Complemento      string `json:"complemento"`
	Pais             string `json:"pais"`
	EnderecoCompleto string `json:"endereco_completo"`

	// Horarios de funcionamiento por día
	FuncionaDomingo   bool   `json:"funciona_domingo"`
	HoraInicioDomingo string `json:"hora_inicio_funcionamento_domingo"`
	HoraFimDomingo    string `json:"hora_fim_funcionamento_domingo"`
	FuncionaSegunda   bool   `json:"funciona_segunda"`
	HoraInicioSegunda string `json:"hora_inicio_funcionamento_segunda"`
	HoraFimSegunda    string `json:"hora_fim_funcionamento_segunda"`
	FuncionaTerca     bool   `json:"funciona_terca"`
	HoraInicioTerca   string `json:"hora_inicio_funcionamento_terca"`
	HoraFimTerca      string `json:"hora_fim_funcionamento_terca"`
	FuncionaQuarta    bool   `json:"funciona_quarta"`
	HoraInicioQuarta  string `json:"hora_inicio_funcionamento_quarta"`
	HoraFimQuarta     string `json:"hora_fim_funcionamento_quarta"`
	FuncionaQuinta    bool   `json:"funciona_quinta"`
	HoraInicioQuinta  string `json:"hora_inicio_funcionamento_quinta"`
	HoraFimQuinta     string `json:"hora_fim_funcionamento_quinta"`
	FuncionaSexta     bool   `json:"funciona_sexta"`
	HoraInicioSexta   string `json:"hora_inicio_funcionamento_sexta"`
	HoraFimSexta      string `json:"hora_fim_funcionamento_sexta"`
	FuncionaSabado    bool   `json:"funciona_sabado"`
	HoraInicioSabado  string `json:"hora_inicio_funcionamento_sabado"`
	HoraFimSabado     string `json:"hora_fim_funcionamento_sabado"`

	ValorMinimo float64 `json:"valor_minimo"`
	ValorMaximo float64 `json:"valor_maximo"`

	Telefone string `json:"telefone"`
	Email    string `json:"email"`
	Whatsapp string `json:"whatsapp"`

	Observacao string `json:"observacao"`
	Imagem     string `json:"imagem"`
}

// AvaliacaoLugar es una reseña de un usuario sobre un lugar.
type AvaliacaoLugar struct {
	ID      int64  `json:"id"`
	Lugar   int64  `json:"lugar"`
	Usuario int64  `json:"usuario"`
	Nota    int    `json:"nota"`
	Resenha string `json:"resenha"`
}
