package dto

// CriarContatoMarketingRequest contato para a régua de aniversariantes.
type CriarContatoMarketingRequest struct {
	ClienteID       *string `json:"cliente_id"`
	NomeCliente     string  `json:"nome_cliente"`
	Telefone        *string `json:"telefone"`
	DataAniversario string  `json:"data_aniversario"`
}
