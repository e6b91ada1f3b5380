package dto

import "github.com/shopspring/decimal"

// CriarClienteRequest dados de cadastro do cliente e do veículo principal.
type CriarClienteRequest struct {
	Nome         string  `json:"nome"`
	Tipo         string  `json:"tipo"`
	Documento    string  `json:"documento"`
	Telefone     *string `json:"telefone"`
	Email        *string `json:"email"`
	Endereco     *string `json:"endereco"`
	Aniversario  *string `json:"aniversario"`
	Marca        *string `json:"marca"`
	Modelo       *string `json:"modelo"`
	Ano          *string `json:"ano"`
	Placa        *string `json:"placa"`
	Quilometragem *string `json:"quilometragem"`
}

// CriarVeiculoRequest veículo adicional de um cliente.
type CriarVeiculoRequest struct {
	Marca         string  `json:"marca"`
	Modelo        string  `json:"modelo"`
	Ano           *string `json:"ano"`
	Placa         *string `json:"placa"`
	Quilometragem *string `json:"quilometragem"`
}

// CriarPecaRequest item de estoque.
type CriarPecaRequest struct {
	Nome          string           `json:"nome"`
	Codigo        *string          `json:"codigo"`
	ValorUnitario decimal.Decimal  `json:"valor_unitario"`
	ValorCusto    *decimal.Decimal `json:"valor_custo"`
	Estoque       *int             `json:"estoque"`
}

// CriarServicoRequest serviço de mão de obra.
type CriarServicoRequest struct {
	Nome      string          `json:"nome"`
	Descricao *string         `json:"descricao"`
	ValorHora decimal.Decimal `json:"valor_hora"`
}

// CriarCategoriaRequest categoria financeira.
type CriarCategoriaRequest struct {
	Nome string  `json:"nome"`
	Tipo string  `json:"tipo"`
	Cor  *string `json:"cor"`
}

// CriarFornecedorRequest fornecedor de peças.
type CriarFornecedorRequest struct {
	Nome     string  `json:"nome"`
	CNPJ     *string `json:"cnpj"`
	Telefone *string `json:"telefone"`
	Email    *string `json:"email"`
	Endereco *string `json:"endereco"`
}
