package dto

import "github.com/shopspring/decimal"

// RegistrarCompraRequest entrada de peças por nota fiscal. Além de registrar a
// compra, incrementa o estoque da peça e lança a despesa correspondente.
type RegistrarCompraRequest struct {
	NumeroNota   string          `json:"numero_nota"`
	FornecedorID string          `json:"fornecedor_id"`
	PecaID       string          `json:"peca_id"`
	Quantidade   int             `json:"quantidade"`
	ValorCusto   decimal.Decimal `json:"valor_custo"`
	DataCompra   *string         `json:"data_compra"`
}
