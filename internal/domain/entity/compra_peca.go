package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fornecedor é um fornecedor de peças.
type Fornecedor struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	CNPJ      string    `json:"cnpj"`
	Email     *string   `json:"email,omitempty"`
	Telefone  *string   `json:"telefone,omitempty"`
	Endereco  *string   `json:"endereco,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompraPeca registra a entrada de peças compradas de um fornecedor.
// Na criação o estoque da peça é incrementado e a despesa "Peças" é criada
// ou somada, tudo na mesma transação.
type CompraPeca struct {
	ID           string          `json:"id"`
	NumeroNota   string          `json:"numero_nota"`
	FornecedorID string          `json:"fornecedor_id"`
	PecaID       string          `json:"peca_id"`
	Quantidade   int             `json:"quantidade"`
	ValorCusto   decimal.Decimal `json:"valor_custo"`
	DataCompra   time.Time       `json:"data_compra"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ValorTotal devolve quantidade × valor de custo unitário.
func (c *CompraPeca) ValorTotal() decimal.Decimal {
	return c.ValorCusto.Mul(decimal.NewFromInt(int64(c.Quantidade)))
}

// CompraPecaDetalhada é a compra com nomes de fornecedor e peça resolvidos.
type CompraPecaDetalhada struct {
	CompraPeca
	FornecedorNome string `json:"fornecedor_nome"`
	PecaNome       string `json:"peca_nome"`
}
