package repository

import "github.com/oficinago/oficina-api/internal/domain/entity"

// ReceitaRepository contrato de persistência de receitas.
type ReceitaRepository interface {
	Create(r *entity.Receita) error
	GetByID(id string) (*entity.Receita, error)
	List() ([]*entity.Receita, error)
	ListByOrdemServico(ordemServicoID string) ([]*entity.Receita, error)
	Update(r *entity.Receita) error
	Delete(id string) error
	DeleteByOrdemServico(ordemServicoID string) error
	ProximoNumero() (string, error)
}

// DespesaRepository contrato de persistência de despesas.
// FindCompraPeca localiza a despesa de compra de peças correspondente a uma
// nota fiscal/fornecedor (busca textual nas observações), para a fusão feita
// pelo registro de compras.
type DespesaRepository interface {
	Create(d *entity.Despesa) error
	GetByID(id string) (*entity.Despesa, error)
	List() ([]*entity.Despesa, error)
	FindCompraPeca(categoriaID, numeroNota, fornecedorNome string) (*entity.Despesa, error)
	Update(d *entity.Despesa) error
	Delete(id string) error
	ProximoNumero() (string, error)
}

// CategoriaRepository contrato de persistência de categorias.
type CategoriaRepository interface {
	Create(c *entity.Categoria) error
	GetByID(id string) (*entity.Categoria, error)
	GetByNomeTipo(nome, tipo string) (*entity.Categoria, error)
	List() ([]*entity.Categoria, error)
	Update(c *entity.Categoria) error
	Delete(id string) error
}
