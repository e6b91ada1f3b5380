package repository

import "github.com/oficinago/oficina-api/internal/domain/entity"

// FornecedorRepository contrato de persistência de fornecedores.
type FornecedorRepository interface {
	Create(f *entity.Fornecedor) error
	GetByID(id string) (*entity.Fornecedor, error)
	List() ([]*entity.Fornecedor, error)
	Update(f *entity.Fornecedor) error
	Delete(id string) error
}

// CompraPecaRepository contrato de persistência de compras de peças.
type CompraPecaRepository interface {
	Create(c *entity.CompraPeca) error
	List() ([]*entity.CompraPecaDetalhada, error)
}

// ContatoMarketingRepository contrato de persistência dos contatos de marketing.
type ContatoMarketingRepository interface {
	Create(c *entity.ContatoMarketing) error
	GetByID(id string) (*entity.ContatoMarketing, error)
	List() ([]*entity.ContatoMarketing, error)
	Update(c *entity.ContatoMarketing) error
	Delete(id string) error
}

// UsuarioRepository contrato de persistência de usuários.
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
	Update(u *entity.Usuario) error
}
