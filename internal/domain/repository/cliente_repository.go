package repository

import "github.com/oficinago/oficina-api/internal/domain/entity"

// ClienteRepository contrato de persistência de clientes.
type ClienteRepository interface {
	Create(c *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	List(limit, offset int) ([]*entity.Cliente, error)
	Count() (int, error)
	Update(c *entity.Cliente) error
	Delete(id string) error
}

// VeiculoRepository contrato de persistência de veículos.
type VeiculoRepository interface {
	Create(v *entity.Veiculo) error
	GetByID(id string) (*entity.Veiculo, error)
	ListByCliente(clienteID string) ([]*entity.Veiculo, error)
	Update(v *entity.Veiculo) error
	Delete(id string) error
}
