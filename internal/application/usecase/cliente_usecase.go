package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/oficinago/oficina-api/internal/application/dto"
	"github.com/oficinago/oficina-api/internal/domain"
	"github.com/oficinago/oficina-api/internal/domain/entity"
	"github.com/oficinago/oficina-api/internal/domain/repository"
)

// ClienteUseCase casos de uso CRUD para clientes e seus veículos.
type ClienteUseCase struct {
	clienteRepo repository.ClienteRepository
	veiculoRepo repository.VeiculoRepository
}

// NewClienteUseCase constrói o caso de uso.
func NewClienteUseCase(clienteRepo repository.ClienteRepository, veiculoRepo repository.VeiculoRepository) *ClienteUseCase {
	return &ClienteUseCase{clienteRepo: clienteRepo, veiculoRepo: veiculoRepo}
}

// Criar cadastra um cliente. Os campos de veículo embutidos são opcionais.
func (uc *ClienteUseCase) Criar(in dto.CriarClienteRequest) (*entity.Cliente, error) {
	if in.Nome == "" || in.Documento == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if in.Tipo != entity.ClienteFisica && in.Tipo != entity.ClienteJuridica {
		return nil, domain.ErrEntradaInvalida
	}
	aniversario, err := dto.ParseDataOpcional(in.Aniversario)
	if err != nil {
		return nil, domain.ErrEntradaInvalida
	}
	now := time.Now()
	c := &entity.Cliente{
		ID:            uuid.New().String(),
		Tipo:          in.Tipo,
		Nome:          in.Nome,
		Documento:     in.Documento,
		Telefone:      in.Telefone,
		Email:         in.Email,
		Endereco:      in.Endereco,
		Aniversario:   aniversario,
		Marca:         in.Marca,
		Modelo:        in.Modelo,
		Ano:           in.Ano,
		Placa:         in.Placa,
		Quilometragem: in.Quilometragem,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.clienteRepo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Obter busca um cliente por ID.
func (uc *ClienteUseCase) Obter(id string) (*entity.Cliente, error) {
	c, err := uc.clienteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return c, nil
}

// Listar devolve uma página de clientes.
func (uc *ClienteUseCase) Listar(page dto.PageRequest) ([]*entity.Cliente, error) {
	page.DefaultPage()
	return uc.clienteRepo.List(page.Limit, page.Offset)
}

// Atualizar sobrescreve os dados cadastrais do cliente.
func (uc *ClienteUseCase) Atualizar(id string, in dto.CriarClienteRequest) (*entity.Cliente, error) {
	c, err := uc.clienteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if in.Nome != "" {
		c.Nome = in.Nome
	}
	if in.Tipo != "" {
		if in.Tipo != entity.ClienteFisica && in.Tipo != entity.ClienteJuridica {
			return nil, domain.ErrEntradaInvalida
		}
		c.Tipo = in.Tipo
	}
	if in.Documento != "" {
		c.Documento = in.Documento
	}
	if in.Telefone != nil {
		c.Telefone = in.Telefone
	}
	if in.Email != nil {
		c.Email = in.Email
	}
	if in.Endereco != nil {
		c.Endereco = in.Endereco
	}
	if in.Aniversario != nil {
		aniversario, err := dto.ParseDataOpcional(in.Aniversario)
		if err != nil {
			return nil, domain.ErrEntradaInvalida
		}
		c.Aniversario = aniversario
	}
	if in.Marca != nil {
		c.Marca = in.Marca
	}
	if in.Modelo != nil {
		c.Modelo = in.Modelo
	}
	if in.Ano != nil {
		c.Ano = in.Ano
	}
	if in.Placa != nil {
		c.Placa = in.Placa
	}
	if in.Quilometragem != nil {
		c.Quilometragem = in.Quilometragem
	}
	c.UpdatedAt = time.Now()
	if err := uc.clienteRepo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Excluir remove um cliente.
func (uc *ClienteUseCase) Excluir(id string) error {
	c, err := uc.clienteRepo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNaoEncontrado
	}
	return uc.clienteRepo.Delete(id)
}

// AdicionarVeiculo cadastra um veículo adicional para o cliente.
func (uc *ClienteUseCase) AdicionarVeiculo(clienteID string, in dto.CriarVeiculoRequest) (*entity.Veiculo, error) {
	if in.Marca == "" || in.Modelo == "" {
		return nil, domain.ErrEntradaInvalida
	}
	c, err := uc.clienteRepo.GetByID(clienteID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNaoEncontrado
	}
	now := time.Now()
	v := &entity.Veiculo{
		ID:        uuid.New().String(),
		ClienteID: clienteID,
		Marca:     in.Marca,
		Modelo:    in.Modelo,
		Km:        in.Quilometragem,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Ano != nil {
		v.Ano = *in.Ano
	}
	if in.Placa != nil {
		v.Placa = *in.Placa
	}
	if err := uc.veiculoRepo.Create(v); err != nil {
		return nil, err
	}
	return v, nil
}

// ListarVeiculos devolve os veículos de um cliente.
func (uc *ClienteUseCase) ListarVeiculos(clienteID string) ([]*entity.Veiculo, error) {
	return uc.veiculoRepo.ListByCliente(clienteID)
}

// ExcluirVeiculo remove um veículo do cliente.
func (uc *ClienteUseCase) ExcluirVeiculo(clienteID, veiculoID string) error {
	v, err := uc.veiculoRepo.GetByID(veiculoID)
	if err != nil {
		return err
	}
	if v == nil || v.ClienteID != clienteID {
		return domain.ErrNaoEncontrado
	}
	return uc.veiculoRepo.Delete(veiculoID)
}
