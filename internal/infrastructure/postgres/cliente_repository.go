package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oficinago/oficina-api/internal/domain"
	"github.com/oficinago/oficina-api/internal/domain/entity"
	"github.com/oficinago/oficina-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementação de ClienteRepository sobre PostgreSQL (pool ou tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository constrói o adaptador de clientes.
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

const colunasCliente = `id, tipo, nome, documento, telefone, email, endereco, aniversario,
	marca, modelo, ano, placa, quilometragem, created_at, updated_at`

func scanCliente(row pgx.Row) (*entity.Cliente, error) {
	var c entity.Cliente
	err := row.Scan(
		&c.ID, &c.Tipo, &c.Nome, &c.Documento, &c.Telefone, &c.Email, &c.Endereco, &c.Aniversario,
		&c.Marca, &c.Modelo, &c.Ano, &c.Placa, &c.Quilometragem, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create insere um cliente.
func (r *ClienteRepo) Create(c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (id, tipo, nome, documento, telefone, email, endereco, aniversario,
			marca, modelo, ano, placa, quilometragem, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Tipo, c.Nome, c.Documento, c.Telefone, c.Email, c.Endereco, c.Aniversario,
		c.Marca, c.Modelo, c.Ano, c.Placa, c.Quilometragem, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID busca um cliente por ID. Devolve nil, nil se não existir.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	query := `SELECT ` + colunasCliente + ` FROM clientes WHERE id = $1`
	c, err := scanCliente(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return c, nil
}

// List devolve uma página de clientes ordenada por nome.
func (r *ClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) {
	query := `SELECT ` + colunasCliente + ` FROM clientes ORDER BY nome LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()

	var out []*entity.Cliente
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Count devolve o total de clientes cadastrados.
func (r *ClienteRepo) Count() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM clientes`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count clientes: %w", err)
	}
	return n, nil
}

// Update sobrescreve os dados do cliente.
func (r *ClienteRepo) Update(c *entity.Cliente) error {
	query := `
		UPDATE clientes SET tipo = $2, nome = $3, documento = $4, telefone = $5, email = $6,
			endereco = $7, aniversario = $8, marca = $9, modelo = $10, ano = $11, placa = $12,
			quilometragem = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Tipo, c.Nome, c.Documento, c.Telefone, c.Email, c.Endereco, c.Aniversario,
		c.Marca, c.Modelo, c.Ano, c.Placa, c.Quilometragem, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// Delete remove um cliente.
func (r *ClienteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}

var _ repository.VeiculoRepository = (*VeiculoRepo)(nil)

// VeiculoRepo implementação de VeiculoRepository sobre PostgreSQL.
type VeiculoRepo struct {
	q Querier
}

// NewVeiculoRepository constrói o adaptador de veículos.
func NewVeiculoRepository(q Querier) *VeiculoRepo {
	return &VeiculoRepo{q: q}
}

// Create insere um veículo.
func (r *VeiculoRepo) Create(v *entity.Veiculo) error {
	query := `
		INSERT INTO veiculos (id, cliente_id, marca, modelo, ano, placa, km, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.ClienteID, v.Marca, v.Modelo, v.Ano, v.Placa, v.Km, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert veiculo: %w", err)
	}
	return nil
}

// GetByID busca um veículo por ID. Devolve nil, nil se não existir.
func (r *VeiculoRepo) GetByID(id string) (*entity.Veiculo, error) {
	query := `SELECT id, cliente_id, marca, modelo, ano, placa, km, created_at, updated_at
		FROM veiculos WHERE id = $1`
	var v entity.Veiculo
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.ClienteID, &v.Marca, &v.Modelo, &v.Ano, &v.Placa, &v.Km, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get veiculo: %w", err)
	}
	return &v, nil
}

// ListByCliente devolve os veículos de um cliente.
func (r *VeiculoRepo) ListByCliente(clienteID string) ([]*entity.Veiculo, error) {
	query := `SELECT id, cliente_id, marca, modelo, ano, placa, km, created_at, updated_at
		FROM veiculos WHERE cliente_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, clienteID)
	if err != nil {
		return nil, fmt.Errorf("list veiculos: %w", err)
	}
	defer rows.Close()

	var out []*entity.Veiculo
	for rows.Next() {
		var v entity.Veiculo
		if err := rows.Scan(&v.ID, &v.ClienteID, &v.Marca, &v.Modelo, &v.Ano, &v.Placa, &v.Km, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan veiculo: %w", err)
		}
		out = append(out, &v)
	}
	return out, rows.Err()
}

// Update sobrescreve os dados do veículo.
func (r *VeiculoRepo) Update(v *entity.Veiculo) error {
	query := `UPDATE veiculos SET marca = $2, modelo = $3, ano = $4, placa = $5, km = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, v.ID, v.Marca, v.Modelo, v.Ano, v.Placa, v.Km, v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update veiculo: %w", err)
	}
	return nil
}

// Delete remove um veículo.
func (r *VeiculoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM veiculos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete veiculo: %w", err)
	}
	return nil
}
