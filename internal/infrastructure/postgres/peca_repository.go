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

var _ repository.PecaRepository = (*PecaRepo)(nil)

// PecaRepo implementação de PecaRepository sobre PostgreSQL (pool ou tx).
type PecaRepo struct {
	q Querier
}

// NewPecaRepository constrói o adaptador de peças.
func NewPecaRepository(q Querier) *PecaRepo {
	return &PecaRepo{q: q}
}

const colunasPeca = `id, nome, codigo, valor_unitario, valor_custo, estoque, created_at, updated_at`

func scanPeca(row pgx.Row) (*entity.Peca, error) {
	var p entity.Peca
	err := row.Scan(&p.ID, &p.Nome, &p.Codigo, &p.ValorUnitario, &p.ValorCusto, &p.Estoque, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create insere uma peça.
func (r *PecaRepo) Create(p *entity.Peca) error {
	query := `
		INSERT INTO pecas (id, nome, codigo, valor_unitario, valor_custo, estoque, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nome, p.Codigo, p.ValorUnitario, p.ValorCusto, p.Estoque, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert peca: %w", err)
	}
	return nil
}

// GetByID busca uma peça por ID. Devolve nil, nil se não existir.
func (r *PecaRepo) GetByID(id string) (*entity.Peca, error) {
	query := `SELECT ` + colunasPeca + ` FROM pecas WHERE id = $1`
	p, err := scanPeca(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get peca: %w", err)
	}
	return p, nil
}

// GetForUpdate busca a peça bloqueando a linha (SELECT FOR UPDATE).
// Quem for alterar o estoque deve passar por aqui dentro de uma transação.
func (r *PecaRepo) GetForUpdate(id string) (*entity.Peca, error) {
	query := `SELECT ` + colunasPeca + ` FROM pecas WHERE id = $1 FOR UPDATE`
	p, err := scanPeca(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get peca for update: %w", err)
	}
	return p, nil
}

// List devolve uma página do catálogo de peças.
func (r *PecaRepo) List(limit, offset int) ([]*entity.Peca, error) {
	query := `SELECT ` + colunasPeca + ` FROM pecas ORDER BY nome LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pecas: %w", err)
	}
	defer rows.Close()

	var out []*entity.Peca
	for rows.Next() {
		p, err := scanPeca(rows)
		if err != nil {
			return nil, fmt.Errorf("scan peca: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update sobrescreve os dados da peça, inclusive estoque e custo.
func (r *PecaRepo) Update(p *entity.Peca) error {
	query := `
		UPDATE pecas SET nome = $2, codigo = $3, valor_unitario = $4, valor_custo = $5,
			estoque = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nome, p.Codigo, p.ValorUnitario, p.ValorCusto, p.Estoque, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update peca: %w", err)
	}
	return nil
}

// UpdateEstoque grava a quantidade em estoque.
func (r *PecaRepo) UpdateEstoque(id string, estoque int) error {
	query := `UPDATE pecas SET estoque = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, estoque)
	if err != nil {
		return fmt.Errorf("update estoque: %w", err)
	}
	return nil
}

// Delete remove uma peça.
func (r *PecaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM pecas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete peca: %w", err)
	}
	return nil
}

var _ repository.ServicoRepository = (*ServicoRepo)(nil)

// ServicoRepo implementação de ServicoRepository sobre PostgreSQL.
type ServicoRepo struct {
	q Querier
}

// NewServicoRepository constrói o adaptador de serviços.
func NewServicoRepository(q Querier) *ServicoRepo {
	return &ServicoRepo{q: q}
}

// Create insere um serviço.
func (r *ServicoRepo) Create(s *entity.Servico) error {
	query := `
		INSERT INTO servicos (id, nome, descricao, valor_hora, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query, s.ID, s.Nome, s.Descricao, s.ValorHora, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert servico: %w", err)
	}
	return nil
}

// GetByID busca um serviço por ID. Devolve nil, nil se não existir.
func (r *ServicoRepo) GetByID(id string) (*entity.Servico, error) {
	query := `SELECT id, nome, descricao, valor_hora, created_at, updated_at FROM servicos WHERE id = $1`
	var s entity.Servico
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Nome, &s.Descricao, &s.ValorHora, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get servico: %w", err)
	}
	return &s, nil
}

// List devolve uma página do catálogo de serviços.
func (r *ServicoRepo) List(limit, offset int) ([]*entity.Servico, error) {
	query := `SELECT id, nome, descricao, valor_hora, created_at, updated_at
		FROM servicos ORDER BY nome LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list servicos: %w", err)
	}
	defer rows.Close()

	var out []*entity.Servico
	for rows.Next() {
		var s entity.Servico
		if err := rows.Scan(&s.ID, &s.Nome, &s.Descricao, &s.ValorHora, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan servico: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// Update sobrescreve os dados do serviço.
func (r *ServicoRepo) Update(s *entity.Servico) error {
	query := `UPDATE servicos SET nome = $2, descricao = $3, valor_hora = $4, updated_at = $5 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, s.ID, s.Nome, s.Descricao, s.ValorHora, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update servico: %w", err)
	}
	return nil
}

// Delete remove um serviço.
func (r *ServicoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM servicos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete servico: %w", err)
	}
	return nil
}
