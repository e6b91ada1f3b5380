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

var _ repository.ReceitaRepository = (*ReceitaRepo)(nil)

// ReceitaRepo implementação de ReceitaRepository sobre PostgreSQL.
type ReceitaRepo struct {
	q Querier
}

// NewReceitaRepository constrói o adaptador de receitas.
func NewReceitaRepository(q Querier) *ReceitaRepo {
	return &ReceitaRepo{q: q}
}

const colunasReceita = `id, numero, descricao, valor, status, data_vencimento, data_recebimento,
	categoria_id, ordem_servico_id, forma_pagamento, observacoes, created_at, updated_at`

func scanReceita(row pgx.Row) (*entity.Receita, error) {
	var r entity.Receita
	err := row.Scan(
		&r.ID, &r.Numero, &r.Descricao, &r.Valor, &r.Status, &r.DataVencimento, &r.DataRecebimento,
		&r.CategoriaID, &r.OrdemServicoID, &r.FormaPagamento, &r.Observacoes, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Create insere uma receita.
func (r *ReceitaRepo) Create(rec *entity.Receita) error {
	query := `
		INSERT INTO receitas (id, numero, descricao, valor, status, data_vencimento, data_recebimento,
			categoria_id, ordem_servico_id, forma_pagamento, observacoes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.Numero, rec.Descricao, rec.Valor, rec.Status, rec.DataVencimento, rec.DataRecebimento,
		rec.CategoriaID, rec.OrdemServicoID, rec.FormaPagamento, rec.Observacoes, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert receita: %w", err)
	}
	return nil
}

// GetByID busca uma receita por ID. Devolve nil, nil se não existir.
func (r *ReceitaRepo) GetByID(id string) (*entity.Receita, error) {
	query := `SELECT ` + colunasReceita + ` FROM receitas WHERE id = $1`
	rec, err := scanReceita(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receita: %w", err)
	}
	return rec, nil
}

// List devolve todas as receitas por vencimento decrescente.
func (r *ReceitaRepo) List() ([]*entity.Receita, error) {
	query := `SELECT ` + colunasReceita + ` FROM receitas ORDER BY data_vencimento DESC, created_at DESC`
	return r.listar(query)
}

// ListByOrdemServico devolve as receitas vinculadas a uma OS.
func (r *ReceitaRepo) ListByOrdemServico(ordemServicoID string) ([]*entity.Receita, error) {
	query := `SELECT ` + colunasReceita + ` FROM receitas WHERE ordem_servico_id = $1 ORDER BY created_at`
	return r.listar(query, ordemServicoID)
}

func (r *ReceitaRepo) listar(query string, args ...any) ([]*entity.Receita, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list receitas: %w", err)
	}
	defer rows.Close()

	out := []*entity.Receita{}
	for rows.Next() {
		rec, err := scanReceita(rows)
		if err != nil {
			return nil, fmt.Errorf("scan receita: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Update sobrescreve os campos mutáveis da receita.
func (r *ReceitaRepo) Update(rec *entity.Receita) error {
	query := `
		UPDATE receitas SET descricao = $2, valor = $3, status = $4, data_vencimento = $5,
			data_recebimento = $6, categoria_id = $7, forma_pagamento = $8, observacoes = $9,
			updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.Descricao, rec.Valor, rec.Status, rec.DataVencimento,
		rec.DataRecebimento, rec.CategoriaID, rec.FormaPagamento, rec.Observacoes, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update receita: %w", err)
	}
	return nil
}

// Delete remove uma receita.
func (r *ReceitaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM receitas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete receita: %w", err)
	}
	return nil
}

// DeleteByOrdemServico remove todas as receitas vinculadas a uma OS (cascata
// do desfazimento de ordem).
func (r *ReceitaRepo) DeleteByOrdemServico(ordemServicoID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM receitas WHERE ordem_servico_id = $1`, ordemServicoID)
	if err != nil {
		return fmt.Errorf("delete receitas da ordem de servico: %w", err)
	}
	return nil
}

// ProximoNumero emite o próximo número sequencial (REC-0001, REC-0002, ...).
func (r *ReceitaRepo) ProximoNumero() (string, error) {
	var numero string
	query := `SELECT 'REC-' || LPAD(nextval('receita_numero_seq')::text, 4, '0')`
	if err := r.q.QueryRow(context.Background(), query).Scan(&numero); err != nil {
		return "", fmt.Errorf("proximo numero de receita: %w", err)
	}
	return numero, nil
}

var _ repository.DespesaRepository = (*DespesaRepo)(nil)

// DespesaRepo implementação de DespesaRepository sobre PostgreSQL.
type DespesaRepo struct {
	q Querier
}

// NewDespesaRepository constrói o adaptador de despesas.
func NewDespesaRepository(q Querier) *DespesaRepo {
	return &DespesaRepo{q: q}
}

const colunasDespesa = `id, numero, descricao, valor, status, tipo, data_vencimento, data_pagamento,
	categoria_id, forma_pagamento, observacoes, created_at, updated_at`

func scanDespesa(row pgx.Row) (*entity.Despesa, error) {
	var d entity.Despesa
	err := row.Scan(
		&d.ID, &d.Numero, &d.Descricao, &d.Valor, &d.Status, &d.Tipo, &d.DataVencimento, &d.DataPagamento,
		&d.CategoriaID, &d.FormaPagamento, &d.Observacoes, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create insere uma despesa.
func (r *DespesaRepo) Create(d *entity.Despesa) error {
	query := `
		INSERT INTO despesas (id, numero, descricao, valor, status, tipo, data_vencimento, data_pagamento,
			categoria_id, forma_pagamento, observacoes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.Numero, d.Descricao, d.Valor, d.Status, d.Tipo, d.DataVencimento, d.DataPagamento,
		d.CategoriaID, d.FormaPagamento, d.Observacoes, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert despesa: %w", err)
	}
	return nil
}

// GetByID busca uma despesa por ID. Devolve nil, nil se não existir.
func (r *DespesaRepo) GetByID(id string) (*entity.Despesa, error) {
	query := `SELECT ` + colunasDespesa + ` FROM despesas WHERE id = $1`
	d, err := scanDespesa(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get despesa: %w", err)
	}
	return d, nil
}

// List devolve todas as despesas por vencimento decrescente.
func (r *DespesaRepo) List() ([]*entity.Despesa, error) {
	query := `SELECT ` + colunasDespesa + ` FROM despesas ORDER BY data_vencimento DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list despesas: %w", err)
	}
	defer rows.Close()

	out := []*entity.Despesa{}
	for rows.Next() {
		d, err := scanDespesa(rows)
		if err != nil {
			return nil, fmt.Errorf("scan despesa: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// FindCompraPeca localiza a despesa de compra aberta para a mesma nota fiscal e
// fornecedor (casamento textual nas observações). Devolve nil, nil quando não
// há despesa a fundir.
func (r *DespesaRepo) FindCompraPeca(categoriaID, numeroNota, fornecedorNome string) (*entity.Despesa, error) {
	query := `SELECT ` + colunasDespesa + ` FROM despesas
		WHERE categoria_id = $1 AND observacoes ILIKE $2 AND observacoes ILIKE $3
		ORDER BY created_at DESC
		LIMIT 1`
	d, err := scanDespesa(r.q.QueryRow(context.Background(), query,
		categoriaID, "%NF "+numeroNota+"%", "%"+fornecedorNome+"%"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find despesa de compra: %w", err)
	}
	return d, nil
}

// Update sobrescreve os campos mutáveis da despesa.
func (r *DespesaRepo) Update(d *entity.Despesa) error {
	query := `
		UPDATE despesas SET descricao = $2, valor = $3, status = $4, tipo = $5, data_vencimento = $6,
			data_pagamento = $7, categoria_id = $8, forma_pagamento = $9, observacoes = $10,
			updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.Descricao, d.Valor, d.Status, d.Tipo, d.DataVencimento,
		d.DataPagamento, d.CategoriaID, d.FormaPagamento, d.Observacoes, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update despesa: %w", err)
	}
	return nil
}

// Delete remove uma despesa.
func (r *DespesaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM despesas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete despesa: %w", err)
	}
	return nil
}

// ProximoNumero emite o próximo número sequencial (DESP-0001, DESP-0002, ...).
func (r *DespesaRepo) ProximoNumero() (string, error) {
	var numero string
	query := `SELECT 'DESP-' || LPAD(nextval('despesa_numero_seq')::text, 4, '0')`
	if err := r.q.QueryRow(context.Background(), query).Scan(&numero); err != nil {
		return "", fmt.Errorf("proximo numero de despesa: %w", err)
	}
	return numero, nil
}

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementação de CategoriaRepository sobre PostgreSQL.
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository constrói o adaptador de categorias.
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

const colunasCategoria = `id, nome, tipo, cor, created_at, updated_at`

func scanCategoria(row pgx.Row) (*entity.Categoria, error) {
	var c entity.Categoria
	err := row.Scan(&c.ID, &c.Nome, &c.Tipo, &c.Cor, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create insere uma categoria.
func (r *CategoriaRepo) Create(c *entity.Categoria) error {
	query := `
		INSERT INTO categorias (id, nome, tipo, cor, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.Nome, c.Tipo, c.Cor, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID busca uma categoria por ID. Devolve nil, nil se não existir.
func (r *CategoriaRepo) GetByID(id string) (*entity.Categoria, error) {
	query := `SELECT ` + colunasCategoria + ` FROM categorias WHERE id = $1`
	c, err := scanCategoria(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return c, nil
}

// GetByNomeTipo busca a categoria pelo par nome/tipo. Devolve nil, nil se não
// existir.
func (r *CategoriaRepo) GetByNomeTipo(nome, tipo string) (*entity.Categoria, error) {
	query := `SELECT ` + colunasCategoria + ` FROM categorias WHERE nome = $1 AND tipo = $2`
	c, err := scanCategoria(r.q.QueryRow(context.Background(), query, nome, tipo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria por nome/tipo: %w", err)
	}
	return c, nil
}

// List devolve as categorias por nome.
func (r *CategoriaRepo) List() ([]*entity.Categoria, error) {
	query := `SELECT ` + colunasCategoria + ` FROM categorias ORDER BY nome`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()

	out := []*entity.Categoria{}
	for rows.Next() {
		c, err := scanCategoria(rows)
		if err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Update sobrescreve nome, tipo e cor da categoria.
func (r *CategoriaRepo) Update(c *entity.Categoria) error {
	query := `UPDATE categorias SET nome = $2, tipo = $3, cor = $4, updated_at = $5 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.Nome, c.Tipo, c.Cor, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("update categoria: %w", err)
	}
	return nil
}

// Delete remove uma categoria.
func (r *CategoriaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categorias WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete categoria: %w", err)
	}
	return nil
}
