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

var _ repository.OrdemServicoRepository = (*OrdemServicoRepo)(nil)

// OrdemServicoRepo implementação de OrdemServicoRepository sobre PostgreSQL.
type OrdemServicoRepo struct {
	q Querier
}

// NewOrdemServicoRepository constrói o adaptador de ordens de serviço.
func NewOrdemServicoRepository(q Querier) *OrdemServicoRepo {
	return &OrdemServicoRepo{q: q}
}

const colunasOrdemServico = `id, numero, cliente_id, veiculo_id, orcamento_id, status_servico,
	data_inicio, prazo_conclusao, km_atual, valor_total, desconto, valor_pago, forma_pagamento,
	observacoes, created_at, updated_at`

func scanOrdemServico(row pgx.Row) (*entity.OrdemServico, error) {
	var o entity.OrdemServico
	err := row.Scan(
		&o.ID, &o.Numero, &o.ClienteID, &o.VeiculoID, &o.OrcamentoID, &o.StatusServico,
		&o.DataInicio, &o.PrazoConclusao, &o.KmAtual, &o.ValorTotal, &o.Desconto, &o.ValorPago,
		&o.FormaPagamento, &o.Observacoes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create insere uma ordem de serviço.
func (r *OrdemServicoRepo) Create(o *entity.OrdemServico) error {
	query := `
		INSERT INTO ordens_servico (id, numero, cliente_id, veiculo_id, orcamento_id, status_servico,
			data_inicio, prazo_conclusao, km_atual, valor_total, desconto, valor_pago, forma_pagamento,
			observacoes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.Numero, o.ClienteID, o.VeiculoID, o.OrcamentoID, o.StatusServico,
		o.DataInicio, o.PrazoConclusao, o.KmAtual, o.ValorTotal, o.Desconto, o.ValorPago,
		o.FormaPagamento, o.Observacoes, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert ordem de servico: %w", err)
	}
	return nil
}

// GetByID busca uma OS por ID. Devolve nil, nil se não existir.
func (r *OrdemServicoRepo) GetByID(id string) (*entity.OrdemServico, error) {
	query := `SELECT ` + colunasOrdemServico + ` FROM ordens_servico WHERE id = $1`
	o, err := scanOrdemServico(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ordem de servico: %w", err)
	}
	return o, nil
}

// GetForUpdate busca a OS travando a linha (FOR UPDATE). Usado nas transições
// de status para que o efeito de estoque seja avaliado contra o status
// realmente persistido.
func (r *OrdemServicoRepo) GetForUpdate(id string) (*entity.OrdemServico, error) {
	query := `SELECT ` + colunasOrdemServico + ` FROM ordens_servico WHERE id = $1 FOR UPDATE`
	o, err := scanOrdemServico(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ordem de servico for update: %w", err)
	}
	return o, nil
}

// GetByOrcamento busca a OS derivada de um orçamento. Devolve nil, nil se
// o orçamento ainda não gerou OS.
func (r *OrdemServicoRepo) GetByOrcamento(orcamentoID string) (*entity.OrdemServico, error) {
	query := `SELECT ` + colunasOrdemServico + ` FROM ordens_servico WHERE orcamento_id = $1`
	o, err := scanOrdemServico(r.q.QueryRow(context.Background(), query, orcamentoID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ordem de servico por orcamento: %w", err)
	}
	return o, nil
}

// GetDetalhada carrega a OS com cliente, veículo e o orçamento de origem.
func (r *OrdemServicoRepo) GetDetalhada(id string) (*entity.OrdemServicoDetalhada, error) {
	o, err := r.GetByID(id)
	if err != nil || o == nil {
		return nil, err
	}
	return r.detalhar(o)
}

func (r *OrdemServicoRepo) detalhar(o *entity.OrdemServico) (*entity.OrdemServicoDetalhada, error) {
	det := &entity.OrdemServicoDetalhada{OrdemServico: *o}

	var err error
	det.Cliente, err = NewClienteRepository(r.q).GetByID(o.ClienteID)
	if err != nil {
		return nil, err
	}
	if o.VeiculoID != nil {
		det.Veiculo, err = NewVeiculoRepository(r.q).GetByID(*o.VeiculoID)
		if err != nil {
			return nil, err
		}
	}
	if o.OrcamentoID != nil {
		det.Orcamento, err = NewOrcamentoRepository(r.q).GetDetalhado(*o.OrcamentoID)
		if err != nil {
			return nil, err
		}
	}
	return det, nil
}

// List devolve todas as ordens, da mais nova para a mais velha.
func (r *OrdemServicoRepo) List() ([]*entity.OrdemServico, error) {
	query := `SELECT ` + colunasOrdemServico + ` FROM ordens_servico ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list ordens de servico: %w", err)
	}
	defer rows.Close()

	out := []*entity.OrdemServico{}
	for rows.Next() {
		o, err := scanOrdemServico(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ordem de servico: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// ListRecentes devolve as N ordens mais recentes já detalhadas (painel).
func (r *OrdemServicoRepo) ListRecentes(limit int) ([]*entity.OrdemServicoDetalhada, error) {
	query := `SELECT ` + colunasOrdemServico + ` FROM ordens_servico ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list ordens recentes: %w", err)
	}
	defer rows.Close()

	var base []*entity.OrdemServico
	for rows.Next() {
		o, err := scanOrdemServico(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ordem de servico: %w", err)
		}
		base = append(base, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]*entity.OrdemServicoDetalhada, 0, len(base))
	for _, o := range base {
		det, err := r.detalhar(o)
		if err != nil {
			return nil, err
		}
		out = append(out, det)
	}
	return out, nil
}

// CountByStatus conta ordens por status de serviço.
func (r *OrdemServicoRepo) CountByStatus(status entity.StatusServico) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM ordens_servico WHERE status_servico = $1`, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count ordens de servico: %w", err)
	}
	return n, nil
}

// Update sobrescreve os campos mutáveis da OS.
func (r *OrdemServicoRepo) Update(o *entity.OrdemServico) error {
	query := `
		UPDATE ordens_servico SET status_servico = $2, prazo_conclusao = $3, km_atual = $4,
			desconto = $5, valor_pago = $6, forma_pagamento = $7, observacoes = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.StatusServico, o.PrazoConclusao, o.KmAtual,
		o.Desconto, o.ValorPago, o.FormaPagamento, o.Observacoes, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ordem de servico: %w", err)
	}
	return nil
}

// Delete remove uma OS.
func (r *OrdemServicoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ordens_servico WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ordem de servico: %w", err)
	}
	return nil
}

// ProximoNumero emite o próximo número sequencial (OS-0001, OS-0002, ...).
func (r *OrdemServicoRepo) ProximoNumero() (string, error) {
	var numero string
	query := `SELECT 'OS-' || LPAD(nextval('ordem_servico_numero_seq')::text, 4, '0')`
	if err := r.q.QueryRow(context.Background(), query).Scan(&numero); err != nil {
		return "", fmt.Errorf("proximo numero de ordem de servico: %w", err)
	}
	return numero, nil
}
