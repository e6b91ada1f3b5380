package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/oficinago/oficina-api/internal/domain/entity"
	"github.com/oficinago/oficina-api/internal/domain/repository"
)

var _ repository.OrcamentoRepository = (*OrcamentoRepo)(nil)

// OrcamentoRepo implementação de OrcamentoRepository sobre PostgreSQL (pool ou tx).
type OrcamentoRepo struct {
	q Querier
}

// NewOrcamentoRepository constrói o adaptador de orçamentos.
func NewOrcamentoRepository(q Querier) *OrcamentoRepo {
	return &OrcamentoRepo{q: q}
}

const colunasOrcamento = `id, numero, cliente_id, veiculo_id, status, data_orcamento, validade,
	km_atual, observacoes, valor_total, created_at, updated_at`

func scanOrcamento(row pgx.Row) (*entity.Orcamento, error) {
	var o entity.Orcamento
	err := row.Scan(
		&o.ID, &o.Numero, &o.ClienteID, &o.VeiculoID, &o.Status, &o.DataOrcamento, &o.Validade,
		&o.KmAtual, &o.Observacoes, &o.ValorTotal, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create insere um orçamento.
func (r *OrcamentoRepo) Create(o *entity.Orcamento) error {
	query := `
		INSERT INTO orcamentos (id, numero, cliente_id, veiculo_id, status, data_orcamento, validade,
			km_atual, observacoes, valor_total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.Numero, o.ClienteID, o.VeiculoID, o.Status, o.DataOrcamento, o.Validade,
		o.KmAtual, o.Observacoes, o.ValorTotal, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert orcamento: %w", err)
	}
	return nil
}

// GetByID busca um orçamento por ID. Devolve nil, nil se não existir.
func (r *OrcamentoRepo) GetByID(id string) (*entity.Orcamento, error) {
	query := `SELECT ` + colunasOrcamento + ` FROM orcamentos WHERE id = $1`
	o, err := scanOrcamento(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orcamento: %w", err)
	}
	return o, nil
}

// GetDetalhado carrega o orçamento com cliente, veículo e linhas em uma leitura.
func (r *OrcamentoRepo) GetDetalhado(id string) (*entity.OrcamentoDetalhado, error) {
	o, err := r.GetByID(id)
	if err != nil || o == nil {
		return nil, err
	}
	det := &entity.OrcamentoDetalhado{Orcamento: *o}

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
	det.Pecas, err = r.pecasDetalhadas(id)
	if err != nil {
		return nil, err
	}
	det.Servicos, err = r.servicosDetalhados(id)
	if err != nil {
		return nil, err
	}
	return det, nil
}

func (r *OrcamentoRepo) pecasDetalhadas(orcamentoID string) ([]*entity.OrcamentoPecaDetalhada, error) {
	query := `
		SELECT op.id, op.orcamento_id, op.peca_id, op.quantidade, op.valor_unitario, op.created_at, p.nome
		FROM orcamento_pecas op
		JOIN pecas p ON p.id = op.peca_id
		WHERE op.orcamento_id = $1
		ORDER BY op.created_at`
	rows, err := r.q.Query(context.Background(), query, orcamentoID)
	if err != nil {
		return nil, fmt.Errorf("list pecas do orcamento: %w", err)
	}
	defer rows.Close()

	out := []*entity.OrcamentoPecaDetalhada{}
	for rows.Next() {
		var l entity.OrcamentoPecaDetalhada
		if err := rows.Scan(&l.ID, &l.OrcamentoID, &l.PecaID, &l.Quantidade, &l.ValorUnitario, &l.CreatedAt, &l.PecaNome); err != nil {
			return nil, fmt.Errorf("scan linha de peca: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}

func (r *OrcamentoRepo) servicosDetalhados(orcamentoID string) ([]*entity.OrcamentoServicoDetalhado, error) {
	query := `
		SELECT os.id, os.orcamento_id, os.servico_id, os.horas, os.valor_hora, os.created_at, s.nome
		FROM orcamento_servicos os
		JOIN servicos s ON s.id = os.servico_id
		WHERE os.orcamento_id = $1
		ORDER BY os.created_at`
	rows, err := r.q.Query(context.Background(), query, orcamentoID)
	if err != nil {
		return nil, fmt.Errorf("list servicos do orcamento: %w", err)
	}
	defer rows.Close()

	out := []*entity.OrcamentoServicoDetalhado{}
	for rows.Next() {
		var l entity.OrcamentoServicoDetalhado
		if err := rows.Scan(&l.ID, &l.OrcamentoID, &l.ServicoID, &l.Horas, &l.ValorHora, &l.CreatedAt, &l.ServicoNome); err != nil {
			return nil, fmt.Errorf("scan linha de servico: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}

// List devolve todos os orçamentos detalhados, do mais novo para o mais velho.
func (r *OrcamentoRepo) List() ([]*entity.OrcamentoDetalhado, error) {
	query := `SELECT ` + colunasOrcamento + ` FROM orcamentos ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list orcamentos: %w", err)
	}
	defer rows.Close()

	var base []*entity.Orcamento
	for rows.Next() {
		o, err := scanOrcamento(rows)
		if err != nil {
			return nil, fmt.Errorf("scan orcamento: %w", err)
		}
		base = append(base, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	clienteRepo := NewClienteRepository(r.q)
	veiculoRepo := NewVeiculoRepository(r.q)
	out := make([]*entity.OrcamentoDetalhado, 0, len(base))
	for _, o := range base {
		det := &entity.OrcamentoDetalhado{Orcamento: *o}
		det.Cliente, err = clienteRepo.GetByID(o.ClienteID)
		if err != nil {
			return nil, err
		}
		if o.VeiculoID != nil {
			det.Veiculo, err = veiculoRepo.GetByID(*o.VeiculoID)
			if err != nil {
				return nil, err
			}
		}
		det.Pecas, err = r.pecasDetalhadas(o.ID)
		if err != nil {
			return nil, err
		}
		det.Servicos, err = r.servicosDetalhados(o.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, det)
	}
	return out, nil
}

// CountByStatus conta orçamentos por status.
func (r *OrcamentoRepo) CountByStatus(status entity.StatusOrcamento) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM orcamentos WHERE status = $1`, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count orcamentos: %w", err)
	}
	return n, nil
}

// Update sobrescreve os campos editáveis do orçamento.
func (r *OrcamentoRepo) Update(o *entity.Orcamento) error {
	query := `
		UPDATE orcamentos SET veiculo_id = $2, data_orcamento = $3, validade = $4, km_atual = $5,
			observacoes = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.VeiculoID, o.DataOrcamento, o.Validade, o.KmAtual, o.Observacoes, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update orcamento: %w", err)
	}
	return nil
}

// UpdateStatus grava o status do orçamento.
func (r *OrcamentoRepo) UpdateStatus(id string, status entity.StatusOrcamento) error {
	query := `UPDATE orcamentos SET status = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update status do orcamento: %w", err)
	}
	return nil
}

// UpdateValorTotal grava o total recalculado das linhas.
func (r *OrcamentoRepo) UpdateValorTotal(id string, valor decimal.Decimal) error {
	query := `UPDATE orcamentos SET valor_total = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, valor)
	if err != nil {
		return fmt.Errorf("update valor total do orcamento: %w", err)
	}
	return nil
}

// Delete remove um orçamento.
func (r *OrcamentoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orcamentos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete orcamento: %w", err)
	}
	return nil
}

// ProximoNumero emite o próximo número sequencial (ORC-0001, ORC-0002, ...).
func (r *OrcamentoRepo) ProximoNumero() (string, error) {
	var numero string
	query := `SELECT 'ORC-' || LPAD(nextval('orcamento_numero_seq')::text, 4, '0')`
	if err := r.q.QueryRow(context.Background(), query).Scan(&numero); err != nil {
		return "", fmt.Errorf("proximo numero de orcamento: %w", err)
	}
	return numero, nil
}

var _ repository.OrcamentoPecaRepository = (*OrcamentoPecaRepo)(nil)

// OrcamentoPecaRepo linhas de peça de orçamentos sobre PostgreSQL.
type OrcamentoPecaRepo struct {
	q Querier
}

// NewOrcamentoPecaRepository constrói o adaptador das linhas de peça.
func NewOrcamentoPecaRepository(q Querier) *OrcamentoPecaRepo {
	return &OrcamentoPecaRepo{q: q}
}

// Create insere uma linha de peça.
func (r *OrcamentoPecaRepo) Create(l *entity.OrcamentoPeca) error {
	query := `
		INSERT INTO orcamento_pecas (id, orcamento_id, peca_id, quantidade, valor_unitario, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.OrcamentoID, l.PecaID, l.Quantidade, l.ValorUnitario, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert linha de peca: %w", err)
	}
	return nil
}

// GetByID busca uma linha de peça. Devolve nil, nil se não existir.
func (r *OrcamentoPecaRepo) GetByID(id string) (*entity.OrcamentoPeca, error) {
	query := `SELECT id, orcamento_id, peca_id, quantidade, valor_unitario, created_at
		FROM orcamento_pecas WHERE id = $1`
	var l entity.OrcamentoPeca
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.OrcamentoID, &l.PecaID, &l.Quantidade, &l.ValorUnitario, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get linha de peca: %w", err)
	}
	return &l, nil
}

// ListByOrcamento devolve as linhas de peça de um orçamento.
func (r *OrcamentoPecaRepo) ListByOrcamento(orcamentoID string) ([]*entity.OrcamentoPeca, error) {
	query := `SELECT id, orcamento_id, peca_id, quantidade, valor_unitario, created_at
		FROM orcamento_pecas WHERE orcamento_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, orcamentoID)
	if err != nil {
		return nil, fmt.Errorf("list linhas de peca: %w", err)
	}
	defer rows.Close()

	var out []*entity.OrcamentoPeca
	for rows.Next() {
		var l entity.OrcamentoPeca
		if err := rows.Scan(&l.ID, &l.OrcamentoID, &l.PecaID, &l.Quantidade, &l.ValorUnitario, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan linha de peca: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}

// Delete remove uma linha de peça.
func (r *OrcamentoPecaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orcamento_pecas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete linha de peca: %w", err)
	}
	return nil
}

var _ repository.OrcamentoServicoRepository = (*OrcamentoServicoRepo)(nil)

// OrcamentoServicoRepo linhas de serviço de orçamentos sobre PostgreSQL.
type OrcamentoServicoRepo struct {
	q Querier
}

// NewOrcamentoServicoRepository constrói o adaptador das linhas de serviço.
func NewOrcamentoServicoRepository(q Querier) *OrcamentoServicoRepo {
	return &OrcamentoServicoRepo{q: q}
}

// Create insere uma linha de serviço.
func (r *OrcamentoServicoRepo) Create(l *entity.OrcamentoServico) error {
	query := `
		INSERT INTO orcamento_servicos (id, orcamento_id, servico_id, horas, valor_hora, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.OrcamentoID, l.ServicoID, l.Horas, l.ValorHora, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert linha de servico: %w", err)
	}
	return nil
}

// GetByID busca uma linha de serviço. Devolve nil, nil se não existir.
func (r *OrcamentoServicoRepo) GetByID(id string) (*entity.OrcamentoServico, error) {
	query := `SELECT id, orcamento_id, servico_id, horas, valor_hora, created_at
		FROM orcamento_servicos WHERE id = $1`
	var l entity.OrcamentoServico
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.OrcamentoID, &l.ServicoID, &l.Horas, &l.ValorHora, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get linha de servico: %w", err)
	}
	return &l, nil
}

// ListByOrcamento devolve as linhas de serviço de um orçamento.
func (r *OrcamentoServicoRepo) ListByOrcamento(orcamentoID string) ([]*entity.OrcamentoServico, error) {
	query := `SELECT id, orcamento_id, servico_id, horas, valor_hora, created_at
		FROM orcamento_servicos WHERE orcamento_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, orcamentoID)
	if err != nil {
		return nil, fmt.Errorf("list linhas de servico: %w", err)
	}
	defer rows.Close()

	var out []*entity.OrcamentoServico
	for rows.Next() {
		var l entity.OrcamentoServico
		if err := rows.Scan(&l.ID, &l.OrcamentoID, &l.ServicoID, &l.Horas, &l.ValorHora, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan linha de servico: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}

// Delete remove uma linha de serviço.
func (r *OrcamentoServicoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orcamento_servicos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete linha de servico: %w", err)
	}
	return nil
}
