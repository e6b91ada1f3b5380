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

var _ repository.FornecedorRepository = (*FornecedorRepo)(nil)

// FornecedorRepo implementação de FornecedorRepository sobre PostgreSQL.
type FornecedorRepo struct {
	q Querier
}

// NewFornecedorRepository constrói o adaptador de fornecedores.
func NewFornecedorRepository(q Querier) *FornecedorRepo {
	return &FornecedorRepo{q: q}
}

const colunasFornecedor = `id, nome, cnpj, email, telefone, endereco, created_at, updated_at`

func scanFornecedor(row pgx.Row) (*entity.Fornecedor, error) {
	var f entity.Fornecedor
	err := row.Scan(&f.ID, &f.Nome, &f.CNPJ, &f.Email, &f.Telefone, &f.Endereco, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Create insere um fornecedor.
func (r *FornecedorRepo) Create(f *entity.Fornecedor) error {
	query := `
		INSERT INTO fornecedores (id, nome, cnpj, email, telefone, endereco, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.Nome, f.CNPJ, f.Email, f.Telefone, f.Endereco, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert fornecedor: %w", err)
	}
	return nil
}

// GetByID busca um fornecedor por ID. Devolve nil, nil se não existir.
func (r *FornecedorRepo) GetByID(id string) (*entity.Fornecedor, error) {
	query := `SELECT ` + colunasFornecedor + ` FROM fornecedores WHERE id = $1`
	f, err := scanFornecedor(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fornecedor: %w", err)
	}
	return f, nil
}

// List devolve os fornecedores por nome.
func (r *FornecedorRepo) List() ([]*entity.Fornecedor, error) {
	query := `SELECT ` + colunasFornecedor + ` FROM fornecedores ORDER BY nome`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list fornecedores: %w", err)
	}
	defer rows.Close()

	out := []*entity.Fornecedor{}
	for rows.Next() {
		f, err := scanFornecedor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan fornecedor: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Update sobrescreve os campos do fornecedor.
func (r *FornecedorRepo) Update(f *entity.Fornecedor) error {
	query := `
		UPDATE fornecedores SET nome = $2, cnpj = $3, email = $4, telefone = $5, endereco = $6,
			updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.Nome, f.CNPJ, f.Email, f.Telefone, f.Endereco, f.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("update fornecedor: %w", err)
	}
	return nil
}

// Delete remove um fornecedor.
func (r *FornecedorRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM fornecedores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete fornecedor: %w", err)
	}
	return nil
}

var _ repository.CompraPecaRepository = (*CompraPecaRepo)(nil)

// CompraPecaRepo implementação de CompraPecaRepository sobre PostgreSQL.
type CompraPecaRepo struct {
	q Querier
}

// NewCompraPecaRepository constrói o adaptador de compras de peças.
func NewCompraPecaRepository(q Querier) *CompraPecaRepo {
	return &CompraPecaRepo{q: q}
}

// Create insere uma compra.
func (r *CompraPecaRepo) Create(c *entity.CompraPeca) error {
	query := `
		INSERT INTO compras_pecas (id, numero_nota, fornecedor_id, peca_id, quantidade, valor_custo,
			data_compra, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.NumeroNota, c.FornecedorID, c.PecaID, c.Quantidade, c.ValorCusto,
		c.DataCompra, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert compra de peca: %w", err)
	}
	return nil
}

// List devolve o histórico de compras com nomes resolvidos, da mais nova para
// a mais velha.
func (r *CompraPecaRepo) List() ([]*entity.CompraPecaDetalhada, error) {
	query := `
		SELECT c.id, c.numero_nota, c.fornecedor_id, c.peca_id, c.quantidade, c.valor_custo,
			c.data_compra, c.created_at, c.updated_at, f.nome, p.nome
		FROM compras_pecas c
		JOIN fornecedores f ON f.id = c.fornecedor_id
		JOIN pecas p ON p.id = c.peca_id
		ORDER BY c.data_compra DESC, c.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list compras de pecas: %w", err)
	}
	defer rows.Close()

	out := []*entity.CompraPecaDetalhada{}
	for rows.Next() {
		var c entity.CompraPecaDetalhada
		err := rows.Scan(
			&c.ID, &c.NumeroNota, &c.FornecedorID, &c.PecaID, &c.Quantidade, &c.ValorCusto,
			&c.DataCompra, &c.CreatedAt, &c.UpdatedAt, &c.FornecedorNome, &c.PecaNome,
		)
		if err != nil {
			return nil, fmt.Errorf("scan compra de peca: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

var _ repository.ContatoMarketingRepository = (*ContatoMarketingRepo)(nil)

// ContatoMarketingRepo implementação de ContatoMarketingRepository sobre PostgreSQL.
type ContatoMarketingRepo struct {
	q Querier
}

// NewContatoMarketingRepository constrói o adaptador de contatos de marketing.
func NewContatoMarketingRepository(q Querier) *ContatoMarketingRepo {
	return &ContatoMarketingRepo{q: q}
}

const colunasContato = `id, cliente_id, nome_cliente, telefone, data_aniversario, mensagem_enviada_em,
	created_at, updated_at`

func scanContato(row pgx.Row) (*entity.ContatoMarketing, error) {
	var c entity.ContatoMarketing
	err := row.Scan(
		&c.ID, &c.ClienteID, &c.NomeCliente, &c.Telefone, &c.DataAniversario, &c.MensagemEnviadaEm,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create insere um contato.
func (r *ContatoMarketingRepo) Create(c *entity.ContatoMarketing) error {
	query := `
		INSERT INTO contatos_marketing (id, cliente_id, nome_cliente, telefone, data_aniversario,
			mensagem_enviada_em, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.ClienteID, c.NomeCliente, c.Telefone, c.DataAniversario,
		c.MensagemEnviadaEm, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contato de marketing: %w", err)
	}
	return nil
}

// GetByID busca um contato por ID. Devolve nil, nil se não existir.
func (r *ContatoMarketingRepo) GetByID(id string) (*entity.ContatoMarketing, error) {
	query := `SELECT ` + colunasContato + ` FROM contatos_marketing WHERE id = $1`
	c, err := scanContato(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contato de marketing: %w", err)
	}
	return c, nil
}

// List devolve os contatos por nome.
func (r *ContatoMarketingRepo) List() ([]*entity.ContatoMarketing, error) {
	query := `SELECT ` + colunasContato + ` FROM contatos_marketing ORDER BY nome_cliente`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list contatos de marketing: %w", err)
	}
	defer rows.Close()

	out := []*entity.ContatoMarketing{}
	for rows.Next() {
		c, err := scanContato(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contato de marketing: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Update sobrescreve os campos do contato.
func (r *ContatoMarketingRepo) Update(c *entity.ContatoMarketing) error {
	query := `
		UPDATE contatos_marketing SET cliente_id = $2, nome_cliente = $3, telefone = $4,
			data_aniversario = $5, mensagem_enviada_em = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.ClienteID, c.NomeCliente, c.Telefone, c.DataAniversario, c.MensagemEnviadaEm, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update contato de marketing: %w", err)
	}
	return nil
}

// Delete remove um contato.
func (r *ContatoMarketingRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM contatos_marketing WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contato de marketing: %w", err)
	}
	return nil
}

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementação de UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository constrói o adaptador de usuários.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

const colunasUsuario = `id, email, nome, senha_hash, papel, ativo, created_at, updated_at`

func scanUsuario(row pgx.Row) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(&u.ID, &u.Email, &u.Nome, &u.SenhaHash, &u.Papel, &u.Ativo, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create insere um usuário.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, email, nome, senha_hash, papel, ativo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Email, u.Nome, u.SenhaHash, u.Papel, u.Ativo, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailJaCadastrado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID busca um usuário por ID. Devolve nil, nil se não existir.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	query := `SELECT ` + colunasUsuario + ` FROM usuarios WHERE id = $1`
	u, err := scanUsuario(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return u, nil
}

// GetByEmail busca um usuário pelo e-mail. Devolve nil, nil se não existir.
func (r *UsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	query := `SELECT ` + colunasUsuario + ` FROM usuarios WHERE email = $1`
	u, err := scanUsuario(r.q.QueryRow(context.Background(), query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario por email: %w", err)
	}
	return u, nil
}

// Update sobrescreve os campos mutáveis do usuário.
func (r *UsuarioRepo) Update(u *entity.Usuario) error {
	query := `
		UPDATE usuarios SET email = $2, nome = $3, senha_hash = $4, papel = $5, ativo = $6,
			updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Email, u.Nome, u.SenhaHash, u.Papel, u.Ativo, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailJaCadastrado
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}
