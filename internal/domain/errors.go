package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado        = errors.New("recurso não encontrado")
	ErrEntradaInvalida      = errors.New("entrada inválida")
	ErrDuplicado            = errors.New("recurso duplicado")
	ErrNaoAutorizado        = errors.New("não autorizado")
	ErrAcessoNegado         = errors.New("acesso negado")
	ErrEmailJaCadastrado    = errors.New("o email já está cadastrado")
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
	ErrOrcamentoNaoAprovado = errors.New("orçamento não está aprovado")
	ErrOrcamentoNaoEditavel = errors.New("orçamento não está pendente")
	ErrOrcamentoComOS       = errors.New("orçamento já possui ordem de serviço")
	ErrReceitaVinculada     = errors.New("receita vinculada a uma ordem de serviço")
)
