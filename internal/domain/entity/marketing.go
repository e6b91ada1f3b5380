package entity

import "time"

// ContatoMarketing é um contato do módulo de marketing/aniversários.
// MensagemEnviadaEm registra o último envio de mensagem de aniversário.
type ContatoMarketing struct {
	ID               string     `json:"id"`
	ClienteID        *string    `json:"cliente_id,omitempty"`
	NomeCliente      string     `json:"nome_cliente"`
	Telefone         *string    `json:"telefone,omitempty"`
	DataAniversario  *time.Time `json:"data_aniversario,omitempty"`
	MensagemEnviadaEm *time.Time `json:"mensagem_enviada_em,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
