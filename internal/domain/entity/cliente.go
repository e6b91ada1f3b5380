package entity

import "time"

// Tipos de cliente.
const (
	ClienteFisica   = "fisica"
	ClienteJuridica = "juridica"
)

// Cliente representa um cliente da oficina (pessoa física ou jurídica).
// Os campos de veículo embutidos (Marca/Modelo/Ano/Placa) são uma conveniência
// para clientes de veículo único; veículos adicionais ficam em Veiculo.
type Cliente struct {
	ID            string     `json:"id"`
	Tipo          string     `json:"tipo"` // fisica, juridica
	Nome          string     `json:"nome"`
	Documento     string     `json:"documento"` // CPF ou CNPJ
	Telefone      *string    `json:"telefone,omitempty"`
	Email         *string    `json:"email,omitempty"`
	Endereco      *string    `json:"endereco,omitempty"`
	Aniversario   *time.Time `json:"aniversario,omitempty"`
	Marca         *string    `json:"marca,omitempty"`
	Modelo        *string    `json:"modelo,omitempty"`
	Ano           *string    `json:"ano,omitempty"`
	Placa         *string    `json:"placa,omitempty"`
	Quilometragem *string    `json:"quilometragem,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Veiculo representa um veículo cadastrado de um cliente.
type Veiculo struct {
	ID        string    `json:"id"`
	ClienteID string    `json:"cliente_id"`
	Marca     string    `json:"marca"`
	Modelo    string    `json:"modelo"`
	Ano       string    `json:"ano"`
	Placa     string    `json:"placa"`
	Km        *string   `json:"km,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
