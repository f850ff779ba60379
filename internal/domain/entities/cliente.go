package entities

// Cliente is a registered customer.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Free-text fields are stored upper-cased; cep and telefone are stored as
// bare digit strings (display formatting is a presentation concern).

type Cliente struct {
	ID          string `json:"id"`
	Nome        string `json:"nome"`
	Endereco    string `json:"endereco"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	CEP         string `json:"cep"`
	Telefone    string `json:"telefone"`
	CPF         string `json:"cpf"`
}

// Carro is a customer vehicle.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (clienteId-index): clienteId
//
// A carro never exists without a ClienteID; placa/marca/modelo are stored
// upper-cased.

type Carro struct {
	ID        string `json:"id"`
	Placa     string `json:"placa"`
	Marca     string `json:"marca"`
	Modelo    string `json:"modelo"`
	Ano       string `json:"ano"`
	ClienteID string `json:"clienteId"`
}
