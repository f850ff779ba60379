package interfaces

import "context"

// EnderecoCEP is the address resolved for a postal code.
type EnderecoCEP struct {
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
}

// ICEPGateway abstracts the external postal-code lookup (ViaCEP). found is
// false when the provider answers but does not know the CEP; err is
// reserved for transport/availability failures.
type ICEPGateway interface {
	Lookup(ctx context.Context, cep string) (endereco EnderecoCEP, found bool, err error)
}
