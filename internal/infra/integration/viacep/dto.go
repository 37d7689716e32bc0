package viacep

// viaCEPResponse é o formato cru da API pública.
type viaCEPResponse struct {
	CEP        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       bool   `json:"erro,omitempty"`
}

// AddressResponse é o que devolvemos para a apresentação preencher o
// formulário de endereço.
type AddressResponse struct {
	ZipCode  string `json:"zip_code"`
	Street   string `json:"street"`
	District string `json:"district"`
	City     string `json:"city"`
	State    string `json:"state"`
}
