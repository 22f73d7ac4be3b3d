package domain

// Address is the street/locality pair resolved from a zipcode.
type Address struct {
	Zipcode      string `json:"cep"`
	Street       string `json:"logradouro"`
	Complement   string `json:"complemento"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
	IBGE         string `json:"ibge"`
	DDD          string `json:"ddd"`
} // @name Address
