package adopters

// Adopter é uma pessoa que pode adotar pets.
// TaxpayerID é o CPF; guardado como texto opaco, sem validação de dígito.
type Adopter struct {
	ID         string
	Name       string
	Phone      string
	Email      string
	TaxpayerID string
}
