package breeds

// Breed é uma raça vinculada a exatamente uma espécie.
// Toda espécie nasce com uma raça padrão "SRD" (sem raça definida).
type Breed struct {
	ID        string
	Name      string
	SpeciesID string
}

// SRDName é o nome da raça padrão criada junto com cada espécie.
const SRDName = "SRD"
