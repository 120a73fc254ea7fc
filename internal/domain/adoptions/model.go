package adoptions

import "time"

// Adoption liga um pet a um adotante num momento no tempo.
// A existência deste registro é o status de adoção autoritativo;
// Pet.Adopted/Pet.AdopterID são só o espelho dele.
type Adoption struct {
	ID        string
	PetID     string
	AdopterID string
	Date      time.Time
}
