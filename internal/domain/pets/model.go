package pets

// Pet é um animal cadastrado para adoção.
//
// Adopted e AdopterID são uma projeção desnormalizada da Adoption viva do
// pet: o registro de adoção é a fonte de verdade, e só o motor de adoções
// mexe nesses dois campos (sempre na mesma transação que cria ou remove a
// adoção). Handlers de pet nunca escrevem neles diretamente.
type Pet struct {
	ID          string
	Name        string
	BreedID     *string
	Age         int
	Photo       []byte
	Description string

	Adopted   bool
	AdopterID *string
}
