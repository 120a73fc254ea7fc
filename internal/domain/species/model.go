package species

// Species é a classificação de topo da taxonomia (ex.: "Cachorro").
type Species struct {
	ID   string
	Name string
}
