package models

// Equipamento é um item de equipamento vinculado a exatamente uma avaliação.
type Equipamento struct {
	ID          int64   `json:"id"`
	AvaliacaoID int64   `json:"avaliacao_id"`
	Equipamento string  `json:"equipamento"`
	Modelo      *string `json:"modelo,omitempty"`
	Quantidade  int     `json:"quantidade"`
	Fabricante  *string `json:"fabricante,omitempty"`
}

// OutroRecurso é um recurso avulso (ex.: almoço, lanche) de uma avaliação.
type OutroRecurso struct {
	ID          int64  `json:"id"`
	AvaliacaoID int64  `json:"avaliacao_id"`
	Descricao   string `json:"descricao"`
	Quantidade  int    `json:"quantidade"`
}
