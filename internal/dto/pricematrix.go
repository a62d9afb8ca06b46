package dto

type PriceMatrixEntryDTO struct {
	Category   string   `json:"category"`
	PriceLevel string   `json:"price_level"`
	Condition  string   `json:"condition"`
	Relevance  string   `json:"relevance"`
	FixedPrice *float64 `json:"fixed_price"`
}

type PriceLookupResponseDTO struct {
	FixedPrice *float64 `json:"fixed_price"`
	Found      bool     `json:"found"`
}

type MatrixUploadResponseDTO struct {
	Message string `json:"message"`
	Updated int    `json:"updated"`
}
