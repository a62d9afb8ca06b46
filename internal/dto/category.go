package dto

type CategoriesResponseDTO struct {
	Categories      []string `json:"categories"`
	PriceLevels     []string `json:"price_levels"`
	Conditions      []string `json:"conditions"`
	RelevanceLevels []string `json:"relevance_levels"`
}

type CustomCategoryDTO struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

type UpdateCategoryImageDTO struct {
	Image string `json:"image"`
}
