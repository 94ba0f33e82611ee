package catalog

type SearchFilter struct {
	Query    string
	Category string
	Tag      string
}

type SaveProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	FileURL     string   `json:"fileUrl"`
	ImageURL    string   `json:"imageUrl"`
}

type ProductDTO struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	FileURL     string   `json:"fileUrl"`
	ImageURL    string   `json:"imageUrl"`
}
