package dto

// AddProductRequest payload for inventory insertion.
type AddProductRequest struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Units     int64   `json:"units"`
	ImageLink string  `json:"image_link"`
}

// ProductResponse is the storefront projection of a product.
type ProductResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
}

// MessageResponse is the generic acknowledgment body.
type MessageResponse struct {
	Message string `json:"message"`
}
