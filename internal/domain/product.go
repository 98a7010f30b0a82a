package domain

// Product is an inventory item managed through the admin console.
// Price is stored as NUMERIC(10,2) in Postgres; the float64 here is the
// API-edge representation only, monetary arithmetic stays in SQL.
type Product struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	ImageLink string  `json:"image_link"`
	Units     int64   `json:"units"`
}
