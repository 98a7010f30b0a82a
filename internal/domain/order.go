package domain

// Order is a placed order. Read-only here; the core only aggregates.
type Order struct {
	ID        int64
	UserID    int64
	ProductID int64
	Price     float64
	Address   string
	Units     int64
}

// OrderSummary aggregates all orders for the admin dashboard.
type OrderSummary struct {
	TotalOrders int64   `json:"totalOrders"`
	TotalAmount float64 `json:"totalAmount"`
}
