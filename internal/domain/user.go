package domain

// User is the domain model for shoppers registered through the storefront.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Phone        *string
	Address      *string
	CardNumber   *string
	CardDate     *string
	CVV          *string
}

// Customer is the admin-console projection of a user. It deliberately
// excludes email and credential fields.
type Customer struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}
