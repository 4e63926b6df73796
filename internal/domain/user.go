package domain

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"` // ADMIN | CUSTOMER
}

const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
)
