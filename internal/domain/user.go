package domain

type Role string

const (
	RoleCustomer Role = "customer"
	RoleFarmer   Role = "farmer"
)

// User is the session record persisted between visits.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Avatar   string `json:"avatar,omitempty"`
	FarmName string `json:"farmName,omitempty"`
}

func (u User) IsFarmer() bool {
	return u.Role == RoleFarmer
}

func (u User) IsCustomer() bool {
	return u.Role == RoleCustomer
}
