package models

// Account roles.
const (
	RoleRoot     = "root"
	RoleManager  = "manager"
	RoleBackend  = "backend"
	RoleFrontend = "frontend"
)

// CreatedAccount is the response of the account creation endpoints.
type CreatedAccount struct {
	ID string `json:"id"`
}

// IndividualAccount is an account identified by an email address.
type IndividualAccount struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Verified  bool   `json:"verified"`
}

// ServiceAccount is an account identified by a service name.
type ServiceAccount struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// ListAllAccountsResult lists every account of the organization.
type ListAllAccountsResult struct {
	IndividualAccounts []IndividualAccount `json:"individual_accounts"`
	ServiceAccounts    []ServiceAccount    `json:"service_accounts"`
}
