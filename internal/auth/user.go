package auth

// User is the persisted identity of the signed-in visitor.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Credential is one entry of the login table.
type Credential struct {
	ID       string
	Email    string
	Password string
	Name     string
}

func (c Credential) user() *User {
	return &User{ID: c.ID, Email: c.Email, Name: c.Name}
}

// DefaultCredentials is the built-in demo account table.
var DefaultCredentials = []Credential{
	{ID: "1", Email: "student@example.com", Password: "password123", Name: "Alex Student"},
	{ID: "2", Email: "learner@example.com", Password: "learn123", Name: "Jordan Learner"},
}

// SignupInput is what a visitor submits to create an account.
type SignupInput struct {
	Email    string
	Password string
	Name     string
}
