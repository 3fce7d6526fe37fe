package models

// Registration carries the inputs of a sign-up request. Password is the raw
// password and must never be stored or logged.
type Registration struct {
	Username string `json:"username"`
	Password string `json:"-"`
	Email    string `json:"email"`
}
