package model

type User struct {
	ID       string
	Login    string
	Password []byte
	Role     string
}

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)
