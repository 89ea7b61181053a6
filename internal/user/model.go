package user

import "time"

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

type User struct {
	ID         string
	Email      string
	Name       *string
	Password   string
	Role       Role
	Phone      *string
	Address    *string
	City       *string
	Province   *string
	PostalCode *string
	CreatedAt  time.Time
}

type CreateUserParams struct {
	Email      string
	Name       *string
	Password   string
	Role       Role
	Phone      *string
	Address    *string
	City       *string
	Province   *string
	PostalCode *string
}
