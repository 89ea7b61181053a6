package user

import (
	"crypto/rand"
	"math/big"
	"time"
)

// Contact is the identity-bearing slice of a checkout submission.
type Contact struct {
	Email      string
	Name       string
	Phone      *string
	Address    *string
	City       *string
	Province   *string
	PostalCode *string
}

// Resolution is the outcome of identity resolution: either an existing user ID
// or a draft for a guest account that still needs to be created.
type Resolution struct {
	UserID string
	Create *CreateUserParams
}

// ResolveIdentity decides which user an order belongs to, as a pure function of
// the session, the result of an email lookup, and the submitted contact fields.
// Precedence: authenticated session, then the account matching the email, then
// a new guest account. Note that matching by email alone does not prove the
// submitter owns that account; the behavior is kept deliberately and isolated
// here so it can be swapped for a dedicated guest-order flow.
func ResolveIdentity(sessionUserID string, existing *User, contact Contact) Resolution {
	if sessionUserID != "" {
		return Resolution{UserID: sessionUserID}
	}

	if existing != nil {
		return Resolution{UserID: existing.ID}
	}

	name := contact.Name
	return Resolution{
		Create: &CreateUserParams{
			Email:      contact.Email,
			Name:       &name,
			Role:       RoleCustomer,
			Phone:      contact.Phone,
			Address:    contact.Address,
			City:       contact.City,
			Province:   contact.Province,
			PostalCode: contact.PostalCode,
		},
	}
}

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// RandomPassword generates the never-communicated credential given to guest
// accounts. The account is unusable for login until a password reset.
func RandomPassword(length int) string {
	pw := make([]byte, length)
	for i := range pw {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(passwordAlphabet))))
		if err != nil {
			n = big.NewInt(time.Now().UnixNano() % int64(len(passwordAlphabet)))
		}
		pw[i] = passwordAlphabet[n.Int64()]
	}
	return string(pw)
}
