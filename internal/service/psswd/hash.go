// Package psswd wraps bcrypt behind the PasswordHasher interface the services
// consume. Stored credentials are always hashes; plaintext comparison is not
// an option anywhere in the codebase.
package psswd

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type PasswordHash struct {
	// Cost overrides bcrypt.DefaultCost when > 0. Tests lower it to MinCost.
	Cost int
}

func (p PasswordHash) HashPassword(password string) (string, error) {
	cost := p.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %s", err.Error())
	}
	return string(bytes), nil
}

func (p PasswordHash) ComparePassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
