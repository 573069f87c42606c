package auth

import (
	"log"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// Policy roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Account is a static access-policy identity resolved at process start.
// These accounts are independent from the database-backed user directory;
// the two identity systems do not federate.
type Account struct {
	Username     string
	PasswordHash string
	Role         string
}

// Policy is the fixed rule set guarding the admin area: exactly two accounts,
// and any path under the admin prefix requires the admin role.
type Policy struct {
	accounts map[string]Account
}

// NewPolicy hashes the configured static credentials and builds the policy.
func NewPolicy(adminUser, adminPass, plainUser, plainPass string) *Policy {
	p := &Policy{accounts: make(map[string]Account, 2)}
	p.add(adminUser, adminPass, RoleAdmin)
	p.add(plainUser, plainPass, RoleUser)
	return p
}

func (p *Policy) add(username, password, role string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		// bcrypt only fails on oversized input; static credentials never are.
		log.Fatalf("hash policy credential: %v", err)
	}
	p.accounts[username] = Account{Username: username, PasswordHash: string(hash), Role: role}
}

// Authenticate verifies the credentials against the static accounts and
// returns the matched account, or ok=false on any miss.
func (p *Policy) Authenticate(username, password string) (Account, bool) {
	account, ok := p.accounts[username]
	if !ok {
		return Account{}, false
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return Account{}, false
	}
	return account, true
}
