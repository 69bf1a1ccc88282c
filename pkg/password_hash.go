package pkg

import "golang.org/x/crypto/bcrypt"

const DefaultPasswordCost = 10

// HashPassword hashes with the given bcrypt cost, falling back to
// DefaultPasswordCost when cost is outside bcrypt's accepted range.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultPasswordCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return BytesToString(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
