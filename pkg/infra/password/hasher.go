package password

import (
	"github.com/m-mizutani/gittales/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/crypto/bcrypt"
)

type Hasher struct {
	cost int
}

var _ interfaces.PasswordHasher = (*Hasher)(nil)

func New(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

func (x *Hasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), x.cost)
	if err != nil {
		return "", goerr.Wrap(err, "failed to hash password")
	}
	return string(b), nil
}

// Compare reports whether password matches digest. bcrypt compares in
// constant time.
func (x *Hasher) Compare(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
