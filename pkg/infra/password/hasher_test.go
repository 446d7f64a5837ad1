package password_test

import (
	"testing"

	"github.com/m-mizutani/gittales/pkg/infra/password"
	"github.com/m-mizutani/gt"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher(t *testing.T) {
	hasher := password.New(bcrypt.MinCost)

	digest := gt.R1(hasher.Hash("correct horse")).NoError(t)
	gt.V(t, digest).NotEqual("correct horse")

	gt.True(t, hasher.Compare("correct horse", digest))
	gt.False(t, hasher.Compare("wrong horse", digest))
	gt.False(t, hasher.Compare("correct horse", "not-a-digest"))

	// Salted: the same password yields a different digest
	other := gt.R1(hasher.Hash("correct horse")).NoError(t)
	gt.V(t, other).NotEqual(digest)
}
