package usecase

import (
	"fmt"

	"github.com/m-mizutani/gittales/pkg/domain/interfaces"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/infra"
	"github.com/m-mizutani/goerr/v2"
)

type UseCase struct {
	clients *infra.Clients
}

var _ interfaces.UseCase = (*UseCase)(nil)

func New(clients *infra.Clients) *UseCase {
	return &UseCase{
		clients: clients,
	}
}

// persistenceError classifies a store failure. The original error stays in
// the chain for logging.
func persistenceError(err error, msg string, options ...goerr.Option) error {
	return goerr.Wrap(fmt.Errorf("%w: %w", types.ErrPersistenceFailed, err), msg, options...)
}
