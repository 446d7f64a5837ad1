package infra

import (
	"github.com/m-mizutani/gittales/pkg/domain/interfaces"
	"github.com/m-mizutani/gittales/pkg/infra/dedup"
	"github.com/m-mizutani/gittales/pkg/infra/password"
	"github.com/m-mizutani/gittales/pkg/repository/memory"
	"golang.org/x/crypto/bcrypt"
)

type Clients struct {
	database       interfaces.Database
	github         interfaces.GitHub
	tokenSigner    interfaces.TokenSigner
	passwordHasher interfaces.PasswordHasher
	deliveryGuard  interfaces.DeliveryGuard
	publisher      interfaces.EventPublisher
	bqClient       interfaces.BigQuery
}

type Option func(*Clients)

// New returns clients backed by in-memory database, bcrypt hasher and
// in-process delivery guard unless replaced by options. GitHub, token signer,
// event publisher and BigQuery are nil when not configured.
func New(options ...Option) *Clients {
	client := &Clients{
		database:       memory.New(),
		passwordHasher: password.New(bcrypt.DefaultCost),
		deliveryGuard:  dedup.NewMemory(dedup.DefaultTTL),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) Database() interfaces.Database {
	return x.database
}
func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) TokenSigner() interfaces.TokenSigner {
	return x.tokenSigner
}
func (x *Clients) PasswordHasher() interfaces.PasswordHasher {
	return x.passwordHasher
}
func (x *Clients) DeliveryGuard() interfaces.DeliveryGuard {
	return x.deliveryGuard
}
func (x *Clients) EventPublisher() interfaces.EventPublisher {
	return x.publisher
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}

func WithDatabase(db interfaces.Database) Option {
	return func(x *Clients) {
		x.database = db
	}
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithTokenSigner(signer interfaces.TokenSigner) Option {
	return func(x *Clients) {
		x.tokenSigner = signer
	}
}

func WithPasswordHasher(hasher interfaces.PasswordHasher) Option {
	return func(x *Clients) {
		x.passwordHasher = hasher
	}
}

func WithDeliveryGuard(guard interfaces.DeliveryGuard) Option {
	return func(x *Clients) {
		x.deliveryGuard = guard
	}
}

func WithEventPublisher(publisher interfaces.EventPublisher) Option {
	return func(x *Clients) {
		x.publisher = publisher
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}
