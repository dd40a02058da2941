package usecases

import (
	"context"

	"bugtrail/internal/shared/authorization"
)

// Transactor runs a function inside one storage transaction scope. The
// shared db.TransactionManager satisfies it.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PasswordHasher is the credential hashing port, backed by bcrypt.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer mints the signed session token carried by API clients.
type TokenIssuer interface {
	Issue(userID, companyID uint, role authorization.Role) (string, error)
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}
