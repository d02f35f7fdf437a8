package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mattmach1/restaurant-inventory/internal/apperrors"
	"github.com/mattmach1/restaurant-inventory/internal/core/domain"
	portsrepo "github.com/mattmach1/restaurant-inventory/internal/core/ports/repositories"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

const fullUserSelectQuery = `
SELECT
	u.user_id, u.email, u.password_hash, u.name, u.organization_id, u.role, u.created_at
FROM users u
`

func (r *PgxUserRepository) getUsers(ctx context.Context, filterQuery string, args ...any) ([]domain.User, error) {
	rows, err := r.Pool.Query(ctx, fullUserSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query users", err)
	}
	defer rows.Close()
	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.User])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect user rows", err)
	}
	return users, nil
}

const insertUserQuery = `
	INSERT INTO users (user_id, email, password_hash, name, organization_id, role, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
`

// SaveUserWithOrganization inserts the organization and its first user in one
// transaction. A duplicate email maps to ErrDuplicate and leaves no rows.
func (r *PgxUserRepository) SaveUserWithOrganization(ctx context.Context, org domain.Organization, user domain.User) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	orgQuery := `
		INSERT INTO organizations (organization_id, name, created_at)
		VALUES ($1, $2, $3);
	`
	if _, err := tx.Exec(ctx, orgQuery, org.OrganizationID, org.Name, org.CreatedAt); err != nil {
		return apperrors.NewAppError(500, "failed to save organization "+org.OrganizationID, err)
	}

	if _, err := tx.Exec(ctx, insertUserQuery,
		user.UserID, user.Email, user.PasswordHash, user.Name, user.OrganizationID, user.Role, user.CreatedAt,
	); err != nil {
		return mapUserInsertError(err, user)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if _, err := r.Pool.Exec(ctx, insertUserQuery,
		user.UserID, user.Email, user.PasswordHash, user.Name, user.OrganizationID, user.Role, user.CreatedAt,
	); err != nil {
		return mapUserInsertError(err, user)
	}
	return nil
}

func mapUserInsertError(err error, user domain.User) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("email " + user.Email + " already in use")
		}
		if pgErr.Code == "23514" { // check_violation, users_role_check
			return apperrors.NewValidationFailedError("unsupported role " + string(user.Role))
		}
	}
	return apperrors.NewAppError(500, "failed to save user "+user.UserID, err)
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	users, err := r.getUsers(ctx, `WHERE u.user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &users[0], nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.getUsers(ctx, `WHERE u.email = $1`, email)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &users[0], nil
}

func (r *PgxUserRepository) ListUsersByOrganization(ctx context.Context, organizationID string) ([]domain.User, error) {
	return r.getUsers(ctx, `WHERE u.organization_id = $1 ORDER BY u.created_at`, organizationID)
}
