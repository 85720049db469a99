package postgres

import (
	"context"

	"macrolog/internal/domain/entity"
	domainerrors "macrolog/internal/domain/errors"
	"macrolog/internal/domain/repository"
	"macrolog/internal/infra/persistence/model"
	"macrolog/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	q *query.Query
}

// NewUserRepository is the constructor for userRepository.
// It initializes the repository with the GORM Gen query builder bound to db,
// which may be the root connection or a transaction.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		q: query.Use(db),
	}
}

// FindByID retrieves a single user by their unique ID.
// It returns repository.ErrUserNotFound when no row matches.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u := repo.q.UserModel
	userM, err := u.WithContext(ctx).
		Where(u.ID.Eq(id)).
		Take()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, translateError(err, "failed to find user by id")
	}

	return toUserDomain(userM), nil
}

// FindByEmail retrieves a single user by their email address.
// The email is matched exactly; callers normalize it before the lookup.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	u := repo.q.UserModel
	userM, err := u.WithContext(ctx).
		Where(u.Email.Eq(email)).
		Take()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, translateError(err, "failed to find user by email")
	}

	return toUserDomain(userM), nil
}

// Create persists a new user entity. The ID is assigned here when the caller left it empty.
// A duplicate email is reported as domain ErrUserAlreadyExists.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	// Map the pure domain entity to a GORM persistence model.
	userM := fromUserDomain(user)

	if err := repo.q.UserModel.WithContext(ctx).Create(userM); err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}

		return translateError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt

	return nil
}

// toUserDomain maps the persistence model back to a pure domain entity.
func toUserDomain(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		CreatedAt:    m.CreatedAt,
	}
}

// fromUserDomain maps a domain user to its persistence model.
func fromUserDomain(u *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		CreatedAt:    u.CreatedAt,
	}
}
