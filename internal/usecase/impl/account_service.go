// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"haven/internal/domain/entity"
	domainerrors "haven/internal/domain/errors"
	"haven/internal/domain/repository"
	"haven/internal/domain/service"
	"haven/internal/usecase"

	"github.com/pkg/errors"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register creates the user document with an explicitly chosen role. The role
// is assigned exactly once; a second registration is a conflict regardless of
// the role it asks for.
func (srv *accountService) Register(ctx context.Context, identity *service.Identity, input *usecase.RegisterInput) (*entity.User, error) {
	role := entity.Role(input.Role)
	if !role.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidRole, "unknown role")
	}

	srv.logger.Info("Registering account",
		slog.String("uid", identity.UID),
		slog.String("role", role.String()),
	)

	displayName := input.DisplayName
	if displayName == "" {
		displayName = identity.DisplayName
	}

	user := &entity.User{
		UID:         identity.UID,
		DisplayName: displayName,
		Email:       identity.Email,
		PhotoURL:    identity.PhotoURL,
		Role:        role,
		CreatedAt:   time.Now().UTC(),
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "account already registered")
		}

		return nil, errors.Wrap(err, "failed to register account")
	}

	return user, nil
}

// EnsureProfile creates the buyer document on first social sign-in. Losing the
// create race to a concurrent sign-in is fine; the winner's document is read
// back either way.
func (srv *accountService) EnsureProfile(ctx context.Context, identity *service.Identity) (*entity.User, error) {
	user, err := srv.userRepo.FindByUID(ctx, identity.UID)
	if err == nil {
		return mergeIdentity(user, identity), nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to resolve profile")
	}

	srv.logger.Info("Creating buyer profile on first sign-in", slog.String("uid", identity.UID))

	created := &entity.User{
		UID:         identity.UID,
		DisplayName: identity.DisplayName,
		Email:       identity.Email,
		PhotoURL:    identity.PhotoURL,
		Role:        entity.RoleBuyer,
		CreatedAt:   time.Now().UTC(),
	}
	if err := srv.userRepo.Create(ctx, created); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return srv.Resolve(ctx, identity)
		}

		return nil, errors.Wrap(err, "failed to create profile")
	}

	return created, nil
}

// Resolve merges the provider identity with the stored document. A missing
// document resolves to explicit defaults so callers never branch on partial
// shapes.
func (srv *accountService) Resolve(ctx context.Context, identity *service.Identity) (*entity.User, error) {
	user, err := srv.userRepo.FindByUID(ctx, identity.UID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return defaultProfile(identity), nil
		}

		return nil, errors.Wrap(err, "failed to resolve profile")
	}

	return mergeIdentity(user, identity), nil
}

// Watch streams resolved profiles as the document changes. A nil document
// state resolves to the identity defaults, mirroring Resolve.
func (srv *accountService) Watch(ctx context.Context, identity *service.Identity) (<-chan *entity.User, error) {
	updates, err := srv.userRepo.Watch(ctx, identity.UID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch profile")
	}

	out := make(chan *entity.User, 1)
	go func() {
		defer close(out)
		for user := range updates {
			var resolved *entity.User
			if user == nil {
				resolved = defaultProfile(identity)
			} else {
				resolved = mergeIdentity(user, identity)
			}

			select {
			case out <- resolved:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

// UpdateShippingAddress saves the buyer's delivery address.
func (srv *accountService) UpdateShippingAddress(ctx context.Context, uid string, input *usecase.ShippingAddressInput) error {
	address := &entity.ShippingAddress{
		Name:    input.Name,
		Line1:   input.Line1,
		Line2:   input.Line2,
		City:    input.City,
		State:   input.State,
		Pincode: input.Pincode,
		Phone:   input.Phone,
	}

	if err := srv.userRepo.UpdateShippingAddress(ctx, uid, address); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "no profile to update")
		}

		return errors.Wrap(err, "failed to update shipping address")
	}

	return nil
}

// UpdateStory saves the artisan's story text.
func (srv *accountService) UpdateStory(ctx context.Context, uid string, story string) error {
	if err := srv.userRepo.UpdateArtisanStory(ctx, uid, story); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "no profile to update")
		}

		return errors.Wrap(err, "failed to update story")
	}

	return nil
}

// defaultProfile is the resolved shape for an identity with no document yet:
// empty role, every flag false.
func defaultProfile(identity *service.Identity) *entity.User {
	return &entity.User{
		UID:         identity.UID,
		DisplayName: identity.DisplayName,
		Email:       identity.Email,
		PhotoURL:    identity.PhotoURL,
	}
}

// mergeIdentity backfills provider-asserted fields the document does not
// carry. Stored values win; the provider only fills gaps.
func mergeIdentity(user *entity.User, identity *service.Identity) *entity.User {
	if user.DisplayName == "" {
		user.DisplayName = identity.DisplayName
	}
	if user.Email == "" {
		user.Email = identity.Email
	}
	if user.PhotoURL == "" {
		user.PhotoURL = identity.PhotoURL
	}

	return user
}
