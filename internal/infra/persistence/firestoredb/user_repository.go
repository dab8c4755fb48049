package firestoredb

import (
	"context"

	"haven/internal/domain/entity"
	domainerrors "haven/internal/domain/errors"
	"haven/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// userRepository implements repository.UserRepository on the users collection.
type userRepository struct {
	client *firestore.Client
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (repo *userRepository) doc(uid string) *firestore.DocumentRef {
	return repo.client.Collection(usersCollection).Doc(uid)
}

// FindByUID retrieves a single user document by UID.
func (repo *userRepository) FindByUID(ctx context.Context, uid string) (*entity.User, error) {
	snap, err := repo.doc(uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by uid")
	}

	var user entity.User
	if err := snap.DataTo(&user); err != nil {
		return nil, errors.Wrap(err, "failed to decode user document")
	}
	user.UID = snap.Ref.ID

	return &user, nil
}

// Create persists a new user document keyed by UID. The store's conditional
// create guarantees a role can never be reassigned by registering twice.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if _, err := repo.doc(user.UID).Create(ctx, user); err != nil {
		if isAlreadyExists(err) {
			return repository.ErrUserAlreadyExists
		}

		return domainerrors.NewStoreExecuteError(err, "failed to create user")
	}

	return nil
}

// UpdateShippingAddress replaces the saved shipping address.
func (repo *userRepository) UpdateShippingAddress(ctx context.Context, uid string, address *entity.ShippingAddress) error {
	return repo.update(ctx, uid, []firestore.Update{
		{Path: "shippingAddress", Value: address},
	}, "failed to update shipping address")
}

// UpdateArtisanStory replaces the artisan's story text.
func (repo *userRepository) UpdateArtisanStory(ctx context.Context, uid string, story string) error {
	return repo.update(ctx, uid, []firestore.Update{
		{Path: "artisanStory", Value: story},
	}, "failed to update artisan story")
}

// UpdateBrandKit replaces the stored brand kit.
func (repo *userRepository) UpdateBrandKit(ctx context.Context, uid string, kit *entity.BrandKit) error {
	return repo.update(ctx, uid, []firestore.Update{
		{Path: "brandKit", Value: kit},
	}, "failed to update brand kit")
}

// SetVerifiedArtisan flips the isVerifiedArtisan flag.
func (repo *userRepository) SetVerifiedArtisan(ctx context.Context, uid string, verified bool) error {
	return repo.update(ctx, uid, []firestore.Update{
		{Path: "isVerifiedArtisan", Value: verified},
	}, "failed to update artisan verification flag")
}

func (repo *userRepository) update(ctx context.Context, uid string, updates []firestore.Update, msg string) error {
	if _, err := repo.doc(uid).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewStoreExecuteError(err, msg)
	}

	return nil
}

// Watch streams successive states of the user document. A nil element means
// the document does not exist yet; the channel closes when ctx is cancelled
// or the snapshot stream ends.
func (repo *userRepository) Watch(ctx context.Context, uid string) (<-chan *entity.User, error) {
	iter := repo.doc(uid).Snapshots(ctx)
	out := make(chan *entity.User, 1)

	go func() {
		defer close(out)
		defer iter.Stop()

		for {
			snap, err := iter.Next()
			if err != nil {
				return
			}

			var user *entity.User
			if snap.Exists() {
				user = &entity.User{}
				if err := snap.DataTo(user); err != nil {
					return
				}
				user.UID = snap.Ref.ID
			}

			select {
			case out <- user:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
