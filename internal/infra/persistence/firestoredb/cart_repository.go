package firestoredb

import (
	"context"

	"haven/internal/domain/entity"
	domainerrors "haven/internal/domain/errors"
	"haven/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// cartRepository implements repository.CartRepository on the carts collection.
// The cart document is keyed by its owner's UID.
type cartRepository struct {
	client *firestore.Client
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(client *firestore.Client) repository.CartRepository {
	return &cartRepository{client: client}
}

func (repo *cartRepository) doc(ownerUID string) *firestore.DocumentRef {
	return repo.client.Collection(cartsCollection).Doc(ownerUID)
}

// Get returns the owner's cart. A missing document is an empty cart, never an
// error, so new sessions start from a clean slate without a write.
func (repo *cartRepository) Get(ctx context.Context, ownerUID string) (*entity.Cart, error) {
	snap, err := repo.doc(ownerUID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return &entity.Cart{OwnerUID: ownerUID}, nil
		}

		return nil, errors.Wrap(err, "failed to get cart")
	}

	var cart entity.Cart
	if err := snap.DataTo(&cart); err != nil {
		return nil, errors.Wrap(err, "failed to decode cart document")
	}
	cart.OwnerUID = snap.Ref.ID

	return &cart, nil
}

// Save overwrites the owner's cart document. Last write wins.
func (repo *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	if _, err := repo.doc(cart.OwnerUID).Set(ctx, cart); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to save cart")
	}

	return nil
}

// Clear deletes the owner's cart document.
func (repo *cartRepository) Clear(ctx context.Context, ownerUID string) error {
	if _, err := repo.doc(ownerUID).Delete(ctx); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to clear cart")
	}

	return nil
}
