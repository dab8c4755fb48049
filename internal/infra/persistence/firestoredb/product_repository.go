package firestoredb

import (
	"context"

	"haven/internal/domain/entity"
	domainerrors "haven/internal/domain/errors"
	"haven/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// productRepository implements repository.ProductRepository on the products
// collection.
type productRepository struct {
	client *firestore.Client
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(client *firestore.Client) repository.ProductRepository {
	return &productRepository{client: client}
}

func (repo *productRepository) col() *firestore.CollectionRef {
	return repo.client.Collection(productsCollection)
}

// FindByID retrieves a single product by document ID.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	snap, err := repo.col().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return decodeProduct(snap)
}

// Create persists a new product and returns its generated ID.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) (string, error) {
	ref, _, err := repo.col().Add(ctx, product)
	if err != nil {
		return "", domainerrors.NewStoreExecuteError(err, "failed to create product")
	}
	product.ID = ref.ID

	return ref.ID, nil
}

// Update replaces the mutable fields of an existing product. Verification
// state is owned by SetVerified and deliberately left untouched here.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	_, err := repo.col().Doc(product.ID).Update(ctx, []firestore.Update{
		{Path: "name", Value: product.Name},
		{Path: "description", Value: product.Description},
		{Path: "pricePaise", Value: product.PricePaise},
		{Path: "imageUrls", Value: product.ImageURLs},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to update product")
	}

	return nil
}

// Delete removes a product document.
func (repo *productRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.col().Doc(id).Delete(ctx); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete product")
	}

	return nil
}

// ListVerified returns all publicly visible products, newest first.
func (repo *productRepository) ListVerified(ctx context.Context) ([]*entity.Product, error) {
	return repo.list(ctx, repo.col().
		Where("isVerified", "==", true).
		OrderBy("createdAt", firestore.Desc))
}

// ListPending returns products awaiting admin review, oldest first so the
// review queue is first-come first-served.
func (repo *productRepository) ListPending(ctx context.Context) ([]*entity.Product, error) {
	return repo.list(ctx, repo.col().
		Where("isVerified", "==", false).
		OrderBy("createdAt", firestore.Asc))
}

// ListByArtisan returns every product owned by the artisan, verified or not.
func (repo *productRepository) ListByArtisan(ctx context.Context, artisanUID string) ([]*entity.Product, error) {
	return repo.list(ctx, repo.col().
		Where("artisanId", "==", artisanUID).
		OrderBy("createdAt", firestore.Desc))
}

// ListVerifiedByArtisan returns the artisan's publicly visible products.
func (repo *productRepository) ListVerifiedByArtisan(ctx context.Context, artisanUID string) ([]*entity.Product, error) {
	return repo.list(ctx, repo.col().
		Where("artisanId", "==", artisanUID).
		Where("isVerified", "==", true).
		OrderBy("createdAt", firestore.Desc))
}

// SetVerified marks a product as reviewed.
func (repo *productRepository) SetVerified(ctx context.Context, id string, verified bool) error {
	_, err := repo.col().Doc(id).Update(ctx, []firestore.Update{
		{Path: "isVerified", Value: verified},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to update product verification flag")
	}

	return nil
}

func (repo *productRepository) list(ctx context.Context, query firestore.Query) ([]*entity.Product, error) {
	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(snaps))
	for _, snap := range snaps {
		product, err := decodeProduct(snap)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

func decodeProduct(snap *firestore.DocumentSnapshot) (*entity.Product, error) {
	var product entity.Product
	if err := snap.DataTo(&product); err != nil {
		return nil, errors.Wrap(err, "failed to decode product document")
	}
	product.ID = snap.Ref.ID

	return &product, nil
}
