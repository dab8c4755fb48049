package impl

import (
	"context"
	"log/slog"

	"haven/internal/domain/entity"
	domainerrors "haven/internal/domain/errors"
	"haven/internal/domain/repository"
	"haven/internal/usecase"

	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: productRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// CreateProduct creates an unverified listing owned by the artisan. The
// artisan's display name is denormalized onto the listing at this point and
// never re-synced.
func (srv *catalogService) CreateProduct(ctx context.Context, artisan *entity.User, input *usecase.ProductInput) (*entity.Product, error) {
	if input.PricePaise < 0 || len(input.ImageURLs) == 0 {
		return nil, errors.Wrap(domainerrors.ErrProductInvalid, "price must be non-negative and at least one image is required")
	}

	product := &entity.Product{
		ArtisanID:   artisan.UID,
		ArtisanName: artisan.DisplayName,
		Name:        input.Name,
		Description: input.Description,
		PricePaise:  input.PricePaise,
		ImageURLs:   input.ImageURLs,
	}

	id, err := srv.productRepo.Create(ctx, product)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.logger.Info("Product created",
		slog.String("product_id", id),
		slog.String("artisan_uid", artisan.UID),
	)

	return product, nil
}

// UpdateProduct edits an owned listing. IsVerified survives the edit; only an
// admin review changes it.
func (srv *catalogService) UpdateProduct(ctx context.Context, artisanUID, productID string, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := srv.ownedProduct(ctx, artisanUID, productID)
	if err != nil {
		return nil, err
	}

	if input.PricePaise < 0 || len(input.ImageURLs) == 0 {
		return nil, errors.Wrap(domainerrors.ErrProductInvalid, "price must be non-negative and at least one image is required")
	}

	product.Name = input.Name
	product.Description = input.Description
	product.PricePaise = input.PricePaise
	product.ImageURLs = input.ImageURLs

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes an owned listing. Orders that snapshotted it are
// unaffected.
func (srv *catalogService) DeleteProduct(ctx context.Context, artisanUID, productID string) error {
	if _, err := srv.ownedProduct(ctx, artisanUID, productID); err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.logger.Info("Product deleted",
		slog.String("product_id", productID),
		slog.String("artisan_uid", artisanUID),
	)

	return nil
}

// ListOwnProducts returns all of the artisan's listings.
func (srv *catalogService) ListOwnProducts(ctx context.Context, artisanUID string) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListByArtisan(ctx, artisanUID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own products")
	}

	return products, nil
}

// ListPublic returns all verified products.
func (srv *catalogService) ListPublic(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListVerified(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetPublic returns a verified product. An unverified product is reported as
// not found so its existence leaks nothing.
func (srv *catalogService) GetPublic(ctx context.Context, productID string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}
	if !product.IsVerified {
		return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
	}

	return product, nil
}

// GetArtisanPage returns an artisan's public storefront.
func (srv *catalogService) GetArtisanPage(ctx context.Context, artisanUID string) (*usecase.ArtisanPage, error) {
	user, err := srv.userRepo.FindByUID(ctx, artisanUID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "artisan not found")
		}

		return nil, errors.Wrap(err, "failed to find artisan")
	}
	if user.Role != entity.RoleArtisan {
		return nil, errors.Wrap(domainerrors.ErrUserNotFound, "artisan not found")
	}

	products, err := srv.productRepo.ListVerifiedByArtisan(ctx, artisanUID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list artisan products")
	}

	return &usecase.ArtisanPage{
		UID:         user.UID,
		DisplayName: user.DisplayName,
		PhotoURL:    user.PhotoURL,
		Story:       user.ArtisanStory,
		IsVerified:  user.IsVerifiedArtisan,
		Products:    products,
	}, nil
}

// ListPendingProducts returns the admin review queue.
func (srv *catalogService) ListPendingProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListPending(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending products")
	}

	return products, nil
}

// ApproveProduct marks a product verified. There is no un-approve.
func (srv *catalogService) ApproveProduct(ctx context.Context, productID string) error {
	if err := srv.productRepo.SetVerified(ctx, productID, true); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return errors.Wrap(err, "failed to approve product")
	}

	srv.logger.Info("Product approved", slog.String("product_id", productID))

	return nil
}

// ownedProduct loads a product and checks ownership.
func (srv *catalogService) ownedProduct(ctx context.Context, artisanUID, productID string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}
	if !product.OwnedBy(artisanUID) {
		return nil, errors.Wrap(domainerrors.ErrProductOwnership, "product belongs to another artisan")
	}

	return product, nil
}
