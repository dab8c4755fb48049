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

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Get returns the owner's cart.
func (srv *cartService) Get(ctx context.Context, ownerUID string) (*entity.Cart, error) {
	cart, err := srv.cartRepo.Get(ctx, ownerUID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cart")
	}

	return cart, nil
}

// AddItem snapshots the product into the cart. Price, name and cover image
// are copied at this moment; later listing edits do not chase the cart.
func (srv *cartService) AddItem(ctx context.Context, ownerUID, productID string) (*entity.Cart, error) {
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

	return srv.mutate(ctx, ownerUID, func(cart *entity.Cart) {
		cart.Add(entity.CartItem{
			ProductID:  product.ID,
			ArtisanID:  product.ArtisanID,
			Name:       product.Name,
			PricePaise: product.PricePaise,
			ImageURL:   product.CoverImageURL(),
		})
	})
}

// SetQuantity sets a line's quantity; zero or less removes the line.
func (srv *cartService) SetQuantity(ctx context.Context, ownerUID, productID string, quantity int) (*entity.Cart, error) {
	return srv.mutate(ctx, ownerUID, func(cart *entity.Cart) {
		cart.SetQuantity(productID, quantity)
	})
}

// RemoveItem removes a line from the cart.
func (srv *cartService) RemoveItem(ctx context.Context, ownerUID, productID string) (*entity.Cart, error) {
	return srv.mutate(ctx, ownerUID, func(cart *entity.Cart) {
		cart.Remove(productID)
	})
}

// Clear empties the cart.
func (srv *cartService) Clear(ctx context.Context, ownerUID string) error {
	if err := srv.cartRepo.Clear(ctx, ownerUID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// mutate applies a reducer to the stored cart and saves the result. Last
// write wins on concurrent mutations.
func (srv *cartService) mutate(ctx context.Context, ownerUID string, apply func(*entity.Cart)) (*entity.Cart, error) {
	cart, err := srv.cartRepo.Get(ctx, ownerUID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cart")
	}

	apply(cart)

	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	srv.logger.Debug("Cart updated",
		slog.String("owner_uid", ownerUID),
		slog.Int("item_count", cart.Count()),
	)

	return cart, nil
}
