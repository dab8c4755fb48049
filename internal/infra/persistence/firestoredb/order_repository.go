package firestoredb

import (
	"context"

	"haven/internal/domain/entity"
	domainerrors "haven/internal/domain/errors"
	"haven/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// orderRepository implements repository.OrderRepository on the orders
// collection. Orders are written whole at checkout; only the status field is
// ever updated afterwards.
type orderRepository struct {
	client *firestore.Client
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &orderRepository{client: client}
}

func (repo *orderRepository) col() *firestore.CollectionRef {
	return repo.client.Collection(ordersCollection)
}

// FindByID retrieves a single order by document ID.
func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	snap, err := repo.col().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return decodeOrder(snap)
}

// Create persists a new order in a single write and returns its ID.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) (string, error) {
	ref, _, err := repo.col().Add(ctx, order)
	if err != nil {
		return "", domainerrors.NewStoreExecuteError(err, "failed to create order")
	}
	order.ID = ref.ID

	return ref.ID, nil
}

// ListByBuyer returns the buyer's orders, newest first.
func (repo *orderRepository) ListByBuyer(ctx context.Context, buyerUID string) ([]*entity.Order, error) {
	return repo.list(ctx, repo.col().
		Where("buyerId", "==", buyerUID).
		OrderBy("createdAt", firestore.Desc))
}

// ListByArtisan returns orders containing the artisan's items, oldest first.
func (repo *orderRepository) ListByArtisan(ctx context.Context, artisanUID string) ([]*entity.Order, error) {
	return repo.list(ctx, repo.col().
		Where("artisanIds", "array-contains", artisanUID).
		OrderBy("createdAt", firestore.Asc))
}

// ListByStatuses returns orders in any of the given statuses, oldest first.
func (repo *orderRepository) ListByStatuses(ctx context.Context, statuses []entity.OrderStatus) ([]*entity.Order, error) {
	values := make([]string, 0, len(statuses))
	for _, status := range statuses {
		values = append(values, status.String())
	}

	return repo.list(ctx, repo.col().
		Where("status", "in", values).
		OrderBy("createdAt", firestore.Asc))
}

// UpdateStatus sets the status field only.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	_, err := repo.col().Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: status.String()},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrOrderNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to update order status")
	}

	return nil
}

func (repo *orderRepository) list(ctx context.Context, query firestore.Query) ([]*entity.Order, error) {
	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(snaps))
	for _, snap := range snaps {
		order, err := decodeOrder(snap)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func decodeOrder(snap *firestore.DocumentSnapshot) (*entity.Order, error) {
	var order entity.Order
	if err := snap.DataTo(&order); err != nil {
		return nil, errors.Wrap(err, "failed to decode order document")
	}
	order.ID = snap.Ref.ID

	return &order, nil
}
