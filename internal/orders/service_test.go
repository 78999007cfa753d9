package orders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/store"
)

type stubRepo struct {
	listCalls int
	statuses  []string
	orders    []Order

	created *OrderInput
	updated map[int64]string
}

func newStubRepo(orders ...Order) *stubRepo {
	return &stubRepo{orders: orders, updated: make(map[int64]string)}
}

func (r *stubRepo) List(_ context.Context, status string) ([]Order, error) {
	r.listCalls++
	r.statuses = append(r.statuses, status)
	return r.orders, nil
}

func (r *stubRepo) Get(_ context.Context, id int64) (Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return Order{}, &restc.APIError{Status: 404, Message: "order not found"}
}

func (r *stubRepo) Create(_ context.Context, input OrderInput) (Order, error) {
	r.created = &input
	order := Order{ID: int64(len(r.orders) + 1), Status: StatusPending}
	r.orders = append(r.orders, order)
	return order, nil
}

func (r *stubRepo) UpdateStatus(_ context.Context, id int64, status string) (Order, error) {
	r.updated[id] = status
	return Order{ID: id, Status: status}, nil
}

func (r *stubRepo) Delete(context.Context, int64) error { return nil }

func TestCreateRequiresAtLeastOneItem(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, store.New(time.Minute))

	_, err := svc.Create(context.Background(), OrderInput{})
	require.ErrorIs(t, err, restc.ErrValidation)

	_, err = svc.Create(context.Background(), OrderInput{Items: []OrderItemInput{
		{PartNumber: "PN-1", Quantity: 0, Unit: "ea"},
	}})
	require.ErrorIs(t, err, restc.ErrValidation)
	require.Nil(t, repo.created, "backend must not be called")

	_, err = svc.Create(context.Background(), OrderInput{Items: []OrderItemInput{
		{PartNumber: "PN-1", Quantity: 4, Unit: "ea"},
	}})
	require.NoError(t, err)
	require.NotNil(t, repo.created)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	repo := newStubRepo(Order{ID: 1, Status: StatusPending})
	svc := NewService(repo, store.New(time.Minute))

	_, err := svc.UpdateStatus(context.Background(), 1, "shipped")
	require.ErrorIs(t, err, restc.ErrValidation)
	require.Empty(t, repo.updated)

	order, err := svc.UpdateStatus(context.Background(), 1, StatusApproved)
	require.NoError(t, err)
	require.Equal(t, StatusApproved, order.Status)
}

func TestListFiltersByStatusAndCachesPerFilter(t *testing.T) {
	repo := newStubRepo(Order{ID: 1, Status: StatusPending})
	svc := NewService(repo, store.New(time.Minute))
	ctx := context.Background()

	_, err := svc.List(ctx, "")
	require.NoError(t, err)
	_, err = svc.List(ctx, StatusPending)
	require.NoError(t, err)
	require.Equal(t, []string{"", StatusPending}, repo.statuses)

	_, err = svc.List(ctx, StatusPending)
	require.NoError(t, err)
	require.Equal(t, 2, repo.listCalls, "repeat filter is served from cache")

	_, err = svc.List(ctx, "draft")
	require.ErrorIs(t, err, restc.ErrValidation)
}

func TestMutationsInvalidateListings(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, store.New(time.Minute))
	ctx := context.Background()

	first, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Empty(t, first)

	_, err = svc.Create(ctx, OrderInput{Items: []OrderItemInput{
		{PartNumber: "PN-1", Quantity: 1, Unit: "ea"},
	}})
	require.NoError(t, err)

	second, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, second, 1, "create must refresh the listing")
}
