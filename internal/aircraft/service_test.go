package aircraft

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/shared"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/store"
)

type stubRepo struct {
	listCalls int
	types     []Type

	created *TypeInput
}

func (r *stubRepo) List(context.Context) ([]Type, error) {
	r.listCalls++
	return r.types, nil
}

func (r *stubRepo) Create(_ context.Context, input TypeInput) (Type, error) {
	r.created = &input
	item := Type{ID: int64(len(r.types) + 1), Manufacturer: input.Manufacturer, Model: input.Model}
	r.types = append(r.types, item)
	return item, nil
}

func (r *stubRepo) Update(_ context.Context, id int64, input TypeInput) (Type, error) {
	return Type{ID: id, Manufacturer: input.Manufacturer, Model: input.Model}, nil
}

func (r *stubRepo) Delete(context.Context, int64) error { return nil }

func TestCreateRequiresManufacturerAndModel(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, store.New(time.Minute))

	_, err := svc.Create(context.Background(), TypeInput{Manufacturer: "Boeing"})
	require.ErrorIs(t, err, restc.ErrValidation)

	_, err = svc.Create(context.Background(), TypeInput{Model: "737-800"})
	require.ErrorIs(t, err, restc.ErrValidation)
	require.Nil(t, repo.created, "backend must not be called")
}

func TestMutationsInvalidateKitsAsWell(t *testing.T) {
	repo := &stubRepo{}
	cache := store.New(time.Minute)
	svc := NewService(repo, cache)
	ctx := context.Background()

	kitReads := 0
	_, err := store.Query(ctx, cache, "kits:list", []string{shared.TagKits}, func(context.Context) (int, error) {
		kitReads++
		return 1, nil
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, TypeInput{Manufacturer: "Boeing", Model: "737-800"})
	require.NoError(t, err)

	_, err = store.Query(ctx, cache, "kits:list", []string{shared.TagKits}, func(context.Context) (int, error) {
		kitReads++
		return 1, nil
	})
	require.NoError(t, err)
	require.Equal(t, 2, kitReads, "aircraft type changes must drop cached kits")
}

func TestListCachedUntilMutation(t *testing.T) {
	repo := &stubRepo{types: []Type{{ID: 1, Manufacturer: "Airbus", Model: "A320"}}}
	svc := NewService(repo, store.New(time.Minute))
	ctx := context.Background()

	_, err := svc.List(ctx)
	require.NoError(t, err)
	_, err = svc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, repo.listCalls)

	_, err = svc.Update(ctx, 1, TypeInput{Manufacturer: "Airbus", Model: "A320", Variant: "neo"})
	require.NoError(t, err)

	_, err = svc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, repo.listCalls, "update must refresh the listing")
}
