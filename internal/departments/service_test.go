package departments

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
	depts     []Department

	created *DepartmentInput
}

func (r *stubRepo) List(context.Context) ([]Department, error) {
	r.listCalls++
	return r.depts, nil
}

func (r *stubRepo) Get(_ context.Context, id int64) (Department, error) {
	for _, d := range r.depts {
		if d.ID == id {
			return d, nil
		}
	}
	return Department{}, &restc.APIError{Status: 404, Message: "department not found"}
}

func (r *stubRepo) Create(_ context.Context, input DepartmentInput) (Department, error) {
	r.created = &input
	dept := Department{ID: int64(len(r.depts) + 1), Name: input.Name, Code: input.Code}
	r.depts = append(r.depts, dept)
	return dept, nil
}

func (r *stubRepo) Update(_ context.Context, id int64, input DepartmentInput) (Department, error) {
	return Department{ID: id, Name: input.Name, Code: input.Code}, nil
}

func (r *stubRepo) Delete(context.Context, int64) error { return nil }

func TestCreateRejectsMissingFields(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, store.New(time.Minute))

	_, err := svc.Create(context.Background(), DepartmentInput{Name: "Avionics"})
	require.ErrorIs(t, err, restc.ErrValidation)

	_, err = svc.Create(context.Background(), DepartmentInput{Code: "AVI"})
	require.ErrorIs(t, err, restc.ErrValidation)
	require.Nil(t, repo.created, "backend must not be called")
}

func TestMutationsInvalidateListing(t *testing.T) {
	repo := &stubRepo{depts: []Department{{ID: 1, Name: "Maintenance", Code: "MX"}}}
	svc := NewService(repo, store.New(time.Minute))
	ctx := context.Background()

	first, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	_, err = svc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, repo.listCalls, "repeat read is served from cache")

	_, err = svc.Create(ctx, DepartmentInput{Name: "Avionics", Code: "AVI"})
	require.NoError(t, err)

	second, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, second, 2)
	require.Equal(t, 2, repo.listCalls, "create must refresh the listing")
}

func TestGetValidatesID(t *testing.T) {
	svc := NewService(&stubRepo{}, store.New(time.Minute))

	_, err := svc.Get(context.Background(), 0)
	require.ErrorIs(t, err, restc.ErrValidation)

	_, err = svc.Get(context.Background(), 9)
	require.ErrorIs(t, err, restc.ErrNotFound)
}
