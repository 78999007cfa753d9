package roles

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/rbac"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/store"
)

type stubRepo struct {
	roles map[int64]rbac.Role

	updated    map[int64]RoleInput
	deleted    []int64
	permission map[int64][]int64
}

func newStubRepo(roles ...rbac.Role) *stubRepo {
	r := &stubRepo{
		roles:      make(map[int64]rbac.Role),
		updated:    make(map[int64]RoleInput),
		permission: make(map[int64][]int64),
	}
	for _, role := range roles {
		r.roles[role.ID] = role
	}
	return r
}

func (r *stubRepo) List(context.Context) ([]rbac.Role, error) {
	out := make([]rbac.Role, 0, len(r.roles))
	for _, role := range r.roles {
		out = append(out, role)
	}
	return out, nil
}

func (r *stubRepo) Get(_ context.Context, id int64) (rbac.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return rbac.Role{}, &restc.APIError{Status: 404, Message: "role not found"}
	}
	return role, nil
}

func (r *stubRepo) Create(_ context.Context, input RoleInput) (rbac.Role, error) {
	role := rbac.Role{ID: int64(len(r.roles) + 1), Name: input.Name, Description: input.Description}
	r.roles[role.ID] = role
	return role, nil
}

func (r *stubRepo) Update(_ context.Context, id int64, input RoleInput) (rbac.Role, error) {
	r.updated[id] = input
	role := r.roles[id]
	role.Name = input.Name
	return role, nil
}

func (r *stubRepo) Delete(_ context.Context, id int64) error {
	r.deleted = append(r.deleted, id)
	delete(r.roles, id)
	return nil
}

func (r *stubRepo) SetPermissions(_ context.Context, id int64, input PermissionSetInput) error {
	r.permission[id] = input.PermissionIDs
	return nil
}

func TestSystemRoleCannotBeEditedOrDeleted(t *testing.T) {
	repo := newStubRepo(
		rbac.Role{ID: 1, Name: "Administrator", IsSystem: true},
		rbac.Role{ID: 2, Name: "Mechanic"},
	)
	svc := NewService(repo, store.New(time.Minute))
	ctx := context.Background()

	_, err := svc.Update(ctx, 1, RoleInput{Name: "Root"})
	require.ErrorIs(t, err, restc.ErrValidation)
	require.Empty(t, repo.updated)

	err = svc.Delete(ctx, 1)
	require.ErrorIs(t, err, restc.ErrValidation)
	require.Empty(t, repo.deleted)

	_, err = svc.Update(ctx, 2, RoleInput{Name: "Senior Mechanic"})
	require.NoError(t, err)
	require.Equal(t, "Senior Mechanic", repo.updated[2].Name)
}

func TestSystemRolePermissionsStayEditable(t *testing.T) {
	repo := newStubRepo(rbac.Role{ID: 1, Name: "Administrator", IsSystem: true})
	svc := NewService(repo, store.New(time.Minute))

	err := svc.SetPermissions(context.Background(), 1, PermissionSetInput{PermissionIDs: []int64{4, 5}})
	require.NoError(t, err)
	require.Equal(t, []int64{4, 5}, repo.permission[1])
}

func TestSetPermissionsRejectsBadIDs(t *testing.T) {
	repo := newStubRepo(rbac.Role{ID: 1, Name: "Mechanic"})
	svc := NewService(repo, store.New(time.Minute))

	err := svc.SetPermissions(context.Background(), 1, PermissionSetInput{PermissionIDs: []int64{3, 0}})
	require.ErrorIs(t, err, restc.ErrValidation)
	require.Empty(t, repo.permission)
}

func TestRoleMutationsInvalidateCachedListing(t *testing.T) {
	repo := newStubRepo(rbac.Role{ID: 2, Name: "Mechanic"})
	svc := NewService(repo, store.New(time.Minute))
	ctx := context.Background()

	first, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	_, err = svc.Create(ctx, RoleInput{Name: "Inspector"})
	require.NoError(t, err)

	second, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, second, 2, "create must refresh the listing")
}
