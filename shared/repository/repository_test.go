package repository_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/flatfile"
	flatfileMocks "frontdesk/infras/flatfile/mocks"
	"frontdesk/infras/otel/mocks"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type guest struct {
	ID    string `csv:"GuestID"`
	Name  string `csv:"Name"`
	Room  string `csv:"RoomID"`
	Notes int
}

func newRepo(t *testing.T) (repository.Repository[guest], flatfile.Store) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Dir = t.TempDir()
	cfg.Storage.LockFile = "frontdesk.lock"

	store := flatfile.New(cfg, mocks.NewOtel())

	return repository.NewRepository[guest]("guest", "guests.csv", "GuestID", store, mocks.NewOtel()), store
}

func byName(name string) gDto.FilterGroup {
	return gDto.FilterGroup{Filters: []any{gDto.Filter{Field: "Name", Value: name, Operator: gDto.FilterOperatorEqFold}}}
}

func seed(t *testing.T, repo repository.Repository[guest]) {
	t.Helper()

	require.NoError(t, repo.Save(context.Background(), []guest{
		{ID: "G1", Name: "Alice", Room: "101"},
		{ID: "G2", Name: "Bob", Room: "102"},
		{ID: "G3", Name: "Carol", Room: "101"},
	}))
}

func TestColumns(t *testing.T) {
	repo, _ := newRepo(t)

	assert.Equal(t, []string{"GuestID", "Name", "RoomID"}, repo.Columns)
}

func TestInsertAndGet(t *testing.T) {
	repo, store := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, guest{ID: "G1", Name: "Alice", Room: "101"}))
	require.NoError(t, repo.Insert(ctx, guest{ID: "G2", Name: "Bob"}))

	got, err := repo.Get(ctx, byName("bob"))
	require.NoError(t, err)
	assert.Equal(t, guest{ID: "G2", Name: "Bob"}, got)

	missing, err := repo.Get(ctx, byName("Dave"))
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	data, err := os.ReadFile(store.Path("guests.csv"))
	require.NoError(t, err)
	assert.Equal(t, "GuestID,Name,RoomID\nG1,Alice,101\nG2,Bob,\n", string(data))
}

func TestGetAll_Pagination(t *testing.T) {
	repo, _ := newRepo(t)
	seed(t, repo)

	ctx := context.Background()

	all, err := repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	page, err := repo.GetAll(ctx, gDto.QueryParams{Page: 2, Limit: 2}, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, []guest{{ID: "G3", Name: "Carol", Room: "101"}}, page)

	beyond, err := repo.GetAll(ctx, gDto.QueryParams{Page: 5, Limit: 2}, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Empty(t, beyond)

	count, err := repo.Count(ctx, gDto.FilterGroup{Filters: []any{gDto.Filter{Field: "RoomID", Value: "101", Operator: gDto.FilterOperatorEq}}})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestGetAll_UnreadableTableListsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := flatfileMocks.NewMockStore(ctrl)

	store.EXPECT().Load(gomock.Any(), "guests.csv", gomock.Any()).Return(nil, failure.StorageUnavailable(errors.New("permission denied")))

	repo := repository.NewRepository[guest]("guest", "guests.csv", "GuestID", store, mocks.NewOtel())

	models, err := repo.GetAll(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Empty(t, models)
}

func TestCountAndExist_UnreadableTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := flatfileMocks.NewMockStore(ctrl)

	store.EXPECT().Load(gomock.Any(), "guests.csv", gomock.Any()).
		Return(nil, failure.StorageUnavailable(errors.New("permission denied"))).Times(2)

	repo := repository.NewRepository[guest]("guest", "guests.csv", "GuestID", store, mocks.NewOtel())

	count, err := repo.Count(context.Background(), gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = repo.Exist(context.Background(), gDto.FilterGroup{})
	assert.True(t, errors.Is(err, failure.ErrStorageUnavailable))
}

func TestUpdate(t *testing.T) {
	repo, _ := newRepo(t)
	seed(t, repo)

	ctx := context.Background()

	updated, err := repo.Update(ctx, map[string]string{"RoomID": "201", "Unknown": "x"}, byName("alice"))
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	got, err := repo.Get(ctx, byName("Alice"))
	require.NoError(t, err)
	assert.Equal(t, "201", got.Room)

	updated, err = repo.Update(ctx, map[string]string{"RoomID": "201"}, byName("nobody"))
	require.NoError(t, err)
	assert.Zero(t, updated)
}

func TestUpdate_SaveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := flatfileMocks.NewMockStore(ctrl)

	store.EXPECT().Load(gomock.Any(), "guests.csv", gomock.Any()).Return([][]string{{"G1", "Alice", "101"}}, nil)
	store.EXPECT().Save(gomock.Any(), "guests.csv", gomock.Any(), [][]string{{"G1", "Alice", "202"}}).
		Return(failure.StorageUnavailable(errors.New("disk full")))

	repo := repository.NewRepository[guest]("guest", "guests.csv", "GuestID", store, mocks.NewOtel())

	_, err := repo.Update(context.Background(), map[string]string{"RoomID": "202"}, byName("Alice"))
	assert.True(t, errors.Is(err, failure.ErrStorageUnavailable))
}

func TestDelete(t *testing.T) {
	repo, _ := newRepo(t)
	seed(t, repo)

	ctx := context.Background()

	removed, err := repo.Delete(ctx, gDto.FilterGroup{Filters: []any{gDto.Filter{Field: "RoomID", Value: "101", Operator: gDto.FilterOperatorEq}}})
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	rest, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []guest{{ID: "G2", Name: "Bob", Room: "102"}}, rest)

	_, err = repo.Delete(ctx, gDto.FilterGroup{})
	assert.Error(t, err)
}
