package flatfile_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/flatfile"
	"frontdesk/infras/otel/mocks"
	"frontdesk/shared/failure"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var roomColumns = []string{"RoomID", "RoomType", "Price", "Status"}

func newStore(t *testing.T) (flatfile.Store, *config.Config) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Dir = t.TempDir()
	cfg.Storage.LockFile = "frontdesk.lock"
	cfg.Storage.LockTimeoutSeconds = 1

	return flatfile.New(cfg, mocks.NewOtel()), cfg
}

func TestLoad_AbsentFileReadsEmpty(t *testing.T) {
	store, _ := newStore(t)

	rows, err := store.Load(context.Background(), "rooms.csv", roomColumns)
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = os.Stat(store.Path("rooms.csv"))
	assert.True(t, os.IsNotExist(err), "reading must not create the table")
}

func TestLoad_EmptyFileReadsEmpty(t *testing.T) {
	store, _ := newStore(t)
	require.NoError(t, os.WriteFile(store.Path("rooms.csv"), nil, 0o644))

	rows, err := store.Load(context.Background(), "rooms.csv", roomColumns)
	require.NoError(t, err)
	assert.Empty(t, rows)

	data, err := os.ReadFile(store.Path("rooms.csv"))
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestLoad_ReaderDoesNotClobberWriter(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	unlock, err := store.Lock(ctx)
	require.NoError(t, err)

	rows, err := store.Load(ctx, "rooms.csv", roomColumns)
	require.NoError(t, err)
	assert.Empty(t, rows)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for range 50 {
			_, _ = store.Load(ctx, "rooms.csv", roomColumns)
		}
	}()

	require.NoError(t, store.Save(ctx, "rooms.csv", roomColumns, [][]string{{"101", "Single", "1000", "Available"}}))
	unlock()
	<-done

	data, err := os.ReadFile(store.Path("rooms.csv"))
	require.NoError(t, err)
	assert.Equal(t, "RoomID,RoomType,Price,Status\n101,Single,1000,Available\n", string(data))
}

func TestSave_EmptyTableWritesHeader(t *testing.T) {
	store, _ := newStore(t)

	require.NoError(t, store.Save(context.Background(), "rooms.csv", roomColumns, nil))

	data, err := os.ReadFile(store.Path("rooms.csv"))
	require.NoError(t, err)
	assert.Equal(t, "RoomID,RoomType,Price,Status\n", string(data))
}

func TestLoad_ColumnsFollowRequestedOrder(t *testing.T) {
	store, _ := newStore(t)

	content := "Status,RoomID,Extra,Price\nBooked,101,x,1500\nAvailable,102\n"
	require.NoError(t, os.WriteFile(store.Path("rooms.csv"), []byte(content), 0o644))

	rows, err := store.Load(context.Background(), "rooms.csv", roomColumns)
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"101", "", "1500", "Booked"},
		{"102", "", "", "Available"},
	}, rows)
}

func TestLoad_CorruptFile(t *testing.T) {
	store, _ := newStore(t)

	require.NoError(t, os.WriteFile(store.Path("rooms.csv"), []byte("RoomID,RoomType\n\"101,Single\n"), 0o644))

	_, err := store.Load(context.Background(), "rooms.csv", roomColumns)
	require.Error(t, err)
	assert.True(t, errors.Is(err, failure.ErrStorageUnavailable))
}

func TestSave_RoundTrip(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	rows := [][]string{
		{"101", "Single", "1500", "Available"},
		{"102", "Double, sea view", "2500.50", "Booked"},
	}

	require.NoError(t, store.Save(ctx, "rooms.csv", roomColumns, rows))

	loaded, err := store.Load(ctx, "rooms.csv", roomColumns)
	require.NoError(t, err)
	assert.Equal(t, rows, loaded)

	before, err := store.Snapshot(ctx, "rooms.csv")
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, "rooms.csv", roomColumns, loaded))

	after, err := store.Snapshot(ctx, "rooms.csv")
	require.NoError(t, err)
	assert.Equal(t, before, after)

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(store.Path("rooms.csv")), ".*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestSave_UnwritableDirectory(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Dir = filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(cfg.Storage.Dir, []byte("not a directory"), 0o644))

	store := flatfile.New(cfg, mocks.NewOtel())

	err := store.Save(context.Background(), "rooms.csv", roomColumns, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, failure.ErrStorageUnavailable))
}

func TestSnapshot_MissingTable(t *testing.T) {
	store, _ := newStore(t)

	_, err := store.Snapshot(context.Background(), "bills.csv")
	assert.True(t, errors.Is(err, failure.ErrStorageUnavailable))
}

func TestLock_SingleWriter(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	unlock, err := store.Lock(ctx)
	require.NoError(t, err)

	_, err = store.Lock(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, failure.ErrStorageUnavailable))

	unlock()

	unlock, err = store.Lock(ctx)
	require.NoError(t, err)
	unlock()
}

func TestLock_HeldByAnotherProcess(t *testing.T) {
	store, cfg := newStore(t)

	other := flock.New(filepath.Join(cfg.Storage.Dir, cfg.Storage.LockFile))
	locked, err := other.TryLock()
	require.NoError(t, err)
	require.True(t, locked)

	_, err = store.Lock(context.Background())
	assert.True(t, errors.Is(err, failure.ErrStorageUnavailable))

	require.NoError(t, other.Unlock())

	unlock, err := store.Lock(context.Background())
	require.NoError(t, err)
	unlock()
}
