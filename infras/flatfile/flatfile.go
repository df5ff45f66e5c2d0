package flatfile

//go:generate go run go.uber.org/mock/mockgen -source=./flatfile.go -destination=./mocks/flatfile_mock.go -package=mocks

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog/log"
)

const lockRetryDelay = 50 * time.Millisecond

var ErrLockTimeout = errors.New("timed out waiting for the table lock")

// Locker serialises writers. The lock is not reentrant: code running under it
// must not take it again.
type Locker interface {
	Lock(ctx context.Context) (unlock func(), err error)
}

// Store reads and rewrites whole tables. Rows are ordered by the columns
// passed to Load and Save, not by the file header.
type Store interface {
	Locker
	Load(ctx context.Context, name string, columns []string) (rows [][]string, err error)
	Save(ctx context.Context, name string, columns []string, rows [][]string) (err error)
	Snapshot(ctx context.Context, name string) (data []byte, err error)
	Path(name string) string
}

type storeImpl struct {
	dir         string
	lockTimeout time.Duration
	guard       chan struct{}
	fileLock    *flock.Flock
	otel        otel.Otel
}

func New(config *config.Config, otel otel.Otel) Store {
	dir := config.Storage.Dir
	timeout := time.Duration(config.Storage.LockTimeoutSeconds) * time.Second

	if timeout <= 0 {
		timeout = time.Second
	}

	return &storeImpl{
		dir:         dir,
		lockTimeout: timeout,
		guard:       make(chan struct{}, 1),
		fileLock:    flock.New(filepath.Join(dir, config.Storage.LockFile)),
		otel:        otel,
	}
}

func (s *storeImpl) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Lock takes the in-process guard, then the advisory lock file shared with
// other processes on the same data directory.
func (s *storeImpl) Lock(ctx context.Context) (unlock func(), err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".Lock")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ctx, cancel := context.WithTimeout(ctx, s.lockTimeout)
	defer cancel()

	select {
	case s.guard <- struct{}{}:
	case <-ctx.Done():
		log.Warn().Str("dir", s.dir).Msg("table lock is held by another operation")

		return nil, failure.StorageUnavailable(ErrLockTimeout)
	}

	if err = os.MkdirAll(s.dir, 0o755); err != nil {
		<-s.guard

		return nil, failure.StorageUnavailable(fmt.Errorf("failed to create data directory: %w", err))
	}

	locked, err := s.fileLock.TryLockContext(ctx, lockRetryDelay)
	if err != nil || !locked {
		<-s.guard

		if err == nil || errors.Is(err, context.DeadlineExceeded) {
			err = ErrLockTimeout
		}

		log.Warn().Err(err).Str("lock", s.fileLock.Path()).Msg("table lock is held by another process")

		return nil, failure.StorageUnavailable(err)
	}

	return func() {
		if unlockErr := s.fileLock.Unlock(); unlockErr != nil {
			log.Error().Err(unlockErr).Str("lock", s.fileLock.Path()).Msg("failed to release table lock")
		}

		<-s.guard
	}, nil
}

// Load reads a table. An absent or empty file reads as a table with no rows and
// is left untouched; Save writes its header once a locked writer stores it.
// Columns missing from the file read as empty text and unknown ones are dropped.
func (s *storeImpl) Load(ctx context.Context, name string, columns []string) (rows [][]string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".Load")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelTableAttributeKey, name)

	file, err := os.Open(s.Path(name))
	if errors.Is(err, os.ErrNotExist) {
		return [][]string{}, nil
	}

	if err != nil {
		log.Error().Err(err).Str("table", name).Msg("failed to open table")

		return nil, failure.StorageUnavailable(fmt.Errorf("failed to open %s: %w", name, err))
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		log.Error().Err(err).Str("table", name).Msg("failed to parse table")

		return nil, failure.StorageUnavailable(fmt.Errorf("failed to parse %s: %w", name, err))
	}

	if len(records) == 0 {
		return [][]string{}, nil
	}

	position := make(map[string]int, len(records[0]))
	for idx, column := range records[0] {
		position[strings.TrimPrefix(strings.TrimSpace(column), "\ufeff")] = idx
	}

	rows = make([][]string, 0, len(records)-1)

	for _, record := range records[1:] {
		row := make([]string, len(columns))

		for idx, column := range columns {
			if at, ok := position[column]; ok && at < len(record) {
				row[idx] = record[at]
			}
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// Save rewrites the whole table through a temp file renamed over the target.
func (s *storeImpl) Save(ctx context.Context, name string, columns []string, rows [][]string) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		constant.OtelTableAttributeKey: name,
		"rows":                         len(rows),
	})

	if err = s.write(name, columns, rows); err != nil {
		log.Error().Err(err).Str("table", name).Msg("failed to save table")

		return failure.StorageUnavailable(err)
	}

	return nil
}

func (s *storeImpl) write(name string, columns []string, rows [][]string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	temp, err := os.CreateTemp(s.dir, "."+name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}

	tempName := temp.Name()
	committed := false

	defer func() {
		if !committed {
			temp.Close()
			os.Remove(tempName)
		}
	}()

	writer := csv.NewWriter(temp)

	if err = writer.Write(columns); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", name, err)
	}

	if err = writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows of %s: %w", name, err)
	}

	if err = temp.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", name, err)
	}

	if err = temp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}

	if err = os.Rename(tempName, s.Path(name)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}

	committed = true

	return nil
}

func (s *storeImpl) Snapshot(ctx context.Context, name string) (data []byte, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".Snapshot")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelTableAttributeKey, name)

	data, err = os.ReadFile(s.Path(name))
	if err != nil {
		return nil, failure.StorageUnavailable(fmt.Errorf("failed to read %s: %w", name, err))
	}

	return data, nil
}
