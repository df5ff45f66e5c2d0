package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/flatfile"
	"frontdesk/infras/otel/mocks"
	s3Mocks "frontdesk/infras/s3/mocks"
	"frontdesk/internal/domains/backup/service"
	"frontdesk/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Dir = t.TempDir()
	cfg.Storage.RoomFile = "rooms.csv"
	cfg.Storage.BookingFile = "bookings.csv"
	cfg.Storage.CustomerFile = "customers.csv"
	cfg.Storage.StaffFile = "staff.csv"
	cfg.Storage.BillFile = "bills.csv"
	cfg.Storage.SequenceFile = "sequences.csv"
	cfg.Storage.LockFile = "frontdesk.lock"
	cfg.Storage.LockTimeoutSeconds = 1
	cfg.External.S3.BucketName = "desk-backups"

	return cfg
}

func TestBackupService_Run(t *testing.T) {
	cfg := newConfig(t)

	rooms := "RoomID,RoomType,Price,Status\n101,Single,1000,Available\n"
	bookings := "BookingID,CustomerName,RoomID,CheckIn,CheckOut\n"

	require.NoError(t, os.WriteFile(filepath.Join(cfg.Storage.Dir, "rooms.csv"), []byte(rooms), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Storage.Dir, "bookings.csv"), []byte(bookings), 0o600))

	ctrl := gomock.NewController(t)
	bucket := s3Mocks.NewMockS3(ctrl)

	bucket.EXPECT().UploadFileBytes(gomock.Any(), "desk-backups", gomock.Any(), "rooms.csv", constant.ContentTypeCSV, []byte(rooms)).
		Return("https://cdn.example.com/rooms.csv", nil)
	bucket.EXPECT().UploadFileBytes(gomock.Any(), "desk-backups", gomock.Any(), "bookings.csv", constant.ContentTypeCSV, []byte(bookings)).
		Return("https://cdn.example.com/bookings.csv", nil)

	ot := mocks.NewOtel()
	svc := service.New(flatfile.New(cfg, ot), bucket, cfg, ot)

	res, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(res.Directory, "backups/"))
	require.Len(t, res.Files, 2)
	assert.Equal(t, "rooms.csv", res.Files[0].Table)
	assert.Equal(t, len(rooms), res.Files[0].Size)
	assert.Equal(t, []string{"customers.csv", "staff.csv", "bills.csv", "sequences.csv"}, res.Skipped)
}

func TestBackupService_UploadFailure(t *testing.T) {
	cfg := newConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Storage.Dir, "rooms.csv"), []byte("RoomID,RoomType,Price,Status\n"), 0o600))

	ctrl := gomock.NewController(t)
	bucket := s3Mocks.NewMockS3(ctrl)

	bucket.EXPECT().UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("access denied"))

	ot := mocks.NewOtel()
	svc := service.New(flatfile.New(cfg, ot), bucket, cfg, ot)

	_, err := svc.Run(context.Background())
	assert.ErrorContains(t, err, "access denied")
}

func TestBackupService_LockHeld(t *testing.T) {
	cfg := newConfig(t)

	ot := mocks.NewOtel()
	store := flatfile.New(cfg, ot)

	unlock, err := store.Lock(context.Background())
	require.NoError(t, err)
	defer unlock()

	svc := service.New(store, s3Mocks.NewMockS3(gomock.NewController(t)), cfg, ot)

	_, err = svc.Run(context.Background())
	assert.Error(t, err)
}
