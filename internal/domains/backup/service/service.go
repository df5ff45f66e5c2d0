package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/flatfile"
	"frontdesk/infras/otel"
	"frontdesk/infras/s3"
	"frontdesk/internal/domains/backup/model/dto"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
	"os"
	"path"

	"github.com/rs/zerolog/log"
)

const (
	backupRoot      = "backups"
	backupDirLayout = "20060102T150405"
)

type Backup interface {
	Run(ctx context.Context) (dto.BackupResponse, error)
}

type serviceImpl struct {
	store  flatfile.Store
	bucket s3.S3
	cfg    *config.Config
	otel   otel.Otel
}

func New(store flatfile.Store, bucket s3.S3, cfg *config.Config, otel otel.Otel) Backup {
	return &serviceImpl{
		store:  store,
		bucket: bucket,
		cfg:    cfg,
		otel:   otel,
	}
}

// Run copies every table to the bucket under backups/<timestamp>/. The lock is
// held for the whole pass so the copies agree with each other. Tables that were
// never created are skipped.
func (s *serviceImpl) Run(ctx context.Context) (res dto.BackupResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Backup")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	unlock, err := s.store.Lock(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to lock tables: %w", err)
	}
	defer unlock()

	res.Directory = path.Join(backupRoot, timezone.Now().Format(backupDirLayout))

	for _, table := range s.tables() {
		if _, statErr := os.Stat(s.store.Path(table)); errors.Is(statErr, os.ErrNotExist) {
			res.Skipped = append(res.Skipped, table)

			continue
		}

		data, err := s.store.Snapshot(ctx, table)
		if err != nil {
			log.Error().Err(err).Str("table", table).Msg("failed to snapshot table")

			return res, fmt.Errorf("failed to snapshot %s: %w", table, err)
		}

		url, err := s.bucket.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, res.Directory, table, constant.ContentTypeCSV, data)
		if err != nil {
			return res, fmt.Errorf("failed to upload %s: %w", table, err)
		}

		res.Files = append(res.Files, dto.BackupFile{Table: table, URL: url, Size: len(data)})
	}

	log.Info().Str("directory", res.Directory).Int("files", len(res.Files)).Msg("backup finished")

	return res, nil
}

func (s *serviceImpl) tables() []string {
	storage := s.cfg.Storage

	return []string{
		storage.RoomFile,
		storage.BookingFile,
		storage.CustomerFile,
		storage.StaffFile,
		storage.BillFile,
		storage.SequenceFile,
	}
}
