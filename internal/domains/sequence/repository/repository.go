package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"frontdesk/config"
	"frontdesk/infras/flatfile"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/sequence/model"
	gRepo "frontdesk/shared/repository"
)

type Sequence interface {
	Load(ctx context.Context) ([]model.Sequence, error)
	Save(ctx context.Context, models []model.Sequence) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Sequence]
}

func New(cfg *config.Config, store flatfile.Store, otel otel.Otel) Sequence {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Sequence](model.EntityName, cfg.Storage.SequenceFile, model.FieldPrefix, store, otel),
	}
}
