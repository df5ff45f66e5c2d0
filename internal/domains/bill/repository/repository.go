package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"frontdesk/config"
	"frontdesk/infras/flatfile"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/bill/model"
	gDto "frontdesk/shared/dto"
	gRepo "frontdesk/shared/repository"
)

type Bill interface {
	Load(ctx context.Context) ([]model.Bill, error)
	Save(ctx context.Context, models []model.Bill) error
	Insert(ctx context.Context, model model.Bill) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Bill, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Bill, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]string, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Bill]
}

func New(cfg *config.Config, store flatfile.Store, otel otel.Otel) Bill {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Bill](model.EntityName, cfg.Storage.BillFile, model.FieldID, store, otel),
	}
}
