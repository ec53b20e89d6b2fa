package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"harborview/infras/otel"
	"harborview/infras/postgres"
	"harborview/internal/domains/dining/model"
	gDto "harborview/shared/dto"
	gRepo "harborview/shared/repository"
)

type Dining interface {
	Insert(ctx context.Context, model model.DiningReservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.DiningReservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.DiningReservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateCount(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.DiningReservation]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Dining {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.DiningReservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}
