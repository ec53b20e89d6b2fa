package service

import (
	"context"
	"fmt"
	"reflect"
	"strconv"

	"github.com/rs/zerolog/log"

	"harborview/config"
	"harborview/infras/kafka"
	"harborview/infras/otel"
	"harborview/internal/domains/dining/model"
	"harborview/internal/domains/dining/model/dto"
	"harborview/internal/domains/dining/repository"
	"harborview/internal/domains/reservation"
	"harborview/shared"
	"harborview/shared/cache"
	"harborview/shared/constant"
	gDto "harborview/shared/dto"
	"harborview/shared/failure"
	"harborview/shared/timezone"
)

const (
	cacheGetDining    = "dining:get"
	cacheGetAllDining = "dining:gets"
	cacheCountDining  = "dining:count"
)

type Dining interface {
	Create(ctx context.Context, req dto.CreateDiningReservationRequest) (dto.DiningReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetDiningReservationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.DiningReservationResponse, error)
	Update(ctx context.Context, req dto.UpdateDiningReservationRequest, id string) error
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Dining
	cfg   *config.Config
	cache cache.RedisCache
	kafka kafka.Client
	otel  otel.Otel
}

func New(repo repository.Dining, cfg *config.Config, cache cache.RedisCache, kafkaClient kafka.Client, otel otel.Otel) Dining {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		kafka: kafkaClient,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateDiningReservationRequest) (res dto.DiningReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	date, err := req.ParseDate()
	if err != nil {
		return res, failure.BadRequestFromString("date must be a valid calendar day") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	reservationModel := req.ToModel(user, date)

	if err = s.repo.Insert(ctx, reservationModel); err != nil {
		log.Error().Err(err).Msg("failed to create dining reservation")

		return res, fmt.Errorf("failed to create dining reservation: %w", err)
	}

	s.publish(ctx, newDiningEvent(EventDiningCreated, reservationModel, constant.Empty, timezone.Now()))
	s.invalidate(ctx, reservationModel.ID)

	res.FromModel(reservationModel)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetDiningReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllDining, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for dining reservations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count dining reservations")

		return res, fmt.Errorf("failed to count dining reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get dining reservations")

		return res, fmt.Errorf("failed to get dining reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dining reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountDining, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count dining reservations")

		return res, fmt.Errorf("failed to count dining reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dining reservation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.DiningReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetDining, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	reservationModel, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get dining reservation")

		return res, fmt.Errorf("failed to get dining reservation: %w", err)
	}

	if reservationModel.ID == constant.Empty {
		return res, failure.NotFound("dining reservation not found") // nolint:wrapcheck
	}

	res.FromModel(reservationModel)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dining reservation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateDiningReservationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if reflect.ValueOf(req).IsZero() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservationModel, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get dining reservation")

		return fmt.Errorf("failed to get dining reservation: %w", err)
	}

	if reservationModel.ID == constant.Empty {
		return failure.NotFound("dining reservation not found") // nolint:wrapcheck
	}

	expected := reservationModel.Version
	if req.ExpectedVersion != nil {
		expected = *req.ExpectedVersion
	}

	updatedFields := shared.TransformFields(req, user)
	updatedFields[constant.FieldVersion] = expected + 1

	affected, err := s.repo.UpdateCount(ctx, updatedFields, filterByIDAndVersion(id, expected))
	if err != nil {
		log.Error().Err(err).Msg("failed to update dining reservation")

		return fmt.Errorf("failed to update dining reservation: %w", err)
	}

	if affected == 0 {
		return failure.Conflict("dining reservation was modified concurrently, expected version " + strconv.FormatInt(expected, 10)) // nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	return nil
}

// UpdateStatus advances a reservation along the shared status machine. A table
// number may be assigned alongside the confirmation.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservationModel, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get dining reservation")

		return fmt.Errorf("failed to get dining reservation: %w", err)
	}

	if reservationModel.ID == constant.Empty {
		return failure.NotFound("dining reservation not found") // nolint:wrapcheck
	}

	if !reservation.CanTransition(reservationModel.Status, req.Status) {
		return failure.BadRequestFromString(fmt.Sprintf("cannot transition dining reservation from %s to %s", reservationModel.Status, req.Status)) // nolint:wrapcheck
	}

	expected := reservationModel.Version
	if req.ExpectedVersion != nil {
		expected = *req.ExpectedVersion
	}

	updatedFields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldVersion:    expected + 1,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if req.Status == reservation.StatusConfirmed && req.TableNumber != constant.Empty {
		updatedFields[model.FieldTableNumber] = req.TableNumber
	}

	affected, err := s.repo.UpdateCount(ctx, updatedFields, filterByIDAndVersion(id, expected))
	if err != nil {
		log.Error().Err(err).Msg("failed to update dining reservation status")

		return fmt.Errorf("failed to update dining reservation status: %w", err)
	}

	if affected == 0 {
		return failure.Conflict("dining reservation was modified concurrently, expected version " + strconv.FormatInt(expected, 10)) // nolint:wrapcheck
	}

	previous := reservationModel.Status
	reservationModel.Status = req.Status

	if table, ok := updatedFields[model.FieldTableNumber].(string); ok {
		reservationModel.TableNumber = table
	}

	s.publish(ctx, newDiningEvent(EventDiningStatusChanged, reservationModel, previous, timezone.Now()))
	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if dining reservation exists")

		return fmt.Errorf("failed to check if dining reservation exists: %w", err)
	}

	if !exist {
		return failure.NotFound("dining reservation not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete dining reservation")

		return fmt.Errorf("failed to delete dining reservation: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func filterByIDAndVersion(id string, version int64) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    constant.FieldVersion,
				Value:    version,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) publish(ctx context.Context, event DiningEvent) {
	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key:   event.ReservationID,
			Value: event,
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.DiningEvents, message); err != nil {
			log.Error().Err(err).Str("type", event.Type).Msg("failed to publish dining event")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetDining, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete dining reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllDining)
		shared.InvalidateCaches(c, s.cache, cacheCountDining)
	}()
}
