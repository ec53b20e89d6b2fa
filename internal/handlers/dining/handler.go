package dining

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"harborview/infras/otel"
	"harborview/internal/domains/dining/model"
	"harborview/internal/domains/dining/model/dto"
	"harborview/internal/domains/dining/service"
	"harborview/shared/constant"
	gDto "harborview/shared/dto"
	"harborview/shared/validator"
	"harborview/transport/http/response"
)

const (
	requestParamSearch = "q"
	filterSentinelAll  = "all"
)

type Handler struct {
	service service.Dining
	otel    otel.Otel
}

func New(service service.Dining, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/dining-reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Get("/{id}", handler.GetReservationByID)
		routerGroup.Patch("/{id}", handler.UpdateReservation)
		routerGroup.Patch("/{id}/status", handler.UpdateReservationStatus)
		routerGroup.Delete("/{id}", handler.DeleteReservation)
	})
}

func searchFilter(query string) gDto.FilterGroup {
	like := func(field string) gDto.Filter {
		return gDto.Filter{
			ArgName:  field + "_search",
			Field:    field,
			Operator: gDto.FilterOperatorLike,
			Value:    query,
			Table:    model.TableName,
		}
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			like(model.FieldGuestName),
			like(model.FieldGuestEmail),
			like(model.FieldRestaurant),
		},
	}
}

// CreateReservation handles the public dining reservation form.
// @Summary Create a dining reservation
// @Description Submit a dining reservation request. New reservations start pending.
// @Tags Dining
// @Accept json
// @Produce json
// @Param request body dto.CreateDiningReservationRequest true "Create Dining Reservation Request"
// @Success 201 {object} response.Data[dto.DiningReservationResponse] "Created reservation"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/dining-reservations [post]
func (handler *Handler) CreateReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateDiningReservationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	reservation, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create dining reservation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Dining reservation created successfully")

	response.WithJSON(writer, http.StatusCreated, reservation)
}

// GetReservations retrieves dining reservations for the admin table.
// @Summary Get all dining reservations
// @Description Retrieve dining reservations with search, status filters, and pagination.
// @Tags Dining
// @Accept json
// @Produce json
// @Param q query string false "Search by guest name, guest email, or restaurant"
// @Param status query string false "Filter by status (all, pending, confirmed, cancelled, completed)"
// @Param restaurant query string false "Filter by restaurant slug"
// @Success 200 {object} response.Data[dto.GetDiningReservationsResponse] "List of dining reservations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/dining-reservations [get]
// @Security BearerAuth
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if query := r.URL.Query().Get(requestParamSearch); query != "" {
		filterGroup.Filters = append(filterGroup.Filters, searchFilter(query))
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" && status != filterSentinelAll {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if restaurant := r.URL.Query().Get(model.FieldRestaurant); restaurant != "" && restaurant != filterSentinelAll {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRestaurant,
			Operator: gDto.FilterOperatorEq,
			Value:    restaurant,
			Table:    model.TableName,
		})
	}

	reservations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dining reservations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dining reservations retrieved successfully")

	response.WithJSON(w, http.StatusOK, reservations)
}

// GetReservationByID retrieves a dining reservation by its ID.
// @Summary Get a dining reservation by ID
// @Description Retrieve a dining reservation by its unique identifier.
// @Tags Dining
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.DiningReservationResponse] "Reservation details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/dining-reservations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	reservation, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dining reservation by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dining reservation retrieved successfully")

	response.WithJSON(w, http.StatusOK, reservation)
}

// UpdateReservation applies a partial update to a dining reservation.
// @Summary Update a dining reservation by ID
// @Description Update reservation details. Pass expected_version to guard against concurrent edits.
// @Tags Dining
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.UpdateDiningReservationRequest true "Update Dining Reservation Request"
// @Success 200 {object} response.Message "Dining reservation updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/dining-reservations/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateDiningReservationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update dining reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dining reservation updated successfully")

	response.WithMessage(w, http.StatusOK, "Dining reservation updated successfully")
}

// UpdateReservationStatus advances a reservation through the status machine.
// @Summary Update dining reservation status
// @Description Apply a status transition. A table number may be assigned on confirmation.
// @Tags Dining
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Message "Dining reservation status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/dining-reservations/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateReservationStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservationStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update dining reservation status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dining reservation status updated successfully")

	response.WithMessage(w, http.StatusOK, "Dining reservation status updated successfully")
}

// DeleteReservation removes a dining reservation by its ID.
// @Summary Delete a dining reservation by ID
// @Description Delete a dining reservation record.
// @Tags Dining
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Message "Dining reservation deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/dining-reservations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReservation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete dining reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dining reservation deleted successfully")

	response.WithMessage(w, http.StatusOK, "Dining reservation deleted successfully")
}
