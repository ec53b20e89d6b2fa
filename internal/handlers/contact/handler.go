package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"harborview/infras/otel"
	"harborview/internal/domains/contact/model"
	"harborview/internal/domains/contact/model/dto"
	"harborview/internal/domains/contact/service"
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
	service service.Contact
	otel    otel.Otel
}

func New(service service.Contact, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/contacts", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateContact)
		routerGroup.Get("/", handler.GetContacts)
		routerGroup.Get("/{id}", handler.GetContactByID)
		routerGroup.Patch("/{id}/status", handler.UpdateContactStatus)
		routerGroup.Delete("/{id}", handler.DeleteContact)
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
			like(model.FieldFirstName),
			like(model.FieldLastName),
			like(model.FieldEmail),
			like(model.FieldSubject),
		},
	}
}

// CreateContact handles the public contact form.
// @Summary Submit a contact form
// @Description Create a contact submission. New submissions start in the new status with derived triage tags.
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.CreateContactRequest true "Create Contact Request"
// @Success 201 {object} response.Data[dto.ContactResponse] "Created submission"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contacts [post]
func (handler *Handler) CreateContact(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateContact")
	defer scope.End()

	req := dto.CreateContactRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	contact, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create contact submission")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Contact submission created successfully")

	response.WithJSON(writer, http.StatusCreated, contact)
}

// GetContacts retrieves the admin contact inbox.
// @Summary Get all contact submissions
// @Description Retrieve contact submissions with search, status/category filters, and pagination. Default order is newest first.
// @Tags Contact
// @Accept json
// @Produce json
// @Param q query string false "Search by name, email, or subject"
// @Param status query string false "Filter by status (all, new, read, replied, resolved, archived)"
// @Param category query string false "Filter by category (all, general, booking, event, business, complaint, compliment, media)"
// @Param priority query string false "Filter by priority (all, low, medium, high, urgent)"
// @Success 200 {object} response.Data[dto.GetContactsResponse] "List of contact submissions"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contacts [get]
// @Security BearerAuth
func (handler *Handler) GetContacts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContacts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if queryParams.SortBy == "" {
		queryParams.SortBy = constant.DefaultValueSortBy
		queryParams.SortDir = constant.DefaultValueSortDir
	}

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

	if category := r.URL.Query().Get(model.FieldCategory); category != "" && category != filterSentinelAll {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
	}

	if priority := r.URL.Query().Get(model.FieldPriority); priority != "" && priority != filterSentinelAll {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPriority,
			Operator: gDto.FilterOperatorEq,
			Value:    priority,
			Table:    model.TableName,
		})
	}

	contacts, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contacts")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contacts retrieved successfully")

	response.WithJSON(w, http.StatusOK, contacts)
}

// GetContactByID retrieves a submission. Opening a new submission marks it read.
// @Summary Get a contact submission by ID
// @Description Retrieve a contact submission. New submissions advance to read on first view.
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} response.Data[dto.ContactResponse] "Submission details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contacts/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetContactByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContactByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	contact, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contact by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contact retrieved successfully")

	response.WithJSON(w, http.StatusOK, contact)
}

// UpdateContactStatus moves a submission through the inbox lattice.
// @Summary Update contact status
// @Description Apply an inbox transition (read, replied, resolved, archived). Replying bumps the response count.
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Message "Contact status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contacts/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateContactStatus")
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
		log.Error().Err(err).Msg("failed to update contact status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contact status updated successfully")

	response.WithMessage(w, http.StatusOK, "Contact status updated successfully")
}

// DeleteContact removes a submission by its ID.
// @Summary Delete a contact submission by ID
// @Description Delete a contact submission record.
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} response.Message "Contact deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contacts/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteContact")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete contact")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contact deleted successfully")

	response.WithMessage(w, http.StatusOK, "Contact deleted successfully")
}
