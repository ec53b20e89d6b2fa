package menu

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"harborview/infras/otel"
	"harborview/internal/domains/menu/model"
	"harborview/internal/domains/menu/model/dto"
	"harborview/internal/domains/menu/service"
	"harborview/shared"
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
	service service.Menu
	otel    otel.Otel
}

func New(service service.Menu, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/menu-items", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateMenuItem)
		routerGroup.Get("/", handler.GetMenuItems)
		routerGroup.Get("/{id}", handler.GetMenuItemByID)
		routerGroup.Patch("/{id}", handler.UpdateMenuItem)
		routerGroup.Patch("/{id}/availability", handler.SetMenuItemAvailability)
		routerGroup.Delete("/{id}", handler.DeleteMenuItem)
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
			like(model.FieldName),
			like(model.FieldCuisine),
		},
	}
}

// CreateMenuItem creates a new menu item.
// @Summary Create a menu item
// @Description Create a menu item attached to an existing restaurant.
// @Tags Menu
// @Accept json
// @Produce json
// @Param request body dto.CreateMenuItemRequest true "Create Menu Item Request"
// @Success 201 {object} response.Message "Menu item created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menu-items [post]
// @Security BearerAuth
func (handler *Handler) CreateMenuItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMenuItem")
	defer scope.End()

	req := dto.CreateMenuItemRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create menu item")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Menu item created successfully")

	response.WithMessage(writer, http.StatusCreated, "Menu item created successfully")
}

// GetMenuItems retrieves menu items with filters and pagination.
// @Summary Get all menu items
// @Description Retrieve menu items with search, category/restaurant/availability filters, and pagination.
// @Tags Menu
// @Accept json
// @Produce json
// @Param q query string false "Search by name or cuisine"
// @Param category query string false "Filter by category (all, appetizer, main, dessert, beverage, wine)"
// @Param restaurant_id query string false "Filter by restaurant"
// @Param is_available query bool false "Filter by availability"
// @Success 200 {object} response.Data[dto.GetMenuItemsResponse] "List of menu items"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menu-items [get]
func (handler *Handler) GetMenuItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMenuItems")
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

	if category := r.URL.Query().Get(model.FieldCategory); category != "" && category != filterSentinelAll {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
	}

	if restaurantID := r.URL.Query().Get(model.FieldRestaurantID); restaurantID != "" && restaurantID != filterSentinelAll {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRestaurantID,
			Operator: gDto.FilterOperatorEq,
			Value:    restaurantID,
			Table:    model.TableName,
		})
	}

	if available := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldIsAvailable)); available != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsAvailable,
			Operator: gDto.FilterOperatorEq,
			Value:    *available,
			Table:    model.TableName,
		})
	}

	menuItems, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get menu items")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Menu items retrieved successfully")

	response.WithJSON(w, http.StatusOK, menuItems)
}

// GetMenuItemByID retrieves a menu item by its ID.
// @Summary Get a menu item by ID
// @Description Retrieve a menu item by its unique identifier.
// @Tags Menu
// @Accept json
// @Produce json
// @Param id path string true "Menu Item ID"
// @Success 200 {object} response.Data[dto.MenuItemResponse] "Menu item details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menu-items/{id} [get]
func (handler *Handler) GetMenuItemByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMenuItemByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	menuItem, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get menu item by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Menu item retrieved successfully")

	response.WithJSON(w, http.StatusOK, menuItem)
}

// UpdateMenuItem updates a menu item by its ID.
// @Summary Update a menu item
// @Description Apply a partial update to a menu item.
// @Tags Menu
// @Accept json
// @Produce json
// @Param id path string true "Menu Item ID"
// @Param request body dto.UpdateMenuItemRequest true "Update Menu Item Request"
// @Success 200 {object} response.Message "Menu item updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menu-items/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMenuItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateMenuItemRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update menu item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Menu item updated successfully")

	response.WithMessage(w, http.StatusOK, "Menu item updated successfully")
}

// SetMenuItemAvailability toggles whether a menu item can be ordered.
// @Summary Set menu item availability
// @Description Mark a menu item as available or unavailable.
// @Tags Menu
// @Accept json
// @Produce json
// @Param id path string true "Menu Item ID"
// @Param request body dto.SetAvailabilityRequest true "Set Availability Request"
// @Success 200 {object} response.Message "Menu item availability updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menu-items/{id}/availability [patch]
// @Security BearerAuth
func (handler *Handler) SetMenuItemAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetMenuItemAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.SetAvailabilityRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetAvailability(ctx, id, *req.IsAvailable); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update menu item availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Menu item availability updated successfully")

	response.WithMessage(w, http.StatusOK, "Menu item availability updated successfully")
}

// DeleteMenuItem removes a menu item by its ID.
// @Summary Delete a menu item by ID
// @Description Delete a menu item record.
// @Tags Menu
// @Accept json
// @Produce json
// @Param id path string true "Menu Item ID"
// @Success 200 {object} response.Message "Menu item deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menu-items/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMenuItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete menu item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Menu item deleted successfully")

	response.WithMessage(w, http.StatusOK, "Menu item deleted successfully")
}
