package router

import (
	"github.com/go-chi/chi/v5"

	"harborview/internal/handlers/auth"
	"harborview/internal/handlers/booking"
	"harborview/internal/handlers/contact"
	"harborview/internal/handlers/dining"
	"harborview/internal/handlers/gallery"
	"harborview/internal/handlers/guest"
	"harborview/internal/handlers/menu"
	"harborview/internal/handlers/report"
	"harborview/internal/handlers/restaurant"
	"harborview/internal/handlers/room"
	"harborview/internal/handlers/user"
)

type DomainHandlers struct {
	Auth       auth.Handler
	User       user.Handler
	Room       room.Handler
	Booking    booking.Handler
	Guest      guest.Handler
	Dining     dining.Handler
	Contact    contact.Handler
	Menu       menu.Handler
	Restaurant restaurant.Handler
	Gallery    gallery.Handler
	Report     report.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Dining.Router(routerGroup)
		r.DomainHandlers.Contact.Router(routerGroup)
		r.DomainHandlers.Menu.Router(routerGroup)
		r.DomainHandlers.Restaurant.Router(routerGroup)
		r.DomainHandlers.Gallery.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
