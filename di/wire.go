//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"harborview/config"
	"harborview/infras/jwt"
	"harborview/infras/kafka"
	"harborview/infras/otel"
	"harborview/infras/postgres"
	"harborview/infras/redis"
	"harborview/infras/s3"
	"harborview/internal/seed"
	"harborview/permissions"
	"harborview/shared/cache"
	"harborview/transport/http"
	"harborview/transport/http/middleware"
	"harborview/transport/http/router"

	authService "harborview/internal/domains/auth/service"
	bookingRepository "harborview/internal/domains/booking/repository"
	bookingService "harborview/internal/domains/booking/service"
	contactRepository "harborview/internal/domains/contact/repository"
	contactService "harborview/internal/domains/contact/service"
	diningRepository "harborview/internal/domains/dining/repository"
	diningService "harborview/internal/domains/dining/service"
	galleryRepository "harborview/internal/domains/gallery/repository"
	galleryService "harborview/internal/domains/gallery/service"
	guestRepository "harborview/internal/domains/guest/repository"
	guestService "harborview/internal/domains/guest/service"
	menuRepository "harborview/internal/domains/menu/repository"
	menuService "harborview/internal/domains/menu/service"
	reportService "harborview/internal/domains/report/service"
	restaurantRepository "harborview/internal/domains/restaurant/repository"
	restaurantService "harborview/internal/domains/restaurant/service"
	roomRepository "harborview/internal/domains/room/repository"
	roomService "harborview/internal/domains/room/service"
	userRepository "harborview/internal/domains/user/repository"
	userService "harborview/internal/domains/user/service"

	authHandler "harborview/internal/handlers/auth"
	bookingHandler "harborview/internal/handlers/booking"
	contactHandler "harborview/internal/handlers/contact"
	diningHandler "harborview/internal/handlers/dining"
	galleryHandler "harborview/internal/handlers/gallery"
	guestHandler "harborview/internal/handlers/guest"
	menuHandler "harborview/internal/handlers/menu"
	reportHandler "harborview/internal/handlers/report"
	restaurantHandler "harborview/internal/handlers/restaurant"
	roomHandler "harborview/internal/handlers/room"
	userHandler "harborview/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var repositories = wire.NewSet(
	userRepository.New,
	roomRepository.New,
	guestRepository.New,
	bookingRepository.New,
	diningRepository.New,
	contactRepository.New,
	menuRepository.New,
	restaurantRepository.New,
	galleryRepository.New,
)

var services = wire.NewSet(
	authService.New,
	userService.New,
	roomService.New,
	guestService.New,
	bookingService.New,
	diningService.New,
	contactService.New,
	menuService.New,
	restaurantService.New,
	galleryService.New,
	reportService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	bookingHandler.New,
	guestHandler.New,
	diningHandler.New,
	contactHandler.New,
	menuHandler.New,
	restaurantHandler.New,
	galleryHandler.New,
	reportHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		services,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeSeeder() *seed.Seeder {
	wire.Build(
		configurations,
		wire.NewSet(postgres.New, otel.New),
		wire.NewSet(roomRepository.New, contactRepository.New),
		seed.New,
	)

	return &seed.Seeder{}
}
