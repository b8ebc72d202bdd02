package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/auth"
	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/branch"
	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/handler"
	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/menu"
	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/order"
	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/user"
)

type Deps struct {
	Orders     *order.Service
	OrderStore *order.Store
	Menu       *menu.Service
	Users      user.Service
	Auth       *auth.Service
	Branches   *branch.Store
}

func NewRouter(d Deps) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	authHandler := handler.NewAuthHandler(d.Auth)
	r.Post("/login", authHandler.Login)

	orderHandler := handler.NewOrderHandler(d.Orders)
	menuHandler := handler.NewMenuHandler(d.Menu)
	userHandler := handler.NewUserHandler(d.Users)
	reportHandler := handler.NewReportHandler(d.OrderStore, d.Branches)

	r.Group(func(r chi.Router) {
		r.Use(handler.Authenticate(d.Auth))
		orderHandler.RegisterRoutes(r)
		menuHandler.RegisterRoutes(r)
		userHandler.RegisterRoutes(r)
		reportHandler.RegisterRoutes(r)
	})

	return r
}
