package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/rrparlour/parlour-booking/internal/config"
	"github.com/rrparlour/parlour-booking/internal/handlers"
	infraRepo "github.com/rrparlour/parlour-booking/internal/infra/repository"
	"github.com/rrparlour/parlour-booking/internal/middleware"
	"github.com/rrparlour/parlour-booking/internal/search"
	"github.com/rrparlour/parlour-booking/internal/session"
	"github.com/rrparlour/parlour-booking/internal/storage"
	ucBooking "github.com/rrparlour/parlour-booking/internal/usecase/booking"
)

type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Sessions *session.Manager
	Store    storage.Store
	Search   *search.Client
	Logger   zerolog.Logger
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.Sessions(deps.Sessions, deps.Logger))

	bookingRepo := infraRepo.NewBookingGormRepository(deps.DB)
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo)
	decideBookingUC := ucBooking.NewDecideBooking(bookingRepo)

	publicHandler := handlers.NewPublicHandler(deps.DB, deps.Search.Available())
	authHandler := handlers.NewAuthHandler(deps.DB, deps.Sessions)
	customerHandler := handlers.NewCustomerHandler(deps.DB, deps.Store, createBookingUC, deps.Search.Available())
	ownerHandler := handlers.NewOwnerHandler(deps.DB, deps.Store, decideBookingUC, deps.Logger)
	adminHandler := handlers.NewAdminHandler(deps.DB)
	searchHandler := handlers.NewSearchHandler(deps.Search, deps.Logger)

	// ------------------------------
	// PUBLIC
	// ------------------------------
	r.GET("/", publicHandler.Index)
	r.POST("/register/customer", authHandler.RegisterCustomer)
	r.POST("/register/owner", authHandler.RegisterOwner)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// ------------------------------
	// CUSTOMER
	// ------------------------------
	customer := r.Group("/customer")
	customer.Use(middleware.RequireRole(middleware.RoleCustomer))
	{
		customer.GET("/dashboard", customerHandler.Dashboard)
		customer.POST("/update_profile", customerHandler.UpdateProfile)
		customer.POST("/book", customerHandler.Book)
	}

	// The search proxy is customer-only and the sole JSON route.
	api := r.Group("/api")
	api.Use(middleware.RequireRole(middleware.RoleCustomer))
	{
		api.GET("/search_images", searchHandler.SearchImages)
	}

	// ------------------------------
	// OWNER
	// ------------------------------
	owner := r.Group("/owner")
	owner.Use(middleware.RequireRole(middleware.RoleOwner))
	{
		owner.GET("/dashboard", ownerHandler.Dashboard)
		owner.POST("/add_hairstyle", ownerHandler.AddHairstyle)
		owner.POST("/booking_action", ownerHandler.BookingAction)
	}

	// ------------------------------
	// ADMIN
	// ------------------------------
	admin := r.Group("/admin")
	admin.Use(middleware.RequireRole(middleware.RoleAdmin))
	{
		admin.GET("/dashboard", adminHandler.Dashboard)
		admin.POST("/update_profile", adminHandler.UpdateProfile)
		admin.POST("/owner_status", adminHandler.OwnerStatus)
		admin.POST("/tagline", adminHandler.Tagline)
	}
}
