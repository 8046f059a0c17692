package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"tripplanner/internal/api/controllers"
	"tripplanner/internal/config"
	"tripplanner/pkg/memcache"
	"tripplanner/pkg/metrics"
	"tripplanner/pkg/middleware"
	"tripplanner/pkg/utils"
)

// Handlers is everything the router needs, filled by fx.
type Handlers struct {
	fx.In

	Config       *config.Config
	Log          *zap.Logger
	Tokens       *utils.TokenIssuer
	Metrics      *metrics.Metrics
	AuthLimiters memcache.LimiterStore

	Accounts   *controllers.AccountController
	Trips      *controllers.TripController
	Itinerary  *controllers.ItineraryController
	Places     *controllers.PlaceController
	Cities     *controllers.CityController
	Activities *controllers.ActivityController
	Groups     *controllers.GroupController
	Health     *controllers.HealthController
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(h.Log))
	r.Use(h.Metrics.GinMiddleware())
	r.Use(middleware.CORSMiddleware(h.Config.CORSOrigins))

	RegisterRoutes(r, h)
	return r
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.GET("/health", h.Health.Health)
	r.GET("/metrics", gin.WrapH(h.Metrics.Handler()))

	accounts := r.Group("/accounts")
	limited := accounts.Group("", middleware.RateLimit(h.AuthLimiters, h.Log))
	limited.POST("/register", h.Accounts.Register)
	limited.POST("/login", h.Accounts.Login)

	auth := r.Group("", middleware.JWTAuthMiddleware(h.Tokens))
	auth.GET("/accounts/me", h.Accounts.Me)

	trips := auth.Group("/trips")
	trips.POST("", h.Trips.CreateTrip)
	trips.GET("", h.Trips.ListTrips)
	trips.GET("/:tripId", h.Trips.GetTrip)
	trips.PATCH("/:tripId", h.Trips.UpdateTrip)
	trips.DELETE("/:tripId", h.Trips.DeleteTrip)

	days := trips.Group("/:tripId/days")
	days.GET("", h.Itinerary.ListDays)
	days.POST("", h.Itinerary.CreateDay)
	days.PATCH("/reorder", h.Itinerary.ReorderDays)
	days.POST("/regenerate", h.Itinerary.RegenerateDays)
	days.PATCH("/:dayId", h.Itinerary.UpdateDay)
	h.Itinerary.RegisterAttachmentRoutes(days.Group("/:dayId"))

	places := auth.Group("/places")
	places.POST("", h.Places.CreatePlace)
	places.GET("", h.Places.ListPlaces)
	places.GET("/:placeId", h.Places.GetPlace)
	places.PATCH("/:placeId", h.Places.UpdatePlace)
	places.DELETE("/:placeId", h.Places.DeletePlace)

	cities := auth.Group("/cities")
	cities.POST("", h.Cities.CreateCity)
	cities.GET("", h.Cities.ListCities)
	cities.GET("/:cityId", h.Cities.GetCity)
	cities.PATCH("/:cityId", h.Cities.UpdateCity)
	cities.DELETE("/:cityId", h.Cities.DeleteCity)

	activities := auth.Group("/activities")
	activities.POST("", h.Activities.CreateActivity)
	activities.GET("", h.Activities.ListActivities)
	activities.GET("/:activityId", h.Activities.GetActivity)
	activities.PATCH("/:activityId", h.Activities.UpdateActivity)
	activities.DELETE("/:activityId", h.Activities.DeleteActivity)

	groups := auth.Group("/groups")
	groups.POST("", h.Groups.CreateGroup)
	groups.GET("", h.Groups.ListGroups)
	groups.GET("/:groupId/members", h.Groups.ListMembers)
	groups.POST("/:groupId/members", h.Groups.AddMember)
	groups.DELETE("/:groupId/members/:memberId", h.Groups.RemoveMember)
}
