package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripplanner/internal/repositories"
	"tripplanner/internal/services"
)

var Module = fx.Provide(
	provideItineraryRepo,
	provideAttachmentRepos,
	services.NewItineraryService,
)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideAttachmentRepos(db *gorm.DB) repositories.AttachmentRepositories {
	return repositories.NewAttachmentRepositories(db)
}
