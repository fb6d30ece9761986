package services

import (
	"agm_backend/internal/repositories"
	"agm_backend/internal/validator"
)

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	NotificationService NotificationService
}

// RepositoryContainer holds the stateless repositories; each call takes the
// *gorm.DB to run on.
type RepositoryContainer struct {
	Notifications repositories.NotificationRepository
	Users         repositories.UserRepository
	Shareholders  repositories.ShareholderRepository
	Meetings      repositories.MeetingRepository
}

func NewRepositoryContainer() *RepositoryContainer {
	return &RepositoryContainer{
		Notifications: repositories.NewNotificationRepository(),
		Users:         repositories.NewUserRepository(),
		Shareholders:  repositories.NewShareholderRepository(),
		Meetings:      repositories.NewMeetingRepository(),
	}
}

func NewServiceContainer(repos *RepositoryContainer, v *validator.Validator) *ServiceContainer {
	return &ServiceContainer{
		NotificationService: NewNotificationService(
			repos.Notifications,
			repos.Users,
			repos.Shareholders,
			repos.Meetings,
			v,
		),
	}
}
