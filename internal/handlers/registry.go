package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	NotificationHandler *NotificationHandler
	HealthHandler       *HealthHandler
}
