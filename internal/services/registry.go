package services

// ServiceContainer bundles all services for dependency injection.
type ServiceContainer struct {
	AuthService    AuthService
	BannerService  BannerService
	EventService   EventService
	PartnerService PartnerService
	SupportService SupportService
	ImageService   ImageService
}
