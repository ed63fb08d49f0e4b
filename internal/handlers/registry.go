package handlers

import (
	"promoadmin/internal/services"
	"promoadmin/internal/storage"
	"promoadmin/internal/validator"
)

// AppHandlers bundles all HTTP handlers for route registration.
type AppHandlers struct {
	Auth    *AuthHandler
	Banner  *BannerHandler
	Event   *EventHandler
	Partner *PartnerHandler
	Support *SupportHandler
	File    *FileHandler
}

func NewAppHandlers(v *validator.Validator, svc *services.ServiceContainer, store storage.Storage) *AppHandlers {
	return &AppHandlers{
		Auth:    NewAuthHandler(v, svc.AuthService),
		Banner:  NewBannerHandler(v, svc.BannerService),
		Event:   NewEventHandler(v, svc.EventService),
		Partner: NewPartnerHandler(v, svc.PartnerService),
		Support: NewSupportHandler(v, svc.SupportService),
		File:    NewFileHandler(store),
	}
}
