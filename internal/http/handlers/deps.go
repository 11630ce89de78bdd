package handlers

import (
	"depotlog/internal/services"
	"depotlog/internal/store"
)

type Deps struct {
	UserHandler         *NameHandler
	LocationHandler     *NameHandler
	PurposeHandler      *NameHandler
	ProductHandler      *ProductHandler
	CategoryHandler     *CategoryHandler
	RegistrationHandler *RegistrationHandler
	ImportHandler       *ImportHandler
	EventsHandler       *EventsHandler
	QRHandler           *QRHandler
}

func NewDeps(st *store.Store, auth *services.AuthService) *Deps {
	registry := services.NewRegistryService(st)
	importer := services.NewImportService(st)

	return &Deps{
		UserHandler:         &NameHandler{Kind: "users", Registry: registry},
		LocationHandler:     &NameHandler{Kind: "locations", Registry: registry},
		PurposeHandler:      &NameHandler{Kind: "purposes", Registry: registry},
		ProductHandler:      &ProductHandler{Registry: registry},
		CategoryHandler:     &CategoryHandler{Registry: registry},
		RegistrationHandler: &RegistrationHandler{Registry: registry},
		ImportHandler:       &ImportHandler{Importer: importer},
		EventsHandler:       &EventsHandler{Store: st, Auth: auth},
		QRHandler:           &QRHandler{Registry: registry},
	}
}
