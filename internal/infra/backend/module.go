package backend

import (
	"go.uber.org/fx"
)

// Module provides the backend client and every gateway port it implements
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
		NewCartGateway,
		NewProfileGateway,
		NewOrderGateway,
		NewCatalogGateway,
		NewFavoritesGateway,
	),
)
