package country

import (
	"github.com/smallbiznis/contacts/internal/country/repository"
	"github.com/smallbiznis/contacts/internal/country/service"
	"go.uber.org/fx"
)

var Module = fx.Module("country.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
