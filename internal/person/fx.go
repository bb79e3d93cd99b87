package person

import (
	"github.com/smallbiznis/contacts/internal/person/repository"
	"github.com/smallbiznis/contacts/internal/person/service"
	"go.uber.org/fx"
)

var Module = fx.Module("person.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
