package migration

import (
	"github.com/smallbiznis/contacts/internal/config"
	countrydomain "github.com/smallbiznis/contacts/internal/country/domain"
	persondomain "github.com/smallbiznis/contacts/internal/person/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType != "postgres" {
			// mysql/sqlite development setups rely on gorm schema sync; the
			// versioned SQL path targets postgres only.
			return conn.AutoMigrate(&countrydomain.Country{}, &persondomain.Person{})
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		return RunMigrations(sqlDB)
	}),
)
