package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/contacts/internal/clock"
	"github.com/smallbiznis/contacts/internal/config"
	"github.com/smallbiznis/contacts/internal/migration"
	"github.com/smallbiznis/contacts/internal/observability"
	"github.com/smallbiznis/contacts/internal/server"
	"github.com/smallbiznis/contacts/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(newSnowflakeNode),
		db.Module,
		clock.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func newSnowflakeNode() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}
