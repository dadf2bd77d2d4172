package cmd

import (
	"log/slog"

	"zones/internal/adapters/out/postgres"
	"zones/internal/core/application/usecases/commands"
	"zones/internal/core/application/usecases/queries"
	"zones/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateTenantCommandHandler() commands.CreateTenantCommandHandler {
	var f commands.TenantUoWFactory = FuncTenantUoWFactory(func() commands.TenantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTenantCommandHandler(f)
}

func (c *CompositionRoot) CreateReplaceZonesCommandHandler() commands.ReplaceZonesCommandHandler {
	var f commands.ZoneUoWFactory = FuncZoneUoWFactory(func() commands.ZoneUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReplaceZonesCommandHandler(f)
}

func (c *CompositionRoot) CreateGetZonesQueryHandler() queries.GetZonesQueryHandler {
	return queries.NewGetZonesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateQuoteDeliveryQueryHandler() queries.QuoteDeliveryQueryHandler {
	// Quote resolution only reads; the repository runs on the main
	// connection, outside any transaction.
	reader := c.uowFactory.Create().ZoneRepository()
	return queries.NewQuoteDeliveryQueryHandler(reader, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.gormDB, c.logger)
}

type FuncTenantUoWFactory func() commands.TenantUoW

func (f FuncTenantUoWFactory) Create() commands.TenantUoW {
	return f()
}

type FuncZoneUoWFactory func() commands.ZoneUoW

func (f FuncZoneUoWFactory) Create() commands.ZoneUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
