package cmd

import (
	"log/slog"

	httpin "parceltrack/internal/adapters/in/http"
	"parceltrack/internal/adapters/out/carrierapi"
	"parceltrack/internal/adapters/out/postgres"
	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Each Create method
// builds a fresh handler over the shared connection pool.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	resolver   services.CarrierResolver
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	apiClient := carrierapi.NewClient(config.CarrierLookupTimeout)

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		resolver:   services.NewCarrierResolver(apiClient),
	}
}

func (c *CompositionRoot) CreateRecordOutboundScanCommandHandler() commands.RecordOutboundScanCommandHandler {
	var f commands.ScanUoWFactory = FuncScanUoWFactory(func() commands.ScanUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordOutboundScanCommandHandler(f, c.resolver)
}

func (c *CompositionRoot) CreateRecordReturnScanCommandHandler() commands.RecordReturnScanCommandHandler {
	var f commands.ReturnUoWFactory = FuncReturnUoWFactory(func() commands.ReturnUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordReturnScanCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateParcelStatusCommandHandler() commands.UpdateParcelStatusCommandHandler {
	return commands.NewUpdateParcelStatusCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateBulkUpdateStatusCommandHandler() commands.BulkUpdateStatusCommandHandler {
	return commands.NewBulkUpdateStatusCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateRunSlaSweepCommandHandler(logger *slog.Logger) commands.RunSlaSweepCommandHandler {
	var f commands.SweepUoWFactory = FuncSweepUoWFactory(func() commands.SweepUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRunSlaSweepCommandHandler(f, logger, nil)
}

func (c *CompositionRoot) CreateCreateCarrierCommandHandler() commands.CreateCarrierCommandHandler {
	return commands.NewCreateCarrierCommandHandler(c.carrierUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCarrierCommandHandler() commands.UpdateCarrierCommandHandler {
	return commands.NewUpdateCarrierCommandHandler(c.carrierUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCarrierCommandHandler() commands.DeleteCarrierCommandHandler {
	return commands.NewDeleteCarrierCommandHandler(c.carrierUoWFactory())
}

func (c *CompositionRoot) CreateCreateCarrierAccountCommandHandler() commands.CreateCarrierAccountCommandHandler {
	return commands.NewCreateCarrierAccountCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCarrierAccountCommandHandler() commands.UpdateCarrierAccountCommandHandler {
	return commands.NewUpdateCarrierAccountCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateToggleCarrierAccountCommandHandler() commands.ToggleCarrierAccountCommandHandler {
	return commands.NewToggleCarrierAccountCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCarrierAccountCommandHandler() commands.DeleteCarrierAccountCommandHandler {
	return commands.NewDeleteCarrierAccountCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateGetParcelsQueryHandler() queries.GetParcelsQueryHandler {
	return queries.NewGetParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelQueryHandler() queries.GetParcelQueryHandler {
	return queries.NewGetParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCarriersQueryHandler() queries.GetCarriersQueryHandler {
	return queries.NewGetCarriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCarrierAccountsQueryHandler() queries.GetCarrierAccountsQueryHandler {
	return queries.NewGetCarrierAccountsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelStatsQueryHandler() queries.GetParcelStatsQueryHandler {
	return queries.NewGetParcelStatsQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the full HTTP surface over the use cases.
func (c *CompositionRoot) CreateHTTPServer(logger *slog.Logger) *httpin.Server {
	handlers := httpin.Handlers{
		RecordOutboundScan: c.CreateRecordOutboundScanCommandHandler(),
		RecordReturnScan:   c.CreateRecordReturnScanCommandHandler(),
		UpdateParcelStatus: c.CreateUpdateParcelStatusCommandHandler(),
		BulkUpdateStatus:   c.CreateBulkUpdateStatusCommandHandler(),
		RunSlaSweep:        c.CreateRunSlaSweepCommandHandler(logger),

		CreateCarrier: c.CreateCreateCarrierCommandHandler(),
		UpdateCarrier: c.CreateUpdateCarrierCommandHandler(),
		DeleteCarrier: c.CreateDeleteCarrierCommandHandler(),

		CreateCarrierAccount: c.CreateCreateCarrierAccountCommandHandler(),
		UpdateCarrierAccount: c.CreateUpdateCarrierAccountCommandHandler(),
		ToggleCarrierAccount: c.CreateToggleCarrierAccountCommandHandler(),
		DeleteCarrierAccount: c.CreateDeleteCarrierAccountCommandHandler(),

		GetParcels:         c.CreateGetParcelsQueryHandler(),
		GetParcel:          c.CreateGetParcelQueryHandler(),
		GetCarriers:        c.CreateGetCarriersQueryHandler(),
		GetCarrierAccounts: c.CreateGetCarrierAccountsQueryHandler(),
		GetParcelStats:     c.CreateGetParcelStatsQueryHandler(),
	}

	return httpin.NewServer(handlers, c.config.CronSecret)
}

// CreateJobManager assembles the scheduled background jobs.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRunSlaSweepCommandHandler(logger),
		c.config.SlaJobSchedule,
		logger,
	)
}

func (c *CompositionRoot) parcelUoWFactory() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) carrierUoWFactory() commands.CarrierUoWFactory {
	return FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

type FuncScanUoWFactory func() commands.ScanUoW

func (f FuncScanUoWFactory) Create() commands.ScanUoW {
	return f()
}

type FuncReturnUoWFactory func() commands.ReturnUoW

func (f FuncReturnUoWFactory) Create() commands.ReturnUoW {
	return f()
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncSweepUoWFactory func() commands.SweepUoW

func (f FuncSweepUoWFactory) Create() commands.SweepUoW {
	return f()
}

type FuncCarrierUoWFactory func() commands.CarrierUoW

func (f FuncCarrierUoWFactory) Create() commands.CarrierUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}
