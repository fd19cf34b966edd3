package parcelrepo_test

import (
	"context"
	"testing"
	"time"

	"parceltrack/internal/adapters/out/postgres/parcelrepo"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ParcelRepositoryIntegrationTestSuite provides integration tests for
// ParcelRepository using PostgreSQL containers.
type ParcelRepositoryIntegrationTestSuite struct {
	suite.Suite
	container        *postgres.PostgresContainer
	db               *gorm.DB
	parcelRepository *parcelrepo.GormParcelRepository
	tracker          *MockAggregateTracker
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&parcelrepo.ParcelDTO{}))
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE parcels").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.parcelRepository = parcelrepo.NewGormParcelRepository(suite.db, suite.tracker)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_ValidParcel_Success() {
	ctx := context.Background()

	testParcel := suite.createTestParcel("123456789")
	suite.tracker.On("TrackAggregate", testParcel.ID(), testParcel).Once()

	err := suite.parcelRepository.Add(ctx, testParcel)
	suite.Require().NoError(err)

	retrieved, err := suite.parcelRepository.Get(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Equal("123456789", retrieved.TrackingNumber().String())
	suite.Equal(parcel.StatusCreated, retrieved.Status())
	suite.Nil(retrieved.OutboundScannedAt())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_DuplicateTrackingNumber_ReturnsConflict() {
	ctx := context.Background()

	first := suite.createTestParcel("555000111")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.parcelRepository.Add(ctx, first))

	duplicate := suite.createTestParcel("555000111")
	err := suite.parcelRepository.Add(ctx, duplicate)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConflict)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetByTrackingNumber() {
	ctx := context.Background()

	testParcel := suite.createTestParcel("777888999")
	suite.tracker.On("TrackAggregate", testParcel.ID(), testParcel).Once()
	suite.Require().NoError(suite.parcelRepository.Add(ctx, testParcel))

	tn, err := kernel.NewTrackingNumber("777888999")
	suite.Require().NoError(err)

	retrieved, err := suite.parcelRepository.GetByTrackingNumber(ctx, tn)
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testParcel.ID()))

	missing, err := kernel.NewTrackingNumber("000000000")
	suite.Require().NoError(err)
	_, err = suite.parcelRepository.GetByTrackingNumber(ctx, missing)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_ScanRoundTrip() {
	ctx := context.Background()

	testParcel := suite.createTestParcel("246813579")
	suite.tracker.On("TrackAggregate", testParcel.ID(), testParcel).Twice()
	suite.Require().NoError(suite.parcelRepository.Add(ctx, testParcel))

	scannedAt := time.Now().UTC().Truncate(time.Microsecond)
	destination := "Lyon"
	carrierID := kernel.NewUUID()
	suite.Require().NoError(testParcel.RecordOutboundScan(scannedAt, &destination, &carrierID, nil))

	suite.Require().NoError(suite.parcelRepository.Update(ctx, testParcel))

	retrieved, err := suite.parcelRepository.Get(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.StatusOutboundScanned, retrieved.Status())
	suite.Require().NotNil(retrieved.Destination())
	suite.Equal("Lyon", *retrieved.Destination())
	suite.Require().NotNil(retrieved.CarrierID())
	suite.True(retrieved.CarrierID().IsEqual(carrierID))
	suite.Require().NotNil(retrieved.OutboundScannedAt())
	suite.True(retrieved.OutboundScannedAt().Equal(scannedAt))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_NonExistent_ReturnsError() {
	ctx := context.Background()

	ghost := suite.createTestParcel("135792468")
	err := suite.parcelRepository.Update(ctx, ghost)
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetEscalatable_FiltersAndOrders() {
	ctx := context.Background()
	now := time.Now().UTC()

	// Older than the cutoff, active status: selected second (newer scan).
	scanned := suite.createScannedParcel("111111111", parcel.StatusOutboundScanned, now.Add(-5*24*time.Hour))
	// Oldest scan: selected first.
	inTransit := suite.createScannedParcel("222222222", parcel.StatusInTransit, now.Add(-9*24*time.Hour))
	// Active status but scanned after the cutoff: skipped.
	fresh := suite.createScannedParcel("333333333", parcel.StatusOutboundScanned, now.Add(-time.Hour))
	// Old scan but terminal status: skipped.
	delivered := suite.createScannedParcel("444444444", parcel.StatusDelivered, now.Add(-30*24*time.Hour))
	// Never scanned: skipped.
	created := suite.createTestParcel("666666666")

	for _, p := range []*parcel.Parcel{scanned, inTransit, fresh, delivered, created} {
		suite.tracker.On("TrackAggregate", p.ID(), p).Once()
		suite.Require().NoError(suite.parcelRepository.Add(ctx, p))
	}

	escalatable, err := suite.parcelRepository.GetEscalatable(ctx, now.Add(-24*time.Hour))
	suite.Require().NoError(err)
	suite.Require().Len(escalatable, 2)
	suite.Equal("222222222", escalatable[0].TrackingNumber().String())
	suite.Equal("111111111", escalatable[1].TrackingNumber().String())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestCountByCarrier() {
	ctx := context.Background()
	now := time.Now().UTC()

	carrierID := kernel.NewUUID()
	otherCarrierID := kernel.NewUUID()

	attached1 := suite.createScannedParcelForCarrier("101010101", now, &carrierID)
	attached2 := suite.createScannedParcelForCarrier("202020202", now, &carrierID)
	other := suite.createScannedParcelForCarrier("303030303", now, &otherCarrierID)
	unattached := suite.createTestParcel("404040404")

	for _, p := range []*parcel.Parcel{attached1, attached2, other, unattached} {
		suite.tracker.On("TrackAggregate", p.ID(), p).Once()
		suite.Require().NoError(suite.parcelRepository.Add(ctx, p))
	}

	count, err := suite.parcelRepository.CountByCarrier(ctx, carrierID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)

	count, err = suite.parcelRepository.CountByCarrier(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Zero(count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetForUpdate_InsideTransaction() {
	ctx := context.Background()

	testParcel := suite.createTestParcel("909090909")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.parcelRepository.Add(ctx, testParcel))

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	txRepo := parcelrepo.NewGormParcelRepository(tx, suite.tracker)

	locked, err := txRepo.GetForUpdate(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.True(locked.ID().IsEqual(testParcel.ID()))

	tn, err := kernel.NewTrackingNumber("909090909")
	suite.Require().NoError(err)
	lockedByTn, err := txRepo.GetByTrackingNumberForUpdate(ctx, tn)
	suite.Require().NoError(err)
	suite.True(lockedByTn.ID().IsEqual(testParcel.ID()))

	suite.Require().NoError(tx.Commit().Error)
}

// createTestParcel creates a parcel in the initial status.
func (suite *ParcelRepositoryIntegrationTestSuite) createTestParcel(trackingNumber string) *parcel.Parcel {
	tn, err := kernel.NewTrackingNumber(trackingNumber)
	suite.Require().NoError(err)

	p, err := parcel.NewParcel(kernel.NewUUID(), tn)
	suite.Require().NoError(err)
	return p
}

// createScannedParcel creates a parcel restored into the given status with
// the given first-scan timestamp.
func (suite *ParcelRepositoryIntegrationTestSuite) createScannedParcel(
	trackingNumber string, status parcel.Status, scannedAt time.Time,
) *parcel.Parcel {
	tn, err := kernel.NewTrackingNumber(trackingNumber)
	suite.Require().NoError(err)

	p, err := parcel.RestoreParcel(
		kernel.NewUUID(), tn, status, nil, nil, nil, &scannedAt, nil, nil, nil)
	suite.Require().NoError(err)
	return p
}

// createScannedParcelForCarrier creates a scanned parcel attached to a carrier.
func (suite *ParcelRepositoryIntegrationTestSuite) createScannedParcelForCarrier(
	trackingNumber string, scannedAt time.Time, carrierID *kernel.UUID,
) *parcel.Parcel {
	tn, err := kernel.NewTrackingNumber(trackingNumber)
	suite.Require().NoError(err)

	p, err := parcel.RestoreParcel(
		kernel.NewUUID(), tn, parcel.StatusOutboundScanned, nil, carrierID, nil, &scannedAt, nil, nil, nil)
	suite.Require().NoError(err)
	return p
}

func TestParcelRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ParcelRepositoryIntegrationTestSuite))
}
