package robotrepo_test

import (
	"context"
	"testing"
	"time"

	"warehouse/internal/adapters/out/postgres/robotrepo"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/robot"
	"warehouse/internal/pkg/errs"

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

// RobotRepositoryIntegrationTestSuite verifies persistence behavior of the
// robot repository, in particular the conditional assignment guard the
// admission protocol relies on.
type RobotRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *robotrepo.GormRobotRepository
	tracker    *MockAggregateTracker
}

func (suite *RobotRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&robotrepo.RobotDTO{}))
}

func (suite *RobotRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE robots").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = robotrepo.NewGormRobotRepository(suite.db, suite.tracker)
}

func (suite *RobotRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RobotRepositoryIntegrationTestSuite) addIdleRobot() *robot.Robot {
	r, err := robot.NewRobot(kernel.NewUUID(), robot.Idle, nil, 0, "", time.Now())
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", r.ID(), r).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), r))
	return r
}

func (suite *RobotRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrips() {
	ctx := context.Background()
	r := suite.addIdleRobot()

	retrieved, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)

	suite.Equal(r.ID(), retrieved.ID())
	suite.Equal(robot.Idle, retrieved.Status())
	suite.Nil(retrieved.CurrentOrderID())
	suite.Equal(0, retrieved.CompletedOrders())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RobotRepositoryIntegrationTestSuite) TestGet_NonExistentRobot_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *RobotRepositoryIntegrationTestSuite) TestAssignOrder_FreeRobot_SetsPointer() {
	ctx := context.Background()
	r := suite.addIdleRobot()
	orderID := kernel.NewUUID()

	err := suite.repository.AssignOrder(ctx, r.ID(), orderID, time.Now())
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved.CurrentOrderID())
	suite.Equal(orderID, *retrieved.CurrentOrderID())
	// Admission leaves the robot's reported status alone
	suite.Equal(robot.Idle, retrieved.Status())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RobotRepositoryIntegrationTestSuite) TestAssignOrder_BusyRobot_ConditionMiss() {
	ctx := context.Background()
	r := suite.addIdleRobot()
	firstOrderID := kernel.NewUUID()

	suite.Require().NoError(suite.repository.AssignOrder(ctx, r.ID(), firstOrderID, time.Now()))

	err := suite.repository.AssignOrder(ctx, r.ID(), kernel.NewUUID(), time.Now())
	suite.Require().ErrorIs(err, robot.ErrRobotAlreadyAssigned)

	// The first assignment is untouched
	retrieved, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Equal(firstOrderID, *retrieved.CurrentOrderID())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RobotRepositoryIntegrationTestSuite) TestAssignOrder_NonExistentRobot_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.AssignOrder(ctx, kernel.NewUUID(), kernel.NewUUID(), time.Now())

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *RobotRepositoryIntegrationTestSuite) TestReleaseOrder_MatchingPointer_Clears() {
	ctx := context.Background()
	r := suite.addIdleRobot()
	orderID := kernel.NewUUID()

	suite.Require().NoError(suite.repository.AssignOrder(ctx, r.ID(), orderID, time.Now()))
	suite.Require().NoError(suite.repository.ReleaseOrder(ctx, r.ID(), orderID, time.Now()))

	retrieved, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Nil(retrieved.CurrentOrderID())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RobotRepositoryIntegrationTestSuite) TestReleaseOrder_MismatchedPointer_NoOp() {
	ctx := context.Background()
	r := suite.addIdleRobot()
	orderID := kernel.NewUUID()

	suite.Require().NoError(suite.repository.AssignOrder(ctx, r.ID(), orderID, time.Now()))

	// Releasing a different order leaves the pointer alone
	suite.Require().NoError(suite.repository.ReleaseOrder(ctx, r.ID(), kernel.NewUUID(), time.Now()))

	retrieved, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved.CurrentOrderID())
	suite.Equal(orderID, *retrieved.CurrentOrderID())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RobotRepositoryIntegrationTestSuite) TestIncrementCompletedOrders_BumpsCounter() {
	ctx := context.Background()
	r := suite.addIdleRobot()

	suite.Require().NoError(suite.repository.IncrementCompletedOrders(ctx, r.ID(), time.Now()))
	suite.Require().NoError(suite.repository.IncrementCompletedOrders(ctx, r.ID(), time.Now()))

	retrieved, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Equal(2, retrieved.CompletedOrders())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RobotRepositoryIntegrationTestSuite) TestIncrementCompletedOrders_NonExistentRobot() {
	ctx := context.Background()

	err := suite.repository.IncrementCompletedOrders(ctx, kernel.NewUUID(), time.Now())

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *RobotRepositoryIntegrationTestSuite) TestUpdate_ClearedPointerPersists() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	r, err := robot.RestoreRobot(kernel.NewUUID(), robot.InProgress, &orderID, 0, "", time.Now())
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", r.ID(), r).Once()
	suite.Require().NoError(suite.repository.Add(ctx, r))

	r.ReleaseOrder(orderID, time.Now())
	suite.Require().NoError(r.ChangeStatus(robot.Completed, time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, r))

	retrieved, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Nil(retrieved.CurrentOrderID())
	suite.Equal(robot.Completed, retrieved.Status())
	suite.tracker.AssertExpectations(suite.T())
}

func TestRobotRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RobotRepositoryIntegrationTestSuite))
}
