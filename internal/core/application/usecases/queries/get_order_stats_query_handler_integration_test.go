package queries_test

import (
	"context"
	"testing"
	"time"

	"warehouse/internal/adapters/out/postgres/orderrepo"
	"warehouse/internal/core/application/usecases/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderQueriesIntegrationTestSuite exercises the raw-SQL read side against a
// real PostgreSQL instance: the stats counters and the ordered listing.
type OrderQueriesIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
}

func (suite *OrderQueriesIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderQueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *OrderQueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderQueriesIntegrationTestSuite) seedOrder(status string, createdAt time.Time) orderrepo.OrderDTO {
	dto := orderrepo.OrderDTO{
		ID:            uuid.New(),
		RobotID:       uuid.New(),
		ItemID:        uuid.New(),
		Quantity:      1,
		Location:      "A1",
		Status:        status,
		CreatedAt:     createdAt,
		LastUpdatedAt: createdAt,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetOrderStats_CountsTerminalStatuses() {
	now := time.Now()
	suite.seedOrder("COMPLETED", now)
	suite.seedOrder("COMPLETED", now)
	suite.seedOrder("CANCELED", now)
	suite.seedOrder("PENDING", now)
	suite.seedOrder("IN_PROGRESS", now)

	handler := queries.NewGetOrderStatsQueryHandler(suite.db)

	stats, err := handler.Handle(context.Background(), queries.NewGetOrderStatsQuery())
	suite.Require().NoError(err)

	suite.Equal(2, stats.CompletedOrders)
	suite.Equal(1, stats.CanceledOrders)
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetOrderStats_EmptyTable_Zeroes() {
	handler := queries.NewGetOrderStatsQueryHandler(suite.db)

	stats, err := handler.Handle(context.Background(), queries.NewGetOrderStatsQuery())
	suite.Require().NoError(err)

	suite.Equal(0, stats.CompletedOrders)
	suite.Equal(0, stats.CanceledOrders)
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetAllOrders_NewestFirst() {
	base := time.Now().Add(-time.Hour)
	oldest := suite.seedOrder("COMPLETED", base)
	newest := suite.seedOrder("PENDING", base.Add(30*time.Minute))

	handler := queries.NewGetAllOrdersQueryHandler(suite.db)

	orders, err := handler.Handle(context.Background(), queries.NewGetAllOrdersQuery())
	suite.Require().NoError(err)

	suite.Require().Len(orders, 2)
	suite.Equal(newest.ID.String(), orders[0].ID.String())
	suite.Equal(oldest.ID.String(), orders[1].ID.String())
	suite.Equal("PENDING", orders[0].Status)
}

func TestOrderQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesIntegrationTestSuite))
}
