package queries_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParameterlessQueries_ConstructorGuard(t *testing.T) {
	require.NoError(t, queries.NewGetAllOrdersQuery().Validate())
	require.NoError(t, queries.NewGetOrderStatsQuery().Validate())
	require.NoError(t, queries.NewGetAllRobotsQuery().Validate())
	require.NoError(t, queries.NewGetAllInventoryQuery().Validate())

	assert.ErrorIs(t, queries.GetAllOrdersQuery{}.Validate(), queries.ErrGetAllOrdersQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetOrderStatsQuery{}.Validate(), queries.ErrGetOrderStatsQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetAllRobotsQuery{}.Validate(), queries.ErrGetAllRobotsQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetAllInventoryQuery{}.Validate(), queries.ErrGetAllInventoryQueryIsNotConstructed)
}

func TestNewGetOrderByIDQuery(t *testing.T) {
	orderID := kernel.NewUUID()
	q, err := queries.NewGetOrderByIDQuery(orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, q.OrderID())

	_, err = queries.NewGetOrderByIDQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewGetRobotByIDQuery(t *testing.T) {
	robotID := kernel.NewUUID()
	q, err := queries.NewGetRobotByIDQuery(robotID)
	require.NoError(t, err)
	assert.Equal(t, robotID, q.RobotID())

	_, err = queries.NewGetRobotByIDQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestNewGetInventoryItemByIDQuery(t *testing.T) {
	itemID := kernel.NewUUID()
	q, err := queries.NewGetInventoryItemByIDQuery(itemID)
	require.NoError(t, err)
	assert.Equal(t, itemID, q.ItemID())

	_, err = queries.NewGetInventoryItemByIDQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestNewHasActiveOrderForRobotQuery(t *testing.T) {
	robotID := kernel.NewUUID()
	q, err := queries.NewHasActiveOrderForRobotQuery(robotID)
	require.NoError(t, err)
	assert.Equal(t, robotID, q.RobotID())

	_, err = queries.NewHasActiveOrderForRobotQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
