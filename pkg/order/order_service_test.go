package order

import (
	"GreenBite-Backend/domain"
	"GreenBite-Backend/entities"
	"GreenBite-Backend/pkg/catalog"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Named in-memory databases keep tests isolated while the shared
	// cache keeps every pooled connection on the same database.
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Dish{},
		&entities.AddOn{},
		&entities.Order{},
		&entities.OrderAddOn{},
	))
	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()

	require.NoError(t, db.Create(&entities.Dish{
		ID:           "pizza-1",
		Name:         "Rustic Organic Pizza",
		BaseCalories: 280,
		BaseProtein:  12,
		BaseCarbs:    35,
		BaseFat:      10,
		IsAvailable:  true,
	}).Error)

	addOns := []*entities.AddOn{
		{ID: "ing-1", Name: "Carrot", Category: "vegetable", Calories: 20, Protein: 2, Carbs: 3, Fat: 1, IsAvailable: true},
		{ID: "ing-2", Name: "Onion", Category: "vegetable", Calories: 18, Protein: 1.5, Carbs: 4, Fat: 0.5, IsAvailable: true},
		{ID: "ing-5", Name: "Grilled Fish", Category: "protein", Calories: 80, Protein: 15, Carbs: 0, Fat: 2, IsAvailable: true},
	}
	for _, addOn := range addOns {
		require.NoError(t, db.Create(addOn).Error)
	}
}

func seedUser(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()

	id := uuid.New()
	require.NoError(t, db.Create(&entities.User{
		ID:    id,
		Name:  "Test User",
		Email: fmt.Sprintf("%s@example.com", id),
		Role:  domain.RoleUser,
	}).Error)
	return id
}

func newTestOrderService(db *gorm.DB) OrderService {
	return NewOrderService(NewOrderRepository(db), catalog.NewCatalogRepository(db))
}

func TestComposeDraftAggregatesTotals(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	service := newTestOrderService(db)

	draft, err := service.ComposeDraft(context.Background(), domain.ComposeDraftRequest{
		DishID:   "pizza-1",
		AddOnIDs: []string{"ing-1", "ing-5"},
	})
	require.NoError(t, err)

	assert.Equal(t, "pizza-1", draft.DishID)
	assert.Equal(t, "Rustic Organic Pizza", draft.DishName)
	require.Len(t, draft.AddOns, 2)
	assert.Equal(t, "ing-1", draft.AddOns[0].ID)
	assert.Equal(t, "ing-5", draft.AddOns[1].ID)

	assert.Equal(t, 380.0, draft.Totals.Calories)
	assert.Equal(t, 29.0, draft.Totals.Protein)
	assert.Equal(t, 38.0, draft.Totals.Carbs)
	assert.Equal(t, 13.0, draft.Totals.Fat)
	assert.Equal(t, 7.0, draft.Totals.Fiber)
}

func TestComposeDraftRepeatedIDCancelsOut(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	service := newTestOrderService(db)

	draft, err := service.ComposeDraft(context.Background(), domain.ComposeDraftRequest{
		DishID:   "pizza-1",
		AddOnIDs: []string{"ing-1", "ing-1"},
	})
	require.NoError(t, err)

	assert.Empty(t, draft.AddOns)
	assert.Equal(t, 280.0, draft.Totals.Calories)
	assert.Equal(t, 5.0, draft.Totals.Fiber)
}

func TestComposeDraftDishNotFound(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	service := newTestOrderService(db)

	_, err := service.ComposeDraft(context.Background(), domain.ComposeDraftRequest{
		DishID: "no-such-dish",
	})

	assert.ErrorIs(t, err, domain.ErrDishNotFound)
}

func TestComposeDraftUnknownAddOn(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	service := newTestOrderService(db)

	_, err := service.ComposeDraft(context.Background(), domain.ComposeDraftRequest{
		DishID:   "pizza-1",
		AddOnIDs: []string{"ing-1", "no-such-add-on"},
	})

	assert.ErrorIs(t, err, domain.ErrAddOnNotFound)
}

func TestCreateOrderRecomputesTotals(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	userID := seedUser(t, db)
	service := newTestOrderService(db)

	// Client-sent totals are garbage on purpose; the stored order must
	// carry the catalog-derived numbers instead.
	res, err := service.CreateOrder(context.Background(), domain.CreateOrderRequest{
		DishID:        "pizza-1",
		AddOnIDs:      []string{"ing-1", "ing-5"},
		TotalCalories: 1,
		TotalProtein:  1,
		TotalCarbs:    1,
		TotalFat:      1,
		TotalFiber:    1,
	}, userID.String())
	require.NoError(t, err)

	assert.Equal(t, StatusPending, res.Status)
	assert.Equal(t, 380.0, res.Totals.Calories)
	assert.Equal(t, 29.0, res.Totals.Protein)
	assert.Equal(t, 38.0, res.Totals.Carbs)
	assert.Equal(t, 13.0, res.Totals.Fat)
	assert.Equal(t, 7.0, res.Totals.Fiber)
	assert.Equal(t, "pizza-1", res.Dish.ID)
	require.Len(t, res.AddOns, 2)

	var stored entities.Order
	require.NoError(t, db.First(&stored, "id = ?", res.ID).Error)
	assert.Equal(t, 380.0, stored.TotalCalories)

	var joins int64
	require.NoError(t, db.Model(&entities.OrderAddOn{}).Where("order_id = ?", res.ID).Count(&joins).Error)
	assert.EqualValues(t, 2, joins)
}

func TestCreateOrderBadUserID(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	service := newTestOrderService(db)

	_, err := service.CreateOrder(context.Background(), domain.CreateOrderRequest{
		DishID: "pizza-1",
	}, "not-a-uuid")

	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestGetMyOrdersOwnerScopedNewestFirst(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	owner := seedUser(t, db)
	other := seedUser(t, db)
	repo := NewOrderRepository(db)
	service := newTestOrderService(db)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	makeOrder := func(userID uuid.UUID, createdAt time.Time) uuid.UUID {
		o := &entities.Order{
			ID:        uuid.New(),
			UserID:    userID,
			DishID:    "pizza-1",
			Status:    StatusPending,
			Timestamp: entities.Timestamp{CreatedAt: createdAt, UpdatedAt: createdAt},
		}
		require.NoError(t, repo.CreateOrder(context.Background(), o, nil))
		return o.ID
	}

	oldest := makeOrder(owner, base)
	newest := makeOrder(owner, base.Add(time.Hour))
	makeOrder(other, base.Add(2*time.Hour))

	orders, err := service.GetMyOrders(context.Background(), owner.String())
	require.NoError(t, err)

	require.Len(t, orders, 2)
	assert.Equal(t, newest.String(), orders[0].ID)
	assert.Equal(t, oldest.String(), orders[1].ID)
}

func TestGetOrderByIDForeignOwner(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	owner := seedUser(t, db)
	stranger := seedUser(t, db)
	service := newTestOrderService(db)

	res, err := service.CreateOrder(context.Background(), domain.CreateOrderRequest{
		DishID:   "pizza-1",
		AddOnIDs: []string{"ing-2"},
	}, owner.String())
	require.NoError(t, err)

	_, err = service.GetOrderByID(context.Background(), res.ID, stranger.String())
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)

	got, err := service.GetOrderByID(context.Background(), res.ID, owner.String())
	require.NoError(t, err)
	assert.Equal(t, res.ID, got.ID)
	require.Len(t, got.AddOns, 1)
	assert.Equal(t, "ing-2", got.AddOns[0].ID)
}
