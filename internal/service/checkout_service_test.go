package service

import (
	"context"
	"testing"

	"atelie-store/internal/config"
	"atelie-store/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	// Return a MockTx interface value, not a pointer
	if tx, ok := args.Get(0).(pgx.Tx); ok {
		return tx, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	args := m.Called(ctx, tx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error {
	args := m.Called(ctx, tx, items)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*model.Order), args.Get(1).([]model.OrderItem), args.Error(2)
}

// MockCouponRepository is a mock implementation of CouponRepository.
type MockCouponRepository struct {
	mock.Mock
}

func (m *MockCouponRepository) GetByCode(ctx context.Context, code string) (*model.Coupon, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Coupon), args.Error(1)
}

func (m *MockCouponRepository) IncrementUsage(ctx context.Context, tx pgx.Tx, code string) error {
	args := m.Called(ctx, tx, code)
	return args.Error(0)
}

// MockCouponValidator is a mock implementation of coupon.Validator.
type MockCouponValidator struct {
	mock.Mock
}

func (m *MockCouponValidator) Validate(ctx context.Context, code string) (*model.Coupon, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Coupon), args.Error(1)
}

// MockTx is a minimal mock implementation of pgx.Tx for testing.
type MockTx struct {
	mock.Mock
	committed  bool
	rolledBack bool
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	m.committed = true
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	m.rolledBack = true
	return args.Error(0)
}

// Stub methods to satisfy pgx.Tx interface - these are not used in our tests
func (m *MockTx) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (m *MockTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (m *MockTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (m *MockTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (m *MockTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (m *MockTx) Exec(ctx context.Context, sql string, arguments ...any) (commandTag pgconn.CommandTag, err error) {
	return
}
func (m *MockTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (m *MockTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (m *MockTx) Conn() *pgx.Conn                                               { return nil }

func checkoutConfig() config.CheckoutConfig {
	return config.CheckoutConfig{PixDiscountPercent: 5}
}

func validCheckoutRequest() *model.CheckoutRequest {
	return &model.CheckoutRequest{
		CustomerName:  "Maria da Silva",
		CustomerEmail: "maria@example.com",
		Items: []model.CheckoutItem{
			{ProductID: "prod-vela", Quantity: 2, Price: 50.00},
		},
		Shipping:      &model.ShippingSelection{Service: "PAC", Price: 20.00},
		PaymentMethod: model.PaymentCard,
	}
}

func TestCheckoutService_Process_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	mockCouponRepo := new(MockCouponRepository)
	mockValidator := new(MockCouponValidator)
	mockTx := new(MockTx)

	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockOrderRepo.On("CreateOrder", ctx, mockTx, mock.AnythingOfType("*model.Order")).Return(nil)
	mockOrderRepo.On("CreateOrderItems", ctx, mockTx, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)

	svc := NewCheckoutService(mockOrderRepo, mockCouponRepo, mockValidator, checkoutConfig(), logger)

	confirmation, err := svc.Process(ctx, validCheckoutRequest())

	require.NoError(t, err)
	require.NotNil(t, confirmation)
	assert.NotEqual(t, uuid.Nil, confirmation.ID)
	assert.Equal(t, 120.00, confirmation.Total)
	assert.Equal(t, model.PaymentCard, confirmation.PaymentMethod)
	require.Len(t, confirmation.Items, 1)
	assert.Equal(t, "prod-vela", confirmation.Items[0].ProductID)

	assert.True(t, mockTx.committed)
	assert.False(t, mockTx.rolledBack)
	mockOrderRepo.AssertExpectations(t)
	mockValidator.AssertNotCalled(t, "Validate", mock.Anything, mock.Anything)
}

func TestCheckoutService_Process_PixDiscount(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	mockTx := new(MockTx)

	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockOrderRepo.On("CreateOrder", ctx, mockTx, mock.AnythingOfType("*model.Order")).Return(nil)
	mockOrderRepo.On("CreateOrderItems", ctx, mockTx, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)

	svc := NewCheckoutService(mockOrderRepo, new(MockCouponRepository), new(MockCouponValidator), checkoutConfig(), logger)

	req := validCheckoutRequest()
	req.PaymentMethod = model.PaymentPix

	confirmation, err := svc.Process(ctx, req)

	require.NoError(t, err)
	// 100 subtotal + 20 shipping - 5 pix discount
	assert.Equal(t, 115.00, confirmation.Total)
}

func TestCheckoutService_Process_WithCoupon(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	mockCouponRepo := new(MockCouponRepository)
	mockValidator := new(MockCouponValidator)
	mockTx := new(MockTx)

	couponCode := "AXE10"
	appliedCoupon := &model.Coupon{Code: "AXE10", Type: model.DiscountPercentage, Value: 10, Active: true}

	mockValidator.On("Validate", ctx, "AXE10").Return(appliedCoupon, nil)
	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockOrderRepo.On("CreateOrder", ctx, mockTx, mock.AnythingOfType("*model.Order")).Return(nil)
	mockOrderRepo.On("CreateOrderItems", ctx, mockTx, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	mockCouponRepo.On("IncrementUsage", ctx, mockTx, "AXE10").Return(nil)
	mockTx.On("Commit", ctx).Return(nil)

	svc := NewCheckoutService(mockOrderRepo, mockCouponRepo, mockValidator, checkoutConfig(), logger)

	req := validCheckoutRequest()
	req.CouponCode = &couponCode

	confirmation, err := svc.Process(ctx, req)

	require.NoError(t, err)
	// 100 subtotal + 20 shipping - 10 coupon
	assert.Equal(t, 110.00, confirmation.Total)
	mockCouponRepo.AssertExpectations(t)
	mockValidator.AssertExpectations(t)
}

func TestCheckoutService_Process_InvalidCoupon(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	mockValidator := new(MockCouponValidator)

	couponCode := "NADA"
	mockValidator.On("Validate", ctx, "NADA").Return(nil, model.ErrInvalidCoupon)

	svc := NewCheckoutService(mockOrderRepo, new(MockCouponRepository), mockValidator, checkoutConfig(), logger)

	req := validCheckoutRequest()
	req.CouponCode = &couponCode

	_, err := svc.Process(ctx, req)

	assert.ErrorIs(t, err, model.ErrInvalidCoupon)
	mockOrderRepo.AssertNotCalled(t, "BeginTx", mock.Anything)
}

func TestCheckoutService_Process_ValidationErrors(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name        string
		mutate      func(*model.CheckoutRequest)
		expectedErr error
		errorMsg    string
	}{
		{
			name:        "Empty item list",
			mutate:      func(r *model.CheckoutRequest) { r.Items = nil },
			expectedErr: model.ErrEmptyCart,
		},
		{
			name:     "Unsupported payment method",
			mutate:   func(r *model.CheckoutRequest) { r.PaymentMethod = "boleto" },
			errorMsg: "unsupported payment method",
		},
		{
			name:     "Item without product ID",
			mutate:   func(r *model.CheckoutRequest) { r.Items[0].ProductID = "" },
			errorMsg: "product ID is required",
		},
		{
			name:        "Item with zero quantity",
			mutate:      func(r *model.CheckoutRequest) { r.Items[0].Quantity = 0 },
			expectedErr: model.ErrInvalidQuantity,
		},
		{
			name:        "Item with negative quantity",
			mutate:      func(r *model.CheckoutRequest) { r.Items[0].Quantity = -2 },
			expectedErr: model.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrderRepo := new(MockOrderRepository)
			svc := NewCheckoutService(mockOrderRepo, new(MockCouponRepository), new(MockCouponValidator), checkoutConfig(), logger)

			req := validCheckoutRequest()
			tt.mutate(req)

			_, err := svc.Process(ctx, req)

			require.Error(t, err)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.Contains(t, err.Error(), tt.errorMsg)
			}
			mockOrderRepo.AssertNotCalled(t, "BeginTx", mock.Anything)
		})
	}
}

func TestCheckoutService_Process_CreateOrderFailure(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	mockTx := new(MockTx)

	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockOrderRepo.On("CreateOrder", ctx, mockTx, mock.AnythingOfType("*model.Order")).Return(assert.AnError)
	mockTx.On("Rollback", ctx).Return(nil)

	svc := NewCheckoutService(mockOrderRepo, new(MockCouponRepository), new(MockCouponValidator), checkoutConfig(), logger)

	_, err := svc.Process(ctx, validCheckoutRequest())

	require.Error(t, err)
	assert.True(t, mockTx.rolledBack)
	assert.False(t, mockTx.committed)
}

func TestCheckoutService_Process_CouponUsageFailureRollsBack(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	mockCouponRepo := new(MockCouponRepository)
	mockValidator := new(MockCouponValidator)
	mockTx := new(MockTx)

	couponCode := "AXE10"
	appliedCoupon := &model.Coupon{Code: "AXE10", Type: model.DiscountPercentage, Value: 10, Active: true}

	mockValidator.On("Validate", ctx, "AXE10").Return(appliedCoupon, nil)
	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockOrderRepo.On("CreateOrder", ctx, mockTx, mock.AnythingOfType("*model.Order")).Return(nil)
	mockOrderRepo.On("CreateOrderItems", ctx, mockTx, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	mockCouponRepo.On("IncrementUsage", ctx, mockTx, "AXE10").Return(assert.AnError)
	mockTx.On("Rollback", ctx).Return(nil)

	svc := NewCheckoutService(mockOrderRepo, mockCouponRepo, mockValidator, checkoutConfig(), logger)

	req := validCheckoutRequest()
	req.CouponCode = &couponCode

	_, err := svc.Process(ctx, req)

	require.Error(t, err)
	assert.True(t, mockTx.rolledBack)
	assert.False(t, mockTx.committed)
}

func TestCheckoutService_GetOrder(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Found order is returned with its items", func(t *testing.T) {
		mockOrderRepo := new(MockOrderRepository)
		svc := NewCheckoutService(mockOrderRepo, new(MockCouponRepository), new(MockCouponValidator), checkoutConfig(), logger)

		orderID := uuid.New()
		order := &model.Order{ID: orderID, CustomerName: "Maria da Silva", Total: 120.00}
		items := []model.OrderItem{{OrderID: orderID, ProductID: "prod-vela", Quantity: 2, UnitPrice: 50.00}}
		mockOrderRepo.On("GetByID", ctx, orderID).Return(order, items, nil)

		gotOrder, gotItems, err := svc.GetOrder(ctx, orderID)

		require.NoError(t, err)
		assert.Equal(t, order, gotOrder)
		assert.Equal(t, items, gotItems)
	})

	t.Run("Missing order returns nil without error", func(t *testing.T) {
		mockOrderRepo := new(MockOrderRepository)
		svc := NewCheckoutService(mockOrderRepo, new(MockCouponRepository), new(MockCouponValidator), checkoutConfig(), logger)

		orderID := uuid.New()
		mockOrderRepo.On("GetByID", ctx, orderID).Return(nil, nil, nil)

		gotOrder, gotItems, err := svc.GetOrder(ctx, orderID)

		require.NoError(t, err)
		assert.Nil(t, gotOrder)
		assert.Nil(t, gotItems)
	})

	t.Run("Repository failure is wrapped", func(t *testing.T) {
		mockOrderRepo := new(MockOrderRepository)
		svc := NewCheckoutService(mockOrderRepo, new(MockCouponRepository), new(MockCouponValidator), checkoutConfig(), logger)

		orderID := uuid.New()
		mockOrderRepo.On("GetByID", ctx, orderID).Return(nil, nil, assert.AnError)

		_, _, err := svc.GetOrder(ctx, orderID)

		assert.Error(t, err)
	})
}
