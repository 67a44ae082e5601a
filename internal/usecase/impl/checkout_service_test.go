package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/persistence/memory"
	mockSvc "storefront/internal/mocks/service"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutServiceFixtures struct {
	service   *checkoutService
	cart      *mockUC.MockCheckoutCart
	profiles  *mockUC.MockProfileSource
	notifier  *mockUC.MockProfileNotifier
	gateway   *mockSvc.MockProfileGateway
	orders    *mockSvc.MockOrderGateway
	publisher *mockSvc.MockEventPublisher
	ledger    repository.CheckoutRepository
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	cart := mockUC.NewMockCheckoutCart(t)
	profiles := mockUC.NewMockProfileSource(t)
	notifier := mockUC.NewMockProfileNotifier(t)
	gateway := mockSvc.NewMockProfileGateway(t)
	orders := mockSvc.NewMockOrderGateway(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	ledger := memory.NewCheckoutRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return checkoutServiceFixtures{
		service:   newCheckoutService(cart, profiles, notifier, gateway, orders, ledger, publisher, logger),
		cart:      cart,
		profiles:  profiles,
		notifier:  notifier,
		gateway:   gateway,
		orders:    orders,
		publisher: publisher,
		ledger:    ledger,
	}
}

var checkoutUser = &entity.User{ID: 42, FirstName: "Ada", LastName: "Lovelace"}

func filledCart() *entity.CartSnapshot {
	return &entity.CartSnapshot{
		Items: []entity.CartLine{
			{ProductID: 1, Quantity: 2, Price: decimal.RequireFromString("10.00"), Status: entity.LineConfirmed},
		},
		ItemCount: 2,
		Total:     decimal.RequireFromString("20.00"),
	}
}

func completeProfile() *entity.Profile {
	return &entity.Profile{
		UserID:       42,
		FullName:     "Ada Lovelace",
		PhoneNumber:  "+966500000000",
		AddressLine1: "1 King Fahd Rd",
		City:         "Riyadh",
	}
}

func validDraft() *entity.AddressDraft {
	return &entity.AddressDraft{
		FullName:     "Ada Lovelace",
		PhoneNumber:  "+966500000000",
		AddressLine1: "1 King Fahd Rd",
		City:         "Riyadh",
	}
}

func TestCheckoutService_Begin_EmptyCart(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.cart.EXPECT().GetCart(ctx, entity.UserID(42)).Return(&entity.CartSnapshot{Items: []entity.CartLine{}}, nil)

	view, err := fx.service.Begin(ctx, checkoutUser, "")

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrCartEmpty))

	status, err := fx.service.Status(ctx, checkoutUser)
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutIdle, status.State)
}

func TestCheckoutService_Begin_CompleteProfilePlacesOrder(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.cart.EXPECT().GetCart(ctx, entity.UserID(42)).Return(filledCart(), nil)
	fx.profiles.EXPECT().CurrentProfile(ctx, checkoutUser).Return(completeProfile(), nil)
	fx.orders.EXPECT().CreateOrder(ctx, entity.UserID(42), "key-1").
		Return(&entity.OrderConfirmation{OrderID: 901, Message: "Order created"}, nil).Once()
	fx.cart.EXPECT().ResetAfterOrder(ctx, entity.UserID(42)).Return(&entity.CartSnapshot{}, nil).Once()
	fx.publisher.EXPECT().PublishOrderPlaced(ctx, mock.MatchedBy(func(e *service.OrderPlacedEvent) bool {
		return e.OrderID == 901 && e.UserID == 42 && e.IdempotencyKey == "key-1" && e.ItemCount == 2 && e.Total == "20.00"
	})).Return(nil).Once()

	view, err := fx.service.Begin(ctx, checkoutUser, " key-1 ")

	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutConfirmed, view.State)
	assert.Equal(t, int64(901), view.Confirmation.OrderID)
	assert.Equal(t, "key-1", view.IdempotencyKey)
	assert.Nil(t, view.Draft)

	record, err := fx.ledger.FindByKey(ctx, entity.UserID(42), "key-1")
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutRecordCompleted, record.Status)
	assert.Equal(t, int64(901), record.OrderID)
}

func TestCheckoutService_Begin_ReplayedKeyDoesNotReorder(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.cart.EXPECT().GetCart(ctx, entity.UserID(42)).Return(filledCart(), nil)
	fx.profiles.EXPECT().CurrentProfile(ctx, checkoutUser).Return(completeProfile(), nil).Once()
	fx.orders.EXPECT().CreateOrder(ctx, entity.UserID(42), "key-1").
		Return(&entity.OrderConfirmation{OrderID: 901}, nil).Once()
	fx.cart.EXPECT().ResetAfterOrder(ctx, entity.UserID(42)).Return(&entity.CartSnapshot{}, nil).Once()
	fx.publisher.EXPECT().PublishOrderPlaced(ctx, mock.Anything).Return(nil).Once()

	_, err := fx.service.Begin(ctx, checkoutUser, "key-1")
	require.NoError(t, err)
	_, err = fx.service.DismissConfirmation(ctx, checkoutUser)
	require.NoError(t, err)

	view, err := fx.service.Begin(ctx, checkoutUser, "key-1")

	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutConfirmed, view.State)
	assert.Equal(t, int64(901), view.Confirmation.OrderID)
}

// A key is only replayed for the user who used it. Another user sending the
// same key goes through the entry guard like any new checkout.
func TestCheckoutService_Begin_KeyOfAnotherUserIsNotReplayed(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	otherUser := &entity.User{ID: 7, FirstName: "Grace"}

	fx.cart.EXPECT().GetCart(ctx, entity.UserID(42)).Return(filledCart(), nil)
	fx.profiles.EXPECT().CurrentProfile(ctx, checkoutUser).Return(completeProfile(), nil).Once()
	fx.orders.EXPECT().CreateOrder(ctx, entity.UserID(42), "shared").
		Return(&entity.OrderConfirmation{OrderID: 901, Message: "Order for Ada"}, nil).Once()
	fx.cart.EXPECT().ResetAfterOrder(ctx, entity.UserID(42)).Return(&entity.CartSnapshot{}, nil).Once()
	fx.publisher.EXPECT().PublishOrderPlaced(ctx, mock.Anything).Return(nil).Once()

	_, err := fx.service.Begin(ctx, checkoutUser, "shared")
	require.NoError(t, err)

	fx.cart.EXPECT().GetCart(ctx, entity.UserID(7)).Return(&entity.CartSnapshot{Items: []entity.CartLine{}}, nil).Once()

	view, err := fx.service.Begin(ctx, otherUser, "shared")

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrCartEmpty))

	status, err := fx.service.Status(ctx, otherUser)
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutIdle, status.State)
	assert.Nil(t, status.Confirmation)
}

func TestCheckoutService_Begin_PendingKeyOfAnotherUserDoesNotBlock(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	otherUser := &entity.User{ID: 7, FirstName: "Grace"}

	require.NoError(t, fx.ledger.Reserve(ctx, &entity.CheckoutRecord{
		IdempotencyKey: "shared",
		UserID:         42,
		Status:         entity.CheckoutRecordPending,
	}))

	otherProfile := completeProfile()
	otherProfile.UserID = 7
	fx.cart.EXPECT().GetCart(ctx, entity.UserID(7)).Return(filledCart(), nil)
	fx.profiles.EXPECT().CurrentProfile(ctx, otherUser).Return(otherProfile, nil).Once()
	fx.orders.EXPECT().CreateOrder(ctx, entity.UserID(7), "shared").
		Return(&entity.OrderConfirmation{OrderID: 902}, nil).Once()
	fx.cart.EXPECT().ResetAfterOrder(ctx, entity.UserID(7)).Return(&entity.CartSnapshot{}, nil).Once()
	fx.publisher.EXPECT().PublishOrderPlaced(ctx, mock.Anything).Return(nil).Once()

	view, err := fx.service.Begin(ctx, otherUser, "shared")

	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutConfirmed, view.State)
	assert.Equal(t, int64(902), view.Confirmation.OrderID)

	mine, err := fx.ledger.FindByKey(ctx, entity.UserID(42), "shared")
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutRecordPending, mine.Status)
}

func TestCheckoutService_Begin_IncompleteProfileCollectsAddress(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	cityID := entity.CityID(3)

	fx.cart.EXPECT().GetCart(ctx, entity.UserID(42)).Return(filledCart(), nil)
	fx.profiles.EXPECT().CurrentProfile(ctx, checkoutUser).
		Return(&entity.Profile{UserID: 42, SelectedCityID: &cityID, SelectedCityName: "Riyadh"}, nil)

	view, err := fx.service.Begin(ctx, checkoutUser, "")

	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutAddressCollection, view.State)
	require.NotNil(t, view.Draft)
	assert.Equal(t, "Ada Lovelace", view.Draft.FullName)
	assert.Equal(t, "Riyadh", view.Draft.City)
	assert.NotEmpty(t, view.IdempotencyKey)

	again, err := fx.service.Begin(ctx, checkoutUser, "")
	require.NoError(t, err)
	assert.Equal(t, view.IdempotencyKey, again.IdempotencyKey)
}

func TestCheckoutService_Begin_ProfileCheckFails(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.cart.EXPECT().GetCart(ctx, entity.UserID(42)).Return(filledCart(), nil)
	fx.profiles.EXPECT().CurrentProfile(ctx, checkoutUser).Return(nil, domainerrors.ErrProfileLoadFailed)

	_, err := fx.service.Begin(ctx, checkoutUser, "")

	assert.True(t, errors.Is(err, domainerrors.ErrProfileLoadFailed))

	status, _ := fx.service.Status(ctx, checkoutUser)
	assert.Equal(t, entity.CheckoutIdle, status.State)
	assert.Equal(t, domainerrors.ErrProfileLoadFailed.Message(), status.Error)
}

func TestCheckoutService_Begin_RequiresUser(t *testing.T) {
	fx := createTestCheckoutService(t)

	_, err := fx.service.Begin(context.Background(), nil, "")

	assert.True(t, errors.Is(err, domainerrors.ErrUserRequired))
}

func TestCheckoutService_Begin_RejectedWhileOrderInFlight(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	entered := make(chan struct{})
	release := make(chan struct{})

	fx.cart.EXPECT().GetCart(ctx, entity.UserID(42)).Return(filledCart(), nil)
	fx.profiles.EXPECT().CurrentProfile(ctx, checkoutUser).Return(completeProfile(), nil).Once()
	fx.orders.EXPECT().CreateOrder(ctx, entity.UserID(42), mock.Anything).
		RunAndReturn(func(context.Context, entity.UserID, string) (*entity.OrderConfirmation, error) {
			close(entered)
			<-release

			return &entity.OrderConfirmation{OrderID: 7}, nil
		}).Once()
	fx.cart.EXPECT().ResetAfterOrder(ctx, entity.UserID(42)).Return(&entity.CartSnapshot{}, nil).Once()
	fx.publisher.EXPECT().PublishOrderPlaced(ctx, mock.Anything).Return(nil).Once()

	done := make(chan error, 1)
	go func() {
		_, err := fx.service.Begin(ctx, checkoutUser, "")
		done <- err
	}()

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("order was never requested")
	}

	status, err := fx.service.Status(ctx, checkoutUser)
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutOrderCreation, status.State)

	_, err = fx.service.Begin(ctx, checkoutUser, "")
	assert.True(t, errors.Is(err, domainerrors.ErrCheckoutInProgress))

	_, err = fx.service.Cancel(ctx, checkoutUser)
	assert.True(t, errors.Is(err, domainerrors.ErrCheckoutInProgress))

	close(release)
	require.NoError(t, <-done)
}

func TestCheckoutService_Sweep_KeepsFlowWithOrderInFlight(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	entered := make(chan struct{})
	release := make(chan struct{})

	fx.cart.EXPECT().GetCart(ctx, entity.UserID(42)).Return(filledCart(), nil)
	fx.profiles.EXPECT().CurrentProfile(ctx, checkoutUser).Return(completeProfile(), nil).Once()
	fx.orders.EXPECT().CreateOrder(ctx, entity.UserID(42), mock.Anything).
		RunAndReturn(func(context.Context, entity.UserID, string) (*entity.OrderConfirmation, error) {
			close(entered)
			<-release

			return &entity.OrderConfirmation{OrderID: 7}, nil
		}).Once()
	fx.cart.EXPECT().ResetAfterOrder(ctx, entity.UserID(42)).Return(&entity.CartSnapshot{}, nil).Once()
	fx.publisher.EXPECT().PublishOrderPlaced(ctx, mock.Anything).Return(nil).Once()

	done := make(chan error, 1)
	go func() {
		_, err := fx.service.Begin(ctx, checkoutUser, "")
		done <- err
	}()

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("order was never requested")
	}

	assert.Zero(t, fx.service.Sweep(time.Now().Add(time.Hour)))

	_, err := fx.service.Begin(ctx, checkoutUser, "")
	assert.True(t, errors.Is(err, domainerrors.ErrCheckoutInProgress))

	close(release)
	require.NoError(t, <-done)

	assert.Equal(t, 1, fx.service.Sweep(time.Now().Add(time.Hour)))
}

func TestCheckoutService_OrderFailureKeepsCart(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.cart.EXPECT().GetCart(ctx, entity.UserID(42)).Return(filledCart(), nil)
	fx.profiles.EXPECT().CurrentProfile(ctx, checkoutUser).Return(completeProfile(), nil)
	fx.orders.EXPECT().CreateOrder(ctx, entity.UserID(42), "key-9").
		Return(nil, errors.New("stock changed")).Once()

	view, err := fx.service.Begin(ctx, checkoutUser, "key-9")

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderCreationFailed))
	fx.cart.AssertNotCalled(t, "ResetAfterOrder", mock.Anything, mock.Anything)

	status, _ := fx.service.Status(ctx, checkoutUser)
	assert.Equal(t, entity.CheckoutIdle, status.State)
	assert.Contains(t, status.Error, "stock changed")

	_, err = fx.ledger.FindByKey(ctx, entity.UserID(42), "key-9")
	assert.ErrorIs(t, err, repository.ErrCheckoutRecordNotFound)
}

func TestCheckoutService_SubmitAddress_SavesThenOrders(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.cart.EXPECT().GetCart(ctx, entity.UserID(42)).Return(filledCart(), nil)
	fx.profiles.EXPECT().CurrentProfile(ctx, checkoutUser).Return(entity.DefaultProfile(42), nil).Once()
	fx.gateway.EXPECT().UpsertProfile(ctx, entity.UserID(42), mock.MatchedBy(func(u *service.ProfileUpdate) bool {
		return *u.FullName == "Ada Lovelace" && *u.PhoneNumber == "+966500000000" && *u.City == "Riyadh"
	})).Return(completeProfile(), nil).Once()
	fx.notifier.EXPECT().ProfileChanged(ctx, checkoutUser).Return(nil).Once()
	fx.orders.EXPECT().CreateOrder(ctx, entity.UserID(42), mock.Anything).
		Return(&entity.OrderConfirmation{OrderID: 55}, nil).Once()
	fx.cart.EXPECT().ResetAfterOrder(ctx, entity.UserID(42)).Return(&entity.CartSnapshot{}, nil).Once()
	fx.publisher.EXPECT().PublishOrderPlaced(ctx, mock.Anything).Return(nil).Once()

	_, err := fx.service.Begin(ctx, checkoutUser, "")
	require.NoError(t, err)

	draft := validDraft()
	draft.PhoneNumber = "  +966500000000 "
	view, err := fx.service.SubmitAddress(ctx, checkoutUser, draft)

	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutConfirmed, view.State)
	assert.Equal(t, int64(55), view.Confirmation.OrderID)
}

func TestCheckoutService_SubmitAddress_ValidationFails(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.cart.EXPECT().GetCart(ctx, entity.UserID(42)).Return(filledCart(), nil)
	fx.profiles.EXPECT().CurrentProfile(ctx, checkoutUser).Return(entity.DefaultProfile(42), nil)

	_, err := fx.service.Begin(ctx, checkoutUser, "")
	require.NoError(t, err)

	draft := validDraft()
	draft.PhoneNumber = "   "
	_, err = fx.service.SubmitAddress(ctx, checkoutUser, draft)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Contains(t, err.Error(), "phoneNumber is required")

	status, _ := fx.service.Status(ctx, checkoutUser)
	assert.Equal(t, entity.CheckoutAddressCollection, status.State)
	assert.Contains(t, status.Error, "phoneNumber")
}

func TestCheckoutService_SubmitAddress_SaveFailsStaysOnForm(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.cart.EXPECT().GetCart(ctx, entity.UserID(42)).Return(filledCart(), nil)
	fx.profiles.EXPECT().CurrentProfile(ctx, checkoutUser).Return(entity.DefaultProfile(42), nil)
	fx.gateway.EXPECT().UpsertProfile(ctx, entity.UserID(42), mock.Anything).Return(nil, errors.New("db down")).Once()

	_, err := fx.service.Begin(ctx, checkoutUser, "")
	require.NoError(t, err)

	_, err = fx.service.SubmitAddress(ctx, checkoutUser, validDraft())

	assert.True(t, errors.Is(err, domainerrors.ErrProfileSaveFailed))
	fx.orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)

	status, _ := fx.service.Status(ctx, checkoutUser)
	assert.Equal(t, entity.CheckoutAddressCollection, status.State)
	assert.Equal(t, "Ada Lovelace", status.Draft.FullName)
}

// Closing the form while the profile is being saved ends the flow: the save
// completes but no order is placed.
func TestCheckoutService_CancelDuringProfileSave(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	entered := make(chan struct{})
	release := make(chan struct{})

	fx.cart.EXPECT().GetCart(ctx, entity.UserID(42)).Return(filledCart(), nil)
	fx.profiles.EXPECT().CurrentProfile(ctx, checkoutUser).Return(entity.DefaultProfile(42), nil).Once()
	fx.gateway.EXPECT().UpsertProfile(ctx, entity.UserID(42), mock.Anything).
		RunAndReturn(func(context.Context, entity.UserID, *service.ProfileUpdate) (*entity.Profile, error) {
			close(entered)
			<-release

			return completeProfile(), nil
		}).Once()
	fx.notifier.EXPECT().ProfileChanged(ctx, checkoutUser).Return(nil).Once()

	_, err := fx.service.Begin(ctx, checkoutUser, "")
	require.NoError(t, err)

	done := make(chan *usecase.CheckoutView, 1)
	go func() {
		view, submitErr := fx.service.SubmitAddress(ctx, checkoutUser, validDraft())
		assert.NoError(t, submitErr)
		done <- view
	}()

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("profile was never saved")
	}

	cancelled, err := fx.service.Cancel(ctx, checkoutUser)
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutIdle, cancelled.State)
	assert.Nil(t, cancelled.Draft)

	close(release)
	view := <-done
	require.NotNil(t, view)
	assert.Equal(t, entity.CheckoutIdle, view.State)
	assert.Nil(t, view.Confirmation)

	status, err := fx.service.Status(ctx, checkoutUser)
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutIdle, status.State)
}

func TestCheckoutService_SubmitAddress_NotCollecting(t *testing.T) {
	fx := createTestCheckoutService(t)

	_, err := fx.service.SubmitAddress(context.Background(), checkoutUser, validDraft())

	assert.True(t, errors.Is(err, domainerrors.ErrCheckoutNotCollecting))
}

func TestCheckoutService_UpdateDraftField(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	_, err := fx.service.UpdateDraftField(ctx, checkoutUser, entity.DraftFieldCity, "Jeddah")
	assert.True(t, errors.Is(err, domainerrors.ErrCheckoutNotCollecting))

	fx.cart.EXPECT().GetCart(ctx, entity.UserID(42)).Return(filledCart(), nil)
	fx.profiles.EXPECT().CurrentProfile(ctx, checkoutUser).Return(entity.DefaultProfile(42), nil)
	_, err = fx.service.Begin(ctx, checkoutUser, "")
	require.NoError(t, err)

	view, err := fx.service.UpdateDraftField(ctx, checkoutUser, entity.DraftFieldCity, "Jeddah")
	require.NoError(t, err)
	assert.Equal(t, "Jeddah", view.Draft.City)

	_, err = fx.service.UpdateDraftField(ctx, checkoutUser, "zipCode", "12345")
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownDraftField))
}

func TestCheckoutService_CancelDiscardsDraft(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.cart.EXPECT().GetCart(ctx, entity.UserID(42)).Return(filledCart(), nil)
	fx.profiles.EXPECT().CurrentProfile(ctx, checkoutUser).Return(entity.DefaultProfile(42), nil)

	_, err := fx.service.Begin(ctx, checkoutUser, "")
	require.NoError(t, err)

	view, err := fx.service.Cancel(ctx, checkoutUser)

	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutIdle, view.State)
	assert.Nil(t, view.Draft)
	assert.Empty(t, view.IdempotencyKey)
}

func TestCheckoutService_Sweep(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	_, err := fx.service.Status(ctx, checkoutUser)
	require.NoError(t, err)

	assert.Equal(t, 1, fx.service.Sweep(time.Now().Add(time.Minute)))
	assert.Equal(t, 0, fx.service.Sweep(time.Now().Add(time.Minute)))
}
