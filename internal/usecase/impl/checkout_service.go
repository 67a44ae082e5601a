package impl

import (
	"context"
	"log/slog"
	"reflect"
	"strings"
	"sync"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// checkoutFlow is the checkout state of one user. Like the cart engine, its
// mutex is never held across a backend call; profile_check, order_creation
// and submitting mark the flow as busy instead. generation changes on every
// reset so a profile save that returns after a cancel can tell.
type checkoutFlow struct {
	mu             sync.Mutex
	state          entity.CheckoutState
	draft          *entity.AddressDraft
	lastErr        string
	confirmation   *entity.OrderConfirmation
	idempotencyKey string
	submitting     bool
	generation     uint64
}

func newCheckoutFlow(entity.UserID) *checkoutFlow {
	return &checkoutFlow{state: entity.CheckoutIdle}
}

func (f *checkoutFlow) busyLocked() bool {
	return f.submitting || f.placingLocked()
}

// placingLocked reports a Begin or an order request in flight. Unlike a
// profile save, neither can be cancelled.
func (f *checkoutFlow) placingLocked() bool {
	return f.state == entity.CheckoutProfileCheck ||
		f.state == entity.CheckoutOrderCreation
}

// inFlight keeps the flow from being swept while a request still needs it.
func (f *checkoutFlow) inFlight() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.busyLocked()
}

func (f *checkoutFlow) viewLocked() *usecase.CheckoutView {
	view := &usecase.CheckoutView{
		State:          f.state,
		Draft:          f.draft.Clone(),
		Error:          f.lastErr,
		IdempotencyKey: f.idempotencyKey,
	}
	if f.confirmation != nil {
		confirmation := *f.confirmation
		view.Confirmation = &confirmation
	}

	return view
}

func (f *checkoutFlow) view() *usecase.CheckoutView {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.viewLocked()
}

// resetLocked returns the flow to idle and drops the draft.
func (f *checkoutFlow) resetLocked() {
	f.state = entity.CheckoutIdle
	f.draft = nil
	f.lastErr = ""
	f.confirmation = nil
	f.idempotencyKey = ""
	f.submitting = false
	f.generation++
}

// failLocked returns the flow to idle keeping the error for display.
func (f *checkoutFlow) failLocked(err error) {
	f.resetLocked()
	f.lastErr = domainerrors.AlertMessage(err)
}

func (f *checkoutFlow) confirmLocked(key string, confirmation *entity.OrderConfirmation) {
	f.state = entity.CheckoutConfirmed
	f.draft = nil
	f.lastErr = ""
	f.idempotencyKey = key
	f.submitting = false
	if confirmation != nil {
		stored := *confirmation
		f.confirmation = &stored
	}
}

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	cart      usecase.CheckoutCart
	profiles  usecase.ProfileSource
	notifier  usecase.ProfileNotifier
	gateway   service.ProfileGateway
	orders    service.OrderGateway
	ledger    repository.CheckoutRepository
	publisher service.EventPublisher
	validate  *validator.Validate
	flows     *registry[*checkoutFlow]
	logger    *slog.Logger
	now       func() time.Time
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	cart usecase.CheckoutCart,
	profiles usecase.ProfileSource,
	notifier usecase.ProfileNotifier,
	gateway service.ProfileGateway,
	orders service.OrderGateway,
	ledger repository.CheckoutRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return newCheckoutService(cart, profiles, notifier, gateway, orders, ledger, publisher, logger)
}

func newCheckoutService(
	cart usecase.CheckoutCart,
	profiles usecase.ProfileSource,
	notifier usecase.ProfileNotifier,
	gateway service.ProfileGateway,
	orders service.OrderGateway,
	ledger repository.CheckoutRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) *checkoutService {
	return &checkoutService{
		cart:      cart,
		profiles:  profiles,
		notifier:  notifier,
		gateway:   gateway,
		orders:    orders,
		ledger:    ledger,
		publisher: publisher,
		validate:  newDraftValidator(),
		flows:     newRegistry(newCheckoutFlow),
		logger:    logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Begin starts checkout: entry guard, profile check, then either the address
// form or the order.
func (srv *checkoutService) Begin(ctx context.Context, user *entity.User, idempotencyKey string) (*usecase.CheckoutView, error) {
	if user == nil || user.ID.IsZero() {
		return nil, domainerrors.ErrUserRequired
	}

	flow := srv.flows.get(user.ID)

	flow.mu.Lock()
	if flow.busyLocked() {
		flow.mu.Unlock()

		return nil, domainerrors.ErrCheckoutInProgress
	}
	if flow.state == entity.CheckoutAddressCollection {
		view := flow.viewLocked()
		flow.mu.Unlock()

		return view, nil
	}
	prevState, prevErr, prevConfirmation, prevKey := flow.state, flow.lastErr, flow.confirmation, flow.idempotencyKey
	flow.state = entity.CheckoutProfileCheck
	flow.mu.Unlock()

	// A rejected entry leaves the flow as it was.
	restore := func() {
		flow.mu.Lock()
		flow.state = prevState
		flow.lastErr = prevErr
		flow.confirmation = prevConfirmation
		flow.idempotencyKey = prevKey
		flow.mu.Unlock()
	}

	key := strings.TrimSpace(idempotencyKey)
	if key != "" {
		record, err := srv.ledger.FindByKey(ctx, user.ID, key)
		switch {
		case err == nil && record.Status == entity.CheckoutRecordCompleted:
			srv.log(ctx).Info("Replaying completed checkout", slog.String("user_id", user.ID.String()), slog.String("idempotency_key", key))
			flow.mu.Lock()
			flow.confirmLocked(key, record.Confirmation)
			view := flow.viewLocked()
			flow.mu.Unlock()

			return view, nil
		case err == nil:
			restore()

			return nil, domainerrors.ErrCheckoutInProgress
		case !errors.Is(err, repository.ErrCheckoutRecordNotFound):
			restore()
			srv.log(ctx).Error("Failed to read checkout ledger", slog.Any("error", err), slog.String("idempotency_key", key))

			return nil, domainerrors.NewLedgerExecuteError(err, "find "+key)
		}
	} else {
		key = uuid.NewString()
	}

	cart, err := srv.cart.GetCart(ctx, user.ID)
	if err != nil {
		restore()

		return nil, errors.Wrap(err, "failed to read cart")
	}
	if cart.IsEmpty() {
		restore()

		return nil, domainerrors.ErrCartEmpty
	}

	flow.mu.Lock()
	flow.draft = nil
	flow.lastErr = ""
	flow.confirmation = nil
	flow.idempotencyKey = key
	flow.mu.Unlock()

	profile, err := srv.profiles.CurrentProfile(ctx, user)
	if err != nil {
		flow.mu.Lock()
		flow.failLocked(err)
		flow.mu.Unlock()

		return nil, errors.Wrap(err, "failed to check profile")
	}

	if profile.IsComplete() {
		srv.log(ctx).Debug("Profile complete, creating order", slog.String("user_id", user.ID.String()))

		return srv.createOrder(ctx, user, flow, key)
	}

	flow.mu.Lock()
	flow.state = entity.CheckoutAddressCollection
	flow.draft = entity.NewAddressDraft(user, profile)
	view := flow.viewLocked()
	flow.mu.Unlock()

	srv.log(ctx).Debug("Profile incomplete, collecting address", slog.String("user_id", user.ID.String()))

	return view, nil
}

// Status returns the current checkout view.
func (srv *checkoutService) Status(_ context.Context, user *entity.User) (*usecase.CheckoutView, error) {
	if user == nil || user.ID.IsZero() {
		return nil, domainerrors.ErrUserRequired
	}

	return srv.flows.get(user.ID).view(), nil
}

// UpdateDraftField edits one field of the address form.
func (srv *checkoutService) UpdateDraftField(_ context.Context, user *entity.User, field, value string) (*usecase.CheckoutView, error) {
	if user == nil || user.ID.IsZero() {
		return nil, domainerrors.ErrUserRequired
	}

	flow := srv.flows.get(user.ID)
	flow.mu.Lock()
	defer flow.mu.Unlock()

	if flow.state != entity.CheckoutAddressCollection {
		return nil, domainerrors.ErrCheckoutNotCollecting
	}
	if flow.draft == nil {
		flow.draft = &entity.AddressDraft{}
	}
	if !flow.draft.SetField(field, value) {
		return nil, domainerrors.ErrUnknownDraftField.WithDetails(field)
	}

	return flow.viewLocked(), nil
}

// SubmitAddress validates and saves the draft, then places the order.
// A failed save keeps the flow in address collection.
func (srv *checkoutService) SubmitAddress(ctx context.Context, user *entity.User, draft *entity.AddressDraft) (*usecase.CheckoutView, error) {
	if user == nil || user.ID.IsZero() {
		return nil, domainerrors.ErrUserRequired
	}

	flow := srv.flows.get(user.ID)

	flow.mu.Lock()
	if flow.busyLocked() {
		flow.mu.Unlock()

		return nil, domainerrors.ErrCheckoutInProgress
	}
	if flow.state != entity.CheckoutAddressCollection {
		flow.mu.Unlock()

		return nil, domainerrors.ErrCheckoutNotCollecting
	}
	if draft != nil {
		flow.draft = draft.Clone()
	}
	if flow.draft == nil {
		flow.draft = &entity.AddressDraft{}
	}
	flow.draft.Normalize()
	submitted := flow.draft.Clone()
	key := flow.idempotencyKey
	generation := flow.generation

	if err := srv.validate.Struct(submitted); err != nil {
		validationErr := domainerrors.ErrValidationFailed.WithDetails(draftValidationMessage(err))
		flow.lastErr = domainerrors.AlertMessage(validationErr)
		flow.mu.Unlock()

		return nil, validationErr
	}
	flow.submitting = true
	flow.lastErr = ""
	flow.mu.Unlock()

	_, saveErr := srv.gateway.UpsertProfile(ctx, user.ID, service.ProfileUpdateFromDraft(submitted))
	if saveErr == nil {
		if err := srv.notifier.ProfileChanged(ctx, user); err != nil {
			srv.log(ctx).Warn("Profile refetch after save failed", slog.Any("error", err), slog.String("user_id", user.ID.String()))
		}
	}

	flow.mu.Lock()
	if flow.generation != generation {
		// Cancelled while saving: the profile keeps what was saved, no order.
		view := flow.viewLocked()
		flow.mu.Unlock()
		srv.log(ctx).Debug("Checkout cancelled during profile save", slog.String("user_id", user.ID.String()))

		return view, nil
	}
	flow.submitting = false
	if saveErr != nil {
		srv.log(ctx).Error("Failed to save delivery details", slog.Any("error", saveErr), slog.String("user_id", user.ID.String()))
		appErr := domainerrors.ErrProfileSaveFailed.WithDetails(domainerrors.UpstreamDetails(saveErr))
		flow.lastErr = domainerrors.AlertMessage(appErr)
		flow.mu.Unlock()

		return nil, errors.Wrap(appErr, "failed to save delivery details")
	}
	flow.state = entity.CheckoutOrderCreation
	flow.mu.Unlock()

	if key == "" {
		key = uuid.NewString()
	}

	return srv.createOrder(ctx, user, flow, key)
}

// Cancel aborts the flow and discards the draft. It may interrupt a profile
// save; an order in flight cannot be cancelled.
func (srv *checkoutService) Cancel(ctx context.Context, user *entity.User) (*usecase.CheckoutView, error) {
	if user == nil || user.ID.IsZero() {
		return nil, domainerrors.ErrUserRequired
	}

	flow := srv.flows.get(user.ID)
	flow.mu.Lock()
	defer flow.mu.Unlock()

	if flow.placingLocked() {
		return nil, domainerrors.ErrCheckoutInProgress
	}
	if flow.state != entity.CheckoutConfirmed {
		flow.resetLocked()
		srv.log(ctx).Debug("Checkout cancelled", slog.String("user_id", user.ID.String()))
	}

	return flow.viewLocked(), nil
}

// DismissConfirmation closes the confirmation and returns to idle.
func (srv *checkoutService) DismissConfirmation(_ context.Context, user *entity.User) (*usecase.CheckoutView, error) {
	if user == nil || user.ID.IsZero() {
		return nil, domainerrors.ErrUserRequired
	}

	flow := srv.flows.get(user.ID)
	flow.mu.Lock()
	defer flow.mu.Unlock()

	if flow.state == entity.CheckoutConfirmed {
		flow.resetLocked()
	}

	return flow.viewLocked(), nil
}

// Sweep drops checkout flows idle since olderThan.
func (srv *checkoutService) Sweep(olderThan time.Time) int {
	return srv.flows.sweep(olderThan)
}

// createOrder reserves the idempotency key, asks the backend for the order
// and settles the flow. The cart is reset only when the order exists.
func (srv *checkoutService) createOrder(ctx context.Context, user *entity.User, flow *checkoutFlow, key string) (*usecase.CheckoutView, error) {
	flow.mu.Lock()
	flow.state = entity.CheckoutOrderCreation
	flow.idempotencyKey = key
	flow.mu.Unlock()

	cart, err := srv.cart.GetCart(ctx, user.ID)
	if err != nil {
		srv.log(ctx).Warn("Cart unavailable before order", slog.Any("error", err), slog.String("user_id", user.ID.String()))
	}

	record := &entity.CheckoutRecord{
		IdempotencyKey: key,
		UserID:         user.ID,
		Status:         entity.CheckoutRecordPending,
	}
	if err := srv.ledger.Reserve(ctx, record); err != nil {
		return srv.reserveFailed(ctx, user, flow, key, err)
	}

	confirmation, err := srv.orders.CreateOrder(ctx, user.ID, key)
	if err != nil {
		if releaseErr := srv.ledger.Release(ctx, user.ID, key); releaseErr != nil {
			srv.log(ctx).Error("Failed to release checkout key", slog.Any("error", releaseErr), slog.String("idempotency_key", key))
		}
		srv.log(ctx).Error("Failed to create order", slog.Any("error", err), slog.String("user_id", user.ID.String()))
		orderErr := domainerrors.ErrOrderCreationFailed.WithDetails(domainerrors.UpstreamDetails(err))

		flow.mu.Lock()
		flow.failLocked(orderErr)
		flow.mu.Unlock()

		return nil, errors.Wrap(orderErr, "failed to create order")
	}

	if confirmation == nil {
		confirmation = &entity.OrderConfirmation{}
	}

	if err := srv.ledger.Complete(ctx, user.ID, key, confirmation); err != nil {
		srv.log(ctx).Error("Failed to complete checkout record", slog.Any("error", err), slog.String("idempotency_key", key))
	}

	flow.mu.Lock()
	flow.confirmLocked(key, confirmation)
	view := flow.viewLocked()
	flow.mu.Unlock()

	if _, err := srv.cart.ResetAfterOrder(ctx, user.ID); err != nil {
		srv.log(ctx).Warn("Failed to reset cart after order", slog.Any("error", err), slog.String("user_id", user.ID.String()))
	}

	srv.publishOrderPlaced(ctx, user, key, confirmation, cart)

	srv.log(ctx).Info("Order placed",
		slog.String("user_id", user.ID.String()),
		slog.Int64("order_id", confirmation.OrderID),
		slog.String("idempotency_key", key),
	)

	return view, nil
}

func (srv *checkoutService) reserveFailed(
	ctx context.Context,
	user *entity.User,
	flow *checkoutFlow,
	key string,
	err error,
) (*usecase.CheckoutView, error) {
	if errors.Is(err, repository.ErrDuplicateCheckoutKey) {
		record, findErr := srv.ledger.FindByKey(ctx, user.ID, key)
		if findErr == nil && record.Status == entity.CheckoutRecordCompleted {
			flow.mu.Lock()
			flow.confirmLocked(key, record.Confirmation)
			view := flow.viewLocked()
			flow.mu.Unlock()

			return view, nil
		}

		flow.mu.Lock()
		flow.failLocked(domainerrors.ErrCheckoutInProgress)
		flow.mu.Unlock()

		return nil, domainerrors.ErrCheckoutInProgress
	}

	srv.log(ctx).Error("Failed to reserve checkout key", slog.Any("error", err), slog.String("idempotency_key", key))
	ledgerErr := domainerrors.NewLedgerExecuteError(err, "reserve "+key)

	flow.mu.Lock()
	flow.failLocked(ledgerErr)
	flow.mu.Unlock()

	return nil, ledgerErr
}

func (srv *checkoutService) publishOrderPlaced(
	ctx context.Context,
	user *entity.User,
	key string,
	confirmation *entity.OrderConfirmation,
	cart *entity.CartSnapshot,
) {
	event := &service.OrderPlacedEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		EventID:        uuid.NewString(),
		OrderID:        confirmation.OrderID,
		UserID:         int64(user.ID),
		IdempotencyKey: key,
		PlacedAt:       srv.now().UTC(),
	}
	if cart != nil {
		event.ItemCount = cart.ItemCount
		event.Total = cart.Total.StringFixed(2)
	}

	if err := srv.publisher.PublishOrderPlaced(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order placed event", slog.Any("error", err), slog.Int64("order_id", confirmation.OrderID))
	}
}

func newDraftValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return validate
}

// draftValidationMessage lists the failing form fields, e.g. "phoneNumber is required".
func draftValidationMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "required":
			messages = append(messages, fieldErr.Field()+" is required")
		case "max":
			messages = append(messages, fieldErr.Field()+" must be at most "+fieldErr.Param()+" characters")
		default:
			messages = append(messages, fieldErr.Field()+" is invalid")
		}
	}

	return strings.Join(messages, "; ")
}
