package main

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

func runCart(ctx context.Context, flags *commonFlags) error {
	env, err := newEnv(flags)
	if err != nil {
		return err
	}

	snap, err := env.cart.FetchCart(ctx, env.user.ID)
	if err != nil {
		return err
	}
	printCart(snap)

	return nil
}

func runAdd(ctx context.Context, flags *addFlags) error {
	if *flags.productID <= 0 {
		return errors.New("--product is required")
	}
	price, err := decimal.NewFromString(*flags.price)
	if err != nil {
		return errors.Wrap(err, "invalid --price")
	}

	env, err := newEnv(flags.common)
	if err != nil {
		return err
	}

	product := &entity.Product{
		ID:    entity.ProductID(*flags.productID),
		Name:  *flags.name,
		Price: price,
	}

	snap, err := env.cart.AddToCart(ctx, env.user.ID, product)

	return reportMutation(snap, err)
}

func runLineMutation(ctx context.Context, name string, flags *productFlags) error {
	if *flags.productID <= 0 {
		return errors.New("--product is required")
	}

	env, err := newEnv(flags.common)
	if err != nil {
		return err
	}

	// The engine only mutates lines it has seen.
	if _, err := env.cart.FetchCart(ctx, env.user.ID); err != nil {
		return err
	}

	productID := entity.ProductID(*flags.productID)
	var snap *entity.CartSnapshot
	switch name {
	case "inc":
		snap, err = env.cart.IncreaseQuantity(ctx, env.user.ID, productID)
	case "dec":
		snap, err = env.cart.DecreaseQuantity(ctx, env.user.ID, productID)
	default:
		snap, err = env.cart.RemoveItem(ctx, env.user.ID, productID)
	}

	return reportMutation(snap, err)
}

func runCheckout(ctx context.Context, flags *checkoutFlags) error {
	env, err := newEnv(flags.common)
	if err != nil {
		return err
	}

	view, err := env.checkout.Begin(ctx, env.user, *flags.key)
	if err != nil {
		return err
	}

	if view.State == entity.CheckoutAddressCollection {
		draft := overlayDraft(view.Draft, flags)
		fmt.Println("Profile incomplete, submitting delivery details")

		view, err = env.checkout.SubmitAddress(ctx, env.user, draft)
		if err != nil {
			return err
		}
	}

	printCheckout(view)

	return nil
}

func runProfile(ctx context.Context, flags *commonFlags) error {
	env, err := newEnv(flags)
	if err != nil {
		return err
	}

	profile, err := env.session.CurrentProfile(ctx, env.user)
	if err != nil {
		return err
	}

	city := "(none)"
	if profile.HasCity() {
		city = fmt.Sprintf("%s (#%d)", profile.SelectedCityName, *profile.SelectedCityID)
	}
	fmt.Printf("Selected city: %s\n", city)
	fmt.Printf("Name:          %s\n", profile.FullName)
	fmt.Printf("Phone:         %s\n", profile.PhoneNumber)
	fmt.Printf("Address:       %s %s\n", profile.AddressLine1, profile.AddressLine2)
	fmt.Printf("Delivery city: %s\n", profile.DeliveryCity())
	fmt.Printf("Complete:      %t\n", profile.IsComplete())

	return nil
}

// overlayDraft applies the non-empty flags over the prefilled form.
func overlayDraft(prefilled *entity.AddressDraft, flags *checkoutFlags) *entity.AddressDraft {
	draft := &entity.AddressDraft{}
	if prefilled != nil {
		*draft = *prefilled
	}

	for field, value := range map[string]string{
		entity.DraftFieldFullName:     *flags.fullName,
		entity.DraftFieldPhoneNumber:  *flags.phoneNumber,
		entity.DraftFieldAddressLine1: *flags.addressLine1,
		entity.DraftFieldAddressLine2: *flags.addressLine2,
		entity.DraftFieldCity:         *flags.city,
	} {
		if value != "" {
			draft.SetField(field, value)
		}
	}

	return draft
}

// reportMutation prints the cart after a mutation. A failed mutation still
// prints the refetched cart before returning the alert.
func reportMutation(snap *entity.CartSnapshot, err error) error {
	if snap != nil {
		printCart(snap)
	}
	if err != nil {
		return errors.New(domainerrors.AlertMessage(err))
	}

	return nil
}

func printCart(snap *entity.CartSnapshot) {
	if snap.Error != "" {
		fmt.Printf("! %s\n", snap.Error)
	}
	if snap.IsEmpty() {
		fmt.Println("Cart is empty")

		return
	}

	for _, line := range snap.Items {
		name := line.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Printf("  #%-6d %-32s x%-3d %10s %10s  %s\n",
			line.ProductID, name, line.Quantity,
			line.UnitPrice().StringFixed(2), line.Subtotal().StringFixed(2), line.Status)
	}
	fmt.Println(strings.Repeat("-", 72))
	fmt.Printf("  %d items, total %s\n", snap.ItemCount, snap.Total.StringFixed(2))
}

func printCheckout(view *usecase.CheckoutView) {
	switch view.State {
	case entity.CheckoutConfirmed:
		fmt.Printf("Order #%d placed\n", view.Confirmation.OrderID)
		if view.Confirmation.Message != "" {
			fmt.Println(view.Confirmation.Message)
		}
		fmt.Printf("Idempotency key: %s\n", view.IdempotencyKey)
	default:
		fmt.Printf("Checkout stopped in state %s\n", view.State)
		if view.Error != "" {
			fmt.Printf("! %s\n", view.Error)
		}
	}
}
