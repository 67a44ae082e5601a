package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - cart:     Print the server cart
// - add:      Add one unit of a product
// - inc/dec:  Change the quantity of a cart line by one
// - rm:       Remove a cart line
// - checkout: Place an order, filling the address form from flags when needed
// - profile:  Print the delivery profile

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := runSubcommand(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// commonFlags are accepted by every subcommand.
type commonFlags struct {
	backend *string
	userID  *int64
	verbose *bool
}

func addCommonFlags(cmd *flag.FlagSet) *commonFlags {
	return &commonFlags{
		backend: cmd.String("backend", "", "Backend base URL (defaults to the config file)"),
		userID:  cmd.Int64("user", 0, "Telegram user ID to act as"),
		verbose: cmd.Bool("v", false, "Log backend requests"),
	}
}

type productFlags struct {
	common    *commonFlags
	productID *int64
}

func newProductFlags(cmd *flag.FlagSet) *productFlags {
	return &productFlags{
		common:    addCommonFlags(cmd),
		productID: cmd.Int64("product", 0, "Product ID"),
	}
}

type addFlags struct {
	productFlags
	name  *string
	price *string
}

type checkoutFlags struct {
	common       *commonFlags
	key          *string
	fullName     *string
	phoneNumber  *string
	addressLine1 *string
	addressLine2 *string
	city         *string
}

func runSubcommand(ctx context.Context, name string, args []string) error {
	switch name {
	case "cart":
		cmd := flag.NewFlagSet("cart", flag.ExitOnError)
		common := addCommonFlags(cmd)
		if err := cmd.Parse(args); err != nil {
			return errors.Wrap(err, "failed to parse cart flags")
		}

		return runCart(ctx, common)
	case "add":
		cmd := flag.NewFlagSet("add", flag.ExitOnError)
		flags := &addFlags{
			productFlags: *newProductFlags(cmd),
			name:         cmd.String("name", "", "Product name shown until the cart refetches"),
			price:        cmd.String("price", "0", "Unit price shown until the cart refetches"),
		}
		if err := cmd.Parse(args); err != nil {
			return errors.Wrap(err, "failed to parse add flags")
		}

		return runAdd(ctx, flags)
	case "inc", "dec", "rm":
		cmd := flag.NewFlagSet(name, flag.ExitOnError)
		flags := newProductFlags(cmd)
		if err := cmd.Parse(args); err != nil {
			return errors.Wrapf(err, "failed to parse %s flags", name)
		}

		return runLineMutation(ctx, name, flags)
	case "checkout":
		cmd := flag.NewFlagSet("checkout", flag.ExitOnError)
		flags := &checkoutFlags{
			common:       addCommonFlags(cmd),
			key:          cmd.String("key", "", "Idempotency key, reuse it to retry safely"),
			fullName:     cmd.String("full-name", "", "Recipient name"),
			phoneNumber:  cmd.String("phone", "", "Recipient phone number"),
			addressLine1: cmd.String("address", "", "Address line 1"),
			addressLine2: cmd.String("address2", "", "Address line 2"),
			city:         cmd.String("city", "", "Delivery city"),
		}
		if err := cmd.Parse(args); err != nil {
			return errors.Wrap(err, "failed to parse checkout flags")
		}

		return runCheckout(ctx, flags)
	case "profile":
		cmd := flag.NewFlagSet("profile", flag.ExitOnError)
		common := addCommonFlags(cmd)
		if err := cmd.Parse(args); err != nil {
			return errors.Wrap(err, "failed to parse profile flags")
		}

		return runProfile(ctx, common)
	default:
		printUsage()

		return errors.Errorf("unknown subcommand %q", name)
	}
}

func printUsage() {
	fmt.Println("Usage: cartctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  cart        Print the server cart")
	fmt.Println("  add         Add one unit of a product")
	fmt.Println("  inc         Increase a cart line by one")
	fmt.Println("  dec         Decrease a cart line by one")
	fmt.Println("  rm          Remove a cart line")
	fmt.Println("  checkout    Place an order for the cart")
	fmt.Println("  profile     Print the delivery profile")
	fmt.Println("")
	fmt.Println("Use 'cartctl <command> -h' for more information about a command.")
}
