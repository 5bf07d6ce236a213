// Command storefront-demo walks one user through browsing, cart, wishlist
// and checkout against a data directory.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/app"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/logging"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/store"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/validation"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/wishlist"
)

func main() {
	dataDir := flag.String("data", "data", "directory holding products.json, carts/, wishlists/ and orders.json")
	memory := flag.Bool("memory", false, "use a throwaway in-memory store seeded with sample products")
	logLevel := flag.String("log-level", "warn", "log level")
	flag.Parse()

	logger := logging.NewTo(os.Stderr, *logLevel, "console")
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	var backend store.Backend = store.NewFileStore(*dataDir)
	if *memory {
		mem := store.NewMemoryStore()
		if err := store.Write(ctx, mem, store.ProductsKey, sampleProducts); err != nil {
			logger.Fatal("seed products", zap.Error(err))
		}
		backend = mem
	}

	sf := app.New(backend, nil, logger, nil)
	if err := run(ctx, os.Stdin, os.Stdout, sf); err != nil {
		logger.Fatal("demo failed", zap.Error(err))
	}
}

var sampleProducts = []catalog.Product{
	{ID: "1", Name: "Trail Running Shoe", Category: "Shoes", Price: 89.9, ImageURL: "/images/trail-shoe.png"},
	{ID: "2", Name: "Merino Wool Socks", Category: "Socks", Price: 14.5, ImageURL: "/images/merino-socks.png"},
	{ID: "3", Name: "Packable Rain Shell", Category: "Jackets", Price: 120, ImageURL: "/images/rain-shell.png"},
}

type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// askInt reports ok=false when the answer is not a number.
func (p *prompter) askInt(question string) (int, bool, error) {
	answer, err := p.ask(question)
	if err != nil {
		return 0, false, err
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, false, nil
	}
	return n, true, nil
}

func (p *prompter) choose(question string, products []catalog.Product) (catalog.Product, bool, error) {
	n, ok, err := p.askInt(question)
	if err != nil || !ok {
		if err == nil {
			fmt.Fprintln(p.out, "Please enter a valid number.")
		}
		return catalog.Product{}, false, err
	}
	if n < 1 || n > len(products) {
		fmt.Fprintln(p.out, "Invalid choice.")
		return catalog.Product{}, false, nil
	}
	return products[n-1], true, nil
}

func run(ctx context.Context, in io.Reader, out io.Writer, sf *app.Storefront) error {
	p := &prompter{in: bufio.NewScanner(in), out: out}

	userID, err := p.ask("Enter user ID (e.g. 'maria'): ")
	if err != nil {
		return err
	}

	products, err := sf.Catalog.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}
	fmt.Fprintln(out, "\nAvailable products:")
	for i, prod := range products {
		fmt.Fprintf(out, "%d. %s - $%v\n", i+1, prod.Name, prod.Price)
	}

	if err := addToCart(ctx, p, sf, userID, products); err != nil {
		return err
	}

	c, err := sf.Carts.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("get cart: %w", err)
	}
	fmt.Fprintf(out, "\nCart contents for '%s':\n", userID)
	for _, it := range c {
		fmt.Fprintf(out, "- %s (x%d)\n", it.Name, it.Quantity)
	}

	if err := addToWishlist(ctx, p, sf, userID, products); err != nil {
		return err
	}

	items, err := sf.Wishlist.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("get wishlist: %w", err)
	}
	fmt.Fprintf(out, "\nWishlist for '%s':\n", userID)
	for _, it := range items {
		fmt.Fprintf(out, "- %s\n", wishlistName(it))
	}

	fmt.Fprintf(out, "\nPlacing order for '%s'\n", userID)
	res, err := sf.Orders.PlaceOrder(ctx, userID, nil, 0)
	if err != nil {
		return fmt.Errorf("place order: %w", err)
	}
	if !res.Placed() {
		fmt.Fprintln(out, "No items in cart to place an order.")
		return nil
	}
	fmt.Fprintf(out, "Order placed! ID: %s, Total: $%v\n", res.Order.OrderID, res.Order.TotalPrice)
	return nil
}

func addToCart(ctx context.Context, p *prompter, sf *app.Storefront, userID string, products []catalog.Product) error {
	prod, ok, err := p.choose("\nEnter the number of the product to add to cart: ", products)
	if err != nil || !ok {
		return err
	}

	qty, ok, err := p.askInt(fmt.Sprintf("Enter quantity for '%s': ", prod.Name))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(p.out, "Please enter a valid number.")
		return nil
	}

	fmt.Fprintf(p.out, "\nAdding %d x %s to cart.\n", qty, prod.Name)
	price := prod.Price
	_, err = sf.Carts.AddItem(ctx, userID, cart.ProductInput{
		ID:       prod.ID,
		Name:     prod.Name,
		Category: prod.Category,
		Price:    &price,
		ImageURL: prod.ImageURL,
		Quantity: &qty,
	})
	var verr *validation.Error
	if errors.As(err, &verr) {
		fmt.Fprintf(p.out, "Could not add to cart: %v\n", verr)
		return nil
	}
	if err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}
	return nil
}

func addToWishlist(ctx context.Context, p *prompter, sf *app.Storefront, userID string, products []catalog.Product) error {
	prod, ok, err := p.choose("\nEnter the number of the product to add to wishlist: ", products)
	if err != nil || !ok {
		return err
	}

	fmt.Fprintf(p.out, "\nAdding to wishlist: %s\n", prod.Name)
	item, err := wishlist.NewItem(prod)
	if err != nil {
		return err
	}
	if _, err := sf.Wishlist.AddItem(ctx, userID, item); err != nil {
		return fmt.Errorf("add to wishlist: %w", err)
	}
	return nil
}

func wishlistName(it wishlist.Item) string {
	var head struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(it.Raw(), &head); err != nil || head.Name == "" {
		return it.ID
	}
	return head.Name
}
