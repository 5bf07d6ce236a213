package store

import (
	"fmt"
	"path"
	"strings"
)

const (
	ProductsKey = "products.json"
	OrdersKey   = "orders.json"
	PromosKey   = "promo_codes.json"
)

// CartKey names the cart document of one user.
func CartKey(userID string) (string, error) {
	return userKey("carts", userID, "_cart.json")
}

// WishlistKey names the wishlist document of one user.
func WishlistKey(userID string) (string, error) {
	return userKey("wishlists", userID, "_wishlist.json")
}

// UserID returns the canonical form of a user id: surrounding whitespace
// trimmed. Ids that cannot name a document are rejected with ErrInvalidKey.
func UserID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return "", fmt.Errorf("%w: user id %q", ErrInvalidKey, raw)
	}
	return id, nil
}

func userKey(dir, userID, suffix string) (string, error) {
	id, err := UserID(userID)
	if err != nil {
		return "", err
	}
	return dir + "/" + id + suffix, nil
}

// ValidateKey rejects keys that are empty, absolute or that would resolve
// outside the store root.
func ValidateKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, `\`) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if path.Clean(key) != key {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	for _, seg := range strings.Split(key, "/") {
		if seg == ".." {
			return fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}
	return nil
}
