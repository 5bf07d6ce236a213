package wishlist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Item is a product snapshot kept exactly as the client submitted it. Only
// the id is interpreted.
type Item struct {
	ID  string
	raw json.RawMessage
}

// NewItem snapshots any JSON-encodable product.
func NewItem(v any) (Item, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return Item{}, fmt.Errorf("encode wishlist item: %w", err)
	}
	var it Item
	if err := it.UnmarshalJSON(body); err != nil {
		return Item{}, err
	}
	return it, nil
}

func (it Item) MarshalJSON() ([]byte, error) {
	if len(it.raw) == 0 {
		return json.Marshal(map[string]string{"id": it.ID})
	}
	return it.raw, nil
}

func (it *Item) UnmarshalJSON(b []byte) error {
	var head struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return err
	}

	id, err := ParseID(head.ID)
	if err != nil {
		return err
	}

	it.ID = id
	it.raw = append(json.RawMessage(nil), b...)
	return nil
}

// Raw returns the stored JSON object.
func (it Item) Raw() json.RawMessage { return it.raw }

// ParseID reads a product id given as a JSON string or bare number. Numbers
// keep their literal text. null or absent yields "".
func ParseID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", errors.New("wishlist item id must be a string or number")
	}
	return n.String(), nil
}
