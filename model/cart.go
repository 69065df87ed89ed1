package model

// CartItems maps productID -> size -> quantity. One instance exists per
// shopping session; zero-quantity entries are removed rather than stored.
type CartItems map[string]map[string]int64

// Clone returns a deep copy so snapshots survive later cart mutations.
func (c CartItems) Clone() CartItems {
	out := make(CartItems, len(c))
	for productID, sizes := range c {
		cp := make(map[string]int64, len(sizes))
		for size, qty := range sizes {
			cp[size] = qty
		}
		out[productID] = cp
	}
	return out
}

type CartAddRequest struct {
	ItemID string `json:"itemId" validate:"required"`
	Size   string `json:"size"`
}

type CartUpdateRequest struct {
	ItemID   string `json:"itemId" validate:"required"`
	Size     string `json:"size"`
	Quantity int64  `json:"quantity" validate:"gte=0"`
}

type CartResponse struct {
	Success  bool      `json:"success"`
	CartData CartItems `json:"cartData"`
}

type CartTotalResponse struct {
	Success bool    `json:"success"`
	Amount  float64 `json:"amount"`
	Count   int64   `json:"count"`
}
