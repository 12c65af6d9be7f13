package order

// CreateOrderLine is one cart selection in a create request.
// swagger:model CreateOrderLine
type CreateOrderLine struct {
	ItemID   int64 `json:"item_id" example:"3"`
	Quantity int   `json:"quantity" example:"2"`
	IsSpicy  bool  `json:"is_spicy" example:"true"`
}

// CreateOrderRequest payload for order creation.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	CustomerName string            `json:"customer_name" example:"Aling Nena"`
	Lines        []CreateOrderLine `json:"lines"`
}

// UpdateStatusRequest payload for a status change.
// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	Status string `json:"status" example:"preparing"`
}
