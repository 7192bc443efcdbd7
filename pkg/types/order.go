package types

// Order statuses. A row in StatusCart is a cart line item, not a placed
// order; the same table serves both, distinguished purely by status.
const (
	StatusCart      = "cart"
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusShipping  = "shipping"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// validStatuses is the set of recognized order status values.
var validStatuses = map[string]bool{
	StatusCart:      true,
	StatusPending:   true,
	StatusConfirmed: true,
	StatusShipping:  true,
	StatusCompleted: true,
	StatusCancelled: true,
}

// statusSuccessor maps each status to its forward transition in the order
// lifecycle. Cancelled is handled separately: it is reachable from any
// non-terminal status.
var statusSuccessor = map[string]string{
	StatusCart:      StatusPending,
	StatusPending:   StatusConfirmed,
	StatusConfirmed: StatusShipping,
	StatusShipping:  StatusCompleted,
}

// Order is either a cart line (StatusCart) or a placed order. TotalPrice is
// nil until checkout computes it.
type Order struct {
	ID         int64    `json:"id"`
	Status     string   `json:"status"`
	Qty        int64    `json:"qty"`
	TotalPrice *float64 `json:"totalPrice"`
	ProductID  int64    `json:"productId"`
	UserID     int64    `json:"userId"`
}

// ValidStatus reports whether s is a recognized order status.
func ValidStatus(s string) bool { return validStatuses[s] }

// CanTransition reports whether an order may move from one status to
// another. The lifecycle is linear (cart, pending, confirmed, shipping,
// completed); cancelled is reachable from any non-terminal status. Setting
// the current status again is allowed, except on the terminal statuses,
// which admit no moves at all.
func CanTransition(from, to string) bool {
	if !validStatuses[from] || !validStatuses[to] {
		return false
	}
	if from == StatusCompleted || from == StatusCancelled {
		return false
	}
	if from == to {
		return true
	}
	if to == StatusCancelled {
		return true
	}
	return statusSuccessor[from] == to
}

// CartItem is a cart row joined with the product it references, the shape
// the cart view renders.
type CartItem struct {
	OrderID     int64   `json:"orderId"`
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Qty         int64   `json:"qty"`
}

// Subtotal returns the line total for the cart item.
func (c CartItem) Subtotal() float64 { return c.Price * float64(c.Qty) }
