package order

import "github.com/google/uuid"

// Status is the lifecycle state of an order. Its wire form is the lowercase name.
type Status string

const (
	StatusPending   Status = "pending"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

var statuses = map[string]Status{
	string(StatusPending):   StatusPending,
	string(StatusShipped):   StatusShipped,
	string(StatusDelivered): StatusDelivered,
	string(StatusCancelled): StatusCancelled,
}

// Valid reports whether s is exactly one of the four lowercase names, with
// no surrounding whitespace.
func (s Status) Valid() bool {
	_, ok := statuses[string(s)]
	return ok
}

func (s Status) String() string { return string(s) }

type Order struct {
	ID       uuid.UUID
	Customer string
	Items    []string
	Status   Status
}

func (o Order) clone() Order {
	items := make([]string, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
