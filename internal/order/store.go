package order

import (
	"context"

	"github.com/google/uuid"
)

// Store holds orders keyed by id. Every method returns *Error on failure.
type Store interface {
	Create(ctx context.Context, dto CreateOrderDto) (OrderResponse, error)
	Get(ctx context.Context, id uuid.UUID) (OrderResponse, error)
	List(ctx context.Context) ([]OrderResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, dto UpdateStatusDto) (OrderResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) int
	Ping(ctx context.Context) error
}
