package order

import (
	"bytes"
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxIDAttempts = 3

var errIDExhausted = errors.New("could not allocate a unique order id")

type MemStore struct {
	mu  sync.RWMutex
	m   map[uuid.UUID]Order
	log *zap.Logger

	newID func() (uuid.UUID, error)
}

func NewMemStore(log *zap.Logger) *MemStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &MemStore{
		m:     map[uuid.UUID]Order{},
		log:   log,
		newID: uuid.NewRandom,
	}
}

func NewStore(log *zap.Logger) Store {
	return NewMemStore(log)
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Create(ctx context.Context, dto CreateOrderDto) (OrderResponse, error) {
	if err := dto.Validate(); err != nil {
		return OrderResponse{}, err
	}

	o := Order{
		Customer: dto.Customer,
		Items:    dto.Items,
		Status:   StatusPending,
	}.clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.freeID()
	if err != nil {
		s.log.Error("allocate order id", zap.Error(err))
		return OrderResponse{}, Internal(err)
	}
	o.ID = id
	s.m[id] = o

	s.log.Debug("order created", zap.Stringer("order_id", id), zap.String("customer", o.Customer))
	return NewOrderResponse(o), nil
}

// freeID must be called with the write lock held.
func (s *MemStore) freeID() (uuid.UUID, error) {
	for range maxIDAttempts {
		id, err := s.newID()
		if err != nil {
			return uuid.Nil, err
		}
		if _, taken := s.m[id]; !taken {
			return id, nil
		}
	}
	return uuid.Nil, errIDExhausted
}

func (s *MemStore) Get(ctx context.Context, id uuid.UUID) (OrderResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.m[id]
	if !ok {
		return OrderResponse{}, ErrNotFound()
	}
	return NewOrderResponse(o), nil
}

// List returns every order sorted by id.
func (s *MemStore) List(ctx context.Context) ([]OrderResponse, error) {
	s.mu.RLock()
	out := make([]OrderResponse, 0, len(s.m))
	for _, o := range s.m {
		out = append(out, NewOrderResponse(o))
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return bytes.Compare(out[i].ID[:], out[j].ID[:]) < 0 })
	return out, nil
}

func (s *MemStore) UpdateStatus(ctx context.Context, id uuid.UUID, dto UpdateStatusDto) (OrderResponse, error) {
	if err := dto.Validate(); err != nil {
		return OrderResponse{}, err
	}
	status := Status(dto.Status)

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.m[id]
	if !ok {
		return OrderResponse{}, ErrNotFound()
	}
	o.Status = status
	s.m[id] = o

	s.log.Debug("order status updated", zap.Stringer("order_id", id), zap.Stringer("status", status))
	return NewOrderResponse(o), nil
}

func (s *MemStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.m[id]; !ok {
		return ErrNotFound()
	}
	delete(s.m, id)

	s.log.Debug("order deleted", zap.Stringer("order_id", id))
	return nil
}

func (s *MemStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}
