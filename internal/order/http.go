package order

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"MiniOrders/pkg/kit"
)

const (
	maxBodyBytes = 1 << 20
	canonicalLen = 36
)

type Server struct {
	Store Store
	Log   *zap.Logger
}

func (s *Server) CreateHandler() http.HandlerFunc       { return s.create }
func (s *Server) ListHandler() http.HandlerFunc         { return s.list }
func (s *Server) GetHandler() http.HandlerFunc          { return s.get }
func (s *Server) UpdateStatusHandler() http.HandlerFunc { return s.updateStatus }
func (s *Server) DeleteHandler() http.HandlerFunc       { return s.delete }

// createOrderReq is the wire shape of a create body. Pointers tell an
// absent or null value apart from an empty one.
type createOrderReq struct {
	Customer *string   `json:"customer"`
	Items    []*string `json:"items"`
}

func (req createOrderReq) dto() (CreateOrderDto, error) {
	if req.Customer == nil {
		return CreateOrderDto{}, BadRequest("missing field `customer`")
	}
	if req.Items == nil {
		return CreateOrderDto{}, BadRequest("missing field `items`")
	}

	items := make([]string, len(req.Items))
	for i, it := range req.Items {
		if it == nil {
			return CreateOrderDto{}, BadRequest(fmt.Sprintf("items[%d]: invalid type: null, expected a string", i))
		}
		items[i] = *it
	}
	return CreateOrderDto{Customer: *req.Customer, Items: items}, nil
}

type updateStatusReq struct {
	Status *string `json:"status"`
}

func (req updateStatusReq) dto() (UpdateStatusDto, error) {
	if req.Status == nil {
		return UpdateStatusDto{}, BadRequest("missing field `status`")
	}
	return UpdateStatusDto{Status: *req.Status}, nil
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var req createOrderReq
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	dto, err := req.dto()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	o, err := s.Store.Create(r.Context(), dto)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, o)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	orders, err := s.Store.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, orders)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	o, err := s.Store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, o)
}

func (s *Server) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req updateStatusReq
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	dto, err := req.dto()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	o, err := s.Store.UpdateStatus(r.Context(), id, dto)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, o)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.Store.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// orderID accepts only the canonical 8-4-4-4-12 form, in either case.
func orderID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	if len(raw) != canonicalLen {
		return uuid.Nil, BadRequest("invalid id")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, BadRequest("invalid id")
	}
	return id, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return BadRequest(err.Error())
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return BadRequest("extra data after json object")
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return BadRequest("invalid type: null, expected an object")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return BadRequest(err.Error())
	}
	return nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	e := AsError(err)
	if e.Kind == KindInternal && s.Log != nil {
		s.Log.Error("request failed",
			zap.Error(err),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	}
	kit.WriteJSON(w, e.StatusCode(), e.Body())
}

