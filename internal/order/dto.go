package order

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type CreateOrderDto struct {
	Customer string   `json:"customer" validate:"min=1"`
	Items    []string `json:"items" validate:"min=1"`
}

type UpdateStatusDto struct {
	Status string `json:"status" validate:"order_status"`
}

type OrderResponse struct {
	ID       uuid.UUID `json:"id"`
	Customer string    `json:"customer"`
	Items    []string  `json:"items"`
	Status   Status    `json:"status"`
}

func NewOrderResponse(o Order) OrderResponse {
	o = o.clone()
	return OrderResponse{
		ID:       o.ID,
		Customer: o.Customer,
		Items:    o.Items,
		Status:   o.Status,
	}
}

// messages keys are "<json field>.<validate tag>".
var messages = map[string]string{
	"customer.min":        "customer name must not be empty",
	"items.min":           "at least one item required",
	"status.order_status": "invalid status",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("order_status", func(fl validator.FieldLevel) bool {
		return Status(fl.Field().String()).Valid()
	}); err != nil {
		panic(err)
	}
	return v
}

func (d CreateOrderDto) Validate() error { return validateStruct(d) }

func (d UpdateStatusDto) Validate() error { return validateStruct(d) }

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Internal(err)
	}

	fields := FieldErrors{}
	for _, fe := range verrs {
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fe.Error()
		}
		fields.Add(fe.Field(), msg)
	}
	return Validation(fields)
}
