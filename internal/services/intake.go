package services

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"

	"tienda/internal/models"
	"tienda/pkg/apperror"
)

// Keys of the mobile order form.
const (
	KeySupplier     = "proveedor"
	KeyProducts     = "productos"
	KeyName         = "nombre"
	KeyQuantity     = "cantidad"
	KeyPrice        = "precio"
	KeyDeliveryDate = "fecha_entrega"
)

var validate = validator.New()

// Payload is the untyped order form received from the mobile client.
type Payload map[string]any

// MobileResponse is the reply handed back to the mobile client.
type MobileResponse struct {
	Success   bool   `json:"exito"`
	Message   string `json:"mensaje"`
	OrderID   string `json:"pedido_id,omitempty"`
	Timestamp string `json:"timestamp"`
}

// ValidateRaw checks the shape of payload without building anything.
// An empty product list is accepted.
func ValidateRaw(payload Payload) error {
	supplier, ok := payload[KeySupplier]
	if !ok || !hasText(supplier) {
		return apperror.Validation("missing supplier")
	}

	products, ok := productList(payload[KeyProducts])
	if !ok {
		return apperror.Validation("missing products")
	}

	for i, raw := range products {
		entry, ok := asMapping(raw)
		if !ok {
			return apperror.Validation("incomplete product", apperror.WithDetail("index", i))
		}
		for _, key := range []string{KeyName, KeyQuantity, KeyPrice} {
			if _, present := entry[key]; !present {
				return apperror.Validation("incomplete product",
					apperror.WithDetail("index", i), apperror.WithDetail("missing", key))
			}
		}
	}
	return nil
}

// ConvertToEntities builds an order from a payload that already passed ValidateRaw.
// Quantity and price are coerced; coercion failures surface as validation errors.
func ConvertToEntities(payload Payload) (*models.Order, error) {
	order, err := models.NewOrder(cast.ToString(payload[KeySupplier]))
	if err != nil {
		return nil, err
	}

	products, _ := productList(payload[KeyProducts])
	for _, raw := range products {
		entry, _ := asMapping(raw)
		item, err := models.NewLineItemFromRaw(cast.ToString(entry[KeyName]), entry[KeyQuantity], entry[KeyPrice])
		if err != nil {
			return nil, err
		}
		order.AddItem(item)
	}

	if date, ok := payload[KeyDeliveryDate]; ok && date != nil {
		order.SetDeliveryDate(cast.ToString(date))
	}
	return order, nil
}

// ProcessIntake validates then converts payload. Errors are returned as-is.
func ProcessIntake(payload Payload) (*models.Order, error) {
	if err := ValidateRaw(payload); err != nil {
		return nil, err
	}
	return ConvertToEntities(payload)
}

// BuildMobileResponse stamps a reply with the current time.
func BuildMobileResponse(success bool, message, orderID string) MobileResponse {
	return MobileResponse{
		Success:   success,
		Message:   message,
		OrderID:   orderID,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}
}

// DecodePayload reads a JSON order form. Numbers are kept as json.Number.
func DecodePayload(r io.Reader) (Payload, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var payload Payload
	if err := dec.Decode(&payload); err != nil {
		return nil, apperror.Validation("malformed payload", apperror.WithCause(err))
	}
	if payload == nil {
		return nil, apperror.Validation("malformed payload")
	}
	return payload, nil
}

// hasText accepts only non-empty text. Numbers and booleans never name a supplier,
// so false, 0 and 0.0 count as missing.
func hasText(v any) bool {
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case json.Number:
		return false
	case fmt.Stringer:
		s = t.String()
	default:
		return false
	}
	return validate.Var(s, "required") == nil
}

func productList(v any) ([]any, bool) {
	switch list := v.(type) {
	case []any:
		return list, true
	case []map[string]any:
		out := make([]any, len(list))
		for i, m := range list {
			out[i] = m
		}
		return out, true
	case []Payload:
		out := make([]any, len(list))
		for i, m := range list {
			out[i] = m
		}
		return out, true
	}
	return nil, false
}

func asMapping(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, m != nil
	case Payload:
		return m, m != nil
	}
	return nil, false
}
