package model

// Well-known payload keys. Anything else is passed through untouched.
const (
	payloadKeyRequiresLogin = "requires_login"
	payloadKeyOrder         = "order"
)

// OrderRecord is the resolved order the backend attaches to the payload
// of a successful order-status lookup.
type OrderRecord struct {
	OrderNumber       string `json:"order_number"`
	Status            string `json:"status"`
	EstimatedDelivery string `json:"estimated_delivery,omitempty"`
}

// Payload holds the decoded side signals of a chat response: the known
// variants, plus a pass-through bag for everything the client does not
// recognize. Missing keys default; wrong-typed keys are ignored.
type Payload struct {
	RequiresLogin bool
	Order         *OrderRecord
	Extra         map[string]any
}

// ParsePayload decodes the open payload map from a chat response.
func ParsePayload(raw map[string]any) Payload {
	p := Payload{}
	if len(raw) == 0 {
		return p
	}
	for key, value := range raw {
		switch key {
		case payloadKeyRequiresLogin:
			if b, ok := value.(bool); ok {
				p.RequiresLogin = b
			}
		case payloadKeyOrder:
			if m, ok := value.(map[string]any); ok {
				p.Order = parseOrder(m)
			}
		default:
			if p.Extra == nil {
				p.Extra = make(map[string]any)
			}
			p.Extra[key] = value
		}
	}
	return p
}

func parseOrder(m map[string]any) *OrderRecord {
	o := &OrderRecord{}
	if s, ok := m["order_number"].(string); ok {
		o.OrderNumber = s
	}
	if s, ok := m["status"].(string); ok {
		o.Status = s
	}
	if s, ok := m["estimated_delivery"].(string); ok {
		o.EstimatedDelivery = s
	}
	return o
}
