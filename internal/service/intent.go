package service

import (
	"fmt"
	"regexp"
	"strings"
)

// Intent names, mirroring the trained model the real deployment fronts.
const (
	IntentGreet       = "greet"
	IntentProductInfo = "product_info"
	IntentOrderStatus = "order_status"
	IntentReturns     = "returns"
	IntentGoodbye     = "goodbye"
	IntentAbusive     = "abusive"
	IntentFallback    = "fallback"
)

var orderNumberPattern = regexp.MustCompile(`(?i)\bORD-?(\d{3,})\b`)

// Classify maps a message to an intent and extracted entities. This is
// a keyword stand-in for the external NLU collaborator; it covers the
// same intent set the demo data exercises.
func Classify(message string) (string, map[string]any) {
	entities := map[string]any{}
	lower := strings.ToLower(message)

	if m := orderNumberPattern.FindStringSubmatch(message); m != nil {
		entities["order_number"] = "ORD-" + m[1]
	}

	switch {
	case containsAny(lower, "hello", "hi ", "hey") || lower == "hi":
		return IntentGreet, entities
	case containsAny(lower, "bye", "goodbye", "see you"):
		return IntentGoodbye, entities
	case containsAny(lower, "stupid", "idiot", "useless"):
		return IntentAbusive, entities
	case entities["order_number"] != nil || containsAny(lower, "order", "status", "deliver", "track"):
		return IntentOrderStatus, entities
	case containsAny(lower, "return", "refund", "exchange"):
		return IntentReturns, entities
	case containsAny(lower, "shirt", "size", "colour", "color", "material", "product"):
		return IntentProductInfo, entities
	}
	return IntentFallback, entities
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// QuickReplies returns the suggestions to show after an intent.
func QuickReplies(intent string) []string {
	switch intent {
	case IntentGreet:
		return []string{"Ask about shirts", "Check order status", "Return / exchange policy"}
	case IntentProductInfo:
		return []string{"What sizes are available?", "Do you have black shirts?", "What is the material?"}
	case IntentOrderStatus:
		return []string{"My order status", "I want to update my address"}
	case IntentReturns:
		return []string{"How do I return a shirt?", "What is your refund policy?"}
	}
	return []string{"Ask about shirts", "Check order status", "Return / exchange policy"}
}

// HandleIntent produces the reply text and payload for an intent.
// userID is the conversation owner; "anonymous" gates order lookups
// behind the requires_login payload signal.
func (d *Directory) HandleIntent(intent string, entities map[string]any, userID string) (string, map[string]any) {
	payload := map[string]any{}

	switch intent {
	case IntentGreet:
		return "Hi! 👋 I'm your shirt support assistant. I can help with product info, order status, and returns. What would you like to do?", payload

	case IntentAbusive:
		return "I'm here to help. Let's keep the conversation respectful. How can I assist you with your order or shirts?", payload

	case IntentGoodbye:
		return "Thanks for chatting with us! If you need anything else, just open the chat again. 😊", payload

	case IntentProductInfo:
		return "We sell men's and women's shirts in sizes XS–XXL. " +
			"Most shirts are 100% cotton or cotton blends. " +
			"What would you like to know: size, colour, or material?", payload

	case IntentReturns:
		return "Our return policy: you can return or exchange shirts within 30 days " +
			"of delivery, as long as tags are intact and the shirt is unworn. " +
			"Would you like steps for starting a return?", payload

	case IntentOrderStatus:
		orderNumber, _ := entities["order_number"].(string)
		if orderNumber == "" {
			return "Sure! Please provide your order number (e.g., ORD-1001) so I can check the status.", payload
		}

		if userID == "" || userID == "anonymous" {
			payload["requires_login"] = true
			return "I can look that up once you're signed in. Please sign in to view your order details.", payload
		}

		order, ok := d.FindOrder(orderNumber)
		if !ok {
			return fmt.Sprintf("I couldn't find order %s. Can you check the number and try again?", orderNumber), payload
		}

		text := fmt.Sprintf("Order %s is currently %s.", order.OrderNumber, order.Status)
		eta := order.EstimatedDelivery.Format("2006-01-02")
		text += fmt.Sprintf(" Estimated delivery date is %s.", eta)

		payload["order"] = map[string]any{
			"order_number":       order.OrderNumber,
			"status":             order.Status,
			"estimated_delivery": eta,
		}
		return text, payload
	}

	return "I'm not sure I understood that. I can help with product information, " +
		"order status, and returns. Could you rephrase or pick one of the suggestions?", payload
}
