// Package order contains the pure business rules for order placement.
// Guards are pure functions that evaluate preconditions without side effects.
package order

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// PlaceOrderContext provides context for order placement guards.
// Available is the product's current stock at the moment of placement.
type PlaceOrderContext struct {
	Quantity  int64
	Available int64
}

// CanPlaceOrder evaluates whether an order can be placed.
// Rules:
// - Quantity must not be negative
// - Quantity must not exceed the available stock
func CanPlaceOrder(ctx PlaceOrderContext) GuardResult {
	if ctx.Quantity < 0 {
		return GuardResult{
			Allowed: false,
			Reason:  "Quantity cannot have a negative value!",
		}
	}
	if ctx.Quantity > ctx.Available {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("Under-stocked item! Only %d left.", ctx.Available),
		}
	}
	return GuardResult{Allowed: true}
}
