// Package product contains the pure business rules for product records.
// Guards are pure functions that evaluate preconditions without side effects.
package product

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// StoreProductContext provides context for product create/update guards.
// Price and Quantity are the already-parsed numeric values.
type StoreProductContext struct {
	Price    int64
	Quantity int64
}

// CanStoreProduct evaluates whether a product can be persisted.
// Rules:
// - Price must not be negative (zero is allowed)
// - Quantity must not be negative (zero is allowed)
func CanStoreProduct(ctx StoreProductContext) GuardResult {
	if ctx.Price < 0 {
		return GuardResult{
			Allowed: false,
			Reason:  "Price cannot have a negative value!",
		}
	}
	if ctx.Quantity < 0 {
		return GuardResult{
			Allowed: false,
			Reason:  "Quantity cannot have a negative value!",
		}
	}
	return GuardResult{Allowed: true}
}
