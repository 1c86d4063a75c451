package order

import "testing"

func TestCanPlaceOrder(t *testing.T) {
	tests := []struct {
		name        string
		ctx         PlaceOrderContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "can place order within stock",
			ctx:         PlaceOrderContext{Quantity: 3, Available: 5},
			wantAllowed: true,
		},
		{
			name:        "can place order for entire stock",
			ctx:         PlaceOrderContext{Quantity: 5, Available: 5},
			wantAllowed: true,
		},
		{
			name:        "can place zero-quantity order",
			ctx:         PlaceOrderContext{Quantity: 0, Available: 5},
			wantAllowed: true,
		},
		{
			name:        "cannot place order with negative quantity",
			ctx:         PlaceOrderContext{Quantity: -1, Available: 5},
			wantAllowed: false,
			wantReason:  "Quantity cannot have a negative value!",
		},
		{
			name:        "cannot place order exceeding stock",
			ctx:         PlaceOrderContext{Quantity: 3, Available: 2},
			wantAllowed: false,
			wantReason:  "Under-stocked item! Only 2 left.",
		},
		{
			name:        "cannot place any order against empty stock",
			ctx:         PlaceOrderContext{Quantity: 1, Available: 0},
			wantAllowed: false,
			wantReason:  "Under-stocked item! Only 0 left.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanPlaceOrder(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}
