// Package client contains the pure business rules for client records.
// Guards are pure functions that evaluate preconditions without side effects.
package client

import "strings"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// StoreClientContext provides context for client create/update guards.
type StoreClientContext struct {
	Name    string
	Address string
	Email   string
}

// CanCreateClient evaluates whether a client can be created.
// Rules:
// - All fields must be filled in
// - Email must look like an email (contains "@")
func CanCreateClient(ctx StoreClientContext) GuardResult {
	if hasEmptyField(ctx) {
		return GuardResult{
			Allowed: false,
			Reason:  "Cannot add client. Please fill in all the fields",
		}
	}
	return checkEmail(ctx.Email)
}

// CanUpdateClient evaluates whether a client can be updated.
// Same rules as creation; only the reported reason differs.
func CanUpdateClient(ctx StoreClientContext) GuardResult {
	if hasEmptyField(ctx) {
		return GuardResult{
			Allowed: false,
			Reason:  "Cannot update client. Please fill in all the fields",
		}
	}
	return checkEmail(ctx.Email)
}

func hasEmptyField(ctx StoreClientContext) bool {
	return ctx.Name == "" || ctx.Address == "" || ctx.Email == ""
}

// checkEmail applies the minimal syntactic shape check: the address must
// contain an at-sign.
func checkEmail(email string) GuardResult {
	if !strings.Contains(email, "@") {
		return GuardResult{
			Allowed: false,
			Reason:  "Invalid email address!",
		}
	}
	return GuardResult{Allowed: true}
}
