package db

import (
	"database/sql"
	"fmt"
)

// SeedFixtures populates the database with development fixtures:
// a handful of clients and products plus one already-placed order.
func SeedFixtures(database *sql.DB) error {
	clients := []struct{ name, address, email string }{
		{"Ada Lovelace", "12 Analytical Row, London", "ada@example.com"},
		{"Grace Hopper", "1 Harbor Lane, Arlington", "grace@example.com"},
		{"Linus Benedict", "Kernel Street 91, Helsinki", "linus@example.com"},
	}
	for _, c := range clients {
		if _, err := database.Exec(
			"INSERT INTO clients (name, address, email) VALUES (?, ?, ?)",
			c.name, c.address, c.email,
		); err != nil {
			return fmt.Errorf("seed clients: %w", err)
		}
	}

	products := []struct {
		name            string
		price, quantity int64
	}{
		{"Widget", 10, 5},
		{"Sprocket", 25, 40},
		{"Gearbox", 120, 8},
		{"Flux Capacitor", 999, 1},
	}
	for _, p := range products {
		if _, err := database.Exec(
			"INSERT INTO products (name, price, quantity) VALUES (?, ?, ?)",
			p.name, p.price, p.quantity,
		); err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
	}

	// One historical order: Grace bought 2 Sprockets. Stock above already
	// reflects the decrement.
	if _, err := database.Exec(
		"INSERT INTO orders (client_id, product_id, quantity) VALUES (2, 2, 2)",
	); err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}

	return nil
}
