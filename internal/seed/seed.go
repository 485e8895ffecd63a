// Package seed loads the sample data the storefront binary starts with.
package seed

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"storefront/internal/domain"
	"storefront/internal/port"
)

type Data struct {
	Users    []User    `yaml:"users"`
	Products []Product `yaml:"products"`
}

type User struct {
	ID       string `yaml:"id"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type Product struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Price    string `yaml:"price"`
	Quantity int    `yaml:"quantity"`
}

// Load reads a seed file from disk.
func Load(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("read seed file %q: %w", path, err)
	}

	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return Data{}, fmt.Errorf("parse seed file %q: %w", path, err)
	}
	return data, nil
}

// Default are the fixtures used when no seed file is given.
func Default() Data {
	return Data{
		Users: []User{
			{ID: "admin01", Username: "admin", Password: "admin123", Role: "admin"},
			{ID: "cust01", Username: "alice", Password: "alice123", Role: "customer"},
			{ID: "cust02", Username: "bob", Password: "bob123", Role: "customer"},
		},
		Products: []Product{
			{ID: "P001", Name: "Laptop", Category: "Electronics", Price: "1200.00", Quantity: 10},
			{ID: "P002", Name: "Smartphone", Category: "Electronics", Price: "800.00", Quantity: 25},
			{ID: "P003", Name: "Coffee Maker", Category: "Appliances", Price: "75.50", Quantity: 50},
			{ID: "P004", Name: "Desk Chair", Category: "Furniture", Price: "150.75", Quantity: 15},
			{ID: "P005", Name: "Wireless Mouse", Category: "Electronics", Price: "25.00", Quantity: 100},
			{ID: "P006", Name: "Monitor", Category: "Electronics", Price: "300.00", Quantity: 0},
		},
	}
}

// Apply registers the users and products with the live managers.
func Apply(data Data, users port.UserStore, catalog port.Catalog) error {
	for _, u := range data.Users {
		err := users.Register(domain.User{
			ID:       u.ID,
			Username: u.Username,
			Password: u.Password,
			Role:     domain.Role(u.Role),
		})
		if err != nil {
			return fmt.Errorf("register user %q: %w", u.Username, err)
		}
	}

	for _, p := range data.Products {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return fmt.Errorf("product %q: %w: price %q", p.ID, domain.ErrInvalidInput, p.Price)
		}

		product, err := domain.NewProduct(p.ID, p.Name, p.Category, domain.USD(price), p.Quantity)
		if err != nil {
			return fmt.Errorf("product %q: %w", p.ID, err)
		}
		if err := catalog.Add(product); err != nil {
			return fmt.Errorf("add product %q: %w", p.ID, err)
		}
	}
	return nil
}
