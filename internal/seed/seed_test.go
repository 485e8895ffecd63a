package seed_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/auth"
	"storefront/internal/catalog"
	"storefront/internal/domain"
	"storefront/internal/seed"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
users:
  - id: u1
    username: carol
    password: carol123
    role: customer
products:
  - id: P010
    name: Keyboard
    category: Electronics
    price: "49.99"
    quantity: 12
`), 0o600))

	data, err := seed.Load(path)
	require.NoError(t, err)

	require.Len(t, data.Users, 1)
	assert.Equal(t, "carol", data.Users[0].Username)
	require.Len(t, data.Products, 1)
	assert.Equal(t, "49.99", data.Products[0].Price)
	assert.Equal(t, 12, data.Products[0].Quantity)
}

func TestLoadErrors(t *testing.T) {
	_, err := seed.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("users: {not a list"), 0o600))
	_, err = seed.Load(path)
	require.Error(t, err)
}

func TestApplyDefault(t *testing.T) {
	users := auth.New()
	products := catalog.New()

	require.NoError(t, seed.Apply(seed.Default(), users, products))

	u, err := users.Login("alice", "alice123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, u.Role)

	all := products.All()
	assert.Len(t, all, 6)

	outOfStock := products.OutOfStock()
	require.Len(t, outOfStock, 1)
	assert.Equal(t, "P006", outOfStock[0].ID)
}

func TestApplyRejectsBadPrice(t *testing.T) {
	data := seed.Data{
		Products: []seed.Product{
			{ID: "P001", Name: "Laptop", Price: "not-a-number", Quantity: 1},
		},
	}

	err := seed.Apply(data, auth.New(), catalog.New())
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
