package join

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type order struct {
	ID         int
	CustomerID int
}

type customer struct {
	ID   int
	Name string
}

func orderCustomer(o order) int { return o.CustomerID }
func customerID(c customer) int { return c.ID }
func describe(o order, c customer) string {
	return fmt.Sprintf("%d:%s", o.ID, c.Name)
}

func TestInner(t *testing.T) {
	customers := []customer{{1, "ann"}, {2, "bob"}, {3, "cid"}}

	t.Run("Matches follow left order", func(t *testing.T) {
		orders := []order{{10, 3}, {11, 1}, {12, 3}}

		result := Inner(orders, customers, orderCustomer, customerID, describe)

		assert.Equal(t, []string{"10:cid", "11:ann", "12:cid"}, result)
	})

	t.Run("Unmatched left elements are dropped", func(t *testing.T) {
		orders := []order{{10, 1}, {11, 99}, {12, 2}}

		result := Inner(orders, customers, orderCustomer, customerID, describe)

		assert.Equal(t, []string{"10:ann", "12:bob"}, result)
	})

	t.Run("Duplicate right keys yield one result per match", func(t *testing.T) {
		dupes := []customer{{1, "ann"}, {1, "amy"}}
		orders := []order{{10, 1}}

		result := Inner(orders, dupes, orderCustomer, customerID, describe)

		assert.Equal(t, []string{"10:ann", "10:amy"}, result)
	})

	t.Run("Empty inputs", func(t *testing.T) {
		assert.Empty(t, Inner(nil, customers, orderCustomer, customerID, describe))
		assert.Empty(t, Inner([]order{{10, 1}}, nil, orderCustomer, customerID, describe))
	})

	t.Run("Inputs are not mutated", func(t *testing.T) {
		orders := []order{{10, 2}, {11, 1}}
		ordersCopy := append([]order(nil), orders...)
		customersCopy := append([]customer(nil), customers...)

		Inner(orders, customers, orderCustomer, customerID, describe)

		assert.Equal(t, ordersCopy, orders)
		assert.Equal(t, customersCopy, customers)
	})
}

func TestLookup(t *testing.T) {
	lookup := ToLookup([]customer{{1, "ann"}, {2, "bob"}, {1, "amy"}}, customerID)

	assert.Equal(t, []customer{{1, "ann"}, {1, "amy"}}, lookup.Get(1))
	assert.Equal(t, []customer{{2, "bob"}}, lookup.Get(2))
	assert.Empty(t, lookup.Get(7))
}

func BenchmarkInner(b *testing.B) {
	customers := make([]customer, 1000)
	for i := range customers {
		customers[i] = customer{ID: i, Name: fmt.Sprintf("c%d", i)}
	}
	orders := make([]order, 10000)
	for i := range orders {
		orders[i] = order{ID: i, CustomerID: i % 1200}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Inner(orders, customers, orderCustomer, customerID, func(o order, c customer) int { return o.ID })
	}
}
