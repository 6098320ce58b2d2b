package store

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pocketledger/internal/models"
)

func sample(name string) models.Transaction {
	return models.NewTransaction("2024-01-01", name, decimal.RequireFromString("-10"), models.CategoryCoffee)
}

func TestMemoryStore_AddAndList(t *testing.T) {
	s := NewMemoryStore()
	assert.Zero(t, s.Count())

	s.Add(sample("Coffee"))
	s.AddAll([]models.Transaction{sample("Lunch"), sample("Gas")})

	require.Equal(t, 3, s.Count())
	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, "Coffee", list[0].Name)
	assert.Equal(t, "Lunch", list[1].Name)
	assert.Equal(t, "Gas", list[2].Name)
}

func TestMemoryStore_ListReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	s.Add(sample("Coffee"))

	list := s.List()
	list[0].Name = "tampered"

	assert.Equal(t, "Coffee", s.List()[0].Name)
}

func TestMemoryStore_Reset(t *testing.T) {
	s := NewMemoryStore()
	s.AddAll([]models.Transaction{sample("Coffee"), sample("Lunch")})
	s.Reset()

	assert.Zero(t, s.Count())
	assert.Empty(t, s.List())
}

func TestMemoryStore_ConcurrentAdds(t *testing.T) {
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s.Add(sample("Coffee"))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 500, s.Count())
}
