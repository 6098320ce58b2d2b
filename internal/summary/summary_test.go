package summary

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pocketledger/internal/models"
)

func tx(name string, amount string, category string) models.Transaction {
	return models.NewTransaction("2024-01-01", name, decimal.RequireFromString(amount), category)
}

func TestSummarize(t *testing.T) {
	transactions := []models.Transaction{
		tx("Paycheck", "1000", models.CategoryIncome),
		tx("Whole Foods", "-200", models.CategoryGroceries),
		tx("Shell", "-50", models.CategoryGas),
	}

	s := Summarize(transactions)

	assert.True(t, s.Income.Equal(decimal.RequireFromString("1000")))
	assert.True(t, s.Expenses.Equal(decimal.RequireFromString("250")))
	assert.True(t, s.Net.Equal(decimal.RequireFromString("750")))
	require.Len(t, s.ByCategory, 2)
	assert.True(t, s.ByCategory[models.CategoryGroceries].Equal(decimal.RequireFromString("200")))
	assert.True(t, s.ByCategory[models.CategoryGas].Equal(decimal.RequireFromString("50")))
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.True(t, s.Income.IsZero())
	assert.True(t, s.Expenses.IsZero())
	assert.True(t, s.Net.IsZero())
	assert.Empty(t, s.ByCategory)
}

func TestSummarize_OrderIndependent(t *testing.T) {
	transactions := []models.Transaction{
		tx("Paycheck", "1000", models.CategoryIncome),
		tx("Whole Foods", "-200", models.CategoryGroceries),
		tx("Shell", "-50", models.CategoryGas),
		tx("Refund", "25", models.CategoryIncome),
		tx("Rent", "-800", models.CategoryHousing),
	}

	expected := Summarize(transactions)

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := make([]models.Transaction, len(transactions))
		copy(shuffled, transactions)
		r.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		got := Summarize(shuffled)
		assert.True(t, got.Income.Equal(expected.Income))
		assert.True(t, got.Expenses.Equal(expected.Expenses))
		assert.True(t, got.Net.Equal(expected.Net))
		assert.Equal(t, len(expected.ByCategory), len(got.ByCategory))
		for category, total := range expected.ByCategory {
			assert.True(t, got.ByCategory[category].Equal(total), category)
		}
	}
}

func TestSummarize_ZeroAmounts(t *testing.T) {
	// Zero amounts land on the expense side but add nothing to either total.
	s := Summarize([]models.Transaction{
		tx("Zero", "0", models.CategoryCoffee),
		tx("Paycheck", "100", models.CategoryIncome),
	})

	assert.True(t, s.Income.Equal(decimal.RequireFromString("100")))
	assert.True(t, s.Expenses.IsZero())
	assert.True(t, s.Net.Equal(decimal.RequireFromString("100")))
	assert.True(t, s.ByCategory[models.CategoryCoffee].IsZero())
}

func TestSummarize_EmptyCategoryFallsBack(t *testing.T) {
	s := Summarize([]models.Transaction{tx("Mystery", "-10", "")})
	assert.True(t, s.ByCategory[models.CategoryUncategorized].Equal(decimal.RequireFromString("10")))
}

func TestSummarize_IncomeNeverInByCategory(t *testing.T) {
	s := Summarize([]models.Transaction{
		tx("Paycheck", "1000", models.CategoryIncome),
		tx("Coffee", "-5", models.CategoryCoffee),
	})
	_, ok := s.ByCategory[models.CategoryIncome]
	assert.False(t, ok, "byCategory accumulates expense magnitudes only")
}
