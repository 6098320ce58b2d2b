package importer

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pocketledger/internal/logging"
	"pocketledger/internal/models"
	"pocketledger/internal/schema"
)

func newTestImporter() *Importer {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return New(schema.Default(), logging.NewLogrusAdapterFromLogger(logger))
}

func TestImportCSV(t *testing.T) {
	body := `Date,Description,Amount,Category
2024-01-05,Whole Foods Market,54.32,
2024-01-06,PAYMENT THANK YOU,200.00,
2024-01-07,SHELL OIL 5571,(40.00),
2024-01-08,Netflix,15.49,Entertainment
`

	result, err := newTestImporter().ImportCSV(body)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Imported)
	require.Len(t, result.Transactions, 4)
	assert.Len(t, result.Sample, 4)

	groceries := result.Transactions[0]
	assert.True(t, groceries.Amount.Equal(dec("-54.32")))
	assert.Equal(t, models.CategoryGroceries, groceries.Category)

	payment := result.Transactions[1]
	assert.True(t, payment.Amount.Equal(dec("200")))
	assert.Equal(t, models.CategoryIncome, payment.Category)

	gas := result.Transactions[2]
	assert.True(t, gas.Amount.Equal(dec("-40")))
	assert.Equal(t, models.CategoryGas, gas.Category)

	netflix := result.Transactions[3]
	assert.Equal(t, "Entertainment", netflix.Category)
}

func TestImportCSV_SkipsUnusableRows(t *testing.T) {
	body := `Date,Description,Amount
2024-01-05,Coffee,4.50
,No date and no amount,
2024-01-07,Bad amount,oops
2024-01-08,Groceries run,30.00
`

	result, err := newTestImporter().ImportCSV(body)
	require.NoError(t, err)

	// Skipped rows lower the count silently; no per-row errors surface.
	assert.Equal(t, 2, result.Imported)
	require.Len(t, result.Transactions, 2)
	assert.Equal(t, "Coffee", result.Transactions[0].Name)
	assert.Equal(t, "Groceries run", result.Transactions[1].Name)

	for _, tx := range result.Transactions {
		assert.NotEmpty(t, tx.Category, "category must never be empty")
	}
}

func TestImportCSV_SampleCappedAtFive(t *testing.T) {
	body := "date,name,amount\n"
	for i := 0; i < 8; i++ {
		body += "2024-01-01,Coffee,4.50\n"
	}

	result, err := newTestImporter().ImportCSV(body)
	require.NoError(t, err)
	assert.Equal(t, 8, result.Imported)
	assert.Len(t, result.Transactions, 8)
	assert.Len(t, result.Sample, SampleSize)
	assert.Equal(t, result.Transactions[:SampleSize], result.Sample)
}

func TestImportCSV_RaggedRowsTolerated(t *testing.T) {
	// A short row maps only the columns it has; it is still usable when the
	// amount survives.
	body := `Date,Description,Amount
2024-01-05,Short row
2024-01-06,Full row,12.00
`

	result, err := newTestImporter().ImportCSV(body)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, "Full row", result.Transactions[0].Name)
}

func TestImportCSV_InvalidDocument(t *testing.T) {
	// Unterminated quote makes the body unparsable as tabular text: the
	// whole import aborts with no partial result.
	body := "Date,Description,Amount\n2024-01-05,\"broken,54.32\n2024-01-06,Fine,10.00\n"

	result, err := newTestImporter().ImportCSV(body)
	require.Error(t, err)

	var docErr *InvalidDocumentError
	require.ErrorAs(t, err, &docErr)
	assert.Empty(t, result.Transactions)
	assert.Zero(t, result.Imported)
}

func TestImportCSV_EmptyDocument(t *testing.T) {
	_, err := newTestImporter().ImportCSV("")
	var docErr *InvalidDocumentError
	require.ErrorAs(t, err, &docErr)
}

func TestImportCSV_HeaderOnly(t *testing.T) {
	result, err := newTestImporter().ImportCSV("Date,Description,Amount\n")
	require.NoError(t, err)
	assert.Zero(t, result.Imported)
	assert.Empty(t, result.Transactions)
}
