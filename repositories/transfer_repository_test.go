package repositories

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"inventory-app/models"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeSheet(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, value))
		}
	}
	require.NoError(t, f.SaveAs(path))
}

func TestImportItemsFromExcel(t *testing.T) {
	db := newTestDB(t)
	path := filepath.Join(t.TempDir(), "items.xlsx")
	writeSheet(t, path, [][]interface{}{
		{"Item Code", "Item Name", "Quantity", "Unit", "Added By", "Date"},
		{"imp-1", "Stapler", 4, "pcs", "Ann", "2024-03-05"},
		{"IMP-2", "Bond Paper", 10, "", "", "05/03/2024"},
	})

	repo := NewTransferRepository(db)
	result, err := repo.ImportItems(path)
	require.NoError(t, err)
	require.Equal(t, 2, result.Imported)
	require.Zero(t, result.Skipped)

	var first models.Item
	require.NoError(t, db.Where("item_code = ?", "IMP-1").First(&first).Error)
	require.Equal(t, "Stapler", first.ItemName)
	require.Equal(t, 4, first.Quantity)
	require.Equal(t, 2024, first.Date.Year())

	// policy defaults for the sparse row
	var second models.Item
	require.NoError(t, db.Where("item_code = ?", "IMP-2").First(&second).Error)
	require.Equal(t, "pcs", second.Unit)
	require.Equal(t, "Admin", second.AddedBy)
}

func TestImportItemsUpsertsByCode(t *testing.T) {
	db := newTestDB(t)
	existing := seedItem(t, db, "UPS-1", 3)

	_, err := NewTableRepository(db).DeleteSelected("item", []string{itoa(existing.ID)})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "items.xlsx")
	writeSheet(t, path, [][]interface{}{
		{"itemCode", "itemName", "quantity", "unit", "addedBy", "date"},
		{"UPS-1", "Replacement", 8, "Box", "Bob", "2025-01-01"},
	})

	repo := NewTransferRepository(db)
	result, err := repo.ImportItems(path)
	require.NoError(t, err)
	require.Equal(t, 1, result.Imported)

	var item models.Item
	require.NoError(t, db.Where("item_code = ?", "UPS-1").First(&item).Error)
	require.Equal(t, existing.ID, item.ID, "upsert reuses the row")
	require.Equal(t, "Replacement", item.ItemName)
	require.Equal(t, 8, item.Quantity)
	require.False(t, item.IsDeleted, "import resurrects archived items")
}

func TestImportItemsFromCSV(t *testing.T) {
	db := newTestDB(t)
	path := filepath.Join(t.TempDir(), "items.csv")
	csv := "Code,Name,QTY,Unit,Added by,Date\n" +
		"CSV-1,Envelope,25,box,Ann,2024-06-01\n" +
		",missing code row,1,pcs,Ann,2024-06-01\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	repo := NewTransferRepository(db)
	result, err := repo.ImportItems(path)
	require.NoError(t, err)
	require.Equal(t, 1, result.Imported)
	require.Equal(t, 1, result.Skipped)

	var item models.Item
	require.NoError(t, db.Where("item_code = ?", "CSV-1").First(&item).Error)
	require.Equal(t, 25, item.Quantity)
}

func TestImportRejectsUnknownExtension(t *testing.T) {
	db := newTestDB(t)
	path := filepath.Join(t.TempDir(), "items.pdf")
	require.NoError(t, os.WriteFile(path, []byte("junk"), 0o644))

	repo := NewTransferRepository(db)
	_, err := repo.ImportItems(path)
	var imp *models.ImportError
	require.ErrorAs(t, err, &imp)
}

func TestImportPulledItemsSkipsUnknownCodes(t *testing.T) {
	db := newTestDB(t)
	item := seedItem(t, db, "PULL-1", 10)

	path := filepath.Join(t.TempDir(), "pulled.xlsx")
	writeSheet(t, path, [][]interface{}{
		{"Item Code", "Released Quantity", "Released By", "Received By", "Date"},
		{"PULL-1", 4, "Cleo", "Dee", "2023-11-11"},
		{"GHOST", 2, "Cleo", "Dee", "2023-11-12"},
	})

	repo := NewTransferRepository(db)
	result, err := repo.ImportPulledItems(path)
	require.NoError(t, err)
	require.Equal(t, 1, result.Imported)
	require.Equal(t, 1, result.Skipped)

	var pulled []models.PulledItem
	require.NoError(t, db.Find(&pulled).Error)
	require.Len(t, pulled, 1)
	require.Equal(t, 4, pulled[0].ReleasedQuantity)

	// backfill is history, not a live withdrawal
	var after models.Item
	require.NoError(t, db.First(&after, item.ID).Error)
	require.Equal(t, 10, after.Quantity)
	require.Equal(t, 0, after.Withdrawn)
}

func TestExportItems(t *testing.T) {
	db := newTestDB(t)
	items := NewItemRepository(db)

	old, err := items.AddItem(AddItemInput{
		ItemCode: "EX-1", ItemName: "Aged", Quantity: 5, Unit: "pcs",
		AddedBy: "Ann", Date: date(2023, time.May, 1),
	})
	require.NoError(t, err)
	_, err = items.AddItem(AddItemInput{
		ItemCode: "EX-2", ItemName: "Fresh", Quantity: 7, Unit: "pcs",
		AddedBy: "Ann", Date: date(2024, time.May, 1),
	})
	require.NoError(t, err)

	history := NewHistoryRepository(db)
	_, err = history.AddPurchaseRequest("EX-1", 5, "Ann", date(2023, time.June, 1))
	require.NoError(t, err)
	_, err = history.AddPurchaseRequest("EX-1", 7, "Ann", date(2024, time.June, 1))
	require.NoError(t, err)

	repo := NewTransferRepository(db)

	// no year filter: both items, all-time totals
	all := filepath.Join(t.TempDir(), "all.xlsx")
	count, err := repo.ExportItems(0, all)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	f, err := excelize.OpenFile(all)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Items")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, []string{"No.", "Code", "Item", "Unit", "Stock", "Requested", "Delivered", "Withdrawn", "Date"}, rows[0])
	require.Equal(t, "EX-1", rows[1][1])
	require.Equal(t, "12", rows[1][5], "requested totals sum across years without a filter")

	// year filter: only the 2023 item, 2023 totals
	filtered := filepath.Join(t.TempDir(), "2023.xlsx")
	count, err = repo.ExportItems(2023, filtered)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	f2, err := excelize.OpenFile(filtered)
	require.NoError(t, err)
	defer f2.Close()
	rows, err = f2.GetRows("Items")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, old.ItemCode, rows[1][1])
	require.Equal(t, "5", rows[1][5])
}

func TestExportTable(t *testing.T) {
	db := newTestDB(t)
	item := seedItem(t, db, "ET-1", 9)

	repo := NewTransferRepository(db)
	out := filepath.Join(t.TempDir(), "selected.xlsx")
	count, err := repo.ExportTable("item", []string{itoa(item.ID)}, out)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "ET-1", rows[1][0])
	require.Equal(t, "9", rows[1][2])

	_, err = repo.ExportTable("item", []string{fmt.Sprint(item.ID + 100)}, out)
	require.ErrorIs(t, err, models.ErrNoMatch)
}
