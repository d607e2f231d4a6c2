package repositories

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"inventory-app/models"
	"inventory-app/utils"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// TransferRepository moves data between spreadsheets and the database: bulk
// item import, pulled-item backfill, and the yearly stock report.
type TransferRepository struct {
	db *gorm.DB
}

func NewTransferRepository(db *gorm.DB) *TransferRepository {
	return &TransferRepository{db}
}

type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// ImportItems upserts one item per spreadsheet row, keyed by item code.
// Existing rows are overwritten and un-deleted; missing fields fall back to
// policy defaults. A failure partway through leaves earlier rows committed.
func (r *TransferRepository) ImportItems(path string) (*ImportResult, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	for _, row := range rows {
		code := strings.ToUpper(strings.TrimSpace(pick(row, "itemCode", "Item Code", "Code")))
		if code == "" {
			result.Skipped++
			continue
		}

		date, ok := utils.ParseFlexibleDate(pick(row, "date", "Date"))
		if !ok {
			date = time.Now()
		}
		unit := strings.TrimSpace(pick(row, "unit", "Unit"))
		if unit == "" {
			unit = "pcs"
		}
		addedBy := strings.TrimSpace(pick(row, "addedBy", "Added By", "Added by"))
		if addedBy == "" {
			addedBy = "Admin"
		}

		item := models.Item{
			ItemCode:  code,
			ItemName:  strings.TrimSpace(pick(row, "itemName", "Item Name", "Name", "Item")),
			Quantity:  parseCellInt(pick(row, "quantity", "Quantity", "QTY", "Stock")),
			Unit:      unit,
			Withdrawn: parseCellInt(pick(row, "withdrawn", "Withdrawn")),
			AddedBy:   addedBy,
			Date:      date,
		}

		var existing models.Item
		err := r.db.Where("item_code = ?", code).First(&existing).Error
		switch {
		case err == nil:
			updates := map[string]interface{}{
				"item_name":  item.ItemName,
				"quantity":   item.Quantity,
				"unit":       item.Unit,
				"withdrawn":  item.Withdrawn,
				"added_by":   item.AddedBy,
				"date":       item.Date,
				"is_deleted": false,
			}
			if err := r.db.Model(&models.Item{}).Where("id = ?", existing.ID).Updates(updates).Error; err != nil {
				return result, err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := r.db.Create(&item).Error; err != nil {
				return result, err
			}
		default:
			return result, err
		}
		result.Imported++
	}

	return result, nil
}

// ImportPulledItems backfills withdrawal history from a spreadsheet. Rows
// whose code does not resolve to an existing item are skipped and counted;
// stock quantities are left alone, this is history, not a live pull.
func (r *TransferRepository) ImportPulledItems(path string) (*ImportResult, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	for _, row := range rows {
		code := strings.ToUpper(strings.TrimSpace(pick(row, "itemCode", "Item Code", "Code")))
		var item models.Item
		if err := r.db.Where("item_code = ?", code).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				result.Skipped++
				continue
			}
			return result, err
		}

		date, ok := utils.ParseFlexibleDate(pick(row, "releasedDate", "Released Date", "Date"))
		if !ok {
			date = time.Now()
		}

		pulled := models.PulledItem{
			ItemID:           item.ID,
			ReleasedQuantity: parseCellInt(pick(row, "releasedQuantity", "Released Quantity", "Quantity", "QTY")),
			ReleasedBy:       strings.TrimSpace(pick(row, "releasedBy", "Released By", "Released by")),
			ReceivedBy:       strings.TrimSpace(pick(row, "receivedBy", "Received By", "Received by")),
			ReleasedDate:     date,
		}
		if err := r.db.Create(&pulled).Error; err != nil {
			return result, err
		}
		result.Imported++
	}

	return result, nil
}

var exportHeaders = []string{"No.", "Code", "Item", "Unit", "Stock", "Requested", "Delivered", "Withdrawn", "Date"}

// ExportItems writes the stock report: one row per active item with its
// year-scoped requested/delivered/withdrawn totals. year 0 exports all time.
func (r *TransferRepository) ExportItems(year int, outputPath string) (int, error) {
	var items []models.Item
	err := r.db.Where("is_deleted = ?", false).
		Order("item_name asc").
		Preload("PurchaseRequests").
		Preload("RequestsDelivered").
		Preload("PulledItems").
		Find(&items).Error
	if err != nil {
		return 0, err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Items"
	f.SetSheetName("Sheet1", sheet)

	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	count := 0
	for _, item := range items {
		if year != 0 && item.Date.Year() != year {
			continue
		}
		totals := item.Totals(year)
		count++
		rowNum := count + 1
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), count)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), item.ItemCode)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), item.ItemName)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), item.Unit)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), item.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), totals.Requested)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", rowNum), totals.Delivered)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", rowNum), totals.Withdrawn)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", rowNum), item.Date.Format("2006-01-02"))
	}

	if err := f.SaveAs(outputPath); err != nil {
		return 0, err
	}
	return count, nil
}

// ExportTable writes the selected rows of a table view to a spreadsheet.
func (r *TransferRepository) ExportTable(tableName string, ids []string, outputPath string) (int, error) {
	entity, err := ParseEntity(tableName)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, &models.ValidationError{Message: "No items selected."}
	}

	keys := make([]int64, 0, len(ids))
	for _, id := range ids {
		key, err := parseID(entity, id)
		if err != nil {
			return 0, err
		}
		keys = append(keys, key)
	}

	var headers []string
	var rows [][]interface{}

	switch entity {
	case EntityItem:
		var items []models.Item
		if err := r.db.Where("id IN ?", keys).Order("item_name asc").Find(&items).Error; err != nil {
			return 0, err
		}
		headers = []string{"Code", "Item", "Quantity", "Unit", "Added by", "Date"}
		for _, it := range items {
			rows = append(rows, []interface{}{it.ItemCode, it.ItemName, it.Quantity, it.Unit, it.AddedBy, it.Date.Format("2006-01-02")})
		}
	case EntityPulledItem:
		var pulled []models.PulledItem
		if err := r.db.Where("id IN ?", keys).Order("released_date desc").Preload("Item").Find(&pulled).Error; err != nil {
			return 0, err
		}
		headers = []string{"Code", "Name", "Quantity", "Unit", "Released by", "Received by", "Date"}
		for _, p := range pulled {
			rows = append(rows, []interface{}{p.Item.ItemCode, p.Item.ItemName, p.ReleasedQuantity, p.Item.Unit, p.ReleasedBy, p.ReceivedBy, p.ReleasedDate.Format("2006-01-02")})
		}
	case EntityLog:
		var logs []models.Log
		if err := r.db.Where("id IN ?", keys).Order("created_at desc").Preload("Item").Find(&logs).Error; err != nil {
			return 0, err
		}
		headers = []string{"Item", "User", "Log", "Date"}
		for _, l := range logs {
			rows = append(rows, []interface{}{l.Item.ItemName, l.User, l.Log, l.CreatedAt.Format("2006-01-02 15:04")})
		}
	default:
		return 0, &models.UnknownEntityError{Name: tableName}
	}

	if len(rows) == 0 {
		return 0, models.ErrNoMatch
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Sheet1"
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}
	for i, row := range rows {
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	if err := f.SaveAs(outputPath); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// readRows loads the first sheet of a spreadsheet (or a CSV file) as one map
// per data row, keyed by the header row.
func readRows(path string) ([]map[string]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return readExcelRows(path)
	case ".csv":
		return readCSVRows(path)
	default:
		return nil, &models.ImportError{Path: path, Err: errors.New("unsupported file format")}
	}
}

func readExcelRows(path string) ([]map[string]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &models.ImportError{Path: path, Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &models.ImportError{Path: path, Err: errors.New("no sheets found")}
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &models.ImportError{Path: path, Err: err}
	}
	if len(rows) < 2 {
		return nil, nil
	}

	header := rows[0]
	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				record[strings.TrimSpace(name)] = row[i]
			}
		}
		records = append(records, record)
	}
	return records, nil
}

func readCSVRows(path string) ([]map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &models.ImportError{Path: path, Err: err}
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	all, err := reader.ReadAll()
	if err != nil {
		return nil, &models.ImportError{Path: path, Err: err}
	}
	if len(all) < 2 {
		return nil, nil
	}

	header := all[0]
	records := make([]map[string]string, 0, len(all)-1)
	for _, row := range all[1:] {
		record := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				record[strings.TrimSpace(name)] = strings.TrimSpace(row[i])
			}
		}
		records = append(records, record)
	}
	return records, nil
}

// pick returns the first non-empty cell among the header spellings a column
// is known by.
func pick(row map[string]string, names ...string) string {
	for _, name := range names {
		if v, ok := row[name]; ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func parseCellInt(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return int(f)
	}
	return 0
}
