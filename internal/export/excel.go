package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"shareit/internal/models"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// Reporter пишет сводку бронирований в xlsx-файл.
type Reporter struct {
	path   string
	logger *zerolog.Logger
}

func NewReporter(path string, logger *zerolog.Logger) *Reporter {
	return &Reporter{path: path, logger: logger}
}

// WriteBookings создает Excel файл со всеми бронированиями и возвращает
// путь к нему.
func (r *Reporter) WriteBookings(bookings []*models.Booking) (string, error) {
	// Создаем папку для экспорта, если не существует
	if err := os.MkdirAll(r.path, 0o755); err != nil {
		return "", fmt.Errorf("error creating export directory: %v", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Бронирования"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return "", fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"ID", "Вещь", "Заказчик", "Статус", "Начало", "Конец"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	_ = f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle)

	for i, b := range bookings {
		row := i + 2
		values := []any{
			b.ID,
			b.ItemName,
			b.BookerID,
			b.Status,
			b.Start.Format("02.01.2006 15:04"),
			b.End.Format("02.01.2006 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheetName, cell, v)
		}
	}

	_ = f.SetColWidth(sheetName, "A", "A", 10)
	_ = f.SetColWidth(sheetName, "B", "F", 22)
	_ = f.DeleteSheet("Sheet1")

	fileName := fmt.Sprintf("bookings_%s.xlsx", time.Now().Format("2006-01-02_150405"))
	filePath := filepath.Join(r.path, fileName)

	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("error saving file: %v", err)
	}

	r.logger.Info().Str("file_path", filePath).Int("bookings", len(bookings)).Msg("Excel file created")
	return filePath, nil
}
