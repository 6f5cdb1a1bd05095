package handlers

import (
	"log"
	"net/http"

	"github.com/attendlink/zkgate/web/common"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Sheet1"

var exportHeader = []string{"User ID", "Timestamp", "Punch", "Raw Punch Code", "Status"}

// ExportLogs serves the same filtered log set as /logs, as a spreadsheet
// attachment. Nothing is stored server-side.
func (ep *Endpoint) ExportLogs(c *gin.Context) {
	records, ok := ep.fetchFiltered(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
			return
		}
		if err := f.SetCellValue(exportSheet, cell, title); err != nil {
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
			return
		}
	}

	for i, rec := range records {
		dto := toLogDTO(rec)
		row := i + 2
		values := []interface{}{
			dto.UserID,
			dto.Timestamp.Format("2006-01-02 15:04:05"),
			dto.Punch,
			dto.RawPunchCode,
			dto.Status,
		}
		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
				return
			}
			if err := f.SetCellValue(exportSheet, cell, value); err != nil {
				c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
				return
			}
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="attendance-logs.xlsx"`)
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		// headers are already out; all we can do is log it
		log.Printf("[ERROR] write xlsx export: %v", err)
	}
}
