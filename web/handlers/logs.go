package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/attendlink/zkgate/device"
	"github.com/attendlink/zkgate/utils"
	"github.com/attendlink/zkgate/web/common"
	"github.com/gin-gonic/gin"
)

const missingIPMessage = "Missing required parameter: ip"

type logQueryParams struct {
	Start string `form:"start"`
	End   string `form:"end"`
}

// Logs fetches the full attendance log from the terminal and returns it
// filtered to the optional start/end dates, in retrieval order.
func (ep *Endpoint) Logs(c *gin.Context) {
	records, ok := ep.fetchFiltered(c)
	if !ok {
		return
	}

	logs := utils.Map(records, toLogDTO)
	c.JSON(http.StatusOK, LogsResponse{
		Success: true,
		Count:   len(logs),
		Logs:    logs,
	})
}

// resolveIP takes the ip query parameter, falling back to the configured
// default device when one is set.
func (ep *Endpoint) resolveIP(c *gin.Context) (string, bool) {
	ip := c.Query("ip")
	if ip == "" {
		ip = ep.Cfg.DeviceIP
	}
	if ip == "" {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(missingIPMessage))
		return "", false
	}
	return ip, true
}

// fetchFiltered does the shared work of /logs and /logs/export:
// validate parameters, run one device session, drop records outside the
// date window. It writes the error response itself when it fails.
func (ep *Endpoint) fetchFiltered(c *gin.Context) ([]device.Record, bool) {
	var params logQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
		return nil, false
	}

	ip, ok := ep.resolveIP(c)
	if !ok {
		return nil, false
	}

	loc := ep.Cfg.Location()
	start, err := common.ParseDateParam("start", params.Start, loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
		return nil, false
	}
	end, err := common.ParseDateParam("end", params.End, loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
		return nil, false
	}

	batch, err := ep.Device.FetchLogs(c.Request.Context(), device.Address{Host: ip, Port: ep.Cfg.DevicePort})
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return nil, false
	}
	if batch.Skipped > 0 {
		log.Printf("[WARN] device %s: skipped %d corrupted attendance records", ip, batch.Skipped)
	}

	return filterByDate(batch.Records, start, end), true
}

// filterByDate keeps records from start 00:00:00 through the whole end
// date. Either bound may be nil.
func filterByDate(records []device.Record, start, end *time.Time) []device.Record {
	if start == nil && end == nil {
		return records
	}
	var cutoff time.Time
	if end != nil {
		cutoff = end.AddDate(0, 0, 1)
	}
	return utils.Filter(records, func(r device.Record) bool {
		if start != nil && r.Timestamp.Before(*start) {
			return false
		}
		if end != nil && !r.Timestamp.Before(cutoff) {
			return false
		}
		return true
	})
}
