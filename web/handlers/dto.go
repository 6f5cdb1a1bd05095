package handlers

import (
	"github.com/attendlink/zkgate/device"
	"github.com/attendlink/zkgate/web/common"
)

type PingTestResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	DeviceInfo string `json:"device_info"`
}

type AttendanceLogDTO struct {
	UserID       int64                `json:"user_id"`
	Timestamp    common.LocalDateTime `json:"timestamp"`
	RawPunchCode int                  `json:"raw_punch_code"`
	Punch        string               `json:"punch"`
	Status       int                  `json:"status"`
}

type LogsResponse struct {
	Success bool               `json:"success"`
	Count   int                `json:"count"`
	Logs    []AttendanceLogDTO `json:"logs"`
}

func toLogDTO(r device.Record) AttendanceLogDTO {
	return AttendanceLogDTO{
		UserID:       r.UserID,
		Timestamp:    common.LocalDateTime{Time: r.Timestamp},
		RawPunchCode: r.RawPunchCode,
		Punch:        r.Punch(),
		Status:       r.Status,
	}
}
