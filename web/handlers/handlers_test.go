package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/attendlink/zkgate/config"
	"github.com/attendlink/zkgate/device"
	"github.com/gin-gonic/gin"
)

type fakeDevice struct {
	info     device.Info
	batch    device.LogBatch
	probeErr error
	fetchErr error

	lastAddr device.Address
}

func (f *fakeDevice) Probe(ctx context.Context, addr device.Address) (device.Info, error) {
	f.lastAddr = addr
	if f.probeErr != nil {
		return device.Info{}, f.probeErr
	}
	return f.info, nil
}

func (f *fakeDevice) FetchLogs(ctx context.Context, addr device.Address) (device.LogBatch, error) {
	f.lastAddr = addr
	if f.fetchErr != nil {
		return device.LogBatch{}, f.fetchErr
	}
	return f.batch, nil
}

func newTestRouter(dev device.Client, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Register(r, dev, cfg)
	return r
}

func doGet(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)
	return w
}

const tsLayout = "2006-01-02 15:04:05"

// mkTime builds a device-local timestamp, matching how date filters are
// interpreted.
func mkTime(cfg *config.Config, value string) time.Time {
	t, err := time.ParseInLocation(tsLayout, value, cfg.Location())
	if err != nil {
		panic(err)
	}
	return t
}

func sampleBatch(cfg *config.Config) device.LogBatch {
	return device.LogBatch{
		Records: []device.Record{
			{UserID: 1001, Timestamp: mkTime(cfg, "2025-09-29 07:58:12"), RawPunchCode: 0, Status: 1},
			{UserID: 1002, Timestamp: mkTime(cfg, "2025-09-30 17:02:45"), RawPunchCode: 1, Status: 1},
			{UserID: 1001, Timestamp: mkTime(cfg, "2025-10-01 08:01:00"), RawPunchCode: 0, Status: 1},
			{UserID: 1003, Timestamp: mkTime(cfg, "2025-10-02 23:59:59"), RawPunchCode: 5, Status: 0},
		},
	}
}
