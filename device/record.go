package device

import (
	"strconv"
	"strings"
	"time"
)

// PunchUnknown marks a record whose punch state the protocol client did
// not surface.
const PunchUnknown = -1

var punchStates = map[int]string{
	0: "IN",
	1: "OUT",
	2: "BREAK_IN",
	3: "BREAK_OUT",
	4: "OVERTIME_IN",
	5: "OVERTIME_OUT",
}

// PunchLabel maps a raw terminal punch code to its label. Codes outside
// the documented range come back as "Unknown".
func PunchLabel(code int) string {
	if label, ok := punchStates[code]; ok {
		return label
	}
	return "Unknown"
}

// Record is one punch event as retrieved from a terminal. It is never
// mutated or stored; it flows straight into the response.
type Record struct {
	UserID       int64
	Timestamp    time.Time
	RawPunchCode int
	Status       int
}

func (r Record) Punch() string {
	return PunchLabel(r.RawPunchCode)
}

// newRecord sanitizes one raw row. Terminals of this class are known to
// emit corrupted rows (zero or out-of-range timestamps, garbage user
// IDs); those are dropped instead of aborting the whole fetch.
func newRecord(userID string, ts time.Time, punch, status int) (Record, bool) {
	if ts.IsZero() || ts.Year() < 2000 || ts.Year() > 2099 {
		return Record{}, false
	}
	id, err := strconv.ParseInt(strings.TrimSpace(userID), 10, 64)
	if err != nil {
		return Record{}, false
	}
	return Record{
		UserID:       id,
		Timestamp:    ts,
		RawPunchCode: punch,
		Status:       status,
	}, true
}
