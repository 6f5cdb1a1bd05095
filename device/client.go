package device

import (
	"context"
	"net"
	"strconv"
)

// Address locates one terminal on the LAN. It only lives for the
// duration of a request.
type Address struct {
	Host string
	Port int
}

func (a Address) String() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Info is the human-readable identity a terminal reports during a probe.
type Info struct {
	Name string
}

// LogBatch is the result of one attendance-log retrieval. Skipped counts
// corrupted rows dropped on the way out; they never fail the fetch.
type LogBatch struct {
	Records []Record
	Skipped int
}

// Client is the seam in front of the vendor protocol client. Every call
// owns its connection: open, perform one operation, close. That keeps
// handlers free to swap in a test double.
type Client interface {
	Probe(ctx context.Context, addr Address) (Info, error)
	FetchLogs(ctx context.Context, addr Address) (LogBatch, error)
}
