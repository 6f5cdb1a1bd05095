package device

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/canhlinh/gozk"
)

// ZKTeco reaches a terminal through the gozk protocol client. The wire
// protocol itself lives entirely in that library; this adapter only
// manages the session lifetime and shapes the results.
type ZKTeco struct {
	timeout  time.Duration
	timezone string
}

func NewZKTeco(timeout time.Duration, timezone string) *ZKTeco {
	if timezone == "" {
		timezone = gozk.DefaultTimezone
	}
	return &ZKTeco{timeout: timeout, timezone: timezone}
}

func (z *ZKTeco) Probe(ctx context.Context, addr Address) (Info, error) {
	return await(ctx, z.timeout, func() (Info, error) {
		conn := gozk.NewZkSocket(addr.Host, addr.Port, 0, z.timezone)
		if err := conn.Connect(); err != nil {
			return Info{}, fmt.Errorf("connect %s: %w", addr, err)
		}
		defer conn.Disconnect()

		users, err := conn.GetUsers()
		if err != nil {
			return Info{}, fmt.Errorf("query device identity: %w", err)
		}
		return Info{
			Name: fmt.Sprintf("ZKTeco terminal at %s (%d enrolled users)", addr, len(users)),
		}, nil
	})
}

func (z *ZKTeco) FetchLogs(ctx context.Context, addr Address) (LogBatch, error) {
	return await(ctx, z.timeout, func() (LogBatch, error) {
		conn := gozk.NewZkSocket(addr.Host, addr.Port, 0, z.timezone)
		if err := conn.Connect(); err != nil {
			return LogBatch{}, fmt.Errorf("connect %s: %w", addr, err)
		}
		defer conn.Disconnect()

		atts, err := conn.GetAttendances()
		if err != nil {
			return LogBatch{}, fmt.Errorf("read attendance log: %w", err)
		}

		var batch LogBatch
		for _, att := range atts {
			// gozk surfaces user and time only; the punch state
			// arrives unlabeled from this client.
			rec, ok := newRecord(strconv.FormatInt(att.UserID, 10), att.AttendedAt, PunchUnknown, 0)
			if !ok {
				batch.Skipped++
				continue
			}
			batch.Records = append(batch.Records, rec)
		}
		return batch, nil
	})
}

// await bounds a device call with the configured timeout. The protocol
// client has no context support, so the session runs in its own
// goroutine and still disconnects on its own if the caller gives up.
func await[T any](ctx context.Context, timeout time.Duration, op func() (T, error)) (T, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	type outcome struct {
		value T
		err   error
	}
	done := make(chan outcome, 1)
	go func() {
		v, err := op()
		done <- outcome{value: v, err: err}
	}()

	select {
	case out := <-done:
		return out.value, out.err
	case <-ctx.Done():
		var zero T
		return zero, fmt.Errorf("device call aborted: %w", ctx.Err())
	}
}
