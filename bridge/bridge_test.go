package bridge

import (
	"context"
	"fmt"
	"log/slog"
	"lost-found/errors"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func testOp(deadline time.Duration) Op {
	return Op{Name: "test", Deadline: deadline, Log: logs.GetLoggerFromLevel(slog.LevelDebug)}
}

func TestAwait_Returns_Value_Delivered_On_Another_Goroutine(t *testing.T) {
	req := require.New(t)

	value, err := Await(context.Background(), testOp(time.Second), func(r Resolver[string]) {
		go r.Resolve("found")
	})

	req.NoError(err)
	req.Equal("found", value)
}

func TestAwait_Register_Called_Exactly_Once(t *testing.T) {
	req := require.New(t)
	calls := 0

	_, err := Await(context.Background(), testOp(time.Second), func(r Resolver[int]) {
		calls++
		r.Resolve(1)
	})

	req.NoError(err)
	req.Equal(1, calls)
}

func TestAwait_Rejection_Becomes_Remote_Error(t *testing.T) {
	req := require.New(t)

	_, err := Await(context.Background(), testOp(time.Second), func(r Resolver[int]) {
		go r.Reject(fmt.Errorf("permission denied"))
	})

	req.Error(err)
	req.True(errors.IsRemote(err))
	req.Contains(err.Error(), "permission denied")
}

func TestAwait_Times_Out_When_Listener_Never_Fires(t *testing.T) {
	req := require.New(t)
	deadline := 100 * time.Millisecond
	start := time.Now()

	_, err := Await(context.Background(), testOp(deadline), func(r Resolver[int]) {})

	elapsed := time.Since(start)
	req.ErrorIs(err, errors.ErrTimeout)
	req.GreaterOrEqual(elapsed, deadline)
	req.Less(elapsed, deadline+time.Second)
}

func TestAwait_Late_Value_Does_Not_Alter_Timeout(t *testing.T) {
	req := require.New(t)
	resolvers := make(chan Resolver[string], 1)

	value, err := Await(context.Background(), testOp(50*time.Millisecond), func(r Resolver[string]) {
		resolvers <- r
	})

	// Given the call already timed out
	req.ErrorIs(err, errors.ErrTimeout)
	req.Empty(value)

	// When the listener fires afterwards, nothing panics nor blocks
	done := make(chan struct{})
	go func() {
		r := <-resolvers
		r.Resolve("too late")
		r.Reject(fmt.Errorf("still too late"))
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("late callback blocked")
	}
}

func TestAwait_First_Outcome_Wins(t *testing.T) {
	req := require.New(t)

	value, err := Await(context.Background(), testOp(time.Second), func(r Resolver[string]) {
		r.Resolve("first")
		r.Reject(fmt.Errorf("second"))
		r.Resolve("third")
	})

	req.NoError(err)
	req.Equal("first", value)
}

func TestAwait_Failure_First_Wins_Over_Value(t *testing.T) {
	req := require.New(t)

	_, err := Await(context.Background(), testOp(time.Second), func(r Resolver[string]) {
		r.Reject(fmt.Errorf("network down"))
		r.Resolve("ignored")
	})

	req.True(errors.IsRemote(err))
}

func TestAwait_Context_Cancellation(t *testing.T) {
	req := require.New(t)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := Await(ctx, testOp(5*time.Second), func(r Resolver[int]) {})

	req.ErrorIs(err, context.DeadlineExceeded)
}

func TestAwait_Zero_Deadline_Falls_Back_To_Default(t *testing.T) {
	req := require.New(t)

	value, err := Await(context.Background(), Op{Name: "no-deadline"}, func(r Resolver[int]) {
		r.Resolve(7)
	})

	req.NoError(err)
	req.Equal(7, value)
}
