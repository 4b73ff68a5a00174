package mailwatch

import (
	"context"
	"testing"
	"time"
)

type fakeConn struct{ closed chan struct{} }

func (f *fakeConn) Close() error {
	close(f.closed)
	return nil
}

func TestCloseOnCancelClosesWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	f := &fakeConn{closed: make(chan struct{})}
	stop := closeOnCancel(ctx, f)
	defer stop()

	cancel()
	select {
	case <-f.closed:
	case <-time.After(time.Second):
		t.Fatal("connection not closed after context cancel")
	}
}

func TestCloseOnCancelStopReleasesWatchdog(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	f := &fakeConn{closed: make(chan struct{})}

	stop := closeOnCancel(ctx, f)
	stop() // run finished; watchdog must be gone before stop returns

	cancel()
	select {
	case <-f.closed:
		t.Fatal("released watchdog must not close the connection")
	case <-time.After(50 * time.Millisecond):
	}
}
