package supervisor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type SupervisorSuite struct {
	suite.Suite
}

func TestSupervisorSuite(t *testing.T) {
	suite.Run(t, new(SupervisorSuite))
}

type blockingWorker struct {
	name string
}

func (w blockingWorker) String() string { return w.name }

func (w blockingWorker) Start(ctx context.Context, ready chan<- struct{}) error {
	ready <- struct{}{}
	<-ctx.Done()
	return ctx.Err()
}

type failingWorker struct{}

func (w failingWorker) String() string { return "failing" }

func (w failingWorker) Start(ctx context.Context, ready chan<- struct{}) error {
	ready <- struct{}{}
	return errors.New("boom")
}

func freeAddress(s *SupervisorSuite) string {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	defer ln.Close()
	return ln.Addr().String()
}

func (s *SupervisorSuite) TestStartAndStop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	workerCtx, workerCancel := context.WithCancel(ctx)

	address := freeAddress(s)
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "pong")
	})
	w := SupervisorWorker{
		Name: "test",
		Workers: []Worker{
			blockingWorker{name: "a"},
			HttpWorker{Address: address, Handler: handler},
		},
	}
	ready := make(chan struct{}, 1)
	result := make(chan error, 1)
	go func() {
		result <- w.Start(workerCtx, ready)
	}()
	select {
	case <-ready:
	case err := <-result:
		s.FailNow("supervisor exited before ready", err)
	}

	resp, err := http.Get("http://" + address)
	s.Require().NoError(err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	s.Require().NoError(err)
	s.Equal("pong", string(body))

	workerCancel()
	s.NoError(<-result)
}

func (s *SupervisorSuite) TestWorkerFailureStopsOthers() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	w := SupervisorWorker{
		Name:    "test",
		Workers: []Worker{blockingWorker{name: "a"}, failingWorker{}},
	}
	ready := make(chan struct{}, 1)
	err := w.Start(ctx, ready)
	s.ErrorContains(err, "failing: boom")
	s.NoError(ctx.Err())
}
