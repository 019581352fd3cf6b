package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/andrebq/maestro"
)

// Run binds a TCP listener on addr:port and serves until ctx is canceled.
// A failed bind is fatal and reported before any request is served.
func Run(ctx context.Context, addr string, port uint) error {
	hostport := net.JoinHostPort(addr, strconv.FormatUint(uint64(port), 10))
	ln, err := net.Listen("tcp", hostport)
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", hostport, err)
	}
	return Serve(ctx, ln)
}

// Serve handles HTTP requests on an already-bound listener until ctx is
// canceled, then drains in-flight requests. Serve owns the listener and
// closes it on return.
func Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Addr:    ln.Addr().String(),
		Handler: NewHandler(),
	}
	mctx := maestro.New(ctx)
	mctx.Spawn(func(ctx maestro.Context) error {
		defer mctx.Shutdown()
		slog.Info("Starting server", "address", srv.Addr)
		err := srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	<-mctx.Done()
	slog.Info("Shutting down server", "address", srv.Addr)
	return srv.Shutdown(context.TODO())
}
