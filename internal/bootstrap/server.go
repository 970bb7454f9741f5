package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

var ErrShutdownTimeout = errors.New("graceful shutdown timed out")

// Run serves handler on addr and blocks until ctx is cancelled or the server
// fails. On cancellation it stops accepting connections and waits up to grace
// for in-flight requests; if they do not finish in time it returns
// ErrShutdownTimeout.
func Run(ctx context.Context, addr string, handler http.Handler, grace time.Duration, log *zap.Logger) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen http %s: %w", addr, err)
	}
	return Serve(ctx, lis, handler, grace, log)
}

func Serve(ctx context.Context, lis net.Listener, handler http.Handler, grace time.Duration, log *zap.Logger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(lis) }()
	log.Info("http server started", zap.String("addr", lis.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info("shutting down http server", zap.Duration("grace", grace))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
			if errors.Is(err, context.DeadlineExceeded) {
				return ErrShutdownTimeout
			}
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
