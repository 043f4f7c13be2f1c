package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Run serves hs on an already bound listener and shuts it down gracefully
// once ctx is done. Binding first lets callers report a listening address
// only after the port is actually held.
func Run(ctx context.Context, g *errgroup.Group, hs *http.Server, ln net.Listener, shutdownTimeout time.Duration) {
	g.Go(func() error {
		go func() {
			<-ctx.Done()

			sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
			defer cancel()

			if err := hs.Shutdown(sctx); err != nil {
				log.Error().Err(err).Str("addr", ln.Addr().String()).Msg("server shutdown failed")
			}
		}()

		if err := hs.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve %s: %w", ln.Addr(), err)
		}

		log.Info().Str("addr", ln.Addr().String()).Msg("http server stopped")
		return nil
	})
}
