package mirror

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/camset/internal/logging"
)

// Watch connects to the mirror at addr (host:port) and calls fn for every
// event until ctx ends or the server closes the stream. A normal close
// returns nil.
func Watch(ctx context.Context, addr string, fn func(Event)) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	u := url.URL{Scheme: "ws", Host: addr, Path: "/ws"}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", u.String(), err)
	}
	defer func() { _ = conn.Close() }()

	go func() {
		<-ctx.Done()
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		_ = conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil
			}
			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) {
				return fmt.Errorf("mirror closed the connection: %w", err)
			}
			return fmt.Errorf("failed to read from mirror: %w", err)
		}
		var ev Event
		if err := json.Unmarshal(data, &ev); err != nil {
			logging.Warn("Ignoring malformed mirror event", zap.Error(err))
			continue
		}
		fn(ev)
	}
}
