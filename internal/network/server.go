package network

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/ascii3d/internal/logger"
)

// indexPage shows the streamed frames and sends key presses back.
const indexPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>ascii3d</title>
<style>body{background:#000;color:#ccc}pre{font:12px monospace;line-height:12px}</style>
</head>
<body>
<pre id="frame"></pre>
<pre id="status"></pre>
<script>
const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
ws.onmessage = (m) => {
  const e = JSON.parse(m.data);
  if (e.name !== "frame") return;
  document.getElementById("frame").textContent = e.data.rows.join("\n");
  document.getElementById("status").textContent = (e.data.status || []).join("\n");
};
document.addEventListener("keydown", (k) => {
  const key = k.key === "Escape" ? "\x1b" : k.key;
  if (key.length === 1) ws.send(JSON.stringify({name: "key", data: {key: key}}));
});
</script>
</body>
</html>
`

// Handler serves the viewer page at / and the websocket at /ws.
func Handler(hub *Hub) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ServeWs(hub, w, r)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, indexPage)
	})
	return mux
}

// ListenAndServe serves Handler(hub) on addr until ctx is cancelled.
func ListenAndServe(ctx context.Context, addr string, hub *Hub) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           Handler(hub),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("websocket viewer listening", zap.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("serving %s: %w", addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("shutting down %s: %w", addr, err)
		}
		return nil
	}
}
