// Package preview serves a browser gallery for inspecting compiled styles.
//
// The page at / opens a websocket to /ws and reports the width of its
// gallery pane whenever it changes. The server compiles every gallery
// component at the reported width and replies with the class map and the
// accumulated CSS, so the browser always renders exactly what the compiler
// produced for that width. Theme reloads are pushed to every connected
// client as a {"type":"reload"} message.
package preview

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/boxkit/boxkit/internal/gallery"
	"github.com/boxkit/boxkit/pkg/style"
)

// DefaultPort is used when Options.Port is zero.
const DefaultPort = 8077

const (
	defaultMaxClients = 32
	readTimeout       = 60 * time.Second
	writeTimeout      = 10 * time.Second
	pingInterval      = 30 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Options configures a preview server.
type Options struct {
	// Port to listen on. Zero means DefaultPort.
	Port int

	// Gallery builds the components shown on the page. The builder
	// receives the server's compiler so every class lands on the sheet
	// served at /styles.css. Nil means gallery.Default.
	Gallery func(*style.Compiler) []gallery.Item

	// MaxClients caps concurrent websocket connections. Zero means 32.
	MaxClients int

	Logger zerolog.Logger
}

// Server is the HTTP and websocket preview endpoint.
type Server struct {
	port       int
	maxClients int
	server     *http.Server
	upgrader   websocket.Upgrader

	sheet    *style.StyleSheet
	compiler *style.Compiler
	gallery  []gallery.Item

	clients   map[*client]bool
	clientsMu sync.RWMutex

	reloads  chan struct{}
	stop     chan struct{}
	stopOnce sync.Once

	log zerolog.Logger
}

// client wraps a connection with a write lock so replies and broadcasts
// never interleave on the wire.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) send(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteJSON(v)
}

// NewServer builds a preview server with its own stylesheet and compiler.
func NewServer(opt Options) *Server {
	port := opt.Port
	if port == 0 {
		port = DefaultPort
	}
	maxClients := opt.MaxClients
	if maxClients == 0 {
		maxClients = defaultMaxClients
	}
	build := opt.Gallery
	if build == nil {
		build = gallery.Default
	}

	sheet := style.NewStyleSheet()
	compiler := style.NewCompiler(sheet)

	return &Server{
		port:       port,
		maxClients: maxClients,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				return origin == fmt.Sprintf("http://localhost:%d", port) ||
					origin == fmt.Sprintf("http://127.0.0.1:%d", port)
			},
		},
		sheet:    sheet,
		compiler: compiler,
		gallery:  build(compiler),
		clients:  make(map[*client]bool),
		reloads:  make(chan struct{}, 8),
		stop:     make(chan struct{}),
		log:      opt.Logger,
	}
}

// Compiler returns the compiler backing the gallery. Reconfiguration
// followed by NotifyReload makes connected pages pick up the new theme.
func (s *Server) Compiler() *style.Compiler { return s.compiler }

// Handler returns the route table so the server can be mounted in tests
// or behind an existing mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/styles.css", s.handleCSS)
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

// Start listens on the configured port and blocks until Stop is called
// or the listener fails.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.Handler(),
	}

	go s.fanout()

	s.log.Info().Int("port", s.port).Msg("preview server listening")
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop closes every websocket and shuts the listener down, waiting up to
// five seconds for in-flight requests. Safe to call more than once.
func (s *Server) Stop() error {
	s.stopOnce.Do(func() { close(s.stop) })
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// NotifyReload queues a reload broadcast. Never blocks; bursts beyond the
// queue depth collapse into the pending notification.
func (s *Server) NotifyReload() {
	select {
	case s.reloads <- struct{}{}:
	default:
	}
}

func (s *Server) fanout() {
	for {
		select {
		case <-s.reloads:
			s.log.Debug().Msg("broadcasting theme reload")
			s.broadcast(reloadMessage{Type: "reload"})
		case <-s.stop:
			return
		}
	}
}

func (s *Server) broadcast(v any) {
	s.clientsMu.RLock()
	targets := make([]*client, 0, len(s.clients))
	for c := range s.clients {
		targets = append(targets, c)
	}
	s.clientsMu.RUnlock()

	for _, c := range targets {
		if err := c.send(v); err != nil {
			c.conn.Close()
			s.drop(c)
		}
	}
}

func (s *Server) drop(c *client) {
	s.clientsMu.Lock()
	delete(s.clients, c)
	s.clientsMu.Unlock()
}

type widthReport struct {
	Width int `json:"width"`
}

type stylesMessage struct {
	Type    string            `json:"type"`
	Width   int               `json:"width"`
	Classes map[string]string `json:"classes"`
	CSS     string            `json:"css"`
}

type reloadMessage struct {
	Type string `json:"type"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, indexHTML)
}

func (s *Server) handleCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	io.WriteString(w, s.sheet.CSS())
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	s.clientsMu.RLock()
	count := len(s.clients)
	s.clientsMu.RUnlock()
	if count >= s.maxClients {
		http.Error(w, "preview client limit reached", http.StatusServiceUnavailable)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	cl := &client{conn: conn}
	s.clientsMu.Lock()
	s.clients[cl] = true
	s.clientsMu.Unlock()
	defer func() {
		s.drop(cl)
		conn.Close()
	}()

	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(readTimeout))
	})

	done := make(chan struct{})
	defer close(done)
	go s.keepAlive(cl, done)

	for {
		var report widthReport
		if err := conn.ReadJSON(&report); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				s.log.Debug().Err(err).Msg("websocket read ended")
			}
			return
		}
		s.log.Debug().Int("width", report.Width).Msg("width report")
		if err := cl.send(s.compileAt(report.Width)); err != nil {
			return
		}
	}
}

// keepAlive pings the client and force-closes the connection on server
// shutdown so the read loop unblocks. WriteControl is safe alongside the
// data writes guarded by the client lock.
func (s *Server) keepAlive(cl *client, done chan struct{}) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := cl.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				return
			}
		case <-s.stop:
			cl.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeTimeout))
			cl.conn.Close()
			return
		case <-done:
			return
		}
	}
}

// compileAt resolves every gallery component at the reported width. The
// width comes from the browser's own measurement, so no observer runs on
// the server side.
func (s *Server) compileAt(width int) stylesMessage {
	classes := make(map[string]string, len(s.gallery))
	for _, item := range s.gallery {
		classes[item.Name] = item.Target.Class(width)
	}
	return stylesMessage{
		Type:    "styles",
		Width:   width,
		Classes: classes,
		CSS:     s.sheet.CSS(),
	}
}
