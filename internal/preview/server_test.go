package preview

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, opt Options) (*Server, *httptest.Server) {
	t.Helper()
	srv := NewServer(opt)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		srv.Stop()
		ts.Close()
	})
	return srv, ts
}

func dialWS(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := strings.Replace(ts.URL, "http", "ws", 1) + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

// exchange sends a width report and waits for the styles reply. Once the
// reply arrives the server has registered the connection, so broadcasts
// will reach it.
func exchange(t *testing.T, conn *websocket.Conn, width int) stylesMessage {
	t.Helper()
	require.NoError(t, conn.WriteJSON(widthReport{Width: width}))
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg stylesMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestIndexPageServed(t *testing.T) {
	_, ts := newTestServer(t, Options{})

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "boxkit preview")
	assert.Contains(t, string(body), "/ws")
}

func TestUnknownPathIs404(t *testing.T) {
	_, ts := newTestServer(t, Options{})

	resp, err := http.Get(ts.URL + "/nope")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStylesheetEndpoint(t *testing.T) {
	srv, ts := newTestServer(t, Options{})

	// Compile once so the sheet has rules to dump.
	srv.compileAt(800)

	resp, err := http.Get(ts.URL + "/styles.css")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/css")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), ".bk-")
	assert.Contains(t, string(body), "box-sizing:border-box")
}

func TestWidthReportReturnsStyles(t *testing.T) {
	srv, ts := newTestServer(t, Options{})
	conn := dialWS(t, ts)

	msg := exchange(t, conn, 500)
	require.Equal(t, "styles", msg.Type)
	require.Equal(t, 500, msg.Width)
	require.Len(t, msg.Classes, len(srv.gallery))
	for name, class := range msg.Classes {
		assert.NotEmpty(t, class, "component %s has no class", name)
	}

	// The hero box is responsive, so a wider viewport compiles to a
	// different declaration and hence a different class.
	narrow := msg.Classes["hero"]
	wide := exchange(t, conn, 1200).Classes["hero"]
	assert.NotEqual(t, narrow, wide)

	// Every issued class shows up in the CSS payload.
	css := exchange(t, conn, 1200).CSS
	for _, class := range strings.Fields(wide) {
		assert.Contains(t, css, "."+class)
	}
}

func TestReloadBroadcastReachesAllClients(t *testing.T) {
	srv, ts := newTestServer(t, Options{})
	go srv.fanout()

	first := dialWS(t, ts)
	second := dialWS(t, ts)
	exchange(t, first, 640)
	exchange(t, second, 640)

	srv.NotifyReload()

	for _, conn := range []*websocket.Conn{first, second} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var msg map[string]string
		require.NoError(t, conn.ReadJSON(&msg))
		assert.Equal(t, "reload", msg["type"])
	}
}

func TestClientCap(t *testing.T) {
	_, ts := newTestServer(t, Options{MaxClients: 1})

	conn := dialWS(t, ts)
	exchange(t, conn, 640)

	url := strings.Replace(ts.URL, "http", "ws", 1) + "/ws"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestStopDisconnectsClients(t *testing.T) {
	srv, ts := newTestServer(t, Options{})

	conn := dialWS(t, ts)
	exchange(t, conn, 640)

	require.NoError(t, srv.Stop())

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	require.Error(t, err)
}

func TestStopIsIdempotent(t *testing.T) {
	srv := NewServer(Options{})
	require.NoError(t, srv.Stop())
	require.NoError(t, srv.Stop())
}
