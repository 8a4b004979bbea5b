package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"kitaplik/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func TestParseInterval(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  time.Duration
	}{
		{"no params", "", defaultInterval},
		{"interval duration", "interval=10s", 10 * time.Second},
		{"interval at cap", "interval=60s", 60 * time.Second},
		{"interval over cap", "interval=61s", defaultInterval},
		{"interval negative", "interval=-1s", defaultInterval},
		{"interval garbage", "interval=abc", defaultInterval},
		{"interval_ms", "interval_ms=1500", 1500 * time.Millisecond},
		{"interval_ms at cap", "interval_ms=60000", 60 * time.Second},
		{"interval_ms over cap", "interval_ms=60001", defaultInterval},
		{"interval wins over ms", "interval=2s&interval_ms=9000", 2 * time.Second},
	}

	gin.SetMode(gin.TestMode)
	h := &Handler{}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/ws?"+tc.query, nil)

			if got := h.parseInterval(c); got != tc.want {
				t.Errorf("parseInterval(%q) = %v, want %v", tc.query, got, tc.want)
			}
		})
	}
}

func TestWSConnect_SendsLibraryOnConnect(t *testing.T) {
	lib := &mockLibrary{entries: []models.LibraryEntry{
		{ID: 1, Title: "Go", Content: "notes", Link: "#"},
	}}
	r := newTestRouter(authedService("alice", 7, lib))

	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	header := http.Header{}
	header.Set("Cookie", sessionCookieName+"=tok")

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	if err != nil {
		t.Fatalf("dial failed: %v (resp: %+v)", err, resp)
	}
	defer func() { _ = conn.Close() }()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var env struct {
		Type string                `json:"type"`
		Data []models.LibraryEntry `json:"data"`
	}
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("reading first frame: %v", err)
	}
	if env.Type != "library" {
		t.Fatalf("expected library envelope, got %q", env.Type)
	}
	if len(env.Data) != 1 || env.Data[0].Title != "Go" {
		t.Fatalf("unexpected payload: %+v", env.Data)
	}
}

func TestWSConnect_RequiresSession(t *testing.T) {
	r := newTestRouter(authedService("alice", 7, &mockLibrary{}))

	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err == nil {
		_ = conn.Close()
		t.Fatalf("expected handshake failure without session cookie")
	}
	if resp != nil && resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect status, got %d", resp.StatusCode)
	}
}
