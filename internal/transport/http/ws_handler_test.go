package http

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"maturity-assessment-service/internal/app"
	"maturity-assessment-service/internal/catalog"
	"maturity-assessment-service/internal/infra/memory"
)

func TestWebSocketAnswerFlow(t *testing.T) {
	service := newTestService()
	session, err := service.CreateSession(context.Background())
	require.NoError(t, err)
	server := httptest.NewServer(NewServer(service).Router())
	defer server.Close()

	conn := dialSession(t, server, session.ID)
	defer conn.Close()

	// joined comes first, then the initial score report
	joined := readNext(t, conn, "joined")
	assert.Equal(t, session.ID, joined["id"])
	initial := readNext(t, conn, "scores")
	assert.Nil(t, initial["scores"].(map[string]any)["overall"])

	require.NoError(t, conn.WriteJSON(map[string]any{
		"type":    "answer",
		"payload": map[string]any{"questionId": "p1", "value": "4"},
	}))
	update := readNext(t, conn, "scores")
	assert.Equal(t, 4.0, update["scores"].(map[string]any)["overall"])

	require.NoError(t, conn.WriteJSON(map[string]any{
		"type":    "answer",
		"payload": map[string]any{"questionId": "p4", "value": "7"},
	}))
	readNext(t, conn, "error")

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "shout"}))
	unsupported := readNext(t, conn, "error")
	assert.Equal(t, "unsupported message type", unsupported["message"])
}

func TestWebSocketUnknownSession(t *testing.T) {
	server := httptest.NewServer(NewServer(newTestService()).Router())
	defer server.Close()

	conn := dialSession(t, server, "missing")
	defer conn.Close()

	readNext(t, conn, "error")
}

func dialSession(t *testing.T, server *httptest.Server, sessionID string) *websocket.Conn {
	t.Helper()
	u := "ws" + server.URL[len("http"):] + "/ws?sessionId=" + sessionID
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	return conn
}

func readNext(t *testing.T, conn *websocket.Conn, expect string) map[string]any {
	t.Helper()
	var msg struct {
		Type    string         `json:"type"`
		Payload map[string]any `json:"payload"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, expect, msg.Type)
	return msg.Payload
}

func newTestService() *app.AssessmentService {
	return app.NewAssessmentService(
		memory.NewSessionStore(),
		memory.NewCatalogRepository(catalog.NewStaticLoader(catalog.Default()), time.Minute),
	)
}
