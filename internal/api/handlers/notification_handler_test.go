package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanosig/arcano/backend/internal/models"
	"github.com/arcanosig/arcano/backend/internal/services"
)

func (e *apiEnv) notify(t *testing.T, u *models.User, typ models.NotificationType, title string) {
	t.Helper()
	require.NoError(t, e.db.Create(&models.Notification{UserID: u.ID, Type: typ, Title: title, Message: title}).Error)
}

func TestNotificationHandler_ReadState(t *testing.T) {
	e := newAPIEnv(t)
	u := e.user("sd@pm.gov.br", nil)
	other := e.user("cb@pm.gov.br", nil)
	e.notify(t, u, models.NotificationCustodyPending, "a")
	e.notify(t, u, models.NotificationEquipmentDamaged, "b")
	e.notify(t, u, models.NotificationEquipmentDamaged, "c")
	e.notify(t, other, models.NotificationCustodyPending, "d")

	assert.Equal(t, int64(3), e.count(t, apiPath("/oper/notifications/unread-count"), u))

	var list []models.Notification
	decodeJSON(t, e.do(http.MethodGet, apiPath("/oper/notifications?type=equipamento_danificado"), u, nil), &list)
	require.Len(t, list, 2)
	decodeJSON(t, e.do(http.MethodGet, apiPath("/oper/notifications?limit=1"), u, nil), &list)
	assert.Len(t, list, 1)
	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodGet, apiPath("/oper/notifications?limit=x"), u, nil).Code)

	decodeJSON(t, e.do(http.MethodGet, apiPath("/oper/notifications"), u, nil), &list)
	require.Len(t, list, 3)
	id := list[0].ID

	assert.Equal(t, http.StatusNotFound, e.do(http.MethodPatch, apiPath("/oper/notifications/%s/read", id), other, nil).Code)

	w := e.do(http.MethodPatch, apiPath("/oper/notifications/%s/read", id), u, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var n models.Notification
	decodeJSON(t, w, &n)
	assert.True(t, n.Read)
	assert.NotNil(t, n.ReadAt)

	decodeJSON(t, e.do(http.MethodGet, apiPath("/oper/notifications?unread=true"), u, nil), &list)
	assert.Len(t, list, 2)

	w = e.do(http.MethodPatch, apiPath("/oper/notifications/%s/unread", id), u, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &n)
	assert.False(t, n.Read)
	assert.Nil(t, n.ReadAt)

	var counts []services.TypeCount
	decodeJSON(t, e.do(http.MethodGet, apiPath("/oper/notifications/by-type"), u, nil), &counts)
	require.Len(t, counts, 2)

	w = e.do(http.MethodPatch, apiPath("/oper/notifications/read-all"), u, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"updated":3}`, w.Body.String())
	assert.Zero(t, e.count(t, apiPath("/oper/notifications/unread-count"), u))
	assert.Equal(t, int64(1), e.count(t, apiPath("/oper/notifications/unread-count"), other))
}

func TestNotificationHandler_Stream(t *testing.T) {
	e := newAPIEnv(t)
	f := e.createTeam(t)

	srv := e.server(t)
	url := "ws" + srv.URL[len("http"):] + apiPath("/oper/notifications/ws?token=%s", e.token(f.member))
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()

	require.Eventually(t, func() bool { return e.realtime.Connections(f.member.ID) > 0 }, time.Second, 10*time.Millisecond)
	e.createCustody(t, f)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg struct {
		Event        string              `json:"event"`
		Notification models.Notification `json:"notification"`
	}
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "notification", msg.Event)
	assert.Equal(t, models.NotificationCustodyPending, msg.Notification.Type)
}

func TestNotificationHandler_StreamRejectsForeignOrigin(t *testing.T) {
	e := newAPIEnv(t)
	u := e.user("sd@pm.gov.br", nil)
	srv := e.server(t)

	url := "ws" + srv.URL[len("http"):] + apiPath("/oper/notifications/ws?token=%s", e.token(u))
	header := http.Header{"Origin": []string{"https://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestNotificationHandler_StreamAcceptsSameHost(t *testing.T) {
	e := newAPIEnv(t)
	u := e.user("sd@pm.gov.br", nil)
	srv := e.server(t)

	url := "ws" + srv.URL[len("http"):] + apiPath("/oper/notifications/ws?token=%s", e.token(u))
	conn, _, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": []string{srv.URL}})
	require.NoError(t, err)
	conn.Close()
}

func TestNotificationHandler_CheckOrigin(t *testing.T) {
	h := NewNotificationHandler(nil, nil)
	req := httptest.NewRequest(http.MethodGet, "http://api.arcano.local/api/v1/oper/notifications/ws", nil)

	assert.True(t, h.upgrader.CheckOrigin(req), "no origin header")
	req.Header.Set("Origin", "http://api.arcano.local")
	assert.True(t, h.upgrader.CheckOrigin(req))
	req.Header.Set("Origin", "https://evil.example")
	assert.False(t, h.upgrader.CheckOrigin(req), "an empty allow-list is not a wildcard")

	h = NewNotificationHandler(nil, nil, "https://arcano.pm.gov.br")
	req.Header.Set("Origin", "https://arcano.pm.gov.br")
	assert.True(t, h.upgrader.CheckOrigin(req))
}
