package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/arcanosig/arcano/backend/internal/api/middleware"
	"github.com/arcanosig/arcano/backend/internal/config"
	"github.com/arcanosig/arcano/backend/internal/database"
	"github.com/arcanosig/arcano/backend/internal/models"
	"github.com/arcanosig/arcano/backend/internal/services"
)

const testPassword = "senha-forte-1"

var cpfSeq atomic.Int64

type recordingMailer struct {
	mu   sync.Mutex
	msgs []services.Email
}

func (m *recordingMailer) Enqueue(msg services.Email) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msgs = append(m.msgs, msg)
}

func (m *recordingMailer) to(addr string) []services.Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []services.Email
	for _, msg := range m.msgs {
		if msg.To == addr {
			out = append(out, msg)
		}
	}
	return out
}

// apiEnv is the whole API wired on an in-memory database.
type apiEnv struct {
	t        *testing.T
	db       *gorm.DB
	router   *gin.Engine
	auth     *services.AuthService
	mailer   *recordingMailer
	realtime *services.RealtimeHub
	media    string

	requireAuth gin.HandlerFunc

	mu     sync.Mutex
	tokens map[uint]string
}

func newAPIEnv(t *testing.T) *apiEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := database.OpenTestDB(t)
	audit := services.NewAuditService(db)
	require.NoError(t, audit.Register())

	cfg := config.Config{
		FrontendURL: "https://arcano.pm.gov.br",
		JWT:         config.JWTConfig{Secret: "test-secret", AccessTTL: time.Hour, RefreshTTL: 24 * time.Hour},
	}
	e := &apiEnv{
		t:        t,
		db:       db,
		mailer:   &recordingMailer{},
		realtime: services.NewRealtimeHub(),
		media:    t.TempDir(),
		tokens:   make(map[uint]string),
	}
	e.auth = services.NewAuthService(db, cfg, e.mailer)
	notes := services.NewNotificationService(db, e.realtime)
	reports := services.NewReportService(db, services.NewLocalStorage(e.media), e.mailer, notes, "relatorios", cfg.FrontendURL)
	shares := services.NewShareService(db)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/api/v1/health", NewHealthHandler(db).Check)

	requireAuth := middleware.AuthMiddleware(e.auth)
	e.requireAuth = requireAuth
	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	NewAuthHandler(e.auth).RegisterRoutes(authGroup, requireAuth)
	NewUserHandler(services.NewUserService(db)).RegisterRoutes(authGroup.Group("", requireAuth))

	sac := api.Group("/sac")
	NewShareHandler(shares, reports).RegisterRoutes(sac)
	NewReportHandler(reports, shares).RegisterRoutes(sac.Group("", requireAuth, middleware.RequireSac()))

	oper := api.Group("/oper", requireAuth)
	NewOperationHandler(services.NewOperationService(db)).RegisterRoutes(oper)
	NewTeamHandler(services.NewTeamService(db)).RegisterRoutes(oper)
	media := services.NewLocalStorage(e.media)
	NewVehicleHandler(services.NewVehicleService(db, media)).RegisterRoutes(oper)
	NewFleetHandler(services.NewFuelLogService(db), services.NewVehiclePhotoService(db, media)).RegisterRoutes(oper)
	NewCustodyHandler(services.NewCustodyService(db, services.NewNotificationHub(notes))).RegisterRoutes(oper)
	NewNotificationHandler(notes, e.realtime, cfg.FrontendURL).RegisterRoutes(oper)
	NewNotificationProviderHandler(notes).RegisterRoutes(oper.Group("", middleware.RequireAdmin()))

	api.GET("/history", requireAuth, middleware.RequireAdmin(), NewHistoryHandler(audit).List)

	e.router = r
	return e
}

// server serves the router over a real listener, for websocket tests.
func (e *apiEnv) server(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(e.router)
	t.Cleanup(srv.Close)
	return srv
}

// user inserts an active, approved user; mutate adjusts it before insert.
func (e *apiEnv) user(email string, mutate func(u *models.User)) *models.User {
	e.t.Helper()
	u := &models.User{
		Email:      email,
		Name:       "Policial " + email,
		CPF:        fmt.Sprintf("%011d", 40000000000+cpfSeq.Add(1)),
		Patent:     "SD",
		IsActive:   true,
		IsApproved: true,
	}
	require.NoError(e.t, u.SetPassword(testPassword))
	if mutate != nil {
		mutate(u)
	}
	require.NoError(e.t, e.db.Create(u).Error)
	return u
}

func sacProfile(p models.SacProfile) func(u *models.User) {
	return func(u *models.User) { u.IsSac, u.SacProfile = true, p }
}

func admin(u *models.User) { u.IsAdmin = true }

// token logs u in once and caches its access token.
func (e *apiEnv) token(u *models.User) string {
	e.t.Helper()
	e.mu.Lock()
	defer e.mu.Unlock()
	if tok, ok := e.tokens[u.ID]; ok {
		return tok
	}
	pair, _, err := e.auth.Login(context.Background(), u.Email, testPassword)
	require.NoError(e.t, err)
	e.tokens[u.ID] = pair.Access
	return pair.Access
}

// do sends body as JSON, authenticated as u when u is not nil.
func (e *apiEnv) do(method, path string, u *models.User, body interface{}) *httptest.ResponseRecorder {
	e.t.Helper()
	return e.send(jsonRequest(e.t, method, path, body), u)
}

func jsonRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func (e *apiEnv) send(req *http.Request, u *models.User) *httptest.ResponseRecorder {
	if u != nil {
		req.Header.Set("Authorization", "Bearer "+e.token(u))
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst), w.Body.String())
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	decodeJSON(t, w, &body)
	return body.Error
}

func date(t time.Time) string { return t.Format("2006-01-02") }

func today() time.Time { return models.Day(time.Now().UTC()) }

func apiPath(format string, args ...interface{}) string {
	return "/api/v1" + fmt.Sprintf(format, args...)
}
