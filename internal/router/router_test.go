package router_test

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/config"
	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/models"
	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/router"
	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/session"
	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/testutil"
	"github.com/Kri-bit/ToDoMe-KristiansSvika/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type app struct {
	server *httptest.Server
	client *http.Client
	db     *gorm.DB
}

func newApp(t *testing.T, name string) *app {
	t.Helper()

	quotesPath := filepath.Join(t.TempDir(), "citati.json")
	require.NoError(t, os.WriteFile(quotesPath, []byte(`["Tests ir zaļš."]`), 0644))

	adminHash, err := utils.HashPassword("adminparole")
	require.NoError(t, err)

	cfg := &config.Config{
		Admin:     config.AdminConfig{Username: "admin", PasswordHash: adminHash},
		Quotes:    config.QuotesConfig{Path: quotesPath},
		Templates: config.TemplatesConfig{Glob: "../../web/templates/*.html"},
	}

	db := testutil.OpenTestDB(t, name)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	sessions := session.NewManager("test-secret", time.Hour)
	engine := router.SetupRouter(cfg, sessions, logger, db)

	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &app{
		server: server,
		client: &http.Client{Jar: jar},
		db:     db,
	}
}

// get follows redirects and returns the final path and body.
func (a *app) get(t *testing.T, path string) (string, string) {
	t.Helper()
	resp, err := a.client.Get(a.server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.Request.URL.Path, string(body)
}

// post submits a form, follows redirects and returns the final path and body.
func (a *app) post(t *testing.T, path string, form url.Values) (string, string) {
	t.Helper()
	resp, err := a.client.PostForm(a.server.URL+path, form)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.Request.URL.Path, string(body)
}

func TestSessionGuard_RedirectsToLogin(t *testing.T) {
	a := newApp(t, "router_guard")

	for _, path := range []string{"/mans-konts"} {
		finalPath, _ := a.get(t, path)
		assert.Equal(t, "/pieslegties", finalPath)
	}

	finalPath, _ := a.post(t, "/pievienot-uzdevumu", url.Values{"nosaukums": {"x"}})
	assert.Equal(t, "/pieslegties", finalPath)
}

func TestAdminGuard_RedirectsToAdminLogin(t *testing.T) {
	a := newApp(t, "router_admin_guard")

	finalPath, _ := a.get(t, "/admin-panelis")
	assert.Equal(t, "/admin-pieslegties", finalPath)
}

func TestRegisterFlow(t *testing.T) {
	a := newApp(t, "router_register")

	// Missing fields flash back to the form.
	finalPath, body := a.post(t, "/registrejies", url.Values{
		"lietotajvards": {"alice"},
	})
	assert.Equal(t, "/registrejies", finalPath)
	assert.Contains(t, body, "Lūdzu, aizpildiet visus laukus!")

	// Mismatched confirmation.
	finalPath, body = a.post(t, "/registrejies", url.Values{
		"lietotajvards":  {"alice"},
		"epasts":         {"a@x.com"},
		"parole":         {"pw1"},
		"atkartotparoli": {"pw2"},
	})
	assert.Equal(t, "/registrejies", finalPath)
	assert.Contains(t, body, "Paroles nesakrīt!")

	// Success lands on the login page.
	finalPath, body = a.post(t, "/registrejies", url.Values{
		"lietotajvards":  {"alice"},
		"epasts":         {"a@x.com"},
		"parole":         {"pw1"},
		"atkartotparoli": {"pw1"},
	})
	assert.Equal(t, "/pieslegties", finalPath)
	assert.Contains(t, body, "Reģistrācija veiksmīga!")

	// Second registration with the same username is rejected.
	finalPath, body = a.post(t, "/registrejies", url.Values{
		"lietotajvards":  {"alice"},
		"epasts":         {"other@x.com"},
		"parole":         {"pw2"},
		"atkartotparoli": {"pw2"},
	})
	assert.Equal(t, "/registrejies", finalPath)
	assert.Contains(t, body, "Lietotājvārds jau eksistē!")
}

func TestFullScenario(t *testing.T) {
	a := newApp(t, "router_scenario")

	// Register alice.
	finalPath, _ := a.post(t, "/registrejies", url.Values{
		"lietotajvards":  {"alice"},
		"epasts":         {"a@x.com"},
		"parole":         {"pw1"},
		"atkartotparoli": {"pw1"},
	})
	require.Equal(t, "/pieslegties", finalPath)

	// Wrong password is rejected.
	finalPath, body := a.post(t, "/pieslegties", url.Values{
		"lietotajvards": {"alice"},
		"parole":        {"wrong"},
	})
	assert.Equal(t, "/pieslegties", finalPath)
	assert.Contains(t, body, "Nepareizs lietotājvārds vai parole!")

	// Login succeeds, session established, activity stamped.
	finalPath, body = a.post(t, "/pieslegties", url.Values{
		"lietotajvards": {"alice"},
		"parole":        {"pw1"},
	})
	require.Equal(t, "/mans-konts", finalPath)
	assert.Contains(t, body, "Sveiks, alice!")
	assert.Contains(t, body, "Tests ir zaļš.")

	var user models.User
	require.NoError(t, a.db.Where("username = ?", "alice").First(&user).Error)
	require.NotNil(t, user.LastActiveAt)

	// Add a task; it shows up uncompleted.
	finalPath, body = a.post(t, "/pievienot-uzdevumu", url.Values{
		"nosaukums":    {"Buy milk"},
		"apraksts":     {"desc"},
		"prioritate":   {"high"},
		"beigu_datums": {"2024-01-01"},
	})
	require.Equal(t, "/mans-konts", finalPath)
	assert.Contains(t, body, "Buy milk")
	assert.Contains(t, body, "Nav izpildīts")

	var task models.Task
	require.NoError(t, a.db.Where("title = ?", "Buy milk").First(&task).Error)
	assert.False(t, task.Done)

	// Complete it.
	finalPath, body = a.post(t, "/atzimet-izpilditu/"+itoa(task.ID), nil)
	require.Equal(t, "/mans-konts", finalPath)
	assert.NotContains(t, body, "Nav izpildīts")
	assert.Contains(t, body, "Izpildīts")

	// Admin login with the wrong pair always fails.
	finalPath, body = a.post(t, "/admin-pieslegties", url.Values{
		"lietotajvards": {"alice"},
		"parole":        {"pw1"},
	})
	assert.Equal(t, "/admin-pieslegties", finalPath)
	assert.Contains(t, body, "Nepareizs lietotājvārds vai parole!")

	// Admin login with the configured pair succeeds.
	finalPath, body = a.post(t, "/admin-pieslegties", url.Values{
		"lietotajvards": {"admin"},
		"parole":        {"adminparole"},
	})
	require.Equal(t, "/admin-panelis", finalPath)
	assert.Contains(t, body, "alice")
	assert.Contains(t, body, "a@x.com")

	// Delete alice; her task stays behind with a dangling owner id.
	finalPath, body = a.post(t, "/dzest-lietotaju/"+itoa(user.ID), nil)
	require.Equal(t, "/admin-panelis", finalPath)
	assert.NotContains(t, body, "alice")

	var orphan models.Task
	require.NoError(t, a.db.First(&orphan, task.ID).Error)
	assert.Equal(t, user.ID, orphan.UserID)

	// Alice's session now resolves to a deleted user.
	finalPath, _ = a.get(t, "/mans-konts")
	assert.Equal(t, "/pieslegties", finalPath)
}

func TestDeleteTaskFlow(t *testing.T) {
	a := newApp(t, "router_delete_task")

	_, _ = a.post(t, "/registrejies", url.Values{
		"lietotajvards":  {"bob"},
		"epasts":         {"b@x.com"},
		"parole":         {"pw"},
		"atkartotparoli": {"pw"},
	})
	finalPath, _ := a.post(t, "/pieslegties", url.Values{
		"lietotajvards": {"bob"},
		"parole":        {"pw"},
	})
	require.Equal(t, "/mans-konts", finalPath)

	_, _ = a.post(t, "/pievienot-uzdevumu", url.Values{
		"nosaukums":    {"Old task"},
		"apraksts":     {"d"},
		"prioritate":   {"low"},
		"beigu_datums": {""},
	})

	var task models.Task
	require.NoError(t, a.db.Where("title = ?", "Old task").First(&task).Error)

	finalPath, body := a.post(t, "/dzest-uzdevumu/"+itoa(task.ID), nil)
	require.Equal(t, "/mans-konts", finalPath)
	assert.NotContains(t, body, "Old task")

	// Deleting again is a silent no-op.
	finalPath, _ = a.post(t, "/dzest-uzdevumu/"+itoa(task.ID), nil)
	assert.Equal(t, "/mans-konts", finalPath)
}

func TestLogout(t *testing.T) {
	a := newApp(t, "router_logout")

	_, _ = a.post(t, "/registrejies", url.Values{
		"lietotajvards":  {"carol"},
		"epasts":         {"c@x.com"},
		"parole":         {"pw"},
		"atkartotparoli": {"pw"},
	})
	finalPath, _ := a.post(t, "/pieslegties", url.Values{
		"lietotajvards": {"carol"},
		"parole":        {"pw"},
	})
	require.Equal(t, "/mans-konts", finalPath)

	finalPath, _ = a.get(t, "/atslegties")
	assert.Equal(t, "/", finalPath)

	// The session is gone; logging out again is still fine.
	finalPath, _ = a.get(t, "/mans-konts")
	assert.Equal(t, "/pieslegties", finalPath)
	finalPath, _ = a.get(t, "/atslegties")
	assert.Equal(t, "/", finalPath)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
