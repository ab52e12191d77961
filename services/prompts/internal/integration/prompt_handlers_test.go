package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/vinyl_shop/services/prompts/internal/defaults"
	"github.com/Skotchmaster/vinyl_shop/services/prompts/internal/httpserver"
	"github.com/Skotchmaster/vinyl_shop/services/prompts/internal/models"
	"github.com/Skotchmaster/vinyl_shop/services/prompts/internal/repo"
	"github.com/Skotchmaster/vinyl_shop/services/prompts/internal/seed"
	"github.com/Skotchmaster/vinyl_shop/services/prompts/internal/service"
)

type testEnv struct {
	E    *echo.Echo
	DB   *gorm.DB
	Repo *repo.GormRepo
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&models.Prompt{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	r := &repo.GormRepo{DB: db}
	require.NoError(t, seed.Run(context.Background(), r))

	e := echo.New()
	httpserver.Register(e, &httpserver.Deps{
		PromptHandler: &httpserver.PromptHTTP{Svc: &service.PromptService{Repo: r}},
	})

	return &testEnv{E: e, DB: db, Repo: r}
}

func (env *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func TestSeedCreatesDefaults(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/prompts", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var prompts []models.Prompt
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prompts))
	require.Len(t, prompts, 3)

	ids := make([]string, 0, 3)
	for _, p := range prompts {
		ids = append(ids, p.ID)
		require.NotEmpty(t, p.Template)
	}
	require.ElementsMatch(t, []string{
		defaults.RecommendationPromptID,
		defaults.DescriptionPromptID,
		defaults.ChatConsultantPromptID,
	}, ids)
}

func TestSeedRefreshesStaleVersion(t *testing.T) {
	env := newTestEnv(t)

	// simulate a row seeded from an older build
	require.NoError(t, env.DB.Model(&models.Prompt{}).
		Where("id = ?", defaults.RecommendationPromptID).
		Updates(map[string]any{"template": "outdated text", "version": 0}).Error)

	require.NoError(t, seed.Run(context.Background(), env.Repo))

	var p models.Prompt
	require.NoError(t, env.DB.First(&p, "id = ?", defaults.RecommendationPromptID).Error)
	d, _ := defaults.ByID(defaults.RecommendationPromptID)
	require.Equal(t, d.Template, p.Template)
	require.Equal(t, d.Version, p.Version)
}

func TestSeedKeepsManualEdit(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPut, "/api/v1/prompts/"+defaults.ChatConsultantPromptID,
		map[string]string{"template": "my custom consultant text"})
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, seed.Run(context.Background(), env.Repo))

	var p models.Prompt
	require.NoError(t, env.DB.First(&p, "id = ?", defaults.ChatConsultantPromptID).Error)
	require.Equal(t, "my custom consultant text", p.Template, "same-version rows must keep manual edits")
}

func TestGetPrompt(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/prompts/"+defaults.DescriptionPromptID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var p models.Prompt
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	require.Equal(t, defaults.DescriptionPromptID, p.ID)
	require.Contains(t, p.Template, "виниловой пластинки")

	rec = env.do(t, http.MethodGet, "/api/v1/prompts/unknown", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdatePromptValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPut, "/api/v1/prompts/"+defaults.DescriptionPromptID,
		map[string]string{"template": "   "})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/v1/prompts/unknown",
		map[string]string{"template": "text"})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResetPrompt(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPut, "/api/v1/prompts/"+defaults.RecommendationPromptID,
		map[string]string{"template": "edited"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/prompts/"+defaults.RecommendationPromptID+"/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var p models.Prompt
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	d, _ := defaults.ByID(defaults.RecommendationPromptID)
	require.Equal(t, d.Template, p.Template)
}

func TestResetPromptWithoutDefault(t *testing.T) {
	env := newTestEnv(t)

	custom := &models.Prompt{ID: "custom_prompt", Name: "Custom", Template: "text", Version: 1}
	require.NoError(t, env.Repo.CreatePrompt(context.Background(), custom))

	rec := env.do(t, http.MethodPost, "/api/v1/prompts/custom_prompt/reset", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
