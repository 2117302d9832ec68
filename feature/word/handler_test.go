package word_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"lexicon-manager/feature/word"
	"lexicon-manager/feature/word/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) (*fiber.App, *word.Service, *gorm.DB) {
	svc, db := setupWordService(t)

	app := fiber.New()
	// Editor identity is normally injected by the auth middleware.
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("editor_id", c.Get("X-Editor-Id"))
		return c.Next()
	})
	word.NewHandler(svc).RegisterRoutes(app)
	return app, svc, db
}

func TestHandleGetWord(t *testing.T) {
	app, svc, _ := setupTestApp(t)

	w, err := svc.Create(context.Background(), models.Word{Word: "nri", Definitions: []string{"food"}})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/words/"+w.ID, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body models.PopulatedWord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "nri", body.Word.Word)
}

func TestHandleGetWordNotFound(t *testing.T) {
	app, _, _ := setupTestApp(t)

	req := httptest.NewRequest("GET", "/words/00000000-0000-0000-0000-000000000000", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleSearchWord(t *testing.T) {
	app, svc, _ := setupTestApp(t)

	_, err := svc.Create(context.Background(), models.Word{Word: "mmiri"})
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/words/search?q=mmiri", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	// Missing query parameter is rejected.
	resp, err = app.Test(httptest.NewRequest("GET", "/words/search", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleCreateWord(t *testing.T) {
	app, _, _ := setupTestApp(t)

	payload, _ := json.Marshal(fiber.Map{"word": "nri", "definitions": []string{"food"}})
	req := httptest.NewRequest("POST", "/words/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	var created models.Word
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "nri", created.Word)
}

func TestHandleCreateWordRejectsMissingHeadword(t *testing.T) {
	app, _, _ := setupTestApp(t)

	payload, _ := json.Marshal(fiber.Map{"definitions": []string{"food"}})
	req := httptest.NewRequest("POST", "/words/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleMergeSuggestion(t *testing.T) {
	app, _, db := setupTestApp(t)

	sug := models.WordSuggestion{Word: "nri", Definitions: []string{"food"}}
	require.NoError(t, db.Create(&sug).Error)

	req := httptest.NewRequest("POST", "/words/suggestions/"+sug.ID+"/merge", nil)
	req.Header.Set("X-Editor-Id", "editor-1")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var merged models.PopulatedWord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&merged))
	assert.Equal(t, "nri", merged.Word.Word)
}

func TestHandleMergeSuggestionRequiresEditor(t *testing.T) {
	app, _, db := setupTestApp(t)

	sug := models.WordSuggestion{Word: "nri"}
	require.NoError(t, db.Create(&sug).Error)

	req := httptest.NewRequest("POST", "/words/suggestions/"+sug.ID+"/merge", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleDeleteWord(t *testing.T) {
	app, svc, _ := setupTestApp(t)
	ctx := context.Background()

	primary, err := svc.Create(ctx, models.Word{Word: "nri"})
	require.NoError(t, err)
	doomed, err := svc.Create(ctx, models.Word{Word: "ncha"})
	require.NoError(t, err)

	req := httptest.NewRequest("DELETE", "/words/"+doomed.ID+"?primary="+primary.ID, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	// Missing primary parameter is a validation error.
	req = httptest.NewRequest("DELETE", "/words/"+primary.ID, nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
