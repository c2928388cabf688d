package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"anket.link/configs"
	"anket.link/pkg/testdb"
	"anket.link/pkg/tokens"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	ErrorCode  string          `json:"error_code"`
	Data       json.RawMessage `json:"data"`
	Pagination json.RawMessage `json:"pagination"`
}

type apiClient struct {
	t     *testing.T
	app   *fiber.App
	token string
}

func newTestApp(t *testing.T) *apiClient {
	t.Helper()
	app := fiber.New()
	deps := NewDependencies(testdb.Open(t), tokens.NewManager("test-gizli", time.Hour))
	SetupRoutes(app, &configs.AppConfig{AllowedOrigins: []string{"*"}}, deps)
	return &apiClient{t: t, app: app}
}

func (a *apiClient) call(method, path string, body interface{}) (int, envelope) {
	a.t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.app.Test(req, -1)
	require.NoError(a.t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(a.t, err)
	require.NoError(a.t, json.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

func (a *apiClient) login(email string) {
	a.t.Helper()
	status, _ := a.call("POST", "/api/v1/user/create", fiber.Map{"name": "Ayşe", "email": email, "password": "parola123"})
	require.Equal(a.t, fiber.StatusCreated, status)

	status, env := a.call("POST", "/api/v1/user/login", fiber.Map{"email": email, "password": "parola123"})
	require.Equal(a.t, fiber.StatusOK, status)
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(a.t, json.Unmarshal(env.Data, &data))
	a.token = data.Token
}

type formDetail struct {
	ID        string `json:"id"`
	Closed    bool   `json:"closed"`
	IsPublic  bool   `json:"is_public"`
	Questions []struct {
		ID      string `json:"id"`
		Options []struct {
			ID         string `json:"id"`
			OptionText string `json:"option_text"`
		} `json:"options"`
	} `json:"questions"`
}

func TestFeedbackLifecycle(t *testing.T) {
	api := newTestApp(t)

	status, env := api.call("GET", "/api/v1/feedback/all", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", env.ErrorCode)

	api.login("ayse@example.com")

	status, env = api.call("POST", "/api/v1/feedback/create", fiber.Map{"title": "x"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	status, env = api.call("POST", "/api/v1/feedback/create", fiber.Map{
		"title": "Etkinlik",
		"questions": []fiber.Map{
			{"question_text": "Adınız", "question_type": "text", "order_index": 0},
			{"question_text": "Oturumlar", "question_type": "checkbox", "order_index": 1, "options": []fiber.Map{
				{"option_text": "Açılış", "order_index": 0},
				{"option_text": "Panel", "order_index": 1},
			}},
		},
	})
	require.Equal(t, fiber.StatusCreated, status)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	// herkese açık değil: anonim ziyaretçi göremez ve gönderemez
	owner := api.token
	api.token = ""
	status, _ = api.call("GET", "/api/v1/feedback/"+created.ID, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	status, _ = api.call("POST", "/api/v1/response/"+created.ID, fiber.Map{"answers": []fiber.Map{{"question_id": "x", "answer_text": "y"}}})
	assert.Equal(t, fiber.StatusNotFound, status)
	api.token = owner

	status, _ = api.call("PATCH", "/api/v1/feedback/"+created.ID, fiber.Map{})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = api.call("PATCH", "/api/v1/feedback/"+created.ID, fiber.Map{"is_public": true})
	require.Equal(t, fiber.StatusOK, status)

	status, env = api.call("GET", "/api/v1/feedback/detail/"+created.ID, nil)
	require.Equal(t, fiber.StatusOK, status)
	var detail formDetail
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	require.Len(t, detail.Questions, 2)
	assert.True(t, detail.IsPublic)

	api.token = ""
	status, _ = api.call("GET", "/api/v1/feedback/"+created.ID, nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, env = api.call("POST", "/api/v1/response/"+created.ID, fiber.Map{"answers": []fiber.Map{
		{"question_id": detail.Questions[0].ID, "answer_text": "Ayşe"},
	}})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "BAD_REQUEST", env.ErrorCode)

	status, _ = api.call("POST", "/api/v1/response/"+created.ID, fiber.Map{"answers": []fiber.Map{
		{"question_id": detail.Questions[0].ID, "answer_text": "Ayşe"},
		{"question_id": detail.Questions[1].ID, "option_id": detail.Questions[1].Options[1].ID},
	}})
	require.Equal(t, fiber.StatusCreated, status)
	api.token = owner

	status, env = api.call("GET", "/api/v1/response/all/"+created.ID+"?page=1&limit=10", nil)
	require.Equal(t, fiber.StatusOK, status)
	var responses []struct {
		Answers []struct {
			OptionText *string `json:"option_text"`
		} `json:"answers"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &responses))
	require.Len(t, responses, 1)
	require.Len(t, responses[0].Answers, 2)
	assert.Nil(t, responses[0].Answers[0].OptionText)
	assert.Equal(t, "Panel", *responses[0].Answers[1].OptionText)

	var meta struct {
		Total      int `json:"total"`
		TotalPages int `json:"totalPages"`
	}
	require.NoError(t, json.Unmarshal(env.Pagination, &meta))
	assert.Equal(t, 1, meta.Total)
	assert.Equal(t, 1, meta.TotalPages)

	// kapalı form: GET 200 + closed, gönderim 409
	status, _ = api.call("PATCH", "/api/v1/feedback/"+created.ID, fiber.Map{"closed": true})
	require.Equal(t, fiber.StatusOK, status)
	api.token = ""
	status, env = api.call("GET", "/api/v1/feedback/"+created.ID, nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "form kapalı", env.Message)
	status, _ = api.call("POST", "/api/v1/response/"+created.ID, fiber.Map{"answers": []fiber.Map{
		{"question_id": detail.Questions[0].ID, "answer_text": "Ayşe"},
	}})
	assert.Equal(t, fiber.StatusConflict, status)
	api.token = owner

	status, _ = api.call("DELETE", "/api/v1/feedback/"+created.ID, nil)
	assert.Equal(t, fiber.StatusOK, status)
	status, _ = api.call("GET", "/api/v1/feedback/detail/"+created.ID, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestQuestionRoutesForbidStrangers(t *testing.T) {
	api := newTestApp(t)
	api.login("owner@example.com")

	status, env := api.call("POST", "/api/v1/feedback/create", fiber.Map{
		"title":     "Tek soru",
		"questions": []fiber.Map{{"question_text": "Neden?", "question_type": "text", "order_index": 0}},
	})
	require.Equal(t, fiber.StatusCreated, status)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	_, env = api.call("GET", "/api/v1/feedback/detail/"+created.ID, nil)
	var detail formDetail
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	questionID := detail.Questions[0].ID

	stranger := &apiClient{t: t, app: api.app}
	stranger.login("stranger@example.com")

	status, _ = stranger.call("PATCH", "/api/v1/question/"+questionID, fiber.Map{"question_text": "Ele geçirildi"})
	assert.Equal(t, fiber.StatusForbidden, status)
	status, _ = stranger.call("DELETE", "/api/v1/question/"+questionID, nil)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, env = api.call("DELETE", "/api/v1/question/"+questionID, nil)
	require.Equal(t, fiber.StatusOK, status)
	var deleted struct {
		FormClosed bool `json:"form_closed"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &deleted))
	assert.True(t, deleted.FormClosed)

	status, _ = api.call("PATCH", "/api/v1/question/not-a-uuid", fiber.Map{"question_text": "x y"})
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestHealthAndMetrics(t *testing.T) {
	api := newTestApp(t)

	status, env := api.call("GET", "/health", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, env.Success)

	resp, err := api.app.Test(httptest.NewRequest("GET", "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "forms_created_total")
}
