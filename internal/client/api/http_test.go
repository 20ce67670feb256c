package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/vocabbuilder/internal/client/models"
	"github.com/dmitrijs2005/vocabbuilder/internal/common"
)

type staticHeaders struct {
	key   string
	value string
}

func (h staticHeaders) AuthHeader(ctx context.Context) (string, string, error) {
	return h.key, h.value, nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, staticHeaders{key: "Authorization", value: "Bearer tok123"})
}

func TestHTTPClient_Login_SendsForm(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"), "login must not carry a bearer token")
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "user", r.PostForm.Get("username"))
		assert.Equal(t, "user123", r.PostForm.Get("password"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok123",
			"token_type":   "bearer",
			"user":         models.User{ID: 1, Username: "user"},
		})
	})

	token, user, err := client.Login(context.Background(), "user", "user123")
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)
	assert.Equal(t, "user", user.Username)
	assert.False(t, user.IsAdmin)
}

func TestHTTPClient_Login_SurfacesDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect username or password"})
	})

	_, _, err := client.Login(context.Background(), "user", "wrong")
	require.Error(t, err)
	assert.EqualError(t, err, "Incorrect username or password")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestHTTPClient_Register_SendsJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "newuser", payload["username"])
		assert.Equal(t, "new@example.com", payload["email"])
		assert.Equal(t, "secret", payload["password"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok456",
			"user":         models.User{ID: 2, Username: "newuser"},
		})
	})

	token, user, err := client.Register(context.Background(), "newuser", "new@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok456", token)
	assert.Equal(t, "newuser", user.Username)
}

func TestHTTPClient_Terms_CarriesBearerToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/terms", r.URL.Path)
		assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]models.Term{
			{ID: 1, Term: "mutex", Definition: "d", Difficulty: models.DifficultyHard},
		})
	})

	terms, err := client.Terms(context.Background())
	require.NoError(t, err)
	require.Len(t, terms, 1)
	assert.Equal(t, "mutex", terms[0].Term)
	assert.Equal(t, models.DifficultyHard, terms[0].Difficulty)
}

func TestHTTPClient_QuizRandom(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/quiz/random", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("count"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"questions": []models.QuizQuestion{{ID: 1, Definition: "d"}, {ID: 2, Definition: "e"}},
			"total":     2,
		})
	})

	questions, err := client.QuizRandom(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, int64(2), questions[1].ID)
}

func TestHTTPClient_CheckAnswer(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/quiz/check", r.URL.Path)

		var payload struct {
			TermID     int64  `json:"term_id"`
			UserAnswer string `json:"user_answer"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, int64(42), payload.TermID)
		assert.Equal(t, "mutex", payload.UserAnswer)

		_ = json.NewEncoder(w).Encode(models.AnswerFeedback{
			Correct:       true,
			CorrectAnswer: "mutex",
			RealWorld:     "guards shared state",
		})
	})

	feedback, err := client.CheckAnswer(context.Background(), 42, "mutex")
	require.NoError(t, err)
	assert.True(t, feedback.Correct)
	assert.Equal(t, "mutex", feedback.CorrectAnswer)
}

func TestHTTPClient_SaveScore(t *testing.T) {
	var got models.ScoreTally
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/scores", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(models.Score{ID: 1, Correct: got.Correct, Total: got.Total})
	})

	err := client.SaveScore(context.Background(), models.ScoreTally{Correct: 7, Total: 10})
	require.NoError(t, err)
	assert.Equal(t, models.ScoreTally{Correct: 7, Total: 10}, got)
}

func TestHTTPClient_AdminTermCRUD(t *testing.T) {
	type call struct {
		method string
		path   string
	}
	var calls []call

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{method: r.Method, path: r.URL.Path})
		switch {
		case r.Method == http.MethodPost:
			var draft models.TermDraft
			require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
			_ = json.NewEncoder(w).Encode(models.Term{
				ID: 5, Term: draft.Term, Definition: draft.Definition,
				Example: draft.Example, RealWorld: draft.RealWorld, Difficulty: draft.Difficulty,
			})
		case r.Method == http.MethodPut:
			_ = json.NewEncoder(w).Encode(models.Term{ID: 5, Term: "updated"})
		default:
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "deleted"})
		}
	})

	ctx := context.Background()
	draft := models.TermDraft{Term: "goroutine", Definition: "d", Example: "e", RealWorld: "r", Difficulty: models.DifficultyHard}

	created, err := client.CreateTerm(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
	assert.Equal(t, models.DifficultyHard, created.Difficulty)

	updated, err := client.UpdateTerm(ctx, 5, draft)
	require.NoError(t, err)
	assert.Equal(t, "updated", updated.Term)

	require.NoError(t, client.DeleteTerm(ctx, 5))

	require.Equal(t, []call{
		{method: http.MethodPost, path: "/api/admin/terms"},
		{method: http.MethodPut, path: "/api/admin/terms/5"},
		{method: http.MethodDelete, path: "/api/admin/terms/5"},
	}, calls)
}

func TestHTTPClient_NoDetailBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Stats(context.Background())
	require.Error(t, err)
	assert.EqualError(t, err, "request failed with status 500")
}
