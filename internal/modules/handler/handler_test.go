package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sitegenie/sitegenie/internal/modules/model"
	"github.com/stretchr/testify/require"
)

type testResponse struct {
	Code      int                    `json:"code"`
	Data      map[string]interface{} `json:"data"`
	Msg       string                 `json:"message"`
	ErrorCode string                 `json:"error_code"`
}

var (
	testUser    = &model.User{ID: uuid.New(), Email: "owner@example.com"}
	testSession = &model.Session{ID: uuid.New(), UserID: testUser.ID}
	testProject = &model.Project{ID: uuid.New(), UserID: testUser.ID, Name: "Acme"}
)

// setupRouter returns an engine whose requests carry the test user, session and project.
func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user", testUser)
		c.Set("session", testSession)
		c.Set("project", testProject)
		c.Next()
	})
	return r
}

func projectPath(suffix string) string {
	return "/projects/" + testProject.ID.String() + suffix
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		b, err := sonic.Marshal(body)
		require.NoError(t, err)
		buf.Write(b)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doMultipart(t *testing.T, r http.Handler, path, field, name, content string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if field != "" {
		fw, err := mw.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) testResponse {
	t.Helper()
	var res testResponse
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &res))
	return res
}
