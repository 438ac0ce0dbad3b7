package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newAuthRouter(token string) *gin.Engine {
	r := gin.New()
	r.Use(RequireToken(token))
	r.GET("/v1/owners", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "success"}) })
	return r
}

func TestRequireToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		token  string
		header string
		want   int
	}{
		{name: "no header", token: "secret", want: http.StatusUnauthorized},
		{name: "wrong token", token: "secret", header: "Bearer nope", want: http.StatusUnauthorized},
		{name: "missing scheme", token: "secret", header: "secret", want: http.StatusUnauthorized},
		{name: "valid token", token: "secret", header: "Bearer secret", want: http.StatusOK},
		{name: "gate disabled", token: "", want: http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/owners", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			newAuthRouter(tc.token).ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
			if tc.want == http.StatusUnauthorized && !strings.Contains(w.Body.String(), `"message":"You are not logged in"`) {
				t.Fatalf("unexpected body %s", w.Body.String())
			}
		})
	}
}
