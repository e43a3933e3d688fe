package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	productHTTP "item-service/internal/product/delivery/http"
)

func TestGetProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	productHTTP.RegisterRoutes(r)

	for _, path := range []string{"/product", "/product/"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
		if w.Body.String() != `{"quantity":1}` {
			t.Errorf("%s: unexpected body %s", path, w.Body.String())
		}
	}
}
