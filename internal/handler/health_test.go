package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func healthEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := &HealthHandler{} // no DB wired
	h.Register(engine)
	return engine
}

func TestHealthz(t *testing.T) {
	engine := healthEngine()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200", rec.Code)
	}
}

func TestReadyz_NoDBIsUnavailable(t *testing.T) {
	engine := healthEngine()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status=%d, want 503 when no DB is wired", rec.Code)
	}
}
