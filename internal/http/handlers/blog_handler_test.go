package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestBlogHandler_Get_InvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &BlogHandler{blogs: nil}
	r.GET("/admin/blogs/blog/:id", handler.Get)

	req, _ := http.NewRequest("GET", "/admin/blogs/blog/invalid-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBlogHandler_Hide_InvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &BlogHandler{blogs: nil}
	r.PUT("/admin/blogs/blog/:id/hide", handler.Hide)

	req, _ := http.NewRequest("PUT", "/admin/blogs/blog/invalid-uuid/hide", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBlogHandler_Create_InvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &BlogHandler{blogs: nil}
	r.POST("/admin/blogs/blog", handler.Create)

	req, _ := http.NewRequest("POST", "/admin/blogs/blog", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
