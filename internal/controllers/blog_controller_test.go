package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	assert.NoError(t, err)
	return db, mock
}

// An update payload carrying its own ID must not redirect the write away
// from the row named in the path.
func TestUpdateBlogIgnoresPayloadID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := setupMockDB(t)
	bc := NewBlogController(db)

	r := gin.New()
	r.PUT("/blogs/:id", bc.Update)

	mock.ExpectQuery(`SELECT \* FROM "blogs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "slug", "content"}).
			AddRow(1, "Old title", "old-title", "Old content"))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "blogs" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	payload, _ := json.Marshal(map[string]interface{}{
		"ID":      999,
		"title":   "New title",
		"slug":    "new-title",
		"content": "New content",
	})
	req := httptest.NewRequest("PUT", "/blogs/1", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Blog struct {
			ID    uint   `json:"ID"`
			Title string `json:"title"`
		} `json:"blog"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint(1), resp.Blog.ID)
	assert.Equal(t, "New title", resp.Blog.Title)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBlogMissingRow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := setupMockDB(t)
	bc := NewBlogController(db)

	r := gin.New()
	r.PUT("/blogs/:id", bc.Update)

	mock.ExpectQuery(`SELECT \* FROM "blogs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	payload := bytes.NewBufferString(`{"title":"t","slug":"s","content":"c"}`)
	req := httptest.NewRequest("PUT", "/blogs/42", payload)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
