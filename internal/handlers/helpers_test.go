package handlers

import (
	"database/sql/driver"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	qt "github.com/frankban/quicktest"
	"github.com/gin-gonic/gin"
)

func setupTest(t *testing.T) (*Handlers, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	qt.New(t).Assert(err, qt.IsNil)
	t.Cleanup(func() { db.Close() })

	return &Handlers{DB: db}, mock
}

func performRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

var productTestColumns = strings.Split(productColumns, ", ")

func productRow(id int64, name, description string, price float64, categoryID int64) []driver.Value {
	now := time.Now()
	return []driver.Value{id, name, description, price, categoryID,
		"https://img.example.com/" + name + ".jpg",
		"https://shop.example.com/" + name,
		nil, now, now}
}

func productRows(rows ...[]driver.Value) *sqlmock.Rows {
	r := sqlmock.NewRows(productTestColumns)
	for _, row := range rows {
		r.AddRow(row...)
	}
	return r
}
