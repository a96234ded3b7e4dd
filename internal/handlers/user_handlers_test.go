package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	qt "github.com/frankban/quicktest"
	"github.com/gin-gonic/gin"

	"github.com/shoplyne/catalog-api/internal/models"
)

func TestRegister(t *testing.T) {
	c := qt.New(t)
	h, mock := setupTest(t)
	router := gin.New()
	router.POST("/auth/register", h.Register)

	mock.ExpectExec(insertUserSQL).
		WithArgs("new@example.com", sqlmock.AnyArg(), models.RoleUser, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(3, 1))

	w := performRequest(router, http.MethodPost, "/auth/register",
		`{"email":"new@example.com","password":"supersecret"}`)

	c.Assert(w.Code, qt.Equals, http.StatusCreated)
	c.Assert(w.Body.String(), qt.Not(qt.Contains), "supersecret")
	c.Assert(mock.ExpectationsWereMet(), qt.IsNil)
}

func TestRegisterShortPassword(t *testing.T) {
	c := qt.New(t)
	h, mock := setupTest(t)
	router := gin.New()
	router.POST("/auth/register", h.Register)

	w := performRequest(router, http.MethodPost, "/auth/register",
		`{"email":"new@example.com","password":"short"}`)

	c.Assert(w.Code, qt.Equals, http.StatusBadRequest)
	c.Assert(mock.ExpectationsWereMet(), qt.IsNil)
}

func TestLogin(t *testing.T) {
	c := qt.New(t)
	h, mock := setupTest(t)
	router := gin.New()
	router.POST("/auth/login", h.Login)

	t.Setenv("JWT_SECRET", "test-secret")

	stored := models.User{Email: "admin@example.com", Role: models.RoleAdmin}
	c.Assert(stored.SetPassword("supersecret"), qt.IsNil)

	mock.ExpectQuery(getUserByEmailSQL).
		WithArgs("admin@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "role", "created_at"}).
			AddRow(int64(1), stored.Email, stored.PasswordHash, stored.Role, time.Now()))

	w := performRequest(router, http.MethodPost, "/auth/login",
		`{"email":"admin@example.com","password":"supersecret"}`)

	c.Assert(w.Code, qt.Equals, http.StatusOK)

	var resp map[string]string
	c.Assert(json.Unmarshal(w.Body.Bytes(), &resp), qt.IsNil)
	c.Assert(resp["token"], qt.Not(qt.Equals), "")
	c.Assert(mock.ExpectationsWereMet(), qt.IsNil)
}

func TestLoginWrongPassword(t *testing.T) {
	c := qt.New(t)
	h, mock := setupTest(t)
	router := gin.New()
	router.POST("/auth/login", h.Login)

	stored := models.User{Email: "admin@example.com", Role: models.RoleAdmin}
	c.Assert(stored.SetPassword("supersecret"), qt.IsNil)

	mock.ExpectQuery(getUserByEmailSQL).
		WithArgs("admin@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "role", "created_at"}).
			AddRow(int64(1), stored.Email, stored.PasswordHash, stored.Role, time.Now()))

	w := performRequest(router, http.MethodPost, "/auth/login",
		`{"email":"admin@example.com","password":"wrong-password"}`)

	c.Assert(w.Code, qt.Equals, http.StatusUnauthorized)
	c.Assert(mock.ExpectationsWereMet(), qt.IsNil)
}

func TestLoginUnknownUser(t *testing.T) {
	c := qt.New(t)
	h, mock := setupTest(t)
	router := gin.New()
	router.POST("/auth/login", h.Login)

	mock.ExpectQuery(getUserByEmailSQL).
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "role", "created_at"}))

	w := performRequest(router, http.MethodPost, "/auth/login",
		`{"email":"ghost@example.com","password":"whatever1"}`)

	c.Assert(w.Code, qt.Equals, http.StatusUnauthorized)
	c.Assert(mock.ExpectationsWereMet(), qt.IsNil)
}
