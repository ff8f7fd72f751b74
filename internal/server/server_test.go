package server

import (
	"bookshop-api/internal/auth"
	"bookshop-api/internal/client"
	"bookshop-api/internal/config"
	"bookshop-api/internal/model"
	"bookshop-api/internal/repository"
	"bookshop-api/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testJWTSecret = "e2e-test-secret"

func newTestServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Book{}))

	stripeStub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"id":"pi_test","client_secret":"pi_test_secret_%s"}`, r.PostForm.Get("amount"))
	}))
	t.Cleanup(stripeStub.Close)

	stripeClient := client.NewStripeClient(&config.Stripe{
		BaseApiURL: stripeStub.URL,
		SecretKey:  "sk_test_123",
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	userRepo := repository.NewUserRepository(db)
	bookRepo := repository.NewBookRepository(db)
	tokens := auth.NewJWTService(testJWTSecret, time.Hour)

	srv := NewServer(
		service.NewAuthService(userRepo, auth.NewBcryptHasher(), tokens),
		service.NewBookService(bookRepo),
		service.NewCheckoutService(stripeClient),
		tokens,
		logger,
	)

	return srv, db
}

func newTestStack(t *testing.T) (*httptest.Server, *gorm.DB) {
	t.Helper()

	srv, db := newTestServer(t)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return ts, db
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestRegisterLoginAndListBooks(t *testing.T) {
	ts, db := newTestStack(t)

	require.NoError(t, db.Create(&model.Book{
		Title:    "The Go Programming Language",
		Author:   "Donovan & Kernighan",
		Price:    3999,
		Currency: "usd",
	}).Error)

	// register
	resp := postJSON(t, ts.URL+"/register", map[string]string{
		"username": "u", "email": "a@b.com", "password": "pw123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, decodeBody(t, resp)["message"])

	// login with the wrong password
	resp = postJSON(t, ts.URL+"/login", map[string]string{
		"email": "a@b.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// login with the right password
	resp = postJSON(t, ts.URL+"/login", map[string]string{
		"email": "a@b.com", "password": "pw123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := decodeBody(t, resp)["token"].(string)
	require.NotEmpty(t, token)

	// list books with the session token
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/books", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	booksResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer booksResp.Body.Close()
	require.Equal(t, http.StatusOK, booksResp.StatusCode)

	var books []map[string]any
	require.NoError(t, json.NewDecoder(booksResp.Body).Decode(&books))
	require.Len(t, books, 1)
	assert.Equal(t, "The Go Programming Language", books[0]["title"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ts, _ := newTestStack(t)

	resp := postJSON(t, ts.URL+"/register", map[string]string{
		"username": "u", "email": "dup@b.com", "password": "pw123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, ts.URL+"/register", map[string]string{
		"username": "u2", "email": "dup@b.com", "password": "other",
	})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestLoginUnknownUser(t *testing.T) {
	ts, _ := newTestStack(t)

	resp := postJSON(t, ts.URL+"/login", map[string]string{
		"email": "ghost@b.com", "password": "pw123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBooksRequireSession(t *testing.T) {
	ts, _ := newTestStack(t)

	// no header at all -> forbidden
	resp, err := http.Get(ts.URL + "/books")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// forged token -> unauthorized
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/books", nil)
	forged, err := auth.NewJWTService("some-other-secret", time.Hour).Issue("user-1")
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+forged)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// expired token -> unauthorized
	expired, err := auth.NewJWTService(testJWTSecret, -time.Minute).Issue("user-1")
	require.NoError(t, err)
	req, _ = http.NewRequest(http.MethodGet, ts.URL+"/books", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestShutdownDrainsWithinContext(t *testing.T) {
	srv, _ := newTestServer(t)

	go func() {
		_ = srv.Start("127.0.0.1:0")
	}()

	// wait for the listener to come up
	deadline := time.Now().Add(5 * time.Second)
	for srv.echo.ListenerAddr() == nil {
		require.True(t, time.Now().Before(deadline), "server never started listening")
		time.Sleep(10 * time.Millisecond)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))
}

func TestCheckout(t *testing.T) {
	ts, _ := newTestStack(t)

	// guest checkout: no session required
	resp := postJSON(t, ts.URL+"/checkout", map[string]any{"amount": 10})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	// $10 -> 1000 minor units submitted upstream
	assert.Equal(t, "pi_test_secret_1000", decodeBody(t, resp)["clientSecret"])

	resp = postJSON(t, ts.URL+"/checkout", map[string]any{"amount": 0})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, ts.URL+"/checkout", map[string]any{"amount": -5})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
