package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/footballhub/cli/internal/model"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return New(Options{BaseURL: srv.URL, Jar: jar}, zerolog.Nop()), srv
}

func writeEnvelope(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func TestClient_DecodesEnvelopeData(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/profile", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		data, _ := json.Marshal(model.Player{Email: "p1@x.com", Name: "P One", Points: 300})
		writeEnvelope(w, http.StatusOK, envelope{Success: true, Data: data})
	}))

	p, err := c.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "p1@x.com", p.Email)
	assert.Equal(t, 300, p.Points)
}

func TestClient_RejectionKeepsServerMessage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(w, http.StatusOK, envelope{Success: false, Message: "Selection is not affordable"})
	}))

	err := c.RespondToMatch(context.Background(), "m1", MatchResponse{Accept: true, Players: []string{"p1@x.com"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRejected)
	assert.Equal(t, "Selection is not affordable", err.Error())
	assert.Equal(t, "Selection is not affordable", Message(err))
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "not found", status: http.StatusNotFound, want: ErrNotFound},
		{name: "unauthorized", status: http.StatusUnauthorized, want: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, want: ErrForbidden},
		// A well-formed envelope on an unmapped status is still a rejection;
		// only envelope-less failures collapse to transport.
		{name: "server error", status: http.StatusInternalServerError, want: ErrRejected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				writeEnvelope(w, tt.status, envelope{Success: false})
			}))
			_, err := c.Player(context.Background(), "missing@x.com")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClient_NonEnvelopeBodyIsTransportFailure(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))

	_, err := c.Teams(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Equal(t, "Something went wrong, Please try again later!", Message(err))
}

func TestClient_ConnectionRefusedIsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(Options{BaseURL: url}, zerolog.Nop())
	_, err := c.Trophies(context.Background())
	assert.ErrorIs(t, err, ErrTransport)
}

func TestClient_CookieSessionPersistsAcrossRequests(t *testing.T) {
	const session = "s3cr3t"
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			http.SetCookie(w, &http.Cookie{Name: "hub_session", Value: session, Path: "/"})
			data, _ := json.Marshal(model.Player{Email: "p1@x.com"})
			writeEnvelope(w, http.StatusOK, envelope{Success: true, Data: data})
		case "/profile":
			cookie, err := r.Cookie("hub_session")
			if err != nil || cookie.Value != session {
				writeEnvelope(w, http.StatusUnauthorized, envelope{Success: false})
				return
			}
			data, _ := json.Marshal(model.Player{Email: "p1@x.com"})
			writeEnvelope(w, http.StatusOK, envelope{Success: true, Data: data})
		default:
			http.NotFound(w, r)
		}
	}))

	_, err := c.Login(context.Background(), Credentials{Email: "p1@x.com", Password: "pw"})
	require.NoError(t, err)

	p, err := c.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "p1@x.com", p.Email)
}

func TestClient_EscapesEmailPathSegments(t *testing.T) {
	var gotPath string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		writeEnvelope(w, http.StatusOK, envelope{Success: true})
	}))

	err := c.DeleteNotification(context.Background(), "p one@x.com", "n1")
	require.NoError(t, err)
	assert.Equal(t, "/players/p%20one@x.com/notifications/n1", gotPath)
}

func TestFieldErrors(t *testing.T) {
	err := NewInvalidInputError([]FieldError{
		{Field: "email", Message: "must be a valid email address"},
		{Field: "password", Message: "must not be empty"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Len(t, FieldErrors(err), 2)
	assert.Equal(t, "Some fields are invalid", Message(err))

	assert.NoError(t, NewInvalidInputError(nil))
	assert.Nil(t, FieldErrors(ErrNotFound))
}
