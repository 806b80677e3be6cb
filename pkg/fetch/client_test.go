package fetch

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const timePayload = `{
    "time": "02:32:05 AM",
    "milliseconds_since_epoch": 1491532325034,
    "date": "04-07-2017"
}`

func timeServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(timePayload))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClientGet(t *testing.T) {
	srv := timeServer(t)

	body, err := NewClient(true, nil).Get(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, timePayload, string(body))
}

func TestClientGetSendsJSONContentType(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Content-Type")
		w.Write([]byte("{}"))
	}))
	t.Cleanup(srv.Close)

	_, err := NewClient(true, nil).Get(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "application/json", got)
}

func TestClientGetNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	_, err := NewClient(true, nil).Get(srv.URL)
	assert.Error(t, err)
}

func TestClientGetJSON(t *testing.T) {
	srv := timeServer(t)

	var doc struct {
		Time string `json:"time"`
		Date string `json:"date"`
	}
	err := NewClient(true, nil).GetJSON(srv.URL, &doc)
	require.NoError(t, err)
	assert.Equal(t, "02:32:05 AM", doc.Time)
	assert.Equal(t, "04-07-2017", doc.Date)
}

func TestClientSkipsTLSVerificationWhenDisabled(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(timePayload))
	}))
	t.Cleanup(srv.Close)

	// The test server's certificate is self-signed.
	_, err := NewClient(true, nil).Get(srv.URL)
	assert.Error(t, err)

	body, err := NewClient(false, nil).Get(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, timePayload, string(body))
}

func TestCurrentSecond(t *testing.T) {
	srv := timeServer(t)

	second, err := NewClient(true, nil).CurrentSecond(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 5, second)
}

func TestCurrentSecondBadTime(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"time": "not a clock"}`))
	}))
	t.Cleanup(srv.Close)

	_, err := NewClient(true, nil).CurrentSecond(srv.URL)
	assert.Error(t, err)
}

func TestCurrentSecondUnreachable(t *testing.T) {
	srv := timeServer(t)
	url := srv.URL
	srv.Close()

	_, err := NewClient(true, nil).CurrentSecond(url)
	assert.Error(t, err)
}
