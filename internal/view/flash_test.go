package view_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/oakmere/gatehouse/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"maragu.dev/gomponents/html"
)

func newFlashEcho() *echo.Echo {
	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("flash-test-secret-key-32-bytes!"))))
	return e
}

func TestFlashRoundTrip(t *testing.T) {
	e := newFlashEcho()

	e.GET("/set", func(c echo.Context) error {
		view.SetFlashError(c, "Invalid email or password")
		view.SetFlashEmail(c, "a@b.com")
		return c.NoContent(http.StatusOK)
	})
	e.GET("/get", func(c echo.Context) error {
		data := view.GetFlashData(c)
		require.Len(t, data.Error, 1)
		assert.Equal(t, "Invalid email or password", data.Error[0])
		assert.Empty(t, data.Success)
		assert.Equal(t, "a@b.com", view.GetFlashEmail(c))
		return c.NoContent(http.StatusOK)
	})

	setRec := httptest.NewRecorder()
	e.ServeHTTP(setRec, httptest.NewRequest(http.MethodGet, "/set", nil))
	require.Equal(t, http.StatusOK, setRec.Code)

	getReq := httptest.NewRequest(http.MethodGet, "/get", nil)
	for _, c := range setRec.Result().Cookies() {
		getReq.AddCookie(c)
	}
	getRec := httptest.NewRecorder()
	e.ServeHTTP(getRec, getReq)
	require.Equal(t, http.StatusOK, getRec.Code)
}

func TestGetFlashDataIsOneShot(t *testing.T) {
	e := newFlashEcho()

	e.GET("/consume", func(c echo.Context) error {
		view.SetFlashSuccess(c, "Saved.")
		first := view.GetFlashData(c)
		require.Len(t, first.Success, 1)

		second := view.GetFlashData(c)
		assert.Empty(t, second.Success)
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/consume", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRenderWritesHTML(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := view.RenderOK(c, html.P(html.Class("note")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Contains(t, rec.Body.String(), `<p class="note">`)
}
