package goodmail_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/goodmail"
	"github.com/dmitrymomot/goodmail/pkg/builder"
)

func TestPreviewHandler(t *testing.T) {
	t.Parallel()

	h := goodmail.Headers{Subject: "Preview"}
	handler := goodmail.PreviewHandler(newTestMailer(acmeConfig()), h, helloBody)

	t.Run("html by default", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/preview", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), ">Hi</h1>")
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/preview?format=text", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, "Hi\n\nBody", rec.Body.String())
	})

	t.Run("render error", func(t *testing.T) {
		t.Parallel()

		broken := goodmail.PreviewHandler(newTestMailer(acmeConfig()), h, func(b *builder.Builder) error {
			return b.Spacer("tall")
		})

		rec := httptest.NewRecorder()
		broken.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/preview", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid argument")
	})
}
