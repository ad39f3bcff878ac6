package goodmail

import (
	"net/http"
)

// PreviewHandler serves a rendered email for inspection in a browser during
// development. The HTML part is served by default; "?format=text" serves the
// text part. Every request renders again, so template and configuration
// changes show up on reload.
func PreviewHandler(m *Mailer, h Headers, block Block) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts, err := m.Render(r.Context(), h, block)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if r.URL.Query().Get("format") == "text" {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = w.Write([]byte(parts.Text))
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(parts.HTML))
	})
}
