package server

import (
	"html/template"
	"net/http"
	"time"

	"github.com/vovakirdan/tui-runner/internal/storage"
)

var adminTemplate = template.Must(template.New("admin").Funcs(template.FuncMap{
	"stamp": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("2006-01-02 15:04:05")
	},
}).Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Runner scores</title></head>
<body>
<h1>Scores</h1>
<p>{{.Stats.Count}} scores, best {{.Stats.HighScore}}, average {{printf "%.1f" .Stats.AvgScore}}, last played {{stamp .Stats.LastPlayed}}</p>
<table border="1" cellpadding="4">
<tr><th>ID</th><th>Name</th><th>Score</th><th>IP</th><th>Region</th><th>Time</th></tr>
{{range .Entries}}<tr><td>{{.ID}}</td><td>{{.Name}}</td><td>{{.Score}}</td><td>{{.IP}}</td><td>{{.Region}}</td><td>{{stamp .CreatedAt}}</td></tr>
{{end}}</table>
</body>
</html>
`))

type adminPage struct {
	Stats   storage.Stats
	Entries []storage.Entry
}

// handleAdmin implements GET /admin: every row, most recent first.
func (s *Server) handleAdmin(w http.ResponseWriter, r *http.Request) {
	entries, err := s.scores.All(r.Context())
	if err != nil {
		s.logger.Error("cannot load scores", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	stats, err := s.scores.Stats(r.Context())
	if err != nil {
		s.logger.Error("cannot load stats", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := adminTemplate.Execute(w, adminPage{Stats: stats, Entries: entries}); err != nil {
		s.logger.Error("cannot render admin page", "err", err)
	}
}
