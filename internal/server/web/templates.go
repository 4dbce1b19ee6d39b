// Package web отдаёт HTML-страницы CareerMind: логин, регистрацию и дашборд.
//
// Каждое взаимодействие: событие контроллера страниц, затем Render.
// Формы логина, регистрации и навигации отвечают редиректом на "/",
// формы дашборда сразу отрисовывают результат проверки.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/IvanChernomyrdin/careermind/internal/server/models"
	"github.com/IvanChernomyrdin/careermind/internal/server/page"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Pages — набор шаблонов, по одному на страницу (layout + content).
type Pages struct {
	byPage map[models.Page]*template.Template
}

// LoadPages парсит встроенные шаблоны.
func LoadPages() (*Pages, error) {
	p := &Pages{byPage: make(map[models.Page]*template.Template)}
	for _, pg := range []models.Page{models.PageLogin, models.PageRegister, models.PageDashboard} {
		t, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+string(pg)+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", pg, err)
		}
		p.byPage[pg] = t
	}
	return p, nil
}

// viewData — данные шаблона.
type viewData struct {
	Screen page.Screen
	Images map[string]bool
}

// Write отрисовывает экран в буфер и только потом пишет ответ,
// чтобы ошибка шаблона не оставила полстраницы.
func (p *Pages) Write(w http.ResponseWriter, scr page.Screen, images map[string]bool) error {
	t, ok := p.byPage[scr.Page]
	if !ok {
		return fmt.Errorf("no template for page %q", scr.Page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", viewData{Screen: scr, Images: images}); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, err := buf.WriteTo(w)
	return err
}
