// Package view renders the dashboard HTML page from embedded templates.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/labstack/echo/v4"

	"farmdash/entities"
)

//go:embed templates/*.html
var embedded embed.FS

// Renderer is the echo.Renderer for every HTML page.
type Renderer struct {
	tmpl *template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

func funcMap() template.FuncMap {
	return template.FuncMap{
		"money":           Money,
		"humanize":        entities.Humanize,
		"priorityVariant": PriorityVariant,
		"typeVariant":     TypeVariant,
		"statusVariant":   StatusVariant,
		"weatherIcon":     WeatherIcon,
		"capitalize":      capitalize,
		"dueDate":         dueDate,
		"float":           func(f float64) string { return string(entities.FloatValue(f)) },
		"badge":           func(v Variant, text string) Badge { return Badge{Variant: v, Text: text} },
		"panel":           func(title, class string, body template.HTML) Panel { return Panel{title, class, body} },
	}
}

// Panel is the data of a card: a title around an already rendered body.
type Panel struct {
	Title string
	Class string
	Body  template.HTML
}

func New() (*Renderer, error) {
	var tmpl *template.Template
	funcs := funcMap()
	// render executes a component into HTML so it can be nested in a card.
	funcs["render"] = func(name string, data any) (template.HTML, error) {
		var b strings.Builder
		if err := tmpl.ExecuteTemplate(&b, name, data); err != nil {
			return "", err
		}
		return template.HTML(b.String()), nil
	}
	tmpl, err := template.New("root").Funcs(funcs).ParseFS(embedded, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	for _, name := range []string{"card", "badge", "statCard", "taskItem", "weatherCard", "dashboard"} {
		if tmpl.Lookup(name) == nil {
			return nil, fmt.Errorf("template %q is missing", name)
		}
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

// Money formats an amount as dollars with thousands separators.
func Money(f float64) string {
	sign := ""
	if f < 0 {
		sign, f = "-", -f
	}
	return sign + "$" + humanize.CommafWithDigits(f, 2)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func dueDate(s string) string {
	d, err := entities.ParseDate(s)
	if err != nil {
		return s
	}
	return d.Format("Jan 2, 2006")
}

func humanizeInt(n int) string { return humanize.Comma(int64(n)) }
