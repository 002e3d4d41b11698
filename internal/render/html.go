package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"

	"sitegen-workers/internal/common/errors"
	"sitegen-workers/internal/models"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Page.Title}}</title>
<link rel="stylesheet" href="/styles.css">
</head>
<body class="layout-{{.Layout}}">
<nav>
<a class="brand" href="/">{{.App.Name}}</a>
<ul>
{{- range .App.Navigation}}
<li><a href="{{.Path}}"{{if eq .PageName $.Page.Name}} aria-current="page"{{end}}>{{.Label}}</a></li>
{{- end}}
</ul>
</nav>
<main id="{{.Page.ID}}">
{{- range .Page.Sections}}
{{template "section" .}}
{{- end}}
</main>
</body>
</html>
{{define "section"}}<section class="section section-{{.Kind}}{{with .Variant}} variant-{{.}}{{end}}">
{{- if eq (print .Kind) "hero"}}
<h1>{{index .Props "headline"}}</h1>
<p class="subheadline">{{index .Props "subheadline"}}</p>
<div class="actions">
<a class="button primary" href="{{index .Props "primaryCtaHref"}}">{{index .Props "primaryCtaLabel"}}</a>
<a class="button secondary" href="{{index .Props "secondaryCtaHref"}}">{{index .Props "secondaryCtaLabel"}}</a>
</div>
{{- with index .Props "image"}}
<img src="{{.}}" alt="">
{{- end}}
{{- else if eq (print .Kind) "menu"}}
<h2>{{index .Props "title"}}</h2>
{{- range menuGroups .Items}}
<div class="menu-group">
{{- with .Category}}<h3>{{.}}</h3>{{end}}
{{- range .Items}}
<div class="menu-item"><span class="name">{{.Title}}</span> <span class="price">{{.Price}}</span><p>{{.Description}}</p></div>
{{- end}}
</div>
{{- end}}
{{- else if eq (print .Kind) "contact"}}
<h2>{{index .Props "title"}}</h2>
<address>
<strong>{{index .Props "businessName"}}</strong>
{{- with index .Props "address"}}<br>{{.}}{{end}}
{{- with index .Props "location"}}<br>{{.}}{{end}}
{{- with index .Props "phone"}}<br><a href="tel:{{.}}">{{.}}</a>{{end}}
{{- with index .Props "email"}}<br><a href="mailto:{{.}}">{{.}}</a>{{end}}
</address>
{{- else if eq (print .Kind) "cta"}}
<h2>{{index .Props "headline"}}</h2>
<a class="button" href="{{index .Props "href"}}">{{index .Props "label"}}</a>
{{- else if eq (print .Kind) "text"}}
{{- with index .Props "title"}}<h2>{{.}}</h2>{{end}}
<div class="prose">{{markdown (index .Props "body")}}</div>
{{- else}}
{{- with index .Props "title"}}<h2>{{.}}</h2>{{end}}
<ul class="items">
{{- range .Items}}
<li>{{with .Image}}<img src="{{.}}" alt="">{{end}}<h3>{{.Title}}</h3>{{with .Price}}<span class="price">{{.}}</span>{{end}}{{with .Description}}<p>{{.}}</p>{{end}}</li>
{{- end}}
</ul>
{{- end}}
</section>{{end}}`

type menuGroup struct {
	Category string
	Items    []models.ContentItem
}

// groupMenu keeps categories in first-appearance order.
func groupMenu(items []models.ContentItem) []menuGroup {
	var groups []menuGroup
	index := map[string]int{}
	for _, it := range items {
		i, ok := index[it.Category]
		if !ok {
			i = len(groups)
			index[it.Category] = i
			groups = append(groups, menuGroup{Category: it.Category})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}

type HTMLRenderer struct {
	tmpl *template.Template
	md   goldmark.Markdown
}

func NewHTMLRenderer() *HTMLRenderer {
	r := &HTMLRenderer{md: goldmark.New()}
	r.tmpl = template.Must(template.New("page").Funcs(template.FuncMap{
		"markdown":   r.markdown,
		"menuGroups": groupMenu,
	}).Parse(pageTemplate))
	return r
}

func (r *HTMLRenderer) Name() string { return HTML }

// markdown converts with goldmark defaults, which drop raw HTML.
func (r *HTMLRenderer) markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil // #nosec G203 -- goldmark output without unsafe mode
}

type pageData struct {
	Page   models.Page
	App    models.AppComposition
	Layout string
}

// RenderSite writes one index.html per route plus styles.css.
func (r *HTMLRenderer) RenderSite(site *models.GeneratedSite) (Files, error) {
	if site == nil {
		return nil, errors.NewRenderError(HTML, fmt.Errorf("site is nil"))
	}
	files := Files{"styles.css": []byte(site.CSS)}
	for _, p := range orderedPages(site) {
		var buf bytes.Buffer
		err := r.tmpl.Execute(&buf, pageData{Page: p, App: site.App, Layout: site.Layout.ID})
		if err != nil {
			return nil, errors.NewRenderError(HTML, fmt.Errorf("page %s: %w", p.Name, err))
		}
		files[pageFile(p.Path, "html")] = buf.Bytes()
	}
	return files, nil
}
