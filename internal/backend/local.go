package backend

import (
	"context"
	"net/url"
	"path/filepath"
	"strings"

	"sitegen-workers/internal/common/errors"
	"sitegen-workers/internal/common/logger"
	"sitegen-workers/internal/models"
	"sitegen-workers/internal/render"
	"sitegen-workers/internal/templates"
)

// tierPages are the page ids generated when a request names none. A missing tier means all pages.
var tierPages = map[string][]string{
	"L1": {"home", "contact"},
	"L2": {"home", "about", "services", "menu", "contact"},
	"L3": {"home", "about", "services", "menu", "gallery", "pricing", "team", "booking", "contact"},
}

// TierPages returns the default page ids for tier, or nil for all pages.
func TierPages(tier string) []string {
	pages, ok := tierPages[strings.ToUpper(tier)]
	if !ok {
		return nil
	}
	return append([]string(nil), pages...)
}

// LocalAssembler runs the deterministic path in-process: templates, renderer, project writer.
type LocalAssembler struct {
	library  *templates.Library
	renderer render.Renderer
	writer   *render.ProjectWriter
	log      logger.Logger
}

func NewLocalAssembler(lib *templates.Library, r render.Renderer, w *render.ProjectWriter, log logger.Logger) *LocalAssembler {
	if lib == nil {
		lib = templates.Default
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &LocalAssembler{library: lib, renderer: r, writer: w, log: log}
}

// FixtureFromRequest builds the business fixture an assembly request describes.
func FixtureFromRequest(req models.AssemblyRequest) *models.BusinessFixture {
	name := req.BusinessName
	if name == "" {
		name = req.Name
	}
	f := &models.BusinessFixture{
		Business: models.Business{
			Name:     name,
			Industry: req.Industry,
			Tagline:  req.Description.Tagline,
			Location: req.Description.Location,
		},
		Theme: models.Theme{Colors: req.Theme},
	}
	if req.Description.Text != "" {
		f.Pages = map[string]models.PageContent{
			"about": {Body: req.Description.Text},
		}
	}
	return f
}

func (a *LocalAssembler) Assemble(ctx context.Context, req models.AssemblyRequest) (*models.BackendResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pages := req.Description.Pages
	if len(pages) == 0 {
		pages = TierPages(req.Tier)
	}

	site, err := a.library.GenerateSite(FixtureFromRequest(req), templates.Options{
		Colors:    req.Theme,
		LayoutID:  req.Description.Layout,
		HeroStyle: req.Description.HeroStyle,
		Pages:     pages,
	})
	if err != nil {
		return nil, err
	}

	files, err := a.renderer.RenderSite(site)
	if err != nil {
		return nil, err
	}
	dir, err := a.writer.Write(req.Name, files)
	if err != nil {
		return nil, err
	}

	a.log.Info("Assembled site", map[string]interface{}{
		"project":  req.Name,
		"path":     dir,
		"pages":    len(site.Pages),
		"layout":   site.Layout.ID,
		"renderer": a.renderer.Name(),
		"runId":    req.RunID,
	})

	return &models.BackendResult{
		ProjectPath: dir,
		Pages:       site.PageNames(),
		Modules:     append([]string{}, req.AdminModules...),
	}, nil
}

// LocalProjects deploys and deletes projects written by a ProjectWriter.
type LocalProjects struct {
	writer *render.ProjectWriter
}

func NewLocalProjects(w *render.ProjectWriter) *LocalProjects {
	return &LocalProjects{writer: w}
}

// DeployProject only confirms the project exists; local projects are served from disk.
func (p *LocalProjects) DeployProject(ctx context.Context, name string) (*models.DeployResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ok, err := p.writer.Exists(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.NewDeployError(name, errors.NewValidationError("project "+name+" not found"))
	}
	return &models.DeployResult{
		URL:       fileURL(filepath.Join(p.writer.Root(), name, "index.html")),
		ProjectID: name,
		Status:    "local",
	}, nil
}

func fileURL(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return (&url.URL{Scheme: "file", Path: p}).String()
}

// DeleteProject removes the project directory. LocalOnly makes no difference here.
func (p *LocalProjects) DeleteProject(ctx context.Context, name string, _ models.CleanupOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.writer.Delete(name)
}
