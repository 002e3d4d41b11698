package backend

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"sitegen-workers/internal/common/auth"
	"sitegen-workers/internal/common/config"
	"sitegen-workers/internal/common/logger"
	"sitegen-workers/internal/models"
	"sitegen-workers/internal/render"
	"sitegen-workers/internal/templates"
)

const (
	KindLocal = "local"
	KindHTTP  = "http"
)

// Set is every collaborator the router and tracker need. Nil members are unavailable.
type Set struct {
	Kind         string
	Assembler    Assembler
	Orchestrator Orchestrator
	Rebuilder    Rebuilder
	Deployer     Deployer
	Cleaner      Cleaner
}

type Assembler interface {
	Assemble(ctx context.Context, req models.AssemblyRequest) (*models.BackendResult, error)
}

type Orchestrator interface {
	Orchestrate(ctx context.Context, req models.OrchestrationRequest) (*models.BackendResult, error)
}

type Rebuilder interface {
	Rebuild(ctx context.Context, req models.RebuildRequest) (*models.BackendResult, error)
}

type Deployer interface {
	DeployProject(ctx context.Context, name string) (*models.DeployResult, error)
}

type Cleaner interface {
	DeleteProject(ctx context.Context, name string, opts models.CleanupOptions) error
}

// NewSet wires backends from configuration. fs is only used by the local backend;
// nil means the OS filesystem.
func NewSet(cfg config.GenerationConfig, fs afero.Fs, log logger.Logger) (*Set, error) {
	switch strings.ToLower(cfg.Backend) {
	case KindHTTP:
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("generation.base_url is required for the http backend")
		}
		timeout := config.GetDuration(cfg.Timeout)
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		c := NewClient(cfg.BaseURL, cfg.APIKey, timeout, log)
		if creds := credentials(cfg.Auth); creds.Enabled() {
			c.http = c.http.WithHTTPClient(auth.HTTPClient(context.Background(), creds, timeout))
		}
		s := &Set{Kind: KindHTTP, Assembler: c, Orchestrator: c, Deployer: c, Cleaner: c}
		if cfg.EnableRebuild {
			s.Rebuilder = c
		}
		return s, nil
	case "", KindLocal:
		r, err := render.New(cfg.Renderer)
		if err != nil {
			return nil, err
		}
		if fs == nil {
			fs = afero.NewOsFs()
		}
		w := render.NewProjectWriter(fs, cfg.ProjectsDir)
		projects := NewLocalProjects(w)
		return &Set{
			Kind:      KindLocal,
			Assembler: NewLocalAssembler(templates.Default, r, w, log),
			Deployer:  projects,
			Cleaner:   projects,
		}, nil
	default:
		return nil, fmt.Errorf("unknown generation backend %q", cfg.Backend)
	}
}

func credentials(a config.ServiceAuthConfig) auth.Credentials {
	return auth.Credentials{
		TokenURL:     a.TokenURL,
		KeycloakURL:  a.KeycloakURL,
		Realm:        a.Realm,
		ClientID:     a.ClientID,
		ClientSecret: a.ClientSecret,
		Scopes:       a.Scopes,
	}
}
