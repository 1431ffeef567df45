package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/console/internal/auth/session"
	"github.com/smallbiznis/console/internal/blobstore"
	"github.com/smallbiznis/console/internal/config"
	invitationdomain "github.com/smallbiznis/console/internal/invitation/domain"
	"github.com/smallbiznis/console/internal/observability"
	obsmiddleware "github.com/smallbiznis/console/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/console/internal/observability/metrics"
	obstracing "github.com/smallbiznis/console/internal/observability/tracing"
	organizationdomain "github.com/smallbiznis/console/internal/organization/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	fx.Provide(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		respondOK(c, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	if !obsCfg.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg config.Config, s *Server, log *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           s.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("http server listening", zap.String("addr", ln.Addr().String()))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

// IdentityResolver turns a session cookie value into an identity.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (session.Identity, bool, error)
}

type Server struct {
	engine          *gin.Engine
	cfg             config.Config
	sessions        *session.Manager
	identities      IdentityResolver
	invitationSvc   invitationdomain.Service
	organizationSvc organizationdomain.Service
	blobs           blobstore.Store
}

type ServerParams struct {
	fx.In

	Gin             *gin.Engine
	Cfg             config.Config
	Sessions        *session.Manager
	Identities      *session.Provider
	InvitationSvc   invitationdomain.Service
	OrganizationSvc organizationdomain.Service
	Blobs           blobstore.Store
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:          p.Gin,
		cfg:             p.Cfg,
		sessions:        p.Sessions,
		identities:      p.Identities,
		invitationSvc:   p.InvitationSvc,
		organizationSvc: p.OrganizationSvc,
		blobs:           p.Blobs,
	}

	svc.registerAuthRoutes()
	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAuthRoutes() {
	s.engine.GET("/logout", s.Logout)
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api", s.SessionRequired())

	api.GET("/invitations", s.ListInvitations)

	// -------- Layout data --------
	api.GET("/organizations/:orgId", s.GetOrganization)
	api.GET("/organizations/:orgId/logo", s.GetOrganizationLogo)
}
