package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/pcv-2026.net/internal/core/ports/primary"
	auth2 "gitlab.com/pcv-2026.net/internal/core/services/auth"
	"gitlab.com/pcv-2026.net/internal/core/services/draft"
	"gitlab.com/pcv-2026.net/internal/core/services/problem"
	"gitlab.com/pcv-2026.net/internal/core/services/submission"
	"gitlab.com/pcv-2026.net/internal/handlers"
	"gitlab.com/pcv-2026.net/internal/handlers/auth"
	"gitlab.com/pcv-2026.net/internal/handlers/drafts"
	"gitlab.com/pcv-2026.net/internal/handlers/problems"
	"gitlab.com/pcv-2026.net/internal/handlers/submissions"
)

type ServiceProvider struct {
	problemService    problem.IProblemService
	submissionService submission.ISubmissionService
	draftService      draft.IDraftService
	jwtProvider       primary.JWTService

	ggAuth    auth2.IAuthService
	localAuth auth2.IAuthService
}

func NewServiceProvider(
	problemService problem.IProblemService,
	submissionService submission.ISubmissionService,
	draftService draft.IDraftService,
	jwtProvider primary.JWTService,
	ggAuth auth2.IAuthService,
	localAuth auth2.IAuthService,
) *ServiceProvider {
	return &ServiceProvider{
		problemService:    problemService,
		submissionService: submissionService,
		draftService:      draftService,
		jwtProvider:       jwtProvider,
		ggAuth:            ggAuth,
		localAuth:         localAuth,
	}
}

type Server struct {
	router          *mux.Router
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	logger          primary.Logger
	srv             *http.Server
}

func NewServer(port int, serviceName string, serviceProvider ServiceProvider, logger primary.Logger) *Server {
	return &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	r := mux.NewRouter()
	mw := handlers.NewMiddleware(s.ServiceProvider.jwtProvider)
	problems.
		NewProblemHandler(s.ServiceProvider.problemService, s.logger).
		RegisterRoutes(r)
	submissions.
		NewSubmissionHandler(s.ServiceProvider.submissionService, s.logger).
		RegisterRoutes(r, mw)
	drafts.
		NewDraftHandler(s.ServiceProvider.draftService, s.logger).
		RegisterRoutes(r, mw)
	auth.NewHandler().RegisterRoutes(r, &auth.ServiceDependencies{
		GGAuthService:    s.ServiceProvider.ggAuth,
		LocalAuthService: s.ServiceProvider.localAuth,
	})
	s.router = r
	return nil
}

func (s *Server) Start(ctx context.Context) {
	// Set up server
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start the server in a goroutine
	go func() {
		s.logger.Info("Server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down http server...")
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
