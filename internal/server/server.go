package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	adminapp "github.com/mashatel/directory-services/api/internal/admin/application"
	"github.com/mashatel/directory-services/api/internal/config"
	mongodoc "github.com/mashatel/directory-services/api/internal/infrastructure/mongo"
	adminhttp "github.com/mashatel/directory-services/api/internal/interfaces/http/admin"
	commonhttp "github.com/mashatel/directory-services/api/internal/interfaces/http/common"
	publichttp "github.com/mashatel/directory-services/api/internal/interfaces/http/public"
	publicapp "github.com/mashatel/directory-services/api/internal/public/application"
)

// Server manages the HTTP lifecycle and acts as the composition root wiring
// repositories, application services and handlers together.
type Server struct {
	logger               *slog.Logger
	client               *mongo.Client
	database             *mongo.Database
	location             *time.Location
	jwtConfig            config.JWTConfig
	httpClient           *http.Client
	messengerEndpoint    string
	messengerDestination string
	adminContactBaseURL  string
	addr                 string
	allowedOrigins       []string

	nurseryQueries      publicapp.NurseryQueryService
	offerQueries        publicapp.OfferQueryService
	listingQueries      publicapp.ListingQueryService
	surveyCommands      publicapp.SurveyCommandService
	contactCommands     publicapp.ContactCommandService
	failedNotifications *mongo.Collection

	adminNurseryService adminapp.NurseryService
	adminOfferService   adminapp.OfferService
	adminListingService adminapp.ListingService
	adminSurveyService  adminapp.SurveyService
	adminContactService adminapp.ContactService
}

// New assembles a Server from configuration and a connected Mongo client.
func New(cfg config.Config, client *mongo.Client) *Server {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.FixedZone("AST", 3*60*60)
		cfg.Logger.Warn("timezone load failed, using AST", "timezone", cfg.Timezone, "error", err)
	}

	srv := &Server{
		logger:               cfg.Logger,
		client:               client,
		database:             client.Database(cfg.MongoDatabase),
		location:             loc,
		jwtConfig:            cfg.JWT,
		httpClient:           &http.Client{Timeout: cfg.MessengerTimeout},
		messengerEndpoint:    strings.TrimRight(strings.TrimSpace(cfg.MessengerEndpoint), "/"),
		messengerDestination: cfg.MessengerDestination,
		adminContactBaseURL:  cfg.AdminContactBaseURL,
		addr:                 cfg.Addr,
		allowedOrigins:       append([]string(nil), cfg.AllowedOrigins...),
	}

	srv.failedNotifications = srv.database.Collection(cfg.Collections.FailedNotifications)

	listingCollections := mongodoc.ListingCollections{
		Categories: cfg.Collections.Categories,
		Sponsors:   cfg.Collections.Sponsors,
		Banners:    cfg.Collections.Banners,
		Premium:    cfg.Collections.Premium,
	}

	nurseryRepo := mongodoc.NewNurseryRepository(srv.database, cfg.Collections.Nurseries)
	offerRepo := mongodoc.NewOfferRepository(srv.database, cfg.Collections.Offers)
	listingRepo := mongodoc.NewListingRepository(srv.database, listingCollections)
	surveyRepo := mongodoc.NewSurveyRepository(srv.database, cfg.Collections.Surveys)
	contactRepo := mongodoc.NewContactRepository(srv.database, cfg.Collections.Contacts)

	srv.nurseryQueries = publicapp.NewNurseryQueryService(nurseryRepo, offerRepo, cfg.Logger)
	srv.offerQueries = publicapp.NewOfferQueryService(offerRepo)
	srv.listingQueries = publicapp.NewListingQueryService(listingRepo)
	srv.surveyCommands = publicapp.NewSurveyCommandService(surveyRepo)
	srv.contactCommands = publicapp.NewContactCommandService(contactRepo)

	srv.adminNurseryService = adminapp.NewNurseryService(mongodoc.NewAdminNurseryRepository(srv.database, cfg.Collections.Nurseries))
	srv.adminOfferService = adminapp.NewOfferService(mongodoc.NewAdminOfferRepository(srv.database, cfg.Collections.Offers))
	srv.adminListingService = adminapp.NewListingService(mongodoc.NewAdminListingRepository(srv.database, listingCollections))
	srv.adminSurveyService = adminapp.NewSurveyService(mongodoc.NewAdminSurveyRepository(srv.database, cfg.Collections.Surveys))
	srv.adminContactService = adminapp.NewContactService(mongodoc.NewAdminContactRepository(srv.database, cfg.Collections.Contacts))

	return srv
}

// Run starts the HTTP server and blocks until shutdown.
func (s *Server) Run() error {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", s.healthHandler())

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:               s.logger,
		NurseryQueries:       s.nurseryQueries,
		OfferQueries:         s.offerQueries,
		ListingQueries:       s.listingQueries,
		SurveyCommands:       s.surveyCommands,
		ContactCommands:      s.contactCommands,
		FailedNotifications:  s.failedNotifications,
		Location:             s.location,
		HTTPClient:           s.httpClient,
		MessengerEndpoint:    s.messengerEndpoint,
		MessengerDestination: s.messengerDestination,
		AdminContactBaseURL:  s.adminContactBaseURL,
	})
	publicHandler.Register(router)

	adminHandler := adminhttp.NewHandler(adminhttp.Config{
		Logger:         s.logger,
		NurseryService: s.adminNurseryService,
		OfferService:   s.adminOfferService,
		ListingService: s.adminListingService,
		SurveyService:  s.adminSurveyService,
		ContactService: s.adminContactService,
	})
	router.Route("/admin", func(r chi.Router) {
		r.Use(s.authMiddleware)
		adminHandler.Register(r)
	})

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server started", "addr", s.addr)
		errChan <- httpServer.ListenAndServe()
	}()

	return s.waitForShutdown(httpServer, errChan)
}

func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
			s.writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}

		s.writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().In(s.location).Format(time.RFC3339),
		})
	}
}

// authMiddleware verifies the bearer token and stores the admin principal in
// the request context.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
		if authHeader == "" {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "ترويسة التفويض مفقودة"})
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "يجب استخدام رمز Bearer"})
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "رمز الوصول فارغ"})
			return
		}

		claims, err := s.parseAuthToken(tokenString)
		if err != nil {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "رمز الوصول غير صالح"})
			return
		}

		user := commonhttp.AuthenticatedUser{
			ID:    claims.Subject,
			Name:  claims.Name,
			Email: claims.Email,
			Role:  claims.Role,
		}

		ctx := commonhttp.ContextWithUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type authClaims struct {
	jwt.RegisteredClaims
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

func (s *Server) parseAuthToken(tokenString string) (*authClaims, error) {
	if len(s.jwtConfig.Secret) == 0 {
		return nil, fmt.Errorf("auth is not configured")
	}

	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return s.jwtConfig.Secret, nil
	}, jwt.WithLeeway(30*time.Second))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if s.jwtConfig.Issuer != "" && claims.Issuer != s.jwtConfig.Issuer {
		return nil, fmt.Errorf("issuer mismatch")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("subject missing")
	}
	if s.jwtConfig.Audience != "" && !contains(claims.Audience, s.jwtConfig.Audience) {
		return nil, fmt.Errorf("audience mismatch")
	}

	return claims, nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

func (s *Server) shutdown(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(shutdownCtx); err != nil {
		s.logger.Error("mongo disconnect failed", "error", err)
	}
}

// waitForShutdown blocks on server errors and OS signals and performs a
// graceful shutdown.
func (s *Server) waitForShutdown(httpServer *http.Server, errChan <-chan error) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			runErr = err
		}
	case sig := <-sigChan:
		s.logger.Info("signal received, shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("server shutdown failed", "error", err)
		}
	}

	s.shutdown(context.Background())
	return runErr
}
