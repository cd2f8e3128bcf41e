package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/arogya/arogya/internal/config"
	"github.com/arogya/arogya/internal/domain/doctor"
	"github.com/arogya/arogya/internal/domain/hospital"
	"github.com/arogya/arogya/internal/domain/note"
	"github.com/arogya/arogya/internal/domain/patient"
	"github.com/arogya/arogya/internal/domain/record"
	"github.com/arogya/arogya/internal/domain/summary"
	"github.com/arogya/arogya/internal/domain/user"
	"github.com/arogya/arogya/internal/platform/ai"
	"github.com/arogya/arogya/internal/platform/auth"
	"github.com/arogya/arogya/internal/platform/db"
	"github.com/arogya/arogya/internal/platform/middleware"
	"github.com/arogya/arogya/internal/platform/sandbox"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "arogya-server",
		Short: "Hospital patient records API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(checkCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ---------------------------------------- ---------- --------------------")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with demo data",
		RunE: func(cmd *cobra.Command, args []string) error {
			patients, _ := cmd.Flags().GetInt("patients")
			seed, _ := cmd.Flags().GetInt64("seed")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			seedCfg := sandbox.DefaultSeedConfig()
			if patients > 0 {
				seedCfg.PatientCount = patients
			}
			seedCfg.Seed = seed

			seeder := sandbox.NewSeeder(
				hospital.NewHospitalRepoPG(pool),
				doctor.NewDoctorRepoPG(pool),
				patient.NewPatientRepoPG(pool),
				record.NewRecordRepoPG(pool),
				user.NewUserRepoPG(pool),
			)
			result, err := seeder.Seed(ctx, seedCfg)
			if err != nil {
				return fmt.Errorf("seed failed: %w", err)
			}

			fmt.Printf("Seeded %d hospitals, %d doctors, %d patients, %d records, %d users.\n",
				result.Hospitals, result.Doctors, result.Patients, result.Records, result.Users)
			fmt.Println("Demo logins (password: password123): doctor/DOC001, patient/PT0001, hospital/HOSP001")
			return nil
		},
	}
	cmd.Flags().Int("patients", 0, "Number of patients to generate (default 200)")
	cmd.Flags().Int64("seed", 1, "Random seed for reproducible data")
	return cmd
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify database connectivity and report row counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			tables := []string{"hospitals", "doctors", "patients", "users", "health_records", "doctor_notes"}
			for _, table := range tables {
				var count int
				if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM `+table).Scan(&count); err != nil {
					return fmt.Errorf("count %s: %w", table, err)
				}
				fmt.Printf("%-16s %d\n", table, count)
			}
			return nil
		},
	}
}

// unavailableCompleter stands in for the AI client when no API key is
// configured, so the summarize endpoint fails cleanly instead of at startup.
type unavailableCompleter struct{}

func (unavailableCompleter) Complete(context.Context, string, string) (string, error) {
	return "", errors.New("AI summarization is not configured (OPENAI_API_KEY is unset)")
}

func runServer() error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	// Repositories and services
	hospitalRepo := hospital.NewHospitalRepoPG(pool)
	doctorRepo := doctor.NewDoctorRepoPG(pool)
	patientRepo := patient.NewPatientRepoPG(pool)
	recordRepo := record.NewRecordRepoPG(pool)
	noteRepo := note.NewNoteRepoPG(pool)
	userRepo := user.NewUserRepoPG(pool)

	hospitalSvc := hospital.NewService(hospitalRepo)
	doctorSvc := doctor.NewService(doctorRepo)
	patientSvc := patient.NewService(patientRepo)
	recordSvc := record.NewService(recordRepo)
	noteSvc := note.NewService(noteRepo)
	userSvc := user.NewService(userRepo)

	var completer summary.Completer = unavailableCompleter{}
	if cfg.OpenAIAPIKey != "" {
		client, err := ai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create AI client")
		}
		completer = client
	} else {
		logger.Warn().Msg("OPENAI_API_KEY not set, AI summarization disabled")
	}
	summarySvc := summary.NewService(completer, patientSvc, recordSvc)

	// Token issuer. The dev fallback secret keeps login working locally
	// without configuration; Validate rejects it outside development.
	secret := cfg.JWTSecret
	if secret == "" {
		secret = "arogya-dev-secret"
	}
	issuer := auth.NewTokenIssuer(secret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Health checks
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	e.GET("/health/db", db.HealthHandler(pool))

	// Public auth endpoints
	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}

	authGroup := e.Group("/api/auth")
	authGroup.Use(middleware.RateLimit(rateLimitCfg))
	user.NewHandler(userSvc, issuer).RegisterRoutes(authGroup)

	// Authenticated API
	api := e.Group("/api")
	api.Use(middleware.RateLimit(rateLimitCfg))
	if cfg.IsDev() {
		api.Use(auth.DevAuthMiddleware())
	} else {
		api.Use(auth.TokenMiddleware(issuer))
	}

	// Staff-only endpoints: registry search and listing, clinical writes,
	// dashboard. Patients keep their own profile and the kiosk stub.
	staff := api.Group("", auth.RequireRole(user.RoleDoctor, user.RoleHospital))

	patient.NewHandler(patientSvc, recordSvc).RegisterRoutes(api, staff)
	record.NewHandler(recordSvc, hospitalSvc).RegisterRoutes(staff)
	note.NewHandler(noteSvc).RegisterRoutes(staff)
	summary.NewHandler(summarySvc).RegisterRoutes(api)
	doctor.NewHandler(doctorSvc, hospitalSvc).RegisterRoutes(staff)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
