// Command seeder bootstraps an election database: it creates the initial
// administrator account and, optionally, a set of demo candidates. It is
// intended to be run once against a fresh database, not as part of the
// main server.
//
// Flags:
//
//	--admin-username  username for the administrator account (default: admin)
//	--admin-password  password for the administrator account (required)
//	--demo            also create demo candidates
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/reinafiec-backend/internal/adapter/postgres"
	candidaterepo "github.com/heartmarshall/reinafiec-backend/internal/adapter/postgres/candidate"
	voterrepo "github.com/heartmarshall/reinafiec-backend/internal/adapter/postgres/voter"
	"github.com/heartmarshall/reinafiec-backend/internal/app"
	"github.com/heartmarshall/reinafiec-backend/internal/config"
	"github.com/heartmarshall/reinafiec-backend/internal/domain"
)

func main() {
	adminUsername := flag.String("admin-username", "admin", "username for the administrator account")
	adminPassword := flag.String("admin-password", "", "password for the administrator account")
	demo := flag.Bool("demo", false, "also create demo candidates")
	flag.Parse()

	if *adminPassword == "" {
		log.Fatal("--admin-password is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := postgres.Migrate(cfg.Database.DSN); err != nil {
		logger.Error("run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	voters := voterrepo.New(pool)
	candidates := candidaterepo.New(pool)

	adminID, err := seedAdmin(ctx, voters, *adminUsername, *adminPassword, cfg.Auth.BcryptCost)
	if err != nil {
		logger.Error("seed administrator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("administrator ready", slog.String("username", *adminUsername))

	if *demo {
		n, err := seedDemoCandidates(ctx, candidates, adminID)
		if err != nil {
			logger.Error("seed demo candidates", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("demo candidates created", slog.Int("count", n))
	}

	logger.Info("seeding completed")
}

// seedAdmin creates the administrator account, or returns the existing one
// when the username is already taken.
func seedAdmin(ctx context.Context, voters *voterrepo.Repo, username, password string, bcryptCost int) (uuid.UUID, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return uuid.Nil, err
	}

	admin := &domain.Voter{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		FullName:     "Election Administrator",
		Email:        username + "@fiec.edu.ec",
		Role:         domain.RoleAdministrator,
		Status:       domain.StatusActive,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := voters.Create(ctx, admin)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			existing, getErr := voters.GetByUsername(ctx, username)
			if getErr != nil {
				return uuid.Nil, getErr
			}
			return existing.ID, nil
		}
		return uuid.Nil, err
	}

	return created.ID, nil
}

func seedDemoCandidates(ctx context.Context, candidates *candidaterepo.Repo, adminID uuid.UUID) (int, error) {
	now := time.Now().UTC()

	demo := []*domain.Candidate{
		{
			FullName:   "Ana Lopez",
			NationalID: "0912345678",
			BirthDate:  now.AddDate(-21, 0, 0),
			Program:    "Computer Science",
			Semester:   6,
			Email:      "ana.lopez@fiec.edu.ec",
		},
		{
			FullName:   "Beatriz Mora",
			NationalID: "0923456789",
			BirthDate:  now.AddDate(-20, -3, 0),
			Program:    "Electronics",
			Semester:   5,
			Email:      "beatriz.mora@fiec.edu.ec",
		},
		{
			FullName:   "Carla Vera",
			NationalID: "0934567890",
			BirthDate:  now.AddDate(-22, 2, 0),
			Program:    "Telematics",
			Semester:   8,
			Email:      "carla.vera@fiec.edu.ec",
		},
	}

	created := 0
	for _, c := range demo {
		c.ID = uuid.New()
		c.Status = domain.StatusActive
		c.RegisteredBy = adminID
		c.CreatedAt = now

		if _, err := candidates.Create(ctx, c); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				continue
			}
			return created, err
		}
		created++
	}

	return created, nil
}
