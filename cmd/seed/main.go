package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/DrekStyler/handypro-api/config"
	"github.com/DrekStyler/handypro-api/internal/domain"
	fsrepo "github.com/DrekStyler/handypro-api/internal/repository/firestore"
	"github.com/DrekStyler/handypro-api/pkg/firebase"
	"github.com/DrekStyler/handypro-api/pkg/logger"
)

// Seeds the document store with demo accounts, company profiles, marketplace
// projects and notifications. Safe to re-run: existing documents are skipped.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()

	app, err := firebase.NewApp(cfg)
	if err != nil {
		logger.Log.Error("Failed to initialize Firebase", "error", err)
		os.Exit(1)
	}
	db, err := firebase.NewFirestoreClient(app)
	if err != nil {
		logger.Log.Error("Failed to connect to Firestore", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	userRepo := fsrepo.NewUserRepository(db)
	companyProfileRepo := fsrepo.NewCompanyProfileRepository(db)
	projectRepo := fsrepo.NewProjectRepository(db)
	notificationRepo := fsrepo.NewNotificationRepository(db)

	seedUsers(ctx, userRepo, companyProfileRepo)
	seedProjects(ctx, projectRepo)
	seedNotifications(ctx, notificationRepo)

	logger.Log.Info("Seeding complete")
}

func seedUsers(ctx context.Context, users domain.UserRepository, profiles domain.CompanyProfileRepository) {
	now := time.Now().UTC()

	demoUsers := []*domain.UserProfile{
		{UserID: "demo-prime-1", Email: "alicia@bayareabuilds.example", DisplayName: "Alicia Moreno", Role: domain.RolePrime, Phone: "+14155550101", Location: "Oakland, CA"},
		{UserID: "demo-prime-2", Email: "devon@summitgc.example", DisplayName: "Devon Clarke", Role: domain.RolePrime, Phone: "+14155550102", Location: "San Jose, CA"},
		{UserID: "demo-sub-1", Email: "rosa@castrovalleyelectric.example", DisplayName: "Rosa Castillo", Role: domain.RoleSubcontractor, Phone: "+15105550103", Location: "Castro Valley, CA"},
		{UserID: "demo-sub-2", Email: "minh@goldengateplumbing.example", DisplayName: "Minh Tran", Role: domain.RoleSubcontractor, Phone: "+14155550104", Location: "San Francisco, CA"},
		{UserID: "demo-sub-3", Email: "jake@eastbaydrywall.example", DisplayName: "Jake Novak", Role: domain.RoleSubcontractor, Phone: "+15105550105", Location: "Fremont, CA"},
	}

	demoProfiles := map[string]*domain.CompanyProfile{
		"demo-sub-1": {
			CompanyName:       "Castro Valley Electric",
			Description:       "Licensed electrical contractor serving the East Bay since 2009.",
			ContactEmail:      "rosa@castrovalleyelectric.example",
			ContactPhone:      "+15105550103",
			FoundingYear:      2009,
			EmployeeCount:     12,
			LicenseNumber:     "C10-884213",
			InsuranceProvider: "State Fund",
			Trades:            []string{"electrical"},
			ServiceAreas:      []string{"Castro Valley", "Hayward", "San Leandro"},
			YearsInBusiness:   16,
		},
		"demo-sub-2": {
			CompanyName:   "Golden Gate Plumbing",
			Description:   "Residential and light commercial plumbing.",
			ContactEmail:  "minh@goldengateplumbing.example",
			ContactPhone:  "+14155550104",
			FoundingYear:  2015,
			EmployeeCount: 6,
			LicenseNumber: "C36-102998",
			Trades:        []string{"plumbing"},
			ServiceAreas:  []string{"San Francisco", "Daly City"},
		},
		"demo-sub-3": {
			CompanyName:   "East Bay Drywall",
			Description:   "Drywall hanging, taping and finishing.",
			ContactEmail:  "jake@eastbaydrywall.example",
			ContactPhone:  "+15105550105",
			FoundingYear:  2020,
			EmployeeCount: 4,
			Trades:        []string{"drywall", "painting"},
			ServiceAreas:  []string{"Fremont", "Union City", "Newark"},
		},
	}

	created, skipped := 0, 0
	for _, u := range demoUsers {
		if _, err := users.GetByID(ctx, u.UserID); err == nil {
			skipped++
			continue
		} else if !errors.Is(err, domain.ErrNotFound) {
			logger.Log.Error("Seed user lookup failed", "userId", u.UserID, "error", err)
			continue
		}

		u.CreatedAt = now
		u.UpdatedAt = now
		if err := users.Create(ctx, u); err != nil {
			logger.Log.Error("Seed user create failed", "userId", u.UserID, "error", err)
			continue
		}
		created++

		profile, ok := demoProfiles[u.UserID]
		if !ok {
			continue
		}
		profile.UserID = u.UserID
		profile.CreatedAt = now
		profile.UpdatedAt = now
		if err := profiles.Create(ctx, profile); err != nil {
			logger.Log.Error("Seed company profile create failed", "userId", u.UserID, "error", err)
		}
	}

	logger.Log.Info("Seeded users", "created", created, "skipped", skipped)
}

func seedProjects(ctx context.Context, projects domain.ProjectRepository) {
	existing, err := projects.List(ctx, domain.ProjectFilter{})
	if err != nil {
		logger.Log.Error("Seed project listing failed", "error", err)
		return
	}
	if len(existing) > 0 {
		logger.Log.Info("Projects already present, skipping", "count", len(existing))
		return
	}

	demoProjects := []*domain.Project{
		{
			OwnerID:     "demo-prime-1",
			Title:       "Duplex rewire, Fruitvale",
			Description: "Full rewire of a 1940s duplex, panel upgrade to 200A, permits pulled.",
			Trades:      []string{"electrical"},
			Location:    "Oakland, CA",
			BudgetMin:   18000,
			BudgetMax:   26000,
			Status:      domain.ProjectStatusOpen,
		},
		{
			OwnerID:     "demo-prime-1",
			Title:       "Bathroom remodel rough-in",
			Description: "Plumbing rough-in for two bathrooms, fixtures owner-supplied.",
			Trades:      []string{"plumbing"},
			Location:    "Oakland, CA",
			BudgetMin:   8000,
			BudgetMax:   12000,
			Status:      domain.ProjectStatusOpen,
		},
		{
			OwnerID:     "demo-prime-2",
			Title:       "Office TI drywall package",
			Description: "4,500 sq ft tenant improvement, level 4 finish throughout.",
			Trades:      []string{"drywall", "painting"},
			Location:    "San Jose, CA",
			BudgetMin:   22000,
			BudgetMax:   30000,
			Status:      domain.ProjectStatusOpen,
		},
	}

	for _, p := range demoProjects {
		if err := projects.Create(ctx, p); err != nil {
			logger.Log.Error("Seed project create failed", "title", p.Title, "error", err)
		}
	}

	logger.Log.Info("Seeded projects", "created", len(demoProjects))
}

func seedNotifications(ctx context.Context, notifications domain.NotificationRepository) {
	created, skipped := 0, 0
	demoNotifications := []*domain.Notification{
		{RecipientID: "demo-sub-1", Type: domain.NotificationProjectInvite, Message: "Alicia Moreno invited you to bid on Duplex rewire, Fruitvale."},
		{RecipientID: "demo-sub-2", Type: domain.NotificationProjectInvite, Message: "Alicia Moreno invited you to bid on Bathroom remodel rough-in."},
		{RecipientID: "demo-sub-3", Type: domain.NotificationMessage, Message: "Welcome to HandyPro! Complete your company profile to start bidding."},
	}

	for _, n := range demoNotifications {
		existing, err := notifications.ListByRecipient(ctx, n.RecipientID)
		if err != nil {
			logger.Log.Error("Seed notification listing failed", "recipientId", n.RecipientID, "error", err)
			continue
		}
		if len(existing) > 0 {
			skipped++
			continue
		}
		if err := notifications.Create(ctx, n); err != nil {
			logger.Log.Error("Seed notification create failed", "recipientId", n.RecipientID, "error", err)
			continue
		}
		created++
	}

	logger.Log.Info("Seeded notifications", "created", created, "skipped", skipped)
}
