package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linkup-app/linkup-backend/config"
	"github.com/linkup-app/linkup-backend/internal/domain/entity"
	"github.com/linkup-app/linkup-backend/internal/infrastructure/mongodb"
	"github.com/linkup-app/linkup-backend/pkg/helpers"
)

// Seeds a demo company account and a handful of job postings so the job
// board has content on a fresh database. Safe to run repeatedly.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = db.Client().Disconnect(context.Background()) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	users := mongodb.NewUserRepository(db)
	jobs := mongodb.NewJobRepository(db)

	company := &entity.User{
		Name:  "Acme Robotics",
		Email: "jobs@acme-robotics.test",
		Bio:   "We build friendly warehouse robots.",
	}
	hash, err := helpers.HashPassword("password123")
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	company.Password = hash

	if err := users.Create(ctx, company); err != nil {
		// Already seeded: load the existing account instead.
		existing, ferr := users.FindByEmail(ctx, company.Email)
		if ferr != nil {
			log.Fatalf("failed to seed company user: %v", err)
		}
		company = existing
	}
	fmt.Printf("company account: id=%s email=%s\n", company.ID.Hex(), company.Email)

	postings := []entity.Job{
		{
			Company:     company.ID,
			Title:       "Backend Engineer",
			Description: "Own the fleet-coordination services.",
			Location:    "Berlin",
			Skills:      []string{"go", "mongodb", "rabbitmq"},
		},
		{
			Company:     company.ID,
			Title:       "Site Reliability Engineer",
			Description: "Keep the robots honest at 3am so humans can sleep.",
			Location:    "Remote",
			Skills:      []string{"kubernetes", "redis", "observability"},
		},
		{
			Company:     company.ID,
			Title:       "Embedded Developer",
			Description: "Firmware for the gripper arm line.",
			Location:    "Munich",
			Skills:      []string{"c", "rtos"},
		},
	}

	col := db.Collection(mongodb.JobsCollection)
	seeded := 0
	for i := range postings {
		j := &postings[i]
		n, err := col.CountDocuments(ctx, bson.M{"company": j.Company, "title": j.Title}, options.Count().SetLimit(1))
		if err != nil {
			log.Fatalf("failed to check posting %q: %v", j.Title, err)
		}
		if n > 0 {
			continue
		}
		if err := jobs.Create(ctx, j); err != nil {
			log.Fatalf("failed to seed posting %q: %v", j.Title, err)
		}
		seeded++
	}
	fmt.Printf("seeded %d job postings\n", seeded)
}
