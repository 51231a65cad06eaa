package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"folio-backend/internal/accounts"
	"folio-backend/internal/config"
	"folio-backend/internal/content"
	"folio-backend/internal/db"
	"folio-backend/internal/projects"
	"folio-backend/internal/skills"
)

// Seeds a development database: one admin account plus sample portfolio
// rows. Existing collections are left alone so the command is safe to
// re-run.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}

	seedAdmin(ctx, cfg, cols)
	seedProjects(ctx, cfg, cols)
	seedSkills(ctx, cfg, cols)
	seedContent(ctx, cfg, cols)

	log.Println("seed complete")
}

func seedAdmin(ctx context.Context, cfg *config.Config, cols *db.Collections) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD not set, skipping admin")
		return
	}

	service := accounts.NewService(accounts.NewRepository(cols.Users), cfg.Timezone)
	user, err := service.CreateUser(ctx, email, "Admin", password)
	if errors.Is(err, accounts.ErrEmailTaken) {
		log.Printf("admin %s already exists", email)
		return
	}
	if err != nil {
		log.Fatalf("seed admin: %v", err)
	}
	log.Printf("admin created: %s (%s)", user.Email, user.ID)
}

func seedProjects(ctx context.Context, cfg *config.Config, cols *db.Collections) {
	count, err := cols.Projects.CountDocuments(ctx, map[string]interface{}{})
	if err != nil {
		log.Fatalf("count projects: %v", err)
	}
	if count > 0 {
		log.Printf("projects collection has %d rows, skipping", count)
		return
	}

	service := projects.NewService(projects.NewRepository(cols.Projects), cfg.Timezone)
	samples := []projects.UpsertRequest{
		{
			Title:            "Cloud City",
			DescriptionShort: "A floating metropolis above the storm layer.",
			DescriptionLong:  "Full environment build, from blockout to final grade. Volumetric clouds and a procedural building kit keep the skyline varied without hand-placing every tower.",
			Category:         "Environment",
			ThumbnailURL:     "https://cdn.example.com/thumbs/cloud-city.jpg",
			Gallery: []string{
				"https://cdn.example.com/gallery/cloud-city-01.jpg",
				"https://cdn.example.com/gallery/cloud-city-flythrough.mp4",
			},
			Tools: []string{"Blender", "Houdini", "Nuke"},
		},
		{
			Title:            "Neon Identity",
			DescriptionShort: "Brand package for a synthwave label.",
			DescriptionLong:  "Logo animation, type treatment, and a set of loopable visuals for live shows.",
			Category:         "Branding",
			ThumbnailURL:     "https://cdn.example.com/thumbs/neon-identity.jpg",
			Gallery: []string{
				"https://cdn.example.com/gallery/neon-identity-logo.mp4",
			},
			Tools: []string{"After Effects", "Illustrator"},
		},
		{
			Title:            "Wanderer",
			DescriptionShort: "Stylized character for a short film pitch.",
			DescriptionLong:  "Sculpt, retopo, and a full facial rig. Cloth sim on the cloak drives most of the silhouette.",
			Category:         "Character",
			ThumbnailURL:     "https://cdn.example.com/thumbs/wanderer.jpg",
			Gallery: []string{
				"https://cdn.example.com/gallery/wanderer-turntable.mp4",
				"https://cdn.example.com/gallery/wanderer-closeup.jpg",
			},
			Tools: []string{"ZBrush", "Blender", "Substance Painter"},
		},
	}
	for _, req := range samples {
		if _, _, err := service.Upsert(ctx, req); err != nil {
			log.Fatalf("seed project %q: %v", req.Title, err)
		}
	}
	log.Printf("seeded %d projects", len(samples))
}

func seedSkills(ctx context.Context, cfg *config.Config, cols *db.Collections) {
	count, err := cols.Skills.CountDocuments(ctx, map[string]interface{}{})
	if err != nil {
		log.Fatalf("count skills: %v", err)
	}
	if count > 0 {
		log.Printf("skills collection has %d rows, skipping", count)
		return
	}

	service := skills.NewService(skills.NewRepository(cols.Skills), cfg.Timezone)
	samples := []skills.UpsertRequest{
		{
			Name:        "Blender",
			ImageURL:    "https://cdn.example.com/skills/blender.png",
			Description: "Modeling, shading, and look development.",
			Tags:        []string{"3D", "Modeling"},
		},
		{
			Name:        "Houdini",
			ImageURL:    "https://cdn.example.com/skills/houdini.png",
			Description: "Procedural environments and FX simulations.",
			Tags:        []string{"3D", "FX"},
		},
		{
			Name:        "After Effects",
			ImageURL:    "https://cdn.example.com/skills/after-effects.png",
			Description: "Compositing and motion graphics.",
			Tags:        []string{"Motion", "Compositing"},
		},
	}
	for _, req := range samples {
		if _, _, err := service.Upsert(ctx, req); err != nil {
			log.Fatalf("seed skill %q: %v", req.Name, err)
		}
	}
	log.Printf("seeded %d skills", len(samples))
}

func seedContent(ctx context.Context, cfg *config.Config, cols *db.Collections) {
	service := content.NewService(content.NewRepository(cols.SiteContent), cfg.Timezone)

	current, err := service.Get(ctx)
	if err != nil {
		log.Fatalf("get site content: %v", err)
	}
	if current.HomeHeading != "" {
		log.Println("site content already set, skipping")
		return
	}

	_, err = service.Save(ctx, content.UpsertRequest{
		HomeHeading:    "3D artist and motion designer",
		HomeSubheading: "Environments, characters, and brand visuals.",
		AboutBio:       "I build worlds, one shader at a time. Over the last eight years I have shipped work for film pitches, music labels, and product launches.",
		AboutImageURL:  "https://cdn.example.com/about/portrait.jpg",
	})
	if err != nil {
		log.Fatalf("seed site content: %v", err)
	}
	log.Println("seeded site content")
}
