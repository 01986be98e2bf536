package main

import (
	"log"

	"github.com/svatsa/portfolio"
	"github.com/svatsa/portfolio/views"
)

func main() {
	cfg := portfolio.SiteConfig{
		Name:          portfolio.EnvOr("SITE_NAME", "Portfolio"),
		URL:           portfolio.EnvOr("SITE_URL", "http://localhost:3000"),
		Description:   portfolio.EnvOr("SITE_DESCRIPTION", ""),
		Author:        portfolio.EnvOr("SITE_AUTHOR", ""),
		Addr:          portfolio.EnvOr("ADDR", ":3000"),
		DatabasePath:  portfolio.EnvOr("DATABASE_PATH", ""),
		StorageDir:    portfolio.EnvOr("STORAGE_DIR", "data/storage"),
		AdminEmail:    portfolio.EnvOr("ADMIN_EMAIL", ""),
		AdminPassword: portfolio.EnvOr("ADMIN_PASSWORD", ""),
		SessionSecret: portfolio.MustEnv("ADMIN_SESSION_SECRET"),
		CookieSecure:  portfolio.EnvOr("COOKIE_SECURE", "true") == "true",
	}

	app := portfolio.New(cfg, views.Default(cfg))
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
