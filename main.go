// backend/main.go
package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func init() {
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found")
	}
}

func newRouter() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", Health)

	mux.HandleFunc("POST /api/register", Register)
	mux.HandleFunc("POST /api/login", Login)
	mux.HandleFunc("POST /api/contact", CreateContact)

	mux.HandleFunc("GET /api/certificates", listHandler[Certificate]("certificates"))
	mux.HandleFunc("GET /api/skills", listHandler[Skill]("skills"))
	mux.HandleFunc("GET /api/projects", listHandler[Project]("projects"))
	mux.HandleFunc("GET /api/experience", listHandler[Experience]("experience"))
	mux.HandleFunc("GET /api/profile", GetProfile)

	// Every mutating route sits behind the bearer-token gate.
	mux.HandleFunc("POST /api/certificates", authMiddleware(CreateCertificate))
	mux.HandleFunc("POST /api/skills", authMiddleware(CreateSkill))
	mux.HandleFunc("POST /api/projects", authMiddleware(CreateProject))
	mux.HandleFunc("POST /api/experience", authMiddleware(CreateExperience))
	mux.HandleFunc("POST /api/profile", authMiddleware(UpsertProfile))

	// Uploaded assets are served straight off disk.
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	allowedOrigins := []string{"*"}
	if cfg.FrontendURL != "" {
		allowedOrigins = []string{cfg.FrontendURL}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(mux)
}

func main() {
	initLogger()
	cfg = loadConfig()

	if err := initDB(cfg.DatabasePath); err != nil {
		logger.Fatalf("connecting to database: %v", err)
	}
	seedDemoUser()

	if err := ensureUploadDir(); err != nil {
		logger.Fatalf("creating upload dir: %v", err)
	}

	logger.Infof("server running on port %s", cfg.Port)
	logger.Fatal(http.ListenAndServe(":"+cfg.Port, newRouter()))
}
