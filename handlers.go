package main

// handlers.go this is our CRUD operations for the database

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

var validate = validator.New()

var listCache = cache.New(5*time.Minute, 10*time.Minute)

const maxUploadMemory = 32 << 20

func getCachedData(key string, fetchFunc func() (interface{}, error)) (interface{}, error) {
	if data, found := listCache.Get(key); found {
		return data, nil
	}

	data, err := fetchFunc()
	if err != nil {
		return nil, err
	}

	listCache.Set(key, data, cache.DefaultExpiration)
	return data, nil
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("API Running"))
}

// listHandler serves one collection, newest first, through the list cache.
// The owning create handler flushes the key so readers never see stale lists.
func listHandler[T any](key string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := getCachedData(key, func() (interface{}, error) {
			items := []T{}
			if err := db.Order("created_at desc").Find(&items).Error; err != nil {
				return nil, err
			}
			return items, nil
		})
		if err != nil {
			logger.Errorf("fetching %s: %v", key, err)
			respondError(w, http.StatusInternalServerError, "Failed to fetch "+key)
			return
		}
		respondJSON(w, http.StatusOK, data)
	}
}

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}

func CreateContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	contact := Contact{Name: req.Name, Email: req.Email, Message: req.Message}
	if err := db.Create(&contact).Error; err != nil {
		logger.Errorf("saving contact message: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to send")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"message": "Message sent"})
}

func CreateCertificate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, http.StatusBadRequest, "No file")
		return
	}
	file.Close()

	fileURL, err := storeUpload(header)
	if err != nil {
		logger.Errorf("storing certificate image: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to add certificate")
		return
	}

	cert := Certificate{
		Title:       r.FormValue("title"),
		Issuer:      r.FormValue("issuer"),
		Year:        r.FormValue("year"),
		Description: r.FormValue("description"),
		FileURL:     fileURL,
	}
	if err := db.Create(&cert).Error; err != nil {
		logger.Errorf("saving certificate: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to add certificate")
		return
	}

	listCache.Delete("certificates")
	respondJSON(w, http.StatusCreated, cert)
}

type skillRequest struct {
	Name        string `json:"name" validate:"required"`
	Level       string `json:"level" validate:"required"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

func CreateSkill(w http.ResponseWriter, r *http.Request) {
	var req skillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	skill := Skill{
		Name:        req.Name,
		Level:       req.Level,
		Category:    req.Category,
		Description: req.Description,
	}
	if err := db.Create(&skill).Error; err != nil {
		logger.Errorf("saving skill: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to add skill")
		return
	}

	listCache.Delete("skills")
	respondJSON(w, http.StatusCreated, skill)
}

func CreateProject(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	fileURL := ""
	if file, header, err := r.FormFile("image"); err == nil {
		file.Close()
		fileURL, err = storeUpload(header)
		if err != nil {
			logger.Errorf("storing project image: %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to add project")
			return
		}
	}

	project := Project{
		Title:        r.FormValue("title"),
		Description:  r.FormValue("description"),
		Technologies: r.FormValue("technologies"),
		Link:         r.FormValue("link"),
		LiveLink:     r.FormValue("liveLink"),
		FileURL:      fileURL,
	}
	if err := db.Create(&project).Error; err != nil {
		logger.Errorf("saving project: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to add project")
		return
	}

	listCache.Delete("projects")
	respondJSON(w, http.StatusCreated, project)
}

func CreateExperience(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	logoURL := ""
	if file, header, err := r.FormFile("logo"); err == nil {
		file.Close()
		logoURL, err = storeUpload(header)
		if err != nil {
			logger.Errorf("storing experience logo: %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to add experience")
			return
		}
	}

	exp := Experience{
		Role:        r.FormValue("role"),
		Company:     r.FormValue("company"),
		Period:      r.FormValue("period"),
		Description: r.FormValue("description"),
		LogoURL:     logoURL,
	}
	if err := db.Create(&exp).Error; err != nil {
		logger.Errorf("saving experience: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to add experience")
		return
	}

	listCache.Delete("experience")
	respondJSON(w, http.StatusCreated, exp)
}

func GetProfile(w http.ResponseWriter, r *http.Request) {
	var profile Profile
	err := db.Order("updated_at desc").First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondJSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		logger.Errorf("fetching profile: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// UpsertProfile creates the singleton on first write and replaces its fields
// afterwards. Concurrent writes race; last persisted wins.
func UpsertProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	var profile Profile
	err := db.First(&profile).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Errorf("loading profile: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to save profile")
		return
	}
	creating := errors.Is(err, gorm.ErrRecordNotFound)

	profile.Name = r.FormValue("name")
	profile.Headline = r.FormValue("headline")
	profile.Bio = r.FormValue("bio")
	profile.Email = r.FormValue("email")
	profile.Location = r.FormValue("location")

	if file, header, err := r.FormFile("profileImage"); err == nil {
		file.Close()
		url, err := storeUpload(header)
		if err != nil {
			logger.Errorf("storing profile image: %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to save profile")
			return
		}
		profile.ProfileImageURL = url
	}
	if file, header, err := r.FormFile("resume"); err == nil {
		file.Close()
		url, err := storeUpload(header)
		if err != nil {
			logger.Errorf("storing resume: %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to save profile")
			return
		}
		profile.ResumeURL = url
	}

	if creating {
		err = db.Create(&profile).Error
	} else {
		err = db.Save(&profile).Error
	}
	if err != nil {
		logger.Errorf("saving profile: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to save profile")
		return
	}

	respondJSON(w, http.StatusOK, profile)
}
