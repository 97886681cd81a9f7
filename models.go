// models.go this is our database models
package main

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex" json:"username"`
	Password string `json:"-"`
}

type Contact struct {
	gorm.Model
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type Certificate struct {
	gorm.Model
	Title       string `json:"title"`
	Issuer      string `json:"issuer"`
	Year        string `json:"year"`
	Description string `json:"description"`
	FileURL     string `json:"fileUrl"`
}

type Skill struct {
	gorm.Model
	Name        string `json:"name"`
	Level       string `json:"level"` // free-form, e.g. "70%"
	Category    string `json:"category"`
	Description string `json:"description"`
}

type Project struct {
	gorm.Model
	Title        string `json:"title"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	Link         string `json:"link"`
	LiveLink     string `json:"liveLink"`
	FileURL      string `json:"fileUrl"`
}

type Experience struct {
	gorm.Model
	Role        string `json:"role"`
	Company     string `json:"company"`
	Period      string `json:"period"` // free-form, e.g. "2023 - Present"
	Description string `json:"description"`
	LogoURL     string `json:"logoUrl"`
}

// Profile is a singleton collection: it holds at most one row and every
// authenticated write upserts that row.
type Profile struct {
	gorm.Model
	Name            string `json:"name"`
	Headline        string `json:"headline"`
	Bio             string `json:"bio"`
	Email           string `json:"email"`
	Location        string `json:"location"`
	ProfileImageURL string `json:"profileImageUrl"`
	ResumeURL       string `json:"resumeUrl"`
}
