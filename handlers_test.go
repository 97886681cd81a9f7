package main

import (
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "API Running", string(body))
}

func TestContactIsPublic(t *testing.T) {
	resp := postJSON(t, "/api/contact", "", map[string]string{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"message": "Hello there",
	})
	var body map[string]string
	decodeBody(t, resp, &body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "Message sent", body["message"])
}

func TestContactMissingFields(t *testing.T) {
	resp := postJSON(t, "/api/contact", "", map[string]string{
		"name": "No message",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSkillFlow(t *testing.T) {
	resp := postJSON(t, "/api/register", "", map[string]string{
		"username": "demo2",
		"password": "pw1",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	token := loginAs(t, "demo2", "pw1")

	resp = postJSON(t, "/api/skills", token, map[string]string{
		"name":        "Go",
		"level":       "70%",
		"category":    "Programming Languages",
		"description": "test",
	})
	var created Skill
	decodeBody(t, resp, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "Go", created.Name)
	require.Equal(t, "70%", created.Level)
	require.Equal(t, "Programming Languages", created.Category)
	require.Equal(t, "test", created.Description)
	require.NotZero(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	resp, err := http.Get(ts.URL + "/api/skills")
	require.NoError(t, err)
	var skills []Skill
	decodeBody(t, resp, &skills)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, skills)
	require.Equal(t, "Go", skills[0].Name)
}

func TestSkillMissingRequiredField(t *testing.T) {
	token := loginAs(t, "demo", "demo@1234")

	resp := postJSON(t, "/api/skills", token, map[string]string{
		"name": "No level given",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCertificateRequiresFile(t *testing.T) {
	token := loginAs(t, "demo", "demo@1234")

	resp := postMultipart(t, "/api/certificates", token, map[string]string{
		"title":       "AWS Certified",
		"issuer":      "Amazon",
		"year":        "2024",
		"description": "Cloud cert",
	}, nil)
	var body map[string]string
	decodeBody(t, resp, &body)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "No file", body["error"])
}

func TestCertificateCreateAndServeUpload(t *testing.T) {
	token := loginAs(t, "demo", "demo@1234")

	resp := postMultipart(t, "/api/certificates", token, map[string]string{
		"title":       "AWS Certified",
		"issuer":      "Amazon",
		"year":        "2024",
		"description": "Cloud cert",
	}, map[string]string{"image": "cert.png"})
	var cert Certificate
	decodeBody(t, resp, &cert)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "AWS Certified", cert.Title)
	require.NotEmpty(t, cert.FileURL)

	// The stored file is served back from the static prefix.
	fileResp, err := http.Get(ts.URL + cert.FileURL)
	require.NoError(t, err)
	defer fileResp.Body.Close()
	content, err := io.ReadAll(fileResp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, fileResp.StatusCode)
	require.Equal(t, "dummy file content", string(content))
}

func TestProjectImageOptional(t *testing.T) {
	token := loginAs(t, "demo", "demo@1234")

	resp := postMultipart(t, "/api/projects", token, map[string]string{
		"title":        "Python Test Project",
		"description":  "Testing liveLink persistence",
		"technologies": "Python, Requests",
		"link":         "http://github.com/python/test",
		"liveLink":     "http://example.com/live-demo",
	}, nil)
	var project Project
	decodeBody(t, resp, &project)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "http://example.com/live-demo", project.LiveLink)
	require.Empty(t, project.FileURL)
}

func TestExperienceListNewestFirst(t *testing.T) {
	token := loginAs(t, "demo", "demo@1234")

	resp := postMultipart(t, "/api/experience", token, map[string]string{
		"role":        "Engineer",
		"company":     "First Corp",
		"period":      "2020 - 2022",
		"description": "older entry",
	}, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	time.Sleep(10 * time.Millisecond)

	resp = postMultipart(t, "/api/experience", token, map[string]string{
		"role":        "Senior Engineer",
		"company":     "Second Corp",
		"period":      "2022 - Present",
		"description": "newer entry",
	}, map[string]string{"logo": "logo.png"})
	var newer Experience
	decodeBody(t, resp, &newer)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, newer.LogoURL)

	resp, err := http.Get(ts.URL + "/api/experience")
	require.NoError(t, err)
	var entries []Experience
	decodeBody(t, resp, &entries)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.GreaterOrEqual(t, len(entries), 2)
	require.Equal(t, "Second Corp", entries[0].Company)
	require.Equal(t, "First Corp", entries[1].Company)
}

func TestEmptyListIsArray(t *testing.T) {
	resp, err := http.Get(ts.URL + "/api/certificates")
	require.NoError(t, err)
	var certs []Certificate
	decodeBody(t, resp, &certs)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, certs)
}

func TestProfileUpsertIsSingleton(t *testing.T) {
	token := loginAs(t, "demo", "demo@1234")

	resp := postMultipart(t, "/api/profile", token, map[string]string{
		"name":     "Sanjeev R",
		"headline": "Backend Developer",
		"bio":      "first version",
		"email":    "me@example.com",
		"location": "Bengaluru",
	}, map[string]string{"profileImage": "me.jpg", "resume": "resume.pdf"})
	var first Profile
	decodeBody(t, resp, &first)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, first.ProfileImageURL)
	require.NotEmpty(t, first.ResumeURL)

	resp = postMultipart(t, "/api/profile", token, map[string]string{
		"name":     "Sanjeev R",
		"headline": "Senior Backend Developer",
		"bio":      "second version",
		"email":    "me@example.com",
		"location": "Bengaluru",
	}, nil)
	var second Profile
	decodeBody(t, resp, &second)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, "second version", second.Bio)
	// File paths survive an upsert that carries no new uploads.
	require.Equal(t, first.ProfileImageURL, second.ProfileImageURL)

	var count int64
	require.NoError(t, db.Model(&Profile{}).Count(&count).Error)
	require.Equal(t, int64(1), count)

	resp, err := http.Get(ts.URL + "/api/profile")
	require.NoError(t, err)
	var fetched Profile
	decodeBody(t, resp, &fetched)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Senior Backend Developer", fetched.Headline)
}
