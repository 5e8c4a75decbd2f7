package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/cvtailor/pkg/company"
	"github.com/artem13815/cvtailor/pkg/health"
	"github.com/artem13815/cvtailor/pkg/health/checkers"
	"github.com/artem13815/cvtailor/pkg/match"
	"github.com/artem13815/cvtailor/pkg/repository/jsonfile"
	"github.com/artem13815/cvtailor/pkg/resume"
	"github.com/artem13815/cvtailor/pkg/tailor"
)

type testEnv struct {
	app      *fiber.App
	profiles resume.ProfileUseCase
}

func newTestEnv(t *testing.T, debounce time.Duration) *testEnv {
	t.Helper()
	dir := t.TempDir()
	profiles := resume.NewProfileService(jsonfile.NewProfileRepository(dir))
	companies := company.NewService(jsonfile.NewCompanyRepository(dir), profiles)
	scorer := match.NewScorer(nil)

	h := struct {
		health  *HealthHandler
		profile *ProfileHandler
		company *CompanyHandler
		match   *MatchHandler
		tailor  *TailorHandler
	}{
		health:  NewHealthHandler(health.NewService(checkers.NewDataDirChecker(dir))),
		profile: NewProfileHandler(profiles),
		company: NewCompanyHandler(companies),
		match:   NewMatchHandler(scorer, nil, profiles),
		tailor:  NewTailorHandler(tailor.NewService(nil, tailor.Config{}), scorer, profiles, debounce),
	}

	app := fiber.New()
	app.Get("/ready", h.health.Ready)
	app.Get("/profile", h.profile.Get)
	app.Put("/profile", h.profile.Put)
	app.Get("/companies", h.company.List)
	app.Post("/companies", h.company.Create)
	app.Get("/companies/:id", h.company.Get)
	app.Put("/companies/:id", h.company.Update)
	app.Delete("/companies/:id", h.company.Delete)
	app.Post("/companies/:id/contacts", h.company.AddContact)
	app.Delete("/companies/:id/contacts/:contactId", h.company.RemoveContact)
	app.Post("/companies/:id/applications", h.company.AddApplication)
	app.Patch("/companies/:id/applications/:appId", h.company.UpdateApplication)
	app.Post("/companies/:id/resumes", h.company.RecordResume)
	app.Get("/calendar", h.company.Calendar)
	app.Post("/keywords", h.match.Keywords)
	app.Post("/keywords/file", h.match.KeywordsFromFile)
	app.Post("/match", h.match.Match)
	app.Post("/tailor/adapt", h.tailor.Adapt)
	app.Post("/tailor/live", h.tailor.Live)
	app.Post("/tailor/letter", h.tailor.Letter)
	return &testEnv{app: app, profiles: profiles}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, out any) int {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	resp, err := e.app.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestReady(t *testing.T) {
	env := newTestEnv(t, 0)
	var out map[string]any
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/ready", nil, &out))
	assert.Equal(t, "ready", out["status"])
}

func TestProfileRoundTrip(t *testing.T) {
	env := newTestEnv(t, 0)

	var empty resume.Resume
	require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/profile", nil, &empty))
	assert.Equal(t, resume.DefaultLanguage, empty.CVLanguage)
	assert.NotNil(t, empty.Skills)

	in := map[string]any{"name": "Ana Pop", "role": "Backend Developer", "skills": []string{"Go"}}
	var saved resume.Resume
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPut, "/profile", in, &saved))
	assert.Equal(t, "Ana Pop", saved.Name)

	var got resume.Resume
	require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/profile", nil, &got))
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, []string{"Go"}, got.Skills)

	bad := map[string]any{"cvLanguage": "fr"}
	assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodPut, "/profile", bad, nil))
}

func TestCompanyLifecycle(t *testing.T) {
	env := newTestEnv(t, 0)

	assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodPost, "/companies", map[string]any{"name": " "}, nil))
	assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodGet, "/companies/not-a-uuid", nil, nil))
	assert.Equal(t, http.StatusNotFound,
		env.do(t, http.MethodGet, "/companies/7d3b1f0e-8f38-4f0c-9f7e-1c8f2f0a1b2c", nil, nil))

	var c company.Company
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/companies",
		map[string]any{"name": "Acme", "address": map[string]any{"city": "Cluj"}}, &c))
	base := "/companies/" + c.ID.String()

	var ct company.Contact
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, base+"/contacts",
		map[string]any{"name": "Ion", "email": "ion@acme.ro"}, &ct))

	var app company.Application
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, base+"/applications",
		map[string]any{"position": "Go Developer", "date": "2026-05-04", "time": "10:00"}, &app))
	assert.Equal(t, company.StatusApplied, app.Status)
	require.NotNil(t, app.ResumeData, "base profile is snapshotted")

	var patched company.Application
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPatch, base+"/applications/"+app.ID.String(),
		map[string]any{"status": "interview"}, &patched))
	assert.Equal(t, company.StatusInterview, patched.Status)
	assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodPatch, base+"/applications/"+app.ID.String(),
		map[string]any{"status": "ghosted"}, nil))

	var sent company.SentResume
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, base+"/resumes",
		map[string]any{"contactId": ct.ID.String(), "data": map[string]any{"name": "Ana"}}, &sent))
	assert.Equal(t, "ion@acme.ro", sent.To.Email)

	var days []company.CalendarDay
	require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/calendar?from=2026-05-01&to=2026-05-31", nil, &days))
	require.Len(t, days, 1)
	assert.Equal(t, "2026-05-04", days[0].Date)
	assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodGet, "/calendar?from=05/01/2026", nil, nil))

	var updated company.Company
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPut, base, map[string]any{"name": "Acme SRL"}, &updated))
	assert.Equal(t, "Acme SRL", updated.Name)
	assert.Len(t, updated.Applications, 1)

	var list []company.Company
	require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/companies?limit=10", nil, &list))
	require.Len(t, list, 1)
	assert.Len(t, list[0].Contacts, 1)

	assert.Equal(t, http.StatusNoContent, env.do(t, http.MethodDelete, base+"/contacts/"+ct.ID.String(), nil, nil))
	assert.Equal(t, http.StatusNoContent, env.do(t, http.MethodDelete, base, nil, nil))
	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodDelete, base, nil, nil))
}

func TestKeywords(t *testing.T) {
	env := newTestEnv(t, 0)
	var out struct {
		Keywords []string `json:"keywords"`
	}
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/keywords",
		map[string]any{"text": "Golang golang golang postgres postgres docker", "limit": 2}, &out))
	assert.Equal(t, []string{"golang", "postgres"}, out.Keywords)
}

func TestMatchUsesBaseProfile(t *testing.T) {
	env := newTestEnv(t, 0)
	_, err := env.profiles.Save(context.Background(), resume.Resume{
		Name:   "Ana",
		Role:   "Developer",
		Skills: []string{"Golang"},
	})
	require.NoError(t, err)

	var out matchResponse
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/match", map[string]any{
		"jobTitle":       "Golang Developer",
		"jobDescription": "golang kubernetes",
		"targetLanguage": "en",
	}, &out))
	assert.Contains(t, out.Score.Details.KeywordMatch.Matched, "golang")
	assert.Contains(t, out.Score.Details.KeywordMatch.Missing, "kubernetes")
	assert.NotEmpty(t, out.Suggestions)
}

func TestAdaptHeuristic(t *testing.T) {
	env := newTestEnv(t, 0)
	var out adaptResponse
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/tailor/adapt", map[string]any{
		"resume":         map[string]any{"name": "Ana", "skills": []string{"SQL"}},
		"targetLanguage": "en",
		"jobTitle":       "Data Engineer",
		"jobDescription": "python python airflow",
	}, &out))
	assert.Equal(t, resume.LangEN, out.Resume.CVLanguage)
	assert.Equal(t, "Data Engineer", out.Resume.JobTitle)
	assert.Contains(t, out.Resume.Skills, "Python")
	assert.Equal(t, match.Aggregate(
		out.Score.Details.KeywordMatch.Score,
		out.Score.Details.Completeness.Score,
		out.Score.Details.WorkExperience.Score,
		out.Score.Details.Skills.Score,
	), out.Score.Total)
}

func TestLiveSupersedesOlderRequest(t *testing.T) {
	env := newTestEnv(t, 200*time.Millisecond)
	body := map[string]any{"session": "s1", "jobTitle": "Go Developer"}

	var wg sync.WaitGroup
	var first int
	var firstOut map[string]any
	wg.Add(1)
	go func() {
		defer wg.Done()
		first = env.do(t, http.MethodPost, "/tailor/live", body, &firstOut)
	}()
	time.Sleep(50 * time.Millisecond)

	var second adaptResponse
	secondStatus := env.do(t, http.MethodPost, "/tailor/live", body, &second)
	wg.Wait()

	assert.Equal(t, http.StatusAccepted, first)
	assert.Equal(t, true, firstOut["superseded"])
	assert.Equal(t, http.StatusOK, secondStatus)
	assert.Equal(t, "Go Developer", second.Resume.JobTitle)

	assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodPost, "/tailor/live", map[string]any{"jobTitle": "x"}, nil))
}

func TestLiveCancelledRequestIsNotSuperseded(t *testing.T) {
	profiles := resume.NewProfileService(jsonfile.NewProfileRepository(t.TempDir()))
	h := NewTailorHandler(tailor.NewService(nil, tailor.Config{}), nil, profiles, time.Hour)

	app := fiber.New()
	app.Post("/tailor/live", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithCancel(c.UserContext())
		cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}, h.Live)
	env := &testEnv{app: app, profiles: profiles}

	var out map[string]any
	status := env.do(t, http.MethodPost, "/tailor/live", map[string]any{"session": "s1", "jobTitle": "Go Developer"}, &out)
	assert.Equal(t, http.StatusRequestTimeout, status)
	assert.NotContains(t, out, "superseded")
	assert.Equal(t, "request cancelled", out["message"])
}

func TestLetterHeuristic(t *testing.T) {
	env := newTestEnv(t, 0)
	var out map[string]string
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/tailor/letter", map[string]any{
		"resume":         map[string]any{"name": "Ana Pop"},
		"targetLanguage": "en",
		"recipientName":  "Ion",
		"companyName":    "Acme",
		"jobTitle":       "Go Developer",
	}, &out))
	assert.Contains(t, out["letter"], "Acme")
	assert.Contains(t, out["letter"], "Ana Pop")
}

func TestKeywordsFromFile(t *testing.T) {
	env := newTestEnv(t, 0)

	upload := func(name, content string) (*http.Response, map[string]any) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile("file", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
		require.NoError(t, mw.WriteField("limit", "1"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/keywords/file", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		resp, err := env.app.Test(req, 5000)
		require.NoError(t, err)
		defer resp.Body.Close()
		var out map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		return resp, out
	}

	resp, out := upload("posting.txt", "Terraform terraform  AWS")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Terraform terraform AWS", out["text"])
	assert.Equal(t, []any{"terraform"}, out["keywords"])

	resp, _ = upload("posting.odt", "x")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
