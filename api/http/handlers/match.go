package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/cvtailor/api/http/presenter"
	"github.com/artem13815/cvtailor/pkg/document"
	"github.com/artem13815/cvtailor/pkg/match"
	"github.com/artem13815/cvtailor/pkg/nlp"
	"github.com/artem13815/cvtailor/pkg/resume"
)

const maxKeywordLimit = 100

// MatchHandler отдаёт ключевые слова и оценку соответствия резюме.
type MatchHandler struct {
	scorer   *match.Scorer
	ex       *nlp.Extractor
	profiles resume.ProfileUseCase
}

func NewMatchHandler(scorer *match.Scorer, ex *nlp.Extractor, profiles resume.ProfileUseCase) *MatchHandler {
	if ex == nil {
		ex = nlp.Default()
	}
	if scorer == nil {
		scorer = match.NewScorer(ex)
	}
	return &MatchHandler{scorer: scorer, ex: ex, profiles: profiles}
}

type keywordsRequest struct {
	Text  string `json:"text"`
	Limit int    `json:"limit"`
}

// @Summary Ключевые слова
// @Description Частотные ключевые слова и известные фразы текста, не больше limit (по умолчанию 20).
// @Tags    Соответствие
// @Accept  json
// @Produce json
// @Param   input body keywordsRequest true "Текст"
// @Security BearerAuth
// @Success 200 {object} map[string][]string
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /keywords [post]
func (h *MatchHandler) Keywords(c *fiber.Ctx) error {
	var req keywordsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"keywords": h.ex.Extract(req.Text, clampLimit(req.Limit))})
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return match.KeywordLimit
	}
	return min(limit, maxKeywordLimit)
}

// @Summary Ключевые слова из файла
// @Description Извлекает текст вакансии из PDF/DOCX/TXT и возвращает его вместе с ключевыми словами.
// @Tags        Соответствие
// @Accept      multipart/form-data
// @Produce     json
// @Param       file  formData file true  "Файл вакансии (PDF/DOCX/TXT)"
// @Param       limit formData int  false "Количество ключевых слов"
// @Security    BearerAuth
// @Success     200 {object} map[string]any
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     413 {object} presenter.ErrorResponse
// @Router      /keywords/file [post]
func (h *MatchHandler) KeywordsFromFile(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf, docx or txt)")
	}
	if fh.Size > document.MaxSize {
		return presenter.Error(c, http.StatusRequestEntityTooLarge, document.ErrTooLarge.Error())
	}
	f, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, document.MaxSize+1))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to read uploaded file")
	}
	text, err := document.ExtractText(fh.Filename, data)
	switch {
	case errors.Is(err, document.ErrTooLarge):
		return presenter.Error(c, http.StatusRequestEntityTooLarge, err.Error())
	case err != nil:
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	limit, _ := strconv.Atoi(c.FormValue("limit"))
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"text":     text,
		"keywords": h.ex.Extract(text, clampLimit(limit)),
	})
}

// jobRequest is shared by scoring and tailoring. Resume defaults to the
// stored base profile.
type jobRequest struct {
	Resume         *resume.Resume  `json:"resume"`
	TargetLanguage resume.Language `json:"targetLanguage"`
	JobTitle       string          `json:"jobTitle"`
	JobDescription string          `json:"jobDescription"`
	CompanyName    string          `json:"companyName"`
}

func (r jobRequest) job() resume.JobContext {
	return resume.JobContext{
		JobTitle:       strings.TrimSpace(r.JobTitle),
		JobDescription: r.JobDescription,
		CompanyName:    strings.TrimSpace(r.CompanyName),
	}
}

func resolveResume(c *fiber.Ctx, profiles resume.ProfileUseCase, in *resume.Resume) (resume.Resume, error) {
	if in != nil {
		r := in.Clone()
		r.Normalize()
		return r, nil
	}
	if profiles == nil {
		return resume.New(), nil
	}
	return profiles.Get(c.UserContext())
}

type matchResponse struct {
	Score       match.Score `json:"score"`
	Suggestions []string    `json:"suggestions"`
}

// @Summary Оценить соответствие
// @Description ATS-оценка резюме (или базового профиля) относительно вакансии и подсказки по улучшению.
// @Tags    Соответствие
// @Accept  json
// @Produce json
// @Param   input body jobRequest true "Резюме и вакансия"
// @Security BearerAuth
// @Success 200 {object} matchResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /match [post]
func (h *MatchHandler) Match(c *fiber.Ctx) error {
	var req jobRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	r, err := resolveResume(c, h.profiles, req.Resume)
	if err != nil {
		return fail(c, err, "failed to load profile")
	}
	score := h.scorer.Compute(r, req.job())
	lang := req.TargetLanguage
	if !lang.Valid() {
		lang = r.CVLanguage
	}
	return presenter.JSON(c, http.StatusOK, matchResponse{
		Score:       score,
		Suggestions: match.Suggestions(score, lang),
	})
}
