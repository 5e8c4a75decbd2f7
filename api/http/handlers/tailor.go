package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/cvtailor/api/http/presenter"
	"github.com/artem13815/cvtailor/pkg/match"
	"github.com/artem13815/cvtailor/pkg/resume"
	"github.com/artem13815/cvtailor/pkg/tailor"
)

// TailorHandler адаптирует резюме и пишет сопроводительные письма.
type TailorHandler struct {
	uc       tailor.UseCase
	scorer   *match.Scorer
	profiles resume.ProfileUseCase
	live     *tailor.Live[adaptResponse]
	debounce time.Duration
}

func NewTailorHandler(uc tailor.UseCase, scorer *match.Scorer, profiles resume.ProfileUseCase, debounce time.Duration) *TailorHandler {
	if scorer == nil {
		scorer = match.NewScorer(nil)
	}
	if debounce <= 0 {
		debounce = tailor.DefaultDebounce
	}
	return &TailorHandler{
		uc:       uc,
		scorer:   scorer,
		profiles: profiles,
		live:     tailor.NewLive[adaptResponse](),
		debounce: debounce,
	}
}

type adaptResponse struct {
	Resume resume.Resume `json:"resume"`
	Score  match.Score   `json:"score"`
}

func (h *TailorHandler) adapt(ctx context.Context, r resume.Resume, req jobRequest) adaptResponse {
	job := req.job()
	out := h.uc.Adapt(ctx, r, tailor.AdaptOptions{
		TargetLanguage: req.TargetLanguage,
		JobTitle:       job.JobTitle,
		JobDescription: job.JobDescription,
		CompanyName:    job.CompanyName,
	})
	return adaptResponse{Resume: out, Score: h.scorer.Compute(out, out.Job())}
}

// @Summary Адаптировать резюме
// @Description Переписывает резюме под вакансию (модель или эвристика) и возвращает его новую оценку.
// @Tags    Адаптация
// @Accept  json
// @Produce json
// @Param   input body jobRequest true "Резюме и вакансия"
// @Security BearerAuth
// @Success 200 {object} adaptResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /tailor/adapt [post]
func (h *TailorHandler) Adapt(c *fiber.Ctx) error {
	var req jobRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	r, err := resolveResume(c, h.profiles, req.Resume)
	if err != nil {
		return fail(c, err, "failed to load profile")
	}
	return presenter.JSON(c, http.StatusOK, h.adapt(c.UserContext(), r, req))
}

type liveRequest struct {
	jobRequest
	Session string `json:"session"`
}

// @Summary Живая адаптация
// @Description Адаптация с задержкой: если за время ожидания пришёл более новый запрос той же сессии, возвращается 202 и superseded=true.
// @Tags    Адаптация
// @Accept  json
// @Produce json
// @Param   input body liveRequest true "Сессия, резюме и вакансия"
// @Security BearerAuth
// @Success 200 {object} adaptResponse
// @Success 202 {object} map[string]bool
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 408 {object} presenter.ErrorResponse
// @Router  /tailor/live [post]
func (h *TailorHandler) Live(c *fiber.Ctx) error {
	var req liveRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	session := strings.TrimSpace(req.Session)
	if session == "" {
		return presenter.Error(c, http.StatusBadRequest, "session is required")
	}
	r, err := resolveResume(c, h.profiles, req.Resume)
	if err != nil {
		return fail(c, err, "failed to load profile")
	}
	out, err := h.live.Submit(c.UserContext(), session, h.debounce, func(ctx context.Context) adaptResponse {
		return h.adapt(ctx, r, req.jobRequest)
	})
	switch {
	case errors.Is(err, tailor.ErrSuperseded):
		return presenter.JSON(c, http.StatusAccepted, fiber.Map{"superseded": true})
	case err != nil:
		return presenter.Error(c, http.StatusRequestTimeout, "request cancelled")
	}
	return presenter.JSON(c, http.StatusOK, out)
}

type letterRequest struct {
	Resume         *resume.Resume  `json:"resume"`
	TargetLanguage resume.Language `json:"targetLanguage"`
	RecipientName  string          `json:"recipientName"`
	CompanyName    string          `json:"companyName"`
	JobTitle       string          `json:"jobTitle"`
}

// @Summary Сопроводительное письмо
// @Tags    Адаптация
// @Accept  json
// @Produce json
// @Param   input body letterRequest true "Резюме и получатель"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /tailor/letter [post]
func (h *TailorHandler) Letter(c *fiber.Ctx) error {
	var req letterRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	r, err := resolveResume(c, h.profiles, req.Resume)
	if err != nil {
		return fail(c, err, "failed to load profile")
	}
	letter := h.uc.Letter(c.UserContext(), r, tailor.LetterOptions{
		TargetLanguage: req.TargetLanguage,
		RecipientName:  strings.TrimSpace(req.RecipientName),
		CompanyName:    strings.TrimSpace(req.CompanyName),
		JobTitle:       strings.TrimSpace(req.JobTitle),
	})
	return presenter.JSON(c, http.StatusOK, fiber.Map{"letter": letter})
}
