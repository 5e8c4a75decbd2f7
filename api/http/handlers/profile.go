package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/cvtailor/api/http/presenter"
	"github.com/artem13815/cvtailor/pkg/resume"
)

type ProfileHandler struct {
	uc resume.ProfileUseCase
}

func NewProfileHandler(uc resume.ProfileUseCase) *ProfileHandler { return &ProfileHandler{uc: uc} }

// @Summary Базовое резюме
// @Description Возвращает базовый профиль; пустой профиль, если он ещё не сохранён.
// @Tags    Профиль
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resume.Resume
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	p, err := h.uc.Get(c.UserContext())
	if err != nil {
		return fail(c, err, "failed to load profile")
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// @Summary Сохранить базовое резюме
// @Tags    Профиль
// @Accept  json
// @Produce json
// @Param   input body resume.Resume true "Резюме"
// @Security BearerAuth
// @Success 200 {object} resume.Resume
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /profile [put]
func (h *ProfileHandler) Put(c *fiber.Ctx) error {
	var in resume.Resume
	if err := c.BodyParser(&in); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	saved, err := h.uc.Save(c.UserContext(), in)
	if err != nil {
		return fail(c, err, "failed to save profile")
	}
	return presenter.JSON(c, http.StatusOK, saved)
}
