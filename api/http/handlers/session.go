package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/cvtailor/api/http/presenter"
	"github.com/artem13815/cvtailor/pkg/auth"
)

type SessionHandler struct {
	useCase auth.AccessUseCase
}

func NewSessionHandler(useCase auth.AccessUseCase) *SessionHandler {
	return &SessionHandler{useCase: useCase}
}

type sessionRequest struct {
	Password string `json:"password"`
}

// Create issues an access token for the owner password.
// @Summary Войти
// @Tags    Доступ
// @Accept  json
// @Produce json
// @Param   input body sessionRequest true "Пароль владельца"
// @Success 201 {object} auth.Session
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /session [post]
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	var req sessionRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	sess, err := h.useCase.Login(c.UserContext(), req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return presenter.Error(c, http.StatusUnauthorized, "invalid credentials")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to issue token")
	}
	return presenter.JSON(c, http.StatusCreated, sess)
}
