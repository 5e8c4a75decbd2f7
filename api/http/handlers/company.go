package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/cvtailor/api/http/presenter"
	"github.com/artem13815/cvtailor/pkg/company"
	"github.com/artem13815/cvtailor/pkg/resume"
)

type CompanyHandler struct {
	uc company.UseCase
}

func NewCompanyHandler(uc company.UseCase) *CompanyHandler { return &CompanyHandler{uc: uc} }

type companyRequest struct {
	Name     string          `json:"name"`
	Website  string          `json:"website"`
	Industry string          `json:"industry"`
	Notes    string          `json:"notes"`
	Address  company.Address `json:"address"`
}

func (r companyRequest) toCompany() company.Company {
	return company.Company{
		Name:     r.Name,
		Website:  r.Website,
		Industry: r.Industry,
		Notes:    r.Notes,
		Address:  r.Address,
	}
}

// @Summary Список компаний
// @Description Компании от последних изменённых к старым.
// @Tags    Компании
// @Produce json
// @Param   limit  query int false "Размер страницы (до 200)"
// @Param   offset query int false "Смещение"
// @Security BearerAuth
// @Success 200 {array} company.Company
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, defaultPageSize)
	items, err := h.uc.List(c.UserContext(), limit, offset)
	if err != nil {
		return fail(c, err, "failed to list companies")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// @Summary Создать компанию
// @Tags    Компании
// @Accept  json
// @Produce json
// @Param   input body companyRequest true "Данные компании"
// @Security BearerAuth
// @Success 201 {object} company.Company
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var req companyRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	created, err := h.uc.Create(c.UserContext(), req.toCompany())
	if err != nil {
		return fail(c, err, "failed to create company")
	}
	return presenter.JSON(c, http.StatusCreated, created)
}

// @Summary Получить компанию
// @Tags    Компании
// @Produce json
// @Param   id path string true "ID компании (UUID)"
// @Security BearerAuth
// @Success 200 {object} company.Company
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /companies/{id} [get]
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	id, ok := uuidParam(c, "id")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	item, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return fail(c, err, "failed to load company")
	}
	return presenter.JSON(c, http.StatusOK, item)
}

// @Summary Обновить компанию
// @Description Меняет только описательные поля; контакты и заявки не затрагиваются.
// @Tags    Компании
// @Accept  json
// @Produce json
// @Param   id    path string         true "ID компании (UUID)"
// @Param   input body companyRequest true "Данные компании"
// @Security BearerAuth
// @Success 200 {object} company.Company
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /companies/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	id, ok := uuidParam(c, "id")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	var req companyRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	updated, err := h.uc.Update(c.UserContext(), id, req.toCompany())
	if err != nil {
		return fail(c, err, "failed to update company")
	}
	return presenter.JSON(c, http.StatusOK, updated)
}

// @Summary Удалить компанию
// @Tags    Компании
// @Param   id path string true "ID компании (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /companies/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	id, ok := uuidParam(c, "id")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return fail(c, err, "failed to delete company")
	}
	return c.SendStatus(http.StatusNoContent)
}

// @Summary Добавить контакт
// @Tags    Компании
// @Accept  json
// @Produce json
// @Param   id    path string          true "ID компании (UUID)"
// @Param   input body company.Contact true "Контакт"
// @Security BearerAuth
// @Success 201 {object} company.Contact
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /companies/{id}/contacts [post]
func (h *CompanyHandler) AddContact(c *fiber.Ctx) error {
	id, ok := uuidParam(c, "id")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	var ct company.Contact
	if err := c.BodyParser(&ct); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	created, err := h.uc.AddContact(c.UserContext(), id, ct)
	if err != nil {
		return fail(c, err, "failed to add contact")
	}
	return presenter.JSON(c, http.StatusCreated, created)
}

// @Summary Удалить контакт
// @Tags    Компании
// @Param   id        path string true "ID компании (UUID)"
// @Param   contactId path string true "ID контакта (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /companies/{id}/contacts/{contactId} [delete]
func (h *CompanyHandler) RemoveContact(c *fiber.Ctx) error {
	id, ok := uuidParam(c, "id")
	contactID, ok2 := uuidParam(c, "contactId")
	if !ok || !ok2 {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	if err := h.uc.RemoveContact(c.UserContext(), id, contactID); err != nil {
		return fail(c, err, "failed to remove contact")
	}
	return c.SendStatus(http.StatusNoContent)
}

type applicationRequest struct {
	Position   string         `json:"position"`
	Date       string         `json:"date"`
	Time       string         `json:"time"`
	Status     company.Status `json:"status"`
	Notes      string         `json:"notes"`
	ResumeData *resume.Resume `json:"resumeData"`
}

// @Summary Добавить заявку
// @Description Сохраняет снимок переданного резюме или, если его нет, базового профиля.
// @Tags    Заявки
// @Accept  json
// @Produce json
// @Param   id    path string             true "ID компании (UUID)"
// @Param   input body applicationRequest true "Заявка"
// @Security BearerAuth
// @Success 201 {object} company.Application
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /companies/{id}/applications [post]
func (h *CompanyHandler) AddApplication(c *fiber.Ctx) error {
	id, ok := uuidParam(c, "id")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	var req applicationRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	app, err := h.uc.AddApplication(c.UserContext(), id, company.Application{
		Position:   req.Position,
		Date:       req.Date,
		Time:       req.Time,
		Status:     req.Status,
		Notes:      req.Notes,
		ResumeData: req.ResumeData,
	})
	if err != nil {
		return fail(c, err, "failed to add application")
	}
	return presenter.JSON(c, http.StatusCreated, app)
}

// @Summary Изменить заявку
// @Tags    Заявки
// @Accept  json
// @Produce json
// @Param   id    path string                   true "ID компании (UUID)"
// @Param   appId path string                   true "ID заявки (UUID)"
// @Param   input body company.ApplicationPatch true "Изменяемые поля"
// @Security BearerAuth
// @Success 200 {object} company.Application
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /companies/{id}/applications/{appId} [patch]
func (h *CompanyHandler) UpdateApplication(c *fiber.Ctx) error {
	id, ok := uuidParam(c, "id")
	appID, ok2 := uuidParam(c, "appId")
	if !ok || !ok2 {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	var patch company.ApplicationPatch
	if err := c.BodyParser(&patch); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	app, err := h.uc.UpdateApplication(c.UserContext(), id, appID, patch)
	if err != nil {
		return fail(c, err, "failed to update application")
	}
	return presenter.JSON(c, http.StatusOK, app)
}

type sentResumeRequest struct {
	ContactID uuid.UUID       `json:"contactId"`
	To        company.Contact `json:"to"`
	Data      resume.Resume   `json:"data"`
}

// @Summary Записать отправленное резюме
// @Description Получатель берётся из контактов компании по contactId либо из поля to.
// @Tags    Компании
// @Accept  json
// @Produce json
// @Param   id    path string            true "ID компании (UUID)"
// @Param   input body sentResumeRequest true "Резюме и получатель"
// @Security BearerAuth
// @Success 201 {object} company.SentResume
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /companies/{id}/resumes [post]
func (h *CompanyHandler) RecordResume(c *fiber.Ctx) error {
	id, ok := uuidParam(c, "id")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	var req sentResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	to := req.To
	if req.ContactID != uuid.Nil {
		to.ID = req.ContactID
	}
	sr, err := h.uc.RecordSentResume(c.UserContext(), id, company.SentResume{Data: req.Data, To: to})
	if err != nil {
		return fail(c, err, "failed to record resume")
	}
	return presenter.JSON(c, http.StatusCreated, sr)
}

// @Summary Календарь заявок
// @Description Заявки всех компаний, сгруппированные по дням.
// @Tags    Заявки
// @Produce json
// @Param   from    query string false "С даты (YYYY-MM-DD)"
// @Param   to      query string false "По дату (YYYY-MM-DD)"
// @Param   status  query string false "Статус заявки"
// @Param   company query string false "ID компании (UUID)"
// @Security BearerAuth
// @Success 200 {array} company.CalendarDay
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /calendar [get]
func (h *CompanyHandler) Calendar(c *fiber.Ctx) error {
	from, err := dateQuery(c, "from")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "from must be YYYY-MM-DD")
	}
	to, err := dateQuery(c, "to")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "to must be YYYY-MM-DD")
	}
	f := company.CalendarFilter{From: from, To: to, Status: company.Status(c.Query("status"))}
	if v := c.Query("company"); v != "" {
		cid, err := uuid.Parse(v)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid company UUID")
		}
		f.CompanyID = cid
	}
	days, err := h.uc.Calendar(c.UserContext(), f)
	if err != nil {
		return fail(c, err, "failed to build calendar")
	}
	return presenter.JSON(c, http.StatusOK, days)
}
