package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Dosada05/placement-system/middleware"
	"github.com/Dosada05/placement-system/models"
	"github.com/Dosada05/placement-system/services"
	"github.com/go-chi/chi/v5"
)

type PlacementHandler struct {
	responder
	placementService services.PlacementService
}

func NewPlacementHandler(ps services.PlacementService, logger *slog.Logger) *PlacementHandler {
	return &PlacementHandler{
		responder:        responder{logger: logger},
		placementService: ps,
	}
}

// ListPlacementSystems godoc
// @Summary Список шаблонов систем розыгрыша мест
// @Tags placement-systems
// @Produce json
// @Param type query string false "Фильтр по типу (simple, tiered, cross-group, swiss, playoff, custom)"
// @Param q query string false "Нечёткий поиск по id и названию"
// @Success 200 {object} map[string]interface{} "Шаблоны"
// @Router /placement-systems [get]
func (h *PlacementHandler) ListPlacementSystems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := services.TemplateFilter{Query: query.Get("q")}
	if raw := query.Get("type"); raw != "" {
		t := models.PlacementSystemType(raw)
		filter.Type = &t
	}

	templates := h.placementService.ListTemplates(r.Context(), filter)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"placement_systems": templates}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// GetPlacementSystem godoc
// @Summary Получить шаблон по ID
// @Tags placement-systems
// @Produce json
// @Param systemID path string true "Template ID"
// @Success 200 {object} map[string]interface{} "Шаблон найден"
// @Failure 404 {object} map[string]string "Шаблон не найден"
// @Router /placement-systems/{systemID} [get]
func (h *PlacementHandler) GetPlacementSystem(w http.ResponseWriter, r *http.Request) {
	tmpl, err := h.placementService.GetTemplate(r.Context(), chi.URLParam(r, "systemID"))
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"placement_system": tmpl}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ValidatePlacementSystem godoc
// @Summary Проверить конфигурацию системы розыгрыша мест
// @Tags placement-systems
// @Accept json
// @Produce json
// @Param body body models.PlacementSystemConfiguration true "Конфигурация"
// @Success 200 {object} models.ValidationResult
// @Failure 400 {object} map[string]string "Некорректный JSON"
// @Router /placement-systems/validate [post]
func (h *PlacementHandler) ValidatePlacementSystem(w http.ResponseWriter, r *http.Request) {
	var cfg models.PlacementSystemConfiguration
	if err := readJSON(w, r, &cfg); err != nil {
		h.badRequestResponse(w, r, err)
		return
	}

	result := h.placementService.ValidateConfiguration(r.Context(), cfg)
	if err := writeJSON(w, http.StatusOK, result, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// GetPlacementSettings godoc
// @Summary Настройки розыгрыша мест турнира
// @Tags placement
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Success 200 {object} models.PlacementSettings
// @Failure 404 {object} map[string]string "Турнир не найден"
// @Router /tournaments/{tournamentID}/placement-settings [get]
func (h *PlacementHandler) GetPlacementSettings(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}

	settings, err := h.placementService.GetSettings(r.Context(), tournamentID)
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"placement_settings": settings}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// UpdatePlacementSettings godoc
// @Summary Обновить настройки розыгрыша мест
// @Tags placement
// @Accept json
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Param body body services.UpdatePlacementSettingsInput true "enabled + systemId"
// @Success 200 {object} models.PlacementSettings
// @Failure 400 {object} map[string]string "Ошибка валидации"
// @Failure 403 {object} map[string]string "Нет прав"
// @Failure 404 {object} map[string]string "Турнир или шаблон не найден"
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/placement-settings [put]
func (h *PlacementHandler) UpdatePlacementSettings(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	user, err := middleware.GetCurrentUser(r.Context())
	if err != nil {
		h.unauthorizedResponse(w, r, err.Error())
		return
	}

	var input services.UpdatePlacementSettingsInput
	if err := readJSON(w, r, &input); err != nil {
		h.badRequestResponse(w, r, err)
		return
	}

	settings, err := h.placementService.UpdateSettings(r.Context(), user, tournamentID, input)
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"placement_settings": settings}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// PreviewPlacementMatches godoc
// @Summary Предпросмотр матчей за места
// @Tags placement
// @Description Без тела запроса используется шаблон из настроек турнира; в теле можно передать свою конфигурацию.
// @Accept json
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Param body body models.PlacementSystemConfiguration false "Своя конфигурация"
// @Success 200 {object} services.PlacementPreview
// @Failure 409 {object} map[string]string "Розыгрыш мест не настроен"
// @Failure 422 {object} map[string]string "Конфигурация некорректна или нет таблиц групп"
// @Router /tournaments/{tournamentID}/placement-matches/preview [post]
func (h *PlacementHandler) PreviewPlacementMatches(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}

	var override *models.PlacementSystemConfiguration
	if r.ContentLength != 0 {
		var cfg models.PlacementSystemConfiguration
		err := readJSON(w, r, &cfg)
		switch {
		case err == nil:
			override = &cfg
		case !errors.Is(err, errEmptyBody):
			h.badRequestResponse(w, r, err)
			return
		}
	}

	preview, err := h.placementService.PreviewPlacementMatches(r.Context(), tournamentID, override)
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, preview, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// GeneratePlacementMatches godoc
// @Summary Сгенерировать и сохранить матчи за места
// @Tags placement
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Success 201 {object} map[string]interface{} "Сохранённые матчи"
// @Failure 403 {object} map[string]string "Нет прав"
// @Failure 409 {object} map[string]string "Розыгрыш мест не настроен или выключен"
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/placement-matches [post]
func (h *PlacementHandler) GeneratePlacementMatches(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	user, err := middleware.GetCurrentUser(r.Context())
	if err != nil {
		h.unauthorizedResponse(w, r, err.Error())
		return
	}

	matches, err := h.placementService.GenerateAndSavePlacementMatches(r.Context(), user, tournamentID)
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"placement_matches": matches}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ListPlacementMatches godoc
// @Summary Сохранённые матчи за места
// @Tags placement
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Success 200 {object} map[string]interface{} "Матчи"
// @Failure 404 {object} map[string]string "Турнир не найден"
// @Router /tournaments/{tournamentID}/placement-matches [get]
func (h *PlacementHandler) ListPlacementMatches(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}

	matches, err := h.placementService.ListPlacementMatches(r.Context(), tournamentID)
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"placement_matches": matches}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// RecordPlacementResult godoc
// @Summary Записать победителя матча за место
// @Tags placement
// @Description Победитель и проигравший переносятся в матчи, которые на него ссылаются.
// @Accept json
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Param matchID path string true "Placement match UID"
// @Param body body services.RecordPlacementResultInput true "winnerTeamId"
// @Success 200 {object} models.ScheduledPlacementMatch
// @Failure 400 {object} map[string]string "Победитель не участвует в матче"
// @Failure 404 {object} map[string]string "Матч не найден"
// @Failure 409 {object} map[string]string "Участники не определены или результат уже записан"
// @Security BearerAuth
// @Router /tournaments/{tournamentID}/placement-matches/{matchID}/result [put]
func (h *PlacementHandler) RecordPlacementResult(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	user, err := middleware.GetCurrentUser(r.Context())
	if err != nil {
		h.unauthorizedResponse(w, r, err.Error())
		return
	}

	var input services.RecordPlacementResultInput
	if err := readJSON(w, r, &input); err != nil {
		h.badRequestResponse(w, r, err)
		return
	}

	match, err := h.placementService.RecordPlacementResult(r.Context(), user, tournamentID, chi.URLParam(r, "matchID"), input)
	if err != nil {
		h.mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"placement_match": match}, nil); err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
