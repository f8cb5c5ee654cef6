package api

import (
	"errors"
	"net/http"

	"slotbook/internal/domain/reservation"
	reqdto "slotbook/internal/handler/dto/request"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WizardHandler struct {
	wizards *usecase.WizardService
}

func NewWizardHandler(wizards *usecase.WizardService) *WizardHandler {
	return &WizardHandler{wizards: wizards}
}

// @Summary Start a booking wizard
// @Description Create a fresh six-step booking wizard session
// @Tags wizards
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.WizardResponse
// @Router /wizards [post]
func (h *WizardHandler) Create(c *gin.Context) {
	w := h.wizards.Create()
	c.JSON(http.StatusCreated, resdto.FromWizard(w.Snapshot(), w.Window()))
}

// @Summary Get wizard state
// @Tags wizards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Success 200 {object} resdto.WizardResponse
// @Failure 404 {object} map[string]string
// @Router /wizards/{id} [get]
func (h *WizardHandler) Get(c *gin.Context) {
	w, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizard(w.Snapshot(), w.Window()))
}

// @Summary Advance the wizard one step
// @Tags wizards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Success 200 {object} resdto.WizardResponse
// @Failure 409 {object} map[string]string
// @Router /wizards/{id}/advance [post]
func (h *WizardHandler) Advance(c *gin.Context) {
	w, ok := h.lookup(c)
	if !ok {
		return
	}
	if err := w.Advance(); err != nil {
		h.renderWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizard(w.Snapshot(), w.Window()))
}

// @Summary Step the wizard back
// @Tags wizards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Success 200 {object} resdto.WizardResponse
// @Failure 409 {object} map[string]string
// @Router /wizards/{id}/back [post]
func (h *WizardHandler) Back(c *gin.Context) {
	w, ok := h.lookup(c)
	if !ok {
		return
	}
	if err := w.Back(); err != nil {
		h.renderWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizard(w.Snapshot(), w.Window()))
}

// @Summary Pick a date
// @Description Choose a day inside the booking window; booked times for that day are resolved as a side effect
// @Tags wizards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Param request body reqdto.PickDateRequest true "Chosen day"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /wizards/{id}/date [post]
func (h *WizardHandler) PickDate(c *gin.Context) {
	w, ok := h.lookup(c)
	if !ok {
		return
	}

	var req reqdto.PickDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	day, err := reservation.ParseDay(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz tarih"})
		return
	}

	if err := w.PickDate(c.Request.Context(), day); err != nil {
		h.renderWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizard(w.Snapshot(), w.Window()))
}

// @Summary Pick a time
// @Description Choose a free time label; clicks on booked times are ignored
// @Tags wizards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Param request body reqdto.PickTimeRequest true "Chosen time"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} map[string]string
// @Router /wizards/{id}/time [post]
func (h *WizardHandler) PickTime(c *gin.Context) {
	w, ok := h.lookup(c)
	if !ok {
		return
	}

	var req reqdto.PickTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	label, err := reservation.ParseTimeLabel(req.Time)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz saat"})
		return
	}

	if err := w.PickTime(label); err != nil {
		h.renderWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizard(w.Snapshot(), w.Window()))
}

// @Summary Set the optional note
// @Tags wizards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Param request body reqdto.NoteRequest true "Note text"
// @Success 200 {object} resdto.WizardResponse
// @Router /wizards/{id}/note [post]
func (h *WizardHandler) SetNote(c *gin.Context) {
	w, ok := h.lookup(c)
	if !ok {
		return
	}

	var req reqdto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := w.SetNote(req.Note); err != nil {
		h.renderWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizard(w.Snapshot(), w.Window()))
}

// @Summary Submit the draft
// @Description Create the reservation upstream; on failure the wizard stays on confirm with the draft intact
// @Tags wizards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Success 200 {object} resdto.WizardResponse
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /wizards/{id}/submit [post]
func (h *WizardHandler) Submit(c *gin.Context) {
	w, ok := h.lookup(c)
	if !ok {
		return
	}

	if _, err := w.Submit(c.Request.Context()); err != nil {
		h.renderWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizard(w.Snapshot(), w.Window()))
}

// @Summary Reset the wizard for another booking
// @Tags wizards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Success 200 {object} resdto.WizardResponse
// @Router /wizards/{id}/reset [post]
func (h *WizardHandler) Reset(c *gin.Context) {
	w, ok := h.lookup(c)
	if !ok {
		return
	}
	if err := w.Reset(); err != nil {
		h.renderWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizard(w.Snapshot(), w.Window()))
}

func (h *WizardHandler) lookup(c *gin.Context) (*usecase.Wizard, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wizard ID format"})
		return nil, false
	}

	w, err := h.wizards.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wizard not found"})
		return nil, false
	}
	return w, true
}

func (h *WizardHandler) renderWizardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrDateRequired):
		c.JSON(http.StatusConflict, gin.H{"error": "Önce bir tarih seçin"})
	case errors.Is(err, usecase.ErrTimeRequired):
		c.JSON(http.StatusConflict, gin.H{"error": "Önce boş bir saat seçin"})
	case errors.Is(err, usecase.ErrDayOutOfWindow):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Seçilen tarih rezervasyon aralığının dışında"})
	case errors.Is(err, usecase.ErrNoBackStep), errors.Is(err, usecase.ErrNoForwardStep), errors.Is(err, usecase.ErrNotAtConfirm):
		c.JSON(http.StatusConflict, gin.H{"error": "Bu adımdan devam edilemez"})
	case errors.Is(err, usecase.ErrSubmissionInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": "Gönderim zaten devam ediyor"})
	case errors.Is(err, usecase.ErrSlotConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Bu saat az önce doldu. Lütfen başka bir saat seçin."})
	case errors.Is(err, usecase.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Oturum süresi doldu. Lütfen tekrar giriş yapın."})
	case errors.Is(err, usecase.ErrInvalidDraft):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Rezervasyon bilgileri geçersiz"})
	case errors.Is(err, usecase.ErrSubmitFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Rezervasyon oluşturulamadı. Lütfen tekrar deneyin."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
