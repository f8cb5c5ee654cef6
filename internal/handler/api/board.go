package api

import (
	"errors"
	"net/http"
	"strconv"

	"slotbook/internal/domain/reservation"
	"slotbook/internal/gateway"
	reqdto "slotbook/internal/handler/dto/request"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/usecase"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BoardHandler struct {
	boards *usecase.BoardService
}

func NewBoardHandler(boards *usecase.BoardService) *BoardHandler {
	return &BoardHandler{boards: boards}
}

type boardCreatedResponse struct {
	ID     uuid.UUID `json:"id"`
	Scope  string    `json:"scope"`
	Loaded bool      `json:"loaded"`
}

// @Summary Open a reservation board
// @Description Create a listing session for the given scope and load its reservations
// @Tags boards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBoardRequest true "Listing scope"
// @Success 201 {object} boardCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /boards [post]
func (h *BoardHandler) Create(c *gin.Context) {
	var req reqdto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	b, err := h.boards.Create(gateway.Scope(req.Scope))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scope"})
		return
	}

	if err := b.Load(c.Request.Context()); err != nil {
		// The board exists but is empty-with-error; the client retries
		// through /refresh.
		c.JSON(http.StatusBadGateway, gin.H{
			"id":    b.ID(),
			"error": "Rezervasyonlar alınamadı. Lütfen daha sonra tekrar deneyin.",
		})
		return
	}

	c.JSON(http.StatusCreated, boardCreatedResponse{ID: b.ID(), Scope: string(b.Scope()), Loaded: true})
}

// @Summary Reload a board's reservations
// @Tags boards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Board ID"
// @Success 200 {object} boardCreatedResponse
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /boards/{id}/refresh [post]
func (h *BoardHandler) Refresh(c *gin.Context) {
	b, ok := h.lookup(c)
	if !ok {
		return
	}

	if err := b.Load(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Rezervasyonlar alınamadı. Lütfen daha sonra tekrar deneyin."})
		return
	}
	c.JSON(http.StatusOK, boardCreatedResponse{ID: b.ID(), Scope: string(b.Scope()), Loaded: true})
}

// @Summary Get one page of day-groups
// @Description Whole date-groups per page, newest day first, with summary stats
// @Tags boards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Board ID"
// @Param page query int false "Zero-based page of groups"
// @Param size query int false "Groups per page (1, 7, 14 or 31)"
// @Success 200 {object} resdto.PageResponse
// @Failure 404 {object} map[string]string
// @Router /boards/{id}/page [get]
func (h *BoardHandler) Page(c *gin.Context) {
	b, ok := h.lookup(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(queries.DefaultPageSize)))

	c.JSON(http.StatusOK, resdto.FromGroupedPage(b.Page(page, size)))
}

// @Summary Change a reservation's status
// @Description Admin transition to Aktif, İptal or Tamamlandı; the board list is reconciled in place
// @Tags boards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Board ID"
// @Param rid path string true "Reservation ID"
// @Param request body reqdto.ChangeStatusRequest true "Target status"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /boards/{id}/reservations/{rid}/status [patch]
func (h *BoardHandler) ChangeStatus(c *gin.Context) {
	b, ok := h.lookup(c)
	if !ok {
		return
	}

	var req reqdto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	target := reservation.ParseStatus(req.Status)
	updated, err := b.ChangeStatus(c.Request.Context(), c.Param("rid"), target)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidTarget):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Geçersiz durum"})
		case errors.Is(err, usecase.ErrTransitionInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": "Başka bir durum değişikliği devam ediyor"})
		case errors.Is(err, usecase.ErrTransitionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Rezervasyon bulunamadı"})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "Durum güncellenemedi"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservation(updated))
}

func (h *BoardHandler) lookup(c *gin.Context) (*usecase.Board, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
		return nil, false
	}

	b, err := h.boards.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return nil, false
	}
	return b, true
}
