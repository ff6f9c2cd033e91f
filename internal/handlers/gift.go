package handlers

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	dom "yuletide/internal/domain"
	"yuletide/internal/dto"
	"yuletide/internal/middleware"
	"yuletide/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	msgNotFound     = "Gift not found"
	msgInvalidBody  = "Invalid request body"
	msgFetchFailed  = "Failed to fetch gifts"
	msgGetFailed    = "Failed to fetch gift"
	msgCreateFailed = "Failed to create gift"
	msgUpdateFailed = "Failed to update gift"
	msgDeleteFailed = "Failed to delete gift"
	msgDeleted      = "Gift deleted successfully"
)

type GiftHandler struct {
	svc    *service.GiftService
	logger *slog.Logger
}

func NewGiftHandler(svc *service.GiftService) *GiftHandler {
	return &GiftHandler{svc: svc, logger: slog.Default().With("component", "http")}
}

// List godoc
// @Summary      List all gifts
// @Tags         gifts
// @Produce      json
// @Success      200  {array}   dto.GiftResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /gifts [get]
func (h *GiftHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, msgFetchFailed)
		return
	}
	c.JSON(http.StatusOK, giftsToResponses(list))
}

// GetByID godoc
// @Summary      Get a gift by ID
// @Tags         gifts
// @Produce      json
// @Param        id   path      int  true  "Gift ID"
// @Success      200  {object}  dto.GiftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /gifts/{id} [get]
func (h *GiftHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	g, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, msgGetFailed)
		return
	}
	c.JSON(http.StatusOK, giftToResponse(g))
}

// Create godoc
// @Summary      Create a gift
// @Tags         gifts
// @Accept       json
// @Produce      json
// @Param        body  body      dto.GiftRequest  true  "Gift fields; missing ones are stored as empty strings"
// @Success      201   {object}  dto.GiftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /gifts [post]
func (h *GiftHandler) Create(c *gin.Context) {
	req, ok := bindGift(c)
	if !ok {
		return
	}
	g, err := h.svc.Create(c.Request.Context(), req.Fields())
	if err != nil {
		h.fail(c, err, msgCreateFailed)
		return
	}
	c.JSON(http.StatusCreated, giftToResponse(g))
}

// Update godoc
// @Summary      Replace a gift
// @Tags         gifts
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "Gift ID"
// @Param        body  body      dto.GiftRequest  true  "Full replacement; missing fields become empty strings"
// @Success      200   {object}  dto.GiftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /gifts/{id} [put]
func (h *GiftHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	req, ok := bindGift(c)
	if !ok {
		return
	}
	g, err := h.svc.Update(c.Request.Context(), id, req.Fields())
	if err != nil {
		h.fail(c, err, msgUpdateFailed)
		return
	}
	c.JSON(http.StatusOK, giftToResponse(g))
}

// Delete godoc
// @Summary      Delete a gift
// @Tags         gifts
// @Produce      json
// @Param        id   path      int  true  "Gift ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /gifts/{id} [delete]
func (h *GiftHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err, msgDeleteFailed)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: msgDeleted})
}

// fail writes 404 for ErrNotFound and a generic 500 for anything else.
// The cause is logged, never sent.
func (h *GiftHandler) fail(c *gin.Context, err error, msg string) {
	if errors.Is(err, dom.ErrNotFound) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msgNotFound})
		return
	}
	h.logger.Error(msg,
		"error", err,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"request_id", middleware.RequestIDFromContext(c),
	)
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msg})
}

// numericID matches the decimal forms SQLite converts to an integer key:
// "5", "+5", "5.0", "5e0".
var numericID = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// parseID answers 404 for ids no row can match. Surrounding whitespace and
// integral decimals are accepted, as a lookup through SQLite would.
func parseID(c *gin.Context, name string) (int64, bool) {
	raw := strings.TrimSpace(c.Param(name))
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return id, true
	}
	if numericID.MatchString(raw) {
		f, err := strconv.ParseFloat(raw, 64)
		if err == nil && f == math.Trunc(f) && math.Abs(f) < 1<<63 {
			return int64(f), true
		}
	}
	c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msgNotFound})
	return 0, false
}

// bindGift decodes the JSON body. An empty body, or one that is not sent
// as application/json, is the same as {}.
func bindGift(c *gin.Context) (dto.GiftRequest, bool) {
	var req dto.GiftRequest
	if c.ContentType() != binding.MIMEJSON {
		return req, true
	}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgInvalidBody})
		return dto.GiftRequest{}, false
	}
	return req, true
}

func giftToResponse(g dom.Gift) dto.GiftResponse {
	return dto.GiftResponse{
		ID:           g.ID,
		Kid:          g.Kid,
		Item:         g.Item,
		Link:         g.Link,
		Helper:       g.Helper,
		DeliveryDate: g.DeliveryDate,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

func giftsToResponses(list []dom.Gift) []dto.GiftResponse {
	out := make([]dto.GiftResponse, len(list))
	for i := range list {
		out[i] = giftToResponse(list[i])
	}
	return out
}
