package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yanqian/kundali/internal/domain/kundali"
)

// Handler wires the HTTP transport to the kundali service.
type Handler struct {
	svc    kundali.Service
	logger *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(svc kundali.Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger.With("component", "http.handler"),
	}
}

// computeChartRequest is the wire form of kundali.Request. Birth fields are
// pointers so an absent field is rejected rather than read as zero.
type computeChartRequest struct {
	Year          *int       `json:"year" binding:"required"`
	Month         *int       `json:"month" binding:"required"`
	Day           *int       `json:"day" binding:"required"`
	Hour          *int       `json:"hour" binding:"required"`
	Minute        *int       `json:"minute" binding:"required"`
	Second        *int       `json:"second" binding:"required"`
	UTCOffset     *float64   `json:"utcOffset" binding:"required"`
	Latitude      *float64   `json:"latitude" binding:"required"`
	Longitude     *float64   `json:"longitude" binding:"required"`
	ReferenceTime *time.Time `json:"referenceTime"`
	Vargas        []string   `json:"vargas"`
}

func (r computeChartRequest) toDomain() kundali.Request {
	return kundali.Request{
		BirthInput: kundali.BirthInput{
			Year:      *r.Year,
			Month:     *r.Month,
			Day:       *r.Day,
			Hour:      *r.Hour,
			Minute:    *r.Minute,
			Second:    *r.Second,
			UTCOffset: *r.UTCOffset,
			Latitude:  *r.Latitude,
			Longitude: *r.Longitude,
		},
		ReferenceTime: r.ReferenceTime,
		Vargas:        r.Vargas,
	}
}

// ComputeChart handles chart computation requests.
func (h *Handler) ComputeChart(c *gin.Context) {
	var req computeChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, bindError(err))
		return
	}

	resp, err := h.svc.Compute(c.Request.Context(), req.toDomain())
	if err != nil {
		abortWithError(c, serviceError(err, "chart_failed"))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetChart returns a previously computed chart by id.
func (h *Handler) GetChart(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "invalid chart id", err))
		return
	}

	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, serviceError(err, "chart_lookup_failed"))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListVargas returns the supported divisional charts.
func (h *Handler) ListVargas(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"vargas": h.svc.Variants()})
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
