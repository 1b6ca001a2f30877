package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Aditya10bit/UpTrends-sub001/internal/domain/catalog"
	"github.com/Aditya10bit/UpTrends-sub001/internal/domain/stylist"
	apperrors "github.com/Aditya10bit/UpTrends-sub001/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	stylistSvc stylist.Service
	catalogSrc catalog.Source
	logger     *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(stylistSvc stylist.Service, catalogSrc catalog.Source, logger *slog.Logger) *Handler {
	return &Handler{
		stylistSvc: stylistSvc,
		catalogSrc: catalogSrc,
		logger:     logger.With("component", "http.handler"),
	}
}

// GenerateRecommendation produces a complete outfit recommendation set. The
// only failure surfaced to the client beyond input validation is the 429.
func (h *Handler) GenerateRecommendation(c *gin.Context) {
	var req stylist.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	req.Profile.Gender = stylist.ParseGender(string(req.Profile.Gender))

	set, err := h.stylistSvc.Generate(c.Request.Context(), req)
	if err != nil {
		switch {
		case apperrors.IsCode(err, "rate_limit_exceeded"):
			h.respondRateLimited(c, err)
		case apperrors.IsCode(err, "invalid_input"):
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		default:
			abortWithError(c, NewHTTPError(http.StatusInternalServerError, "recommendation_failed", errMessage(err), err))
		}
		return
	}

	c.JSON(http.StatusOK, set)
}

type validateImagesRequest struct {
	Images []stylist.ImageAttachment `json:"images"`
}

// ValidateImages checks a batch of uploaded images concurrently and reports
// per-image outcomes in upload order.
func (h *Handler) ValidateImages(c *gin.Context) {
	var req validateImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	results, err := h.stylistSvc.ValidateImages(c.Request.Context(), req.Images)
	if err != nil {
		status := http.StatusInternalServerError
		code := "validation_failed"
		if apperrors.IsCode(err, "invalid_input") {
			status = http.StatusBadRequest
			code = "invalid_request"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

type filterCatalogRequest struct {
	Profile  stylist.UserProfile `json:"profile"`
	Category string              `json:"category"`
	Entries  []catalog.Entry     `json:"entries,omitempty"`
}

// FilterCatalog scores catalog entries against the profile. Callers may
// supply their own entries; otherwise the configured catalog is used.
func (h *Handler) FilterCatalog(c *gin.Context) {
	var req filterCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	req.Profile.Gender = stylist.ParseGender(string(req.Profile.Gender))

	entries := req.Entries
	if len(entries) == 0 {
		entries = h.catalogSrc.List()
	}

	candidates := catalog.Filter(entries, req.Profile, req.Category)
	c.JSON(http.StatusOK, gin.H{"candidates": candidates})
}

// respondRateLimited writes the 429 directly so the payload can carry the
// wait hint alongside the Retry-After header.
func (h *Handler) respondRateLimited(c *gin.Context, err error) {
	waitSeconds := 1
	var rle *stylist.RateLimitError
	if errors.As(err, &rle) {
		waitSeconds = rle.WaitSeconds()
	}
	h.logger.Warn("recommendation rate limited", "wait_seconds", waitSeconds, "path", c.Request.URL.Path)

	c.Header("Retry-After", strconv.Itoa(waitSeconds))
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
		"error": gin.H{
			"code":        "rate_limit_exceeded",
			"message":     "too many generation requests",
			"waitSeconds": waitSeconds,
		},
	})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
