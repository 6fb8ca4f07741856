package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/artisanbay/sellerhub/internal/domain"
	"github.com/artisanbay/sellerhub/internal/milestones"
	"github.com/artisanbay/sellerhub/internal/storage"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SellerHandler handles seller profile API requests.
type SellerHandler struct {
	sellers domain.SellerRepository
	assets  storage.AssetStore
}

// NewSellerHandler creates a new SellerHandler.
func NewSellerHandler(sellers domain.SellerRepository, assets storage.AssetStore) *SellerHandler {
	return &SellerHandler{sellers: sellers, assets: assets}
}

// Get handles GET /api/seller?uid={id}.
func (h *SellerHandler) Get(c echo.Context) error {
	uid := c.QueryParam("uid")
	if uid == "" {
		return fail(c, http.StatusBadRequest, "uid query parameter is required")
	}

	profile, err := h.sellers.FindByUID(c.Request().Context(), uid)
	if err != nil {
		slog.Error("Failed to load seller profile", "uid", uid, "error", err)
		return fail(c, http.StatusInternalServerError, "failed to load profile")
	}
	if profile == nil {
		return fail(c, http.StatusNotFound, "seller not found")
	}

	return c.JSON(http.StatusOK, profile)
}

// Update handles PUT /api/seller/:id. The body is the full form-data JSON;
// unknown fields are dropped and the rest is merge-written into the
// document. The updated document is not returned.
func (h *SellerHandler) Update(c echo.Context) error {
	uid := c.Param("id")

	var body map[string]any
	if err := c.Bind(&body); err != nil {
		return fail(c, http.StatusBadRequest, "invalid JSON body")
	}

	patch := domain.ProfilePatch{}
	for name, value := range body {
		if domain.KnownPatchField(name) {
			patch[name] = value
		}
	}
	if len(patch) == 0 {
		return fail(c, http.StatusBadRequest, "no updatable fields in body")
	}

	if err := h.sellers.MergePatch(c.Request().Context(), uid, patch); err != nil {
		slog.Error("Failed to update seller profile", "uid", uid, "error", err)
		return fail(c, http.StatusInternalServerError, "failed to update profile")
	}

	return ok(c)
}

// Stats handles GET /api/seller/:id/stats. The milestone block is derived
// display data, recomputed on every read and never persisted.
func (h *SellerHandler) Stats(c echo.Context) error {
	uid := c.Param("id")

	stats, err := h.sellers.AggregateStats(c.Request().Context(), uid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fail(c, http.StatusNotFound, "seller not found")
		}
		slog.Error("Failed to aggregate stats", "uid", uid, "error", err)
		return fail(c, http.StatusInternalServerError, "failed to load stats")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"stats":     stats,
		"milestone": milestones.Compute(stats.TotalOrders),
	})
}

// UploadLogo handles POST /api/seller/:id/logo. The image is stored in the
// asset backend and the profile's logoUrl is merge-updated to point at it.
func (h *SellerHandler) UploadLogo(c echo.Context) error {
	uid := c.Param("id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fail(c, http.StatusBadRequest, "file form field is required")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp":
	default:
		return fail(c, http.StatusBadRequest, "unsupported image type")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return fail(c, http.StatusBadRequest, "could not read uploaded file")
	}
	defer src.Close()

	assetPath := fmt.Sprintf("logos/%s/%s%s", uid, uuid.NewString(), ext)
	if _, err := h.assets.Save(c.Request().Context(), assetPath, src); err != nil {
		slog.Error("Failed to store logo", "uid", uid, "error", err)
		return fail(c, http.StatusInternalServerError, "failed to store logo")
	}

	logoURL := "/assets/" + assetPath
	patch := domain.ProfilePatch{"logoUrl": logoURL}
	if err := h.sellers.MergePatch(c.Request().Context(), uid, patch); err != nil {
		slog.Error("Failed to record logo url", "uid", uid, "error", err)
		return fail(c, http.StatusInternalServerError, "failed to update profile")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"logoUrl": logoURL,
	})
}
