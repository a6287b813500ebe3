package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/biztrackr/biz_tracker_app/internal/apperrors"
	"github.com/biztrackr/biz_tracker_app/internal/core/domain"
	portssvc "github.com/biztrackr/biz_tracker_app/internal/core/ports/services"
	"github.com/biztrackr/biz_tracker_app/internal/dto"
	"github.com/biztrackr/biz_tracker_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// uploadHandler handles staging and committing the caller's upload batch.
type uploadHandler struct {
	uploadService portssvc.UploadSvcFacade
}

// newUploadHandler creates a new uploadHandler.
func newUploadHandler(us portssvc.UploadSvcFacade) *uploadHandler {
	return &uploadHandler{
		uploadService: us,
	}
}

// RegisterUploadRoutes registers all upload-related routes.
func RegisterUploadRoutes(rg *gin.RouterGroup, uploadService portssvc.UploadSvcFacade) {
	h := newUploadHandler(uploadService)

	uploads := rg.Group("/uploads")
	{
		uploads.POST("/documents", h.stageDocument)
		uploads.POST("/images", h.stageImage)
		uploads.GET("", h.listStaged)
		uploads.DELETE("/:kind/:index", h.unstage)
		uploads.POST("/commit", h.commit)
	}
}

// stageDocument godoc
// @Summary Stage a document for upload
// @Description Adds one multipart file to the caller's staged document batch. A fourth document is refused and the existing three are untouched.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document to stage"
// @Success 200 {object} dto.StagedBatchResponse
// @Failure 400 {object} map[string]string "Missing file or batch full"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /uploads/documents [post]
func (h *uploadHandler) stageDocument(c *gin.Context) {
	h.stage(c, domain.UploadDocument)
}

// stageImage godoc
// @Summary Stage an image for upload
// @Description Adds one multipart file to the caller's staged image batch. A fourth image is refused and the existing three are untouched.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image to stage"
// @Success 200 {object} dto.StagedBatchResponse
// @Failure 400 {object} map[string]string "Missing file or batch full"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /uploads/images [post]
func (h *uploadHandler) stageImage(c *gin.Context) {
	h.stage(c, domain.UploadImage)
}

func (h *uploadHandler) stage(c *gin.Context, kind domain.UploadKind) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Multipart field 'file' is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open multipart file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		logger.Error("Failed to read multipart file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}

	staged := domain.StagedFile{
		Kind:     kind,
		Filename: filepath.Base(fileHeader.Filename),
		Content:  content,
	}
	if err := h.uploadService.StageFile(c.Request.Context(), ownerID, staged); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to stage file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to stage file"})
		return
	}

	logger.Info("File staged", slog.String("kind", string(kind)), slog.String("filename", staged.Filename))
	c.JSON(http.StatusOK, dto.ToStagedBatchResponse(h.uploadService.ListStaged(c.Request.Context(), ownerID)))
}

// listStaged godoc
// @Summary List the staged upload batch
// @Description Returns the caller's currently staged documents and images.
// @Tags uploads
// @Produce json
// @Success 200 {object} dto.StagedBatchResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /uploads [get]
func (h *uploadHandler) listStaged(c *gin.Context) {
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStagedBatchResponse(h.uploadService.ListStaged(c.Request.Context(), ownerID)))
}

// unstage godoc
// @Summary Remove a staged file
// @Description Removes the index-th staged file of the given kind from the caller's batch.
// @Tags uploads
// @Produce json
// @Param kind path string true "File kind" Enums(document, image)
// @Param index path int true "Zero-based index within the kind"
// @Success 200 {object} dto.StagedBatchResponse
// @Failure 400 {object} map[string]string "Unknown kind or index out of range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /uploads/{kind}/{index} [delete]
func (h *uploadHandler) unstage(c *gin.Context) {
	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	kind := domain.UploadKind(c.Param("kind"))
	if kind != domain.UploadDocument && kind != domain.UploadImage {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown upload kind"})
		return
	}

	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Index must be an integer"})
		return
	}

	if err := h.uploadService.Unstage(c.Request.Context(), ownerID, kind, idx); err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unstage file"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStagedBatchResponse(h.uploadService.ListStaged(c.Request.Context(), ownerID)))
}

// commit godoc
// @Summary Commit the staged batch
// @Description Uploads the staged files one at a time and reports a per-item result. Earlier successes stay committed when a later item fails; the batch itself is not cleared, so a re-commit re-uploads everything still staged.
// @Tags uploads
// @Produce json
// @Success 200 {object} dto.CommitBatchResponse
// @Failure 400 {object} map[string]string "Nothing staged"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to commit batch"
// @Security BearerAuth
// @Router /uploads/commit [post]
func (h *uploadHandler) commit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	results, err := h.uploadService.CommitBatch(c.Request.Context(), ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to commit upload batch", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit batch"})
		return
	}

	logger.Info("Upload batch committed", slog.Int("items", len(results)))
	c.JSON(http.StatusOK, dto.CommitBatchResponse{Results: results})
}
