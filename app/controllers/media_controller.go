package controllers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/models"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/repository"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/apperr"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/env"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/mediaprocessor"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/policy"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/upload"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/usercontext"
)

// MediaController handles file uploads and the media library
type MediaController struct {
	media repository.MediaRepository
}

// NewMediaController creates a new media controller instance
func NewMediaController(repos *repository.Repositories) *MediaController {
	return &MediaController{media: repos.Media}
}

func mediaRoot() string {
	return env.GetEnv("MEDIA_DIR", "uploads/media")
}

func maxUploadBytes() int64 {
	return int64(env.GetEnvInt("MEDIA_MAX_BYTES", 25<<20))
}

func sanitizeFolder(folder string) string {
	folder = strings.Trim(filepath.Clean(folder), "/.")
	if folder == "" || strings.Contains(folder, "..") {
		return "general"
	}
	return folder
}

// ingestFile writes the physical file first, derives variants for
// images, then creates the record. Any failure after the physical write
// removes everything written so far, so no orphan files remain.
func (ctl *MediaController) ingestFile(c *fiber.Ctx, fileHeader *multipart.FileHeader, folder string, uploadedBy uint) (*models.Media, error) {
	if err := upload.ValidateSize(fileHeader.Size, maxUploadBytes()); err != nil {
		return nil, err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, apperr.Wrap("Could not open uploaded file", err)
	}
	defer src.Close()

	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		return nil, apperr.Wrap("Could not read uploaded file", err)
	}

	mimeType, err := upload.ValidateFile(fileHeader.Filename, head[:n])
	if err != nil {
		return nil, err
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, apperr.Wrap("Could not rewind uploaded file", err)
	}

	// Unique filename: uuid + original extension. This is the one
	// concurrency safeguard uploads need; two simultaneous uploads can
	// never collide on disk.
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	fileName := uuid.New().String() + ext
	dir := filepath.Join(mediaRoot(), sanitizeFolder(folder))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperr.Wrap("Could not create media directory", err)
	}
	fullPath := filepath.Join(dir, fileName)

	dst, err := os.Create(fullPath)
	if err != nil {
		return nil, apperr.Wrap("Could not write media file", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		mediaprocessor.Cleanup([]string{fullPath})
		return nil, apperr.Wrap("Could not write media file", err)
	}
	if err := dst.Close(); err != nil {
		mediaprocessor.Cleanup([]string{fullPath})
		return nil, apperr.Wrap("Could not write media file", err)
	}

	written := []string{fullPath}
	if upload.IsImageMime(mimeType) {
		variants, err := mediaprocessor.DeriveVariants(fullPath)
		if err != nil {
			mediaprocessor.Cleanup(written)
			return nil, apperr.Wrap("Could not derive image variants", err)
		}
		written = append(written, variants...)
	}

	media := models.Media{
		FileName:     fileName,
		OriginalName: fileHeader.Filename,
		MimeType:     mimeType,
		Size:         fileHeader.Size,
		URL:          "/" + filepath.ToSlash(fullPath),
		AltText:      c.FormValue("alt_text"),
		Caption:      c.FormValue("caption"),
		Folder:       sanitizeFolder(folder),
		UploadedBy:   uploadedBy,
	}
	if err := ctl.media.Create(&media); err != nil {
		mediaprocessor.Cleanup(written)
		return nil, apperr.Wrap("Could not save media record", err)
	}
	return &media, nil
}

// HandleUpload ingests a single file.
// POST /api/media/upload
func (ctl *MediaController) HandleUpload(c *fiber.Ctx) error {
	actor := usercontext.GetActor(c)
	if !policy.Can(actor, policy.ActionWriteContent) {
		return apperr.Forbidden("Staff role required")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperr.Validation("No file uploaded")
	}

	media, err := ctl.ingestFile(c, fileHeader, c.FormValue("folder"), actor.UserID)
	if err != nil {
		return err
	}
	return respondData(c, fiber.StatusCreated, media)
}

// HandleUploadMultiple ingests several files from one form. Files are
// processed in order; the first failure aborts the rest, files already
// ingested stay.
// POST /api/media/upload-multiple
func (ctl *MediaController) HandleUploadMultiple(c *fiber.Ctx) error {
	actor := usercontext.GetActor(c)
	if !policy.Can(actor, policy.ActionWriteContent) {
		return apperr.Forbidden("Staff role required")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return apperr.Validation("Invalid multipart form")
	}
	files := form.File["files"]
	if len(files) == 0 {
		return apperr.Validation("No files uploaded")
	}

	folder := c.FormValue("folder")
	created := make([]*models.Media, 0, len(files))
	for _, fileHeader := range files {
		media, err := ctl.ingestFile(c, fileHeader, folder, actor.UserID)
		if err != nil {
			return err
		}
		created = append(created, media)
	}
	return respondData(c, fiber.StatusCreated, created)
}

// HandleList returns the media library, optionally filtered by folder.
// GET /api/media?folder=&page=&limit=
func (ctl *MediaController) HandleList(c *fiber.Ctx) error {
	actor := usercontext.GetActor(c)
	if !policy.Can(actor, policy.ActionWriteContent) {
		return apperr.Forbidden("Staff role required")
	}

	page, limit := parsePagination(c)
	folder := c.Query("folder")

	total, err := ctl.media.Count(folder)
	if err != nil {
		return apperr.Wrap("Could not count media", err)
	}
	items, err := ctl.media.List(folder, (page-1)*limit, limit)
	if err != nil {
		return apperr.Wrap("Could not load media", err)
	}
	return respondList(c, items, buildPagination(page, limit, total, "totalMedia"))
}

// HandleGet returns one media record.
// GET /api/media/:id
func (ctl *MediaController) HandleGet(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	media, err := ctl.media.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Media not found")
	}
	if err != nil {
		return apperr.Wrap("Could not load media", err)
	}
	return respondData(c, fiber.StatusOK, media)
}

type mediaUpdateRequest struct {
	AltText string `json:"alt_text" validate:"max=255"`
	Caption string `json:"caption" validate:"max=500"`
}

// HandleUpdate edits the descriptive fields of a media record.
// PUT /api/media/:id
func (ctl *MediaController) HandleUpdate(c *fiber.Ctx) error {
	actor := usercontext.GetActor(c)
	if !policy.Can(actor, policy.ActionWriteContent) {
		return apperr.Forbidden("Staff role required")
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	media, err := ctl.media.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Media not found")
	}
	if err != nil {
		return apperr.Wrap("Could not load media", err)
	}

	var req mediaUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	media.AltText = req.AltText
	media.Caption = req.Caption
	if err := ctl.media.Update(media); err != nil {
		return apperr.Wrap("Could not update media", err)
	}
	return respondData(c, fiber.StatusOK, media)
}

// HandleDelete removes the record and the physical files. A failed
// unlink does not block the record deletion; the stray file is logged
// by the processor and accepted as cleanup debt.
// DELETE /api/media/:id
func (ctl *MediaController) HandleDelete(c *fiber.Ctx) error {
	actor := usercontext.GetActor(c)
	if !policy.Can(actor, policy.ActionManageContent) {
		return apperr.Forbidden("Moderator role required")
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	media, err := ctl.media.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Media not found")
	}
	if err != nil {
		return apperr.Wrap("Could not load media", err)
	}

	fullPath := filepath.Join(mediaRoot(), media.Folder, media.FileName)
	mediaprocessor.RemoveWithVariants(fullPath)

	if err := ctl.media.Delete(media.ID); err != nil {
		return apperr.Wrap("Could not delete media record", err)
	}
	return respondMessage(c, fiber.StatusOK, fmt.Sprintf("Media %d deleted", media.ID))
}
