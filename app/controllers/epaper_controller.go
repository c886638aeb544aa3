package controllers

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/models"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/repository"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/apperr"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/env"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/policy"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/usercontext"
)

// EpaperController handles daily e-paper issues
type EpaperController struct {
	epaper repository.EpaperRepository
}

// NewEpaperController creates a new e-paper controller instance
func NewEpaperController(repos *repository.Repositories) *EpaperController {
	return &EpaperController{epaper: repos.Epaper}
}

// HandleList returns issues newest first.
// GET /api/epaper
func (ctl *EpaperController) HandleList(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	total, err := ctl.epaper.Count()
	if err != nil {
		return apperr.Wrap("Could not count issues", err)
	}
	issues, err := ctl.epaper.List((page-1)*limit, limit)
	if err != nil {
		return apperr.Wrap("Could not load issues", err)
	}
	return respondList(c, issues, buildPagination(page, limit, total, "totalIssues"))
}

// HandleGet returns one issue and counts the view.
// GET /api/epaper/:id
func (ctl *EpaperController) HandleGet(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	issue, err := ctl.epaper.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Issue not found")
	}
	if err != nil {
		return apperr.Wrap("Could not load issue", err)
	}

	if err := ctl.epaper.IncrementViews(issue.ID); err != nil {
		log.Warnf("Could not record view for issue %d: %v", issue.ID, err)
	}
	return respondData(c, fiber.StatusOK, issue)
}

type epaperRequest struct {
	IssueDate   time.Time `json:"issue_date" validate:"required"`
	PdfURL      string    `json:"pdf_url" validate:"required"`
	PageCount   int       `json:"page_count" validate:"min=0"`
	Title       string    `json:"title" validate:"max=255"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
}

// HandleCreate registers a new issue. At most one issue may exist per
// calendar day.
// POST /api/epaper
func (ctl *EpaperController) HandleCreate(c *fiber.Ctx) error {
	actor := usercontext.GetActor(c)
	if !policy.Can(actor, policy.ActionWriteContent) {
		return apperr.Forbidden("Staff role required")
	}

	var req epaperRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	status := req.Status
	if status == "" {
		status = models.EpaperStatusPublished
	}
	if !models.ValidEpaperStatus(status) {
		return apperr.Validation("Unknown issue status")
	}

	exists, err := ctl.epaper.ExistsForDay(req.IssueDate)
	if err != nil {
		return apperr.Wrap("Could not check issue date", err)
	}
	if exists {
		return apperr.Conflict("An issue already exists for this date")
	}

	issue := models.EpaperIssue{
		IssueDate:   req.IssueDate,
		PdfURL:      req.PdfURL,
		PageCount:   req.PageCount,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
	}
	if err := ctl.epaper.Create(&issue); err != nil {
		return apperr.Wrap("Could not save issue", err)
	}
	return respondData(c, fiber.StatusCreated, issue)
}

func epaperRoot() string {
	return env.GetEnv("EPAPER_DIR", "uploads/epaper")
}

// issueFilePath anchors a stored relative PDF path under the e-paper
// directory. Cleaning against a rooted path strips any ../ escape
// before the join, so a stored path can never leave the tree.
func issueFilePath(pdfURL string) string {
	rel := strings.TrimPrefix(filepath.Clean("/"+pdfURL), "/")
	rel = strings.TrimPrefix(rel, epaperRoot()+"/")
	return filepath.Join(epaperRoot(), rel)
}

// HandleDownload counts the download and serves the PDF. Local files
// are streamed from the e-paper directory; absolute URLs redirect.
// GET /api/epaper/:id/download
func (ctl *EpaperController) HandleDownload(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	issue, err := ctl.epaper.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Issue not found")
	}
	if err != nil {
		return apperr.Wrap("Could not load issue", err)
	}

	if err := ctl.epaper.IncrementDownloads(issue.ID); err != nil {
		log.Warnf("Could not record download for issue %d: %v", issue.ID, err)
	}

	if strings.HasPrefix(issue.PdfURL, "http://") || strings.HasPrefix(issue.PdfURL, "https://") {
		return c.Redirect(issue.PdfURL, fiber.StatusFound)
	}
	return c.SendFile(issueFilePath(issue.PdfURL))
}

// HandleDelete removes an issue.
// DELETE /api/epaper/:id
func (ctl *EpaperController) HandleDelete(c *fiber.Ctx) error {
	actor := usercontext.GetActor(c)
	if !policy.Can(actor, policy.ActionManageContent) {
		return apperr.Forbidden("Moderator role required")
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if _, err := ctl.epaper.GetByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Issue not found")
	} else if err != nil {
		return apperr.Wrap("Could not load issue", err)
	}

	if err := ctl.epaper.Delete(id); err != nil {
		return apperr.Wrap("Could not delete issue", err)
	}
	return respondMessage(c, fiber.StatusOK, "Issue deleted")
}
