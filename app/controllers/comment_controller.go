package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/models"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/repository"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/apperr"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/policy"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/usercontext"
)

// CommentController handles comment submission, listing and moderation
type CommentController struct {
	comments repository.CommentRepository
	articles repository.ArticleRepository
}

// NewCommentController creates a new comment controller instance
func NewCommentController(repos *repository.Repositories) *CommentController {
	return &CommentController{
		comments: repos.Comment,
		articles: repos.Article,
	}
}

type submitCommentRequest struct {
	ArticleID   uint   `json:"article_id" validate:"required"`
	ParentID    *uint  `json:"parent_id"`
	Content     string `json:"content" validate:"required,min=5,max=1000"`
	AuthorName  string `json:"author_name" validate:"required,min=2,max=100"`
	AuthorEmail string `json:"author_email" validate:"required,email"`
	// No status field: submitters cannot inject a moderation state.
}

// HandleSubmit creates a new comment in the pending state.
// POST /api/comments
func (ctl *CommentController) HandleSubmit(c *fiber.Ctx) error {
	var req submitCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	// Comments may only be placed on published articles. A draft looks
	// exactly like a missing article so its existence does not leak.
	article, err := ctl.articles.GetByID(req.ArticleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Article not found")
	}
	if err != nil {
		return apperr.Wrap("Could not load article", err)
	}
	if !article.IsPublished() {
		return apperr.NotFound("Article not found")
	}

	if req.ParentID != nil {
		parent, err := ctl.comments.GetByID(*req.ParentID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Validation("Parent comment does not exist")
		}
		if err != nil {
			return apperr.Wrap("Could not load parent comment", err)
		}
		if parent.ArticleID != req.ArticleID {
			return apperr.Validation("Parent comment belongs to a different article")
		}
	}

	comment := models.Comment{
		ArticleID:   req.ArticleID,
		ParentID:    req.ParentID,
		Content:     req.Content,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		AuthorIP:    clientIP(c),
		Status:      models.CommentStatusPending,
	}
	if err := ctl.comments.Create(&comment); err != nil {
		return apperr.Wrap("Could not save comment", err)
	}

	// Freshly created, so the approved-reply list is necessarily empty;
	// attach it anyway for a consistent response shape.
	comment.Replies = []models.Comment{}
	return respondData(c, fiber.StatusCreated, comment)
}

// HandleList returns comments for one article, newest first, each with
// its approved replies embedded.
// GET /api/comments?articleId=&status=&page=&limit=
func (ctl *CommentController) HandleList(c *fiber.Ctx) error {
	articleID := c.QueryInt("articleId", 0)
	if articleID < 1 {
		return apperr.Validation("articleId query parameter is required")
	}
	page, limit := parsePagination(c)

	actor := usercontext.GetActor(c)
	var statusFilter *models.CommentStatus
	if actor.IsPrivileged() {
		if raw := c.Query("status"); raw != "" {
			status := models.CommentStatus(raw)
			if !models.ValidCommentStatus(status) {
				return apperr.Validation("Unknown comment status")
			}
			statusFilter = &status
		}
	} else {
		// Non-privileged viewers only ever see approved comments, no
		// matter what filter they ask for.
		approved := models.CommentStatusApproved
		statusFilter = &approved
	}

	total, err := ctl.comments.CountByArticle(uint(articleID), statusFilter)
	if err != nil {
		return apperr.Wrap("Could not count comments", err)
	}

	comments, err := ctl.comments.ListByArticle(uint(articleID), statusFilter, (page-1)*limit, limit)
	if err != nil {
		return apperr.Wrap("Could not load comments", err)
	}

	comments, err = ctl.comments.AttachApprovedReplies(comments)
	if err != nil {
		return apperr.Wrap("Could not load replies", err)
	}

	return respondList(c, comments, buildPagination(page, limit, total, "totalComments"))
}

type updateStatusRequest struct {
	Status models.CommentStatus `json:"status" validate:"required"`
}

// HandleUpdateStatus moves a comment to another moderation state. The
// status set is flat: any state may be written over any other.
// PUT /api/comments/:id/status
func (ctl *CommentController) HandleUpdateStatus(c *fiber.Ctx) error {
	actor := usercontext.GetActor(c)
	if !policy.Can(actor, policy.ActionModerateComments) {
		return apperr.Forbidden("Moderator role required")
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if !models.ValidCommentStatus(req.Status) {
		return apperr.Validation("Unknown comment status")
	}

	comment, err := ctl.comments.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Comment not found")
	}
	if err != nil {
		return apperr.Wrap("Could not load comment", err)
	}

	if err := ctl.comments.UpdateStatus(comment.ID, req.Status); err != nil {
		return apperr.Wrap("Could not update comment status", err)
	}
	comment.Status = req.Status
	return respondData(c, fiber.StatusOK, comment)
}

type editCommentRequest struct {
	Content string `json:"content" validate:"required,min=5,max=1000"`
}

// HandleEdit replaces the content of a comment. Every edit resets the
// status to pending so changed content goes through review again, even
// when a moderator edits.
// PUT /api/comments/:id
func (ctl *CommentController) HandleEdit(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req editCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	comment, err := ctl.comments.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Comment not found")
	}
	if err != nil {
		return apperr.Wrap("Could not load comment", err)
	}

	actor := usercontext.GetActor(c)
	if !policy.CanTouchComment(actor, comment.AuthorEmail) {
		return apperr.Forbidden("Only the submitter or a moderator may edit this comment")
	}

	comment.Content = req.Content
	comment.Status = models.CommentStatusPending
	if err := ctl.comments.Update(comment); err != nil {
		return apperr.Wrap("Could not update comment", err)
	}
	return respondData(c, fiber.StatusOK, comment)
}

// HandleDelete removes a comment and its direct replies.
// DELETE /api/comments/:id
func (ctl *CommentController) HandleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	comment, err := ctl.comments.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Comment not found")
	}
	if err != nil {
		return apperr.Wrap("Could not load comment", err)
	}

	actor := usercontext.GetActor(c)
	if !policy.CanTouchComment(actor, comment.AuthorEmail) {
		return apperr.Forbidden("Only the submitter or a moderator may delete this comment")
	}

	if err := ctl.comments.Delete(comment.ID); err != nil {
		return apperr.Wrap("Could not delete comment", err)
	}
	return respondMessage(c, fiber.StatusOK, "Comment deleted")
}

// HandlePendingQueue lists the moderation queue across all articles.
// GET /api/comments/moderation/pending
func (ctl *CommentController) HandlePendingQueue(c *fiber.Ctx) error {
	actor := usercontext.GetActor(c)
	if !policy.Can(actor, policy.ActionModerateComments) {
		return apperr.Forbidden("Moderator role required")
	}

	page, limit := parsePagination(c)
	total, err := ctl.comments.CountByStatus(models.CommentStatusPending)
	if err != nil {
		return apperr.Wrap("Could not count pending comments", err)
	}

	comments, err := ctl.comments.ListByStatus(models.CommentStatusPending, (page-1)*limit, limit)
	if err != nil {
		return apperr.Wrap("Could not load pending comments", err)
	}

	return respondList(c, comments, buildPagination(page, limit, total, "totalComments"))
}
