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

// AuthorController handles author profile CRUD and stats
type AuthorController struct {
	authors  repository.AuthorRepository
	articles repository.ArticleRepository
}

// NewAuthorController creates a new author controller instance
func NewAuthorController(repos *repository.Repositories) *AuthorController {
	return &AuthorController{
		authors:  repos.Author,
		articles: repos.Article,
	}
}

type authorRequest struct {
	Name        string              `json:"name" validate:"required,min=2,max=100"`
	Email       string              `json:"email" validate:"required,email"`
	Bio         string              `json:"bio" validate:"max=1000"`
	Avatar      string              `json:"avatar"`
	Role        models.AuthorRole   `json:"role"`
	Status      models.AuthorStatus `json:"status"`
	Specialties models.StringList   `json:"specialties"`
	SocialLinks models.StringMap    `json:"social_links"`
	Verified    *bool               `json:"verified"`
}

// HandleList returns authors with pagination.
// GET /api/authors
func (ctl *AuthorController) HandleList(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	total, err := ctl.authors.Count()
	if err != nil {
		return apperr.Wrap("Could not count authors", err)
	}
	authors, err := ctl.authors.List((page-1)*limit, limit)
	if err != nil {
		return apperr.Wrap("Could not load authors", err)
	}
	return respondList(c, authors, buildPagination(page, limit, total, "totalAuthors"))
}

// HandleGet returns one author profile.
// GET /api/authors/:id
func (ctl *AuthorController) HandleGet(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	author, err := ctl.authors.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Author not found")
	}
	if err != nil {
		return apperr.Wrap("Could not load author", err)
	}
	return respondData(c, fiber.StatusOK, author)
}

// HandleStats returns article count, total views and last publication
// for one author.
// GET /api/authors/:id/stats
func (ctl *AuthorController) HandleStats(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if _, err := ctl.authors.GetByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Author not found")
	} else if err != nil {
		return apperr.Wrap("Could not load author", err)
	}

	stats, err := ctl.articles.StatsByAuthor(id)
	if err != nil {
		return apperr.Wrap("Could not load author stats", err)
	}
	return respondData(c, fiber.StatusOK, stats)
}

// HandleCreate creates a new author profile.
// POST /api/authors
func (ctl *AuthorController) HandleCreate(c *fiber.Ctx) error {
	actor := usercontext.GetActor(c)
	if !policy.Can(actor, policy.ActionManageContent) {
		return apperr.Forbidden("Moderator role required")
	}

	var req authorRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	taken, err := ctl.authors.EmailExists(req.Email)
	if err != nil {
		return apperr.Wrap("Could not check author email", err)
	}
	if taken {
		return apperr.Conflict("An author with this email already exists")
	}

	author := models.Author{
		Name:        req.Name,
		Email:       req.Email,
		Bio:         req.Bio,
		Avatar:      req.Avatar,
		Role:        req.Role,
		Status:      req.Status,
		Specialties: req.Specialties,
		SocialLinks: req.SocialLinks,
	}
	if author.Role == "" {
		author.Role = models.RoleAuthor
	}
	if author.Status == "" {
		author.Status = models.AuthorStatusActive
	}
	if req.Verified != nil {
		author.Verified = *req.Verified
	}

	if err := ctl.authors.Create(&author); err != nil {
		return apperr.Wrap("Could not save author", err)
	}
	return respondData(c, fiber.StatusCreated, author)
}

// HandleUpdate edits an author profile.
// PUT /api/authors/:id
func (ctl *AuthorController) HandleUpdate(c *fiber.Ctx) error {
	actor := usercontext.GetActor(c)
	if !policy.Can(actor, policy.ActionManageContent) {
		return apperr.Forbidden("Moderator role required")
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	author, err := ctl.authors.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Author not found")
	}
	if err != nil {
		return apperr.Wrap("Could not load author", err)
	}

	var req authorRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	if req.Email != author.Email {
		taken, err := ctl.authors.EmailExistsExceptID(req.Email, author.ID)
		if err != nil {
			return apperr.Wrap("Could not check author email", err)
		}
		if taken {
			return apperr.Conflict("An author with this email already exists")
		}
	}

	author.Name = req.Name
	author.Email = req.Email
	author.Bio = req.Bio
	author.Avatar = req.Avatar
	author.Specialties = req.Specialties
	author.SocialLinks = req.SocialLinks
	if req.Role != "" {
		author.Role = req.Role
	}
	if req.Status != "" {
		author.Status = req.Status
	}
	if req.Verified != nil {
		author.Verified = *req.Verified
	}

	if err := ctl.authors.Update(author); err != nil {
		return apperr.Wrap("Could not update author", err)
	}
	return respondData(c, fiber.StatusOK, author)
}

// HandleDelete removes an author unless articles still reference them.
// DELETE /api/authors/:id
func (ctl *AuthorController) HandleDelete(c *fiber.Ctx) error {
	actor := usercontext.GetActor(c)
	if !policy.Can(actor, policy.ActionManageContent) {
		return apperr.Forbidden("Moderator role required")
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if _, err := ctl.authors.GetByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Author not found")
	} else if err != nil {
		return apperr.Wrap("Could not load author", err)
	}

	inUse, err := ctl.articles.Count(repository.ArticleFilter{AuthorID: id})
	if err != nil {
		return apperr.Wrap("Could not check author references", err)
	}
	if inUse > 0 {
		return apperr.Conflict("Author is still referenced by articles")
	}

	if err := ctl.authors.Delete(id); err != nil {
		return apperr.Wrap("Could not delete author", err)
	}
	return respondMessage(c, fiber.StatusOK, "Author deleted")
}
