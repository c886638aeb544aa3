package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/models"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/repository"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/apperr"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/policy"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/slug"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/usercontext"
)

// CategoryController handles category CRUD
type CategoryController struct {
	categories repository.CategoryRepository
	articles   repository.ArticleRepository
}

// NewCategoryController creates a new category controller instance
func NewCategoryController(repos *repository.Repositories) *CategoryController {
	return &CategoryController{
		categories: repos.Category,
		articles:   repos.Article,
	}
}

type categoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"max=500"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
	IsActive    *bool  `json:"is_active"`
	SortOrder   int    `json:"sort_order"`
}

// HandleList returns all categories in sort order.
// GET /api/categories
func (ctl *CategoryController) HandleList(c *fiber.Ctx) error {
	categories, err := ctl.categories.GetAll()
	if err != nil {
		return apperr.Wrap("Could not load categories", err)
	}
	return respondData(c, fiber.StatusOK, categories)
}

// HandleGet returns one category by ID.
// GET /api/categories/:id
func (ctl *CategoryController) HandleGet(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	category, err := ctl.categories.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Category not found")
	}
	if err != nil {
		return apperr.Wrap("Could not load category", err)
	}
	return respondData(c, fiber.StatusOK, category)
}

// HandleGetBySlug returns one category by slug.
// GET /api/categories/slug/:slug
func (ctl *CategoryController) HandleGetBySlug(c *fiber.Ctx) error {
	category, err := ctl.categories.GetBySlug(c.Params("slug"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Category not found")
	}
	if err != nil {
		return apperr.Wrap("Could not load category", err)
	}
	return respondData(c, fiber.StatusOK, category)
}

// HandleCreate creates a new category.
// POST /api/categories
func (ctl *CategoryController) HandleCreate(c *fiber.Ctx) error {
	actor := usercontext.GetActor(c)
	if !policy.Can(actor, policy.ActionManageContent) {
		return apperr.Forbidden("Moderator role required")
	}

	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	categorySlug, err := slug.Unique(req.Name, ctl.categories.SlugExists)
	if err != nil {
		return apperr.Wrap("Could not generate slug", err)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	category := models.Category{
		Name:        req.Name,
		Slug:        categorySlug,
		Description: req.Description,
		Color:       req.Color,
		Icon:        req.Icon,
		IsActive:    isActive,
		SortOrder:   req.SortOrder,
	}
	if err := ctl.categories.Create(&category); err != nil {
		return apperr.Wrap("Could not save category", err)
	}
	return respondData(c, fiber.StatusCreated, category)
}

// HandleUpdate edits a category; slug follows name changes.
// PUT /api/categories/:id
func (ctl *CategoryController) HandleUpdate(c *fiber.Ctx) error {
	actor := usercontext.GetActor(c)
	if !policy.Can(actor, policy.ActionManageContent) {
		return apperr.Forbidden("Moderator role required")
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	category, err := ctl.categories.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Category not found")
	}
	if err != nil {
		return apperr.Wrap("Could not load category", err)
	}

	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	if req.Name != category.Name {
		newSlug, err := slug.Unique(req.Name, func(s string) (bool, error) {
			return ctl.categories.SlugExistsExceptID(s, category.ID)
		})
		if err != nil {
			return apperr.Wrap("Could not generate slug", err)
		}
		category.Slug = newSlug
	}

	category.Name = req.Name
	category.Description = req.Description
	category.Color = req.Color
	category.Icon = req.Icon
	category.SortOrder = req.SortOrder
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := ctl.categories.Update(category); err != nil {
		return apperr.Wrap("Could not update category", err)
	}
	return respondData(c, fiber.StatusOK, category)
}

// HandleDelete removes a category unless articles still reference it.
// DELETE /api/categories/:id
func (ctl *CategoryController) HandleDelete(c *fiber.Ctx) error {
	actor := usercontext.GetActor(c)
	if !policy.Can(actor, policy.ActionManageContent) {
		return apperr.Forbidden("Moderator role required")
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if _, err := ctl.categories.GetByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Category not found")
	} else if err != nil {
		return apperr.Wrap("Could not load category", err)
	}

	inUse, err := ctl.articles.Count(repository.ArticleFilter{CategoryID: id})
	if err != nil {
		return apperr.Wrap("Could not check category references", err)
	}
	if inUse > 0 {
		return apperr.Conflict("Category is still referenced by articles")
	}

	if err := ctl.categories.Delete(id); err != nil {
		return apperr.Wrap("Could not delete category", err)
	}
	return respondMessage(c, fiber.StatusOK, "Category deleted")
}
