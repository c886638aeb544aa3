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

// HeroController handles home page hero banners
type HeroController struct {
	heroes repository.HeroRepository
}

// NewHeroController creates a new hero controller instance
func NewHeroController(repos *repository.Repositories) *HeroController {
	return &HeroController{heroes: repos.Hero}
}

type heroRequest struct {
	Title     string `json:"title" validate:"required,min=2,max=255"`
	Subtitle  string `json:"subtitle" validate:"max=500"`
	ImageURL  string `json:"image_url"`
	LinkURL   string `json:"link_url"`
	IsActive  *bool  `json:"is_active"`
	SortOrder int    `json:"sort_order"`
}

// HandleList returns banners: the active set for public requests, all
// of them for staff.
// GET /api/hero
func (ctl *HeroController) HandleList(c *fiber.Ctx) error {
	actor := usercontext.GetActor(c)

	var heroes []models.Hero
	var err error
	if actor.IsPrivileged() {
		heroes, err = ctl.heroes.GetAll()
	} else {
		heroes, err = ctl.heroes.GetActive()
	}
	if err != nil {
		return apperr.Wrap("Could not load banners", err)
	}
	return respondData(c, fiber.StatusOK, heroes)
}

// HandleCreate creates a new banner.
// POST /api/hero
func (ctl *HeroController) HandleCreate(c *fiber.Ctx) error {
	actor := usercontext.GetActor(c)
	if !policy.Can(actor, policy.ActionManageContent) {
		return apperr.Forbidden("Moderator role required")
	}

	var req heroRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	hero := models.Hero{
		Title:     req.Title,
		Subtitle:  req.Subtitle,
		ImageURL:  req.ImageURL,
		LinkURL:   req.LinkURL,
		IsActive:  true,
		SortOrder: req.SortOrder,
	}
	if req.IsActive != nil {
		hero.IsActive = *req.IsActive
	}

	if err := ctl.heroes.Create(&hero); err != nil {
		return apperr.Wrap("Could not save banner", err)
	}
	return respondData(c, fiber.StatusCreated, hero)
}

// HandleUpdate edits a banner.
// PUT /api/hero/:id
func (ctl *HeroController) HandleUpdate(c *fiber.Ctx) error {
	actor := usercontext.GetActor(c)
	if !policy.Can(actor, policy.ActionManageContent) {
		return apperr.Forbidden("Moderator role required")
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	hero, err := ctl.heroes.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Banner not found")
	}
	if err != nil {
		return apperr.Wrap("Could not load banner", err)
	}

	var req heroRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	hero.Title = req.Title
	hero.Subtitle = req.Subtitle
	hero.ImageURL = req.ImageURL
	hero.LinkURL = req.LinkURL
	hero.SortOrder = req.SortOrder
	if req.IsActive != nil {
		hero.IsActive = *req.IsActive
	}

	if err := ctl.heroes.Update(hero); err != nil {
		return apperr.Wrap("Could not update banner", err)
	}
	return respondData(c, fiber.StatusOK, hero)
}

// HandleDelete removes a banner.
// DELETE /api/hero/:id
func (ctl *HeroController) HandleDelete(c *fiber.Ctx) error {
	actor := usercontext.GetActor(c)
	if !policy.Can(actor, policy.ActionManageContent) {
		return apperr.Forbidden("Moderator role required")
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if _, err := ctl.heroes.GetByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Banner not found")
	} else if err != nil {
		return apperr.Wrap("Could not load banner", err)
	}

	if err := ctl.heroes.Delete(id); err != nil {
		return apperr.Wrap("Could not delete banner", err)
	}
	return respondMessage(c, fiber.StatusOK, "Banner deleted")
}
