package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/models"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/repository"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/apperr"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/policy"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/statistics"
	"github.com/GaneshPrasad14/coimbatore-express-sub000/internal/pkg/usercontext"
)

// AdminController handles the dashboard, analytics, user management and
// site settings
type AdminController struct {
	repos *repository.Repositories
}

// NewAdminController creates a new admin controller instance
func NewAdminController(repos *repository.Repositories) *AdminController {
	return &AdminController{repos: repos}
}

// HandleDashboard returns the aggregate counts for the dashboard home.
// GET /api/admin/dashboard
func (ctl *AdminController) HandleDashboard(c *fiber.Ctx) error {
	actor := usercontext.GetActor(c)
	if !policy.Can(actor, policy.ActionViewAnalytics) {
		return apperr.Forbidden("Moderator role required")
	}

	stats, err := statistics.GetDashboardStats(ctl.repos)
	if err != nil {
		return apperr.Wrap("Could not compute dashboard statistics", err)
	}
	return respondData(c, fiber.StatusOK, stats)
}

// HandleArticleAnalytics returns the most-viewed articles and article
// counts per category.
// GET /api/admin/analytics/articles
func (ctl *AdminController) HandleArticleAnalytics(c *fiber.Ctx) error {
	actor := usercontext.GetActor(c)
	if !policy.Can(actor, policy.ActionViewAnalytics) {
		return apperr.Forbidden("Moderator role required")
	}

	limit := c.QueryInt("limit", 10)
	top, err := ctl.repos.Article.GetTrending(limit)
	if err != nil {
		return apperr.Wrap("Could not load top articles", err)
	}

	perCategory, err := ctl.repos.Article.CountPerCategory()
	if err != nil {
		return apperr.Wrap("Could not count articles per category", err)
	}

	return respondData(c, fiber.StatusOK, fiber.Map{
		"top_articles": top,
		"per_category": perCategory,
	})
}

// HandleModeration returns comment counts per moderation state.
// GET /api/admin/moderation
func (ctl *AdminController) HandleModeration(c *fiber.Ctx) error {
	actor := usercontext.GetActor(c)
	if !policy.Can(actor, policy.ActionModerateComments) {
		return apperr.Forbidden("Moderator role required")
	}

	counts := fiber.Map{}
	for _, status := range []models.CommentStatus{
		models.CommentStatusPending,
		models.CommentStatusApproved,
		models.CommentStatusRejected,
		models.CommentStatusSpam,
	} {
		n, err := ctl.repos.Comment.CountByStatus(status)
		if err != nil {
			return apperr.Wrap("Could not count comments", err)
		}
		counts[string(status)] = n
	}
	return respondData(c, fiber.StatusOK, counts)
}

// HandleUserList returns dashboard users.
// GET /api/admin/users
func (ctl *AdminController) HandleUserList(c *fiber.Ctx) error {
	actor := usercontext.GetActor(c)
	if !policy.Can(actor, policy.ActionManageUsers) {
		return apperr.Forbidden("Admin role required")
	}

	page, limit := parsePagination(c)
	total, err := ctl.repos.User.Count()
	if err != nil {
		return apperr.Wrap("Could not count users", err)
	}
	users, err := ctl.repos.User.List((page-1)*limit, limit)
	if err != nil {
		return apperr.Wrap("Could not load users", err)
	}
	return respondList(c, users, buildPagination(page, limit, total, "totalUsers"))
}

type createUserRequest struct {
	Name     string            `json:"name" validate:"required,min=2,max=100"`
	Email    string            `json:"email" validate:"required,email"`
	Password string            `json:"password" validate:"required,min=8,max=72"`
	Role     models.AuthorRole `json:"role"`
}

// HandleUserCreate creates a dashboard user with a bcrypt-hashed
// password.
// POST /api/admin/users
func (ctl *AdminController) HandleUserCreate(c *fiber.Ctx) error {
	actor := usercontext.GetActor(c)
	if !policy.Can(actor, policy.ActionManageUsers) {
		return apperr.Forbidden("Admin role required")
	}

	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	taken, err := ctl.repos.User.EmailExists(req.Email)
	if err != nil {
		return apperr.Wrap("Could not check user email", err)
	}
	if taken {
		return apperr.Conflict("A user with this email already exists")
	}

	user := models.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	}
	if user.Role == "" {
		user.Role = models.RoleAuthor
	}
	if err := user.SetPassword(req.Password); err != nil {
		return apperr.Wrap("Could not hash password", err)
	}

	if err := ctl.repos.User.Create(&user); err != nil {
		return apperr.Wrap("Could not save user", err)
	}
	return respondData(c, fiber.StatusCreated, user)
}

// HandleSettingsGet returns all site settings.
// GET /api/admin/settings
func (ctl *AdminController) HandleSettingsGet(c *fiber.Ctx) error {
	actor := usercontext.GetActor(c)
	if !policy.Can(actor, policy.ActionManageContent) {
		return apperr.Forbidden("Moderator role required")
	}

	settings, err := ctl.repos.Setting.GetAll()
	if err != nil {
		return apperr.Wrap("Could not load settings", err)
	}
	return respondData(c, fiber.StatusOK, settings)
}

// HandleSettingsUpdate writes a batch of key/value settings.
// PUT /api/admin/settings
func (ctl *AdminController) HandleSettingsUpdate(c *fiber.Ctx) error {
	actor := usercontext.GetActor(c)
	if !policy.Can(actor, policy.ActionManageContent) {
		return apperr.Forbidden("Moderator role required")
	}

	var values map[string]string
	if err := c.BodyParser(&values); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if len(values) == 0 {
		return apperr.Validation("No settings provided")
	}

	for key, value := range values {
		if err := ctl.repos.Setting.SetValue(key, value); err != nil {
			return apperr.Wrap("Could not save setting "+key, err)
		}
	}
	return respondMessage(c, fiber.StatusOK, "Settings saved")
}

// HandleUserDelete removes a dashboard user.
// DELETE /api/admin/users/:id
func (ctl *AdminController) HandleUserDelete(c *fiber.Ctx) error {
	actor := usercontext.GetActor(c)
	if !policy.Can(actor, policy.ActionManageUsers) {
		return apperr.Forbidden("Admin role required")
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if _, err := ctl.repos.User.GetByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("User not found")
	} else if err != nil {
		return apperr.Wrap("Could not load user", err)
	}

	if err := ctl.repos.User.Delete(id); err != nil {
		return apperr.Wrap("Could not delete user", err)
	}
	return respondMessage(c, fiber.StatusOK, "User deleted")
}
