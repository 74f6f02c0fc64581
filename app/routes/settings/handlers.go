package settings

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/logo"
	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/models"
	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/session"
)

var validate = validator.New()

// GetProfileAPI returns the school profile
func GetProfileAPI(c *fiber.Ctx, sess *session.Session) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    sess.Profile(),
	})
}

type profileInput struct {
	Name          string `json:"name" validate:"required,max=120"`
	Address       string `json:"address" validate:"max=200"`
	TrustName     string `json:"trustName" validate:"max=120"`
	IncludeQRCode bool   `json:"includeQrCode"`
}

// UpdateProfileAPI updates the school profile. The logo is managed through
// its own endpoints and survives profile updates untouched.
func UpdateProfileAPI(c *fiber.Ctx, sess *session.Session) error {
	var in profileInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(in); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Validation failed: "+err.Error())
	}

	sess.UpdateProfile(models.SchoolProfile{
		Name:          strings.TrimSpace(in.Name),
		Address:       strings.TrimSpace(in.Address),
		TrustName:     strings.TrimSpace(in.TrustName),
		IncludeQRCode: in.IncludeQRCode,
	})

	return c.JSON(fiber.Map{
		"success": true,
		"data":    sess.Profile(),
		"message": "Profile updated successfully",
	})
}

// UploadLogoAPI accepts a multipart image upload and stores it as the
// school logo, downscaled and re-encoded as a PNG data URL
func UploadLogoAPI(c *fiber.Ctx, sess *session.Session) error {
	file, err := c.FormFile("logo")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing logo file")
	}

	src, err := file.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to read upload")
	}
	defer src.Close()

	dataURL, err := logo.Ingest(src, file.Size)
	if err != nil {
		switch {
		case errors.Is(err, logo.ErrTooLarge):
			return fiber.NewError(fiber.StatusRequestEntityTooLarge, "Logo file is too large")
		case errors.Is(err, logo.ErrNotImage):
			return fiber.NewError(fiber.StatusUnsupportedMediaType, "Logo must be an image file")
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to process logo")
		}
	}

	sess.SetLogo(&dataURL)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    sess.Profile(),
		"message": "Logo uploaded successfully",
	})
}

// RemoveLogoAPI clears the stored logo
func RemoveLogoAPI(c *fiber.Ctx, sess *session.Session) error {
	sess.SetLogo(nil)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logo removed successfully",
	})
}

// GetCategoriesAPI returns all fee categories, stock and custom
func GetCategoriesAPI(c *fiber.Ctx, sess *session.Session) error {
	categories := sess.Categories()
	return c.JSON(fiber.Map{
		"success": true,
		"data":    categories,
		"count":   len(categories),
	})
}

type categoryInput struct {
	Name          string          `json:"name" validate:"required,max=60"`
	DefaultAmount decimal.Decimal `json:"defaultAmount"`
}

// CreateCategoryAPI adds a custom fee category
func CreateCategoryAPI(c *fiber.Ctx, sess *session.Session) error {
	var in categoryInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(in); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Validation failed: "+err.Error())
	}

	cat := sess.AddCategory(strings.TrimSpace(in.Name), in.DefaultAmount)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    cat,
		"message": "Category created successfully",
	})
}

// UpdateCategoryAPI renames a category or changes its default amount
func UpdateCategoryAPI(c *fiber.Ctx, sess *session.Session) error {
	var in categoryInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(in); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Validation failed: "+err.Error())
	}

	cat, ok := sess.UpdateCategory(c.Params("id"), strings.TrimSpace(in.Name), in.DefaultAmount)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Category not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    cat,
		"message": "Category updated successfully",
	})
}

// ToggleCategoryAPI enables or disables a category on the receipt form
func ToggleCategoryAPI(c *fiber.Ctx, sess *session.Session) error {
	cat, ok := sess.ToggleCategory(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Category not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    cat,
		"message": "Category toggled successfully",
	})
}
