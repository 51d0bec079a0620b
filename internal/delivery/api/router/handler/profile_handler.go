package handler

import (
	"log/slog"
	"mime/multipart"
	"net/http"

	"recipebox/internal/delivery/api/middleware"
	"recipebox/internal/delivery/api/response"
	deliverycontext "recipebox/internal/delivery/context"
	"recipebox/internal/domain/entity"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/errors"
	"recipebox/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const photoField = "photo"

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Sessions  *middleware.SessionMiddleware
	Logger    *slog.Logger
}

// ProfileHandler serves the profile page.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	sessions  *middleware.SessionMiddleware
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		sessions:  params.Sessions,
		logger:    params.Logger,
	}
}

// UpdateProfileRequest is the multipart profile form. The photo part is read separately.
type UpdateProfileRequest struct {
	Name string `form:"name" validate:"max=256"`
}

// GetProfile loads the profile, creating the user record on first visit.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	view, err := h.profileUC.LoadProfile(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// UpdateProfile saves the display name and, when a file was selected, the new avatar.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	input := &usecase.UpdateProfileInput{Name: req.Name}

	fileHeader, err := c.FormFile(photoField)
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile photo")
	default:
		file, err := fileHeader.Open()
		if err != nil {
			return errors.Wrap(err, "open uploaded photo")
		}
		defer file.Close()

		input.Image = avatarUpload(fileHeader, file)
	}

	view, err := h.profileUC.UpdateProfile(c.Request().Context(), session, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// RemovePhoto replaces the avatar with a generated default.
func (h *ProfileHandler) RemovePhoto(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	view, err := h.profileUC.RemoveAvatar(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// DeleteAccount removes everything the account owns, then ends the session.
func (h *ProfileHandler) DeleteAccount(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var input usecase.DeleteAccountInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid deletion input")
	}

	output, err := h.profileUC.DeleteAccount(c.Request().Context(), session, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	h.sessions.Clear(c)

	return response.Success(c, http.StatusOK, output)
}

func avatarUpload(header *multipart.FileHeader, file multipart.File) *entity.AvatarUpload {
	return &entity.AvatarUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Content:     file,
	}
}
