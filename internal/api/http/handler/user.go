package handler

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dtroode/homestock-server/internal/api/http/response"
	"github.com/dtroode/homestock-server/internal/logger"
	"github.com/dtroode/homestock-server/internal/model"
	"github.com/dtroode/homestock-server/internal/service"
)

const (
	pictureField = "profilePicture"
	// multipartOverhead leaves room for the form fields around the picture.
	multipartOverhead = 1 << 20
)

// User serves the caller's profile and admin user management.
type User struct {
	service        UserService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewUser(service UserService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{service: service, contextManager: contextManager, logger: logger}
}

type roleRequest struct {
	Role model.Role `json:"role"`
}

func (h *User) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.contextManager.GetClaimsFromContext(r.Context())
	if !ok {
		handleError(w, h.logger, model.ErrUnauthorized)
		return
	}

	user, err := h.service.GetProfile(r.Context(), claims.UserID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, user)
}

// UpdateProfile accepts a multipart form with an optional "name" field and an
// optional "profilePicture" file.
func (h *User) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.contextManager.GetClaimsFromContext(r.Context())
	if !ok {
		handleError(w, h.logger, model.ErrUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, service.MaxPictureSize+multipartOverhead)
	if err := r.ParseMultipartForm(service.MaxPictureSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			handleError(w, h.logger, fmt.Errorf("%w: request is too large", model.ErrInvalidArgument))
			return
		}
		handleError(w, h.logger, fmt.Errorf("%w: invalid multipart form", model.ErrInvalidArgument))
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	update := model.ProfileUpdate{Name: r.FormValue("name")}

	picture, err := readPicture(r)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}
	update.Picture = picture

	user, err := h.service.UpdateProfile(r.Context(), claims.UserID, update)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, user)
}

func (h *User) GetProfilePicture(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	rc, err := h.service.GetProfilePicture(r.Context(), id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}
	defer rc.Close()

	br := bufio.NewReader(rc)
	head, _ := br.Peek(512)
	w.Header().Set("Content-Type", http.DetectContentType(head))
	w.Header().Set("Cache-Control", "private, max-age=300")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, br); err != nil {
		h.logger.Warn("User handler: failed to stream profile picture",
			"user_id", id,
			"error", err.Error())
	}
}

func (h *User) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		handleError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, users)
}

func (h *User) ChangeRole(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	var req roleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	user, err := h.service.ChangeRole(r.Context(), id, req.Role)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, user)
}

func (h *User) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	if err := h.service.DeleteUser(r.Context(), id); err != nil {
		handleError(w, h.logger, err)
		return
	}

	response.Message(w, http.StatusOK, "User deleted")
}

// readPicture returns nil when the form carries no picture.
func readPicture(r *http.Request) (*model.Picture, error) {
	file, header, err := r.FormFile(pictureField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: invalid %s", model.ErrInvalidArgument, pictureField)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, service.MaxPictureSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", pictureField, err)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || strings.HasPrefix(contentType, "application/octet-stream") {
		contentType = http.DetectContentType(data)
	}

	return &model.Picture{
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}
