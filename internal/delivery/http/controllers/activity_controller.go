package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"mergingtonactivities/internal/delivery/http/helpers"
	"mergingtonactivities/internal/domain"
)

type ActivityController struct {
	Logger  *slog.Logger
	Service domain.ActivityService
}

func NewActivityController(logger *slog.Logger, svc domain.ActivityService) *ActivityController {
	return &ActivityController{
		Logger:  logger,
		Service: svc,
	}
}

// RosterRequest carries the path and query parameters of signup and unregister.
type RosterRequest struct {
	ActivityName string `name:"activity_name" validate:"required,max=200"`
	Email        string `name:"email" validate:"required,email,max=254"`
}

func rosterRequestFrom(r *http.Request) RosterRequest {
	return RosterRequest{
		ActivityName: r.PathValue("activityName"),
		Email:        r.URL.Query().Get("email"),
	}
}

// ListActivities godoc
// @Summary List all activities
// @Description Returns every activity keyed by name, with description, schedule, capacity and current participants.
// @Tags activities
// @Produce json
// @Success 200 {object} map[string]domain.Activity
// @Failure 500 {object} helpers.ErrorResponse
// @Router /activities [get]
func (c *ActivityController) ListActivities(w http.ResponseWriter, r *http.Request) {
	roster, err := c.Service.ListActivities(r.Context())
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, roster)
}

// Signup godoc
// @Summary Sign a student up for an activity
// @Description Appends the email to the activity's participant list. Capacity is informational and not enforced.
// @Tags activities
// @Produce json
// @Param activityName path string true "Activity name"
// @Param email query string true "Student email"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.ErrorResponse "already signed up"
// @Failure 404 {object} helpers.ErrorResponse "Activity not found"
// @Failure 422 {object} helpers.ErrorResponse "invalid parameters"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /activities/{activityName}/signup [post]
func (c *ActivityController) Signup(w http.ResponseWriter, r *http.Request) {
	req := rosterRequestFrom(r)
	if !helpers.Validate(w, &req) {
		return
	}

	err := c.Service.Signup(r.Context(), req.ActivityName, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.DetailActivityNotFound)
		case errors.Is(err, domain.ErrAlreadySignedUp):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.DetailAlreadySignedUp)
		default:
			c.internalError(w, r, err)
		}
		return
	}
	helpers.WriteJSONMessage(w, fmt.Sprintf("%s signed up for %s", req.Email, req.ActivityName))
}

// Unregister godoc
// @Summary Unregister a student from an activity
// @Description Removes the email from the activity's participant list.
// @Tags activities
// @Produce json
// @Param activityName path string true "Activity name"
// @Param email query string true "Student email"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.ErrorResponse "not registered"
// @Failure 404 {object} helpers.ErrorResponse "Activity not found"
// @Failure 422 {object} helpers.ErrorResponse "invalid parameters"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /activities/{activityName}/unregister [post]
func (c *ActivityController) Unregister(w http.ResponseWriter, r *http.Request) {
	req := rosterRequestFrom(r)
	if !helpers.Validate(w, &req) {
		return
	}

	err := c.Service.Unregister(r.Context(), req.ActivityName, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.DetailActivityNotFound)
		case errors.Is(err, domain.ErrNotRegistered):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.DetailNotRegistered)
		default:
			c.internalError(w, r, err)
		}
		return
	}
	helpers.WriteJSONMessage(w, fmt.Sprintf("%s unregistered from %s", req.Email, req.ActivityName))
}

func (c *ActivityController) internalError(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.DetailInternalError)
}
