package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/bizplatform/pmcore/internal/modules/serializer"
	"github.com/bizplatform/pmcore/internal/modules/service"
	"github.com/bizplatform/pmcore/internal/pkg/authz"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondErr maps service errors onto status codes.
func respondErr(c *gin.Context, err error) {
	var cfgErr *service.ConfigurationError
	var instErr *service.InstantiationError
	switch {
	case errors.As(err, &cfgErr):
		c.JSON(http.StatusBadRequest, serializer.ParamErr(cfgErr.Error(), err))
	case errors.As(err, &instErr):
		c.JSON(http.StatusUnprocessableEntity, serializer.Unprocessable(instErr.Error(), err))
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, serializer.Forbidden(""))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFound("", err))
	case errors.Is(err, service.ErrExportStorageDisabled):
		c.JSON(http.StatusServiceUnavailable, serializer.Unavailable(err.Error(), nil))
	default:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	}
}

func currentUser(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get("user")
	if !ok {
		return nil, false
	}
	u, ok := v.(*model.User)
	return u, ok && u != nil
}

// requireUser aborts with 401 when no user was attached by the auth middleware.
func requireUser(c *gin.Context) (*model.User, bool) {
	u, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return nil, false
	}
	return u, true
}

// requireCapability checks a capability that is not tied to one project.
func requireCapability(c *gin.Context, capability authz.Capability) (*model.User, bool) {
	u, ok := requireUser(c)
	if !ok {
		return nil, false
	}
	if !authz.Authorize(u, capability, nil) {
		c.JSON(http.StatusForbidden, serializer.Forbidden(""))
		return nil, false
	}
	return u, true
}

func currentProject(c *gin.Context) (*model.Project, bool) {
	project, ok := c.MustGet("project").(*model.Project)
	if !ok {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", errors.New("project not found")))
		return nil, false
	}
	return project, true
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(fmt.Sprintf("invalid %s", name), err))
		return uuid.Nil, false
	}
	return id, true
}

func parseDate(field, v string) (time.Time, error) {
	t, err := model.ParseDate(strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, &service.ConfigurationError{Field: field, Reason: "must be a date in YYYY-MM-DD form"}
	}
	return t, nil
}

func parseOptionalDate(field, v string) (*time.Time, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	t, err := parseDate(field, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseUUIDs(field string, raw []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, &service.ConfigurationError{Field: field, Reason: fmt.Sprintf("invalid id %q", s)}
		}
		out = append(out, id)
	}
	return out, nil
}
