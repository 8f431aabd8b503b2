package middleware

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Dosada05/placement-system/models"
	"github.com/golang-jwt/jwt/v4"
)

const (
	jwtClaimUserID = "user_id"
	jwtClaimRole   = "role"
)

type Resource string

const (
	ResourcePlacementSettings Resource = "placement-settings"
	ResourcePlacementMatches  Resource = "placement-matches"
)

type Action string

const (
	ActionRead  Action = "read"
	ActionWrite Action = "write"
)

// GetCurrentUser достаёт пользователя из claims, положенных Authenticate.
func GetCurrentUser(ctx context.Context) (models.CurrentUser, error) {
	claims, ok := ctx.Value(userContextKey).(jwt.MapClaims)
	if !ok {
		return models.CurrentUser{}, errors.New("user claims not found in context or invalid type")
	}

	id, err := userIDFromClaims(claims)
	if err != nil {
		return models.CurrentUser{}, err
	}

	roleStr, ok := claims[jwtClaimRole].(string)
	if !ok {
		return models.CurrentUser{}, fmt.Errorf("missing or invalid '%s' claim in token", jwtClaimRole)
	}
	role := models.UserRole(roleStr)
	switch role {
	case models.RoleAdmin, models.RoleOrganizer, models.RolePlayer:
	default:
		return models.CurrentUser{}, fmt.Errorf("invalid role value in claim: %q", roleStr)
	}

	return models.CurrentUser{ID: id, Role: role}, nil
}

func userIDFromClaims(claims jwt.MapClaims) (int, error) {
	raw, ok := claims[jwtClaimUserID]
	if !ok {
		return 0, fmt.Errorf("missing '%s' claim in token", jwtClaimUserID)
	}

	var id int
	switch v := raw.(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("'%s' claim is not an integer: %f", jwtClaimUserID, v)
		}
		id = int(v)
	case string:
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid '%s' claim: %w", jwtClaimUserID, err)
		}
		id = parsed
	default:
		return 0, fmt.Errorf("invalid type for '%s' claim: expected float64 or string, got %T", jwtClaimUserID, raw)
	}

	if id <= 0 {
		return 0, fmt.Errorf("invalid user ID value in '%s' claim: %d", jwtClaimUserID, id)
	}
	return id, nil
}

// HasPermission is the role check; ownership of a tournament is checked by
// the services.
func HasPermission(user models.CurrentUser, resource Resource, action Action) bool {
	if action == ActionRead {
		return true
	}
	switch resource {
	case ResourcePlacementSettings, ResourcePlacementMatches:
		return user.Role == models.RoleAdmin || user.Role == models.RoleOrganizer
	}
	return false
}
