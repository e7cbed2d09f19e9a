package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"placement-portal/internal/delivery/http/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// bindBody decodes the JSON body into out and runs its validate tags. Field
// errors are returned as {field: rule} data on a 400.
func bindBody(c fiber.Ctx, out any) error {
	if err := c.Bind().Body(out); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := validate.Struct(out); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
			return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", fields, err)
		}
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	return nil
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, fmt.Sprintf("%s must be an integer", key), nil, err)
	}
	return v, nil
}

func parseQueryBool(c fiber.Ctx, key string, defaultVal bool) (bool, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, middleware.NewAppError(fiber.StatusBadRequest, fmt.Sprintf("%s must be a boolean", key), nil, err)
	}
	return v, nil
}

func parseListQuery(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
