package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/footballhub/cli/internal/api"
)

var validate = validator.New()

// checkForm validates a form struct before any request is made; failures
// aggregate into field errors rendered inline, and the request is never
// sent.
func checkForm(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fes := make([]api.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fes = append(fes, api.FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: fieldMessage(fe),
		})
	}
	return api.NewInvalidInputError(fes)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gte":
		return "must be >= " + fe.Param()
	case "lte":
		return "must be <= " + fe.Param()
	default:
		return "is invalid"
	}
}

// parseKeyIntPairs parses repeated "key=value" flags into a map, e.g.
// skills and ratings.
func parseKeyIntPairs(pairs []string, what string) (map[string]int, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]int, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			return nil, api.NewInvalidInputError([]api.FieldError{{Field: what, Message: fmt.Sprintf("%q must look like key=value", p)}})
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, api.NewInvalidInputError([]api.FieldError{{Field: what, Message: fmt.Sprintf("%q is not a number", v)}})
		}
		out[strings.TrimSpace(k)] = n
	}
	return out, nil
}

// splitList turns a comma-separated flag value into trimmed entries.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
