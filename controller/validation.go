package controller

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/itish2003/giggle/models"
)

// validationIssues turns a binding error for target into the list reported
// in a 422 body.
func validationIssues(err error, target any) []models.ValidationIssue {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		issues := make([]models.ValidationIssue, 0, len(verrs))
		for _, fe := range verrs {
			issues = append(issues, fieldIssue(fe, target))
		}
		return issues
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []models.ValidationIssue{{
			Loc:  []string{"body", typeErr.Field},
			Msg:  "Input should be a valid " + typeErr.Type.String(),
			Type: typeErr.Type.String() + "_type",
		}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return []models.ValidationIssue{{
			Loc:  []string{"body"},
			Msg:  "JSON decode error: " + err.Error(),
			Type: "json_invalid",
		}}
	}

	return []models.ValidationIssue{{
		Loc:  []string{"body"},
		Msg:  err.Error(),
		Type: "value_error",
	}}
}

func fieldIssue(fe validator.FieldError, target any) models.ValidationIssue {
	issue := models.ValidationIssue{
		Loc: []string{"body", jsonFieldName(target, fe.StructField())},
	}
	switch fe.Tag() {
	case "required":
		issue.Msg = "Field required"
		issue.Type = "missing"
	case "min":
		issue.Msg = "String should have at least " + fe.Param() + " character"
		if fe.Param() != "1" {
			issue.Msg += "s"
		}
		issue.Type = "string_too_short"
	default:
		issue.Msg = fe.Error()
		issue.Type = "value_error"
	}
	return issue
}

// jsonFieldName maps a struct field of target to its JSON name.
func jsonFieldName(target any, field string) string {
	t := reflect.TypeOf(target)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() == reflect.Struct {
		if sf, ok := t.FieldByName(field); ok {
			if name, _, _ := strings.Cut(sf.Tag.Get("json"), ","); name != "" && name != "-" {
				return name
			}
		}
	}
	return field
}
