package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"lead-service/internal/application/command"
	"lead-service/internal/domain"
)

// formUpload opens an optional multipart file. It returns a nil upload when the
// field is missing or the body is not multipart; the returned func closes the file.
func formUpload(c echo.Context, field string) (*command.FileUpload, func(), error) {
	noop := func() {}

	fileHeader, err := c.FormFile(field)
	switch {
	case err == nil:
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return nil, noop, nil
	default:
		return nil, noop, invalidBody()
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, noop, domain.ValidationErrors{{Field: field, Message: "The submitted file could not be read."}}
	}
	return &command.FileUpload{Filename: fileHeader.Filename, Content: file}, func() { file.Close() }, nil
}

func invalidBody() error {
	return domain.ValidationErrors{{Field: domain.NonFieldErrors, Message: "Invalid request body."}}
}
