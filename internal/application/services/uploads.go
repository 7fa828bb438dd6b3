package services

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"lead-service/internal/application/command"
	"lead-service/internal/application/interfaces"
	"lead-service/internal/domain"
)

var allowedImageExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".heic": true,
	".heif": true,
}

var allowedDocumentExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".odt":  true,
	".rtf":  true,
	".txt":  true,
	".jpeg": true,
	".jpg":  true,
	".png":  true,
}

const unsupportedDocumentMessage = "Unsupported file extension. Allowed extensions are: pdf, doc, docx, odt, rtf, txt, jpeg, jpg, png."

// checkExtension reports a field error when the upload's extension is not in allowed.
func checkExtension(field string, upload *command.FileUpload, allowed map[string]bool, message string) *domain.FieldError {
	if upload == nil {
		return nil
	}
	if allowed[strings.ToLower(filepath.Ext(upload.Filename))] {
		return nil
	}
	return &domain.FieldError{Field: field, Message: message}
}

// referenceId parses a submitted primary key; ok is false for anything but a positive integer.
func referenceId(ref command.Reference) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(ref.String()), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// discardUpload removes a file whose row was never written.
func discardUpload(ctx context.Context, media interfaces.MediaStorage, name string) {
	if name == "" {
		return
	}
	if err := media.Delete(context.WithoutCancel(ctx), name); err != nil {
		log.WithError(err).WithField("file", name).Error("failed to remove orphaned upload")
	}
}
