package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	h "eventattendance/internal/delivery/http/helpers"
)

// maxUploadBytes caps spreadsheet uploads.
const maxUploadBytes = 10 << 20

var allowedUploadExts = map[string]bool{".xlsx": true, ".xlsm": true, ".csv": true}

// readUpload returns the multipart "file" part. On failure it writes a 400 and returns ok=false.
func readUpload(w http.ResponseWriter, r *http.Request) (multipart.File, string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "file too large")
			return nil, "", false
		}
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "expected multipart form with a file field")
		return nil, "", false
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "file is required")
		return nil, "", false
	}
	if !allowedUploadExts[strings.ToLower(filepath.Ext(header.Filename))] {
		file.Close()
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "file must be .xlsx or .csv")
		return nil, "", false
	}
	return file, header.Filename, true
}
