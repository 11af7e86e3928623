package handler

import "net/http"

type uploadURLResponse struct {
	SignedURL string `json:"signedUrl"`
}

// GetUploadURL handles GET /awsUrl?filename=&filetype=. The returned URL
// accepts a single PUT of the named file for a short time.
func (s *Server) GetUploadURL(w http.ResponseWriter, r *http.Request) {
	var filename, filetype string
	if err := queryParam(r, "filename", true, &filename); err != nil {
		writeError(w, r, err)
		return
	}
	if err := queryParam(r, "filetype", true, &filetype); err != nil {
		writeError(w, r, err)
		return
	}

	url, err := s.uploads.UploadURL(r.Context(), filename, filetype)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, uploadURLResponse{SignedURL: url})
}
