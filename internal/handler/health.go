package handler

import "net/http"

// HandleHealthz reports that the process is serving.
func HandleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
