package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"timevalue/src/api/controllers"
	"timevalue/src/schemas"
	"timevalue/src/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth"
)

type Handler struct {
	Controller *controllers.Controller
}

func NewHandler(controller *controllers.Controller) *Handler {
	return &Handler{Controller: controller}
}

func Healthcheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// respond wraps every payload in the uniform envelope. The envelope code
// mirrors the HTTP status so clients can branch on either.
func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	envelope := schemas.Response{Code: status, Message: "success", Data: data}
	res, err := json.Marshal(envelope)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

// respondFile streams a generated export with a download filename.
func (h *Handler) respondFile(w http.ResponseWriter, content []byte, contentType, filename string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+strconv.Quote(filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}

func (h *Handler) HandleErrors(w http.ResponseWriter, err error, defaultStatuses ...int) {
	status := http.StatusInternalServerError
	if len(defaultStatuses) > 0 {
		status = defaultStatuses[0]
	}

	var httpErr *utils.HTTPError
	switch {
	case errors.As(err, &httpErr):
		status = httpErr.Code
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	}

	envelope := schemas.Response{Code: status, Message: err.Error()}
	res, marshalErr := json.Marshal(envelope)
	if marshalErr != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

// userID pulls the authenticated user's id from the verified JWT claims.
// Numeric JSON claims decode as float64.
func (h *Handler) userID(r *http.Request) (int, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return 0, utils.Unauthorized("invalid token")
	}
	raw, ok := claims["user_id"].(float64)
	if !ok {
		return 0, utils.Unauthorized("token carries no user id")
	}
	return int(raw), nil
}

func urlParamInt(r *http.Request, name string) (int, error) {
	value, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, utils.BadRequest("invalid " + name + " URL parameter")
	}
	return value, nil
}

func queryInt(r *http.Request, name string) int {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return value
}

func decodeBody(r *http.Request, target interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return utils.BadRequest("invalid request body")
	}
	return nil
}
