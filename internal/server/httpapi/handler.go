package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/devauth/internal/common"
	"github.com/dmitrijs2005/devauth/internal/server/auth"
	"github.com/dmitrijs2005/devauth/internal/server/models"
	"github.com/dmitrijs2005/devauth/internal/server/services"
)

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

func (s *HTTPServer) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeRequest(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgBadBody)
		return
	}

	user, err := s.users.Register(r.Context(), req)
	if err != nil {
		var fe common.FieldErrors
		if (errors.Is(err, common.ErrorValidation) || errors.Is(err, common.ErrorAlreadyExists)) && errors.As(err, &fe) {
			writeJSON(w, http.StatusBadRequest, fe)
			return
		}
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (s *HTTPServer) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeRequest(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgBadBody)
		return
	}

	token, err := s.users.Login(r.Context(), req)
	if err != nil {
		var fe common.FieldErrors
		switch {
		case errors.Is(err, common.ErrorValidation) && errors.As(err, &fe):
			writeJSON(w, http.StatusBadRequest, fe)
		case errors.Is(err, common.ErrorNotFound):
			writeMessage(w, http.StatusBadRequest, services.MsgUserNotFound)
		case errors.Is(err, common.ErrorIncorrectPassword):
			writeMessage(w, http.StatusBadRequest, services.MsgPasswordIncorrect)
		default:
			s.internalError(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Success: true, Token: token})
}

func (s *HTTPServer) current(w http.ResponseWriter, r *http.Request) {
	id := auth.IdentityFromContext(r.Context())
	if id == nil {
		writeMessage(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, id)
}

// internalError logs err and answers with a generic body.
func (s *HTTPServer) internalError(w http.ResponseWriter, r *http.Request, err error) {
	if !errors.Is(err, common.ErrorInternal) {
		s.logger.Error(r.Context(), "unexpected handler error", "error", err, "path", r.URL.Path)
	}
	writeMessage(w, http.StatusInternalServerError, msgInternal)
}
