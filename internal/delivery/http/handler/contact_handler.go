package handler

import (
	"encoding/json"
	"net/http"

	"healthcare-portal/internal/delivery/dto"
	"healthcare-portal/internal/usecase"
	"healthcare-portal/pkg/response"
	"healthcare-portal/pkg/validator"
)

type ContactHandler struct {
	contactUsecase usecase.ContactUsecase
	validator      *validator.CustomValidator
}

func NewContactHandler(contactUsecase usecase.ContactUsecase, validator *validator.CustomValidator) *ContactHandler {
	return &ContactHandler{
		contactUsecase: contactUsecase,
		validator:      validator,
	}
}

// SendMessage handles the public contact form
// @Summary Send contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.ContactRequest true "Contact message"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /contact [post]
func (h *ContactHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req dto.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	ack, err := h.contactUsecase.SendMessage(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrIncompleteMessage:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to send message")
		}
		return
	}

	response.Success(w, http.StatusOK, "Message sent successfully", ack)
}
