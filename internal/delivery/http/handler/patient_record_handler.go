package handler

import (
	"encoding/json"
	"net/http"

	"healthcare-portal/internal/delivery/dto"
	"healthcare-portal/internal/usecase"
	"healthcare-portal/pkg/response"
	"healthcare-portal/pkg/validator"
)

type PatientRecordHandler struct {
	recordUsecase usecase.PatientRecordUsecase
	validator     *validator.CustomValidator
}

func NewPatientRecordHandler(recordUsecase usecase.PatientRecordUsecase, validator *validator.CustomValidator) *PatientRecordHandler {
	return &PatientRecordHandler{
		recordUsecase: recordUsecase,
		validator:     validator,
	}
}

// SubmitRecord handles a new health concern from the logged-in patient
// @Summary Submit health record
// @Tags Patient
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateHealthRecordRequest true "Health concern"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /patient/records [post]
func (h *PatientRecordHandler) SubmitRecord(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateHealthRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.SubmitRecord(r.Context(), &req)
	if err != nil {
		writeRecordError(w, err, "Failed to submit health record")
		return
	}

	response.Success(w, http.StatusCreated, "Health record submitted successfully", record)
}

// GetMyRecords lists the logged-in patient's records
// @Summary Get my health records
// @Tags Patient
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /patient/records [get]
func (h *PatientRecordHandler) GetMyRecords(w http.ResponseWriter, r *http.Request) {
	list, err := h.recordUsecase.GetMyRecords(r.Context())
	if err != nil {
		writeRecordError(w, err, "Failed to get health records")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Health records retrieved successfully", list.Records, &response.Meta{
		Total:        list.Total,
		PendingCount: list.PendingCount,
	})
}

// writeRecordError maps record usecase errors to HTTP responses
func writeRecordError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrEmptyProblem, usecase.ErrEmptyPrescription, usecase.ErrInvalidStatusFilter:
		response.BadRequest(w, err.Error())
	case usecase.ErrRecordNotFound:
		response.NotFound(w, "Health record not found")
	case usecase.ErrUnauthenticated:
		response.Unauthorized(w, "")
	case usecase.ErrForbidden:
		response.Forbidden(w, "You don't have permission to access this resource")
	default:
		response.InternalServerError(w, fallback)
	}
}
