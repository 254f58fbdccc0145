package handler

import (
	"encoding/json"
	"net/http"

	"healthcare-portal/internal/delivery/dto"
	"healthcare-portal/internal/usecase"
	"healthcare-portal/pkg/response"
	"healthcare-portal/pkg/validator"

	"github.com/gorilla/mux"
)

type DoctorRecordHandler struct {
	recordUsecase usecase.DoctorRecordUsecase
	validator     *validator.CustomValidator
}

func NewDoctorRecordHandler(recordUsecase usecase.DoctorRecordUsecase, validator *validator.CustomValidator) *DoctorRecordHandler {
	return &DoctorRecordHandler{
		recordUsecase: recordUsecase,
		validator:     validator,
	}
}

// GetRecords lists patient records for doctors
// @Summary Get health records
// @Tags Doctor
// @Security BearerAuth
// @Produce json
// @Param status query string false "pending (default), responded or all"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /doctor/records [get]
func (h *DoctorRecordHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	filter := dto.RecordFilter{Status: r.URL.Query().Get("status")}
	if err := h.validator.Validate(&filter); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	list, err := h.recordUsecase.GetRecords(r.Context(), &filter)
	if err != nil {
		writeRecordError(w, err, "Failed to get health records")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Health records retrieved successfully", list.Records, &response.Meta{
		Total:        list.Total,
		PendingCount: list.PendingCount,
	})
}

// RespondToRecord attaches a prescription to a record
// @Summary Respond to health record
// @Tags Doctor
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param request body dto.RespondRecordRequest true "Prescription"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctor/records/{id}/prescription [put]
func (h *DoctorRecordHandler) RespondToRecord(w http.ResponseWriter, r *http.Request) {
	recordID := mux.Vars(r)["id"]

	var req dto.RespondRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.RespondToRecord(r.Context(), recordID, &req)
	if err != nil {
		writeRecordError(w, err, "Failed to respond to health record")
		return
	}

	response.Success(w, http.StatusOK, "Prescription sent successfully", record)
}
