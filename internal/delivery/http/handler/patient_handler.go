package handler

import (
	"encoding/json"
	"net/http"

	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/usecase"
	"go-clinic-management/pkg/response"
	"go-clinic-management/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PatientHandler struct {
	registrationUsecase usecase.PatientRegistrationUsecase
	validator           *validator.CustomValidator
}

func NewPatientHandler(registrationUsecase usecase.PatientRegistrationUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		registrationUsecase: registrationUsecase,
		validator:           validator,
	}
}

// CheckPatient handles the hospital-system registration status check
// @Summary Check patient registration
// @Description Check whether the booking's patient is registered in the hospital system
// @Tags Patient
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/booking/{id}/pasien [get]
func (h *PatientHandler) CheckPatient(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	status, err := h.registrationUsecase.CheckPatient(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrBookingHasNoNIK:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to check patient registration")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient status retrieved successfully", status)
}

// RegisterPatient handles registering the booking's patient in the hospital system
// @Summary Register patient
// @Description Create the hospital patient record from the booking data
// @Tags Patient
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.RegisterPatientRequest true "Register Patient Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/booking/{id}/pasien [post]
func (h *PatientHandler) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	var req dto.RegisterPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.registrationUsecase.RegisterPatient(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrBookingHasNoNIK, usecase.ErrInvalidNIK, usecase.ErrInvalidBookingDate:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to register patient")
		}
		return
	}

	statusCode := http.StatusCreated
	if result.SudahTerdaftar {
		statusCode = http.StatusOK
	}
	response.Success(w, statusCode, "Patient registered successfully", result)
}

// ListSIMRSDoctors handles the hospital doctor reference list
// @Summary List hospital doctors
// @Tags Patient
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/simrs/dokter [get]
func (h *PatientHandler) ListSIMRSDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.registrationUsecase.ListSIMRSDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list hospital doctors")
		return
	}

	response.Success(w, http.StatusOK, "Hospital doctors retrieved successfully", doctors)
}

// ListSIMRSClinics handles the hospital clinic reference list
// @Summary List hospital clinics
// @Tags Patient
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/simrs/poliklinik [get]
func (h *PatientHandler) ListSIMRSClinics(w http.ResponseWriter, r *http.Request) {
	clinics, err := h.registrationUsecase.ListSIMRSClinics(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list hospital clinics")
		return
	}

	response.Success(w, http.StatusOK, "Hospital clinics retrieved successfully", clinics)
}
