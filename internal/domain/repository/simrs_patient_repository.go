package repository

import (
	"context"

	"go-clinic-management/internal/domain/entity"
)

// SIMRSPatientRepository accesses the external hospital information system
// database. Unlike the primary-store repositories it carries its own
// connection pool, so methods take a context instead of a db handle.
type SIMRSPatientRepository interface {
	// FindByNIK returns the patient registered under the given NIK, or nil.
	FindByNIK(ctx context.Context, nikValue string) (*entity.Patient, error)
	// MaxMedicalRecordNumber returns the numeric value of the highest
	// no_rkm_medis currently assigned, 0 when the table is empty.
	MaxMedicalRecordNumber(ctx context.Context) (int, error)
	Create(ctx context.Context, patient *entity.Patient) error
	ListDoctors(ctx context.Context) ([]entity.SIMRSDoctor, error)
	ListClinics(ctx context.Context) ([]entity.SIMRSClinic, error)
}
