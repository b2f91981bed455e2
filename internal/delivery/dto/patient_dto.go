package dto

// PatientStatusResponse answers whether the patient behind a booking already
// exists in the hospital information system.
type PatientStatusResponse struct {
	Terdaftar  bool   `json:"terdaftar"`
	NoRkmMedis string `json:"no_rkm_medis,omitempty"`
	NmPasien   string `json:"nm_pasien,omitempty"`
}

// RegisterPatientRequest carries optional overrides for fields that cannot be
// derived from the booking or the national identity number.
type RegisterPatientRequest struct {
	TglLahir    string `json:"tgl_lahir" validate:"omitempty"`
	TempatLahir string `json:"tempat_lahir" validate:"omitempty,max=100"`
	NamaIbu     string `json:"nama_ibu" validate:"omitempty,max=100"`
	Pekerjaan   string `json:"pekerjaan" validate:"omitempty,max=100"`
	JK          string `json:"jk" validate:"omitempty,oneof=L P"`
}

type PatientRegistrationResponse struct {
	NoRkmMedis     string `json:"no_rkm_medis"`
	SudahTerdaftar bool   `json:"sudah_terdaftar"`
}

type SIMRSDoctorResponse struct {
	KdDokter  string `json:"kd_dokter"`
	NmDokter  string `json:"nm_dokter"`
	Spesialis string `json:"spesialis"`
}

type SIMRSClinicResponse struct {
	KdPoli string `json:"kd_poli"`
	NmPoli string `json:"nm_poli"`
}
