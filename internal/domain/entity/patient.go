package entity

import "time"

// Patient mirrors the pasien table of the external SIMRS database. The
// column set follows the hospital system's schema; most fields are filled
// with placeholder defaults by the registration bridge.
type Patient struct {
	NoRkmMedis       string    // sequential 6-digit medical record number
	NmPasien         string    // stored upper-cased
	NoKTP            string    // NIK, unique per patient
	JK               string    // L / P
	TmpLahir         string
	TglLahir         time.Time
	NmIbu            string
	Alamat           string
	GolDarah         string
	Pekerjaan        string
	SttsNikah        string
	Agama            string
	TglDaftar        time.Time
	NoTlp            string
	Umur             string // display string, e.g. "34 Th"
	Pnd              string // education
	Keluarga         string
	NamaKeluarga     string
	KdPj             string // payer code
	NoPeserta        string
	KdKel            int
	KdKec            int
	KdKab            int
	KdProp           int
	PekerjaanPj      string
	AlamatPj         string
	KelurahanPj      string
	KecamatanPj      string
	KabupatenPj      string
	PropinsiPj       string
	PerusahaanPasien string
	SukuBangsa       int
	BahasaPasien     int
	CacatFisik       int
	Email            string
	Nip              string
}

// SIMRSDoctor is a reference row from the SIMRS dokter table.
type SIMRSDoctor struct {
	KdDokter  string `json:"kd_dokter"`
	NmDokter  string `json:"nm_dokter"`
	Spesialis string `json:"spesialis"`
}

// SIMRSClinic is a reference row from the SIMRS poliklinik table.
type SIMRSClinic struct {
	KdPoli string `json:"kd_poli"`
	NmPoli string `json:"nm_poli"`
}
