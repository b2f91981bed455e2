package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go-clinic-management/internal/domain/entity"
	domainRepo "go-clinic-management/internal/domain/repository"
)

type simrsPatientRepository struct {
	db *sql.DB
}

// NewSIMRSPatientRepository wraps the hospital system's MySQL pool.
func NewSIMRSPatientRepository(db *sql.DB) domainRepo.SIMRSPatientRepository {
	return &simrsPatientRepository{db: db}
}

func (r *simrsPatientRepository) FindByNIK(ctx context.Context, nikValue string) (*entity.Patient, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT no_rkm_medis, nm_pasien, no_ktp, jk, tgl_lahir, no_tlp, alamat, umur
		FROM pasien
		WHERE no_ktp = ?`, nikValue)

	var p entity.Patient
	err := row.Scan(&p.NoRkmMedis, &p.NmPasien, &p.NoKTP, &p.JK, &p.TglLahir, &p.NoTlp, &p.Alamat, &p.Umur)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query pasien by NIK: %w", err)
	}
	return &p, nil
}

// MaxMedicalRecordNumber reads the current maximum no_rkm_medis. The
// read-then-insert sequence around this call is not serialized; the unique
// index on no_ktp is the guard against double registration.
func (r *simrsPatientRepository) MaxMedicalRecordNumber(ctx context.Context) (int, error) {
	var max int
	err := r.db.QueryRowContext(ctx,
		`SELECT IFNULL(MAX(CAST(no_rkm_medis AS UNSIGNED)), 0) FROM pasien`).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("query max no_rkm_medis: %w", err)
	}
	return max, nil
}

func (r *simrsPatientRepository) Create(ctx context.Context, p *entity.Patient) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pasien (
			no_rkm_medis, nm_pasien, no_ktp, jk, tmp_lahir, tgl_lahir,
			nm_ibu, alamat, gol_darah, pekerjaan, stts_nikah, agama,
			tgl_daftar, no_tlp, umur, pnd, keluarga, namakeluarga,
			kd_pj, no_peserta, kd_kel, kd_kec, kd_kab, kd_prop,
			pekerjaanpj, alamatpj, kelurahanpj, kecamatanpj, kabupatenpj, propinsipj,
			perusahaan_pasien, suku_bangsa, bahasa_pasien, cacat_fisik, email, nip
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.NoRkmMedis, p.NmPasien, p.NoKTP, p.JK, p.TmpLahir, p.TglLahir.Format("2006-01-02"),
		p.NmIbu, p.Alamat, p.GolDarah, p.Pekerjaan, p.SttsNikah, p.Agama,
		p.TglDaftar.Format("2006-01-02"), p.NoTlp, p.Umur, p.Pnd, p.Keluarga, p.NamaKeluarga,
		p.KdPj, p.NoPeserta, p.KdKel, p.KdKec, p.KdKab, p.KdProp,
		p.PekerjaanPj, p.AlamatPj, p.KelurahanPj, p.KecamatanPj, p.KabupatenPj, p.PropinsiPj,
		p.PerusahaanPasien, p.SukuBangsa, p.BahasaPasien, p.CacatFisik, p.Email, p.Nip,
	)
	if err != nil {
		return fmt.Errorf("insert pasien: %w", err)
	}
	return nil
}

func (r *simrsPatientRepository) ListDoctors(ctx context.Context) ([]entity.SIMRSDoctor, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT d.kd_dokter, d.nm_dokter, IFNULL(s.nm_sps, '')
		FROM dokter d
		LEFT JOIN spesialis s ON s.kd_sps = d.kd_sps
		WHERE d.status = '1'
		ORDER BY d.nm_dokter`)
	if err != nil {
		return nil, fmt.Errorf("query dokter: %w", err)
	}
	defer rows.Close()

	var doctors []entity.SIMRSDoctor
	for rows.Next() {
		var d entity.SIMRSDoctor
		if err := rows.Scan(&d.KdDokter, &d.NmDokter, &d.Spesialis); err != nil {
			return nil, err
		}
		doctors = append(doctors, d)
	}
	return doctors, rows.Err()
}

func (r *simrsPatientRepository) ListClinics(ctx context.Context) ([]entity.SIMRSClinic, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT kd_poli, nm_poli
		FROM poliklinik
		WHERE status = '1'
		ORDER BY nm_poli`)
	if err != nil {
		return nil, fmt.Errorf("query poliklinik: %w", err)
	}
	defer rows.Close()

	var clinics []entity.SIMRSClinic
	for rows.Next() {
		var c entity.SIMRSClinic
		if err := rows.Scan(&c.KdPoli, &c.NmPoli); err != nil {
			return nil, err
		}
		clinics = append(clinics, c)
	}
	return clinics, rows.Err()
}
