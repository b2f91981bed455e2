package entity

// BookingFilter is a domain-level filter for the admin booking listing.
// Used by repository layer to avoid coupling with delivery DTOs.
type BookingFilter struct {
	Status  string // Filter by exact status value
	Tanggal string // Format: YYYY-MM-DD
	Search  string // Matches nama_pasien, telepon or kode_booking (ILIKE)
	Page    int
	Limit   int
}
