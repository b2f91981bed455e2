package http

import (
	"net/http"

	"go-clinic-management/internal/delivery/http/handler"
	"go-clinic-management/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	doctorHandler       *handler.DoctorHandler
	scheduleHandler     *handler.ScheduleHandler
	bookingHandler      *handler.BookingHandler
	serviceHandler      *handler.ServiceHandler
	facilityHandler     *handler.FacilityHandler
	newsHandler         *handler.NewsHandler
	pageHandler         *handler.PageHandler
	patientHandler      *handler.PatientHandler
	uploadHandler       *handler.UploadHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	scheduleHandler *handler.ScheduleHandler,
	bookingHandler *handler.BookingHandler,
	serviceHandler *handler.ServiceHandler,
	facilityHandler *handler.FacilityHandler,
	newsHandler *handler.NewsHandler,
	pageHandler *handler.PageHandler,
	patientHandler *handler.PatientHandler,
	uploadHandler *handler.UploadHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		doctorHandler:       doctorHandler,
		scheduleHandler:     scheduleHandler,
		bookingHandler:      bookingHandler,
		serviceHandler:      serviceHandler,
		facilityHandler:     facilityHandler,
		newsHandler:         newsHandler,
		pageHandler:         pageHandler,
		patientHandler:      patientHandler,
		uploadHandler:       uploadHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public marketing-site routes
	api.HandleFunc("/dokter", r.doctorHandler.ListPublicDoctors).Methods(http.MethodGet)
	api.HandleFunc("/dokter/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/dokter/{id}/jadwal", r.scheduleHandler.ListDoctorSchedules).Methods(http.MethodGet)
	api.HandleFunc("/jadwal", r.scheduleHandler.ListPublicSchedules).Methods(http.MethodGet)
	api.HandleFunc("/layanan", r.serviceHandler.ListPublicServices).Methods(http.MethodGet)
	api.HandleFunc("/layanan/{slug}", r.serviceHandler.GetPublicService).Methods(http.MethodGet)
	api.HandleFunc("/fasilitas", r.facilityHandler.ListFacilities).Methods(http.MethodGet)
	api.HandleFunc("/berita", r.newsHandler.ListPublicNews).Methods(http.MethodGet)
	api.HandleFunc("/berita/{slug}", r.newsHandler.GetPublicNews).Methods(http.MethodGet)
	api.HandleFunc("/halaman/{slug}", r.pageHandler.GetPage).Methods(http.MethodGet)

	// Public booking, rate limited per client IP
	booking := api.PathPrefix("/booking").Subrouter()
	booking.Use(r.rateLimitMiddleware.Limit)
	booking.HandleFunc("", r.bookingHandler.CreateBooking).Methods(http.MethodPost)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Admin routes (protected)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)

	// Doctor management
	admin.HandleFunc("/dokter", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/dokter", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	admin.HandleFunc("/dokter/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	admin.HandleFunc("/dokter/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	admin.HandleFunc("/dokter/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	// Schedule management
	admin.HandleFunc("/jadwal", r.scheduleHandler.CreateSchedule).Methods(http.MethodPost)
	admin.HandleFunc("/jadwal", r.scheduleHandler.ListSchedules).Methods(http.MethodGet)
	admin.HandleFunc("/jadwal/{id}", r.scheduleHandler.UpdateSchedule).Methods(http.MethodPut)
	admin.HandleFunc("/jadwal/{id}", r.scheduleHandler.DeleteSchedule).Methods(http.MethodDelete)

	// Booking management
	admin.HandleFunc("/booking", r.bookingHandler.SearchBookings).Methods(http.MethodGet)
	admin.HandleFunc("/booking/{id}", r.bookingHandler.GetBooking).Methods(http.MethodGet)
	admin.HandleFunc("/booking/{id}", r.bookingHandler.UpdateBooking).Methods(http.MethodPut)

	// Hospital-system bridge
	admin.HandleFunc("/booking/{id}/pasien", r.patientHandler.CheckPatient).Methods(http.MethodGet)
	admin.HandleFunc("/booking/{id}/pasien", r.patientHandler.RegisterPatient).Methods(http.MethodPost)
	admin.HandleFunc("/simrs/dokter", r.patientHandler.ListSIMRSDoctors).Methods(http.MethodGet)
	admin.HandleFunc("/simrs/poliklinik", r.patientHandler.ListSIMRSClinics).Methods(http.MethodGet)

	// Service management
	admin.HandleFunc("/layanan", r.serviceHandler.CreateService).Methods(http.MethodPost)
	admin.HandleFunc("/layanan", r.serviceHandler.ListServices).Methods(http.MethodGet)
	admin.HandleFunc("/layanan/{id}", r.serviceHandler.UpdateService).Methods(http.MethodPut)
	admin.HandleFunc("/layanan/{id}", r.serviceHandler.DeleteService).Methods(http.MethodDelete)

	// Facility management
	admin.HandleFunc("/fasilitas", r.facilityHandler.CreateFacility).Methods(http.MethodPost)
	admin.HandleFunc("/fasilitas", r.facilityHandler.ListFacilities).Methods(http.MethodGet)
	admin.HandleFunc("/fasilitas/{id}", r.facilityHandler.UpdateFacility).Methods(http.MethodPut)
	admin.HandleFunc("/fasilitas/{id}", r.facilityHandler.DeleteFacility).Methods(http.MethodDelete)

	// News management
	admin.HandleFunc("/berita", r.newsHandler.CreateNews).Methods(http.MethodPost)
	admin.HandleFunc("/berita", r.newsHandler.ListNews).Methods(http.MethodGet)
	admin.HandleFunc("/berita/{id}", r.newsHandler.UpdateNews).Methods(http.MethodPut)
	admin.HandleFunc("/berita/{id}", r.newsHandler.DeleteNews).Methods(http.MethodDelete)

	// Page management
	admin.HandleFunc("/halaman", r.pageHandler.ListPages).Methods(http.MethodGet)
	admin.HandleFunc("/halaman/{slug}", r.pageHandler.UpsertPage).Methods(http.MethodPut)

	// Uploads
	admin.HandleFunc("/uploads", r.uploadHandler.Upload).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
