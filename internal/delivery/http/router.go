package http

import (
	"net/http"

	"healthcare-portal/internal/delivery/http/handler"
	"healthcare-portal/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	patientRecordHandler *handler.PatientRecordHandler
	doctorRecordHandler  *handler.DoctorRecordHandler
	contactHandler       *handler.ContactHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
	requestLogMiddleware *middleware.RequestLogMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientRecordHandler *handler.PatientRecordHandler,
	doctorRecordHandler *handler.DoctorRecordHandler,
	contactHandler *handler.ContactHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	requestLogMiddleware *middleware.RequestLogMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		patientRecordHandler: patientRecordHandler,
		doctorRecordHandler:  doctorRecordHandler,
		contactHandler:       contactHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
		requestLogMiddleware: requestLogMiddleware,
	}
}

// Setup registers every route and returns the root handler. CORS and request
// logging wrap the whole router so they also see requests no route matches,
// such as OPTIONS preflights.
func (r *Router) Setup() http.Handler {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/signup", r.authHandler.Signup).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Contact form (public)
	api.HandleFunc("/contact", r.contactHandler.SendMessage).Methods(http.MethodPost)

	// Patient routes (protected - patient only)
	patient := api.PathPrefix("/patient").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)
	patient.HandleFunc("/records", r.patientRecordHandler.SubmitRecord).Methods(http.MethodPost)
	patient.HandleFunc("/records", r.patientRecordHandler.GetMyRecords).Methods(http.MethodGet)

	// Doctor routes (protected - doctor only)
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/records", r.doctorRecordHandler.GetRecords).Methods(http.MethodGet)
	doctor.HandleFunc("/records/{id}/prescription", r.doctorRecordHandler.RespondToRecord).Methods(http.MethodPut)

	return r.requestLogMiddleware.Handle(r.corsMiddleware.Handle(r.router))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
