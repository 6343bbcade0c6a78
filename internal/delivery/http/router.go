package http

import (
	"net/http"

	"lesson-booking-admin/internal/delivery/http/handler"
	"lesson-booking-admin/internal/delivery/http/middleware"
	"lesson-booking-admin/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	bookingHandler        *handler.BookingHandler
	lessonTypeHandler     *handler.LessonTypeHandler
	athleteHandler        *handler.AthleteHandler
	parentHandler         *handler.ParentHandler
	paymentSummaryHandler *handler.PaymentSummaryHandler
	auditLogHandler       *handler.AuditLogHandler
	authMiddleware        *middleware.AuthMiddleware
	corsMiddleware        *middleware.CORSMiddleware
	loggingMiddleware     *middleware.LoggingMiddleware
}

func NewRouter(
	bookingHandler *handler.BookingHandler,
	lessonTypeHandler *handler.LessonTypeHandler,
	athleteHandler *handler.AthleteHandler,
	parentHandler *handler.ParentHandler,
	paymentSummaryHandler *handler.PaymentSummaryHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		bookingHandler:        bookingHandler,
		lessonTypeHandler:     lessonTypeHandler,
		athleteHandler:        athleteHandler,
		parentHandler:         parentHandler,
		paymentSummaryHandler: paymentSummaryHandler,
		auditLogHandler:       auditLogHandler,
		authMiddleware:        authMiddleware,
		corsMiddleware:        corsMiddleware,
		loggingMiddleware:     loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Lesson type catalog
	admin.HandleFunc("/lesson-types", r.lessonTypeHandler.CreateLessonType).Methods(http.MethodPost)
	admin.HandleFunc("/lesson-types", r.lessonTypeHandler.GetAllLessonTypes).Methods(http.MethodGet)
	admin.HandleFunc("/lesson-types/{id:[0-9]+}", r.lessonTypeHandler.GetLessonType).Methods(http.MethodGet)
	admin.HandleFunc("/lesson-types/{id:[0-9]+}", r.lessonTypeHandler.UpdateLessonType).Methods(http.MethodPut)
	admin.HandleFunc("/lesson-types/{id:[0-9]+}", r.lessonTypeHandler.DeleteLessonType).Methods(http.MethodDelete)

	// Bookings
	admin.HandleFunc("/bookings", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	admin.HandleFunc("/bookings", r.bookingHandler.ListBookings).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id:[0-9]+}", r.bookingHandler.GetBooking).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id:[0-9]+}", r.bookingHandler.DeleteBooking).Methods(http.MethodDelete)
	admin.HandleFunc("/bookings/{id:[0-9]+}/payment-status", r.bookingHandler.UpdatePaymentStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{id:[0-9]+}/mark-paid", r.bookingHandler.MarkPaid).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{id:[0-9]+}/attendance", r.bookingHandler.UpdateAttendance).Methods(http.MethodPatch)
	admin.HandleFunc("/calendar", r.bookingHandler.GetCalendar).Methods(http.MethodGet)

	// Payments
	admin.HandleFunc("/payments/summary", r.paymentSummaryHandler.GetSummary).Methods(http.MethodGet)

	// Athletes
	admin.HandleFunc("/athletes", r.athleteHandler.CreateAthlete).Methods(http.MethodPost)
	admin.HandleFunc("/athletes", r.athleteHandler.GetAllAthletes).Methods(http.MethodGet)
	admin.HandleFunc("/athletes/{id:[0-9]+}", r.athleteHandler.GetAthlete).Methods(http.MethodGet)
	admin.HandleFunc("/athletes/{id:[0-9]+}", r.athleteHandler.UpdateAthlete).Methods(http.MethodPut)
	admin.HandleFunc("/athletes/{id:[0-9]+}", r.athleteHandler.DeleteAthlete).Methods(http.MethodDelete)
	admin.HandleFunc("/athletes/{id:[0-9]+}/bookings", r.bookingHandler.GetAthleteBookings).Methods(http.MethodGet)

	// Parents
	admin.HandleFunc("/parents", r.parentHandler.CreateParent).Methods(http.MethodPost)
	admin.HandleFunc("/parents", r.parentHandler.GetAllParents).Methods(http.MethodGet)
	admin.HandleFunc("/parents/{id:[0-9]+}", r.parentHandler.GetParent).Methods(http.MethodGet)
	admin.HandleFunc("/parents/{id:[0-9]+}", r.parentHandler.UpdateParent).Methods(http.MethodPut)
	admin.HandleFunc("/parents/{id:[0-9]+}", r.parentHandler.DeleteParent).Methods(http.MethodDelete)

	// Audit trail
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id:[0-9]+}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	// mux skips Use middleware for unmatched requests
	r.router.NotFoundHandler = r.unmatched(http.HandlerFunc(r.notFound))
	r.router.MethodNotAllowedHandler = r.unmatched(http.HandlerFunc(r.methodNotAllowed))

	return r.router
}

func (r *Router) unmatched(h http.Handler) http.Handler {
	return r.loggingMiddleware.Handle(r.corsMiddleware.Handle(h))
}

func (r *Router) notFound(w http.ResponseWriter, req *http.Request) {
	response.NotFound(w, "Route not found")
}

func (r *Router) methodNotAllowed(w http.ResponseWriter, req *http.Request) {
	response.Error(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
