package controllers

import (
	"RadiologyCenter/handlers"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func registeredRoutes(router *gin.Engine) map[string]bool {
	routes := make(map[string]bool)
	for _, r := range router.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	return routes
}

func TestAccountingRoutesRegistered(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupAccountingRoutes(router, handlers.NewAccountingHandler(nil))

	routes := registeredRoutes(router)
	for _, want := range []string{
		http.MethodGet + " /api/accounting/reports",
		http.MethodGet + " /api/accounting/payments",
		http.MethodGet + " /api/accounting/payments/all",
		http.MethodGet + " /api/accounting/payments/:id",
		http.MethodGet + " /api/accounting/payments/appointment/:id",
		http.MethodPost + " /api/accounting/payments",
		http.MethodPut + " /api/accounting/payments/:id",
		http.MethodDelete + " /api/accounting/payments/:id",
	} {
		if !routes[want] {
			t.Errorf("route %q not registered", want)
		}
	}
}

func TestAggregateRouteSlugs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupAPIRoutes(
		router.Group("/api"),
		handlers.NewPatientHandler(nil),
		handlers.NewUnitHandler(nil),
		handlers.NewExaminationHandler(nil),
		handlers.NewAppointmentHandler(nil),
		handlers.NewInsuranceProviderHandler(nil),
		handlers.NewContractHandler(nil),
		handlers.NewPatientInsuranceHandler(nil),
		handlers.NewPatientContractHandler(nil),
	)

	routes := registeredRoutes(router)
	for _, slug := range []string{
		"patient", "unit", "examination", "appointment",
		"insuranceprovider", "contract", "patientinsurance", "patientcontract",
	} {
		for _, want := range []string{
			http.MethodGet + " /api/" + slug,
			http.MethodGet + " /api/" + slug + "/paged",
			http.MethodGet + " /api/" + slug + "/:id",
			http.MethodPost + " /api/" + slug,
			http.MethodPut + " /api/" + slug + "/:id",
			http.MethodDelete + " /api/" + slug + "/:id",
		} {
			if !routes[want] {
				t.Errorf("route %q not registered", want)
			}
		}
	}
}
