package controllers

import (
	"RadiologyCenter/handlers"

	"github.com/gin-gonic/gin"
)

// SetupAPIRoutes registers the aggregate CRUD surface on an
// authenticated group.
func SetupAPIRoutes(
	api gin.IRoutes,
	patientHandler *handlers.PatientHandler,
	unitHandler *handlers.UnitHandler,
	examinationHandler *handlers.ExaminationHandler,
	appointmentHandler *handlers.AppointmentHandler,
	insuranceProviderHandler *handlers.InsuranceProviderHandler,
	contractHandler *handlers.ContractHandler,
	patientInsuranceHandler *handlers.PatientInsuranceHandler,
	patientContractHandler *handlers.PatientContractHandler,
) {
	api.GET("/patient", patientHandler.GetAllPatients)
	api.GET("/patient/paged", patientHandler.GetPagedPatients)
	api.GET("/patient/:id", patientHandler.GetPatientByID)
	api.POST("/patient", patientHandler.CreatePatient)
	api.PUT("/patient/:id", patientHandler.UpdatePatient)
	api.DELETE("/patient/:id", patientHandler.DeletePatient)

	api.GET("/unit", unitHandler.GetAllUnits)
	api.GET("/unit/paged", unitHandler.GetPagedUnits)
	api.GET("/unit/:id", unitHandler.GetUnitByID)
	api.POST("/unit", unitHandler.CreateUnit)
	api.PUT("/unit/:id", unitHandler.UpdateUnit)
	api.DELETE("/unit/:id", unitHandler.DeleteUnit)

	api.GET("/examination", examinationHandler.GetAllExaminations)
	api.GET("/examination/paged", examinationHandler.GetPagedExaminations)
	api.GET("/examination/:id", examinationHandler.GetExaminationByID)
	api.POST("/examination", examinationHandler.CreateExamination)
	api.PUT("/examination/:id", examinationHandler.UpdateExamination)
	api.DELETE("/examination/:id", examinationHandler.DeleteExamination)

	api.GET("/appointment", appointmentHandler.GetAllAppointments)
	api.GET("/appointment/paged", appointmentHandler.GetPagedAppointments)
	api.GET("/appointment/:id", appointmentHandler.GetAppointmentByID)
	api.POST("/appointment", appointmentHandler.CreateAppointment)
	api.PUT("/appointment/:id", appointmentHandler.UpdateAppointment)
	api.DELETE("/appointment/:id", appointmentHandler.DeleteAppointment)

	api.GET("/insuranceprovider", insuranceProviderHandler.GetAllInsuranceProviders)
	api.GET("/insuranceprovider/paged", insuranceProviderHandler.GetPagedInsuranceProviders)
	api.GET("/insuranceprovider/:id", insuranceProviderHandler.GetInsuranceProviderByID)
	api.POST("/insuranceprovider", insuranceProviderHandler.CreateInsuranceProvider)
	api.PUT("/insuranceprovider/:id", insuranceProviderHandler.UpdateInsuranceProvider)
	api.DELETE("/insuranceprovider/:id", insuranceProviderHandler.DeleteInsuranceProvider)

	api.GET("/contract", contractHandler.GetAllContracts)
	api.GET("/contract/paged", contractHandler.GetPagedContracts)
	api.GET("/contract/:id", contractHandler.GetContractByID)
	api.POST("/contract", contractHandler.CreateContract)
	api.PUT("/contract/:id", contractHandler.UpdateContract)
	api.DELETE("/contract/:id", contractHandler.DeleteContract)

	api.GET("/patientinsurance", patientInsuranceHandler.GetAllPatientInsurances)
	api.GET("/patientinsurance/paged", patientInsuranceHandler.GetPagedPatientInsurances)
	api.GET("/patientinsurance/:id", patientInsuranceHandler.GetPatientInsuranceByID)
	api.POST("/patientinsurance", patientInsuranceHandler.CreatePatientInsurance)
	api.PUT("/patientinsurance/:id", patientInsuranceHandler.UpdatePatientInsurance)
	api.DELETE("/patientinsurance/:id", patientInsuranceHandler.DeletePatientInsurance)

	api.GET("/patientcontract", patientContractHandler.GetAllPatientContracts)
	api.GET("/patientcontract/paged", patientContractHandler.GetPagedPatientContracts)
	api.GET("/patientcontract/:id", patientContractHandler.GetPatientContractByID)
	api.POST("/patientcontract", patientContractHandler.CreatePatientContract)
	api.PUT("/patientcontract/:id", patientContractHandler.UpdatePatientContract)
	api.DELETE("/patientcontract/:id", patientContractHandler.DeletePatientContract)
}
