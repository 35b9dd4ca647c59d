package handlers

import (
	"RadiologyCenter/models"
	"RadiologyCenter/services"

	"github.com/gin-gonic/gin"
)

type ContractHandler struct {
	service *services.ContractService
}

func NewContractHandler(service *services.ContractService) *ContractHandler {
	return &ContractHandler{service: service}
}

func (h *ContractHandler) CreateContract(c *gin.Context) {
	var contract models.Contract
	if err := c.ShouldBindJSON(&contract); err != nil {
		c.JSON(400, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err := h.service.Create(c.Request.Context(), actor(c), &contract); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(201, contract)
}

func (h *ContractHandler) GetContractByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	contract, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, contract)
}

func (h *ContractHandler) GetAllContracts(c *gin.Context) {
	contracts, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, contracts)
}

func (h *ContractHandler) GetPagedContracts(c *gin.Context) {
	page := parsePage(c)
	contracts, total, err := h.service.GetPaged(c.Request.Context(), page)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, PagedResponse{TotalCount: total, Items: contracts})
}

func (h *ContractHandler) UpdateContract(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var contract models.Contract
	if err := c.ShouldBindJSON(&contract); err != nil {
		c.JSON(400, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err := h.service.Update(c.Request.Context(), actor(c), id, &contract); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, contract)
}

func (h *ContractHandler) DeleteContract(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), actor(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Contract deleted"})
}
