package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/contractors/internal/app/models/dto"
	"github.com/yigit/contractors/internal/app/services"
	"github.com/yigit/contractors/internal/middleware"
	"github.com/yigit/contractors/internal/pkg/helpers"
)

// ContractorController handles contractor lookups
type ContractorController struct {
	contractorService services.ContractorService
}

// NewContractorController creates a new ContractorController
func NewContractorController(contractorService services.ContractorService) *ContractorController {
	return &ContractorController{
		contractorService: contractorService,
	}
}

// ListContractors returns a filtered, paginated list of contractors
// @Summary List contractors
// @Description Filters by keyword (name, position or department substring), exact department and exact status. Newest first.
// @Tags contractors
// @Produce json
// @Param keyword query string false "Substring of name, position or department"
// @Param department query string false "Exact department"
// @Param status query string false "Exact status"
// @Param page query int false "Page number (1-based)" default(1)
// @Param page_size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.ContractorListResponse} "Contractors retrieved successfully"
// @Failure 500 {object} dto.APIResponse "Invalid parameters or database failure"
// @Router /contractors [get]
func (c *ContractorController) ListContractors(ctx *gin.Context) {
	var query dto.ContractorListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	result, err := c.contractorService.ListContractors(ctx.Request.Context(), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}

// GetContractorDetail returns a contractor with every related record
// @Summary Get contractor detail
// @Description Basic info plus work experience, project experience, skills, training records, performance reviews and contracts.
// @Tags contractors
// @Produce json
// @Param id path int true "Contractor ID"
// @Success 200 {object} dto.APIResponse{data=dto.ContractorDetailResponse} "Contractor retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Contractor not found"
// @Failure 500 {object} dto.APIResponse "Invalid ID or database failure"
// @Router /contractors/{id} [get]
func (c *ContractorController) GetContractorDetail(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	detail, err := c.contractorService.GetContractorDetail(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(detail))
}

// ListDepartments returns the distinct departments
// @Summary List departments
// @Tags contractors
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string} "Departments retrieved successfully"
// @Failure 500 {object} dto.APIResponse "Database failure"
// @Router /departments [get]
func (c *ContractorController) ListDepartments(ctx *gin.Context) {
	departments, err := c.contractorService.ListDepartments(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(departments))
}
