package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"crm/dto"
	"crm/models"
	"crm/response"
	"crm/services"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type SalaryController struct {
	Service *services.SalaryService
}

func NewSalaryController(service *services.SalaryService) SalaryController {
	return SalaryController{Service: service}
}

// GenerateSlip godoc
// @Summary Generate a monthly salary slip
// @Tags salary
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.GenerateSlipRequest true "Staff, month and LPA"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /salary-slips [post]
func (s SalaryController) GenerateSlip(c *gin.Context) {
	var req dto.GenerateSlipRequest
	if !bindJSON(c, &req) {
		return
	}

	slip, err := s.Service.Generate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Salary slip generated successfully", dto.NewSlipResponse(slip, false))
}

// UpdateSlipStatus godoc
// @Summary Approve or reject a salary slip
// @Tags salary
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param slipId path int true "Slip id"
// @Param body body dto.SlipStatusRequest true "approved or rejected"
// @Success 200 {object} response.Response
// @Router /salary-slips/status/{slipId} [put]
func (s SalaryController) UpdateSlipStatus(c *gin.Context) {
	id, ok := paramID(c, "slipId")
	if !ok {
		return
	}
	var req dto.SlipStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	slip, err := s.Service.SetStatus(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, fmt.Sprintf("Slip %s successfully", slip.Status), dto.NewSlipResponse(slip, false))
}

// GetMySlips godoc
// @Summary Caller's salary slips
// @Tags salary
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /salary-slips/my [get]
func (s SalaryController) GetMySlips(c *gin.Context) {
	id, _, ok := caller(c)
	if !ok {
		return
	}

	slips, err := s.Service.Mine(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Salary slips", slipResponses(slips, false))
}

// GetAllSlips godoc
// @Summary Every salary slip with its staff member
// @Tags salary
// @Security BearerAuth
// @Produce json
// @Param month query string false "YYYY-MM"
// @Success 200 {object} response.Response
// @Router /salary-slips/all [get]
func (s SalaryController) GetAllSlips(c *gin.Context) {
	slips, err := s.Service.All(c.Request.Context(), c.Query("month"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Salary slips", slipResponses(slips, true))
}

// ExportSlips godoc
// @Summary Salary slips as an Excel workbook
// @Tags salary
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param month query string false "YYYY-MM"
// @Success 200 {file} file
// @Router /salary-slips/export [get]
func (s SalaryController) ExportSlips(c *gin.Context) {
	month := c.Query("month")

	var buf bytes.Buffer
	if err := s.Service.Export(c.Request.Context(), month, &buf); err != nil {
		response.Error(c, err)
		return
	}

	name := "salary-slips-all.xlsx"
	if month != "" {
		name = "salary-slips-" + month + ".xlsx"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func slipResponses(slips []models.SalarySlip, withStaff bool) []dto.SlipResponse {
	out := make([]dto.SlipResponse, 0, len(slips))
	for _, s := range slips {
		out = append(out, dto.NewSlipResponse(s, withStaff))
	}
	return out
}
