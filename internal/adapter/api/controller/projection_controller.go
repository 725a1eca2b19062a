package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/padocadigital/gestao-padaria/internal/adapter/api/dto"
	"github.com/padocadigital/gestao-padaria/internal/domain/projection"
)

// ProjectionController gerencia as requisições de projeção de vendas
type ProjectionController struct {
	service *projection.Service
}

// NewProjectionController cria uma nova instância de ProjectionController
func NewProjectionController(service *projection.Service) *ProjectionController {
	return &ProjectionController{service: service}
}

// Get calcula a projeção de vendas
// @Summary Projetar vendas
// @Description Calcula a média móvel dos últimos N fechamentos diários
// @Tags projections
// @Accept json
// @Produce json
// @Param days query int false "Janela em dias (padrão: 7)"
// @Success 200 {object} dto.ProjectionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /projections [get]
func (c *ProjectionController) Get(ctx *gin.Context) {
	days, err := strconv.Atoi(ctx.DefaultQuery("days", "7"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "parâmetro days inválido", err.Error()))
		return
	}

	forecast, err := c.service.MovingAverage(ctx.Request.Context(), days)
	if err != nil {
		if errors.Is(err, projection.ErrInvalidDays) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "parâmetro days inválido", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao calcular projeção", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProjectionResponse(forecast))
}
