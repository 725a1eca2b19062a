package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/padocadigital/gestao-padaria/internal/adapter/api/dto"
	"github.com/padocadigital/gestao-padaria/internal/adapter/repository"
	"github.com/padocadigital/gestao-padaria/internal/domain/balance"
)

// BalanceController gerencia as requisições de fechamentos diários
type BalanceController struct {
	balances balance.Repository
}

// NewBalanceController cria uma nova instância de BalanceController
func NewBalanceController(balances balance.Repository) *BalanceController {
	return &BalanceController{balances: balances}
}

// GetByDate retorna o fechamento de uma data
// @Summary Buscar fechamento
// @Description Retorna o fechamento consolidado de uma data
// @Tags balances
// @Accept json
// @Produce json
// @Param date path string true "Data (YYYY-MM-DD)"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /balances/{date} [get]
func (c *BalanceController) GetByDate(ctx *gin.Context) {
	date, err := time.Parse("2006-01-02", ctx.Param("date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "data inválida", "use o formato YYYY-MM-DD"))
		return
	}

	b, err := c.balances.FindByDate(ctx, date)
	if err != nil {
		if errors.Is(err, repository.ErrBalanceNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "fechamento não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar fechamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBalanceResponse(b))
}

// List lista os fechamentos de um intervalo de datas
// @Summary Listar fechamentos
// @Description Lista os fechamentos com data dentro do intervalo informado
// @Tags balances
// @Accept json
// @Produce json
// @Param start_date query string true "Data inicial (YYYY-MM-DD)"
// @Param end_date query string true "Data final (YYYY-MM-DD)"
// @Success 200 {array} dto.BalanceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /balances [get]
func (c *BalanceController) List(ctx *gin.Context) {
	start, err := time.Parse("2006-01-02", ctx.Query("start_date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "data inicial inválida", "use o formato YYYY-MM-DD"))
		return
	}

	end, err := time.Parse("2006-01-02", ctx.Query("end_date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "data final inválida", "use o formato YYYY-MM-DD"))
		return
	}

	balances, err := c.balances.FindByDateRange(ctx, start, end)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar fechamentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBalanceListResponse(balances))
}
