package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/padocadigital/gestao-padaria/internal/adapter/api/dto"
	"github.com/padocadigital/gestao-padaria/internal/domain/settlement"
	"github.com/padocadigital/gestao-padaria/pkg/logger"
)

// SettlementRunner executa o fechamento diário para uma data
type SettlementRunner interface {
	Run(ctx context.Context, date time.Time) (*settlement.Summary, error)
}

// SettlementController gerencia as requisições do fechamento diário
type SettlementController struct {
	service SettlementRunner
	logger  logger.Logger
}

// NewSettlementController cria uma nova instância de SettlementController
func NewSettlementController(service SettlementRunner, log logger.Logger) *SettlementController {
	return &SettlementController{
		service: service,
		logger:  log,
	}
}

// Run executa o fechamento diário. Atende GET e POST: agendadores
// externos disparam o fechamento via GET
// @Summary Executar fechamento diário
// @Description Consolida as vendas da data, grava o fechamento e registra o lançamento derivado
// @Tags settlements
// @Accept json
// @Produce json
// @Param date query string false "Data do fechamento (YYYY-MM-DD, padrão: data UTC corrente)"
// @Success 200 {object} dto.SettlementResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /settlements/daily [get]
// @Router /settlements/daily [post]
func (c *SettlementController) Run(ctx *gin.Context) {
	date, err := dto.ParseDateParam(ctx.Query("date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "parâmetro de data inválido", err.Error()))
		return
	}

	summary, err := c.service.Run(ctx.Request.Context(), date)
	if err != nil {
		// A mensagem original do erro é repassada ao chamador
		status := http.StatusInternalServerError
		message := "erro ao executar fechamento diário"

		var runErr *settlement.RunError
		if errors.As(err, &runErr) {
			switch runErr.Step {
			case settlement.StepProducts, settlement.StepSales:
				status = http.StatusBadRequest
				message = "erro ao buscar dados do fechamento"
			case settlement.StepUpsert:
				message = "erro ao gravar fechamento diário"
			}
		}

		c.logger.Error("fechamento diário falhou", "date", date.Format("2006-01-02"), "error", err)
		ctx.JSON(status, dto.NewErrorResponse(status, message, err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettlementResponse(summary))
}
