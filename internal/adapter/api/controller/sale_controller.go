package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/padocadigital/gestao-padaria/internal/adapter/api/dto"
	"github.com/padocadigital/gestao-padaria/internal/domain/audit"
	"github.com/padocadigital/gestao-padaria/internal/domain/sale"
	"github.com/padocadigital/gestao-padaria/pkg/logger"
	"github.com/shopspring/decimal"
)

// SaleController gerencia a ingestão das vendas do PDV
type SaleController struct {
	sales      sale.Repository
	audits     audit.Repository
	settlement SettlementRunner
	logger     logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(sales sale.Repository, audits audit.Repository, settlement SettlementRunner, log logger.Logger) *SaleController {
	return &SaleController{
		sales:      sales,
		audits:     audits,
		settlement: settlement,
		logger:     log,
	}
}

// IngestBatch ingere o cartão diário do PDV
// @Summary Ingerir lote de vendas
// @Description Persiste as linhas de venda do cartão diário; com settle=true executa o fechamento da data do lote em seguida
// @Tags sales
// @Accept json
// @Produce json
// @Param settle query bool false "Executar fechamento após a ingestão"
// @Param batch body dto.SaleBatchRequest true "Lote de vendas"
// @Success 201 {object} dto.SaleBatchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/batch [post]
func (c *SaleController) IngestBatch(ctx *gin.Context) {
	var req dto.SaleBatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	sales := make([]*sale.Sale, 0, len(req.Sales))
	for _, item := range req.Sales {
		s, err := parseSaleRequest(item)
		if err != nil {
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "linha de venda inválida", err.Error()))
			return
		}
		sales = append(sales, s)
	}

	if err := c.sales.CreateBatch(ctx, sales); err != nil {
		c.logger.Error("erro ao ingerir lote de vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar vendas", err.Error()))
		return
	}

	c.appendAudit(ctx, "ingest-sales", len(sales))

	response := dto.SaleBatchResponse{Ingested: len(sales)}

	// O fechamento pós-ingestão usa a data da primeira linha do lote
	if ctx.Query("settle") == "true" {
		summary, err := c.settlement.Run(ctx.Request.Context(), sales[0].SaleDate)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "vendas ingeridas, mas o fechamento falhou", err.Error()))
			return
		}
		settlementResponse := dto.ToSettlementResponse(summary)
		response.Settlement = &settlementResponse
	}

	ctx.JSON(http.StatusCreated, response)
}

// Create registra uma única venda
// @Summary Registrar venda
// @Description Persiste uma única linha de venda do PDV
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.SaleRequest true "Linha de venda"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	s, err := parseSaleRequest(req)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "linha de venda inválida", err.Error()))
		return
	}

	if err := c.sales.Create(ctx, s); err != nil {
		c.logger.Error("erro ao registrar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar venda", err.Error()))
		return
	}

	c.appendAudit(ctx, "ingest-sale", 1)
	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(s))
}

// List lista as vendas
// @Summary Listar vendas
// @Description Lista as vendas registradas com paginação
// @Tags sales
// @Accept json
// @Produce json
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {array} dto.SaleResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	sales, err := c.sales.List(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales))
}

// appendAudit grava o registro de auditoria da ingestão. Fire-and-forget
func (c *SaleController) appendAudit(ctx *gin.Context, action string, count int) {
	record := audit.NewRecord("sales-api", action, true, `{"count":`+strconv.Itoa(count)+`}`)
	if err := c.audits.Append(ctx, record); err != nil {
		c.logger.Debug("falha ao gravar auditoria, ignorando", "error", err)
	}
}

func parseSaleRequest(req dto.SaleRequest) (*sale.Sale, error) {
	saleDate, err := time.Parse(time.RFC3339, req.SaleDate)
	if err != nil {
		return nil, err
	}

	// Repasse ausente conta como zero
	amount := decimal.Zero
	if req.TransferAmount != "" {
		amount, err = decimal.NewFromString(req.TransferAmount)
		if err != nil {
			return nil, err
		}
	}

	return sale.NewSale(req.ProductID, req.Quantity, amount, saleDate, req.Cancelled)
}
