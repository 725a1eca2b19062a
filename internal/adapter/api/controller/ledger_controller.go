package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/padocadigital/gestao-padaria/internal/adapter/api/dto"
	"github.com/padocadigital/gestao-padaria/internal/adapter/repository"
	"github.com/padocadigital/gestao-padaria/internal/domain/audit"
	"github.com/padocadigital/gestao-padaria/internal/domain/ledger"
	"github.com/padocadigital/gestao-padaria/pkg/logger"
	"github.com/shopspring/decimal"
)

// LedgerController gerencia as requisições de lançamentos financeiros
type LedgerController struct {
	entries ledger.Repository
	audits  audit.Repository
	logger  logger.Logger
}

// NewLedgerController cria uma nova instância de LedgerController
func NewLedgerController(entries ledger.Repository, audits audit.Repository, log logger.Logger) *LedgerController {
	return &LedgerController{
		entries: entries,
		audits:  audits,
		logger:  log,
	}
}

// Create cria um novo lançamento
// @Summary Criar lançamento
// @Description Cria um novo lançamento financeiro escopado pelo instituto
// @Tags entries
// @Accept json
// @Produce json
// @Param institute-id header string true "Instituto"
// @Param entry body dto.EntryRequest true "Dados do lançamento"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /entries [post]
func (c *LedgerController) Create(ctx *gin.Context) {
	var req dto.EntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	entryDate, amount, err := parseEntryFields(req)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "dados do lançamento inválidos", err.Error()))
		return
	}

	entry, err := ledger.NewEntry(
		ctx.GetString("user_id"),
		ctx.GetString("institute_id"),
		entryDate,
		ledger.Period(req.Period),
		ledger.Kind(req.Kind),
		amount,
		req.Description,
	)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "erro ao criar lançamento", err.Error()))
		return
	}

	if err := c.entries.Create(ctx, entry); err != nil {
		c.logger.Error("erro ao criar lançamento no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar lançamento", err.Error()))
		return
	}

	c.appendAudit(ctx, "create-entry", entry.ID)
	ctx.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// List lista os lançamentos
// @Summary Listar lançamentos
// @Description Lista os lançamentos do instituto com filtros e paginação
// @Tags entries
// @Accept json
// @Produce json
// @Param institute-id header string true "Instituto"
// @Param period query string false "Período (daily|weekly|monthly)"
// @Param kind query string false "Tipo (entrada|saida)"
// @Param start_date query string false "Data inicial (YYYY-MM-DD)"
// @Param end_date query string false "Data final (YYYY-MM-DD)"
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.EntryListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /entries [get]
func (c *LedgerController) List(ctx *gin.Context) {
	filter, err := buildFilter(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "filtro inválido", err.Error()))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	entries, err := c.entries.List(ctx, filter, pagination.PageSize, pagination.Offset())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar lançamentos", err.Error()))
		return
	}

	totalCount, err := c.entries.Count(ctx, filter)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar lançamentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryListResponse(entries, totalCount, pagination))
}

// Get retorna um lançamento pelo ID
// @Summary Buscar lançamento
// @Description Retorna os dados de um lançamento pelo ID
// @Tags entries
// @Accept json
// @Produce json
// @Param id path string true "ID do lançamento"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /entries/{id} [get]
func (c *LedgerController) Get(ctx *gin.Context) {
	entry, err := c.entries.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "lançamento não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar lançamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// Update atualiza um lançamento
// @Summary Atualizar lançamento
// @Description Atualiza os dados de um lançamento existente
// @Tags entries
// @Accept json
// @Produce json
// @Param id path string true "ID do lançamento"
// @Param entry body dto.EntryRequest true "Dados do lançamento"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /entries/{id} [put]
func (c *LedgerController) Update(ctx *gin.Context) {
	var req dto.EntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	entry, err := c.entries.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "lançamento não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar lançamento", err.Error()))
		return
	}

	entryDate, amount, err := parseEntryFields(req)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "dados do lançamento inválidos", err.Error()))
		return
	}

	if err := entry.Update(entryDate, ledger.Period(req.Period), ledger.Kind(req.Kind), amount, req.Description); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "erro ao atualizar lançamento", err.Error()))
		return
	}

	if err := c.entries.Update(ctx, entry); err != nil {
		c.logger.Error("erro ao atualizar lançamento no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar lançamento", err.Error()))
		return
	}

	c.appendAudit(ctx, "update-entry", entry.ID)
	ctx.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// Delete remove um lançamento
// @Summary Remover lançamento
// @Description Remove um lançamento pelo ID
// @Tags entries
// @Accept json
// @Produce json
// @Param id path string true "ID do lançamento"
// @Success 204 "Sem conteúdo"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /entries/{id} [delete]
func (c *LedgerController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := c.entries.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "lançamento não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover lançamento", err.Error()))
		return
	}

	c.appendAudit(ctx, "delete-entry", id)
	ctx.Status(http.StatusNoContent)
}

// appendAudit grava o registro de auditoria da mutação. Fire-and-forget:
// erros são descartados
func (c *LedgerController) appendAudit(ctx *gin.Context, action, entryID string) {
	record := audit.NewRecord("ledger-api", action, true, `{"entry_id":"`+entryID+`"}`)
	if err := c.audits.Append(ctx, record); err != nil {
		c.logger.Debug("falha ao gravar auditoria, ignorando", "error", err)
	}
}

func parseEntryFields(req dto.EntryRequest) (time.Time, decimal.Decimal, error) {
	entryDate, err := time.Parse("2006-01-02", req.EntryDate)
	if err != nil {
		return time.Time{}, decimal.Zero, err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return time.Time{}, decimal.Zero, err
	}

	return entryDate, amount, nil
}

func buildFilter(ctx *gin.Context) (ledger.Filter, error) {
	filter := ledger.Filter{
		InstituteID: ctx.GetString("institute_id"),
		UserID:      ctx.Query("user_id"),
		Period:      ledger.Period(ctx.Query("period")),
		Kind:        ledger.Kind(ctx.Query("kind")),
	}

	if v := ctx.Query("start_date"); v != "" {
		start, err := time.Parse("2006-01-02", v)
		if err != nil {
			return ledger.Filter{}, err
		}
		filter.StartDate = start
	}
	if v := ctx.Query("end_date"); v != "" {
		end, err := time.Parse("2006-01-02", v)
		if err != nil {
			return ledger.Filter{}, err
		}
		filter.EndDate = end
	}

	return filter, nil
}
