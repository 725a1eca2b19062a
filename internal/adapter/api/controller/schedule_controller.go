package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/padocadigital/gestao-padaria/internal/adapter/api/dto"
	"github.com/padocadigital/gestao-padaria/internal/adapter/repository"
	"github.com/padocadigital/gestao-padaria/internal/domain/schedule"
	"github.com/padocadigital/gestao-padaria/pkg/logger"
)

// ScheduleController gerencia as requisições da escala da equipe
type ScheduleController struct {
	shifts schedule.Repository
	logger logger.Logger
}

// NewScheduleController cria uma nova instância de ScheduleController
func NewScheduleController(shifts schedule.Repository, log logger.Logger) *ScheduleController {
	return &ScheduleController{
		shifts: shifts,
		logger: log,
	}
}

// Create cria um novo turno
// @Summary Criar turno
// @Description Cria um novo turno na escala da equipe
// @Tags schedules
// @Accept json
// @Produce json
// @Param shift body dto.ShiftRequest true "Dados do turno"
// @Success 201 {object} dto.ShiftResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /schedules [post]
func (c *ScheduleController) Create(ctx *gin.Context) {
	var req dto.ShiftRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	shiftDate, err := time.Parse("2006-01-02", req.ShiftDate)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "data do turno inválida", "use o formato YYYY-MM-DD"))
		return
	}

	shift, err := schedule.NewShift(req.Employee, req.Role, shiftDate, req.StartTime, req.EndTime, req.Notes)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "erro ao criar turno", err.Error()))
		return
	}

	if err := c.shifts.Create(ctx, shift); err != nil {
		c.logger.Error("erro ao criar turno no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar turno", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToShiftResponse(shift))
}

// List lista os turnos de um intervalo de datas
// @Summary Listar turnos
// @Description Lista os turnos da escala dentro do intervalo informado
// @Tags schedules
// @Accept json
// @Produce json
// @Param start_date query string true "Data inicial (YYYY-MM-DD)"
// @Param end_date query string true "Data final (YYYY-MM-DD)"
// @Success 200 {array} dto.ShiftResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /schedules [get]
func (c *ScheduleController) List(ctx *gin.Context) {
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

	shifts, err := c.shifts.FindByDateRange(ctx, start, end)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar turnos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToShiftListResponse(shifts))
}

// Get retorna um turno pelo ID
// @Summary Buscar turno
// @Description Retorna os dados de um turno pelo ID
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "ID do turno"
// @Success 200 {object} dto.ShiftResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /schedules/{id} [get]
func (c *ScheduleController) Get(ctx *gin.Context) {
	shift, err := c.shifts.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrShiftNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "turno não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar turno", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// Update atualiza um turno
// @Summary Atualizar turno
// @Description Atualiza os dados de um turno existente
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "ID do turno"
// @Param shift body dto.ShiftRequest true "Dados do turno"
// @Success 200 {object} dto.ShiftResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /schedules/{id} [put]
func (c *ScheduleController) Update(ctx *gin.Context) {
	var req dto.ShiftRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	shift, err := c.shifts.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrShiftNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "turno não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar turno", err.Error()))
		return
	}

	shiftDate, err := time.Parse("2006-01-02", req.ShiftDate)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "data do turno inválida", "use o formato YYYY-MM-DD"))
		return
	}

	if err := shift.Update(req.Employee, req.Role, shiftDate, req.StartTime, req.EndTime, req.Notes); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "erro ao atualizar turno", err.Error()))
		return
	}

	if err := c.shifts.Update(ctx, shift); err != nil {
		c.logger.Error("erro ao atualizar turno no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar turno", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// Delete remove um turno
// @Summary Remover turno
// @Description Remove um turno da escala
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "ID do turno"
// @Success 204 "Sem conteúdo"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /schedules/{id} [delete]
func (c *ScheduleController) Delete(ctx *gin.Context) {
	if err := c.shifts.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrShiftNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "turno não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover turno", err.Error()))
		return
	}

	ctx.Status(http.StatusNoContent)
}
