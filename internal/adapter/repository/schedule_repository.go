package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/padocadigital/gestao-padaria/internal/domain/schedule"
)

var ErrShiftNotFound = errors.New("turno não encontrado")

// ScheduleRepository implementa a interface schedule.Repository
type ScheduleRepository struct {
	db *pgxpool.Pool
}

// NewScheduleRepository cria uma nova instância de ScheduleRepository
func NewScheduleRepository(db *pgxpool.Pool) schedule.Repository {
	return &ScheduleRepository{db: db}
}

// Create implementa schedule.Repository.Create
func (r *ScheduleRepository) Create(ctx context.Context, s *schedule.Shift) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO schedule_shifts (id, employee, role, shift_date, start_time, end_time, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		s.ID, s.Employee, s.Role, s.ShiftDate, s.StartTime, s.EndTime, s.Notes, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar turno: %w", err)
	}
	return nil
}

// FindByID implementa schedule.Repository.FindByID
func (r *ScheduleRepository) FindByID(ctx context.Context, id string) (*schedule.Shift, error) {
	var s schedule.Shift
	err := r.db.QueryRow(ctx,
		`SELECT id, employee, role, shift_date, start_time, end_time, notes, created_at, updated_at
		 FROM schedule_shifts WHERE id = $1`,
		id).Scan(&s.ID, &s.Employee, &s.Role, &s.ShiftDate, &s.StartTime, &s.EndTime, &s.Notes, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrShiftNotFound
		}
		return nil, fmt.Errorf("erro ao buscar turno: %w", err)
	}
	return &s, nil
}

// FindByDateRange implementa schedule.Repository.FindByDateRange
func (r *ScheduleRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]*schedule.Shift, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, employee, role, shift_date, start_time, end_time, notes, created_at, updated_at
		 FROM schedule_shifts WHERE shift_date >= $1 AND shift_date <= $2
		 ORDER BY shift_date, start_time`,
		start, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar turnos: %w", err)
	}
	defer rows.Close()

	var shifts []*schedule.Shift
	for rows.Next() {
		var s schedule.Shift
		if err := rows.Scan(&s.ID, &s.Employee, &s.Role, &s.ShiftDate, &s.StartTime, &s.EndTime, &s.Notes, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler turno: %w", err)
		}
		shifts = append(shifts, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer turnos: %w", err)
	}
	return shifts, nil
}

// Update implementa schedule.Repository.Update
func (r *ScheduleRepository) Update(ctx context.Context, s *schedule.Shift) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE schedule_shifts SET employee = $2, role = $3, shift_date = $4, start_time = $5, end_time = $6, notes = $7, updated_at = $8
		 WHERE id = $1`,
		s.ID, s.Employee, s.Role, s.ShiftDate, s.StartTime, s.EndTime, s.Notes, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao atualizar turno: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrShiftNotFound
	}
	return nil
}

// Delete implementa schedule.Repository.Delete
func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM schedule_shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover turno: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrShiftNotFound
	}
	return nil
}
