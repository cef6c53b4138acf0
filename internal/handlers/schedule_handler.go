package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/matheusvf/barber-agenda/internal/domain/schedule"
	"github.com/matheusvf/barber-agenda/internal/httperr"
	"github.com/matheusvf/barber-agenda/internal/models"
	"github.com/matheusvf/barber-agenda/internal/timezone"
)

type ScheduleHandler struct {
	db *gorm.DB
}

func NewScheduleHandler(db *gorm.DB) *ScheduleHandler {
	return &ScheduleHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type BreakConfig struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type WorkingDayConfig struct {
	Weekday   int           `json:"weekday" binding:"min=0,max=6"`
	StartTime string        `json:"start_time" binding:"required"`
	EndTime   string        `json:"end_time" binding:"required"`
	Breaks    []BreakConfig `json:"breaks"`
}

type ScheduleUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

type ExceptionCreateRequest struct {
	Date      string        `json:"date" binding:"required"` // YYYY-MM-DD
	Kind      string        `json:"kind" binding:"required"` // day_off | custom_hours
	StartTime string        `json:"start_time"`
	EndTime   string        `json:"end_time"`
	Breaks    []BreakConfig `json:"breaks"`
}

// ======================================================
// WEEKLY SCHEDULE
// ======================================================

func (h *ScheduleHandler) Get(c *gin.Context) {
	barberID, ok := paramID(c)
	if !ok {
		return
	}

	var days []models.DaySchedule
	if err := h.db.
		Preload("Breaks").
		Where("barber_id = ?", barberID).
		Order("weekday ASC").
		Find(&days).Error; err != nil {

		httperr.Internal(c, "failed_to_get_schedule", "Erro ao buscar horários.")
		return
	}

	c.JSON(http.StatusOK, days)
}

// Update replaces the whole weekly schedule; days omitted from the request
// become closed weekdays.
func (h *ScheduleHandler) Update(c *gin.Context) {
	barberID, ok := paramID(c)
	if !ok {
		return
	}

	var req ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	for _, d := range req.Days {
		if code := validateWindow(d.StartTime, d.EndTime, d.Breaks); code != "" {
			httperr.BadRequest(c, code, "Intervalo inválido.")
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("owner_type = ? AND owner_id IN (?)",
				"day_schedule",
				tx.Model(&models.DaySchedule{}).Select("id").Where("barber_id = ?", barberID),
			).
			Delete(&models.ScheduleBreak{}).Error; err != nil {
			return err
		}

		if err := tx.Where("barber_id = ?", barberID).
			Delete(&models.DaySchedule{}).Error; err != nil {
			return err
		}

		for _, d := range req.Days {
			ds := models.DaySchedule{
				BarberID:  barberID,
				Weekday:   d.Weekday,
				StartTime: d.StartTime,
				EndTime:   d.EndTime,
				Breaks:    toBreaks(d.Breaks),
			}
			if err := tx.Create(&ds).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_schedule", "Erro ao salvar horários.")
		return
	}

	writeAudit(h.db, &barberID, "schedule_updated", "day_schedule", nil, nil)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// EXCEPTIONS
// ======================================================

func (h *ScheduleHandler) ListExceptions(c *gin.Context) {
	barberID, ok := paramID(c)
	if !ok {
		return
	}

	var excs []models.ScheduleException
	if err := h.db.
		Preload("Breaks").
		Where("barber_id = ?", barberID).
		Order("date ASC").
		Find(&excs).Error; err != nil {

		httperr.Internal(c, "failed_to_get_exceptions", "Erro ao buscar exceções.")
		return
	}

	c.JSON(http.StatusOK, excs)
}

func (h *ScheduleHandler) CreateException(c *gin.Context) {
	barberID, ok := paramID(c)
	if !ok {
		return
	}

	var req ExceptionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	date, err := timezone.ParseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	switch req.Kind {
	case models.ExceptionDayOff:
		// carries no hours of its own
	case models.ExceptionCustomHours:
		if code := validateWindow(req.StartTime, req.EndTime, req.Breaks); code != "" {
			httperr.BadRequest(c, code, "Intervalo inválido.")
			return
		}
	default:
		httperr.BadRequest(c, "invalid_kind", "Tipo de exceção inválido.")
		return
	}

	exc := models.ScheduleException{
		BarberID:  barberID,
		Date:      date,
		Kind:      req.Kind,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Breaks:    toBreaks(req.Breaks),
	}

	if err := h.db.Create(&exc).Error; err != nil {
		httperr.Conflict(c, "exception_exists", "Já existe exceção para esta data.")
		return
	}

	writeAudit(h.db, &barberID, "exception_created", "schedule_exception", &exc.ID, gin.H{
		"date": req.Date,
		"kind": req.Kind,
	})

	c.JSON(http.StatusCreated, exc)
}

func (h *ScheduleHandler) DeleteException(c *gin.Context) {
	barberID, ok := paramID(c)
	if !ok {
		return
	}

	var exc models.ScheduleException
	if err := h.db.
		Where("id = ? AND barber_id = ?", c.Param("exceptionId"), barberID).
		First(&exc).Error; err != nil {

		httperr.NotFound(c, "exception_not_found", "Exceção não encontrada.")
		return
	}

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("owner_type = ? AND owner_id = ?", "schedule_exception", exc.ID).
			Delete(&models.ScheduleBreak{}).Error; err != nil {
			return err
		}
		return tx.Delete(&exc).Error
	}); err != nil {
		httperr.Internal(c, "failed_to_delete_exception", "Erro ao remover exceção.")
		return
	}

	writeAudit(h.db, &barberID, "exception_deleted", "schedule_exception", &exc.ID, nil)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// HELPERS
// ======================================================

func toBreaks(in []BreakConfig) []models.ScheduleBreak {
	out := make([]models.ScheduleBreak, 0, len(in))
	for _, b := range in {
		out = append(out, models.ScheduleBreak{
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
		})
	}
	return out
}

// validateWindow rejects malformed windows before they reach storage; the
// resolver would treat them as closed days, which surprises barbers more
// than an upfront 400.
func validateWindow(start, end string, breaks []BreakConfig) string {
	window, err := schedule.ParseInterval(start, end)
	if err != nil || !window.Valid() {
		return "invalid_interval"
	}

	for _, b := range breaks {
		iv, err := schedule.ParseInterval(b.StartTime, b.EndTime)
		if err != nil || !iv.Valid() || !window.Contains(iv) {
			return "invalid_interval"
		}
	}

	return ""
}
