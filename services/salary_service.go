package services

import (
	"context"
	"time"

	"crm/constants"
	"crm/dto"
	apperrors "crm/errors"
	"crm/models"
	"crm/services/logger"
	"crm/validator"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// workingHoursPerYear is 12 months of 30 days of 8 hours.
var workingHoursPerYear = decimal.NewFromInt(12 * 30 * 8)

type SalaryService struct {
	db     *gorm.DB
	logger logger.Logger
}

type SalaryServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewSalaryService(opts SalaryServiceOptions) *SalaryService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop{}
	}
	return &SalaryService{db: opts.DB, logger: opts.Logger}
}

// Generate prices a month of attendance for one staff member. Only records
// with both times count, and a check-out earlier than the check-in (a shift
// over midnight) adds nothing.
func (s *SalaryService) Generate(ctx context.Context, input dto.GenerateSlipRequest) (models.SalarySlip, error) {
	if !validator.IsYearMonth(input.Month) {
		return models.SalarySlip{}, apperrors.Validation("month must be in YYYY-MM format")
	}
	if input.LPA <= 0 {
		return models.SalarySlip{}, apperrors.Validation("LPA must be greater than 0")
	}

	var staff models.User
	err := s.db.WithContext(ctx).
		Where("id = ? AND role IN ?", input.StaffID, constants.StaffRoles).
		First(&staff).Error
	if err != nil {
		if isNotFound(err) {
			return models.SalarySlip{}, apperrors.NotFound("Staff not found")
		}
		return models.SalarySlip{}, apperrors.Server("Could not load staff", err)
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.SalarySlip{}).
		Where("staff_id = ? AND month = ?", input.StaffID, input.Month).
		Count(&count).Error; err != nil {
		return models.SalarySlip{}, apperrors.Server("Could not check salary slips", err)
	}
	if count > 0 {
		return models.SalarySlip{}, apperrors.Conflict("Salary slip already generated")
	}

	from, to := monthWindow(input.Month)
	var records []models.Attendance
	if err := s.db.WithContext(ctx).
		Where("staff_id = ? AND date >= ? AND date < ?", input.StaffID, from, to).
		Find(&records).Error; err != nil {
		return models.SalarySlip{}, apperrors.Server("Could not load attendance", err)
	}

	hours, salary := computeSalary(records, decimal.NewFromFloat(input.LPA))

	slip := models.SalarySlip{
		StaffID:           input.StaffID,
		Month:             input.Month,
		LPA:               input.LPA,
		TotalWorkingHours: hours,
		CalculatedSalary:  salary,
		Status:            constants.SlipStatusPending,
	}
	if err := s.db.WithContext(ctx).Create(&slip).Error; err != nil {
		if isDuplicate(err) {
			return models.SalarySlip{}, apperrors.Conflict("Salary slip already generated")
		}
		return models.SalarySlip{}, apperrors.Server("Could not save salary slip", err)
	}

	salarySlipsGenerated.Inc()
	s.logger.Info("generated salary slip %d for staff %d (%s): %.2fh, %d", slip.ID, slip.StaffID, slip.Month, hours, salary)
	return slip, nil
}

func (s *SalaryService) Mine(ctx context.Context, staffID uint) ([]models.SalarySlip, error) {
	var slips []models.SalarySlip
	if err := s.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("created_at DESC").Order("id DESC").
		Find(&slips).Error; err != nil {
		return nil, apperrors.Server("Could not load salary slips", err)
	}
	return slips, nil
}

// All returns every slip with its staff member. An empty month means all months.
func (s *SalaryService) All(ctx context.Context, month string) ([]models.SalarySlip, error) {
	q := s.db.WithContext(ctx).Preload("Staff")
	if month != "" {
		if !validator.IsYearMonth(month) {
			return nil, apperrors.Validation("month must be in YYYY-MM format")
		}
		q = q.Where("month = ?", month)
	}

	var slips []models.SalarySlip
	if err := q.Order("created_at DESC").Order("id DESC").Find(&slips).Error; err != nil {
		return nil, apperrors.Server("Could not load salary slips", err)
	}
	return slips, nil
}

// SetStatus approves or rejects a slip. The reason is kept when given.
func (s *SalaryService) SetStatus(ctx context.Context, slipID uint, input dto.SlipStatusRequest) (models.SalarySlip, error) {
	if input.Status != constants.SlipStatusApproved && input.Status != constants.SlipStatusRejected {
		return models.SalarySlip{}, apperrors.Validation("Invalid status")
	}

	var slip models.SalarySlip
	if err := s.db.WithContext(ctx).First(&slip, slipID).Error; err != nil {
		if isNotFound(err) {
			return models.SalarySlip{}, apperrors.NotFound("Slip not found")
		}
		return models.SalarySlip{}, apperrors.Server("Could not load salary slip", err)
	}

	updates := map[string]interface{}{"status": input.Status}
	if input.Reason != "" {
		updates["rejection_reason"] = input.Reason
	}
	if err := s.db.WithContext(ctx).Model(&slip).Updates(updates).Error; err != nil {
		return models.SalarySlip{}, apperrors.Server("Could not update salary slip", err)
	}

	slip.Status = input.Status
	if input.Reason != "" {
		slip.RejectionReason = input.Reason
	}
	s.logger.Info("salary slip %d %s", slip.ID, input.Status)
	return slip, nil
}

// monthWindow returns the first day of month and of the month after it.
func monthWindow(month string) (string, string) {
	start, _ := time.Parse(constants.MonthLayout, month)
	return start.Format(constants.DateLayout), start.AddDate(0, 1, 0).Format(constants.DateLayout)
}

// computeSalary returns the worked hours rounded to 2 decimals and the pay
// for them rounded to a whole amount.
func computeSalary(records []models.Attendance, lpa decimal.Decimal) (float64, int64) {
	seconds := 0
	for _, r := range records {
		if r.CheckIn == "" || r.CheckOut == "" {
			continue
		}
		in, okIn := parseClock(r.CheckIn)
		out, okOut := parseClock(r.CheckOut)
		if !okIn || !okOut {
			continue
		}
		if d := out - in; d > 0 {
			seconds += d
		}
	}

	hours := decimal.NewFromInt(int64(seconds)).Div(decimal.NewFromInt(3600)).Round(2)
	salary := lpa.Div(workingHoursPerYear).Mul(hours).Round(0)

	h, _ := hours.Float64()
	return h, salary.IntPart()
}
