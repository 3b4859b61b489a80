package services

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"crm/constants"
	"crm/dto"
	apperrors "crm/errors"
	"crm/models"
	"crm/services/logger"
	"crm/validator"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendanceService struct {
	db     *gorm.DB
	now    func() time.Time
	loc    *time.Location
	logger logger.Logger
}

type AttendanceServiceOptions struct {
	DB       *gorm.DB
	Now      func() time.Time
	Location *time.Location
	Logger   logger.Logger
}

func NewAttendanceService(opts AttendanceServiceOptions) *AttendanceService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop{}
	}
	return &AttendanceService{db: opts.DB, now: opts.Now, loc: opts.Location, logger: opts.Logger}
}

// CheckIn opens today's record for a developer.
func (s *AttendanceService) CheckIn(ctx context.Context, staffID uint, role string) (models.Attendance, error) {
	if role != constants.RoleDeveloper {
		return models.Attendance{}, apperrors.Forbidden("Only developers can check in")
	}

	now := s.now().In(s.loc)
	today := now.Format(constants.DateLayout)

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Attendance{}).
		Where("staff_id = ? AND date = ?", staffID, today).
		Count(&count).Error; err != nil {
		return models.Attendance{}, apperrors.Server("Could not load attendance", err)
	}
	if count > 0 {
		return models.Attendance{}, apperrors.Validation("Already checked in today.")
	}

	record := models.Attendance{
		StaffID: staffID,
		Date:    today,
		CheckIn: now.Format(constants.TimeLayout),
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		if isDuplicate(err) {
			return models.Attendance{}, apperrors.Conflict("Already checked in today.")
		}
		return models.Attendance{}, apperrors.Server("Could not check in", err)
	}

	attendanceEvents.WithLabelValues("check_in").Inc()
	s.logger.Info("staff %d checked in at %s %s", staffID, record.Date, record.CheckIn)
	return record, nil
}

// CheckOut closes today's record. A record can only be closed once.
func (s *AttendanceService) CheckOut(ctx context.Context, staffID uint, role string) (models.Attendance, error) {
	if role != constants.RoleDeveloper {
		return models.Attendance{}, apperrors.Forbidden("Only developers can check out")
	}

	now := s.now().In(s.loc)
	today := now.Format(constants.DateLayout)

	var record models.Attendance
	err := s.db.WithContext(ctx).Where("staff_id = ? AND date = ?", staffID, today).First(&record).Error
	if err != nil {
		if isNotFound(err) {
			return models.Attendance{}, apperrors.Validation("You have not checked in today.")
		}
		return models.Attendance{}, apperrors.Server("Could not load attendance", err)
	}
	if record.CheckOut != "" {
		return models.Attendance{}, apperrors.Validation("Already checked out today.")
	}

	checkOut := now.Format(constants.TimeLayout)
	elapsed := 0
	if in, ok := parseClock(record.CheckIn); ok {
		out, _ := parseClock(checkOut)
		if out > in {
			elapsed = out - in
		}
	}
	duration := formatClock(elapsed)

	res := s.db.WithContext(ctx).Model(&models.Attendance{}).
		Where("id = ? AND (check_out = '' OR check_out IS NULL)", record.ID).
		Updates(map[string]interface{}{"check_out": checkOut, "duration": duration})
	if res.Error != nil {
		return models.Attendance{}, apperrors.Server("Could not check out", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.Attendance{}, apperrors.Validation("Already checked out today.")
	}

	record.CheckOut = checkOut
	record.Duration = duration
	attendanceEvents.WithLabelValues("check_out").Inc()
	s.logger.Info("staff %d checked out at %s %s after %s", staffID, record.Date, checkOut, duration)
	return record, nil
}

// All lists developer attendance with the staff member, newest first.
func (s *AttendanceService) All(ctx context.Context) ([]models.Attendance, error) {
	var records []models.Attendance
	err := s.db.WithContext(ctx).
		Joins("Staff").
		Where(clause.Eq{Column: clause.Column{Table: "Staff", Name: "role"}, Value: constants.RoleDeveloper}).
		Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: "created_at"}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}, Desc: true}).
		Find(&records).Error
	if err != nil {
		return nil, apperrors.Server("Could not load attendance", err)
	}
	return records, nil
}

func (s *AttendanceService) Mine(ctx context.Context, staffID uint) ([]models.Attendance, error) {
	var records []models.Attendance
	if err := s.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("created_at DESC").Order("id DESC").
		Find(&records).Error; err != nil {
		return nil, apperrors.Server("Could not load attendance", err)
	}
	return records, nil
}

// WorkingHours sums a month of durations two ways. TotalHours reads every
// duration as a leading decimal number, so "01:30:00" counts as 1 and one
// unreadable value turns the whole total into 0. ExactHours is the real sum.
// Developers may only ask for their own hours.
func (s *AttendanceService) WorkingHours(ctx context.Context, callerID uint, callerRole string, staffID uint, month string) (dto.WorkingHoursResponse, error) {
	if !validator.IsYearMonth(month) {
		return dto.WorkingHoursResponse{}, apperrors.Validation("month must be in YYYY-MM format")
	}
	if callerRole == constants.RoleDeveloper && callerID != staffID {
		return dto.WorkingHoursResponse{}, apperrors.Forbidden("Developers can only view their own working hours")
	}

	var records []models.Attendance
	if err := s.db.WithContext(ctx).
		Where("staff_id = ? AND date LIKE ?", staffID, month+"-%").
		Find(&records).Error; err != nil {
		return dto.WorkingHoursResponse{}, apperrors.Server("Could not load attendance", err)
	}

	durations := make([]string, 0, len(records))
	for _, r := range records {
		durations = append(durations, r.Duration)
	}

	return dto.WorkingHoursResponse{
		StaffID:    staffID,
		Month:      month,
		TotalHours: legacyHours(durations),
		ExactHours: exactHours(durations),
	}, nil
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// legacyHours adds the leading number of every duration. An empty duration
// counts 0; a value with no leading number poisons the sum to 0.
func legacyHours(durations []string) float64 {
	total := 0.0
	for _, d := range durations {
		if d == "" {
			continue
		}
		m := leadingNumber.FindString(strings.TrimSpace(d))
		if m == "" {
			return 0
		}
		v, err := strconv.ParseFloat(m, 64)
		if err != nil || math.IsNaN(v) {
			return 0
		}
		total += v
	}
	return total
}

func exactHours(durations []string) float64 {
	seconds := 0
	for _, d := range durations {
		if v, ok := parseClock(d); ok {
			seconds += v
		}
	}
	h, _ := decimal.NewFromInt(int64(seconds)).Div(decimal.NewFromInt(3600)).Round(2).Float64()
	return h
}

// parseClock reads HH:mm:ss as seconds. Hours may exceed 23.
func parseClock(s string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0, false
	}
	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, false
		}
		v[i] = n
	}
	if v[1] > 59 || v[2] > 59 {
		return 0, false
	}
	return v[0]*3600 + v[1]*60 + v[2], true
}

func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}
