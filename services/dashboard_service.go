package services

import (
	"time"

	"hostel-backend/models"

	"gorm.io/gorm"
)

type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

type DashboardStats struct {
	TotalProperties int64 `json:"totalProperties"`
	TotalRooms      int64 `json:"totalRooms"`
	TotalBeds       int64 `json:"totalBeds"`
	OccupiedBeds    int64 `json:"occupiedBeds"`
	AvailableBeds   int64 `json:"availableBeds"`
	MaintenanceBeds int64 `json:"maintenanceBeds"`

	ActiveStudents int64 `json:"activeStudents"`

	TotalComplaints    int64 `json:"totalComplaints"`
	OpenComplaints     int64 `json:"openComplaints"`
	ResolvedComplaints int64 `json:"resolvedComplaints"`

	TotalBookings  int64   `json:"totalBookings"`
	ActiveBookings int64   `json:"activeBookings"`
	TotalPayments  int64   `json:"totalPayments"`
	TotalRevenue   float64 `json:"totalRevenue"`

	RecentComplaints []models.Complaint `json:"recentComplaints"`
	RecentStudents   []models.Student   `json:"recentStudents"`
}

// Stats is the read-side reporting feed for the dashboard page. Pure
// aggregation; nothing here mutates state.
func (s *DashboardService) Stats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	s.DB.Model(&models.Property{}).Count(&stats.TotalProperties)
	s.DB.Model(&models.Room{}).Count(&stats.TotalRooms)
	s.DB.Model(&models.Bed{}).Count(&stats.TotalBeds)
	s.DB.Model(&models.Bed{}).Where("status = ?", models.BedOccupied).Count(&stats.OccupiedBeds)
	s.DB.Model(&models.Bed{}).Where("status = ?", models.BedAvailable).Count(&stats.AvailableBeds)
	s.DB.Model(&models.Bed{}).Where("status = ?", models.BedMaintenance).Count(&stats.MaintenanceBeds)

	s.DB.Model(&models.Student{}).Where("is_active = ?", true).Count(&stats.ActiveStudents)

	s.DB.Model(&models.Complaint{}).Count(&stats.TotalComplaints)
	s.DB.Model(&models.Complaint{}).Where("status = ?", models.ComplaintOpen).Count(&stats.OpenComplaints)
	s.DB.Model(&models.Complaint{}).Where("status = ?", models.ComplaintResolved).Count(&stats.ResolvedComplaints)

	now := time.Now()
	s.DB.Model(&models.Booking{}).Count(&stats.TotalBookings)
	s.DB.Model(&models.Booking{}).
		Where("start_date <= ? AND end_date >= ?", now, now).
		Count(&stats.ActiveBookings)

	s.DB.Model(&models.Payment{}).Count(&stats.TotalPayments)
	var revenue *float64
	if err := s.DB.Model(&models.Payment{}).
		Select("SUM(amount)").
		Scan(&revenue).Error; err != nil {
		return nil, err
	}
	if revenue != nil {
		stats.TotalRevenue = *revenue
	}

	if err := s.DB.
		Preload("Room").
		Preload("Student").
		Order("created_at DESC").
		Limit(5).
		Find(&stats.RecentComplaints).Error; err != nil {
		return nil, err
	}

	if err := s.DB.
		Preload("AssignedBed.Room.Property").
		Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(5).
		Find(&stats.RecentStudents).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
