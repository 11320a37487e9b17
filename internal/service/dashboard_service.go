package service

import (
	"context"
	"time"

	"heatwatch/internal/domain"
	"heatwatch/internal/port"
)

// AdminDashboard is the admin landing data.
type AdminDashboard struct {
	Message         string                    `json:"message"`
	UsersByRole     map[domain.UserRole]int   `json:"users_by_role"`
	ActiveHeatwaves int                       `json:"active_heatwaves"`
	Statistics      *domain.StatisticsSummary `json:"statistics"`
}

// DashboardService assembles the admin dashboard.
type DashboardService interface {
	Admin(ctx context.Context, user *domain.User) (*AdminDashboard, error)
}

type dashboardService struct {
	userRepo     port.UserRepository
	heatwaveRepo port.HeatwaveRepository
	statRepo     port.StatisticRepository
	now          func() time.Time
}

// NewDashboardService creates a new DashboardService implementation.
func NewDashboardService(userRepo port.UserRepository, heatwaveRepo port.HeatwaveRepository, statRepo port.StatisticRepository) DashboardService {
	return &dashboardService{userRepo: userRepo, heatwaveRepo: heatwaveRepo, statRepo: statRepo, now: time.Now}
}

func (s *dashboardService) Admin(ctx context.Context, user *domain.User) (*AdminDashboard, error) {
	counts, err := s.userRepo.CountByRole(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	_, active, err := s.heatwaveRepo.List(ctx, port.HeatwaveFilter{ActiveAt: &now}, 0, 1)
	if err != nil {
		return nil, err
	}
	summary, err := s.statRepo.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return &AdminDashboard{
		Message:         "Bienvenue " + user.FullName() + " sur le tableau de bord administrateur",
		UsersByRole:     counts,
		ActiveHeatwaves: active,
		Statistics:      summary,
	}, nil
}
