package services

import (
	"context"

	appauth "github.com/pragati-coe/facultyhub/internal/app/auth"
	"github.com/pragati-coe/facultyhub/internal/app/models"
	"github.com/pragati-coe/facultyhub/internal/app/models/dto"
	"github.com/pragati-coe/facultyhub/internal/app/repositories"
)

// pgQualificationTypes are the qualification types counted as postgraduate
// highest degrees.
var pgQualificationTypes = []string{"PG", "Post Graduate", "M.Tech", "M.E", "M.Sc", "M.A", "M.Com"}

// StatsService defines the interface for dashboard statistics
type StatsService interface {
	GetDashboardStats(ctx context.Context, ident appauth.Identity) (*dto.DashboardStats, error)
}

type statsServiceImpl struct {
	facultyRepo *repositories.FacultyRepository
	qualRepo    *repositories.QualificationRepository
	pubRepo     *repositories.PublicationRepository
	authz       *appauth.Service
}

// NewStatsService creates a new stats service instance
func NewStatsService(facultyRepo *repositories.FacultyRepository, qualRepo *repositories.QualificationRepository, pubRepo *repositories.PublicationRepository, authz *appauth.Service) StatsService {
	return &statsServiceImpl{
		facultyRepo: facultyRepo,
		qualRepo:    qualRepo,
		pubRepo:     pubRepo,
		authz:       authz,
	}
}

// BuildFacultyStats computes the distribution counts over a faculty set.
// Experience buckets use the same thresholds as the stored category, so the
// dashboard can never disagree with a profile's own label.
func BuildFacultyStats(faculty []*models.Faculty) *dto.DashboardStats {
	stats := &dto.DashboardStats{
		TotalFaculty:      len(faculty),
		ByDesignation:     map[string]int{},
		ByGender:          map[string]int{},
		ByAppointmentType: map[string]int{},
		ByExperience: map[string]int{
			models.ExpCategoryJunior: 0,
			models.ExpCategoryMid:    0,
			models.ExpCategorySenior: 0,
		},
	}

	departments := map[string]bool{}
	for _, f := range faculty {
		stats.ByDesignation[f.Designation]++
		stats.ByGender[f.Gender]++
		stats.ByAppointmentType[f.AppointmentType]++
		stats.ByExperience[models.ExperienceCategory(f.OverallExp)]++
		if f.AppointmentType == "Regular" {
			stats.RegularFaculty++
		}
		if f.Department != "" {
			departments[f.Department] = true
		}
	}
	stats.TotalDepartments = len(departments)

	return stats
}

// GetDashboardStats aggregates dashboard statistics for the caller.
// Non-administrative callers see stats over their own record only, and no
// publication totals.
func (s *statsServiceImpl) GetDashboardStats(ctx context.Context, ident appauth.Identity) (*dto.DashboardStats, error) {
	if err := s.authz.Validate(ident, appauth.CapViewFaculty); err != nil {
		return nil, err
	}

	filter := repositories.FacultyFilter{}
	if !ident.Role().IsAdministrative() {
		filter.OwnerEmail = ident.Email
	}

	faculty, err := s.facultyRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	stats := BuildFacultyStats(faculty)

	// Degree counts cover the same record set as the distributions above:
	// campus-wide for administrative callers, the caller's own record
	// otherwise.
	if ident.Role().IsAdministrative() {
		phd, err := s.qualRepo.CountFacultyWithHighestDegree(ctx, []string{"Ph.D"})
		if err != nil {
			return nil, err
		}
		stats.PhDHolders = phd

		pg, err := s.qualRepo.CountFacultyWithHighestDegree(ctx, pgQualificationTypes)
		if err != nil {
			return nil, err
		}
		stats.PGHolders = pg
	} else {
		for _, f := range faculty {
			quals, err := s.qualRepo.ListByFaculty(ctx, f.ID)
			if err != nil {
				return nil, err
			}
			hasPhD, hasPG := false, false
			for _, q := range quals {
				if !q.HighestDegree {
					continue
				}
				if q.Type == "Ph.D" {
					hasPhD = true
				}
				for _, t := range pgQualificationTypes {
					if q.Type == t {
						hasPG = true
					}
				}
			}
			if hasPhD {
				stats.PhDHolders++
			}
			if hasPG {
				stats.PGHolders++
			}
		}
	}

	if s.authz.IncludePublicationStats(ident) {
		counts, err := s.pubRepo.Counts(ctx)
		if err != nil {
			return nil, err
		}
		stats.Publications = &dto.PubStats{
			Journals:     counts.Journals,
			Conferences:  counts.Conferences,
			BookChapters: counts.BookChapters,
			Patents:      counts.Patents,
			Books:        counts.Books,
			Total:        counts.Journals + counts.Conferences + counts.BookChapters + counts.Patents,
		}
	}

	return stats, nil
}
