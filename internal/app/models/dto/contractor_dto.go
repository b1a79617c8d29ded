package dto

import "github.com/yigit/contractors/internal/app/models"

// ContractorListQuery holds the list parameters bound from the query string.
type ContractorListQuery struct {
	Keyword    string `form:"keyword"`
	Department string `form:"department"`
	Status     string `form:"status"`
	Page       int    `form:"page,default=1" binding:"min=1"`
	// PageSize has no upper bound; 0 yields an empty page.
	PageSize int `form:"page_size,default=10" binding:"min=0"`
}

// ContractorListResponse is the data of GET /api/contractors.
type ContractorListResponse struct {
	List     []models.ContractorSummary `json:"list"`
	Total    int64                      `json:"total" example:"3"`
	Page     int                        `json:"page" example:"1"`
	PageSize int                        `json:"page_size" example:"10"`
}

// ContractorDetailResponse is the data of GET /api/contractors/{id}.
type ContractorDetailResponse struct {
	BasicInfo          models.Contractor          `json:"basic_info"`
	WorkExperience     []models.WorkExperience    `json:"work_experience"`
	ProjectExperience  []models.ProjectExperience `json:"project_experience"`
	Skills             []models.Skill             `json:"skills"`
	TrainingRecords    []models.TrainingRecord    `json:"training_records"`
	PerformanceReviews []models.PerformanceReview `json:"performance_reviews"`
	Contracts          []models.Contract          `json:"contracts"`
}

// FromContractorDetail maps the repository aggregate onto the response,
// replacing nil slices so every array serializes as [].
func FromContractorDetail(d *models.ContractorDetail) ContractorDetailResponse {
	return ContractorDetailResponse{
		BasicInfo:          d.Contractor,
		WorkExperience:     orEmpty(d.WorkExperience),
		ProjectExperience:  orEmpty(d.ProjectExperience),
		Skills:             orEmpty(d.Skills),
		TrainingRecords:    orEmpty(d.TrainingRecords),
		PerformanceReviews: orEmpty(d.PerformanceReviews),
		Contracts:          orEmpty(d.Contracts),
	}
}

// StatsResponse is the data of GET /api/stats.
type StatsResponse struct {
	Total        int64                    `json:"total" example:"42"`
	Active       int64                    `json:"active" example:"37"`
	ByDepartment []models.DepartmentCount `json:"by_department"`
	ByBand       []models.BandCount       `json:"by_band"`
}

// FromContractorStats maps the aggregate figures onto the response.
func FromContractorStats(s *models.ContractorStats) StatsResponse {
	return StatsResponse{
		Total:        s.Total,
		Active:       s.Active,
		ByDepartment: orEmpty(s.ByDepartment),
		ByBand:       orEmpty(s.ByBand),
	}
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
