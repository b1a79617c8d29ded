package models

// WorkExperience is a prior employment of a contractor.
type WorkExperience struct {
	ID           int64   `json:"id"`
	ContractorID int64   `json:"contractor_id"`
	Company      *string `json:"company"`
	Position     *string `json:"position"`
	StartDate    *Date   `json:"start_date"`
	EndDate      *Date   `json:"end_date"`
	Description  *string `json:"description"`
}

// ProjectExperience is a project a contractor took part in.
type ProjectExperience struct {
	ID           int64   `json:"id"`
	ContractorID int64   `json:"contractor_id"`
	ProjectName  *string `json:"project_name"`
	Role         *string `json:"role"`
	StartDate    *Date   `json:"start_date"`
	EndDate      *Date   `json:"end_date"`
	Description  *string `json:"description"`
}

// Skill is a skill tag.
type Skill struct {
	ID           int64   `json:"id"`
	ContractorID int64   `json:"contractor_id"`
	SkillName    *string `json:"skill_name"`
	Proficiency  *string `json:"proficiency"`
}

// TrainingRecord is a completed or attended training.
type TrainingRecord struct {
	ID           int64   `json:"id"`
	ContractorID int64   `json:"contractor_id"`
	TrainingName *string `json:"training_name"`
	TrainingDate *Date   `json:"training_date"`
	Provider     *string `json:"provider"`
	Result       *string `json:"result"`
}

// PerformanceReview is a periodic evaluation.
type PerformanceReview struct {
	ID           int64   `json:"id"`
	ContractorID int64   `json:"contractor_id"`
	ReviewDate   *Date   `json:"review_date"`
	Reviewer     *string `json:"reviewer"`
	Rating       *string `json:"rating"`
	Comments     *string `json:"comments"`
}

// Contract is an employment contract.
type Contract struct {
	ID           int64   `json:"id"`
	ContractorID int64   `json:"contractor_id"`
	ContractType *string `json:"contract_type"`
	StartDate    *Date   `json:"start_date"`
	EndDate      *Date   `json:"end_date"`
	Status       *string `json:"status"`
}
