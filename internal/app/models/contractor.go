package models

// StatusActive is the status value counted as currently employed.
const StatusActive = "在职"

// ContractorSummary is the list projection of a contractor row (every column but created_at).
type ContractorSummary struct {
	ID             int64   `json:"id"`
	Name           *string `json:"name"`
	Gender         *string `json:"gender"`
	BirthDate      *Date   `json:"birth_date"`
	Age            *int32  `json:"age"`
	PhotoURL       *string `json:"photo_url"`
	Education      *string `json:"education"`
	Degree         *string `json:"degree"`
	University     *string `json:"university"`
	Major          *string `json:"major"`
	JoinDate       *Date   `json:"join_date"`
	EmploymentType *string `json:"employment_type"`
	Band           *string `json:"band"`
	Department     *string `json:"department"`
	Position       *string `json:"position"`
	Status         *string `json:"status"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email"`
}

// Contractor is the full contractor row.
type Contractor struct {
	ContractorSummary
	CreatedAt *Date `json:"created_at"`
}

// ContractorDetail aggregates a contractor with every child table.
type ContractorDetail struct {
	Contractor         Contractor
	WorkExperience     []WorkExperience
	ProjectExperience  []ProjectExperience
	Skills             []Skill
	TrainingRecords    []TrainingRecord
	PerformanceReviews []PerformanceReview
	Contracts          []Contract
}

// DepartmentCount is one row of the per-department head count.
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

// BandCount is one row of the per-band head count.
type BandCount struct {
	Band  string `json:"band"`
	Count int64  `json:"count"`
}

// ContractorStats holds the aggregate figures.
type ContractorStats struct {
	Total        int64
	Active       int64
	ByDepartment []DepartmentCount
	ByBand       []BandCount
}
