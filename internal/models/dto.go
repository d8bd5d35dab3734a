package models

// SearchCriteria is the optional filter bag for job search. Every
// supplied criterion must hold (conjunctive semantics). Unknown
// datePosted values apply no filter. Page and Limit ride in the same
// body; the handler falls back to the query string when they are
// absent.
type SearchCriteria struct {
	JobTitle    string   `json:"jobTitle"`
	Location    string   `json:"location"`
	City        string   `json:"city"`
	JobLocation string   `json:"jobLocation"`
	DatePosted  string   `json:"datePosted"`
	MinPay      *float64 `json:"minPay"`
	MaxPay      *float64 `json:"maxPay"`
	JobType     string   `json:"jobType"`
	Skills      string   `json:"skills"`
	Language    string   `json:"language"`
	Education   string   `json:"education"`
	Page        int      `json:"page"`
	Limit       int      `json:"limit"`
}

// JobResult is a search row annotated with the owning employer's
// aggregate review rating.
type JobResult struct {
	Job
	CompanyName         string   `json:"companyName"`
	AverageReviewRating *float64 `json:"averageReviewRating"`
}

type SearchResponse struct {
	Jobs        []JobResult `json:"jobs"`
	TotalPages  int         `json:"totalPages"`
	CurrentPage int         `json:"currentPage"`
}

// SalaryBreakdown projects one central-tendency monthly figure into
// the other pay periods.
type SalaryBreakdown struct {
	Yearly  float64 `json:"yearly"`
	Monthly float64 `json:"monthly"`
	Weekly  float64 `json:"weekly"`
	Daily   float64 `json:"daily"`
	Hourly  float64 `json:"hourly"`
}

type SalarySearchResponse struct {
	SearchResponse
	AverageSalary SalaryBreakdown `json:"averageSalary"`
}

type CreateJobRequest struct {
	JobTitle       string   `json:"jobTitle" validate:"required"`
	JobLocation    string   `json:"jobLocation" validate:"required,oneof=On-site Remote"`
	City           string   `json:"city" validate:"required"`
	Area           string   `json:"area"`
	Pincode        string   `json:"pincode"`
	StreetAddress  string   `json:"streetAddress"`
	JobTypes       []string `json:"jobTypes" validate:"required,min=1"`
	Skills         []string `json:"skills"`
	Languages      []string `json:"languages"`
	Education      []string `json:"education"`
	JobDescription string   `json:"jobDescription" validate:"required"`
	NumberOfPeople int      `json:"numberOfPeople" validate:"min=0"`
	MobileNumber   string   `json:"mobileNumber"`
	Email          string   `json:"email" validate:"omitempty,email"`
	PayType        string   `json:"payType" validate:"omitempty,oneof='Exact amount' Range"`
	ExactPay       *float64 `json:"exactPay"`
	MinimumPay     *float64 `json:"minimumPay"`
	MaximumPay     *float64 `json:"maximumPay"`
	PayRate        string   `json:"payRate" validate:"omitempty,oneof='per hour' 'per day' 'per month' 'per year'"`
	Deadline       string   `json:"deadline" validate:"omitempty,oneof=Yes No"`
	DeadlineDate   string   `json:"deadlineDate"`
}

type UpdateJobStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Open Paused Closed"`
}

type ApplyRequest struct {
	JobID          string `json:"jobId" validate:"required,uuid"`
	AvailableDates string `json:"availableDates"`
	Experience     string `json:"experience"`
}

type UpdateEmployeeStatusRequest struct {
	EmployeeStatus string `json:"employeeStatus" validate:"required"`
}

type UpdateEmployerStatusRequest struct {
	EmployerStatus string `json:"employerStatus" validate:"required"`
}

type SaveJobRequest struct {
	JobID string `json:"jobId" validate:"required,uuid"`
}

type AddReviewRequest struct {
	EmployerID  string  `json:"employerId" validate:"required,uuid"`
	Comment     string  `json:"comment" validate:"required"`
	Rating      float64 `json:"rating" validate:"required,gte=1,lte=5"`
	Description string  `json:"description"`
}

// EmployerSummary is one row of the employer directory.
type EmployerSummary struct {
	ID                  string   `json:"id"`
	CompanyName         string   `json:"companyName"`
	NumberOfEmployees   int      `json:"numberOfEmployees"`
	PhoneNumber         string   `json:"phoneNumber"`
	Profile             string   `json:"profile"`
	TotalReviewCount    int      `json:"totalReviewCount"`
	AverageReviewRating *float64 `json:"averageReviewRating"`
}

// ReviewStats is the employer detail roll-up: star buckets use floor
// rounding with a round-half-up tie break.
type ReviewStats struct {
	TotalReviewCount    int     `json:"totalReviewCount"`
	AverageReviewRating float64 `json:"averageReviewRating"`
	RatingCount1        int     `json:"ratingCount1"`
	RatingCount2        int     `json:"ratingCount2"`
	RatingCount3        int     `json:"ratingCount3"`
	RatingCount4        int     `json:"ratingCount4"`
	RatingCount5        int     `json:"ratingCount5"`
}

// JobApplicantsCount pairs a job with how many applications it has
// received.
type JobApplicantsCount struct {
	ID              string `json:"id"`
	JobTitle        string `json:"jobTitle"`
	ApplicantsCount int    `json:"applicantsCount"`
}

// ApplicationStatusCounts aggregates an employer's applications by
// employer-side status.
type ApplicationStatusCounts struct {
	HiredCount             int `json:"hiredCount"`
	TotalApplicationsCount int `json:"totalApplicationsCount"`
}

// EmployerJobsQuery filters an employer's own active listings.
type EmployerJobsQuery struct {
	JobTitle  string `json:"jobTitle"`
	Location  string `json:"location"`
	SortOrder string `json:"sortOrder"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}
