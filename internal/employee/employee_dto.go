package employee

type CreateEmployeeRequest struct {
	FullName   string `json:"full_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	JobTitle   string `json:"job_title"`
	LocationID string `json:"location_id" binding:"omitempty,uuid"`
	Status     string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type UpdateEmployeeRequest struct {
	FullName   string `json:"full_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	JobTitle   string `json:"job_title"`
	LocationID string `json:"location_id" binding:"omitempty,uuid"`
	Status     string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type EmployeeResponse struct {
	ID         string `json:"id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	JobTitle   string `json:"job_title,omitempty"`
	Status     string `json:"status"`
	CompanyID  string `json:"company_id"`
	LocationID string `json:"location_id,omitempty"`
}
