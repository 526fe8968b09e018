package trainingrecord

type CreateTrainingRecordRequest struct {
	EmployeeID   string `json:"employee_id" binding:"required,uuid"`
	TrainingType string `json:"training_type" binding:"required"`
	StandardRef  string `json:"standard_ref"`
	Provider     string `json:"provider"`
	CompletedAt  string `json:"completed_at" binding:"required"`
	ExpiresAt    string `json:"expires_at"`
}

type UpdateTrainingRecordRequest struct {
	TrainingType string `json:"training_type" binding:"required"`
	StandardRef  string `json:"standard_ref"`
	Provider     string `json:"provider"`
	CompletedAt  string `json:"completed_at" binding:"required"`
	ExpiresAt    string `json:"expires_at"`
	Status       string `json:"status" binding:"omitempty,oneof=current expired"`
}

type TrainingRecordResponse struct {
	ID           string `json:"id"`
	CompanyID    string `json:"company_id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	TrainingType string `json:"training_type"`
	StandardRef  string `json:"standard_ref,omitempty"`
	Provider     string `json:"provider,omitempty"`
	CompletedAt  string `json:"completed_at"`
	ExpiresAt    string `json:"expires_at,omitempty"`
	Status       string `json:"status"`
}
