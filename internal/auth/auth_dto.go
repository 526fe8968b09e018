package auth

import "github.com/jerrsapps1/SafetySync-V2-sub000/internal/company"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateAccountRequest struct {
	OrganizationName string `json:"organization_name" binding:"required"`
	FullName         string `json:"full_name" binding:"required"`
	Username         string `json:"username" binding:"required,min=3"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=8"`
	Country          string `json:"country"`
	State            string `json:"state"`
	Phone            string `json:"phone"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	CompanyID string `json:"company_id,omitempty"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type CreateAccountResponse struct {
	Token   string                   `json:"token"`
	User    UserResponse             `json:"user"`
	Company *company.CompanyResponse `json:"company"`
}
