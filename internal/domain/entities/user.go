package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

// UserStatus represents the admin-approval state of an account
type UserStatus string

const (
	UserStatusPending  UserStatus = "pending"
	UserStatusApproved UserStatus = "approved"
	UserStatusRejected UserStatus = "rejected"
)

// ApprovalDecision is the admin's verdict on a pending account.
// There is no path back to pending.
type ApprovalDecision string

const (
	DecisionApproved ApprovalDecision = "approved"
	DecisionRejected ApprovalDecision = "rejected"
)

// User represents a panel account
type User struct {
	ID                    uuid.UUID  `json:"id"`
	Email                 string     `json:"email"`
	Name                  string     `json:"name"`
	PasswordHash          string     `json:"-"`
	Role                  UserRole   `json:"role"`
	Status                UserStatus `json:"status"`
	EmailVerified         bool       `json:"emailVerified"`
	VerificationCode      string     `json:"-"`
	VerificationExpiresAt null.Time  `json:"-"`
	VerificationAttempts  int        `json:"-"`
	CreatedAt             time.Time  `json:"createdAt"`
	ApprovedAt            null.Time  `json:"approvedAt,omitempty"`
	LastLogin             null.Time  `json:"lastLogin,omitempty"`
}

// RegisterInput represents input for account registration
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginInput represents input for sign-in
type LoginInput struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	UseSession bool   `json:"useSession"` // store tokens server-side and return a session ID
}

// VerifyEmailInput carries the emailed 6-digit code back to the server
type VerifyEmailInput struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

// ResendCodeInput represents input for rotating a verification code
type ResendCodeInput struct {
	Email string `json:"email" binding:"required,email"`
}

// ApprovalInput represents the admin approve/reject form
type ApprovalInput struct {
	Decision ApprovalDecision `json:"decision" binding:"required,oneof=approved rejected"`
}

// RoleInput represents the admin role-change form
type RoleInput struct {
	Role UserRole `json:"role" binding:"required,oneof=user admin"`
}

// AuthResponse represents a successful sign-in
type AuthResponse struct {
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	SessionID    string `json:"sessionId,omitempty"`
	User         *User  `json:"user"`
}

// RegistrationOutcome is returned once after sign-up. The verification code
// is displayed to the registrant in place of email delivery.
type RegistrationOutcome struct {
	User             *User  `json:"user"`
	VerificationCode string `json:"verificationCode"`
}
