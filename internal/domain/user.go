package domain

import "time"

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleWorker   UserRole = "worker"
	RoleAdmin    UserRole = "admin"
)

// Address is embedded into users and snapshotted onto bookings.
type Address struct {
	State   string `json:"state,omitempty"`
	City    string `json:"city,omitempty"`
	Area    string `json:"area,omitempty"`
	Line    string `json:"line,omitempty"`
	DoorNo  string `json:"doorNo,omitempty"`
	Pincode string `json:"pincode,omitempty"`
}

type User struct {
	ID           int64      `json:"id" gorm:"primaryKey"`
	FirstName    string     `json:"firstName" validate:"required"`
	LastName     string     `json:"lastName" validate:"required"`
	Email        string     `json:"email" validate:"required,email" gorm:"uniqueIndex"`
	MobileNumber string     `json:"mobileNumber" validate:"required" gorm:"uniqueIndex"`
	PasswordHash string     `json:"-"`
	Role         UserRole   `json:"role"`
	Address      Address    `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	IsVerified   bool       `json:"isVerified"`
	OTPHash      string     `json:"-"`
	OTPExpiry    *time.Time `json:"-"`
	ProfileImage string     `json:"profileImage,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// Sanitize strips credential state before the user leaves the service layer.
func (u *User) Sanitize() {
	u.PasswordHash = ""
	u.OTPHash = ""
	u.OTPExpiry = nil
}
