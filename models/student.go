package models

import "time"

// Student is the registration payload and the persisted account row.
// PasswordHash carries the bcrypt digest once the account is stored and is
// never serialized; Password carries the plaintext only on the way in.
type Student struct {
	// StudentID is the externally assigned school identifier.
	StudentID string `json:"student_id"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// Password is the plaintext password received at registration.
	// It is cleared as soon as the digest has been computed.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt digest stored in the database.
	PasswordHash string `json:"-"`

	Name  string `json:"name"`
	Ship  string `json:"ship"`
	Level string `json:"level"`
	Grade string `json:"grade"`

	// ClassGroup is stored in the "class" column.
	ClassGroup string `json:"class_group"`

	// CreatedAt is assigned by the database.
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the Student model.
func (s Student) TableName() string {
	return "students"
}

// View returns the public projection of the student.
func (s Student) View() StudentView {
	return StudentView{
		StudentID: s.StudentID,
		Email:     s.Email,
		Name:      s.Name,
		Ship:      s.Ship,
		Level:     s.Level,
		Grade:     s.Grade,
		Class:     s.ClassGroup,
		CreatedAt: s.CreatedAt,
	}
}

// StudentView is the student as returned to callers after login. It has no
// credential field, so a digest can never be serialized from it.
type StudentView struct {
	StudentID string    `json:"student_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Ship      string    `json:"ship"`
	Level     string    `json:"level"`
	Grade     string    `json:"grade"`
	Class     string    `json:"class"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest holds the credentials submitted to /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
