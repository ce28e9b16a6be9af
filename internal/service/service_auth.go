package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/lateness-tracker/internal/crypto"
	"github.com/MKhiriev/lateness-tracker/internal/logger"
	"github.com/MKhiriev/lateness-tracker/internal/store"
	"github.com/MKhiriev/lateness-tracker/models"
)

// authService is the concrete implementation of AuthService.
// It handles student registration and credential verification using a
// StudentRepository for persistence and a PasswordHasher for the digest.
type authService struct {
	// studentRepository is the data-access layer used to create and look up
	// students.
	studentRepository store.StudentRepository

	// hasher produces and checks bcrypt digests.
	hasher crypto.PasswordHasher

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// StudentRepository and PasswordHasher.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(studentRepository store.StudentRepository, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		studentRepository: studentRepository,
		hasher:            hasher,
		logger:            logger,
	}
}

// Register creates a new student account.
//
// The password is hashed before anything is written; the plaintext is
// cleared from the value handed to the repository. Every failure is wrapped
// in ErrRegistrationFailed, keeping the cause (e.g.
// store.ErrStudentAlreadyExists) reachable through errors.Is.
func (a *authService) Register(ctx context.Context, student models.Student) error {
	log := logger.FromContext(ctx)

	digest, err := a.hasher.Hash(student.Password)
	if err != nil {
		log.Err(err).Str("student_id", student.StudentID).Msg("password hashing failed")
		return fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	student.PasswordHash = digest
	student.Password = ""

	if err = a.studentRepository.CreateStudent(ctx, student); err != nil {
		log.Err(err).Str("student_id", student.StudentID).Str("email", student.Email).
			Msg("student creation ended with error")
		return fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	return nil
}

// Login authenticates a student.
//
// Returns the public view of the student or:
//   - ErrStudentNotFound if no student has that email.
//   - ErrWrongPassword if the password does not match the stored digest.
//   - a wrapped error for storage failures and malformed digests.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.StudentView, error) {
	log := logger.FromContext(ctx)

	found, err := a.studentRepository.FindStudentByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNoStudentWasFound) {
		log.Info().Str("email", req.Email).Msg("login for unknown email")
		return models.StudentView{}, ErrStudentNotFound
	}
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("student search by email failed")
		return models.StudentView{}, fmt.Errorf("student search by email failed: %w", err)
	}

	ok, err := a.hasher.Verify(req.Password, found.PasswordHash)
	if err != nil {
		log.Err(err).Str("student_id", found.StudentID).Msg("password verification failed")
		return models.StudentView{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Info().Str("student_id", found.StudentID).Msg("wrong password")
		return models.StudentView{}, ErrWrongPassword
	}

	return found.View(), nil
}
