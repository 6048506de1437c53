package services

import (
	"fmt"
	"strconv"

	"github.com/akshay/schoolms/internal/app/models"
	"github.com/akshay/schoolms/internal/pkg/apperrors"
)

const (
	enrollmentPrefix         = "ENR"
	enrollmentSequenceDigits = 4
)

// nextEnrollmentNumber derives a new enrollment number from the most recently
// created student. The trailing 4-digit sequence of the last number is
// incremented and prefixed with ENR plus the given calendar year; the sequence
// starts at 0001 when no student exists.
//
// The sequence is taken from the last student by creation order regardless of
// its year prefix, so it does not reset on a year boundary: after ENR20259931
// the first number of 2026 is ENR20269932. This matches the system's
// historical numbering and is kept deliberately.
func nextEnrollmentNumber(last *models.Student, year int) (string, error) {
	sequence := 1

	if last != nil {
		suffix := last.EnrollmentNumber
		if len(suffix) < enrollmentSequenceDigits {
			return "", apperrors.NewCustomError(apperrors.ErrInvalidEnrollmentSequence,
				fmt.Sprintf("enrollment number %q is too short", last.EnrollmentNumber))
		}
		suffix = suffix[len(suffix)-enrollmentSequenceDigits:]

		lastSequence, err := strconv.Atoi(suffix)
		if err != nil {
			return "", apperrors.NewCustomError(apperrors.ErrInvalidEnrollmentSequence,
				fmt.Sprintf("enrollment number %q has a non-numeric suffix", last.EnrollmentNumber))
		}
		sequence = lastSequence + 1
	}

	return fmt.Sprintf("%s%d%04d", enrollmentPrefix, year, sequence), nil
}
