package main

import (
	"github.com/SscSPs/budget_master_backend/internal/apperrors"
)

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	switch apperrors.KindOf(err) {
	case apperrors.KindInvalidInput:
		return 2
	case apperrors.KindNotFound:
		return 3
	case apperrors.KindConflict:
		return 4
	case apperrors.KindIllegalPosition:
		return 5
	case apperrors.KindStore:
		return 6
	}
	return 1
}
