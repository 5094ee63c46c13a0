package domain

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadError(t *testing.T) {
	err := error(&LoadError{Path: "missing.png", Err: os.ErrNotExist})

	assert.Equal(t, "could not open image missing.png: file does not exist", err.Error())
	assert.ErrorIs(t, err, ErrLoad)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NotErrorIs(t, err, ErrSave)
}

func TestSaveError(t *testing.T) {
	cause := errors.New("disk full")
	err := error(&SaveError{Path: "out.png", Err: cause})

	assert.Equal(t, "could not save image out.png: disk full", err.Error())
	assert.ErrorIs(t, err, ErrSave)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrLoad)
}

func TestValidationError(t *testing.T) {
	err := error(&ValidationError{Field: "width", Reason: "must be a positive integer"})

	assert.Equal(t, "invalid width: must be a positive integer", err.Error())
	assert.ErrorIs(t, err, ErrValidation)
}
