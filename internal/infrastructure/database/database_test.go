package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The duplicate-key branch in the transaction engine depends on gorm
// translating a unique violation into gorm.ErrDuplicatedKey, which only
// happens with TranslateError enabled.
func TestGormConfigTranslatesErrors(t *testing.T) {
	cfg := newGormConfig()
	assert.True(t, cfg.TranslateError)
	assert.NotNil(t, cfg.Logger)
}
