package domain_test

import (
	"testing"

	"github.com/databridge/dating-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNormalizePair(t *testing.T) {
	a, b := domain.NormalizePair(7, 3)
	assert.Equal(t, 3, a)
	assert.Equal(t, 7, b)

	a, b = domain.NormalizePair(3, 7)
	assert.Equal(t, 3, a)
	assert.Equal(t, 7, b)
}

func TestOtherUserID(t *testing.T) {
	m := &domain.Match{User1ID: 3, User2ID: 7}

	assert.Equal(t, 7, m.OtherUserID(3))
	assert.Equal(t, 3, m.OtherUserID(7))
	assert.Equal(t, 0, m.OtherUserID(42))
}
