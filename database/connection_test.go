package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectInvalidURIKeepsProcessAlive(t *testing.T) {
	err := Connect("://not-a-uri", "fibresite_test")
	require.NoError(t, err)

	assert.NotNil(t, GetDatabase())
	assert.NotNil(t, GetClient())

	assert.NotPanics(t, func() {
		coll := GetCollection(UsersCollection)
		assert.NotNil(t, coll)
	})
}
