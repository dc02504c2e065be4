package main

import (
	"testing"

	"course-catalog/src/config"

	"github.com/stretchr/testify/assert"
)

func TestRunReturnsConfigError(t *testing.T) {
	t.Setenv("MONGO_URI", "")

	err := run()
	assert.ErrorIs(t, err, config.ErrMissingMongoURI)
}

func TestRunReturnsConnectError(t *testing.T) {
	t.Setenv("MONGO_URI", "not-a-mongo-uri")

	err := run()
	assert.ErrorContains(t, err, "connect to the database")
}
