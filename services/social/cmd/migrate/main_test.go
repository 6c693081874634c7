package main

import (
	"bytes"
	"context"
	"testing"

	"mob-social/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestRunGoose_UnknownCommand(t *testing.T) {
	logr := logger.New(logger.WithService("migrate"))
	var buf bytes.Buffer
	logr.Logrus().SetOutput(&buf)

	err := runGoose(context.Background(), nil, "sideways", logr)

	assert.EqualError(t, err, "unknown command: sideways")
	assert.Empty(t, buf.String())
}
