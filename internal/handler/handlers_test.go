package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/skillfade/internal/config"
	"github.com/MKhiriev/skillfade/internal/logger"
	"github.com/MKhiriev/skillfade/internal/service"
)

func TestNewHandlers_HTTPEnabled(t *testing.T) {
	handlers, err := NewHandlers(&service.Services{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, handlers.HTTP)
}

func TestNewHandlers_NoAddressConfigured(t *testing.T) {
	handlers, err := NewHandlers(&service.Services{}, config.Server{}, logger.Nop())

	assert.Nil(t, handlers)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
