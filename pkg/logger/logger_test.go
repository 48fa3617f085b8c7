package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mluiza/controle-materiais/pkg/logger"
)

func TestNew_ProductionEscribeJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Out: &buf})

	log.Info().Msg("descartado por nivel")
	log.Component("stock").Warn().Str("code", "CIM50").Msg("estoque crítico")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line), "una sola línea JSON: %s", buf.String())
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "stock", line["component"])
	assert.Equal(t, "CIM50", line["code"])
	assert.Equal(t, "estoque crítico", line["message"])
}

func TestNop_NoEscribe(t *testing.T) {
	assert.NotPanics(t, func() { logger.Nop().Error().Msg("nada") })
}
