package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/histcal/internal/domain"
)

func TestDateValue(t *testing.T) {
	var v dateValue
	assert.Equal(t, "date", v.Type())

	require.NoError(t, v.Set(" 2025-01-08 "))
	assert.Equal(t, "2025-01-08", v.String())

	assert.Error(t, v.Set("2025/01/08"))
	assert.Error(t, v.Set("2025-02-30"))
	assert.Equal(t, "2025-01-08", v.String(), "failed Set keeps the previous value")
}

func TestFormatValue(t *testing.T) {
	v := formatValue{format: domain.ExportXLSX}
	assert.Equal(t, "format", v.Type())
	assert.Equal(t, "xlsx", v.String())

	require.NoError(t, v.Set("ICS"))
	assert.Equal(t, domain.ExportICS, v.format)

	err := v.Set("pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"pdf"`)
	assert.Equal(t, domain.ExportICS, v.format)
}

func TestValidators(t *testing.T) {
	assert.NoError(t, validateOptionalDate(""))
	assert.NoError(t, validateOptionalDate("2025-01-01"))
	assert.Error(t, validateOptionalDate("Jan 1"))

	assert.NoError(t, validateDate("2025-01-01"))
	assert.Error(t, validateDate(""))

	assert.NoError(t, validateSlot("12"))
	assert.Error(t, validateSlot("0"))
	assert.Error(t, validateSlot("x"))

	assert.NoError(t, validateLayout("4x3"))
	assert.NoError(t, validateLayout("6X2"))
	assert.Error(t, validateLayout("4"))
	assert.Error(t, validateLayout("0x3"))
}
