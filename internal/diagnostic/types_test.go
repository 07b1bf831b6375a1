package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Collect(t *testing.T) {
	var d Diagnostics

	d.AddInfo(CodeUnknownEnum, "base enumeration not declared", "VkFooEXT", "VK_FOO_BAR_EXT")
	d.AddInfo(CodeFilteredHandle, "handle only required by filtered extensions", "VkSciPoolNV", "")
	d.AddWarning(CodeUnresolvedAlias, "alias never resolved", "VkResult", "VK_ERROR_X")

	require.Len(t, d.ByCode(CodeUnknownEnum), 1)
	assert.Equal(t, SeverityInfo, d.ByCode(CodeUnknownEnum)[0].Severity)
	assert.Equal(t, "VkSciPoolNV", d.ByCode(CodeFilteredHandle)[0].Subject)
	assert.Equal(t, SeverityWarning, d.ByCode(CodeUnresolvedAlias)[0].Severity)
	assert.Empty(t, d.ByCode(CodeFilteredStruct))
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics

	a.AddInfo("x", "one", "", "")
	b.AddWarning("y", "two", "", "")
	b.AddInfo("z", "three", "", "")

	a.Merge(b)

	assert.Len(t, a.Infos, 2)
	assert.Len(t, a.Warnings, 1)
	assert.Len(t, b.Infos, 1)
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{Code: "c", Message: "msg", Subject: "VkResult", Item: "VK_SUCCESS"}
	assert.Equal(t, "[VkResult] VK_SUCCESS: [c] msg", d.String())
	assert.Equal(t, "msg", Diagnostic{Message: "msg"}.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
