package resolve

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vkenum-generator/internal/diagnostic"
	"vkenum-generator/internal/testutil"
)

func resolveFixture(t *testing.T) *Context {
	t.Helper()

	ctx, err := Resolve(loadRegistry(t, testutil.RegistryXML), DefaultConfig())
	require.NoError(t, err)

	return ctx
}

func TestResolve_ExtensionOffsets(t *testing.T) {
	ctx := resolveFixture(t)

	stypes := ctx.Enums.Get("VkStructureType")
	require.NotNil(t, stypes)

	v, ok := stypes.Value("VK_STRUCTURE_TYPE_BIND_BUFFER_MEMORY_INFO")
	require.True(t, ok)
	assert.Equal(t, int64(1000156000), v)

	v, ok = stypes.Value("VK_STRUCTURE_TYPE_XLIB_SURFACE_CREATE_INFO_KHR")
	require.True(t, ok)
	assert.Equal(t, int64(1000004000), v)

	_, ok = stypes.Value("VK_STRUCTURE_TYPE_DISABLED_INFO_NV")
	assert.False(t, ok, "constants of unsupported extensions are not merged")
}

func TestResolve_NegativeOffsetAndAlias(t *testing.T) {
	ctx := resolveFixture(t)

	results := ctx.Enums.Get("VkResult")
	require.NotNil(t, results)

	v, ok := results.Value("VK_ERROR_OUT_OF_POOL_MEMORY")
	require.True(t, ok)
	assert.Equal(t, int64(-1000069000), v)

	v, ok = results.Value("VK_ERROR_OUT_OF_POOL_MEMORY_KHR")
	require.True(t, ok)
	assert.Equal(t, int64(-1000069000), v)

	name, _ := results.CanonicalName(-1000069000)
	assert.Equal(t, "VK_ERROR_OUT_OF_POOL_MEMORY", name)

	_, ok = results.Value("VK_ERROR_SC_ONLY")
	assert.False(t, ok, "features of other APIs are skipped")

	assert.Equal(t, "VK_RESULT_MAX_ENUM", results.MaxEnumName)
}

func TestResolve_Bitmasks(t *testing.T) {
	ctx := resolveFixture(t)

	cull := ctx.Bitmasks.Get("VkCullModeFlagBits")
	require.NotNil(t, cull)
	assert.Equal(t, uint64(0xb), cull.AllBits())
	assert.Nil(t, ctx.Enums.Get("VkCullModeFlagBits"))

	access := ctx.Bitmasks.Get("VkAccessFlagBits2")
	require.NotNil(t, access)
	assert.Equal(t, 64, access.BitWidth)

	v, ok := access.Value("VK_ACCESS_2_SHADER_SAMPLED_READ_BIT")
	require.True(t, ok)
	assert.Equal(t, int64(1)<<40, v)
}

func TestResolve_UnknownBaseDropped(t *testing.T) {
	ctx := resolveFixture(t)

	assert.Nil(t, ctx.Enum("VkDebugReportObjectTypeEXT"))

	infos := ctx.Diagnostics.ByCode(diagnostic.CodeUnknownEnum)
	require.Len(t, infos, 1)
	assert.Equal(t, "VkDebugReportObjectTypeEXT", infos[0].Subject)
	assert.Equal(t, "VK_DEBUG_REPORT_OBJECT_TYPE_UNKNOWN_EXT", infos[0].Item)
}

func TestResolve_Extensions(t *testing.T) {
	ctx := resolveFixture(t)

	names := make([]string, 0)
	for _, ext := range ctx.Extensions.Sorted() {
		names = append(names, ext.Name)
	}

	assert.Equal(t, []string{"VK_EXT_debug_report", "VK_KHR_maintenance1", "VK_KHR_xlib_surface"}, names)

	xlib := ctx.Extensions.Get("VK_KHR_xlib_surface")
	require.NotNil(t, xlib)
	assert.Equal(t, int64(5), xlib.Number)
	assert.Equal(t, "VK_USE_PLATFORM_XLIB_KHR", xlib.Guard)

	mode := ctx.Enums.Get("VkXlibModeKHR")
	require.NotNil(t, mode)
	assert.Equal(t, "VK_USE_PLATFORM_XLIB_KHR", mode.Guard)
	assert.Empty(t, ctx.Enums.Get("VkResult").Guard)
}

func TestResolve_Structs(t *testing.T) {
	ctx := resolveFixture(t)

	names := make([]string, 0)
	for _, s := range ctx.Structs.Sorted() {
		names = append(names, s.Name)
	}

	assert.Equal(t, []string{"VkApplicationInfo", "VkBindBufferMemoryInfo", "VkXlibSurfaceCreateInfoKHR"}, names)

	xlib := ctx.Structs.Get("VkXlibSurfaceCreateInfoKHR")
	require.NotNil(t, xlib)
	assert.Equal(t, "VK_USE_PLATFORM_XLIB_KHR", xlib.Guard())
	assert.Equal(t, []Discriminant{{Name: "VK_STRUCTURE_TYPE_XLIB_SURFACE_CREATE_INFO_KHR", Value: 1000004000}}, xlib.Discriminants)

	assert.Empty(t, ctx.Structs.Get("VkApplicationInfo").Guard())

	owner, ok := ctx.Structs.Owner(1000156000)
	require.True(t, ok)
	assert.Equal(t, "VkBindBufferMemoryInfo", owner)

	filtered := ctx.Diagnostics.ByCode(diagnostic.CodeFilteredStruct)
	require.Len(t, filtered, 1)
	assert.Equal(t, "VkDisabledInfoNV", filtered[0].Subject)
}

func TestResolve_ObjectTypes(t *testing.T) {
	ctx := resolveFixture(t)

	assert.Equal(t, []ObjectType{
		{Value: 1, Name: "VkInstance"},
		{Value: 3, Name: "VkDevice"},
	}, ctx.ObjectTypes.Entries())

	_, ok := ctx.ObjectTypes.Name(0)
	assert.False(t, ok)
}

func TestResolve_UnresolvedAliasIsWarning(t *testing.T) {
	const doc = `<registry>
  <enums name="VkResult" type="enum">
    <enum value="0" name="VK_SUCCESS"/>
    <enum name="VK_SUCCESS_KHR" alias="VK_SUCCEEDED"/>
  </enums>
</registry>`

	var buf bytes.Buffer

	cfg := DefaultConfig()
	cfg.Logger = hclog.New(&hclog.LoggerOptions{Output: &buf, Level: hclog.Warn})

	ctx, err := Resolve(loadRegistry(t, doc), cfg)
	require.NoError(t, err)

	warnings := ctx.Diagnostics.ByCode(diagnostic.CodeUnresolvedAlias)
	require.Len(t, warnings, 1)
	assert.Equal(t, "VK_SUCCESS_KHR", warnings[0].Item)
	assert.Contains(t, buf.String(), "alias never resolved")

	assert.Equal(t, []NamedValue{{Name: "VK_SUCCESS", Value: 0}}, ctx.Enums.Get("VkResult").Values())
}

func TestResolve_MergesAcrossDocuments(t *testing.T) {
	const extra = `<registry>
  <enums name="VkResult" type="enum">
    <enum value="2" name="VK_TIMEOUT"/>
  </enums>
  <extensions>
    <extension name="VK_KHR_video_queue" number="24" supported="vulkan">
      <require>
        <enum offset="1" dir="-" extends="VkResult" name="VK_ERROR_VIDEO_KHR"/>
      </require>
    </extension>
  </extensions>
</registry>`

	ctx, err := Resolve(loadRegistry(t, testutil.RegistryXML, extra), DefaultConfig())
	require.NoError(t, err)

	results := ctx.Enums.Get("VkResult")

	v, ok := results.Value("VK_TIMEOUT")
	require.True(t, ok)
	assert.Equal(t, int64(2), v)

	v, ok = results.Value("VK_ERROR_VIDEO_KHR")
	require.True(t, ok)
	assert.Equal(t, int64(-1000023001), v)
}

func TestResolve_DocumentsProcessedInTurn(t *testing.T) {
	const first = `<registry>
  <enums name="VkFoo" type="enum"><enum value="0" name="VK_FOO_ZERO"/></enums>
  <enums name="VkBarFlagBits2" type="bitmask" bitwidth="64"><enum bitpos="0" name="VK_BAR_2_A_BIT"/></enums>
  <extensions>
    <extension name="VK_KHR_foo" number="1" supported="vulkan">
      <require>
        <enum value="7" extends="VkFoo" name="VK_FOO_SEVEN_X"/>
        <enum bitpos="2" extends="VkBarFlagBits2" name="VK_BAR_2_C_BIT"/>
      </require>
    </extension>
  </extensions>
</registry>`

	const second = `<registry>
  <enums name="VkFoo" type="enum"><enum value="7" name="VK_FOO_SEVEN_Y"/></enums>
  <enums name="VkBarFlagBits2" type="bitmask" bitwidth="64"><enum bitpos="1" name="VK_BAR_2_B_BIT"/></enums>
</registry>`

	ctx, err := Resolve(loadRegistry(t, first, second), DefaultConfig())
	require.NoError(t, err)

	name, ok := ctx.Enums.Get("VkFoo").CanonicalName(7)
	require.True(t, ok)
	assert.Equal(t, "VK_FOO_SEVEN_X", name, "the first document's extension is seen before the second document's blocks")

	assert.Equal(t, []NamedValue{
		{Name: "VK_BAR_2_A_BIT", Value: 1},
		{Name: "VK_BAR_2_C_BIT", Value: 4},
		{Name: "VK_BAR_2_B_BIT", Value: 2},
	}, ctx.Bitmasks.Get("VkBarFlagBits2").Constants())
}

func TestResolve_FatalErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name: "conflicting redeclaration",
			doc: `<registry>
  <enums name="VkResult" type="enum">
    <enum value="0" name="VK_SUCCESS"/>
  </enums>
  <extensions>
    <extension name="VK_KHR_a" number="1" supported="vulkan">
      <require><enum value="1" extends="VkResult" name="VK_SUCCESS"/></require>
    </extension>
  </extensions>
</registry>`,
			wantErr: "VkResult.VK_SUCCESS redeclared",
		},
		{
			name: "unresolved discriminant",
			doc: `<registry>
  <types>
    <type category="struct" name="VkFoo">
      <member values="VK_STRUCTURE_TYPE_FOO"><type>VkStructureType</type> <name>sType</name></member>
    </type>
  </types>
  <enums name="VkStructureType" type="enum">
    <enum value="0" name="VK_STRUCTURE_TYPE_APPLICATION_INFO"/>
  </enums>
</registry>`,
			wantErr: "discriminant VK_STRUCTURE_TYPE_FOO",
		},
		{
			name: "duplicate discriminant",
			doc: `<registry>
  <types>
    <type category="struct" name="VkFoo">
      <member values="VK_STRUCTURE_TYPE_A"><type>VkStructureType</type> <name>sType</name></member>
    </type>
    <type category="struct" name="VkBar">
      <member values="VK_STRUCTURE_TYPE_A_ALIAS"><type>VkStructureType</type> <name>sType</name></member>
    </type>
  </types>
  <enums name="VkStructureType" type="enum">
    <enum value="0" name="VK_STRUCTURE_TYPE_A"/>
    <enum name="VK_STRUCTURE_TYPE_A_ALIAS" alias="VK_STRUCTURE_TYPE_A"/>
  </enums>
</registry>`,
			wantErr: "already used by",
		},
		{
			name: "handle without object type",
			doc: `<registry>
  <types>
    <type category="handle"><type>VK_DEFINE_HANDLE</type>(<name>VkInstance</name>)</type>
  </types>
  <enums name="VkObjectType" type="enum">
    <enum value="1" name="VK_OBJECT_TYPE_INSTANCE"/>
  </enums>
</registry>`,
			wantErr: "handle VkInstance has no object type",
		},
		{
			name: "handle with unknown object type",
			doc: `<registry>
  <types>
    <type category="handle" objtypeenum="VK_OBJECT_TYPE_QUEUE"><type>VK_DEFINE_HANDLE</type>(<name>VkQueue</name>)</type>
  </types>
  <enums name="VkObjectType" type="enum">
    <enum value="1" name="VK_OBJECT_TYPE_INSTANCE"/>
  </enums>
</registry>`,
			wantErr: "object type VK_OBJECT_TYPE_QUEUE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := Resolve(loadRegistry(t, tt.doc), DefaultConfig())
			require.ErrorIs(t, err, ErrInconsistent)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Nil(t, ctx)
		})
	}
}

func TestResolve_DuplicateHandleValueWarns(t *testing.T) {
	const doc = `<registry>
  <types>
    <type category="handle" objtypeenum="VK_OBJECT_TYPE_DEVICE"><type>VK_DEFINE_HANDLE</type>(<name>VkDevice</name>)</type>
    <type category="handle" objtypeenum="VK_OBJECT_TYPE_DEVICE_KHR"><type>VK_DEFINE_HANDLE</type>(<name>VkDeviceKHR</name>)</type>
  </types>
  <enums name="VkObjectType" type="enum">
    <enum value="3" name="VK_OBJECT_TYPE_DEVICE"/>
    <enum name="VK_OBJECT_TYPE_DEVICE_KHR" alias="VK_OBJECT_TYPE_DEVICE"/>
  </enums>
</registry>`

	ctx, err := Resolve(loadRegistry(t, doc), DefaultConfig())
	require.NoError(t, err)

	name, ok := ctx.ObjectTypes.Name(3)
	require.True(t, ok)
	assert.Equal(t, "VkDevice", name)
	assert.Len(t, ctx.Diagnostics.ByCode(diagnostic.CodeDuplicateHandle), 1)
}

func TestResolve_FilteredHandleExcluded(t *testing.T) {
	const doc = `<registry>
  <types>
    <type category="handle" objtypeenum="VK_OBJECT_TYPE_INSTANCE"><type>VK_DEFINE_HANDLE</type>(<name>VkInstance</name>)</type>
    <type category="handle" objtypeenum="VK_OBJECT_TYPE_SCI_POOL_NV"><type>VK_DEFINE_NON_DISPATCHABLE_HANDLE</type>(<name>VkSciPoolNV</name>)</type>
    <type category="struct" name="VkSciInfoNV">
      <member values="VK_STRUCTURE_TYPE_SCI_INFO_NV"><type>VkStructureType</type> <name>sType</name></member>
    </type>
  </types>
  <enums name="VkStructureType" type="enum">
    <enum value="0" name="VK_STRUCTURE_TYPE_APPLICATION_INFO"/>
  </enums>
  <enums name="VkObjectType" type="enum">
    <enum value="1" name="VK_OBJECT_TYPE_INSTANCE"/>
  </enums>
  <extensions>
    <extension name="VK_NV_sci_pool" number="490" supported="vulkansc">
      <require>
        <enum offset="0" extends="VkObjectType" name="VK_OBJECT_TYPE_SCI_POOL_NV"/>
        <enum offset="0" extends="VkStructureType" name="VK_STRUCTURE_TYPE_SCI_INFO_NV"/>
        <type name="VkSciPoolNV"/>
        <type name="VkSciInfoNV"/>
      </require>
    </extension>
  </extensions>
</registry>`

	ctx, err := Resolve(loadRegistry(t, doc), DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, []ObjectType{{Value: 1, Name: "VkInstance"}}, ctx.ObjectTypes.Entries())
	assert.Nil(t, ctx.Structs.Get("VkSciInfoNV"))

	handles := ctx.Diagnostics.ByCode(diagnostic.CodeFilteredHandle)
	require.Len(t, handles, 1)
	assert.Equal(t, "VkSciPoolNV", handles[0].Subject)
	assert.Equal(t, "VK_OBJECT_TYPE_SCI_POOL_NV", handles[0].Item)
	assert.Len(t, ctx.Diagnostics.ByCode(diagnostic.CodeFilteredStruct), 1)
}

func TestResolve_NoHandlesNoObjectTable(t *testing.T) {
	const doc = `<registry>
  <enums name="VkResult" type="enum">
    <enum value="0" name="VK_SUCCESS"/>
  </enums>
</registry>`

	ctx, err := Resolve(loadRegistry(t, doc), DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 0, ctx.ObjectTypes.Len())
	assert.Equal(t, 0, ctx.Structs.Len())
}
