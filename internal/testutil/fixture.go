// Package testutil holds the registry document shared by package tests.
package testutil

// RegistryXML is a small registry exercising every construct the generator
// consumes: literal, bitpos, alias and offset constants, feature-level and
// extension enum extensions, a platform-guarded extension, a filtered
// extension, chainable and plain structs, and handles.
const RegistryXML = `<?xml version="1.0" encoding="UTF-8"?>
<registry>
  <platforms>
    <platform name="xlib" protect="VK_USE_PLATFORM_XLIB_KHR"/>
  </platforms>
  <types>
    <type category="handle" objtypeenum="VK_OBJECT_TYPE_INSTANCE"><type>VK_DEFINE_HANDLE</type>(<name>VkInstance</name>)</type>
    <type category="handle" objtypeenum="VK_OBJECT_TYPE_DEVICE"><type>VK_DEFINE_HANDLE</type>(<name>VkDevice</name>)</type>
    <type category="handle" name="VkDeviceAliasKHR" alias="VkDevice"/>
    <type category="struct" name="VkBaseInStructure">
      <member><type>VkStructureType</type> <name>sType</name></member>
    </type>
    <type category="struct" name="VkApplicationInfo">
      <member values="VK_STRUCTURE_TYPE_APPLICATION_INFO"><type>VkStructureType</type> <name>sType</name></member>
      <member>const <type>void</type>* <name>pNext</name></member>
    </type>
    <type category="struct" name="VkBindBufferMemoryInfo">
      <member values="VK_STRUCTURE_TYPE_BIND_BUFFER_MEMORY_INFO"><type>VkStructureType</type> <name>sType</name></member>
    </type>
    <type category="struct" name="VkExtent2D">
      <member><type>uint32_t</type> <name>width</name></member>
    </type>
    <type category="struct" name="VkXlibSurfaceCreateInfoKHR">
      <member values="VK_STRUCTURE_TYPE_XLIB_SURFACE_CREATE_INFO_KHR"><type>VkStructureType</type> <name>sType</name></member>
    </type>
    <type category="struct" name="VkDisabledInfoNV">
      <member values="VK_STRUCTURE_TYPE_DISABLED_INFO_NV"><type>VkStructureType</type> <name>sType</name></member>
    </type>
  </types>
  <enums name="API Constants">
    <enum type="uint32_t" value="256" name="VK_MAX_PHYSICAL_DEVICE_NAME_SIZE"/>
  </enums>
  <enums name="VkResult" type="enum">
    <enum value="0" name="VK_SUCCESS"/>
    <enum value="1" name="VK_NOT_READY"/>
    <enum value="-1" name="VK_ERROR_OUT_OF_HOST_MEMORY"/>
  </enums>
  <enums name="VkStructureType" type="enum">
    <enum value="0" name="VK_STRUCTURE_TYPE_APPLICATION_INFO"/>
    <enum value="47" name="VK_STRUCTURE_TYPE_LOADER_INSTANCE_CREATE_INFO"/>
    <enum value="48" name="VK_STRUCTURE_TYPE_LOADER_DEVICE_CREATE_INFO"/>
  </enums>
  <enums name="VkObjectType" type="enum">
    <enum value="0" name="VK_OBJECT_TYPE_UNKNOWN"/>
    <enum value="1" name="VK_OBJECT_TYPE_INSTANCE"/>
    <enum value="3" name="VK_OBJECT_TYPE_DEVICE"/>
  </enums>
  <enums name="VkXlibModeKHR" type="enum">
    <enum value="0" name="VK_XLIB_MODE_DEFAULT_KHR"/>
  </enums>
  <enums name="VkCullModeFlagBits" type="bitmask">
    <enum value="0" name="VK_CULL_MODE_NONE"/>
    <enum bitpos="0" name="VK_CULL_MODE_FRONT_BIT"/>
    <enum bitpos="1" name="VK_CULL_MODE_BACK_BIT"/>
    <enum value="0x00000003" name="VK_CULL_MODE_FRONT_AND_BACK"/>
  </enums>
  <enums name="VkFormatFeatureFlagBits" type="bitmask">
    <enum bitpos="0" name="VK_FORMAT_FEATURE_SAMPLED_IMAGE_BIT"/>
    <enum bitpos="1" name="VK_FORMAT_FEATURE_STORAGE_IMAGE_BIT"/>
  </enums>
  <enums name="VkAccessFlagBits2" type="bitmask" bitwidth="64">
    <enum value="0" name="VK_ACCESS_2_NONE"/>
    <enum bitpos="0" name="VK_ACCESS_2_INDIRECT_COMMAND_READ_BIT"/>
    <enum bitpos="40" name="VK_ACCESS_2_SHADER_SAMPLED_READ_BIT"/>
  </enums>
  <feature api="vulkan" name="VK_VERSION_1_1" number="1.1">
    <require>
      <enum extends="VkStructureType" extnumber="157" offset="0" name="VK_STRUCTURE_TYPE_BIND_BUFFER_MEMORY_INFO"/>
      <enum extends="VkResult" extnumber="70" offset="0" dir="-" name="VK_ERROR_OUT_OF_POOL_MEMORY"/>
      <type name="VkBindBufferMemoryInfo"/>
    </require>
  </feature>
  <feature api="vulkansc" name="VKSC_VERSION_1_0" number="1.0">
    <require>
      <enum extends="VkResult" extnumber="299" offset="0" dir="-" name="VK_ERROR_SC_ONLY"/>
    </require>
  </feature>
  <extensions>
    <extension name="VK_KHR_xlib_surface" number="5" platform="xlib" supported="vulkan">
      <require>
        <enum value="6" name="VK_KHR_XLIB_SURFACE_SPEC_VERSION"/>
        <enum offset="0" extends="VkStructureType" name="VK_STRUCTURE_TYPE_XLIB_SURFACE_CREATE_INFO_KHR"/>
        <type name="VkXlibSurfaceCreateInfoKHR"/>
        <type name="VkXlibModeKHR"/>
      </require>
    </extension>
    <extension name="VK_KHR_maintenance1" number="70" supported="vulkan,vulkansc">
      <require>
        <enum extends="VkResult" name="VK_ERROR_OUT_OF_POOL_MEMORY_KHR" alias="VK_ERROR_OUT_OF_POOL_MEMORY"/>
      </require>
    </extension>
    <extension name="VK_EXT_debug_report" number="12" supported="vulkan">
      <require>
        <enum offset="0" extends="VkDebugReportObjectTypeEXT" name="VK_DEBUG_REPORT_OBJECT_TYPE_UNKNOWN_EXT"/>
        <enum bitpos="3" extends="VkCullModeFlagBits" name="VK_CULL_MODE_EXTRA_BIT_EXT"/>
      </require>
    </extension>
    <extension name="VK_NV_disabled" number="99" supported="disabled">
      <require>
        <enum offset="0" extends="VkStructureType" name="VK_STRUCTURE_TYPE_DISABLED_INFO_NV"/>
        <type name="VkDisabledInfoNV"/>
      </require>
    </extension>
  </extensions>
</registry>
`
