// Package registry loads API registry documents (the vk.xml schema family)
// and merges them into one set of raw, unresolved records.
//
// The registry schema is fixed and narrow; only the elements the generator
// consumes are modelled:
//
//	<registry>
//	  <platforms><platform name="xlib" protect="VK_USE_PLATFORM_XLIB_KHR"/></platforms>
//	  <types>
//	    <type category="struct" name="VkFooInfo">
//	      <member values="VK_STRUCTURE_TYPE_FOO_INFO"><type>VkStructureType</type> <name>sType</name></member>
//	    </type>
//	    <type category="handle" objtypeenum="VK_OBJECT_TYPE_DEVICE">(<name>VkDevice</name>)</type>
//	  </types>
//	  <enums name="VkResult" type="enum"><enum value="0" name="VK_SUCCESS"/></enums>
//	  <feature api="vulkan" name="VK_VERSION_1_1"><require>...</require></feature>
//	  <extensions><extension name="VK_KHR_surface" number="1" supported="vulkan">...</extension></extensions>
//	</registry>
//
// # Merging
//
// Several documents may be loaded together (core registry plus vendor
// fragments). Entries are merged by name and the union is idempotent:
//   - enumerations: the first declaration fixes kind and bit width, constants
//     from every document are appended in document order
//   - extensions, platforms, structs and handles: the first declaration wins
//   - feature blocks are appended in document order
//
// Features, extensions and require blocks that do not target the configured
// API are skipped. Types only required by skipped extensions are reported in
// Registry.FilteredTypes.
//
// Every failure to read or interpret a document wraps ErrMalformed.
package registry
