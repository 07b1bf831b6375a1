// Package config loads the YAML generator configuration.
//
// Every field is optional; omitted fields take the stock Vulkan values of
// Default. List fields that are omitted keep their default entries, while an
// explicit empty list disables them:
//
//	api: vulkan
//	vendor_tags: [AMD, EXT, INTEL, KHR, NV, LUNARG]
//	header_guard_prefix: MESA
//	extra_struct_sizes: []        # no loader entries
//	outputs:
//	  source: vk_enum_to_str.c
package config
