package gen

import "text/template"

const banner = `/* Code generated by vkenum-generator. DO NOT EDIT. */
`

var sourceTemplate = template.Must(template.New("source").Parse(banner + `
{{range .Includes}}#include {{.}}
{{end}}#include "{{.Header}}"
{{range .Enums}}
{{if .Guard}}#ifdef {{.Guard}}
{{end}}const char *
{{.Function}}({{.Name}} input)
{
    switch((int64_t)input) {
{{range .Cases}}    case {{.Label}}:
        return "{{.Result}}";
{{end}}    case {{.MaxEnumName}}: return "{{.MaxEnumName}}";
    default:
        return "Unknown {{.Name}} value.";
    }
}
{{if .Guard}}#endif
{{end}}{{end}}
size_t {{.StructSize.Function}}(const struct {{.StructSize.BaseStruct}} *item)
{
    switch((int)item->{{.StructSize.Member}}) {
{{range .StructSize.Cases}}{{if .Guard}}#ifdef {{.Guard}}
{{end}}{{$struct := .Struct}}{{range .Labels}}    case {{.}}: return sizeof({{$struct}});
{{end}}{{if .Guard}}#endif
{{end}}{{end}}    default:
        unreachable("Undefined struct type.");
    }
}

const char *
{{.Objects.Function}}({{.Objects.Enum}} type)
{
    switch((int)type) {
{{range .Objects.Cases}}    case {{.Label}}:
        return "{{.Result}}";
{{end}}    default:
        return "Unknown {{.Objects.Enum}} value.";
    }
}
`))

var headerTemplate = template.Must(template.New("header").Parse(banner + `
#ifndef {{.HeaderGuard}}
#define {{.HeaderGuard}}

{{range .HeaderIncludes}}#include {{.}}
{{end}}
#ifdef __cplusplus
extern "C" {
#endif

{{range .Enums}}{{if .Guard}}#ifdef {{.Guard}}
{{end}}const char * {{.Function}}({{.Name}} input);
{{if .Guard}}#endif
{{end}}{{end}}
size_t {{.StructSize.Function}}(const struct {{.StructSize.BaseStruct}} *item);

const char * {{.Objects.Function}}({{.Objects.Enum}} type);

#ifdef __cplusplus
} /* extern "C" */
#endif

#endif /* {{.HeaderGuard}} */
`))

var definesTemplate = template.Must(template.New("defines").Parse(banner + `
#ifndef {{.DefinesGuard}}
#define {{.DefinesGuard}}

{{range .HeaderIncludes}}#include {{.}}
{{end}}
#ifdef __cplusplus
extern "C" {
#endif

{{range .Extensions}}#define _{{.Name}}_number ({{.Number}})
{{end}}
{{range .AllBits}}{{if .Guard}}#ifdef {{.Guard}}
{{end}}#define {{.Name}} {{.Value}}
{{if .Guard}}#endif
{{end}}{{end}}
{{range .Redefines}}/* Redefine bitmask values of {{.Enum}} */
{{if .Guard}}#ifdef {{.Guard}}
{{end}}{{range .Constants}}#define {{.Name}} ({{.Value}})
{{end}}{{if .Guard}}#endif
{{end}}
{{end}}{{range .Narrowing}}{{if .Guard}}#ifdef {{.Guard}}
{{end}}static inline {{.Result}}
{{.Function}}({{.ParamType}} {{.Param}})
{
   return {{.Param}} & {{.Mask}};
}
{{if .Guard}}#endif
{{end}}
{{end}}#ifdef __cplusplus
} /* extern "C" */
#endif

#endif /* {{.DefinesGuard}} */
`))
