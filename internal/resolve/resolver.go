package resolve

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"vkenum-generator/internal/diagnostic"
	"vkenum-generator/internal/naming"
	"vkenum-generator/internal/registry"
)

// Resolver performs the resolution pipeline over a merged registry.
type Resolver struct {
	reg    *registry.Registry
	config Config
	log    hclog.Logger
	ctx    *Context
	// owners maps struct names to the last supported extension requiring them.
	owners map[string]*Extension
}

// NewResolver creates a new Resolver.
func NewResolver(reg *registry.Registry, config Config) *Resolver {
	log := config.Logger
	if log == nil {
		log = hclog.NewNullLogger()
	}

	return &Resolver{
		reg:    reg,
		config: config,
		log:    log.Named("resolve"),
		ctx:    newContext(config),
		owners: make(map[string]*Extension),
	}
}

// Resolve runs the full resolution pipeline and returns the frozen Context.
func Resolve(reg *registry.Registry, config Config) (*Context, error) {
	return NewResolver(reg, config).Resolve()
}

// Resolve runs the full resolution pipeline and returns the frozen Context.
// Any returned error is fatal and no Context is produced.
func (r *Resolver) Resolve() (*Context, error) {
	for _, pass := range r.reg.Passes {
		if err := r.applyPass(pass); err != nil {
			return nil, err
		}
	}

	r.reportUnresolved(r.ctx.Enums)
	r.reportUnresolved(r.ctx.Bitmasks)

	if err := r.buildStructTable(); err != nil {
		return nil, err
	}

	if err := r.buildObjectTypeTable(); err != nil {
		return nil, err
	}

	r.log.Debug("registry resolved",
		"enums", r.ctx.Enums.Len(),
		"bitmasks", r.ctx.Bitmasks.Len(),
		"structs", r.ctx.Structs.Len(),
		"object_types", r.ctx.ObjectTypes.Len(),
		"warnings", len(r.ctx.Diagnostics.Warnings))

	return r.ctx, nil
}

// applyPass processes one document: its enum blocks, then its feature enum
// extensions, then its extensions.
func (r *Resolver) applyPass(pass *registry.Pass) error {
	if err := r.declareEnums(pass.Enums); err != nil {
		return err
	}

	for _, ee := range pass.FeatureEnums {
		if err := r.extendEnum(ee, ""); err != nil {
			return err
		}
	}

	for _, decl := range pass.Extensions {
		if err := r.applyExtension(decl); err != nil {
			return err
		}
	}

	return nil
}

func (r *Resolver) declareEnums(decls []*registry.EnumDecl) error {
	for _, decl := range decls {
		table := r.ctx.Enums
		if decl.Bitmask {
			table = r.ctx.Bitmasks
		}

		e := table.Declare(decl.Name, decl.BitWidth, naming.MaxEnumName(decl.Name, r.config.VendorTags))

		for _, c := range decl.Constants {
			if err := r.addConstant(e, c); err != nil {
				return err
			}
		}
	}

	return nil
}

func (r *Resolver) addConstant(e *Enum, c registry.Constant) error {
	src, err := SourceOf(c)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInconsistent, e.Name, err)
	}

	return e.AddValue(c.Name, src)
}

// extendEnum adds an enum extension to whichever table knows its base.
// Unknown bases are dropped so filtered registries still resolve.
func (r *Resolver) extendEnum(ee registry.EnumExtension, origin string) error {
	found := false

	for _, table := range []*EnumTable{r.ctx.Enums, r.ctx.Bitmasks} {
		e := table.Get(ee.Extends)
		if e == nil {
			continue
		}

		found = true

		if err := r.addConstant(e, ee.Constant); err != nil {
			return err
		}
	}

	if !found {
		r.log.Debug("dropping enum extension with unknown base",
			"enum", ee.Extends, "constant", ee.Constant.Name, "origin", origin)
		r.ctx.Diagnostics.AddInfo(diagnostic.CodeUnknownEnum,
			"base enumeration is not declared, constant dropped", ee.Extends, ee.Constant.Name)
	}

	return nil
}

func (r *Resolver) applyExtension(decl *registry.ExtensionDecl) error {
	ext := r.ctx.Extensions.Add(&Extension{
		Name:   decl.Name,
		Number: decl.Number,
		Guard:  decl.Guard,
	})

	for _, ee := range decl.Enums {
		if err := r.extendEnum(ee, decl.Name); err != nil {
			return err
		}
	}

	for _, typeName := range decl.Types {
		r.owners[typeName] = ext

		if ext.Guard == "" {
			continue
		}

		if e := r.ctx.Enum(typeName); e != nil {
			e.Guard = ext.Guard
		}
	}

	return nil
}

func (r *Resolver) reportUnresolved(table *EnumTable) {
	for _, e := range table.Sorted() {
		for _, alias := range e.Unresolved() {
			base, _ := e.PendingBase(alias)

			r.log.Warn("alias never resolved", "enum", e.Name, "alias", alias, "base", base)
			r.ctx.Diagnostics.AddWarning(diagnostic.CodeUnresolvedAlias,
				fmt.Sprintf("alias of undeclared constant %s", base), e.Name, alias)
		}
	}
}

func (r *Resolver) buildStructTable() error {
	stypes := r.ctx.Enums.Get(r.config.StructTypeEnum)

	for _, decl := range r.reg.Structs {
		if len(decl.Discriminants) == 0 {
			continue
		}

		s := &Struct{
			Name:      decl.Name,
			Extension: r.owners[decl.Name],
		}

		filtered := false

		for _, name := range decl.Discriminants {
			var (
				value int64
				ok    bool
			)

			if stypes != nil {
				value, ok = stypes.Value(name)
			}

			if !ok {
				if r.reg.IsFiltered(decl.Name) {
					filtered = true

					break
				}

				return fmt.Errorf("%w: struct %s: discriminant %s is not a %s value",
					ErrInconsistent, decl.Name, name, r.config.StructTypeEnum)
			}

			s.Discriminants = append(s.Discriminants, Discriminant{Name: name, Value: value})
		}

		if filtered {
			r.ctx.Diagnostics.AddInfo(diagnostic.CodeFilteredStruct,
				"struct only required by filtered extensions, excluded from size table", decl.Name, "")

			continue
		}

		if err := r.ctx.Structs.add(s); err != nil {
			return err
		}
	}

	return nil
}

func (r *Resolver) buildObjectTypeTable() error {
	if len(r.reg.Handles) == 0 {
		return nil
	}

	objTypes := r.ctx.Enums.Get(r.config.ObjectTypeEnum)

	for _, h := range r.reg.Handles {
		if h.ObjTypeEnum == "" {
			return fmt.Errorf("%w: handle %s has no object type", ErrInconsistent, h.Name)
		}

		var (
			value int64
			ok    bool
		)

		if objTypes != nil {
			value, ok = objTypes.Value(h.ObjTypeEnum)
		}

		if !ok {
			if r.reg.IsFiltered(h.Name) {
				r.log.Debug("dropping handle of filtered extension", "handle", h.Name, "object_type", h.ObjTypeEnum)
				r.ctx.Diagnostics.AddInfo(diagnostic.CodeFilteredHandle,
					"handle only required by filtered extensions, excluded from object names", h.Name, h.ObjTypeEnum)

				continue
			}

			return fmt.Errorf("%w: handle %s: object type %s is not a %s value",
				ErrInconsistent, h.Name, h.ObjTypeEnum, r.config.ObjectTypeEnum)
		}

		if cur, exists := r.ctx.ObjectTypes.byValue[value]; exists {
			r.ctx.Diagnostics.AddWarning(diagnostic.CodeDuplicateHandle,
				fmt.Sprintf("object type %s already names %s", h.ObjTypeEnum, cur), h.Name, h.ObjTypeEnum)

			continue
		}

		r.ctx.ObjectTypes.byValue[value] = h.Name
	}

	return nil
}
