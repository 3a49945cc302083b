package xcodeproj

import (
	"bytes"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/pkgproj/internal/model"
	"github.com/specialistvlad/pkgproj/internal/naming"
	"howett.net/plist"
)

const pbxprojHeader = "// !$*UTF8*$!\n"

// pbxObjects is the flat object table of a project descriptor, keyed by identifier.
type pbxObjects map[string]any

// encodePBXProj renders the project descriptor.
func encodePBXProj(p *project) ([]byte, error) {
	objs := pbxObjects{}

	mainGroup := objectID("group", "main")
	sourcesGroup := objectID("group", "sources")
	dependenciesGroup := objectID("group", "dependencies")
	productsGroup := objectID("group", "products")
	configsGroup := objectID("group", "configs")

	var mainChildren []string

	var xcconfigRef string
	if p.opts.XcconfigOverrides != "" {
		xcconfigRef = objectID("file", "xcconfig")
		objs[xcconfigRef] = map[string]any{
			"isa":               "PBXFileReference",
			"lastKnownFileType": "text.xcconfig",
			"name":              path.Base(filepath.ToSlash(p.opts.XcconfigOverrides)),
			"path":              p.opts.XcconfigOverrides,
			"sourceTree":        sourceTree(p.opts.XcconfigOverrides),
		}
		objs[configsGroup] = group("Configs", "", []string{xcconfigRef})
		mainChildren = append(mainChildren, configsGroup)
	}

	// Module groups, one per module, with a file reference per source.
	var rootGroups, externalGroups []string
	sourceRefs := make(map[string][]string, len(p.modules))
	for _, m := range p.modules {
		groupID := objectID("group", "module/"+m.Name)
		refs := make([]string, 0, len(m.Sources))
		for _, src := range m.Sources {
			ref := objectID("file", m.Name+"/"+src)
			objs[ref] = map[string]any{
				"isa":               "PBXFileReference",
				"lastKnownFileType": fileType(src),
				"path":              src,
				"sourceTree":        "<group>",
			}
			refs = append(refs, ref)
		}
		sourceRefs[m.Name] = refs
		objs[groupID] = group(m.Name, m.Path, refs)

		if p.external[m] {
			externalGroups = append(externalGroups, groupID)
		} else {
			rootGroups = append(rootGroups, groupID)
		}
	}
	objs[sourcesGroup] = group("Sources", "", rootGroups)
	mainChildren = append(mainChildren, sourcesGroup)
	if len(externalGroups) > 0 {
		objs[dependenciesGroup] = group("Dependencies", "", externalGroups)
		mainChildren = append(mainChildren, dependenciesGroup)
	}

	// Products: one per module target, then one per declared product.
	var productRefs []string
	for _, t := range p.targets {
		objs[t.productRef] = map[string]any{
			"isa":              "PBXFileReference",
			"explicitFileType": explicitFileType(t.product.Type()),
			"includeInIndex":   "0",
			"path":             t.buildableName(p.platform),
			"sourceTree":       "BUILT_PRODUCTS_DIR",
		}
		productRefs = append(productRefs, t.productRef)
	}
	for _, a := range p.aggregates {
		objs[a.productRef] = map[string]any{
			"isa":              "PBXFileReference",
			"explicitFileType": explicitFileType(a.product.Type()),
			"includeInIndex":   "0",
			"name":             naming.DisplayName(a.product, p.platform),
			"path":             naming.OutputPath(a.product, p.platform),
			"sourceTree":       "BUILT_PRODUCTS_DIR",
		}
		productRefs = append(productRefs, a.productRef)
	}
	objs[productsGroup] = group("Products", "", productRefs)
	mainChildren = append(mainChildren, productsGroup)

	objs[mainGroup] = group(p.name, "", mainChildren)

	// Targets.
	targetIDs := make([]string, 0, len(p.targets)+len(p.aggregates))
	for _, t := range p.targets {
		targetIDs = append(targetIDs, t.id)
		m := t.module

		buildFiles := make([]string, 0, len(sourceRefs[m.Name]))
		for i, ref := range sourceRefs[m.Name] {
			bf := objectID("buildfile", m.Name+"/"+m.Sources[i])
			objs[bf] = map[string]any{"isa": "PBXBuildFile", "fileRef": ref}
			buildFiles = append(buildFiles, bf)
		}
		sourcesPhase := objectID("phase", "sources/"+m.Name)
		objs[sourcesPhase] = buildPhase("PBXSourcesBuildPhase", buildFiles)

		var linkFiles, deps []string
		for _, depName := range m.Dependencies {
			dep, ok := p.byModule[depName]
			if !ok {
				continue
			}
			deps = append(deps, addTargetDependency(objs, p, "target/"+t.module.Name, dep.id, depName))
			if dep.product.Type().IsLibrary() {
				bf := objectID("linkfile", m.Name+"/"+depName)
				objs[bf] = map[string]any{"isa": "PBXBuildFile", "fileRef": dep.productRef}
				linkFiles = append(linkFiles, bf)
			}
		}
		frameworksPhase := objectID("phase", "frameworks/"+m.Name)
		objs[frameworksPhase] = buildPhase("PBXFrameworksBuildPhase", linkFiles)

		objs[t.id] = map[string]any{
			"isa":                    "PBXNativeTarget",
			"buildConfigurationList": t.configList,
			"buildPhases":            []string{sourcesPhase, frameworksPhase},
			"buildRules":             []string{},
			"dependencies":           nonNil(deps),
			"name":                   m.Name,
			"productName":            m.Name,
			"productReference":       t.productRef,
			"productType":            productType(t.product.Type()),
		}
		addConfigurationList(objs, t.configList, "target/"+m.Name, "", func(string) map[string]any {
			return targetSettings(p, t)
		})
	}

	for _, a := range p.aggregates {
		targetIDs = append(targetIDs, a.id)
		var deps []string
		for _, dep := range a.deps {
			deps = append(deps, addTargetDependency(objs, p, "aggregate/"+a.product.Name(), dep.id, dep.module.Name))
		}
		objs[a.id] = map[string]any{
			"isa":                    "PBXAggregateTarget",
			"buildConfigurationList": a.configList,
			"buildPhases":            []string{},
			"dependencies":           nonNil(deps),
			"name":                   a.product.Name(),
			"productName":            naming.DisplayName(a.product, p.platform),
		}
		addConfigurationList(objs, a.configList, "aggregate/"+a.product.Name(), "", func(string) map[string]any {
			return map[string]any{"PRODUCT_NAME": "$(TARGET_NAME)"}
		})
	}

	addConfigurationList(objs, p.configList, "project", xcconfigRef, func(config string) map[string]any {
		return projectSettings(p, config)
	})

	objs[p.id] = map[string]any{
		"isa":                    "PBXProject",
		"attributes":             map[string]any{"LastUpgradeCheck": "9999"},
		"buildConfigurationList": p.configList,
		"compatibilityVersion":   "Xcode 3.2",
		"developmentRegion":      "English",
		"hasScannedForEncodings": "0",
		"knownRegions":           []string{"en"},
		"mainGroup":              mainGroup,
		"productRefGroup":        productsGroup,
		"projectDirPath":         p.srcRoot,
		"projectRoot":            "",
		"targets":                targetIDs,
	}

	root := map[string]any{
		"archiveVersion": "1",
		"classes":        map[string]any{},
		"objectVersion":  "46",
		"objects":        map[string]any(objs),
		"rootObject":     p.id,
	}
	body, err := plist.MarshalIndent(root, plist.OpenStepFormat, "\t")
	if err != nil {
		return nil, fmt.Errorf("failed to encode project descriptor: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(len(pbxprojHeader) + len(body) + 1)
	buf.WriteString(pbxprojHeader)
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// addTargetDependency records that owner depends on the target dependencyID
// and returns the PBXTargetDependency identifier.
func addTargetDependency(objs pbxObjects, p *project, owner, dependencyID, dependencyName string) string {
	key := owner + "->" + dependencyName
	proxy := objectID("proxy", key)
	objs[proxy] = map[string]any{
		"isa":                  "PBXContainerItemProxy",
		"containerPortal":      p.id,
		"proxyType":            "1",
		"remoteGlobalIDString": dependencyID,
		"remoteInfo":           dependencyName,
	}
	dep := objectID("dependency", key)
	objs[dep] = map[string]any{
		"isa":         "PBXTargetDependency",
		"target":      dependencyID,
		"targetProxy": proxy,
	}
	return dep
}

func addConfigurationList(objs pbxObjects, listID, owner, baseRef string, settings func(config string) map[string]any) {
	ids := make([]string, 0, len(configurations))
	for _, name := range configurations {
		id := objectID("config", owner+"/"+name)
		cfg := map[string]any{
			"isa":           "XCBuildConfiguration",
			"buildSettings": settings(name),
			"name":          name,
		}
		if baseRef != "" {
			cfg["baseConfigurationReference"] = baseRef
		}
		objs[id] = cfg
		ids = append(ids, id)
	}
	objs[listID] = map[string]any{
		"isa":                           "XCConfigurationList",
		"buildConfigurations":           ids,
		"defaultConfigurationIsVisible": "0",
		"defaultConfigurationName":      configDebug,
	}
}

func projectSettings(p *project, config string) map[string]any {
	s := map[string]any{
		"COMBINE_HIDPI_IMAGES":     "YES",
		"DEBUG_INFORMATION_FORMAT": "dwarf",
		"MACOSX_DEPLOYMENT_TARGET": "10.10",
		"OTHER_CFLAGS":             inherited(p.opts.Xcc),
		"OTHER_LDFLAGS":            inherited(p.opts.Xld),
		"OTHER_SWIFT_FLAGS":        inherited(p.opts.Xswiftc),
		"SDKROOT":                  "macosx",
		"SUPPORTED_PLATFORMS":      "macosx",
		"USE_HEADERMAP":            "NO",
	}
	if includes := p.foreignIncludePaths(); len(includes) > 0 {
		s["SWIFT_INCLUDE_PATHS"] = inherited(includes)
	}
	if config == configDebug {
		s["ENABLE_TESTABILITY"] = "YES"
		s["ONLY_ACTIVE_ARCH"] = "YES"
		s["SWIFT_ACTIVE_COMPILATION_CONDITIONS"] = "DEBUG"
		s["SWIFT_OPTIMIZATION_LEVEL"] = "-Onone"
	} else {
		s["SWIFT_OPTIMIZATION_LEVEL"] = "-O"
	}
	return s
}

func targetSettings(p *project, t *target) map[string]any {
	s := map[string]any{
		"PRODUCT_MODULE_NAME": t.module.Name,
		"PRODUCT_NAME":        "$(TARGET_NAME)",
	}
	switch t.product.Type() {
	case model.DynamicLibrary:
		s["EXECUTABLE_PREFIX"] = "lib"
		s["EXECUTABLE_EXTENSION"] = naming.DynamicLibraryExtension(p.platform)
	case model.Test:
		s["LD_RUNPATH_SEARCH_PATHS"] = []string{"$(inherited)", "@loader_path/../Frameworks"}
		s["WRAPPER_EXTENSION"] = "xctest"
	case model.Executable:
		s["SWIFT_FORCE_STATIC_LINK_STDLIB"] = "NO"
	}
	return s
}

func group(name, dir string, children []string) map[string]any {
	g := map[string]any{
		"isa":        "PBXGroup",
		"children":   nonNil(children),
		"name":       name,
		"sourceTree": "<group>",
	}
	if dir != "" {
		g["path"] = dir
		g["sourceTree"] = sourceTree(dir)
	}
	return g
}

func buildPhase(isa string, files []string) map[string]any {
	return map[string]any{
		"isa":                                isa,
		"buildActionMask":                    "2147483647",
		"files":                              nonNil(files),
		"runOnlyForDeploymentPostprocessing": "0",
	}
}

func sourceTree(p string) string {
	if filepath.IsAbs(p) {
		return "<absolute>"
	}
	return "SOURCE_ROOT"
}

func inherited(values []string) []string {
	return append([]string{"$(inherited)"}, values...)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func productType(t model.ProductType) string {
	switch t {
	case model.Executable:
		return "com.apple.product-type.tool"
	case model.StaticLibrary:
		return "com.apple.product-type.library.static"
	case model.DynamicLibrary:
		return "com.apple.product-type.library.dynamic"
	case model.Test:
		return "com.apple.product-type.bundle.unit-test"
	default:
		panic(fmt.Sprintf("xcodeproj: unhandled product type %v", t))
	}
}

func explicitFileType(t model.ProductType) string {
	switch t {
	case model.Executable:
		return "compiled.mach-o.executable"
	case model.StaticLibrary:
		return "archive.ar"
	case model.DynamicLibrary:
		return "compiled.mach-o.dylib"
	case model.Test:
		return "wrapper.cfbundle"
	default:
		panic(fmt.Sprintf("xcodeproj: unhandled product type %v", t))
	}
}

func fileType(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".swift":
		return "sourcecode.swift"
	case ".c":
		return "sourcecode.c.c"
	case ".h":
		return "sourcecode.c.h"
	case ".m":
		return "sourcecode.c.objc"
	case ".mm":
		return "sourcecode.cpp.objcpp"
	case ".cc", ".cpp", ".cxx":
		return "sourcecode.cpp.cpp"
	case ".s":
		return "sourcecode.asm"
	case ".modulemap":
		return "sourcecode.module-map"
	default:
		return "text"
	}
}
