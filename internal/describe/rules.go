package describe

import (
	"fmt"
	"strings"

	"github.com/temirov/annotree/internal/utils"
)

const (
	clientApplicationMarker = "apps/client"
	adminApplicationMarker  = "apps/admin"
	sharedPackageMarker     = "packages/shared"
	prerenderPluginMarker   = "vite-plugin-prerender"
	functionsRootPrefix     = "functions/"

	clientLabel = "client"
	adminLabel  = "admin"
	sharedLabel = "shared"

	declarationSuffix = ".d.ts"
	dotfilePrefix     = "."
	sceneMarker       = "Scene"

	packageManifestName = "package.json"
	packageLockName     = "package-lock.json"
	compilerConfigStem  = "tsconfig"
)

const (
	imageTemplate          = "Static image asset '%s' used by the %s application for visual presentation. It is bundled with the project's assets for runtime use."
	animationTemplate      = "Animated image asset '%s' that provides motion graphics for the client experience. It loads directly from the assets folder."
	stylesheetTemplate     = "CSS stylesheet defining the look and feel for the %s component or layout in the %s app. It captures theme and layout rules consumed by the Vue components."
	vueComponentTemplate   = "Vue 3 single-file component implementing the %s interface in the %s application. It encapsulates template, script, and style logic for that feature."
	jsxComponentTemplate   = "TypeScript JSX component implementing the %s view logic within the admin tools. It combines strongly typed React-style code to support the surrounding Vue integration."
	storeTemplate          = "TypeScript Pinia store module managing %s state for the %s app. It centralizes reactive data and actions for related features."
	routerTemplate         = "TypeScript router logic configuring navigation for the %s application. It defines routes and guards to control page access."
	serviceTemplate        = "TypeScript service module providing %s operations for the client app. It wraps Firebase or API calls for reuse across components."
	utilityTemplate        = "TypeScript utility module supplying %s helpers. It offers reusable logic shared across the codebase."
	sceneTemplate          = "TypeScript scene implementation powering the %s mini-game using Phaser. It contains the game loop, assets, and gameplay logic for that experience."
	componentTemplate      = "TypeScript helper for the %s component. It supports the surrounding Vue component with strongly typed logic."
	typeDefinitionTemplate = "TypeScript type definitions for %s data structures. They ensure consistent typing across the project."
	apiTemplate            = "TypeScript API helper exposing %s operations for shared consumption. It abstracts Firestore or HTTP calls behind a simple interface."
	functionsTemplate      = "TypeScript source file for Firebase Functions handling %s behavior. It executes backend logic when deployed to Cloud Functions."
	typeScriptTemplate     = "General TypeScript module related to %s functionality. It contributes typed logic to the project."
	declarationTemplate    = "TypeScript declaration file describing the interfaces for %s. It allows TypeScript-aware tooling to understand the module's types."
	manifestTemplate       = "Package manifest for the %s, listing dependencies, scripts, and metadata. It is consumed by npm during installs and builds."
	packageLockTemplate    = "Lockfile preserving resolved dependency versions for the %s. It ensures repeatable installs for collaborators."
	compilerConfigTemplate = "TypeScript configuration file %s that tunes compiler options for its workspace. It directs how TypeScript sources are transpiled."
	jsonTemplate           = "JSON data file '%s' providing configuration or structured content for the project. It is read at build or runtime as needed."
	lockfileDescription    = "Lockfile preserving resolved dependency versions for npm installs. It ensures repeatable builds for this workspace."
	javaScriptTemplate     = "JavaScript module implementing %s functionality. It can run in Node.js as part of build or tooling scripts."
	textTemplate           = "Plain text file '%s' capturing notes or structured references for the project. It assists contributors with supplemental information."
	archiveTemplate        = "Tarball archive '%s' containing a packaged distribution. It can be used to install the module without fetching from npm."
	dotfileTemplate        = "Configuration or metadata file '%s' supporting tooling in the repository. It customizes behavior for this project."
	fallbackTemplate       = "File '%s' contributing to the project. It should be consulted within its directory for specific usage."
)

var imageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".svg":  {},
	".ico":  {},
}

// fileContext carries the facts about one file that rules dispatch on.
type fileContext struct {
	fullPath  string
	fileName  string
	lowerName string
	stem      string
	extension string
}

func newFileContext(fullPath string, fileName string) fileContext {
	stem, extension := splitExtension(fileName)
	return fileContext{
		fullPath:  fullPath,
		fileName:  fileName,
		lowerName: strings.ToLower(fileName),
		stem:      stem,
		extension: strings.ToLower(extension),
	}
}

// humanizedStem is the humanized file name without its extension.
func (file fileContext) humanizedStem() string {
	return utils.Humanize(file.stem)
}

func (file fileContext) within(marker string) bool {
	return strings.Contains(file.fullPath, marker)
}

// fileRule pairs a predicate with the sentence it produces. Rules are
// evaluated in order and the first match wins.
type fileRule struct {
	name     string
	matches  func(file fileContext) bool
	describe func(file fileContext) string
}

func hasExtension(extensions ...string) func(file fileContext) bool {
	return func(file fileContext) bool {
		for _, extension := range extensions {
			if file.extension == extension {
				return true
			}
		}
		return false
	}
}

func always(fileContext) bool { return true }

// extensionRules lists every rule that follows the curated override, in precedence order.
var extensionRules = []fileRule{
	{
		name: "image",
		matches: func(file fileContext) bool {
			_, isImage := imageExtensions[file.extension]
			return isImage
		},
		describe: func(file fileContext) string {
			return fmt.Sprintf(imageTemplate, file.fileName, imageApplicationLabel(file))
		},
	},
	{
		name:    "animation",
		matches: hasExtension(".gif"),
		describe: func(file fileContext) string {
			return fmt.Sprintf(animationTemplate, file.fileName)
		},
	},
	{
		name:    "stylesheet",
		matches: hasExtension(".css"),
		describe: func(file fileContext) string {
			return fmt.Sprintf(stylesheetTemplate, file.humanizedStem(), adminOrClientLabel(file))
		},
	},
	{
		name:    "vue component",
		matches: hasExtension(".vue"),
		describe: func(file fileContext) string {
			return fmt.Sprintf(vueComponentTemplate, file.humanizedStem(), adminOrClientLabel(file))
		},
	},
	{
		name:    "jsx component",
		matches: hasExtension(".tsx"),
		describe: func(file fileContext) string {
			return fmt.Sprintf(jsxComponentTemplate, file.humanizedStem())
		},
	},
	{
		name: "typescript",
		matches: func(file fileContext) bool {
			return file.extension == ".ts" && !strings.HasSuffix(file.lowerName, declarationSuffix)
		},
		describe: describeTypeScript,
	},
	{
		name: "declaration",
		matches: func(file fileContext) bool {
			return strings.HasSuffix(file.lowerName, declarationSuffix)
		},
		describe: func(file fileContext) string {
			declarationStem, _ := splitExtension(file.stem)
			return fmt.Sprintf(declarationTemplate, strings.ToLower(utils.Humanize(declarationStem)))
		},
	},
	{
		name:     "json",
		matches:  hasExtension(".json"),
		describe: describeJSON,
	},
	{
		name:    "lockfile",
		matches: hasExtension(".lock"),
		describe: func(fileContext) string {
			return lockfileDescription
		},
	},
	{
		name:    "javascript",
		matches: hasExtension(".js"),
		describe: func(file fileContext) string {
			return fmt.Sprintf(javaScriptTemplate, strings.ToLower(file.humanizedStem()))
		},
	},
	{
		name:    "text",
		matches: hasExtension(".txt"),
		describe: func(file fileContext) string {
			return fmt.Sprintf(textTemplate, file.fileName)
		},
	},
	{
		name:    "archive",
		matches: hasExtension(".tgz"),
		describe: func(file fileContext) string {
			return fmt.Sprintf(archiveTemplate, file.fileName)
		},
	},
	{
		name: "dotfile",
		matches: func(file fileContext) bool {
			return strings.HasPrefix(file.fileName, dotfilePrefix)
		},
		describe: func(file fileContext) string {
			return fmt.Sprintf(dotfileTemplate, file.fileName)
		},
	},
	{
		name:    "fallback",
		matches: always,
		describe: func(file fileContext) string {
			return fmt.Sprintf(fallbackTemplate, file.fileName)
		},
	},
}

// typeScriptContextRules refine TypeScript descriptions by the directory the file lives in.
var typeScriptContextRules = []fileRule{
	{
		name:    "store",
		matches: func(file fileContext) bool { return file.within("/stores/") },
		describe: func(file fileContext) string {
			return fmt.Sprintf(storeTemplate, strings.ToLower(file.humanizedStem()), adminOrClientLabel(file))
		},
	},
	{
		name:    "router",
		matches: func(file fileContext) bool { return file.within("/router/") },
		describe: func(file fileContext) string {
			return fmt.Sprintf(routerTemplate, adminOrClientLabel(file))
		},
	},
	{
		name:    "service",
		matches: func(file fileContext) bool { return file.within("/services/") },
		describe: func(file fileContext) string {
			return fmt.Sprintf(serviceTemplate, strings.ToLower(file.humanizedStem()))
		},
	},
	{
		name:    "utility",
		matches: func(file fileContext) bool { return file.within("/utils/") },
		describe: func(file fileContext) string {
			return fmt.Sprintf(utilityTemplate, strings.ToLower(file.humanizedStem()))
		},
	},
	{
		name: "scene",
		matches: func(file fileContext) bool {
			return file.within("/components/") && strings.Contains(file.fileName, sceneMarker)
		},
		describe: func(file fileContext) string {
			return fmt.Sprintf(sceneTemplate, file.humanizedStem())
		},
	},
	{
		name:    "component helper",
		matches: func(file fileContext) bool { return file.within("/components/") },
		describe: func(file fileContext) string {
			return fmt.Sprintf(componentTemplate, file.humanizedStem())
		},
	},
	{
		name:    "type definitions",
		matches: func(file fileContext) bool { return file.within("/types/") },
		describe: func(file fileContext) string {
			return fmt.Sprintf(typeDefinitionTemplate, strings.ToLower(file.humanizedStem()))
		},
	},
	{
		name:    "api",
		matches: func(file fileContext) bool { return file.within("/api/") },
		describe: func(file fileContext) string {
			return fmt.Sprintf(apiTemplate, strings.ToLower(file.humanizedStem()))
		},
	},
	{
		name: "functions",
		matches: func(file fileContext) bool {
			return file.within("/functions/") || strings.HasPrefix(file.fullPath, functionsRootPrefix)
		},
		describe: func(file fileContext) string {
			return fmt.Sprintf(functionsTemplate, strings.ToLower(file.humanizedStem()))
		},
	},
	{
		name:    "general",
		matches: always,
		describe: func(file fileContext) string {
			return fmt.Sprintf(typeScriptTemplate, strings.ToLower(file.humanizedStem()))
		},
	},
}

func describeTypeScript(file fileContext) string {
	return firstMatch(typeScriptContextRules, file)
}

func describeJSON(file fileContext) string {
	switch {
	case file.fileName == packageManifestName:
		return fmt.Sprintf(manifestTemplate, manifestWorkspaceLabel(file))
	case file.fileName == packageLockName:
		return fmt.Sprintf(packageLockTemplate, lockWorkspaceLabel(file))
	case strings.HasPrefix(file.fileName, compilerConfigStem):
		return fmt.Sprintf(compilerConfigTemplate, file.fileName)
	default:
		return fmt.Sprintf(jsonTemplate, file.fileName)
	}
}

// firstMatch returns the description of the first rule whose predicate holds.
// Every rule table ends with a rule that always matches.
func firstMatch(rules []fileRule, file fileContext) string {
	for _, rule := range rules {
		if rule.matches(file) {
			return rule.describe(file)
		}
	}
	return fmt.Sprintf(fallbackTemplate, file.fileName)
}

func imageApplicationLabel(file fileContext) string {
	switch {
	case file.within(clientApplicationMarker):
		return clientLabel
	case file.within(adminApplicationMarker):
		return adminLabel
	default:
		return sharedLabel
	}
}

func adminOrClientLabel(file fileContext) string {
	if file.within(adminApplicationMarker) {
		return adminLabel
	}
	return clientLabel
}

func manifestWorkspaceLabel(file fileContext) string {
	switch {
	case file.within(adminApplicationMarker):
		return "admin app"
	case file.within(clientApplicationMarker):
		return "client app"
	case strings.HasPrefix(file.fullPath, functionsRootPrefix):
		return "functions workspace"
	case file.within(sharedPackageMarker):
		return "shared package"
	case file.within(prerenderPluginMarker):
		return "plugin package"
	default:
		return "root workspace"
	}
}

func lockWorkspaceLabel(file fileContext) string {
	if strings.HasPrefix(file.fullPath, functionsRootPrefix) {
		return "functions workspace"
	}
	return "root workspace"
}

// splitExtension splits a file name into stem and extension. Leading dots are
// part of the stem, so ".gitignore" has no extension while "a.d.ts" has ".ts".
func splitExtension(fileName string) (string, string) {
	withoutLeadingDots := strings.TrimLeft(fileName, dotfilePrefix)
	leadingDots := len(fileName) - len(withoutLeadingDots)
	dotIndex := strings.LastIndex(withoutLeadingDots, dotfilePrefix)
	if dotIndex < 0 {
		return fileName, ""
	}
	return fileName[:leadingDots+dotIndex], withoutLeadingDots[dotIndex:]
}
