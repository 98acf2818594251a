package describe

// defaultFileDescriptions holds hand-written descriptions keyed by exact file name.
var defaultFileDescriptions = map[string]string{
	".firebaserc":                    "Firebase project selector that tells the CLI which Firebase project to target during deploys. It keeps environment-specific aliases.",
	".gitignore":                     "Git ignore rules that exclude build artifacts, dependencies, and environment files from version control. It keeps the repository clean of generated content.",
	"Overview.md":                    "High-level overview document summarizing the monorepo and its structure. It gives newcomers a quick orientation.",
	"README.md":                      "Primary repository README with setup instructions, commands, and project summary details. It guides developers working on the monorepo.",
	"TOP-X Project Summary.markdown": "Narrative summary of the TOP-X project, including goals and structure descriptions. It captures contextual background for the codebase.",
	"cors.json":                      "Firebase Hosting configuration for CORS rules used during emulation or deployment. It ensures proper cross-origin access for hosted functions.",
	"firebase.json":                  "Firebase project configuration specifying hosting, functions, and rewrites. It drives Firebase CLI deployments for the monorepo.",
	"firestore.indexes.json":         "Firestore composite index definitions required for queries. Firebase uses this file to manage indexes during deploy.",
	"firestore.rules":                "Firestore security rules controlling access to database resources. They enforce backend security for the app.",
	"profile.png":                    "Top-level image asset representing the default profile image for marketing or documentation. It can be referenced in various contexts.",
	"project-structure.txt":          "Text outline describing parts of the project structure. It serves as quick reference for contributors.",
	"temp.txt":                       "Temporary note file currently stored in the repository. It likely holds scratch information.",
	"folder_tree.txt":                "Existing folder tree overview listing directories and files. It offers a snapshot of the repo layout.",
	"top-x-shared-1.0.0.tgz":         "Archived tarball of the shared package distribution. It can be used for offline installs or references.",
}

// defaultDirectoryDescriptions holds hand-written descriptions keyed by repository-relative directory path.
var defaultDirectoryDescriptions = map[string]string{
	"apps":                                        "Directory housing the frontend applications in the monorepo, including the client and admin Vue apps.",
	"apps/admin":                                  "Admin SPA workspace built with Vite and Vue 3. It provides management tools for games and content.",
	"apps/admin/public":                           "Public static assets served by the admin Vite build. It includes icons and other resources.",
	"apps/admin/src":                              "Source code for the admin Vue application, including components, layouts, pages, and routing.",
	"apps/admin/src/assets":                       "Static assets packaged with the admin app, such as logos or icons.",
	"apps/admin/src/components":                   "Reusable Vue components for the admin app UI, covering content management and game editors.",
	"apps/admin/src/components/content":           "Components dedicated to managing CMS content inside the admin experience.",
	"apps/admin/src/components/games":             "Admin-side components for creating and editing available games and daily challenges.",
	"apps/admin/src/layouts":                      "Layout shells that wrap admin pages with navigation and common structure.",
	"apps/admin/src/pages":                        "Route-level Vue pages for the admin application, each representing a management view.",
	"apps/admin/src/router":                       "Routing logic and guards for the admin SPA, enforcing authentication.",
	"apps/admin/src/stores":                       "Pinia stores that manage shared state in the admin interface.",
	"apps/client":                                 "Player-facing client application workspace built with Vite and Vue 3.",
	"apps/client/public":                          "Public directory for the client app containing static assets served as-is.",
	"apps/client/public/assets":                   "Collection of public assets like sprites, images, and metadata used by the games.",
	"apps/client/public/images":                   "Additional public imagery for the client application, often duplicated for compatibility.",
	"apps/client/src":                             "Source code for the client Vue application, including games, components, stores, and styles.",
	"apps/client/src/assets":                      "Bundled static assets used by the client SPA during runtime.",
	"apps/client/src/components":                  "Vue components used throughout the client experience, from layout to games.",
	"apps/client/src/components/build":            "Components powering the Build section where users suggest or assemble games.",
	"apps/client/src/components/games":            "Client-side game implementations and shared UI for each mini-game.",
	"apps/client/src/components/games/FisherGame": "Components dedicated to the fishing-themed mini-game experience.",
	"apps/client/src/components/games/pacman":     "Pacman-inspired game implementation pieces for the client.",
	"apps/client/src/components/games/pyramid":    "Components supporting the pyramid ranking game and its UI.",
	"apps/client/src/components/games/trivia":     "Components handling trivia gameplay and question flow.",
	"apps/client/src/components/games/zonereveal": "Zone reveal mini-game components, including tests.",
	"apps/client/src/locales":                     "Internationalization resource files for the client application.",
	"apps/client/src/services":                    "TypeScript modules for interacting with backend services like leaderboards and trivia.",
	"apps/client/src/stores":                      "Pinia stores maintaining client-side state for users, trivia, and locale.",
	"apps/client/src/styles":                      "CSS stylesheets defining the design tokens and layouts for the client UI.",
	"apps/client/src/types":                       "Type declaration shims used by the client build.",
	"apps/client/src/views":                       "Route-level views for the client SPA, including main sections and game shells.",
	"apps/client/src/views/games":                 "View wrappers that host the playable mini-games in the client app.",
	"functions":                                   "Firebase Cloud Functions workspace handling backend logic for the platform.",
	"functions/src":                               "TypeScript source for Cloud Functions handlers, utilities, and external integrations.",
	"functions/src/handlers":                      "HTTP callable and REST handlers implementing backend operations.",
	"functions/src/utils":                         "Utility modules shared across Cloud Functions, including Firebase admin helpers.",
	"functions/lib":                               "Compiled type definitions generated from the Cloud Functions TypeScript build.",
	"packages":                                    "Reusable packages shared across the monorepo, including shared UI and utilities.",
	"packages/shared":                             "The @top-x/shared package containing common types, Firebase setup, and Vue components.",
	"packages/shared/src":                         "Source for the shared package, including APIs, components, and utilities.",
	"packages/shared/src/api":                     "Shared API helper modules that abstract Firestore interactions.",
	"packages/shared/src/components":              "Reusable Vue components provided by the shared package.",
	"packages/shared/src/content":                 "Default content configuration exported by the shared package.",
	"packages/shared/src/types":                   "TypeScript type definitions shared across apps for games and content.",
	"packages/shared/src/utils":                   "Utility helpers used across apps, such as analytics and formatting.",
	"packages/vite-plugin-prerender":              "Custom Vite plugin package for prerendering routes.",
}

// DefaultFileDescriptions returns a copy of the built-in file description table.
func DefaultFileDescriptions() map[string]string {
	return copyDescriptions(defaultFileDescriptions)
}

// DefaultDirectoryDescriptions returns a copy of the built-in directory description table.
func DefaultDirectoryDescriptions() map[string]string {
	return copyDescriptions(defaultDirectoryDescriptions)
}

func copyDescriptions(source map[string]string) map[string]string {
	copied := make(map[string]string, len(source))
	for key, description := range source {
		copied[key] = description
	}
	return copied
}
