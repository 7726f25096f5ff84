// Package configs manages project configuration for tablet.
//
// Settings resolve in three layers, later layers winning:
//
//  1. built-in defaults
//  2. an optional tablet.toml in the working directory
//  3. TABLET_* environment variables
//
// A missing tablet.toml is not an error; a malformed one is. The archive key
// itself is NOT part of these settings — only the name of the environment
// variable holding it is. The key value never touches a config file.
//
//	# tablet.toml
//	archive = "ancient_wisdoms.tablet"
//	key_env = "TABLET_ARCHIVE_KEY"
//	pages = "pages"
//	include_editorial_noise = false
package configs
