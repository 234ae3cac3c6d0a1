// Package site defines the site configuration handed to the documentation
// generator: identity fields, plugins, theme settings and the sidebar tree.
//
// A SiteConfig is produced by a Builder from a Declaration. Builders clone the
// declared value and validate it, so every Build call returns an independent,
// immutable-by-convention value. Validation failures are reported as
// *ConfigError and are never retryable: the input is static.
//
// The sidebar is a sealed variant. A LinkEntry is a route leaf; a GroupEntry is
// a titled section holding further entries. Groups may nest to any depth.
// FlattenSidebar yields every link in depth-first author order.
package site
