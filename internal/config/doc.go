// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// The effective configuration is assembled from two YAML documents:
//  1. The bundled default document (embedded in the binary).
//  2. An optional per-user override file, by default at
//     ~/.madgui/config.yml.
//
// Override keys are deep-merged onto the defaults: nested mappings merge
// recursively per key, while scalars and sequences replace the default value
// wholesale. The merged document is decoded into [models.Document] and every
// unit name is validated against the physical-unit registry before the
// configuration is handed to the caller.
//
// The main entry points are [GetConfig] and [GetConfigFromFile].
package config
