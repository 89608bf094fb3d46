// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the ledgerwire
// command.
//
// Configuration is loaded from a single file named by either the
// LEDGERWIRE_CONFIG environment variable (via [Load]) or a --config
// flag (via [LoadFile]). [Resolve] picks between them and falls back
// to [Default] only when neither is given. There is no ~/.config
// discovery and no search path.
//
// The file may contain development and production sections that
// override base values when [Config].Environment matches. Production
// without an explicit section gets stricter defaults: JSON logs at
// warn level.
//
// ${HOME} and ${VAR:-default} patterns are expanded in log.file after
// loading. No environment variable overrides a config value.
//
// This package depends on no other ledgerwire packages.
package config
