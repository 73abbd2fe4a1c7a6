// LangGate - Multi-Tenant Linguistic Analysis Gateway
// Copyright 2026 The LangGate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/giellalt/langgate

// Package main is the entry point for the LangGate server.
//
// LangGate is a gateway that fronts a directory of speller, grammar
// checker, and hyphenation model files with a REST and GraphQL API. It
// scans its configured data directory on startup, registers one worker
// per language and analyzer kind, and keeps the registries in sync with
// the filesystem afterward.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: layered defaults, TOML file, and LANGGATE_ environment variables
//  2. Logging: zerolog, configured from the loaded settings
//  3. Supervisor tree: a three-layer suture hierarchy (catalog, analyzer, api)
//  4. Catalog scan: enumerate model files under the data directory
//  5. Registries: one worker registered per discovered model file
//  6. Watcher: a supervised service that keeps registries in sync with the filesystem
//  7. HTTP/GraphQL server: REST handlers, a GraphQL endpoint, GraphiQL, and /metrics
//
// # Configuration
//
// See internal/config for the full list of settings and their environment
// variable overrides.
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM: the root
// context is canceled, which stops the watcher, stops every worker
// service, and shuts the HTTP server down within its configured timeout.
package main
